//
// device.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/xid"
	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"

	"gitlab.com/kabes/go-mygpo/internal/common"
	"gitlab.com/kabes/go-mygpo/internal/state"
	"gitlab.com/kabes/go-mygpo/mygpo"
)

//---------------------------------------------------------------------

func newListDevicesCmd() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "list devices registered for the account",
		Action: wrap(listDevicesCmd),
	}
}

//nolint:forbidigo
func listDevicesCmd(ctx context.Context, _ *cli.Command, injector do.Injector) error {
	client, account, err := getAuthClient(ctx, injector)
	if err != nil {
		return err
	}

	devices, err := client.ListDevices(ctx)
	if err != nil {
		return fmt.Errorf("list devices error: %w", err)
	}

	for _, d := range devices {
		def := " "
		if d.ID == account.DeviceID {
			def = "*"
		}

		fmt.Printf("%s %s\n", def, d.String())
	}

	return nil
}

//---------------------------------------------------------------------

func newInitDeviceCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "register a new device and make it the default",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name: "type", Aliases: []string{"t"}, Value: "desktop",
				Usage: "device type (desktop, laptop, mobile, server, other)",
			},
			&cli.StringFlag{Name: "caption", Aliases: []string{"c"}, Value: "go-mygpo"},
		},
		Action: wrap(initDeviceCmd),
	}
}

//nolint:forbidigo
func initDeviceCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	devtype := mygpo.DeviceType(clicmd.String("type"))
	if !devtype.Valid() {
		return common.ErrInvalidDevice.WithUserMsg("unknown device type %q", devtype)
	}

	_, account, err := getAuthClient(ctx, injector)
	if err != nil {
		return err
	}

	hostname, _ := os.Hostname()

	deviceid := "gomygpo-" + xid.New().String()
	caption := clicmd.String("caption")

	if caption == "go-mygpo" && hostname != "" {
		caption = "go-mygpo on " + hostname
	}

	hc := do.MustInvoke[*http.Client](injector)
	client := mygpo.NewCustomDeviceClient(account.Server, account.Username, account.Password, deviceid, hc)

	if err := client.UpdateDeviceData(ctx, caption, devtype); err != nil {
		return fmt.Errorf("register device error: %w", err)
	}

	store := do.MustInvoke[*state.Store](injector)

	account.DeviceID = deviceid
	if err := store.SaveAccount(ctx, account); err != nil {
		return err
	}

	fmt.Printf("Device %q registered (%s, %q)\n", deviceid, devtype, caption)

	return nil
}

//---------------------------------------------------------------------

func newUpdateDeviceCmd() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "update device caption or type",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name: "type", Aliases: []string{"t"},
				Usage: "device type (desktop, laptop, mobile, server, other)",
			},
			&cli.StringFlag{Name: "caption", Aliases: []string{"c"}},
		},
		Action: wrap(updateDeviceCmd),
	}
}

//nolint:forbidigo
func updateDeviceCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	devtype := mygpo.DeviceType(clicmd.String("type"))
	if devtype != "" && !devtype.Valid() {
		return common.ErrInvalidDevice.WithUserMsg("unknown device type %q", devtype)
	}

	client, _, err := getDeviceClient(ctx, injector)
	if err != nil {
		return err
	}

	if err := client.UpdateDeviceData(ctx, clicmd.String("caption"), devtype); err != nil {
		return fmt.Errorf("update device error: %w", err)
	}

	fmt.Println("Device updated")

	return nil
}

//---------------------------------------------------------------------

func newSelectDeviceCmd() *cli.Command {
	return &cli.Command{
		Name:      "select",
		Usage:     "set the default device for the account",
		ArgsUsage: "<device-id>",
		Action:    wrap(selectDeviceCmd),
	}
}

//nolint:forbidigo
func selectDeviceCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	deviceid := clicmd.Args().First()
	if deviceid == "" {
		return common.ErrInvalidDevice.WithUserMsg("device id is required")
	}

	_, account, err := getAuthClient(ctx, injector)
	if err != nil {
		return err
	}

	if account.ID == 0 {
		return common.ErrNoAccount
	}

	store := do.MustInvoke[*state.Store](injector)
	if err := store.SetDefaultDevice(ctx, account.ID, deviceid); err != nil {
		return err
	}

	fmt.Printf("Default device set to %q\n", deviceid)

	return nil
}
