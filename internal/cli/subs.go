//
// subs.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"

	"gitlab.com/kabes/go-mygpo/internal/common"
	"gitlab.com/kabes/go-mygpo/internal/formats"
	"gitlab.com/kabes/go-mygpo/internal/state"
)

//---------------------------------------------------------------------

func newListSubscriptionsCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list subscriptions",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "all", Aliases: []string{"a"}, Usage: "all subscriptions of the account"},
			&cli.BoolFlag{Name: "cached", Usage: "local cache only, no server request"},
		},
		Action: wrap(listSubscriptionsCmd),
	}
}

//nolint:forbidigo
func listSubscriptionsCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	if clicmd.Bool("all") {
		client, _, err := getAuthClient(ctx, injector)
		if err != nil {
			return err
		}

		podcasts, err := client.GetAllSubscriptions(ctx)
		if err != nil {
			return fmt.Errorf("get subscriptions error: %w", err)
		}

		for _, p := range podcasts {
			fmt.Println(p.String())
		}

		return nil
	}

	if clicmd.Bool("cached") {
		_, account, err := getAuthClient(ctx, injector)
		if err != nil {
			return err
		}

		if account.DeviceID == "" {
			return common.ErrNoDevice
		}

		store := do.MustInvoke[*state.Store](injector)

		urls, err := store.ListSubscriptions(ctx, account.ID, account.DeviceID)
		if err != nil {
			return err
		}

		for _, url := range urls {
			fmt.Println(url)
		}

		return nil
	}

	return getSubscriptionsCmd(ctx, clicmd, injector)
}

//---------------------------------------------------------------------

func newGetSubscriptionsCmd() *cli.Command {
	return &cli.Command{
		Name:   "get",
		Usage:  "fetch the device's subscriptions and refresh the local cache",
		Action: wrap(getSubscriptionsCmd),
	}
}

//nolint:forbidigo
func getSubscriptionsCmd(ctx context.Context, _ *cli.Command, injector do.Injector) error {
	client, account, err := getDeviceClient(ctx, injector)
	if err != nil {
		return err
	}

	urls, err := client.GetDeviceSubscriptions(ctx)
	if err != nil {
		return fmt.Errorf("get device subscriptions error: %w", err)
	}

	store := do.MustInvoke[*state.Store](injector)
	if err := store.ReplaceSubscriptions(ctx, account.ID, account.DeviceID, urls); err != nil {
		return err
	}

	for _, url := range urls {
		fmt.Println(url)
	}

	return nil
}

//---------------------------------------------------------------------

func newSetSubscriptionsCmd() *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "replace the device's subscriptions with the given feed urls",
		ArgsUsage: "<url>...",
		Action:    wrap(setSubscriptionsCmd),
	}
}

//nolint:forbidigo
func setSubscriptionsCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	urls := clicmd.Args().Slice()
	if len(urls) == 0 {
		return common.ErrInvalidPodcast.WithUserMsg("at least one feed url is required")
	}

	return uploadSubscriptions(ctx, injector, urls)
}

func uploadSubscriptions(ctx context.Context, injector do.Injector, urls []string) error {
	client, account, err := getDeviceClient(ctx, injector)
	if err != nil {
		return err
	}

	if err := client.UploadDeviceSubscriptions(ctx, urls); err != nil {
		return fmt.Errorf("upload subscriptions error: %w", err)
	}

	store := do.MustInvoke[*state.Store](injector)
	if err := store.ReplaceSubscriptions(ctx, account.ID, account.DeviceID, urls); err != nil {
		return err
	}

	//nolint:forbidigo
	fmt.Printf("Uploaded %d subscription(s)\n", len(urls))

	return nil
}

//---------------------------------------------------------------------

func newUpdateSubscriptionsCmd() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "add or remove subscriptions on the device",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "add", Aliases: []string{"A"}, Usage: "feed url to subscribe"},
			&cli.StringSliceFlag{Name: "remove", Aliases: []string{"R"}, Usage: "feed url to unsubscribe"},
		},
		Action: wrap(updateSubscriptionsCmd),
	}
}

//nolint:forbidigo
func updateSubscriptionsCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	add := clicmd.StringSlice("add")
	remove := clicmd.StringSlice("remove")

	if len(add) == 0 && len(remove) == 0 {
		return common.ErrInvalidPodcast.WithUserMsg("nothing to do; use --add or --remove")
	}

	client, account, err := getDeviceClient(ctx, injector)
	if err != nil {
		return err
	}

	res, err := client.UploadSubscriptionChanges(ctx, add, remove)
	if err != nil {
		return fmt.Errorf("upload subscription changes error: %w", err)
	}

	store := do.MustInvoke[*state.Store](injector)
	if err := store.ApplyChanges(ctx, account.ID, account.DeviceID, add, remove); err != nil {
		return err
	}

	// the server may have sanitized some urls; track them under their
	// canonical form
	for _, u := range res.UpdateURLs {
		if err := store.RenameURL(ctx, account.ID, account.DeviceID, u.Old, u.New); err != nil {
			return err
		}
	}

	if err := store.SetCursor(ctx, account.ID, account.DeviceID,
		state.CursorSubscriptions, res.Timestamp); err != nil {
		return err
	}

	for _, u := range res.UpdateURLs {
		if u.New == "" {
			fmt.Printf("Rejected: %s\n", u.Old)
		} else {
			fmt.Printf("Rewritten: %s -> %s\n", u.Old, u.New)
		}
	}

	fmt.Printf("Subscriptions updated; timestamp %d\n", res.Timestamp)

	return nil
}

//---------------------------------------------------------------------

func newSyncSubscriptionsCmd() *cli.Command {
	return &cli.Command{
		Name:   "sync",
		Usage:  "download subscription changes since the last sync and apply them locally",
		Action: wrap(syncSubscriptionsCmd),
	}
}

//nolint:forbidigo
func syncSubscriptionsCmd(ctx context.Context, _ *cli.Command, injector do.Injector) error {
	client, account, err := getDeviceClient(ctx, injector)
	if err != nil {
		return err
	}

	store := do.MustInvoke[*state.Store](injector)

	since, err := store.GetCursor(ctx, account.ID, account.DeviceID, state.CursorSubscriptions)
	if err != nil {
		return err
	}

	if since == state.NoCursor {
		// first sync: full subscription list instead of a delta
		urls, err := client.GetDeviceSubscriptions(ctx)
		if err != nil {
			return fmt.Errorf("get device subscriptions error: %w", err)
		}

		if err := store.ReplaceSubscriptions(ctx, account.ID, account.DeviceID, urls); err != nil {
			return err
		}

		if err := store.SetCursor(ctx, account.ID, account.DeviceID, state.CursorSubscriptions, 0); err != nil {
			return err
		}

		fmt.Printf("Initial sync: %d subscription(s)\n", len(urls))

		return nil
	}

	res, err := client.GetSubscriptionChanges(ctx, since)
	if err != nil {
		return fmt.Errorf("get subscription changes error: %w", err)
	}

	log.Ctx(ctx).Debug().
		Int64(common.LogKeyCursor, res.Timestamp).
		Int("add", len(res.Add)).
		Int("remove", len(res.Remove)).
		Msg("got subscription changes")

	if err := store.ApplyChanges(ctx, account.ID, account.DeviceID, res.Add, res.Remove); err != nil {
		return err
	}

	if err := store.SetCursor(ctx, account.ID, account.DeviceID,
		state.CursorSubscriptions, res.Timestamp); err != nil {
		return err
	}

	fmt.Printf("Synced: %d added, %d removed; timestamp %d\n",
		len(res.Add), len(res.Remove), res.Timestamp)

	return nil
}

//---------------------------------------------------------------------

func newSubscriptionChangesCmd() *cli.Command {
	return &cli.Command{
		Name:  "changes",
		Usage: "show subscription changes since a cursor without touching local state",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "since", Usage: "cursor from a previous upload or poll; default: the stored one"},
		},
		Action: wrap(subscriptionChangesCmd),
	}
}

//nolint:forbidigo
func subscriptionChangesCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	client, account, err := getDeviceClient(ctx, injector)
	if err != nil {
		return err
	}

	since := clicmd.Int64("since")

	if !clicmd.IsSet("since") {
		store := do.MustInvoke[*state.Store](injector)

		since, err = store.GetCursor(ctx, account.ID, account.DeviceID, state.CursorSubscriptions)
		if err != nil {
			return err
		}

		if since == state.NoCursor {
			since = 0
		}
	}

	res, err := client.GetSubscriptionChanges(ctx, since)
	if err != nil {
		return fmt.Errorf("get subscription changes error: %w", err)
	}

	for _, u := range res.Add {
		fmt.Printf("+ %s\n", u)
	}

	for _, u := range res.Remove {
		fmt.Printf("- %s\n", u)
	}

	fmt.Printf("Timestamp: %d\n", res.Timestamp)

	return nil
}

//---------------------------------------------------------------------

func newExportSubscriptionsCmd() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "export the device's subscriptions as OPML",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output file; default: stdout"},
		},
		Action: wrap(exportSubscriptionsCmd),
	}
}

//nolint:forbidigo
func exportSubscriptionsCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	client, _, err := getDeviceClient(ctx, injector)
	if err != nil {
		return err
	}

	urls, err := client.GetDeviceSubscriptions(ctx)
	if err != nil {
		return fmt.Errorf("get device subscriptions error: %w", err)
	}

	opml := formats.NewOPML("go-mygpo")
	opml.AddURL(urls...)

	data, err := opml.XML()
	if err != nil {
		return fmt.Errorf("format opml error: %w", err)
	}

	if output := clicmd.String("output"); output != "" {
		if err := os.WriteFile(output, data, 0o600); err != nil {
			return fmt.Errorf("write %q error: %w", output, err)
		}

		fmt.Printf("Exported %d subscription(s) to %q\n", len(urls), output)

		return nil
	}

	fmt.Println(string(data))

	return nil
}

//---------------------------------------------------------------------

func newImportSubscriptionsCmd() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "replace the device's subscriptions with the content of an OPML file",
		ArgsUsage: "<file>",
		Action:    wrap(importSubscriptionsCmd),
	}
}

func importSubscriptionsCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	filename := clicmd.Args().First()
	if filename == "" {
		return common.ErrInvalidPodcast.WithUserMsg("opml file name is required")
	}

	data, err := os.ReadFile(filename) //nolint:gosec
	if err != nil {
		return fmt.Errorf("read %q error: %w", filename, err)
	}

	opml, err := formats.NewOPMLFromBytes(data)
	if err != nil {
		return fmt.Errorf("parse %q error: %w", filename, err)
	}

	urls := opml.ExtractsURLs()
	if len(urls) == 0 {
		return common.ErrInvalidPodcast.WithUserMsg("no feed urls found in %q", filename)
	}

	return uploadSubscriptions(ctx, injector, urls)
}
