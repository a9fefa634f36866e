package cli

//
// login.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"

	"gitlab.com/kabes/go-mygpo/internal/aerr"
	"gitlab.com/kabes/go-mygpo/internal/common"
	"gitlab.com/kabes/go-mygpo/internal/state"
	"gitlab.com/kabes/go-mygpo/mygpo"
)

//---------------------------------------------------------------------

func newLoginCmd() *cli.Command {
	return &cli.Command{
		Name:   "login",
		Usage:  "verify and store account credentials",
		Action: wrap(loginCmd),
	}
}

//nolint:forbidigo
func loginCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	cfg := do.MustInvoke[*appConfig](injector)

	username := cfg.Username
	if username == "" {
		return common.ErrEmptyUsername.WithUserMsg("username is required; use --username")
	}

	pass, err := readValidatePassword(cfg.Password)
	if err != nil {
		return err
	}

	// verify the credentials before storing them
	hc := do.MustInvoke[*http.Client](injector)
	client := mygpo.NewCustomAuthenticatedClient(cfg.Server, username, pass, hc)

	devices, err := client.ListDevices(ctx)
	if err != nil {
		return aerr.ErrNetwork.WithError(err).WithUserMsg("login failed; check credentials and server url")
	}

	account := &state.Account{
		Server:   cfg.Server,
		Username: username,
		Password: pass,
		DeviceID: cfg.DeviceID,
	}

	store := do.MustInvoke[*state.Store](injector)
	if err := store.SaveAccount(ctx, account); err != nil {
		return fmt.Errorf("store account error: %w", err)
	}

	fmt.Printf("Logged in as %q on %s; %d device(s) registered\n", username, cfg.Server, len(devices))

	return nil
}

//---------------------------------------------------------------------

func newLogoutCmd() *cli.Command {
	return &cli.Command{
		Name:   "logout",
		Usage:  "remove the stored account and its local state",
		Action: wrap(logoutCmd),
	}
}

//nolint:forbidigo
func logoutCmd(ctx context.Context, _ *cli.Command, injector do.Injector) error {
	cfg := do.MustInvoke[*appConfig](injector)
	store := do.MustInvoke[*state.Store](injector)

	account, err := store.GetAccount(ctx, cfg.Server, cfg.Username)
	if errors.Is(err, common.ErrNoData) {
		return common.ErrNoAccount
	} else if err != nil {
		return err
	}

	if err := store.DeleteAccount(ctx, account.ID); err != nil {
		return fmt.Errorf("delete account error: %w", err)
	}

	fmt.Printf("Removed account %q\n", account.Username)

	return nil
}
