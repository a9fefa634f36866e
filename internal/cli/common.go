package cli

//
// common.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"gitlab.com/kabes/go-mygpo/internal/aerr"
	"gitlab.com/kabes/go-mygpo/internal/common"
	"gitlab.com/kabes/go-mygpo/internal/state"
	"gitlab.com/kabes/go-mygpo/mygpo"
)

// appConfig is the resolved global configuration; flags override stored
// account data.
type appConfig struct {
	Server   string
	Username string
	Password string
	DeviceID string
	State    string
}

func configFromFlags(clicmd *cli.Command) *appConfig {
	return &appConfig{
		Server:   strings.TrimSuffix(clicmd.String("server"), "/"),
		Username: clicmd.String("username"),
		Password: clicmd.String("password"),
		DeviceID: clicmd.String("device"),
		State:    clicmd.String("state"),
	}
}

func wrap(
	cmdfunc func(ctx context.Context, clicmd *cli.Command, i do.Injector) error,
) func(ctx context.Context, clicmd *cli.Command) error {
	return func(ctx context.Context, clicmd *cli.Command) error {
		if err := initializeLogger(clicmd.String("log.level"), clicmd.String("log.format")); err != nil {
			return err
		}

		cfg := configFromFlags(clicmd)
		if cfg.Server == "" {
			return aerr.ErrInvalidConf.WithUserMsg("server url cannot be empty")
		}

		logger := log.Logger.With().
			Str(common.LogKeyServer, cfg.Server).
			Str(common.LogKeyCommand, clicmd.Name).
			Logger()
		ctx = logger.WithContext(ctx)

		injector := createInjector(ctx)
		do.ProvideValue(injector, cfg)

		store, err := state.Open(ctx, cfg.State)
		if err != nil {
			return aerr.Wrapf(err, "open state database failed")
		}

		do.ProvideValue(injector, store)

		defer shutdownInjector(ctx, injector)

		return cmdfunc(ctx, clicmd, injector)
	}
}

func shutdownInjector(ctx context.Context, injector do.Injector) {
	if report := injector.ShutdownWithContext(ctx); report != nil && !report.Succeed {
		log.Ctx(ctx).Error().Msgf("shutdown services failed: %s", report.Error())
	}
}

//---------------------------------------------------------------------

func getPublicClient(injector do.Injector) *mygpo.PublicClient {
	cfg := do.MustInvoke[*appConfig](injector)
	hc := do.MustInvoke[*http.Client](injector)

	return mygpo.NewCustomPublicClient(cfg.Server, hc)
}

// resolveAccount merge command line credentials with the stored login.
func resolveAccount(ctx context.Context, injector do.Injector) (*state.Account, error) {
	cfg := do.MustInvoke[*appConfig](injector)
	store := do.MustInvoke[*state.Store](injector)

	account, err := store.GetAccount(ctx, cfg.Server, cfg.Username)

	switch {
	case err == nil:
	case errors.Is(err, common.ErrNoData):
		if cfg.Username == "" || cfg.Password == "" {
			return nil, common.ErrNoAccount
		}

		account = &state.Account{Server: cfg.Server, Username: cfg.Username}
	default:
		return nil, err
	}

	if cfg.Password != "" {
		account.Password = cfg.Password
	}

	if cfg.DeviceID != "" {
		account.DeviceID = cfg.DeviceID
	}

	return account, nil
}

// ensureAccount like resolveAccount but persist the login so cursors
// can be attached to it.
func ensureAccount(ctx context.Context, injector do.Injector) (*state.Account, error) {
	account, err := resolveAccount(ctx, injector)
	if err != nil {
		return nil, err
	}

	if account.ID == 0 {
		store := do.MustInvoke[*state.Store](injector)
		if err := store.SaveAccount(ctx, account); err != nil {
			return nil, err
		}
	}

	return account, nil
}

func getAuthClient(ctx context.Context, injector do.Injector) (*mygpo.AuthenticatedClient, *state.Account, error) {
	account, err := resolveAccount(ctx, injector)
	if err != nil {
		return nil, nil, err
	}

	hc := do.MustInvoke[*http.Client](injector)
	client := mygpo.NewCustomAuthenticatedClient(account.Server, account.Username, account.Password, hc)

	log.Ctx(ctx).Debug().Str(common.LogKeyUserName, account.Username).Msg("using account")

	return client, account, nil
}

func getDeviceClient(ctx context.Context, injector do.Injector) (*mygpo.DeviceClient, *state.Account, error) {
	account, err := ensureAccount(ctx, injector)
	if err != nil {
		return nil, nil, err
	}

	if account.DeviceID == "" {
		return nil, nil, common.ErrNoDevice
	}

	hc := do.MustInvoke[*http.Client](injector)
	client := mygpo.NewCustomDeviceClient(
		account.Server, account.Username, account.Password, account.DeviceID, hc)

	log.Ctx(ctx).Debug().
		Str(common.LogKeyUserName, account.Username).
		Str(common.LogKeyDeviceID, account.DeviceID).
		Msg("using device")

	return client, account, nil
}

//---------------------------------------------------------------------

func readValidatePassword(pass string) (string, error) {
	pass = strings.TrimSpace(pass)
	if pass == "" {
		//nolint:forbidigo
		fmt.Print("Enter password: ")

		bytepw, err := term.ReadPassword(syscall.Stdin)
		if err != nil {
			return "", fmt.Errorf("read password error: %w", err)
		}

		//nolint:forbidigo
		fmt.Println()

		pass = strings.TrimSpace(string(bytepw))
	}

	if pass == "" {
		return "", errors.New("password can't be empty") //nolint:err113
	}

	return pass, nil
}
