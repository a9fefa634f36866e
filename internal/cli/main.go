package cli

//
// main.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//
import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"gitlab.com/kabes/go-mygpo/internal/aerr"
	"gitlab.com/kabes/go-mygpo/internal/config"
	"gitlab.com/kabes/go-mygpo/mygpo"
)

//nolint:forbidigo
func Main() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "print-version",
		Aliases: []string{"V"},
		Usage:   "Print version.",
	}

	app := &cli.Command{
		Name:    "go-mygpo",
		Usage:   "gpodder.net podcast synchronization client",
		Version: config.VersionString,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Value:   mygpo.DefaultServer,
				Usage:   "Service base url",
				Aliases: []string{"s"},
				Sources: cli.EnvVars("GOMYGPO_SERVER"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:    "username",
				Usage:   "Account name; default: the stored login",
				Aliases: []string{"u"},
				Sources: cli.EnvVars("GOMYGPO_USERNAME"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:    "password",
				Usage:   "Account password; default: the stored login",
				Aliases: []string{"p"},
				Sources: cli.EnvVars("GOMYGPO_PASSWORD"),
			},
			&cli.StringFlag{
				Name:    "device",
				Usage:   "Device id; default: the account's default device",
				Aliases: []string{"d"},
				Sources: cli.EnvVars("GOMYGPO_DEVICE"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:      "state",
				Value:     defaultStatePath(),
				Usage:     "State database file",
				Aliases:   []string{"D"},
				Sources:   cli.EnvVars("GOMYGPO_STATE"),
				Validator: stateConnstrValidator,
				Config:    cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:    "log.level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("GOMYGPO_LOGLEVEL"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:    "log.format",
				Value:   "console",
				Usage:   "Log format (console, logfmt, json, journald, syslog)",
				Sources: cli.EnvVars("GOMYGPO_LOGFORMAT"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
		},
		Commands: []*cli.Command{
			newLoginCmd(),
			newLogoutCmd(),
			devicesSubCmd(),
			subscriptionsSubCmd(),
			episodesSubCmd(),
			directorySubCmd(),
			settingsSubCmd(),
			newFavoritesCmd(),
			newSuggestionsCmd(),
			podcastSubCmd(),
			stateSubCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if h := aerr.GetUserMessage(err); h != "" {
			fmt.Printf("Error: %s\n", h)
		} else {
			fmt.Printf("Error: %s\n", err.Error())
		}

		if app.String("log.level") == "debug" {
			fmt.Printf("Error: %#+v\n", err)
		}

		os.Exit(1)
	}
}

func devicesSubCmd() *cli.Command {
	return &cli.Command{
		Name:  "device",
		Usage: "manage devices",
		Commands: []*cli.Command{
			newListDevicesCmd(),
			newInitDeviceCmd(),
			newUpdateDeviceCmd(),
			newSelectDeviceCmd(),
		},
	}
}

func subscriptionsSubCmd() *cli.Command {
	return &cli.Command{
		Name:    "subscriptions",
		Aliases: []string{"subs"},
		Usage:   "manage subscriptions",
		Commands: []*cli.Command{
			newListSubscriptionsCmd(),
			newGetSubscriptionsCmd(),
			newSetSubscriptionsCmd(),
			newUpdateSubscriptionsCmd(),
			newSubscriptionChangesCmd(),
			newSyncSubscriptionsCmd(),
			newExportSubscriptionsCmd(),
			newImportSubscriptionsCmd(),
		},
	}
}

func episodesSubCmd() *cli.Command {
	return &cli.Command{
		Name:  "episodes",
		Usage: "episode actions",
		Commands: []*cli.Command{
			newUploadEpisodeActionCmd(),
			newListEpisodeActionsCmd(),
		},
	}
}

func directorySubCmd() *cli.Command {
	return &cli.Command{
		Name:  "directory",
		Usage: "browse the podcast directory",
		Commands: []*cli.Command{
			newTopTagsCmd(),
			newTagPodcastsCmd(),
			newToplistCmd(),
			newSearchCmd(),
			newPodcastDataCmd(),
			newEpisodeDataCmd(),
		},
	}
}

func settingsSubCmd() *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "manage key/value settings",
		Commands: []*cli.Command{
			newGetSettingsCmd(),
			newSaveSettingsCmd(),
		},
	}
}

func podcastSubCmd() *cli.Command {
	return &cli.Command{
		Name:  "podcast",
		Usage: "inspect podcast feeds",
		Commands: []*cli.Command{
			newPreviewPodcastCmd(),
		},
	}
}

func stateSubCmd() *cli.Command {
	return &cli.Command{
		Name:  "state",
		Usage: "manage local state database",
		Commands: []*cli.Command{
			newMaintenanceCmd(),
		},
	}
}

//---------------------------------------------------------------------

func stateConnstrValidator(connstr string) error {
	if connstr == "" {
		return aerr.New("state database path cannot be empty")
	}

	return nil
}

func defaultStatePath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "go-mygpo.sqlite?_journal_mode=WAL&_synchronous=NORMAL"
	}

	return base + "/go-mygpo/state.sqlite?_journal_mode=WAL&_synchronous=NORMAL"
}
