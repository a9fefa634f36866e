//
// settings.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

package cli

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"

	"gitlab.com/kabes/go-mygpo/internal/aerr"
)

// Settings scopes accepted by the service.
const (
	scopeAccount = "account"
	scopeDevice  = "device"
	scopePodcast = "podcast"
	scopeEpisode = "episode"
)

func scopeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name: "scope", Value: scopeAccount,
			Usage: "settings scope (account, device, podcast, episode)",
		},
		&cli.StringFlag{Name: "podcast", Usage: "feed url; required for podcast and episode scope"},
		&cli.StringFlag{Name: "episode", Usage: "media url; required for episode scope"},
	}
}

func checkScopeArgs(clicmd *cli.Command) (scope, podcast, episode string, err error) {
	scope = clicmd.String("scope")
	podcast = clicmd.String("podcast")
	episode = clicmd.String("episode")

	switch scope {
	case scopeAccount, scopeDevice:
	case scopePodcast:
		if podcast == "" {
			err = aerr.ErrValidation.WithUserMsg("--podcast is required for the podcast scope")
		}
	case scopeEpisode:
		if podcast == "" || episode == "" {
			err = aerr.ErrValidation.WithUserMsg("--podcast and --episode are required for the episode scope")
		}
	default:
		err = aerr.ErrValidation.WithUserMsg("unknown scope %q", scope)
	}

	return scope, podcast, episode, err
}

//---------------------------------------------------------------------

func newGetSettingsCmd() *cli.Command {
	return &cli.Command{
		Name:   "get",
		Usage:  "show key/value settings of a scope",
		Flags:  scopeFlags(),
		Action: wrap(getSettingsCmd),
	}
}

func getSettingsCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	scope, podcast, episode, err := checkScopeArgs(clicmd)
	if err != nil {
		return err
	}

	var settings map[string]string

	switch scope {
	case scopeDevice:
		client, _, cerr := getDeviceClient(ctx, injector)
		if cerr != nil {
			return cerr
		}

		settings, err = client.GetDeviceSettings(ctx)

	default:
		client, _, cerr := getAuthClient(ctx, injector)
		if cerr != nil {
			return cerr
		}

		switch scope {
		case scopePodcast:
			settings, err = client.GetPodcastSettings(ctx, podcast)
		case scopeEpisode:
			settings, err = client.GetEpisodeSettings(ctx, podcast, episode)
		default:
			settings, err = client.GetAccountSettings(ctx)
		}
	}

	if err != nil {
		return fmt.Errorf("get settings error: %w", err)
	}

	printSettings(settings)

	return nil
}

//---------------------------------------------------------------------

func newSaveSettingsCmd() *cli.Command {
	return &cli.Command{
		Name:  "save",
		Usage: "set or remove key/value settings of a scope",
		Flags: append(scopeFlags(),
			&cli.StringSliceFlag{Name: "set", Aliases: []string{"S"}, Usage: "key=value to store"},
			&cli.StringSliceFlag{Name: "remove", Aliases: []string{"R"}, Usage: "key to delete"},
		),
		Action: wrap(saveSettingsCmd),
	}
}

func saveSettingsCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	scope, podcast, episode, err := checkScopeArgs(clicmd)
	if err != nil {
		return err
	}

	set, err := parseKeyVals(clicmd.StringSlice("set"))
	if err != nil {
		return err
	}

	remove := clicmd.StringSlice("remove")

	if len(set) == 0 && len(remove) == 0 {
		return aerr.ErrValidation.WithUserMsg("nothing to do; use --set or --remove")
	}

	var settings map[string]string

	switch scope {
	case scopeDevice:
		client, _, cerr := getDeviceClient(ctx, injector)
		if cerr != nil {
			return cerr
		}

		settings, err = client.SaveDeviceSettings(ctx, set, remove)

	default:
		client, _, cerr := getAuthClient(ctx, injector)
		if cerr != nil {
			return cerr
		}

		switch scope {
		case scopePodcast:
			settings, err = client.SavePodcastSettings(ctx, set, remove, podcast)
		case scopeEpisode:
			settings, err = client.SaveEpisodeSettings(ctx, set, remove, podcast, episode)
		default:
			settings, err = client.SaveAccountSettings(ctx, set, remove)
		}
	}

	if err != nil {
		return fmt.Errorf("save settings error: %w", err)
	}

	printSettings(settings)

	return nil
}

//---------------------------------------------------------------------

func parseKeyVals(args []string) (map[string]string, error) {
	if len(args) == 0 {
		return nil, nil
	}

	res := make(map[string]string, len(args))

	for _, arg := range args {
		key, val, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, aerr.ErrValidation.WithUserMsg("invalid setting %q; expected key=value", arg)
		}

		res[key] = val
	}

	return res, nil
}

//nolint:forbidigo
func printSettings(settings map[string]string) {
	for _, key := range slices.Sorted(maps.Keys(settings)) {
		fmt.Printf("%s=%s\n", key, settings[key])
	}
}
