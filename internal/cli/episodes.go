//
// episodes.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"

	"gitlab.com/kabes/go-mygpo/internal/common"
	"gitlab.com/kabes/go-mygpo/internal/state"
	"gitlab.com/kabes/go-mygpo/mygpo"
)

//---------------------------------------------------------------------

func newUploadEpisodeActionCmd() *cli.Command {
	return &cli.Command{
		Name:      "upload",
		Usage:     "record an episode action in the account's event log",
		ArgsUsage: "<action> <podcast-url> <episode-url>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "position", Usage: "play stop position in seconds", Value: -1},
			&cli.IntFlag{Name: "started", Usage: "play start position in seconds", Value: -1},
			&cli.IntFlag{Name: "total", Usage: "episode length in seconds", Value: -1},
		},
		Action: wrap(uploadEpisodeActionCmd),
	}
}

//nolint:forbidigo
func uploadEpisodeActionCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	args := clicmd.Args()
	if args.Len() != 3 { //nolint:mnd
		return common.ErrInvalidEpisode.WithUserMsg("expected: <action> <podcast-url> <episode-url>")
	}

	action, err := buildEpisodeAction(clicmd, args.Get(0), args.Get(1), args.Get(2))
	if err != nil {
		return err
	}

	client, account, err := getDeviceClient(ctx, injector)
	if err != nil {
		return err
	}

	action.Device = account.DeviceID

	res, err := client.UploadEpisodeActions(ctx, []mygpo.EpisodeAction{action})
	if err != nil {
		return fmt.Errorf("upload episode action error: %w", err)
	}

	store := do.MustInvoke[*state.Store](injector)
	if err := store.SetCursor(ctx, account.ID, account.DeviceID,
		state.CursorEpisodes, res.Timestamp); err != nil {
		return err
	}

	for _, u := range res.UpdateURLs {
		fmt.Printf("Rewritten: %s -> %s\n", u.Old, u.New)
	}

	fmt.Printf("Action recorded; timestamp %d\n", res.Timestamp)

	return nil
}

func buildEpisodeAction(clicmd *cli.Command, action, podcast, episode string) (mygpo.EpisodeAction, error) {
	now := time.Now()

	if action == mygpo.ActionPlay {
		position := int(clicmd.Int("position"))
		if position < 0 {
			return mygpo.EpisodeAction{},
				common.ErrInvalidEpisode.WithUserMsg("--position is required for the play action")
		}

		started := int(clicmd.Int("started"))
		total := int(clicmd.Int("total"))

		if started >= 0 && total >= 0 {
			return mygpo.NewPlayAction(podcast, episode, &now, position, started, total), nil
		}

		if started >= 0 || total >= 0 {
			return mygpo.EpisodeAction{},
				common.ErrInvalidEpisode.WithUserMsg("--started and --total must be given together")
		}

		return mygpo.NewPlayStopAction(podcast, episode, &now, position), nil
	}

	ea := mygpo.EpisodeAction{
		Podcast:   podcast,
		Episode:   episode,
		Action:    action,
		Timestamp: mygpo.NewTimestamp(now),
	}

	if err := ea.Validate(); err != nil {
		return mygpo.EpisodeAction{}, common.ErrInvalidEpisode.WithError(err).WithUserMsg("%s", err.Error())
	}

	return ea, nil
}

//---------------------------------------------------------------------

func newListEpisodeActionsCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list episode actions uploaded since the last call",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "podcast", Usage: "limit to one feed url"},
			&cli.BoolFlag{Name: "aggregated", Usage: "only the latest action per episode"},
			&cli.BoolFlag{Name: "full", Usage: "ignore the stored cursor and fetch the whole history"},
		},
		Action: wrap(listEpisodeActionsCmd),
	}
}

//nolint:forbidigo
func listEpisodeActionsCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	client, account, err := getAuthClient(ctx, injector)
	if err != nil {
		return err
	}

	store := do.MustInvoke[*state.Store](injector)

	since := state.NoCursor
	if !clicmd.Bool("full") && account.ID != 0 {
		since, err = store.GetCursor(ctx, account.ID, account.DeviceID, state.CursorEpisodes)
		if err != nil {
			return err
		}
	}

	res, err := client.GetEpisodeActions(ctx, clicmd.String("podcast"), since, clicmd.Bool("aggregated"))
	if err != nil {
		return fmt.Errorf("get episode actions error: %w", err)
	}

	for _, a := range res.Actions {
		ts := ""
		if a.Timestamp != nil {
			ts = a.Timestamp.Format(time.RFC3339)
		}

		line := fmt.Sprintf("%s  %-8s  %s / %s", ts, a.Action, a.Podcast, a.Episode)
		if a.Action == mygpo.ActionPlay && a.Position != nil {
			line += fmt.Sprintf("  position=%ds", *a.Position)
		}

		fmt.Println(line)
	}

	if account.ID != 0 {
		if err := store.SetCursor(ctx, account.ID, account.DeviceID,
			state.CursorEpisodes, res.Timestamp); err != nil {
			return err
		}
	}

	fmt.Printf("%d action(s); timestamp %d\n", len(res.Actions), res.Timestamp)

	return nil
}
