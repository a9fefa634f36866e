//
// suggestions.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

package cli

import (
	"context"
	"fmt"

	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"
)

func newSuggestionsCmd() *cli.Command {
	return &cli.Command{
		Name:  "suggestions",
		Usage: "list podcasts the service recommends for the account",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Value: defaultListSize},
		},
		Action: wrap(suggestionsCmd),
	}
}

//nolint:forbidigo
func suggestionsCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	client, _, err := getAuthClient(ctx, injector)
	if err != nil {
		return err
	}

	suggestions, err := client.RetrieveSuggestedPodcasts(ctx, int(clicmd.Int("count")))
	if err != nil {
		return fmt.Errorf("get suggestions error: %w", err)
	}

	for _, s := range suggestions {
		fmt.Println(s.String())
	}

	return nil
}
