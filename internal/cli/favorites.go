//
// favorites.go
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

func newFavoritesCmd() *cli.Command {
	return &cli.Command{
		Name:   "favorites",
		Usage:  "list episodes flagged as favorite",
		Action: wrap(favoritesCmd),
	}
}

//nolint:forbidigo
func favoritesCmd(ctx context.Context, _ *cli.Command, injector do.Injector) error {
	client, _, err := getAuthClient(ctx, injector)
	if err != nil {
		return err
	}

	episodes, err := client.GetFavoriteEpisodes(ctx)
	if err != nil {
		return fmt.Errorf("get favorites error: %w", err)
	}

	for _, e := range episodes {
		fmt.Println(e.String())
	}

	return nil
}
