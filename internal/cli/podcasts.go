//
// podcasts.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"

	"gitlab.com/kabes/go-mygpo/internal/aerr"
	"gitlab.com/kabes/go-mygpo/internal/common"
)

const previewFeedTimeout = 10 * time.Second

//---------------------------------------------------------------------

func newPreviewPodcastCmd() *cli.Command {
	return &cli.Command{
		Name:      "preview",
		Usage:     "download a feed and show its metadata and recent episodes",
		ArgsUsage: "<feed-url>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "episodes", Aliases: []string{"n"}, Value: 5, Usage: "number of episodes to list"}, //nolint:mnd
		},
		Action: wrap(previewPodcastCmd),
	}
}

//nolint:forbidigo
func previewPodcastCmd(ctx context.Context, clicmd *cli.Command, _ do.Injector) error {
	url := clicmd.Args().First()
	if url == "" {
		return common.ErrInvalidPodcast.WithUserMsg("feed url is required")
	}

	dctx, cancel := context.WithTimeout(ctx, previewFeedTimeout)
	defer cancel()

	fp := gofeed.NewParser()

	feed, err := fp.ParseURLWithContext(url, dctx)
	if err != nil {
		return aerr.ErrNetwork.WithError(err).WithUserMsg("download feed %q failed", url)
	}

	title := feed.Title
	if title == "" {
		title = "<no title>"
	}

	fmt.Printf("Title:        %s\n", title)
	fmt.Printf("Website:      %s\n", feed.Link)
	fmt.Printf("Description:  %s\n", feed.Description)
	fmt.Printf("Episodes:     %d\n", len(feed.Items))

	count := min(len(feed.Items), int(clicmd.Int("episodes")))
	for _, item := range feed.Items[:count] {
		published := ""
		if item.PublishedParsed != nil {
			published = item.PublishedParsed.UTC().Format(time.DateOnly)
		}

		fmt.Printf("  %s  %s\n", published, item.Title)
	}

	return nil
}
