//
// directory.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"

	"gitlab.com/kabes/go-mygpo/internal/common"
	"gitlab.com/kabes/go-mygpo/internal/formats"
	"gitlab.com/kabes/go-mygpo/mygpo"
)

const defaultListSize = 20

//---------------------------------------------------------------------

func newTopTagsCmd() *cli.Command {
	return &cli.Command{
		Name:  "toptags",
		Usage: "list the most used tags",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Value: defaultListSize},
		},
		Action: wrap(topTagsCmd),
	}
}

//nolint:forbidigo
func topTagsCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	client := getPublicClient(injector)

	tags, err := client.RetrieveTopTags(ctx, int(clicmd.Int("count")))
	if err != nil {
		return fmt.Errorf("get top tags error: %w", err)
	}

	for _, t := range tags {
		fmt.Println(t.String())
	}

	return nil
}

//---------------------------------------------------------------------

func newTagPodcastsCmd() *cli.Command {
	return &cli.Command{
		Name:      "tag",
		Usage:     "list podcasts for a tag",
		ArgsUsage: "<tag>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Value: defaultListSize},
		},
		Action: wrap(tagPodcastsCmd),
	}
}

//nolint:forbidigo
func tagPodcastsCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	tag := clicmd.Args().First()
	if tag == "" {
		return common.ErrInvalidPodcast.WithUserMsg("tag is required")
	}

	client := getPublicClient(injector)

	podcasts, err := client.RetrievePodcastsForTag(ctx, tag, int(clicmd.Int("count")))
	if err != nil {
		return fmt.Errorf("get podcasts for tag error: %w", err)
	}

	printPodcasts(clicmd, podcasts)

	return nil
}

//---------------------------------------------------------------------

func newToplistCmd() *cli.Command {
	return &cli.Command{
		Name:  "toplist",
		Usage: "list the most subscribed podcasts",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Value: defaultListSize},
			&cli.IntFlag{Name: "scale-logo", Usage: "logo size in pixels (1-256)"},
			&cli.BoolFlag{Name: "opml", Usage: "print the result as OPML"},
			&cli.BoolFlag{Name: "xml", Usage: "print the result as plain XML"},
		},
		Action: wrap(toplistCmd),
	}
}

//nolint:forbidigo
func toplistCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	client := getPublicClient(injector)

	podcasts, err := client.PodcastToplist(ctx, int(clicmd.Int("count")), int(clicmd.Int("scale-logo")))
	if err != nil {
		return fmt.Errorf("get toplist error: %w", err)
	}

	printPodcasts(clicmd, podcasts)

	return nil
}

//---------------------------------------------------------------------

func newSearchCmd() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "search podcasts in the directory",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "scale-logo", Usage: "logo size in pixels (1-256)"},
			&cli.BoolFlag{Name: "opml", Usage: "print the result as OPML"},
			&cli.BoolFlag{Name: "xml", Usage: "print the result as plain XML"},
		},
		Action: wrap(searchCmd),
	}
}

//nolint:forbidigo
func searchCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	query := clicmd.Args().First()
	if query == "" {
		return common.ErrInvalidPodcast.WithUserMsg("search query is required")
	}

	client := getPublicClient(injector)

	podcasts, err := client.PodcastSearch(ctx, query, int(clicmd.Int("scale-logo")))
	if err != nil {
		return fmt.Errorf("search error: %w", err)
	}

	printPodcasts(clicmd, podcasts)

	return nil
}

//---------------------------------------------------------------------

func newPodcastDataCmd() *cli.Command {
	return &cli.Command{
		Name:      "podcast",
		Usage:     "show the directory record of one podcast",
		ArgsUsage: "<feed-url>",
		Action:    wrap(podcastDataCmd),
	}
}

//nolint:forbidigo
func podcastDataCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	feedurl := clicmd.Args().First()
	if feedurl == "" {
		return common.ErrInvalidPodcast.WithUserMsg("feed url is required")
	}

	client := getPublicClient(injector)

	podcast, err := client.RetrievePodcastData(ctx, feedurl)
	if err != nil {
		return fmt.Errorf("get podcast data error: %w", err)
	}

	fmt.Printf("Title:         %s\n", podcast.Title)
	fmt.Printf("URL:           %s\n", podcast.URL)
	fmt.Printf("Website:       %s\n", podcast.Website)
	fmt.Printf("Subscribers:   %d\n", podcast.Subscribers)
	fmt.Printf("Description:   %s\n", podcast.Description)

	return nil
}

//---------------------------------------------------------------------

func newEpisodeDataCmd() *cli.Command {
	return &cli.Command{
		Name:      "episode",
		Usage:     "show the directory record of one episode",
		ArgsUsage: "<podcast-url> <episode-url>",
		Action:    wrap(episodeDataCmd),
	}
}

//nolint:forbidigo
func episodeDataCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	args := clicmd.Args()
	if args.Len() != 2 { //nolint:mnd
		return common.ErrInvalidEpisode.WithUserMsg("expected: <podcast-url> <episode-url>")
	}

	client := getPublicClient(injector)

	episode, err := client.RetrieveEpisodeData(ctx, args.Get(1), args.Get(0))
	if err != nil {
		return fmt.Errorf("get episode data error: %w", err)
	}

	fmt.Printf("Title:     %s\n", episode.Title)
	fmt.Printf("Podcast:   %s\n", episode.PodcastTitle)
	fmt.Printf("URL:       %s\n", episode.URL)
	fmt.Printf("Released:  %s\n", episode.Released.String())
	fmt.Printf("Description: %s\n", episode.Description)

	return nil
}

//---------------------------------------------------------------------

//nolint:forbidigo
func printPodcasts(clicmd *cli.Command, podcasts []mygpo.Podcast) {
	switch {
	case clicmd.Bool("opml"):
		opml := formats.NewOPML("go-mygpo")
		opml.AddPodcasts(podcasts...)

		printMarshalled(opml.XML())

	case clicmd.Bool("xml"):
		printMarshalled(formats.NewXMLPodcasts(podcasts).XML())

	default:
		for _, p := range podcasts {
			fmt.Println(p.String())
		}
	}
}

//nolint:forbidigo
func printMarshalled(data []byte, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "format error: %s\n", err)

		return
	}

	fmt.Println(string(data))
}
