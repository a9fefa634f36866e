package mygpo

//
// directory.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Tag is one entry of the service's tag cloud; identity by the tag value.
type Tag struct {
	Title string `json:"title"`
	Tag   string `json:"tag"`
	Usage int    `json:"usage"`
}

func (t Tag) Equal(other Tag) bool {
	return t.Tag == other.Tag
}

func (t Tag) Compare(other Tag) int {
	return strings.Compare(t.Tag, other.Tag)
}

func (t Tag) String() string {
	return fmt.Sprintf("%s (%d)", t.Tag, t.Usage)
}

// Episode is a directory record for one episode; identity by media URL.
type Episode struct {
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	PodcastTitle string    `json:"podcast_title"`
	PodcastURL   string    `json:"podcast_url"`
	Description  string    `json:"description"`
	Website      string    `json:"website,omitempty"`
	MygpoLink    string    `json:"mygpo_link"`
	Released     Timestamp `json:"released"`
}

func (e Episode) Equal(other Episode) bool {
	return e.URL == other.URL
}

func (e Episode) Compare(other Episode) int {
	return strings.Compare(e.URL, other.URL)
}

func (e Episode) String() string {
	return fmt.Sprintf("%s: %s <%s>", e.PodcastTitle, e.Title, e.URL)
}

//---------------------------------------------------------------------

// RetrieveTopTags return the count most used tags.
func (c *PublicClient) RetrieveTopTags(ctx context.Context, count int) ([]Tag, error) {
	uri := fmt.Sprintf("%s/api/2/tags/%d.json", c.server, count)

	var tags []Tag
	if err := c.getJSON(ctx, uri, nil, &tags); err != nil {
		return nil, err
	}

	return tags, nil
}

// RetrievePodcastsForTag return up to count podcasts for a tag. The tag
// is url-encoded before insertion into the path, tags may contain
// anything.
func (c *PublicClient) RetrievePodcastsForTag(ctx context.Context, tag string, count int) ([]Podcast, error) {
	uri := fmt.Sprintf("%s/api/2/tag/%s/%d.json", c.server, url.QueryEscape(tag), count)

	var podcasts []Podcast
	if err := c.getJSON(ctx, uri, nil, &podcasts); err != nil {
		return nil, err
	}

	return podcasts, nil
}

// RetrievePodcastData return the directory record of one podcast.
// An unknown feed URL is a NetworkError, not an empty record.
func (c *PublicClient) RetrievePodcastData(ctx context.Context, feedurl string) (*Podcast, error) {
	uri := fmt.Sprintf("%s/api/2/data/podcast.json", c.server)
	query := url.Values{"url": []string{feedurl}}

	var podcast Podcast
	if err := c.getJSON(ctx, uri, query, &podcast); err != nil {
		return nil, err
	}

	return &podcast, nil
}

// RetrieveEpisodeData return the directory record of one episode,
// identified by its media URL and the feed it belongs to.
func (c *PublicClient) RetrieveEpisodeData(ctx context.Context, mediaurl, podcast string) (*Episode, error) {
	uri := fmt.Sprintf("%s/api/2/data/episode.json", c.server)
	query := url.Values{
		"url":     []string{mediaurl},
		"podcast": []string{podcast},
	}

	var episode Episode
	if err := c.getJSON(ctx, uri, query, &episode); err != nil {
		return nil, err
	}

	return &episode, nil
}

// PodcastToplist return the number most subscribed podcasts. When
// scaleLogo is positive the service scales logo URLs to that size
// (1-256).
func (c *PublicClient) PodcastToplist(ctx context.Context, number, scaleLogo int) ([]Podcast, error) {
	uri := fmt.Sprintf("%s/toplist/%d.json", c.server, number)

	var query url.Values
	if scaleLogo > 0 {
		query = url.Values{"scale_logo": []string{strconv.Itoa(scaleLogo)}}
	}

	var podcasts []Podcast
	if err := c.getJSON(ctx, uri, query, &podcasts); err != nil {
		return nil, err
	}

	return podcasts, nil
}

// PodcastSearch search the directory; scaleLogo as in PodcastToplist.
func (c *PublicClient) PodcastSearch(ctx context.Context, q string, scaleLogo int) ([]Podcast, error) {
	uri := fmt.Sprintf("%s/search.json", c.server)

	query := url.Values{"q": []string{q}}
	if scaleLogo > 0 {
		query.Set("scale_logo", strconv.Itoa(scaleLogo))
	}

	var podcasts []Podcast
	if err := c.getJSON(ctx, uri, query, &podcasts); err != nil {
		return nil, err
	}

	return podcasts, nil
}
