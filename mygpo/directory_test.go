package mygpo

//
// directory_test.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"net/http"
	"testing"

	"gitlab.com/kabes/go-mygpo/internal/assert"
)

func TestTagIdentity(t *testing.T) {
	tag1 := Tag{Title: "Technology", Tag: "technology", Usage: 530}
	tag2 := Tag{Title: "techno", Tag: "technology", Usage: 2}

	assert.True(t, tag1.Equal(tag2))
	assert.Equal(t, tag1.Compare(tag2), 0)
	assert.True(t, !tag1.Equal(Tag{Tag: "comedy"}))
}

func TestEpisodeIdentity(t *testing.T) {
	episode1 := Episode{URL: "http://example.com/files/s01e20.mp3", Title: "TWiT 245"}
	episode2 := Episode{URL: "http://example.com/files/s01e20.mp3", Title: "something else"}

	assert.True(t, episode1.Equal(episode2))
	assert.Equal(t, episode1.Compare(episode2), 0)
}

//---------------------------------------------------------------------

func TestRetrieveTopTags(t *testing.T) {
	ts := newTestServer(t)
	ts.respond(http.StatusOK, `[
		{"title": "Technology", "tag": "technology", "usage": 530},
		{"title": "Society & Culture", "tag": "society-culture", "usage": 420},
		{"title": "Arts", "tag": "arts", "usage": 400}
	]`)

	tags, err := ts.publicClient().RetrieveTopTags(context.Background(), 10)
	assert.NoErr(t, err)
	assert.True(t, len(tags) <= 10)
	assert.Len(t, tags, 3)
	assert.Equal(t, tags[0].Tag, "technology")

	assert.Equal(t, ts.last(t).Path, "/api/2/tags/10.json")
}

func TestRetrievePodcastsForTag(t *testing.T) {
	ts := newTestServer(t)
	ts.respond(http.StatusOK, `[]`)

	_, err := ts.publicClient().RetrievePodcastsForTag(context.Background(), "society & culture", 20)
	assert.NoErr(t, err)

	// tag is encoded before path insertion
	assert.Equal(t, ts.last(t).Path, "/api/2/tag/society+%26+culture/20.json")
}

func TestRetrievePodcastData(t *testing.T) {
	ts := newTestServer(t)
	ts.respond(http.StatusOK, `{"url": "http://goinglinux.com/mp3podcast.xml", "title": "Going Linux",
		"description": "Going Linux", "subscribers": 571, "subscribers_last_week": 571,
		"mygpo_link": "http://gpodder.net/podcast/11171"}`)

	podcast, err := ts.publicClient().RetrievePodcastData(context.Background(), "http://goinglinux.com/mp3podcast.xml")
	assert.NoErr(t, err)
	assert.Equal(t, podcast.Title, "Going Linux")

	req := ts.last(t)
	assert.Equal(t, req.Path, "/api/2/data/podcast.json")
	assert.Equal(t, req.RawQuery, "url=http%3A%2F%2Fgoinglinux.com%2Fmp3podcast.xml")
}

// Unknown podcast is an error, not an empty record.
func TestRetrievePodcastDataNotFound(t *testing.T) {
	ts := newTestServer(t)
	ts.respond(http.StatusNotFound, `not found`)

	_, err := ts.publicClient().RetrievePodcastData(context.Background(), "http://unknown.example.com/feed.xml")
	assert.Err(t, err)
	assert.ErrSpec(t, err, "status 404")
}

func TestRetrieveEpisodeData(t *testing.T) {
	ts := newTestServer(t)
	ts.respond(http.StatusOK, `{"title": "TWiT 245", "url": "http://example.com/files/s01e20.mp3",
		"podcast_title": "this WEEK in TECH", "podcast_url": "http://leo.am/podcasts/twit",
		"description": "episode description", "mygpo_link": "http://gpodder.net/episode/1046492",
		"released": "2009-12-12T09:00:00"}`)

	episode, err := ts.publicClient().RetrieveEpisodeData(context.Background(),
		"http://example.com/files/s01e20.mp3", "http://leo.am/podcasts/twit")
	assert.NoErr(t, err)
	assert.Equal(t, episode.Title, "TWiT 245")
	assert.Equal(t, episode.Released.Year(), 2009)

	req := ts.last(t)
	assert.Equal(t, req.Path, "/api/2/data/episode.json")
	assert.Equal(t, req.RawQuery,
		"podcast=http%3A%2F%2Fleo.am%2Fpodcasts%2Ftwit&url=http%3A%2F%2Fexample.com%2Ffiles%2Fs01e20.mp3")
}

func TestPodcastToplist(t *testing.T) {
	ts := newTestServer(t)
	ts.respond(http.StatusOK, `[]`)

	ctx := context.Background()

	_, err := ts.publicClient().PodcastToplist(ctx, 50, 0)
	assert.NoErr(t, err)

	req := ts.last(t)
	assert.Equal(t, req.Path, "/toplist/50.json")
	assert.Equal(t, req.RawQuery, "")

	_, err = ts.publicClient().PodcastToplist(ctx, 50, 64)
	assert.NoErr(t, err)
	assert.Equal(t, ts.last(t).RawQuery, "scale_logo=64")
}

func TestPodcastSearch(t *testing.T) {
	ts := newTestServer(t)
	ts.respond(http.StatusOK, `[]`)

	_, err := ts.publicClient().PodcastSearch(context.Background(), "linux", 0)
	assert.NoErr(t, err)

	req := ts.last(t)
	assert.Equal(t, req.Path, "/search.json")
	assert.Equal(t, req.RawQuery, "q=linux")

	_, err = ts.publicClient().PodcastSearch(context.Background(), "going linux", 32)
	assert.NoErr(t, err)
	assert.Equal(t, ts.last(t).RawQuery, "q=going+linux&scale_logo=32")
}
