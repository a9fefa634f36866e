package mygpo

//
// favorite_test.go
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

func TestGetFavoriteEpisodes(t *testing.T) {
	ts := newTestServer(t)
	ts.respond(http.StatusOK, `[
		{"title": "TWiT 245", "url": "http://example.com/files/s01e20.mp3",
		 "podcast_title": "this WEEK in TECH", "podcast_url": "http://leo.am/podcasts/twit",
		 "description": "episode description", "mygpo_link": "http://gpodder.net/episode/1046492",
		 "released": "2009-12-12T09:00:00"}
	]`)

	episodes, err := ts.authClient().GetFavoriteEpisodes(context.Background())
	assert.NoErr(t, err)
	assert.Len(t, episodes, 1)
	assert.Equal(t, episodes[0].URL, "http://example.com/files/s01e20.mp3")

	req := ts.last(t)
	assert.Equal(t, req.Method, http.MethodGet)
	assert.Equal(t, req.Path, "/api/2/favorites/user1.json")
	assert.NotEqual(t, req.Auth, "")
}
