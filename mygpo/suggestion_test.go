package mygpo

//
// suggestion_test.go
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

func TestSuggestionIdentity(t *testing.T) {
	sugg1 := Suggestion{URL: "http://goinglinux.com/mp3podcast.xml", Title: "Going Linux"}
	sugg2 := Suggestion{URL: "http://goinglinux.com/mp3podcast.xml", Title: "renamed"}

	assert.True(t, sugg1.Equal(sugg2))
	assert.Equal(t, sugg1.Compare(sugg2), 0)
}

func TestRetrieveSuggestedPodcasts(t *testing.T) {
	ts := newTestServer(t)
	ts.respond(http.StatusOK, `[
		{"url": "http://goinglinux.com/mp3podcast.xml", "title": "Going Linux",
		 "description": "Going Linux", "website": "http://goinglinux.com",
		 "mygpo_link": "http://gpodder.net/podcast/11171",
		 "subscribers": 571, "subscribers_last_week": 571}
	]`)

	suggestions, err := ts.authClient().RetrieveSuggestedPodcasts(context.Background(), 10)
	assert.NoErr(t, err)
	assert.Len(t, suggestions, 1)
	assert.Equal(t, suggestions[0].Title, "Going Linux")

	req := ts.last(t)
	assert.Equal(t, req.Method, http.MethodGet)
	assert.Equal(t, req.Path, "/suggestions/10.json")
	assert.NotEqual(t, req.Auth, "")
}
