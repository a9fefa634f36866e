package mygpo

//
// client_test.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"net/http"
	"reflect"
	"testing"

	"gitlab.com/kabes/go-mygpo/internal/assert"
	"gitlab.com/kabes/go-mygpo/internal/config"
)

func TestUserAgentHeader(t *testing.T) {
	ts := newTestServer(t)
	ts.respond(http.StatusOK, `[]`)

	_, err := ts.publicClient().RetrieveTopTags(context.Background(), 10)
	assert.NoErr(t, err)

	assert.Equal(t, ts.last(t).UserAgent, "go-mygpo/"+config.Version)
}

func TestBasicAuthHeader(t *testing.T) {
	ts := newTestServer(t)
	ts.respond(http.StatusOK, `[]`)

	_, err := ts.authClient().ListDevices(context.Background())
	assert.NoErr(t, err)

	// user1:secret
	assert.Equal(t, ts.last(t).Auth, "Basic dXNlcjE6c2VjcmV0")
}

// Public operations invoked through an authenticated or device client
// must produce requests identical to the public client's, credentials
// included (none - public endpoints are called anonymously).
func TestPublicOperationDelegation(t *testing.T) {
	ts := newTestServer(t)
	ts.respond(http.StatusOK, `[]`)

	ctx := context.Background()

	_, err := ts.publicClient().RetrieveTopTags(ctx, 10)
	assert.NoErr(t, err)

	_, err = ts.authClient().RetrieveTopTags(ctx, 10)
	assert.NoErr(t, err)

	_, err = ts.deviceClient().RetrieveTopTags(ctx, 10)
	assert.NoErr(t, err)

	reqs := ts.all()
	assert.Len(t, reqs, 3)

	for _, req := range reqs[1:] {
		if !reflect.DeepEqual(req, reqs[0]) {
			t.Errorf("got: %#v; want: %#v", req, reqs[0])
		}
	}

	assert.Equal(t, reqs[0].Auth, "")
}

// Account-level operations invoked through a device client must be
// byte-identical to the authenticated client's requests.
func TestAuthenticatedOperationDelegation(t *testing.T) {
	ts := newTestServer(t)
	ts.respond(http.StatusOK, `[]`)

	ctx := context.Background()

	_, err := ts.authClient().ListDevices(ctx)
	assert.NoErr(t, err)

	_, err = ts.deviceClient().ListDevices(ctx)
	assert.NoErr(t, err)

	reqs := ts.all()
	assert.Len(t, reqs, 2)

	if !reflect.DeepEqual(reqs[0], reqs[1]) {
		t.Errorf("got: %#v; want: %#v", reqs[1], reqs[0])
	}

	assert.NotEqual(t, reqs[0].Auth, "")
}

func TestErrorOnStatus(t *testing.T) {
	ts := newTestServer(t)
	ts.respond(http.StatusNotFound, `not found`)

	_, err := ts.authClient().ListDevices(context.Background())
	assert.Err(t, err)

	var nerr *NetworkError
	assert.ErrSpec(t, err, reflect.TypeOf(nerr))
	assert.ErrSpec(t, err, "status 404")
}

func TestErrorOnInvalidJSON(t *testing.T) {
	ts := newTestServer(t)
	ts.respond(http.StatusOK, `{invalid`)

	_, err := ts.authClient().ListDevices(context.Background())
	assert.Err(t, err)
	assert.ErrSpec(t, err, "decode response")
}

func TestErrorOnConnectionFailure(t *testing.T) {
	ts := newTestServer(t)
	client := ts.authClient()
	ts.srv.Close()

	_, err := client.ListDevices(context.Background())
	assert.Err(t, err)

	var nerr *NetworkError
	assert.ErrSpec(t, err, reflect.TypeOf(nerr))
}

func TestServerTrailingSlash(t *testing.T) {
	client := NewCustomPublicClient("https://gpodder.example.org/", nil)
	assert.Equal(t, client.Server(), "https://gpodder.example.org")
}
