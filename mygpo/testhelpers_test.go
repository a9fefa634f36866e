package mygpo

//
// testhelpers_test.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type testRequest struct {
	Method      string
	Path        string
	RawQuery    string
	Body        string
	Auth        string
	UserAgent   string
	ContentType string
}

// testServer record every incoming request and answer each with a fixed
// status and body.
type testServer struct {
	srv *httptest.Server

	mu       sync.Mutex
	status   int
	response string
	requests []testRequest
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{status: http.StatusOK, response: "{}"}
	ts.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		ts.mu.Lock()
		ts.requests = append(ts.requests, testRequest{
			Method:      r.Method,
			Path:        r.URL.EscapedPath(),
			RawQuery:    r.URL.RawQuery,
			Body:        string(body),
			Auth:        r.Header.Get("Authorization"),
			UserAgent:   r.Header.Get("User-Agent"),
			ContentType: r.Header.Get("Content-Type"),
		})
		status, response := ts.status, ts.response
		ts.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(ts.srv.Close)

	return ts
}

func (ts *testServer) respond(status int, response string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.status = status
	ts.response = response
}

func (ts *testServer) last(t *testing.T) testRequest {
	t.Helper()

	ts.mu.Lock()
	defer ts.mu.Unlock()

	if len(ts.requests) == 0 {
		t.Fatal("no requests recorded")
	}

	return ts.requests[len(ts.requests)-1]
}

func (ts *testServer) all() []testRequest {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	res := make([]testRequest, len(ts.requests))
	copy(res, ts.requests)

	return res
}

//---------------------------------------------------------------------

func (ts *testServer) publicClient() *PublicClient {
	return NewCustomPublicClient(ts.srv.URL, nil)
}

func (ts *testServer) authClient() *AuthenticatedClient {
	return NewCustomAuthenticatedClient(ts.srv.URL, "user1", "secret", nil)
}

func (ts *testServer) deviceClient() *DeviceClient {
	return NewCustomDeviceClient(ts.srv.URL, "user1", "secret", "dev1", nil)
}
