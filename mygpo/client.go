package mygpo

//
// client.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"

	"gitlab.com/kabes/go-mygpo/internal/config"
)

// DefaultServer is the gpodder.net production service.
const DefaultServer = "https://gpodder.net"

// PublicClient talks to the service without credentials; only the
// unauthenticated directory endpoints are available on it.
type PublicClient struct {
	hc     *http.Client
	server string
}

// NewPublicClient create client for DefaultServer using http.DefaultClient.
func NewPublicClient() *PublicClient {
	return NewCustomPublicClient(DefaultServer, nil)
}

// NewCustomPublicClient create client for given server; hc may be nil.
// Timeouts, TLS settings etc. are configured on hc by the caller.
func NewCustomPublicClient(server string, hc *http.Client) *PublicClient {
	if hc == nil {
		hc = http.DefaultClient
	}

	return &PublicClient{
		hc:     hc,
		server: trimServer(server),
	}
}

// Server return the base URL of the service this client talks to.
func (c *PublicClient) Server() string {
	return c.server
}

func (c *PublicClient) getJSON(ctx context.Context, uri string, query url.Values, dst any) error {
	return doJSON(ctx, c.hc, http.MethodGet, uri, query, nil, "", "", dst)
}

//---------------------------------------------------------------------

// AuthenticatedClient sends HTTP Basic credentials with every
// account-level request. Operations defined on PublicClient are promoted
// unchanged, so directory calls made through an AuthenticatedClient carry
// no credentials.
type AuthenticatedClient struct {
	*PublicClient

	username string
	password string
}

// NewAuthenticatedClient create client for DefaultServer.
func NewAuthenticatedClient(username, password string) *AuthenticatedClient {
	return NewCustomAuthenticatedClient(DefaultServer, username, password, nil)
}

// NewCustomAuthenticatedClient create client for given server; hc may be nil.
func NewCustomAuthenticatedClient(server, username, password string, hc *http.Client) *AuthenticatedClient {
	return &AuthenticatedClient{
		PublicClient: NewCustomPublicClient(server, hc),
		username:     username,
		password:     password,
	}
}

// Username return the account name this client authenticates as.
func (c *AuthenticatedClient) Username() string {
	return c.username
}

func (c *AuthenticatedClient) getJSON(ctx context.Context, uri string, query url.Values, dst any) error {
	return doJSON(ctx, c.hc, http.MethodGet, uri, query, nil, c.username, c.password, dst)
}

func (c *AuthenticatedClient) putJSON(ctx context.Context, uri string, query url.Values, body, dst any) error {
	return doJSON(ctx, c.hc, http.MethodPut, uri, query, body, c.username, c.password, dst)
}

func (c *AuthenticatedClient) postJSON(ctx context.Context, uri string, query url.Values, body, dst any) error {
	return doJSON(ctx, c.hc, http.MethodPost, uri, query, body, c.username, c.password, dst)
}

//---------------------------------------------------------------------

// DeviceClient scopes subscription synchronization to a single device id
// and promotes everything else from the embedded AuthenticatedClient.
type DeviceClient struct {
	*AuthenticatedClient

	deviceID string
}

// NewDeviceClient create client for DefaultServer.
func NewDeviceClient(username, password, deviceID string) *DeviceClient {
	return NewCustomDeviceClient(DefaultServer, username, password, deviceID, nil)
}

// NewCustomDeviceClient create client for given server; hc may be nil.
func NewCustomDeviceClient(server, username, password, deviceID string, hc *http.Client) *DeviceClient {
	return &DeviceClient{
		AuthenticatedClient: NewCustomAuthenticatedClient(server, username, password, hc),
		deviceID:            deviceID,
	}
}

// DeviceID return the device this client is scoped to.
func (c *DeviceClient) DeviceID() string {
	return c.deviceID
}

//---------------------------------------------------------------------

func trimServer(server string) string {
	for len(server) > 0 && server[len(server)-1] == '/' {
		server = server[:len(server)-1]
	}

	return server
}

func userAgent() string {
	return "go-mygpo/" + config.Version
}

// doJSON perform one request and decode the response body into dst (when
// dst is not nil). Any failure - transport, non-2xx status, decode - is
// reported as *NetworkError.
func doJSON( //nolint:cyclop
	ctx context.Context,
	hc *http.Client,
	method, uri string,
	query url.Values,
	body any,
	username, password string,
	dst any,
) error {
	var reqbody io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &NetworkError{URL: uri, Err: fmt.Errorf("encode request body: %w", err)}
		}

		reqbody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, uri, reqbody)
	if err != nil {
		return &NetworkError{URL: uri, Err: err}
	}

	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	req.Header.Set("User-Agent", userAgent())

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if username != "" {
		req.SetBasicAuth(username, password)
	}

	log.Ctx(ctx).Debug().Str("method", method).Str("url", req.URL.String()).Msg("mygpo: request")

	resp, err := hc.Do(req)
	if err != nil {
		return &NetworkError{URL: uri, Err: err}
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)

		return &NetworkError{URL: uri, StatusCode: resp.StatusCode, Err: errors.New(resp.Status)}
	}

	if dst == nil {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return &NetworkError{URL: uri, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}
