package mygpo

//
// subscription.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Podcast is a feed record as returned by the subscription and directory
// endpoints. The feed URL is the primary key; all other fields are
// descriptive only.
type Podcast struct {
	URL                 string `json:"url"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	Subscribers         int    `json:"subscribers"`
	SubscribersLastWeek int    `json:"subscribers_last_week"`
	LogoURL             string `json:"logo_url,omitempty"`
	ScaledLogoURL       string `json:"scaled_logo_url,omitempty"`
	Website             string `json:"website,omitempty"`
	MygpoLink           string `json:"mygpo_link"`
}

// Equal compare podcasts by feed URL only.
func (p Podcast) Equal(other Podcast) bool {
	return p.URL == other.URL
}

// Compare order podcasts by feed URL only.
func (p Podcast) Compare(other Podcast) int {
	return strings.Compare(p.URL, other.URL)
}

func (p Podcast) String() string {
	return fmt.Sprintf("%s: %s <%s>", p.Title, p.Description, p.URL)
}

//---------------------------------------------------------------------

// URLUpdate is one server-side URL rewrite: the URL as submitted and its
// canonical form. A canonical empty string means the submitted URL was
// rejected (non-ASCII or non-http(s)) and is ignored by the service.
// On the wire this is a 2-element JSON array, not an object.
type URLUpdate struct {
	Old string
	New string
}

func (u URLUpdate) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{u.Old, u.New}) //nolint:wrapcheck
}

func (u *URLUpdate) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("decode url update: %w", err)
	}

	if len(pair) != 2 { //nolint:mnd
		return fmt.Errorf("decode url update: expected 2 elements, got %d", len(pair))
	}

	u.Old, u.New = pair[0], pair[1]

	return nil
}

// ApplyURLUpdates rewrite every element of urls that exactly matches a
// submitted URL from updates to its canonical form; URLs canonicalized to
// the empty string are dropped. Callers must run their local lists through
// this after every upload that returned update_urls.
func ApplyURLUpdates(urls []string, updates []URLUpdate) []string {
	if len(updates) == 0 {
		return urls
	}

	canonical := make(map[string]string, len(updates))
	for _, u := range updates {
		canonical[u.Old] = u.New
	}

	res := make([]string, 0, len(urls))

	for _, u := range urls {
		if cu, ok := canonical[u]; ok {
			u = cu
		}

		if u != "" {
			res = append(res, u)
		}
	}

	return res
}

//---------------------------------------------------------------------

type uploadSubscriptionChangesRequest struct {
	Add    []string `json:"add"`
	Remove []string `json:"remove"`
}

// UploadSubscriptionChangesResponse carry the cursor to use as `since` in
// the next GetSubscriptionChanges call plus any URL rewrites.
type UploadSubscriptionChangesResponse struct {
	UpdateURLs []URLUpdate `json:"update_urls"`
	Timestamp  int64       `json:"timestamp"`
}

// GetSubscriptionChangesResponse is the add/remove delta since the cursor
// the request was made with.
type GetSubscriptionChangesResponse struct {
	Add       []string `json:"add"`
	Remove    []string `json:"remove"`
	Timestamp int64    `json:"timestamp"`
}

// GetAllSubscriptions return all podcasts the account subscribes to, over
// all devices, as rich records.
func (c *AuthenticatedClient) GetAllSubscriptions(ctx context.Context) ([]Podcast, error) {
	uri := fmt.Sprintf("%s/subscriptions/%s.json", c.server, c.username)

	var subs []Podcast
	if err := c.getJSON(ctx, uri, nil, &subs); err != nil {
		return nil, err
	}

	return subs, nil
}

// GetDeviceSubscriptions return the feed URLs this device subscribes to.
func (c *DeviceClient) GetDeviceSubscriptions(ctx context.Context) ([]string, error) {
	uri := fmt.Sprintf("%s/subscriptions/%s/%s.json", c.server, c.username, c.deviceID)

	var urls []string
	if err := c.getJSON(ctx, uri, nil, &urls); err != nil {
		return nil, err
	}

	return urls, nil
}

// UploadDeviceSubscriptions replace the device's subscription list
// wholesale; there are no merge semantics.
func (c *DeviceClient) UploadDeviceSubscriptions(ctx context.Context, subscriptions []string) error {
	uri := fmt.Sprintf("%s/subscriptions/%s/%s.json", c.server, c.username, c.deviceID)

	return c.putJSON(ctx, uri, nil, subscriptions, nil)
}

// UploadSubscriptionChanges send an add/remove delta for this device.
// The two sets should be disjoint; the server defines what happens when
// they are not. The returned update_urls must be applied to the local
// list, see ApplyURLUpdates.
func (c *DeviceClient) UploadSubscriptionChanges(
	ctx context.Context,
	add, remove []string,
) (*UploadSubscriptionChangesResponse, error) {
	uri := fmt.Sprintf("%s/api/2/subscriptions/%s/%s.json", c.server, c.username, c.deviceID)
	req := uploadSubscriptionChangesRequest{Add: add, Remove: remove}

	var res UploadSubscriptionChangesResponse
	if err := c.postJSON(ctx, uri, nil, &req, &res); err != nil {
		return nil, err
	}

	return &res, nil
}

// GetSubscriptionChanges return the delta since the given cursor. The
// cursor must come from a previous upload or poll of the same device;
// cursors are not interchangeable between devices.
func (c *DeviceClient) GetSubscriptionChanges(
	ctx context.Context,
	since int64,
) (*GetSubscriptionChangesResponse, error) {
	uri := fmt.Sprintf("%s/api/2/subscriptions/%s/%s.json", c.server, c.username, c.deviceID)
	query := url.Values{"since": []string{strconv.FormatInt(since, 10)}}

	var res GetSubscriptionChangesResponse
	if err := c.getJSON(ctx, uri, query, &res); err != nil {
		return nil, err
	}

	return &res, nil
}
