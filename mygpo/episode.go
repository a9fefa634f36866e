package mygpo

//
// episode.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Episode action types accepted by the service.
const (
	ActionDownload = "download"
	ActionDelete   = "delete"
	ActionPlay     = "play"
	ActionNew      = "new"
	// ActionFlattr is accepted by gpodder.net but undocumented.
	ActionFlattr = "flattr"
)

// EpisodeAction is one episode-related event in the per-account action
// log. On the wire the action discriminator shares the JSON object with
// the common fields; position/started/total exist only for play actions
// and started/total are either both present or both absent. Use the
// New*Action constructors to get these invariants right - the library
// does not validate before sending.
type EpisodeAction struct {
	Podcast   string     `json:"podcast"`
	Episode   string     `json:"episode"`
	Device    string     `json:"device,omitempty"`
	Action    string     `json:"action"`
	Timestamp *Timestamp `json:"timestamp,omitempty"`
	Started   *int       `json:"started,omitempty"`
	Position  *int       `json:"position,omitempty"`
	Total     *int       `json:"total,omitempty"`
}

func newEpisodeAction(action, podcast, episode string, ts *time.Time) EpisodeAction {
	ea := EpisodeAction{
		Podcast: podcast,
		Episode: episode,
		Action:  action,
	}
	if ts != nil {
		ea.Timestamp = NewTimestamp(*ts)
	}

	return ea
}

// NewDownloadAction record that the episode file was downloaded.
func NewDownloadAction(podcast, episode string, ts *time.Time) EpisodeAction {
	return newEpisodeAction(ActionDownload, podcast, episode, ts)
}

// NewDeleteAction record that a previously downloaded file was deleted.
func NewDeleteAction(podcast, episode string, ts *time.Time) EpisodeAction {
	return newEpisodeAction(ActionDelete, podcast, episode, ts)
}

// NewNewAction reset previous events for the episode; receiving clients
// interpret this, nothing is deleted on the service.
func NewNewAction(podcast, episode string, ts *time.Time) EpisodeAction {
	return newEpisodeAction(ActionNew, podcast, episode, ts)
}

// NewFlattrAction create the undocumented flattr event.
func NewFlattrAction(podcast, episode string, ts *time.Time) EpisodeAction {
	return newEpisodeAction(ActionFlattr, podcast, episode, ts)
}

// NewPlayStopAction record where playback stopped; started and total stay
// unset.
func NewPlayStopAction(podcast, episode string, ts *time.Time, position int) EpisodeAction {
	ea := newEpisodeAction(ActionPlay, podcast, episode, ts)
	ea.Position = &position

	return ea
}

// NewPlayAction record a playback range: stop position, start position
// and total episode length, all in seconds.
func NewPlayAction(podcast, episode string, ts *time.Time, position, started, total int) EpisodeAction {
	ea := newEpisodeAction(ActionPlay, podcast, episode, ts)
	ea.Position = &position
	ea.Started = &started
	ea.Total = &total

	return ea
}

// Validate check the payload invariants on a hand-built action.
func (e *EpisodeAction) Validate() error {
	switch e.Action {
	case ActionDownload, ActionDelete, ActionPlay, ActionNew, ActionFlattr:
	default:
		return fmt.Errorf("invalid action %q", e.Action)
	}

	if e.Action != ActionPlay {
		if e.Started != nil || e.Position != nil || e.Total != nil {
			return fmt.Errorf(
				"for action other than %q - started, position and total should be not set", ActionPlay)
		}

		return nil
	}

	if (e.Started == nil) != (e.Total == nil) {
		return fmt.Errorf("started and total must be set together for %q", ActionPlay)
	}

	return nil
}

//---------------------------------------------------------------------

// UploadEpisodeActionsResponse carry the cursor for the next
// GetEpisodeActions call and the URL rewrites, which apply independently
// to both the podcast and episode URL of each uploaded action.
type UploadEpisodeActionsResponse struct {
	UpdateURLs []URLUpdate `json:"update_urls"`
	Timestamp  int64       `json:"timestamp"`
}

// GetEpisodeActionsResponse list actions uploaded since the request's
// cursor plus the cursor for the next call.
type GetEpisodeActionsResponse struct {
	Actions   []EpisodeAction `json:"actions"`
	Timestamp int64           `json:"timestamp"`
}

// UploadEpisodeActions append actions to the account's event log. The
// log is per account, not per device; the optional per-action device id
// is informational only.
func (c *AuthenticatedClient) UploadEpisodeActions(
	ctx context.Context,
	actions []EpisodeAction,
) (*UploadEpisodeActionsResponse, error) {
	uri := fmt.Sprintf("%s/api/2/episodes/%s.json", c.server, c.username)

	var res UploadEpisodeActionsResponse
	if err := c.postJSON(ctx, uri, nil, actions, &res); err != nil {
		return nil, err
	}

	return &res, nil
}

// GetEpisodeActions return actions uploaded since the given cursor.
// Filters: podcast narrows to one feed when non-empty; since below zero
// omits the parameter and returns the entire history, which can be very
// large - pass a previous cursor whenever one exists; aggregated keeps
// only the latest action per episode, latest as decided by the server,
// not by the actions' own timestamps.
func (c *AuthenticatedClient) GetEpisodeActions(
	ctx context.Context,
	podcast string,
	since int64,
	aggregated bool,
) (*GetEpisodeActionsResponse, error) {
	uri := fmt.Sprintf("%s/api/2/episodes/%s.json", c.server, c.username)

	query := url.Values{}
	query.Set("aggregated", strconv.FormatBool(aggregated))

	if since >= 0 {
		query.Set("since", strconv.FormatInt(since, 10))
	}

	if podcast != "" {
		query.Set("podcast", podcast)
	}

	var res GetEpisodeActionsResponse
	if err := c.getJSON(ctx, uri, query, &res); err != nil {
		return nil, err
	}

	return &res, nil
}
