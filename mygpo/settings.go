package mygpo

//
// settings.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"fmt"
	"net/url"
)

// SaveSettingsRequest upsert the keys in Set and delete the keys in
// Remove within one settings scope; the server answers with the resulting
// full mapping for that scope.
type SaveSettingsRequest struct {
	Set    map[string]string `json:"set"`
	Remove []string          `json:"remove"`
}

func (c *AuthenticatedClient) settingsURL(scope string) string {
	return fmt.Sprintf("%s/api/2/settings/%s/%s.json", c.server, c.username, scope)
}

func (c *AuthenticatedClient) getSettings(
	ctx context.Context,
	scope string,
	query url.Values,
) (map[string]string, error) {
	var settings map[string]string
	if err := c.getJSON(ctx, c.settingsURL(scope), query, &settings); err != nil {
		return nil, err
	}

	return settings, nil
}

func (c *AuthenticatedClient) saveSettings(
	ctx context.Context,
	scope string,
	query url.Values,
	set map[string]string,
	remove []string,
) (map[string]string, error) {
	req := SaveSettingsRequest{Set: set, Remove: remove}

	var settings map[string]string
	if err := c.postJSON(ctx, c.settingsURL(scope), query, &req, &settings); err != nil {
		return nil, err
	}

	return settings, nil
}

//---------------------------------------------------------------------

// GetAccountSettings return the account-scope key/value mapping.
func (c *AuthenticatedClient) GetAccountSettings(ctx context.Context) (map[string]string, error) {
	return c.getSettings(ctx, "account", nil)
}

// SaveAccountSettings update the account-scope mapping.
func (c *AuthenticatedClient) SaveAccountSettings(
	ctx context.Context,
	set map[string]string,
	remove []string,
) (map[string]string, error) {
	return c.saveSettings(ctx, "account", nil, set, remove)
}

// GetPodcastSettings return the mapping scoped to one podcast feed.
func (c *AuthenticatedClient) GetPodcastSettings(ctx context.Context, podcast string) (map[string]string, error) {
	return c.getSettings(ctx, "podcast", url.Values{"podcast": []string{podcast}})
}

// SavePodcastSettings update the mapping scoped to one podcast feed.
func (c *AuthenticatedClient) SavePodcastSettings(
	ctx context.Context,
	set map[string]string,
	remove []string,
	podcast string,
) (map[string]string, error) {
	return c.saveSettings(ctx, "podcast", url.Values{"podcast": []string{podcast}}, set, remove)
}

// GetEpisodeSettings return the mapping scoped to one episode, identified
// by media URL and feed URL.
func (c *AuthenticatedClient) GetEpisodeSettings(
	ctx context.Context,
	podcast, episode string,
) (map[string]string, error) {
	query := url.Values{
		"podcast": []string{podcast},
		"episode": []string{episode},
	}

	return c.getSettings(ctx, "episode", query)
}

// SaveEpisodeSettings update the mapping scoped to one episode.
func (c *AuthenticatedClient) SaveEpisodeSettings(
	ctx context.Context,
	set map[string]string,
	remove []string,
	podcast, episode string,
) (map[string]string, error) {
	query := url.Values{
		"podcast": []string{podcast},
		"episode": []string{episode},
	}

	return c.saveSettings(ctx, "episode", query, set, remove)
}

//---------------------------------------------------------------------

// GetDeviceSettings return the mapping scoped to this device.
func (c *DeviceClient) GetDeviceSettings(ctx context.Context) (map[string]string, error) {
	return c.getSettings(ctx, "device", url.Values{"device": []string{c.deviceID}})
}

// SaveDeviceSettings update the mapping scoped to this device.
func (c *DeviceClient) SaveDeviceSettings(
	ctx context.Context,
	set map[string]string,
	remove []string,
) (map[string]string, error) {
	return c.saveSettings(ctx, "device", url.Values{"device": []string{c.deviceID}}, set, remove)
}
