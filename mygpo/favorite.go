package mygpo

//
// favorite.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"fmt"
)

// GetFavoriteEpisodes return the episodes the user flagged as favorite
// on the service's web interface.
func (c *AuthenticatedClient) GetFavoriteEpisodes(ctx context.Context) ([]Episode, error) {
	uri := fmt.Sprintf("%s/api/2/favorites/%s.json", c.server, c.username)

	var episodes []Episode
	if err := c.getJSON(ctx, uri, nil, &episodes); err != nil {
		return nil, err
	}

	return episodes, nil
}
