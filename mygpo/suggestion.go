package mygpo

//
// suggestion.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"fmt"
	"strings"
)

// Suggestion is a podcast the service recommends for the account;
// identity by feed URL.
type Suggestion struct {
	URL                 string `json:"url"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	Website             string `json:"website"`
	MygpoLink           string `json:"mygpo_link"`
	Subscribers         int    `json:"subscribers"`
	SubscribersLastWeek int    `json:"subscribers_last_week"`
	LogoURL             string `json:"logo_url,omitempty"`
}

func (s Suggestion) Equal(other Suggestion) bool {
	return s.URL == other.URL
}

func (s Suggestion) Compare(other Suggestion) int {
	return strings.Compare(s.URL, other.URL)
}

func (s Suggestion) String() string {
	return fmt.Sprintf("%s: %s <%s>", s.Title, s.Description, s.URL)
}

// RetrieveSuggestedPodcasts return up to maxResults suggestions for the
// account.
func (c *AuthenticatedClient) RetrieveSuggestedPodcasts(ctx context.Context, maxResults int) ([]Suggestion, error) {
	uri := fmt.Sprintf("%s/suggestions/%d.json", c.server, maxResults)

	var suggestions []Suggestion
	if err := c.getJSON(ctx, uri, nil, &suggestions); err != nil {
		return nil, err
	}

	return suggestions, nil
}
