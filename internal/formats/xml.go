package formats

//
// xml.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"encoding/xml"
	"fmt"

	"gitlab.com/kabes/go-mygpo/mygpo"
)

// ------------------------------------------------------

type XMLPodcasts struct {
	Podcasts xmlPodcasts `xml:"podcasts"`
}

type xmlPodcasts struct {
	XMLName  xml.Name     `xml:"podcasts"`
	Podcasts []xmlPodcast `xml:"podcast"`
}

type xmlPodcast struct {
	Title         string `xml:"title"`
	URL           string `xml:"url"`
	Website       string `xml:"website"`
	MygpoLink     string `xml:"mygpo_link"`
	Description   string `xml:"description"`
	Subscribers   int    `xml:"subscribers"`
	LogoURL       string `xml:"logo_url"`
	ScaledLogoURL string `xml:"scaled_logo_url"`
}

func NewXMLPodcasts(podcasts []mygpo.Podcast) XMLPodcasts {
	xmlpod := make([]xmlPodcast, len(podcasts))

	for i, p := range podcasts {
		xmlpod[i] = xmlPodcast{
			Title:         p.Title,
			URL:           p.URL,
			Website:       p.Website,
			MygpoLink:     p.MygpoLink,
			Description:   p.Description,
			Subscribers:   p.Subscribers,
			LogoURL:       p.LogoURL,
			ScaledLogoURL: p.ScaledLogoURL,
		}
	}

	return XMLPodcasts{
		Podcasts: xmlPodcasts{
			Podcasts: xmlpod,
		},
	}
}

func (x XMLPodcasts) XML() ([]byte, error) {
	b, err := xml.MarshalIndent(x.Podcasts, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("marshal podcasts error: %w", err)
	}

	return append([]byte(xml.Header), b...), nil
}
