package formats

//
// opml_test.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"testing"

	"gitlab.com/kabes/go-mygpo/internal/assert"
	"gitlab.com/kabes/go-mygpo/mygpo"
)

func TestFormatOPML(t *testing.T) {
	urls := []string{
		"http://www.example.com/podcast1/podcast.xml",
		"http://www.example.com/podcast2/podcast.xml",
		"http://www.example.com/podcast3/podcast.xml",
	}
	exp := `<?xml version="1.0" encoding="UTF-8"?>
<opml version="2.0">
	<head>
		<title>go-mygpo</title>
	</head>
	<body>
		<outline type="rss" xmlUrl="http://www.example.com/podcast1/podcast.xml"></outline>
		<outline type="rss" xmlUrl="http://www.example.com/podcast2/podcast.xml"></outline>
		<outline type="rss" xmlUrl="http://www.example.com/podcast3/podcast.xml"></outline>
	</body>
</opml>`

	opml := NewOPML("go-mygpo")
	opml.AddURL(urls...)

	res, err := opml.XML()
	assert.NoErr(t, err)
	assert.Equal(t, string(res), exp)
}

func TestParseOPML(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<opml version="2.0">
	<head><title>subscriptions</title></head>
	<body>
		<outline type="rss" title="Going Linux" xmlUrl="http://goinglinux.com/mp3podcast.xml"></outline>
		<outline type="rss" xmlUrl="http://example.org/podcast.php"></outline>
		<outline title="no url outline"></outline>
	</body>
</opml>`

	opml, err := NewOPMLFromBytes([]byte(doc))
	assert.NoErr(t, err)
	assert.Equal(t, opml.Head.Title, "subscriptions")
	assert.EqualSorted(t, opml.ExtractsURLs(),
		[]string{"http://goinglinux.com/mp3podcast.xml", "http://example.org/podcast.php"})

	_, err = NewOPMLFromBytes([]byte("not opml"))
	assert.Err(t, err)
}

func TestOPMLAddPodcasts(t *testing.T) {
	opml := NewOPML("go-mygpo")
	opml.AddPodcasts(mygpo.Podcast{
		URL:         "http://goinglinux.com/mp3podcast.xml",
		Title:       "Going Linux",
		Description: "Going Linux",
	})

	assert.Len(t, opml.Body.Outlines, 1)
	assert.Equal(t, opml.Body.Outlines[0].Title, "Going Linux")
	assert.Equal(t, opml.Body.Outlines[0].XMLURL, "http://goinglinux.com/mp3podcast.xml")
}
