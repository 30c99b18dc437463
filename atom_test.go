package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermalink(t *testing.T) {
	base := "https://axwhizee.github.io/"
	assert.Equal(t, "https://axwhizee.github.io/2024/03/05/new-model.html", permalink(base, "2024-03-05-new-model"))
	assert.Equal(t, "https://axwhizee.github.io/2024/03/05/Post.html", permalink(base, "2024-03-05-Post"))
	assert.Equal(t, "https://axwhizee.github.io/about.html", permalink(base, "about"))
}

func TestFeedEntryMatchesSitemap(t *testing.T) {
	conf := testConf(t)
	conf.Site.BaseUrl = "https://axwhizee.github.io"
	writeFiles(t, conf.Crawler.OutputDir, map[string]string{"2024-03-05-new-model.md": "x"})

	p := &post{
		ID:         "2024-03-05-new-model",
		Title:      "New model",
		Blurb:      "A new model.",
		Date:       time.Date(2024, 3, 5, 10, 0, 0, 0, beijing),
		Categories: []category{"AI新闻"},
		Tags:       []string{"LLM"},
		Source:     "Lab",
		SourceURL:  "https://lab.example.com/new-model",
	}
	s := &Site{
		posts:       posts{p},
		conf:        conf,
		renderCache: map[string]string{p.ID: "<p>body</p>"},
		logger:      componentLogger("site"),
	}

	raw, err := s.renderFeed(conf.Site.Title, "", s.posts)
	require.NoError(t, err)
	feed := string(raw)

	urls, err := sitemapURLs(conf.Crawler.OutputDir, conf.Site.BaseUrl)
	require.NoError(t, err)
	require.Len(t, urls, 1)
	assert.Equal(t, "https://axwhizee.github.io/2024/03/05/new-model.html", urls[0].Loc)
	assert.Contains(t, feed, `href="`+urls[0].Loc+`"`)

	assert.Contains(t, feed, `term="llm"`)
	assert.Contains(t, feed, `label="LLM"`)
	assert.Contains(t, feed, `scheme="https://axwhizee.github.io/`+filepath.ToSlash(conf.Site.Build.TagsOutDir)+`/"`)
	assert.Contains(t, feed, `label="AI新闻"`)
	assert.Contains(t, feed, "https://lab.example.com/new-model")
}
