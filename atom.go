package main

import (
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	atom "github.com/thomas11/atomgenerator"
)

func (s *Site) RenderAtom() error {
	build := s.conf.Site.Build
	filePath := filepath.Join(build.OutDir, "index.xml")
	err := s.renderAndSaveFeed(s.conf.Site.Title, "", filePath, s.posts)
	if err != nil {
		return err
	}

	return s.renderAndSaveCategoriesAtom()
}

func (s *Site) baseURL() string {
	return strings.TrimRight(s.conf.Site.BaseUrl, "/") + "/"
}

func (s *Site) renderFeed(title, relUrl string, articles []*post) ([]byte, error) {
	feedUrl := s.baseURL() + strings.TrimPrefix(relUrl, "/")

	feed := atom.Feed{
		Title:   title,
		Link:    feedUrl,
		PubDate: time.Now(),
	}
	feed.AddAuthor(atom.Author{
		Name: s.conf.Site.Author,
		Uri:  s.conf.Site.AuthorUri,
	})

	for _, article := range articles {
		feed.AddEntry(s.entryForPost(article))
	}

	if errs := feed.Validate(); len(errs) > 0 {
		for _, e := range errs {
			s.logger.Error().Err(e).Str("feed", title).Msg("atom feed is not valid")
		}
		return nil, errors.Join(errs...)
	}

	return feed.GenXml()
}

// entryForPost links to the published permalink, not the preview page.
// Crawled articles credit their source below the body.
func (s *Site) entryForPost(p *post) *atom.Entry {
	build := s.conf.Site.Build
	e := &atom.Entry{
		Title:       p.Title,
		Description: p.Blurb,
		Link:        permalink(s.conf.Site.BaseUrl, p.ID),
		PubDate:     p.Date,
	}

	for _, cat := range p.Categories {
		e.AddCategory(atom.Category{
			Term:   cat.Id(),
			Label:  cat.String(),
			Scheme: s.baseURL() + build.CategoriesOutDir + "/",
		})
	}
	for _, tag := range p.Tags {
		e.AddCategory(atom.Category{
			Term:   category(tag).Id(),
			Label:  tag,
			Scheme: s.baseURL() + build.TagsOutDir + "/",
		})
	}

	content := s.renderCache[p.ID]
	if p.SourceURL != "" {
		source := p.Source
		if source == "" {
			source = p.SourceURL
		}
		content += fmt.Sprintf(`<p>来源：<a href="%s">%s</a></p>`,
			html.EscapeString(p.SourceURL), html.EscapeString(source))
	}
	e.Content = content

	return e
}

func (s *Site) renderAndSaveFeed(title, relUrl, filePath string, articles []*post) error {
	atomXml, err := s.renderFeed(title, relUrl, articles)
	if err != nil {
		return err
	}

	return os.WriteFile(filePath, atomXml, os.FileMode(0664))
}

func (s *Site) renderAndSaveCategoriesAtom() error {
	build := s.conf.Site.Build
	for _, catArticles := range groupByCategory(s.posts) {
		category := catArticles.Category
		title := s.conf.Site.Title + ` Category "` + category.String() + `."`
		urlPath := build.CategoriesOutDir + "/" + category.Id() + ".html"
		filePath := filepath.Join(build.OutDir, build.CategoriesOutDir, category.Id()+".xml")

		err := s.renderAndSaveFeed(title, urlPath, filePath, catArticles.Posts)
		if err != nil {
			return err
		}
	}
	return nil
}
