package main

import (
	"bytes"
	"fmt"
	"sort"
	"time"
)

// article is one item taken from a feed, before it becomes a post.
type article struct {
	Title, Link, Summary string
	Source, SourceType   string
	Published            time.Time
	RawContent           string
	Content              string
	Tags                 []string
}

func (a *article) String() string {
	b := new(bytes.Buffer)
	b.WriteString("title: ")
	b.WriteString(a.Title)
	b.WriteString("\nsource: ")
	b.WriteString(a.Source)
	b.WriteString("\npublished: ")
	b.WriteString(a.Published.Format(time.RFC3339))
	b.WriteString("\nlink: ")
	b.WriteString(a.Link)
	b.WriteString("\ntags: ")
	fmt.Fprintln(b, a.Tags)

	summary := []rune(a.Summary)
	if len(summary) > 200 {
		summary = append(summary[:200], '.', '.', '.')
	}
	b.WriteString("summary: ")
	b.WriteString(string(summary))

	return b.String()
}

type articles []*article

func (as articles) Len() int           { return len(as) }
func (as articles) Swap(i, j int)      { as[i], as[j] = as[j], as[i] }
func (as articles) Less(i, j int) bool { return as[i].Published.After(as[j].Published) }

// newestFirst sorts in place using a stable order so equal timestamps keep
// their feed order.
func (as articles) newestFirst() {
	sort.Stable(as)
}
