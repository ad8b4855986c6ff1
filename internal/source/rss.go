package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/sofiya-medyamin/newsmood/internal/article"
	"github.com/sofiya-medyamin/newsmood/internal/normalize"
)

// RSSAdapter serves a single RSS or Atom feed through the same raw-record
// shape as the search provider, so the rest of the pipeline is
// provider-blind. The query becomes a case-insensitive substring match over
// title and description; an empty query matches everything.
type RSSAdapter struct {
	feedURL string
	parser  *gofeed.Parser
}

func NewRSSAdapter(feedURL string) *RSSAdapter {
	return &RSSAdapter{feedURL: feedURL, parser: gofeed.NewParser()}
}

func (a *RSSAdapter) Name() string {
	return "RSS"
}

func (a *RSSAdapter) Fetch(ctx context.Context, query string, limit int) ([]article.Raw, error) {
	feed, err := a.parser.ParseURLWithContext(a.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching feed %s: %w", a.feedURL, err)
	}

	limit = ClampLimit(limit)
	needle := strings.ToLower(strings.TrimSpace(query))

	var raws []article.Raw
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		if !matches(item, needle) {
			continue
		}
		raws = append(raws, itemToRaw(feed, item))
		if len(raws) >= limit {
			break
		}
	}
	return raws, nil
}

func matches(item *gofeed.Item, needle string) bool {
	if needle == "" {
		return true
	}
	hay := strings.ToLower(item.Title + " " + item.Description)
	return strings.Contains(hay, needle)
}

// itemToRaw reshapes a feed item into the provider record schema. Fields a
// feed does not carry are simply left out; the normalizer applies defaults
// and discards as usual.
func itemToRaw(feed *gofeed.Feed, item *gofeed.Item) article.Raw {
	raw := article.Raw{
		"title": item.Title,
		"url":   item.Link,
	}
	if item.Description != "" {
		raw["description"] = stripHTML(item.Description)
	}
	if item.PublishedParsed != nil {
		raw["publishedAt"] = item.PublishedParsed.UTC().Format(normalize.TimeLayout)
	} else if item.UpdatedParsed != nil {
		raw["publishedAt"] = item.UpdatedParsed.UTC().Format(normalize.TimeLayout)
	}
	if feed.Title != "" {
		raw["source"] = map[string]any{"name": feed.Title}
	}
	return raw
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
