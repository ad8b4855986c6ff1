// Package normalize converts raw provider records into validated articles.
// Invalid records are dropped with a recorded reason; a bad record never
// aborts the batch.
package normalize

import (
	"fmt"
	"time"

	"github.com/sofiya-medyamin/newsmood/internal/article"
)

// TimeLayout is the publish timestamp format used by the search provider.
const TimeLayout = "2006-01-02T15:04:05Z"

// Skip records why a raw article was discarded.
type Skip struct {
	Title  string // offending article title, or "(untitled)"
	Reason string
}

func (s Skip) String() string {
	return fmt.Sprintf("skipping %q: %s", s.Title, s.Reason)
}

// Result holds the outcome of normalizing a batch.
type Result struct {
	Articles []article.Processed
	Skipped  []Skip
}

// Run normalizes a batch of raw records in a single pass. Polarity and label
// are not set here; scoring happens after normalization.
func Run(raws []article.Raw) Result {
	var res Result
	for _, raw := range raws {
		a, skip := Normalize(raw)
		if skip != nil {
			res.Skipped = append(res.Skipped, *skip)
			continue
		}
		res.Articles = append(res.Articles, a)
	}
	return res
}

// Normalize validates one raw record. Exactly one of the return values is
// meaningful: a processed article, or a skip reason.
func Normalize(raw article.Raw) (article.Processed, *Skip) {
	title, ok := optionalText(raw["title"])
	if !ok {
		return article.Processed{}, &Skip{Title: "(untitled)", Reason: "title is not text"}
	}
	if title == "" {
		return article.Processed{}, &Skip{Title: "(untitled)", Reason: "missing title"}
	}

	dateStr, ok := optionalText(raw["publishedAt"])
	if !ok {
		return article.Processed{}, &Skip{Title: title, Reason: "publishedAt is not text"}
	}
	if dateStr == "" {
		return article.Processed{}, &Skip{Title: title, Reason: "missing publishedAt"}
	}
	published, err := time.Parse(TimeLayout, dateStr)
	if err != nil {
		return article.Processed{}, &Skip{Title: title, Reason: fmt.Sprintf("bad publishedAt %q", dateStr)}
	}

	desc, ok := optionalText(raw["description"])
	if !ok {
		return article.Processed{}, &Skip{Title: title, Reason: "description is not text"}
	}

	url, ok := optionalText(raw["url"])
	if !ok {
		return article.Processed{}, &Skip{Title: title, Reason: "url is not text"}
	}

	source, ok := sourceName(raw["source"])
	if !ok {
		return article.Processed{}, &Skip{Title: title, Reason: "source name is not text"}
	}

	return article.Processed{
		Title:       title,
		Description: desc,
		Published:   published,
		Source:      source,
		URL:         url,
	}, nil
}

// optionalText resolves a field where text is expected. Absent and null both
// resolve to "". A value of any other type is a mismatch.
func optionalText(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return t, true
	default:
		return "", false
	}
}

// sourceName digs the provider name out of the nested source object,
// defaulting to "Unknown" when absent.
func sourceName(v any) (string, bool) {
	if v == nil {
		return "Unknown", true
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	name, ok := optionalText(obj["name"])
	if !ok {
		return "", false
	}
	if name == "" {
		return "Unknown", true
	}
	return name, true
}
