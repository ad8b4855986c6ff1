package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sofiya-medyamin/newsmood/internal/article"
	"github.com/sofiya-medyamin/newsmood/internal/sentiment"
)

// fixedAnalyzer returns the same polarity for any text.
type fixedAnalyzer float64

func (f fixedAnalyzer) Score(string) float64 { return float64(f) }

// stubSource returns canned records or a canned error.
type stubSource struct {
	raws []article.Raw
	err  error
}

func (s *stubSource) Fetch(context.Context, string, int) ([]article.Raw, error) {
	return s.raws, s.err
}

func (s *stubSource) Name() string { return "stub" }

func TestRunEndToEnd(t *testing.T) {
	src := &stubSource{raws: []article.Raw{
		{
			"title":       "Markets rally",
			"description": "stocks surge on optimism",
			"publishedAt": "2030-06-10T08:00:00Z",
			"source":      map[string]any{"name": "Reuters"},
			"url":         "http://x",
		},
	}}

	// Same date as the article's publish date.
	now := time.Date(2030, 6, 10, 12, 0, 0, 0, time.UTC)
	out := Run(context.Background(), src, fixedAnalyzer(0.6), "markets", 25, now)

	if out.FetchErr != nil {
		t.Fatalf("unexpected fetch error: %v", out.FetchErr)
	}
	if len(out.Articles) != 1 {
		t.Fatalf("got %d articles, want 1", len(out.Articles))
	}

	a := out.Articles[0]
	if a.Label != sentiment.Positive {
		t.Errorf("label = %q, want Positive", a.Label)
	}
	if a.Polarity != 0.6 {
		t.Errorf("polarity = %v, want 0.6", a.Polarity)
	}
	if a.Source != "Reuters" {
		t.Errorf("source = %q, want Reuters", a.Source)
	}

	if len(out.Buckets.AllTime) != 1 {
		t.Error("article must appear in AllTime")
	}
	if len(out.Buckets.Today) != 1 {
		t.Error("article published on the current date must appear in Today")
	}
	if len(out.Buckets.ThisWeek) != 1 {
		t.Error("article published in the current ISO week must appear in ThisWeek")
	}
}

func TestRunBucketingOutsideWindow(t *testing.T) {
	src := &stubSource{raws: []article.Raw{
		{"title": "Markets rally", "publishedAt": "2030-06-10T08:00:00Z"},
	}}

	// A week later: still AllTime, not Today or ThisWeek.
	now := time.Date(2030, 6, 17, 12, 0, 0, 0, time.UTC)
	out := Run(context.Background(), src, fixedAnalyzer(0.6), "", 25, now)

	if len(out.Buckets.AllTime) != 1 {
		t.Error("article must stay in AllTime")
	}
	if len(out.Buckets.Today) != 0 || len(out.Buckets.ThisWeek) != 0 {
		t.Error("article outside the window must not appear in Today or ThisWeek")
	}
}

func TestRunMissingTitleExcludedEverywhere(t *testing.T) {
	src := &stubSource{raws: []article.Raw{
		{"description": "no title here", "publishedAt": "2030-06-10T08:00:00Z"},
	}}

	now := time.Date(2030, 6, 10, 12, 0, 0, 0, time.UTC)
	out := Run(context.Background(), src, fixedAnalyzer(0.0), "", 25, now)

	if len(out.Articles) != 0 {
		t.Error("record without a title must be excluded from the article set")
	}
	if len(out.Buckets.Today)+len(out.Buckets.ThisWeek)+len(out.Buckets.AllTime) != 0 {
		t.Error("record without a title must be excluded from all buckets")
	}
	if len(out.Skipped) != 1 {
		t.Errorf("expected 1 skip, got %d", len(out.Skipped))
	}
}

func TestRunFetchFailureDegrades(t *testing.T) {
	src := &stubSource{err: errors.New("status 401")}

	out := Run(context.Background(), src, fixedAnalyzer(0.0), "q", 25, time.Now())

	if out.FetchErr == nil {
		t.Error("fetch error must be surfaced")
	}
	if len(out.Articles) != 0 {
		t.Error("fetch failure must degrade to an empty set")
	}
	if len(out.Buckets.AllTime) != 0 {
		t.Error("buckets must be empty after a failed fetch")
	}
}

func TestProcessUsesAnalyzerPerRecord(t *testing.T) {
	raws := []article.Raw{
		{"title": "one", "publishedAt": "2030-06-10T08:00:00Z"},
		{"title": "two", "publishedAt": "2030-06-10T09:00:00Z"},
	}
	out := Process(raws, fixedAnalyzer(-0.5), time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC))

	for _, a := range out.Articles {
		if a.Polarity != -0.5 || a.Label != sentiment.Negative {
			t.Errorf("article %q: polarity=%v label=%q", a.Title, a.Polarity, a.Label)
		}
	}
}
