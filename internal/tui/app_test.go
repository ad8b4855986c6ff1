package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/sofiya-medyamin/newsmood/internal/article"
	"github.com/sofiya-medyamin/newsmood/internal/bucket"
	"github.com/sofiya-medyamin/newsmood/internal/pipeline"
	"github.com/sofiya-medyamin/newsmood/internal/sentiment"
)

func sampleOutcome() pipeline.Outcome {
	articles := []article.Processed{
		{Title: "up", Polarity: 0.6, Label: sentiment.Positive, Source: "Reuters",
			Published: time.Date(2030, 6, 10, 8, 0, 0, 0, time.UTC), URL: "http://x"},
		{Title: "down", Polarity: -0.4, Label: sentiment.Negative, Source: "AP",
			Published: time.Date(2030, 6, 9, 8, 0, 0, 0, time.UTC)},
	}
	return pipeline.Outcome{
		Articles: articles,
		Buckets:  bucket.Partition(articles, time.Date(2030, 6, 10, 12, 0, 0, 0, time.UTC)),
	}
}

func testApp() *App {
	a := NewApp(RunOpts{Query: "markets", Count: 25})
	a.width = 100
	a.height = 30
	a.outcome = sampleOutcome()
	a.loaded = true
	return a
}

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abc", 3, "abc"},
		{"", 5, ""},
		{"test", 0, ""},
	}
	for _, tt := range tests {
		if got := truncateStr(tt.input, tt.n); got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestCellPadsAndTruncates(t *testing.T) {
	if got := cell("ab", 5); got != "ab   " {
		t.Errorf("cell pad = %q", got)
	}
	got := cell("abcdefgh", 5)
	if len([]rune(got)) != 5 {
		t.Errorf("cell truncate width = %d, want 5 (%q)", len([]rune(got)), got)
	}
}

func barCells(s string) int {
	return strings.Count(s, "█")
}

func TestBarForProportional(t *testing.T) {
	full := barCells(barFor(1.0, "Positive", 20))
	half := barCells(barFor(0.5, "Positive", 20))
	if full != 20 {
		t.Errorf("full bar = %d cells, want 20", full)
	}
	if half != 10 {
		t.Errorf("half bar = %d cells, want 10", half)
	}
	if barCells(barFor(-0.5, "Negative", 20)) != 10 {
		t.Error("negative polarity should chart by magnitude")
	}
}

func TestBarForNeutralVisible(t *testing.T) {
	if barCells(barFor(0.0, "Neutral", 20)) != 1 {
		t.Error("zero polarity should still render a one-cell bar")
	}
}

func TestNearZeroPolarityStyledNeutral(t *testing.T) {
	// Color follows the classification label, not the raw polarity sign:
	// a +0.05 article sits in the neutral band and renders neutral.
	got := labelStyle(string(sentiment.LabelFor(0.05)))
	if got.GetForeground() != neutralStyle.GetForeground() {
		t.Error("polarity inside the neutral band should use the neutral color")
	}
	if got.GetForeground() == positiveStyle.GetForeground() {
		t.Error("positive color must be reserved for polarity > 0.1")
	}
}

func TestRenderChartEmpty(t *testing.T) {
	got := renderChart(nil, 80, 10)
	if !strings.Contains(got, "No articles") {
		t.Errorf("empty chart should say so, got %q", got)
	}
}

func TestRenderArticleListEmptyIndicator(t *testing.T) {
	a := testApp()
	got := a.renderArticleList(nil, 10, 80)
	if !strings.Contains(got, "No articles found for this period.") {
		t.Errorf("empty bucket must render an explicit indicator, got %q", got)
	}
}

func TestRenderEntryWithoutURL(t *testing.T) {
	art := article.Processed{
		Title:     "down",
		Label:     sentiment.Negative,
		Source:    "AP",
		Published: time.Date(2030, 6, 9, 8, 0, 0, 0, time.UTC),
	}
	got := renderEntry(art, false, 80)
	if !strings.Contains(got, "No source URL available.") {
		t.Error("entry without URL should say so")
	}
	if !strings.Contains(got, "2030-06-09 08:00") {
		t.Errorf("entry should show the formatted timestamp, got %q", got)
	}
}

func TestTabArticles(t *testing.T) {
	a := testApp()

	a.tab = tabAll
	if len(a.tabArticles()) != 2 {
		t.Errorf("All Time tab = %d articles, want 2", len(a.tabArticles()))
	}

	a.tab = tabToday
	today := a.tabArticles()
	if len(today) != 1 || today[0].Title != "up" {
		t.Errorf("Today tab = %v", today)
	}
}

func TestRunDoneClampsCursor(t *testing.T) {
	a := testApp()
	a.cursor = 10

	model, _ := a.Update(runDoneMsg{outcome: sampleOutcome()})
	got := model.(*App)
	if got.cursor >= len(got.outcome.Articles) {
		t.Errorf("cursor = %d, should be clamped below %d", got.cursor, len(got.outcome.Articles))
	}
}

func TestViewRendersAllModes(t *testing.T) {
	a := testApp()
	for _, v := range []view{viewDashboard, viewTable, viewArticles} {
		a.view = v
		if out := a.View(); out == "" {
			t.Errorf("view %d rendered empty output", v)
		}
	}
}
