package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sofiya-medyamin/newsmood/internal/article"
	"github.com/sofiya-medyamin/newsmood/internal/report"
	"github.com/sofiya-medyamin/newsmood/internal/sentiment"
)

func (a *App) renderDashboard(width, height int) string {
	metrics := a.renderMetrics()

	chartHeight := height - lipgloss.Height(metrics) - 2
	if chartHeight < 1 {
		chartHeight = 1
	}
	chart := renderChart(a.outcome.Articles, width, chartHeight)

	return lipgloss.JoinVertical(lipgloss.Left, metrics, "", chart)
}

func (a *App) renderMetrics() string {
	articles := a.outcome.Articles
	tally := report.Tally(articles)

	boxes := []string{
		metricBox("Avg Polarity", fmt.Sprintf("%+.2f", report.Average(articles))),
		metricBox("Articles", fmt.Sprintf("%d", len(articles))),
		metricBox("Pos / Neg / Neu", fmt.Sprintf("%d / %d / %d",
			tally[sentiment.Positive], tally[sentiment.Negative], tally[sentiment.Neutral])),
	}
	if n := len(a.outcome.Skipped); n > 0 {
		boxes = append(boxes, metricBox("Skipped", fmt.Sprintf("%d", n)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func metricBox(label, value string) string {
	inner := lipgloss.JoinVertical(lipgloss.Left,
		metricLabelStyle.Render(label),
		metricValueStyle.Render(value),
	)
	return metricBoxStyle.Render(inner)
}

// renderChart draws one horizontal bar per article, keyed by index, bar
// length proportional to |polarity| and colored by sentiment class.
func renderChart(articles []article.Processed, width, height int) string {
	if len(articles) == 0 {
		return emptyStyle.Render("  No articles to chart.")
	}

	// index + bar + value: " 12 ████████ +0.63  title"
	maxBar := width/3 - 10
	if maxBar < 4 {
		maxBar = 4
	}
	titleWidth := width - maxBar - 12
	if titleWidth < 0 {
		titleWidth = 0
	}

	rows := articles
	overflow := 0
	if len(rows) > height {
		overflow = len(rows) - (height - 1)
		rows = rows[:height-1]
	}

	var b strings.Builder
	for i, art := range rows {
		b.WriteString(chartIndexStyle.Render(fmt.Sprintf(" %2d ", i)))
		b.WriteString(barFor(art.Polarity, string(art.Label), maxBar))
		b.WriteString(chartIndexStyle.Render(fmt.Sprintf(" %+.2f  ", art.Polarity)))
		b.WriteString(rowStyle.Render(truncateStr(art.Title, titleWidth)))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	if overflow > 0 {
		b.WriteString("\n")
		b.WriteString(emptyStyle.Render(fmt.Sprintf("  … %d more", overflow)))
	}
	return b.String()
}

// barFor renders a polarity bar of at least one cell so neutral articles
// remain visible.
func barFor(polarity float64, label string, maxBar int) string {
	n := int(abs(polarity) * float64(maxBar))
	if n < 1 {
		n = 1
	}
	if n > maxBar {
		n = maxBar
	}
	bar := strings.Repeat("█", n) + strings.Repeat(" ", maxBar-n)
	return labelStyle(label).Render(bar)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
