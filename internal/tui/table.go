package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/sofiya-medyamin/newsmood/internal/article"
)

const (
	colSentiment = 10
	colPolarity  = 9
	colSource    = 18
)

func (a *App) renderTable(width, height int) string {
	articles := a.outcome.Articles
	if len(articles) == 0 {
		return emptyStyle.Render("  No articles found.")
	}

	titleWidth := width - colSentiment - colPolarity - colSource - 8
	if titleWidth < 12 {
		titleWidth = 12
	}

	header := " " + tableHeaderStyle.Render(
		cell("Title", titleWidth)+"  "+
			cell("Sentiment", colSentiment)+"  "+
			cell("Polarity", colPolarity)+"  "+
			cell("Source", colSource),
	)

	// Scroll so the cursor stays visible
	visible := height - 1
	if visible < 1 {
		visible = 1
	}
	start := 0
	if a.cursor >= visible {
		start = a.cursor - visible + 1
	}
	end := start + visible
	if end > len(articles) {
		end = len(articles)
	}

	rows := make([]string, 0, end-start+1)
	rows = append(rows, header)
	for i := start; i < end; i++ {
		rows = append(rows, a.renderRow(articles[i], i == a.cursor, titleWidth))
	}
	return strings.Join(rows, "\n")
}

func (a *App) renderRow(art article.Processed, selected bool, titleWidth int) string {
	marker := " "
	style := rowStyle
	if selected {
		marker = ">"
		style = rowSelectedStyle
	}

	return marker + style.Render(cell(art.Title, titleWidth)) + "  " +
		labelStyle(string(art.Label)).Render(cell(string(art.Label), colSentiment)) + "  " +
		style.Render(cell(fmt.Sprintf("%+.4f", art.Polarity), colPolarity)) + "  " +
		style.Render(cell(art.Source, colSource))
}

// cell truncates by display width and pads to a fixed column width.
func cell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return runewidth.Truncate(s, n, "...")
}
