package tui

import (
	"fmt"
	"strings"

	"github.com/sofiya-medyamin/newsmood/internal/article"
)

var tabLabels = []string{"Today", "This Week", "All Time"}

func (a *App) renderArticles(width, height int) string {
	tabs := a.renderDateTabs()
	listHeight := height - 2
	if listHeight < 1 {
		listHeight = 1
	}
	list := a.renderArticleList(a.tabArticles(), listHeight, width)
	return tabs + "\n\n" + list
}

func (a *App) renderDateTabs() string {
	parts := make([]string, len(tabLabels))
	for i, l := range tabLabels {
		if dateTab(i) == a.tab {
			parts[i] = tabActiveStyle.Render(l)
		} else {
			parts[i] = tabInactiveStyle.Render(l)
		}
	}
	return " " + strings.Join(parts, " ")
}

func (a *App) renderArticleList(articles []article.Processed, height, width int) string {
	if len(articles) == 0 {
		return emptyStyle.Render("  No articles found for this period.")
	}

	// Each entry renders to 4 lines + 1 separator
	entryHeight := 5
	visible := height / entryHeight
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

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderEntry(articles[i], i == a.cursor, width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderEntry(art article.Processed, selected bool, width int) string {
	titleStyle := itemTitleStyle
	prefix := "  "
	if selected {
		titleStyle = itemSelectedStyle
		prefix = "> "
	}

	title := titleStyle.Render(prefix + truncateStr(art.Title, width-4))
	caption := "  " + itemTimeStyle.Render(
		fmt.Sprintf("%s | Source: %s", art.Published.Format("2006-01-02 15:04"), art.Source),
	)
	label := "  Sentiment: " + labelStyle(string(art.Label)).Render(string(art.Label))

	link := "  " + emptyStyle.Render("No source URL available.")
	if art.URL != "" {
		link = "  " + itemLinkStyle.Render("Read more: "+truncateStr(art.URL, width-14))
	}

	return title + "\n" + caption + "\n" + label + "\n" + link + "\n"
}
