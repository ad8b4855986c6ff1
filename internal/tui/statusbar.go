package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sofiya-medyamin/newsmood/internal/report"
)

func (a *App) renderStatusBar() string {
	articles := a.outcome.Articles

	left := fmt.Sprintf(" %d articles · avg %+.2f", len(articles), report.Average(articles))
	if n := len(a.outcome.Skipped); n > 0 {
		left += fmt.Sprintf(" · %d skipped", n)
	}
	if a.status != "" {
		left += " · " + a.status
	}
	if a.refreshing {
		left = a.spinner.View() + left + " (fetching...)"
	}
	if a.updateVersion != "" {
		left += " · update v" + a.updateVersion
	}

	right := " / topic  +/- count  r refetch  e export  ? help  q quit "
	if a.mode == modeSearch {
		right = " esc cancel  enter search "
	}

	// A fetch warning takes over the whole bar; the run still renders
	// whatever survived.
	if a.err != nil {
		left = " " + warnStyle.Render(truncateStr(a.err.Error(), a.width-2))
	}

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return statusBarStyle.Width(a.width).Render(left + strings.Repeat(" ", gap) + right)
}
