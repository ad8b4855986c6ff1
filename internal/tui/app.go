// Package tui renders the sentiment dashboard: summary metrics, a polarity
// chart, a table, and date-filtered article listings.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sofiya-medyamin/newsmood/internal/article"
	"github.com/sofiya-medyamin/newsmood/internal/browser"
	"github.com/sofiya-medyamin/newsmood/internal/config"
	"github.com/sofiya-medyamin/newsmood/internal/pipeline"
	"github.com/sofiya-medyamin/newsmood/internal/report"
	"github.com/sofiya-medyamin/newsmood/internal/sentiment"
	"github.com/sofiya-medyamin/newsmood/internal/source"
)

type view int

const (
	viewDashboard view = iota
	viewTable
	viewArticles
)

type dateTab int

const (
	tabToday dateTab = iota
	tabWeek
	tabAll
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeHelp
)

type App struct {
	cfg      *config.Config
	src      source.Source
	analyzer sentiment.Analyzer

	query string
	count int

	outcome pipeline.Outcome
	loaded  bool

	view   view
	tab    dateTab
	mode   mode
	cursor int

	width  int
	height int

	// Sub-components
	searchInput textinput.Model
	spinner     spinner.Model

	// State
	refreshing    bool
	status        string
	err           error
	currentDate   string
	updateVersion string
}

// RunOpts holds all parameters for launching the dashboard.
type RunOpts struct {
	Cfg           *config.Config
	Source        source.Source
	Analyzer      sentiment.Analyzer
	Query         string
	Count         int
	UpdateVersion string
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Search topic..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	return &App{
		cfg:           opts.Cfg,
		src:           opts.Source,
		analyzer:      opts.Analyzer,
		query:         opts.Query,
		count:         opts.Count,
		searchInput:   ti,
		spinner:       sp,
		currentDate:   time.Now().Format("Jan 2"),
		updateVersion: opts.UpdateVersion,
	}
}

func (a *App) Init() tea.Cmd {
	a.refreshing = true
	return tea.Batch(a.runPipelineCmd(), a.spinner.Tick)
}

// runPipelineCmd captures the current query state into the closure so a
// later edit cannot race the in-flight fetch.
func (a *App) runPipelineCmd() tea.Cmd {
	src := a.src
	analyzer := a.analyzer
	query := a.query
	count := a.count
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return runDoneMsg{outcome: pipeline.Run(ctx, src, analyzer, query, count, time.Now())}
	}
}

func (a *App) exportCmd() tea.Cmd {
	articles := a.outcome.Articles
	return func() tea.Msg {
		err := report.ExportCSV(report.DefaultExportName, articles)
		return exportDoneMsg{path: report.DefaultExportName, err: err}
	}
}

func openBrowserCmd(art article.Processed) tea.Cmd {
	return func() tea.Msg {
		if err := browser.OpenArticle(art); err != nil {
			return openErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear transient status on any keypress
		a.status = ""
		return a.handleKey(msg)

	case runDoneMsg:
		a.refreshing = false
		a.loaded = true
		a.outcome = msg.outcome
		a.err = msg.outcome.FetchErr
		if a.cursor >= len(a.currentList()) {
			a.cursor = max(0, len(a.currentList())-1)
		}
		return a, nil

	case exportDoneMsg:
		if msg.err != nil {
			a.err = msg.err
		} else {
			a.status = "exported " + msg.path
		}
		return a, nil

	case openErrMsg:
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.refreshing {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeHelp:
		switch msg.String() {
		case "?", "esc", "q":
			a.mode = modeNormal
		}
		return a, nil
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "1":
		a.view = viewDashboard
		return a, nil
	case "2":
		a.view = viewTable
		a.cursor = 0
		return a, nil
	case "3":
		a.view = viewArticles
		a.cursor = 0
		return a, nil
	case "tab":
		a.view = (a.view + 1) % 3
		a.cursor = 0
		return a, nil
	case "h", "left":
		if a.view == viewArticles && a.tab > tabToday {
			a.tab--
			a.cursor = 0
		}
		return a, nil
	case "l", "right":
		if a.view == viewArticles && a.tab < tabAll {
			a.tab++
			a.cursor = 0
		}
		return a, nil
	case "j", "down":
		if a.cursor < len(a.currentList())-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "o", "enter":
		list := a.currentList()
		if len(list) > 0 && a.cursor < len(list) && list[a.cursor].URL != "" {
			return a, openBrowserCmd(list[a.cursor])
		}
		return a, nil
	case "/":
		a.mode = modeSearch
		a.searchInput.SetValue(a.query)
		a.searchInput.Focus()
		return a, textinput.Blink
	case "+", "=":
		return a.adjustCount(5)
	case "-":
		return a.adjustCount(-5)
	case "r":
		return a.refresh()
	case "e":
		if len(a.outcome.Articles) > 0 {
			return a, a.exportCmd()
		}
		a.status = "nothing to export"
		return a, nil
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a, nil
	case "enter":
		a.mode = modeNormal
		a.searchInput.Blur()
		if q := strings.TrimSpace(a.searchInput.Value()); q != "" && q != a.query {
			a.query = q
			return a.refresh()
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	return a, cmd
}

func (a *App) adjustCount(delta int) (tea.Model, tea.Cmd) {
	next := source.ClampLimit(a.count + delta)
	if next == a.count {
		return a, nil
	}
	a.count = next
	return a.refresh()
}

func (a *App) refresh() (tea.Model, tea.Cmd) {
	if a.refreshing {
		return a, nil
	}
	a.refreshing = true
	a.err = nil
	return a, tea.Batch(a.runPipelineCmd(), a.spinner.Tick)
}

// currentList returns the articles the cursor moves over in the active view.
func (a *App) currentList() []article.Processed {
	if a.view == viewArticles {
		return a.tabArticles()
	}
	return a.outcome.Articles
}

func (a *App) tabArticles() []article.Processed {
	switch a.tab {
	case tabToday:
		return a.outcome.Buckets.Today
	case tabWeek:
		return a.outcome.Buckets.ThisWeek
	default:
		return a.outcome.Buckets.AllTime
	}
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  newsmood")
	}

	if a.mode == modeHelp {
		return a.renderHelp()
	}

	header := a.renderHeader()
	tabs := a.renderViewTabs()
	if a.mode == modeSearch {
		tabs = a.searchInput.View()
	}

	contentHeight := a.height - 3 // header + tabs + status
	if contentHeight < 3 {
		contentHeight = 3
	}

	var content string
	switch a.view {
	case viewDashboard:
		content = a.renderDashboard(a.width, contentHeight)
	case viewTable:
		content = a.renderTable(a.width, contentHeight)
	case viewArticles:
		content = a.renderArticles(a.width, contentHeight)
	}
	content = padToHeight(content, contentHeight)

	status := a.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left, header, tabs, content, status)
}

func (a *App) renderHeader() string {
	left := headerStyle.Render("newsmood") + " " +
		headerQueryStyle.Render(truncateStr(a.query, a.width/2))
	right := headerDateStyle.Render(a.currentDate)
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + strings.Repeat(" ", gap) + right
}

func (a *App) renderViewTabs() string {
	labels := []string{"1 Overview", "2 Table", "3 Articles"}
	parts := make([]string, len(labels))
	for i, l := range labels {
		if view(i) == a.view {
			parts[i] = tabActiveStyle.Render(l)
		} else {
			parts[i] = tabInactiveStyle.Render(l)
		}
	}
	return " " + strings.Join(parts, " ")
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("newsmood")
	dim := helpDimStyle

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Views") + "\n" +
		"  1/2/3, tab    Overview, table, articles\n" +
		"  ←/→, h/l     Switch date tab (articles view)\n\n" +
		dim.Render("Actions") + "\n" +
		"  j/k, ↑/↓     Move selection\n" +
		"  o, enter      Open article in browser\n" +
		"  /             Change search topic\n" +
		"  +/-           Adjust article count (5–50)\n" +
		"  r             Refetch articles\n" +
		"  e             Export CSV\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	card := helpCardStyle.Render(help)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func padToHeight(content string, height int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// Run starts the dashboard.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
