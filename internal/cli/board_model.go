package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/juliakramer/slipway/internal/app"
	"github.com/juliakramer/slipway/internal/cli/formatter"
)

// boardModel is the bubbletea Model for the interactive delivery board: the
// chain forecast as a selectable list with a per-role detail pane.
type boardModel struct {
	app *App

	width    int
	height   int
	loading  bool
	err      error
	resp     *app.ForecastResponse
	selected int
	quitting bool

	keys boardKeyMap
}

type boardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func newBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type forecastLoadedMsg struct {
	resp *app.ForecastResponse
	err  error
}

func newBoardModel(cliApp *App) boardModel {
	return boardModel{
		app:     cliApp,
		loading: true,
		keys:    newBoardKeyMap(),
	}
}

func loadForecast(cliApp *App) tea.Cmd {
	return func() tea.Msg {
		resp, err := cliApp.Forecast.Forecast(context.Background(), app.ForecastRequest{})
		return forecastLoadedMsg{resp: resp, err: err}
	}
}

func (m boardModel) Init() tea.Cmd {
	return loadForecast(m.app)
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case forecastLoadedMsg:
		m.loading = false
		m.resp = msg.resp
		m.err = msg.err
		if m.resp != nil && m.selected >= len(m.resp.Projects) {
			m.selected = 0
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, loadForecast(m.app)

		case key.Matches(msg, m.keys.Up):
			if m.selected > 0 {
				m.selected--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.resp != nil && m.selected < len(m.resp.Projects)-1 {
				m.selected++
			}
			return m, nil
		}
	}

	return m, nil
}

func (m boardModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	switch {
	case m.loading:
		sections = append(sections, formatter.Dim("  Scheduling…"))
	case m.err != nil:
		sections = append(sections, formatter.StyleRed.Render("  "+m.err.Error()))
	case m.resp == nil || len(m.resp.Projects) == 0:
		sections = append(sections, formatter.Dim("  Nothing to schedule."))
	default:
		sections = append(sections, m.renderChain(), m.renderDetail())
	}

	sections = append(sections, m.renderStatusBar())
	return strings.Join(sections, "\n")
}

func (m boardModel) renderHeader() string {
	title := formatter.StylePurple.Render("slipway") + " " + formatter.Dim("› delivery board")
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return title + "\n" + sep
}

func (m boardModel) renderChain() string {
	var b strings.Builder
	for i, p := range m.resp.Projects {
		marker := "  "
		name := p.ProjectName
		if i == m.selected {
			marker = formatter.StyleHeader.Render("▸ ")
			name = formatter.Bold(name)
		}
		b.WriteString(fmt.Sprintf("%s%s  %s %s %s  %s\n",
			marker, name,
			formatter.Date(p.StartDate), formatter.Dim("→"), formatter.Date(p.EndDate),
			formatter.DiffIndicator(p.DiffWorkdays)))
	}
	return b.String()
}

func (m boardModel) renderDetail() string {
	p := m.resp.Projects[m.selected]

	var b strings.Builder
	b.WriteString(formatter.Dim(strings.Repeat("─", max(m.width, 20))) + "\n")
	if p.BlockingProject != "" {
		b.WriteString(fmt.Sprintf("  %s %s\n", formatter.Dim("blocked by"), p.BlockingProject))
	}
	if p.LostWorkdaysToVacation > 0 {
		b.WriteString(fmt.Sprintf("  %s %s\n", formatter.Dim("lost to vacation"),
			formatter.StyleYellow.Render(fmt.Sprintf("%dd", p.LostWorkdaysToVacation))))
	}
	for _, r := range p.Roles {
		b.WriteString(fmt.Sprintf("  %s  %s %s %s\n",
			formatter.StylePurple.Render(r.Role),
			formatter.Date(r.StartDate), formatter.Dim("→"), formatter.Date(r.EndDate)))
	}
	for _, w := range p.Warnings {
		b.WriteString("  " + formatter.StyleYellow.Render("⚠ ") + w.Message + "\n")
	}
	return b.String()
}

func (m boardModel) renderStatusBar() string {
	hints := []string{
		formatter.Dim("↑↓/jk: select"),
		formatter.Dim("r: refresh"),
		formatter.Dim("q: quit"),
	}
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}
