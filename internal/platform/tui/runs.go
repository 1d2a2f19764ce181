package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cavern/internal/storage"
)

// Runs browser layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the stats sidebar
	sidebarWidth       = 24  // Width of stats sidebar
	maxRuns            = 100 // Max runs to load
)

// runView selects which ordering the browser shows.
type runView int

const (
	viewTop runView = iota
	viewRecent
)

func (v runView) String() string {
	if v == viewRecent {
		return "Recent"
	}
	return "Best"
}

// RunsKeyMap defines the key bindings for the runs browser.
type RunsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Switch, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "best/recent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for the runs browser.
type RunsModel struct {
	store       *storage.Store
	view        runView
	runs        []storage.Run
	stats       *storage.RunStats
	table       table.Model
	help        help.Model
	keys        RunsKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewRunsModel creates a new runs browser.
func NewRunsModel(store *storage.Store, width, height int) RunsModel {
	h := help.New()
	h.ShowAll = false

	m := RunsModel{
		store:       store,
		keys:        DefaultRunsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table with columns fitted to the width.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Depth", Width: 6},
		{Title: "Result", Width: 7},
		{Title: "Deaths", Width: 6},
		{Title: "Time", Width: 7},
		{Title: "Seed", Width: 12},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns reloads the current view and the stats.
func (m *RunsModel) loadRuns() {
	m.runs, m.stats = nil, nil
	if m.store != nil {
		var runs []storage.Run
		var err error
		if m.view == viewRecent {
			runs, err = m.store.RecentRuns(maxRuns)
		} else {
			runs, err = m.store.TopRuns(maxRuns)
		}
		if err == nil {
			m.runs = runs
		}
		if stats, err := m.store.Stats(); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows fills the table from the loaded runs.
func (m *RunsModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = RunRow(i+1, r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// RunRow formats one run for display.
func RunRow(rank int, r storage.Run) table.Row {
	result := "lost"
	if r.Won {
		result = "lab"
	}
	return table.Row{
		fmt.Sprintf("%d", rank),
		fmt.Sprintf("%d", r.Depth),
		result,
		fmt.Sprintf("%d", r.Deaths),
		FormatTicks(r.Ticks, 60),
		fmt.Sprintf("%d", r.Seed),
		r.CreatedAt.Format("Jan 02 15:04"),
	}
}

// FormatTicks renders a tick count as m:ss at the given tick rate.
func FormatTicks(ticks, tickRate int) string {
	if tickRate <= 0 {
		tickRate = 60
	}
	secs := ticks / tickRate
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the runs browser.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the runs browser.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			m.view = 1 - m.view
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the runs browser.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	title := fmt.Sprintf("CAVERN RUNS - %s", m.view)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders aggregate stats.
func (m RunsModel) renderSidebar() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Stats\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")
	if m.stats == nil || m.stats.Runs == 0 {
		sb.WriteString("no runs yet\n")
		return style.Render(sb.String())
	}
	fmt.Fprintf(&sb, "Runs    %d\n", m.stats.Runs)
	fmt.Fprintf(&sb, "Labs    %d\n", m.stats.Wins)
	fmt.Fprintf(&sb, "Best    %d\n", m.stats.BestDepth)
	fmt.Fprintf(&sb, "Average %.0f\n", m.stats.AvgDepth)
	if !m.stats.LastPlayed.IsZero() {
		fmt.Fprintf(&sb, "Last    %s\n", m.stats.LastPlayed.Format("Jan 02"))
	}
	return style.Render(sb.String())
}

// renderTableContent renders the table or empty message.
func (m RunsModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nDig down and reach the lab!")
	}

	return m.table.View()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunRunsBrowser runs the interactive runs browser.
func RunRunsBrowser(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewRunsModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
