package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 70  // Minimum width to show the summary sidebar
	sidebarWidth       = 20  // Width of the summary sidebar
	maxScores          = 100 // Max runs to load
)

// Scoreboard styles.
var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	boardBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardBestStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/tab", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen: the
// best score next to a table of the best recorded runs.
type ScoreboardModel struct {
	title       string
	best        int
	history     History // nil when the backend keeps no runs
	scores      []storage.ScoreEntry
	stats       *storage.GameStats // nil unless the history summarizes itself
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show the summary sidebar
	embedded    bool // Running inside the game model rather than its own program
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(title string, best int, history History, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		title:       title,
		best:        best,
		history:     history,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.loadScores()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}

	// Calculate available width for table
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	// Adjust column widths if we have more space
	if tableWidth > 40 {
		columns[1].Width = 12
		columns[2].Width = min(tableWidth-22, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	// Table styles
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

// loadScores loads the best runs from the history.
func (m *ScoreboardModel) loadScores() {
	m.scores, m.stats, m.loadErr = nil, nil, nil
	if m.history != nil {
		m.scores, m.loadErr = m.history.TopRuns(maxScores)
	}
	if src, ok := m.history.(StatsSource); ok && m.loadErr == nil {
		m.stats, m.loadErr = src.Stats()
	}
	// The persisted best may be ahead of a stale caller value.
	for _, s := range m.scores {
		m.best = max(m.best, s.Score)
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, m.exit()

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, m.exit()

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// exit ends a standalone scoreboard program. Embedded, the host model
// closes the scoreboard itself.
func (m ScoreboardModel) exit() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if !m.embedded && (m.quitting || m.goingBack) {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("HIGH SCORES - %s", m.title)
	b.WriteString(boardTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(boardMutedStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the summary sidebar next to the table.
func (m ScoreboardModel) renderWideLayout() string {
	lines := []string{
		"Summary",
		strings.Repeat("-", sidebarWidth-4),
		boardBestStyle.Render(fmt.Sprintf("Best Score:%d", m.best)),
	}
	if m.stats != nil {
		lines = append(lines,
			fmt.Sprintf("Runs: %d", m.stats.GamesCount),
			fmt.Sprintf("Average: %.1f", m.stats.AvgScore),
		)
		if !m.stats.LastPlayed.IsZero() {
			lines = append(lines, "", boardMutedStyle.Render("Last played"), m.stats.LastPlayed.Format("Jan 02 15:04"))
		}
	} else {
		lines = append(lines, fmt.Sprintf("Runs: %d", len(m.scores)))
	}
	summary := strings.Join(lines, "\n")

	return lipgloss.JoinHorizontal(lipgloss.Top,
		boardBoxStyle.Width(sidebarWidth).Render(summary),
		"  ",
		boardBoxStyle.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout renders the best score above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	best := boardBestStyle.Background(lipgloss.Color("57")).Padding(0, 1).
		Render(fmt.Sprintf("Best Score:%d", m.best))

	return centerText(best, m.width) + "\n\n" +
		centerText(boardBoxStyle.Render(m.renderTableContent()), m.width)
}

// renderTableContent renders the table or an explanation of why it is empty.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := boardMutedStyle.Italic(true).Padding(2, 4)

	switch {
	case m.history == nil:
		return emptyStyle.Render("This score store keeps no run history.\nOnly the best score is saved.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load runs:\n" + m.loadErr.Error())
	case len(m.scores) == 0:
		return emptyStyle.Render("No runs recorded yet.\nPlay a game to set a high score!")
	}

	return m.table.View()
}

func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// Best returns the best score shown.
func (m ScoreboardModel) Best() int {
	return m.best
}

// Stats returns the run summary, or nil when the history has none.
func (m ScoreboardModel) Stats() *storage.GameStats {
	return m.stats
}

// Rows returns the number of runs listed.
func (m ScoreboardModel) Rows() int {
	return len(m.scores)
}

// IsGoingBack returns true if user wants to go back.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program.
func RunScoreboard(title string, best int, history History, width, height int) error {
	model := NewScoreboardModel(title, best, history, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
