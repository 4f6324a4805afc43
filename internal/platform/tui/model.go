package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Game is what the platform drives. Games contain pure logic with no
// Bubble Tea dependency; the platform handles input mapping, timing, and
// rendering.
type Game interface {
	// ID returns a unique identifier used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game state for a runtime config.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// History records finished runs. Backends without a run history simply do
// not implement it.
type History interface {
	SaveRun(score int) error
	TopRuns(limit int) ([]storage.ScoreEntry, error)
}

// StatsSource is implemented by histories that can summarize their runs.
type StatsSource interface {
	Stats() (*storage.GameStats, error)
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	history    History
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	paused     bool
	scoreboard *ScoreboardModel // non-nil while the scoreboard is open
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game. history and
// logger may be nil.
func NewModel(game Game, history History, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		history:    history,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.scoreboard == nil && !m.paused {
			if action := m.keyMapper.MapMouse(msg); action != core.ActionNone {
				m.inputFrame.Set(action)
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionPause:
		m.paused = !m.paused
	case action == core.ActionScoreboard:
		m.openScoreboard()
	case action == core.ActionFlap && !m.paused:
		m.inputFrame.Set(action)
	}

	return m, nil
}

func (m *Model) openScoreboard() {
	sb := NewScoreboardModel(m.game.Title(), m.game.State().Best, m.history, m.config.ScreenW, m.config.ScreenH)
	sb.embedded = true
	m.scoreboard = &sb
}

func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		m.scoreboard = nil
		return m, nil
	}

	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}
	m.scoreboard = &sb
	return m, cmd
}

// handleResize processes window resize events. The world is scaled to the
// screen, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused || m.scoreboard != nil {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.RunEnded {
		m.saveRun(result.State.Score)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveRun records a finished run. Failures never interrupt play.
func (m Model) saveRun(score int) {
	if m.history == nil || score <= 0 {
		return
	}
	if err := m.history.SaveRun(score); err != nil {
		m.logger.Warn("failed to save run", "score", score, "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("no home directory for screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("failed to create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("failed to save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)
	if m.paused {
		drawOverlay(m.screen, "PAUSED", "Press P to resume")
	}
	return RenderScreen(m.screen)
}

// Paused reports whether ticking is suspended.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts the Bubble Tea program with the given model.
func Run(game Game, history History, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, history, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks flap
	)

	_, err := p.Run()
	return err
}
