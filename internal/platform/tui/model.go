package tui

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cavern/internal/core"
	"github.com/vovakirdan/cavern/internal/storage"
)

// Options tune the terminal front end.
type Options struct {
	// Anchor returns the screen cell the player is drawn at, used to aim
	// mouse clicks. Nil disables mouse aiming.
	Anchor func(width, height int) (int, int)
	// HoldTicks is how long a movement key stays pressed; 0 picks a
	// default from the tick rate.
	HoldTicks int
	Logger    *log.Logger
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	keys       *KeyMapper
	help       help.Model
	log        *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	runSaved   bool // Whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	hold := opts.HoldTicks
	if hold <= 0 {
		hold = cfg.TickRate * 2 / 5
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(max(cfg.ScreenW, 1), max(cfg.ScreenH-1, 1)),
		store:      store,
		config:     cfg,
		opts:       opts,
		keys:       NewKeyMapper(DefaultGameKeyMap(), hold),
		help:       help.New(),
		log:        logger,
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
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.Press(msg) {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse fires toward a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.opts.Anchor == nil || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if theta, ok := AimAt(m.opts.Anchor, m.screen.Width(), m.screen.Height(), msg.X, msg.Y); ok {
		m.keys.Aim(theta)
	}
	return m, nil
}

// AimAt returns the angle from the player's anchor cell to (x, y).
func AimAt(anchor func(int, int) (int, int), width, height, x, y int) (float64, bool) {
	ax, ay := anchor(width, height)
	if x == ax && y == ay {
		return 0, false
	}
	return math.Atan2(float64(y-ay), float64(x-ax)), true
}

// handleResize processes window resize events.
// The cave does not depend on the screen size, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(max(msg.Width, 1), max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.keys.Fill(&m.inputFrame)

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.keys.Release()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record the run on game over (once)
	if m.gameState.GameOver {
		m.saveRun()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the current run if it has not been recorded yet.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil || m.gameState.Ticks == 0 {
		return
	}
	m.runSaved = true
	run := storage.Run{
		Seed:   m.config.Seed,
		Depth:  m.gameState.Score,
		Deaths: m.gameState.Deaths,
		Ticks:  m.gameState.Ticks,
		Won:    m.gameState.Won,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.log.Warn("cannot record run", "err", err)
		return
	}
	m.log.Info("run recorded", "seed", run.Seed, "depth", run.Depth, "won", run.Won)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".cavern", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("cannot save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// Run starts the Bubble Tea program for game.
func Run(game core.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
