package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/box-jump/internal/core"
	"github.com/vovakirdan/box-jump/internal/games/boxjump"
)

// Model is the Bubble Tea model for running box jump.
type Model struct {
	game       *boxjump.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	clock      *core.FrameClock
	jump       *jumpTracker
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards all output.
func NewModel(game *boxjump.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config:     cfg,
		clock:      core.NewFrameClock(game.Config().Frame.MaxDelta),
		jump:       &jumpTracker{},
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// playHeight leaves the last row for the help footer.
func playHeight(h int) int {
	return core.Max(1, h-1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.logger.Info("quit requested", "score", m.gameState.Score)
		m.game.Step(m.inputFrame, 0)
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionJump) {
		m.jump.Press(time.Now())
	}
	return m, nil
}

// handleResize processes window resize events. The world keeps its own
// units, so only the raster changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick measures the frame delta and advances the simulation.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	delta := m.clock.TickAt(now)

	if m.jump.Expired(now) {
		m.inputFrame.Set(core.ActionJumpRelease)
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame, delta)
	m.gameState = result.State
	m.logTransitions(prev, m.gameState)

	// Clear input for next frame
	m.inputFrame.Clear()

	if !m.gameState.Running {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// logTransitions records state changes worth seeing in a log file.
func (m Model) logTransitions(prev, next core.GameState) {
	switch {
	case next.Collided && !prev.Collided:
		m.logger.Info("collision", "score", next.Score)
	case prev.Collided && !next.Collided:
		m.logger.Info("restarted")
	}
	if prev.Shaking && !next.Shaking {
		m.logger.Debug("shake finished")
	}
	if prev.Paused != next.Paused {
		m.logger.Debug("pause toggled", "paused", next.Paused)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".boxjump", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game *boxjump.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
