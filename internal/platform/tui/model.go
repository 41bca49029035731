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

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Configurable is implemented by games that accept config reloads.
type Configurable interface {
	Configure(cfg config.FlappyConfig) error
}

// ConfigMsg carries a reloaded config from the watcher.
type ConfigMsg struct {
	Config config.FlappyConfig
}

// ConfigErrMsg carries a failed reload from the watcher.
type ConfigErrMsg struct {
	Err error
}

// Options configures a terminal session.
type Options struct {
	Runtime core.RuntimeConfig  // Screen size in cells, tick rate, seed
	Config  config.FlappyConfig // Frame clamp, cell scale and palette
	Watcher *config.Watcher     // Optional; reloads are applied between frames
	Logger  *log.Logger         // Optional; must not write to the terminal
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	runtime    core.RuntimeConfig
	cfg        config.FlappyConfig
	keys       KeyMap
	mapper     *KeyMapper
	help       help.Model
	styles     *styleCache
	watcher    *config.Watcher
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// Runtime.ScreenW/ScreenH is the whole terminal; one row is kept for help.
func NewModel(game registry.Game, opts Options) Model {
	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	rt.Scale = core.V2(opts.Config.Terminal.CellWidth, opts.Config.Terminal.CellHeight)
	rt.ScreenH = playRows(rt.ScreenH)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH),
		runtime:    rt,
		cfg:        opts.Config,
		keys:       keys,
		mapper:     NewKeyMapper(keys),
		help:       h,
		styles:     newStyleCache(opts.Config.Palette.MustColors().Background),
		watcher:    opts.Watcher,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// playRows is the number of rows left for the game under the help line.
func playRows(h int) int {
	return max(h-1, 0)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.runtime)
	m.logger.Info("terminal session started", "game", m.game.ID(),
		"cols", m.runtime.ScreenW, "rows", m.runtime.ScreenH, "seed", m.runtime.Seed)

	return tea.Batch(tickCmd(m.runtime.TickRate), waitForConfig(m.watcher))
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

	case ConfigMsg:
		return m.handleConfig(msg)

	case ConfigErrMsg:
		m.logger.Warn("config reload failed", "err", msg.Err)
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.mapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "highscore", m.gameState.Highscore)
		return m, tea.Quit
	}
	return m, nil
}

// handleResize follows the terminal size without restarting the round.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = playRows(msg.Height)
	m.screen.Resize(m.runtime.ScreenW, m.runtime.ScreenH)
	m.help.Width = msg.Width
	m.game.Resize(m.runtime.ScreenW, m.runtime.ScreenH)

	m.logger.Debug("terminal resized", "cols", m.runtime.ScreenW, "rows", m.runtime.ScreenH)
	return m, nil
}

// handleTick runs one frame with the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameTime(m.lastTick, now, m.cfg.Physics.MaxStep)
	m.lastTick = now

	result := m.game.Step(dt, m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.runtime.TickRate)
}

// handleConfig applies a reloaded config and waits for the next one.
func (m Model) handleConfig(msg ConfigMsg) (tea.Model, tea.Cmd) {
	if c, ok := m.game.(Configurable); ok {
		if err := c.Configure(msg.Config); err != nil {
			m.logger.Warn("config rejected", "err", err)
			return m, waitForConfig(m.watcher)
		}
	}
	m.cfg = msg.Config
	m.styles = newStyleCache(msg.Config.Palette.MustColors().Background)
	if m.watcher != nil {
		m.logger.Info("config reloaded", "path", m.watcher.Path())
	}
	return m, waitForConfig(m.watcher)
}

// waitForConfig blocks on the watcher and turns its next event into a message.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Updates():
			if !ok {
				return nil
			}
			return ConfigMsg{Config: cfg}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			return ConfigErrMsg{Err: err}
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the game state after the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return renderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
