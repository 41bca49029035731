// Package window runs a game in a desktop window with Ebitengine.
// One window pixel is one world unit, so resizing the window shows more or
// less of the world instead of scaling it.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Configurable is implemented by games that accept config reloads.
type Configurable interface {
	Configure(cfg config.FlappyConfig) error
}

// Options configures a window session.
type Options struct {
	Runtime core.RuntimeConfig  // Tick rate and seed; size comes from Config.Window
	Config  config.FlappyConfig // Window, frame clamp and palette
	Watcher *config.Watcher     // Optional; reloads are applied between frames
	Logger  *log.Logger         // Optional
}

// Game adapts a registry.Game to ebiten.Game.
type Game struct {
	game     registry.Game
	runtime  core.RuntimeConfig
	cfg      config.FlappyConfig
	colors   config.Colors
	watcher  *config.Watcher
	logger   *log.Logger
	keys     *keyboard
	faces    faces
	now      func() time.Time
	lastTick time.Time
	width    int
	height   int
	state    core.GameState
}

// New prepares a window session and resets the game to the window size.
func New(game registry.Game, opts Options) (*Game, error) {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	rt.ScreenW = opts.Config.Window.Width
	rt.ScreenH = opts.Config.Window.Height
	rt.Scale = core.V2(1, 1)
	if err := rt.Validate(); err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	colors, err := opts.Config.Palette.Colors()
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	f, err := loadFaces()
	if err != nil {
		return nil, fmt.Errorf("window: load font: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		game:    game,
		runtime: rt,
		cfg:     opts.Config,
		colors:  colors,
		watcher: opts.Watcher,
		logger:  logger,
		keys:    newKeyboard(ebiten.IsKeyPressed),
		faces:   f,
		now:     time.Now,
		width:   rt.ScreenW,
		height:  rt.ScreenH,
	}
	game.Reset(rt)
	return g, nil
}

// Update runs one frame: config reloads, input, then the simulation.
func (g *Game) Update() error {
	g.applyReloads()

	in := g.keys.poll()
	if in.Has(core.ActionQuit) {
		g.logger.Info("quit", "score", g.state.Score, "highscore", g.state.Highscore)
		return ebiten.Termination
	}

	now := g.now()
	dt := 0.0
	if !g.lastTick.IsZero() {
		dt = core.ClampF(now.Sub(g.lastTick).Seconds(), 0, g.cfg.Physics.MaxStep)
	}
	g.lastTick = now

	g.state = g.game.Step(dt, in).State
	return nil
}

// applyReloads drains pending watcher events without blocking.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-g.watcher.Updates():
			if !ok {
				g.watcher = nil
				return
			}
			g.applyConfig(cfg)
		case err, ok := <-g.watcher.Errors():
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn("config reload failed", "err", err)
		default:
			return
		}
	}
}

func (g *Game) applyConfig(cfg config.FlappyConfig) {
	if c, ok := g.game.(Configurable); ok {
		if err := c.Configure(cfg); err != nil {
			g.logger.Warn("config rejected", "err", err)
			return
		}
	}
	colors, err := cfg.Palette.Colors()
	if err != nil {
		g.logger.Warn("config rejected", "err", err)
		return
	}
	g.cfg = cfg
	g.colors = colors
	g.logger.Info("config reloaded")
}

// Draw paints the background, the sprites and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.colors.Background.NRGBA())
	drawSprites(screen, g.game.Sprites(), g.width, g.height)
	drawLabels(screen, g.faces, g.game.Labels(), g.width, g.height)
}

// Layout keeps one pixel per world unit and tells the game about new sizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.game.Resize(outsideWidth, outsideHeight)
		g.logger.Debug("window resized", "width", outsideWidth, "height", outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(game registry.Game, opts Options) error {
	g, err := New(game, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(opts.Config.Window.Width, opts.Config.Window.Height)
	ebiten.SetWindowTitle(opts.Config.Window.Title)
	if opts.Config.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(g.runtime.TickRate)

	g.logger.Info("window session started", "game", game.ID(),
		"width", g.width, "height", g.height, "seed", g.runtime.Seed)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
