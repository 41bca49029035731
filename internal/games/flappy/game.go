// Package flappy implements a Flappy Bird-style game on a small entity store.
// The bird falls under gravity and flaps upward; pillar pairs scroll in from
// the right. Passing a gap scores a point, touching a pillar or a border
// blows the bird apart.
//
// World space is centered on the viewport with +y pointing up. Frontends
// feed frame time and input to Step and draw Sprites and Labels (or call
// Render for a character grid).
package flappy

import (
	"io"
	"math"
	"math/rand"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/ecs"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Draw order.
const (
	zPillar   = 0
	zBorder   = 0
	zParticle = 0
	zBird     = 1
)

// Game implements the Flappy Bird game logic.
type Game struct {
	w       *world
	rng     *rand.Rand
	runtime core.RuntimeConfig
	view    core.Viewport

	cfg        config.FlappyConfig
	colors     config.Colors
	configured bool // cfg was set through Configure and must not be reloaded

	phase   Phase
	paused  bool
	spawner SpawnerState
	board   Scoreboard
	frames  int
}

// configPath stores the custom config path set via CLI
var configPath string

// logger receives lifecycle events. Discarded unless SetLogger is called.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger routes game events to l. A nil logger silences them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a new Flappy Bird game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Configure replaces the tuning. Entities already in the world keep their
// values; borders, scrolling and later spawns use the new ones.
func (g *Game) Configure(cfg config.FlappyConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.cfg = cfg
	g.colors = cfg.Palette.MustColors()
	g.configured = true
	logger.Debug("config applied", "gravity", cfg.Physics.Gravity, "scroll", cfg.Physics.ScrollSpeed)
	return nil
}

// Config returns the tuning in use.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Reset starts a fresh session: empty world, zero scores, phase Started.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.configured {
		cfg, err := config.LoadFlappy(configPath)
		if err != nil {
			logger.Warn("falling back to default config", "err", err)
			cfg = config.DefaultFlappyConfig()
		}
		g.cfg = cfg
		g.colors = cfg.Palette.MustColors()
	}

	g.runtime = runtime
	g.view = runtime.Viewport()
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.w = newWorld()
	g.phase = PhaseStarted
	g.paused = false
	g.spawner.Reset()
	g.board = Scoreboard{}
	g.frames = 0

	spawnBorders(g.w, g.view, g.cfg.Obstacles.BorderThickness, g.colors.Pillar)
	g.enterStarted()

	logger.Info("game reset", "seed", runtime.Seed, "viewport", g.view)
}

// Resize changes the screen size without restarting the round.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.view = g.runtime.Viewport()
}

// Viewport returns the visible world area.
func (g *Game) Viewport() core.Viewport {
	return g.view
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Scoreboard returns the current scores.
func (g *Game) Scoreboard() Scoreboard {
	return g.board
}

// Spawner returns the obstacle spawner state.
func (g *Game) Spawner() SpawnerState {
	return g.spawner
}

// Entities returns the number of live entities.
func (g *Game) Entities() int {
	if g.w == nil {
		return 0
	}
	return g.w.Len()
}

// Bird returns the bird's position and velocity, if a bird exists.
func (g *Game) Bird() (pos, vel core.Vec2, ok bool) {
	if g.w == nil {
		return core.Vec2{}, core.Vec2{}, false
	}
	for _, e := range g.w.birds.Entities() {
		t, ok := g.w.transforms.Get(e)
		if !ok {
			continue
		}
		v, _ := g.w.velocities.Get(e)
		if v != nil {
			vel = *v
		}
		return t.Pos, vel, true
	}
	return core.Vec2{}, core.Vec2{}, false
}

// Step advances the game by dt seconds.
// Systems run in a fixed order; those marked running only act while the
// round was running at the start of the frame, so a crash still resolves
// its explosion in the frame it happens.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if g.w == nil || g.view.Validate() != nil {
		return core.StepResult{State: g.State()}
	}
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}

	it := mapInput(g.phase, in)
	if it.Pause {
		g.paused = !g.paused
		logger.Debug("pause toggled", "paused", g.paused)
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	g.frames++

	switch {
	case it.Start:
		g.phase = PhaseRunning
		logger.Info("round started")
	case it.Restart:
		g.restart()
	}

	running := g.phase == PhaseRunning
	if running {
		if it.Flap {
			flapSystem(g.w)
		}
		gravitySystem(g.w, dt)
	}

	velocitySystem(g.w, dt)

	if running {
		if plan, ok := spawnerSystem(g.w, &g.spawner, g.rng, g.view, g.cfg, g.colors, dt); ok {
			logger.Debug("pillars spawned", "x", plan.X, "fraction", plan.Fraction)
		}
		if obstacleCollisionSystem(g.w, g.cfg.Bird.HitboxScale) {
			g.phase = PhaseOver
			logger.Info("round over", "score", g.board.Score, "highscore", g.board.Highscore)
		}
		g.board.Add(triggerCollisionSystem(g.w))
		explosionSystem(g.w, g.rng)
		fadeSystem(g.w, dt)
	}

	lifetimeSystem(g.w, dt)
	bordersSystem(g.w, g.view, g.cfg.Obstacles.BorderThickness)
	outOfBoundsSystem(g.w, g.view)

	if g.board.Ratchet() {
		logger.Info("new highscore", "highscore", g.board.Highscore)
	}

	return core.StepResult{State: g.State()}
}

// restart purges the round and goes back to Started.
func (g *Game) restart() {
	purged := 0
	for _, e := range g.w.restart.Entities() {
		if g.w.Destroy(e) {
			purged++
		}
	}
	g.board.ResetScore()
	g.spawner.Reset()
	g.paused = false
	logger.Debug("round purged", "entities", purged)
	g.enterStarted()
}

// enterStarted switches to Started and spawns a fresh bird.
func (g *Game) enterStarted() {
	g.phase = PhaseStarted
	g.spawnBird()
}

func (g *Game) spawnBird() ecs.Entity {
	size := core.V2(g.cfg.Bird.Size, g.cfg.Bird.Size)
	e := g.w.spawnSprite(core.V2(g.cfg.Bird.X, 0), zBird, size, g.colors.Bird)
	g.w.velocities.Set(e, core.Vec2{})
	g.w.gravities.Set(e, Gravity{Accel: g.cfg.Physics.Gravity})
	g.w.birds.Set(e, Bird{FlapHeight: g.cfg.Bird.FlapHeight})
	g.w.explodes.Set(e, Explodes{
		Particles:    g.cfg.Explosion.ParticleCount,
		SizeFraction: g.cfg.Explosion.SizeFraction,
		Speed:        g.cfg.Explosion.Speed,
		Lifetime:     g.cfg.Explosion.Lifetime,
		Color:        g.colors.Bird,
	})
	g.w.restart.Set(e, DestroyAtRestart{})
	return e
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.board.Score,
		Highscore: g.board.Highscore,
		Phase:     g.phase.String(),
		GameOver:  g.phase == PhaseOver,
		Paused:    g.paused,
	}
}

// Sprites returns every visible rectangle, lowest Z first.
func (g *Game) Sprites() []core.Sprite {
	if g.w == nil {
		return nil
	}
	ents := ecs.Query(g.w.transforms, g.w.sprites)
	out := make([]core.Sprite, 0, len(ents))
	for _, e := range ents {
		t, _ := g.w.transforms.Get(e)
		s, _ := g.w.sprites.Get(e)
		out = append(out, core.Sprite{Pos: t.Pos, Size: s.Size, Color: s.Color, Z: t.Z})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Z < out[j].Z
	})
	return out
}

// Labels returns the HUD text: score, highscore and a phase hint.
func (g *Game) Labels() []core.Label {
	labels := []core.Label{
		{Text: g.board.ScoreText(), Role: core.LabelScore, Color: g.colors.Score},
		{Text: g.board.HighscoreText(), Role: core.LabelHighscore, Color: g.colors.Score},
	}
	if hint := g.hint(); hint != "" {
		labels = append(labels, core.Label{Text: hint, Role: core.LabelHint, Color: g.colors.Score})
	}
	return labels
}

func (g *Game) hint() string {
	switch {
	case g.paused:
		return "PAUSED"
	case g.phase == PhaseStarted:
		return "Press SPACE to flap"
	case g.phase == PhaseOver:
		return "Hold SPACE to restart"
	default:
		return ""
	}
}

// Register the game on package load.
func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
