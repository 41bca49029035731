// Package config provides YAML-based configuration loading for the game:
// embedded defaults, a file search order, validation and hot reload.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// FlappyConfig contains all configuration for the Flappy Bird game.
type FlappyConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Terminal  TerminalConfig  `yaml:"terminal"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Bird      FlappyBird      `yaml:"bird"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Explosion ExplosionConfig `yaml:"explosion"`
	Palette   Palette         `yaml:"palette"`
}

// WindowConfig describes the desktop window.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
}

// TerminalConfig maps terminal cells to world units.
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// FlappyPhysics defines world physics. Units are world units and seconds.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration of the bird
	ScrollSpeed float64 `yaml:"scroll_speed"` // Leftward speed of pillars and triggers
	MaxStep     float64 `yaml:"max_step"`     // Frontends clamp frame time to this
}

// FlappyBird defines the player body.
type FlappyBird struct {
	X           float64 `yaml:"x"`
	Size        float64 `yaml:"size"`
	FlapHeight  float64 `yaml:"flap_height"`  // Apex height of a single flap
	HitboxScale float64 `yaml:"hitbox_scale"` // Body box scale for pillar checks
}

// FlappyObstacles defines pillar spawning and borders.
type FlappyObstacles struct {
	PillarWidth     float64    `yaml:"pillar_width"`
	Gap             float64    `yaml:"gap"`
	SpawnDistance   float64    `yaml:"spawn_distance"`
	GapFraction     core.Range `yaml:"gap_fraction"`
	TriggerWidth    float64    `yaml:"trigger_width"`
	FadeSpeed       float64    `yaml:"fade_speed"`
	BorderThickness float64    `yaml:"border_thickness"`
}

// ExplosionConfig defines the particle burst on a crash.
type ExplosionConfig struct {
	ParticleCount int        `yaml:"particle_count"`
	SizeFraction  core.Range `yaml:"size_fraction"` // Fraction of the bird size
	Speed         core.Range `yaml:"speed"`
	Lifetime      core.Range `yaml:"lifetime"` // Seconds
}

// Palette holds "#rrggbb" colors.
type Palette struct {
	Pillar     string `yaml:"pillar"`
	Bird       string `yaml:"bird"`
	Background string `yaml:"background"`
	Laser      string `yaml:"laser"`
	Score      string `yaml:"score"`
}

// Colors is the parsed form of a Palette.
type Colors struct {
	Pillar     core.Color
	Bird       core.Color
	Background core.Color
	Laser      core.Color
	Score      core.Color
}

// Colors parses every palette entry.
func (p Palette) Colors() (Colors, error) {
	var c Colors
	entries := []struct {
		name string
		hex  string
		dst  *core.Color
	}{
		{"pillar", p.Pillar, &c.Pillar},
		{"bird", p.Bird, &c.Bird},
		{"background", p.Background, &c.Background},
		{"laser", p.Laser, &c.Laser},
		{"score", p.Score, &c.Score},
	}
	for _, e := range entries {
		col, err := core.ParseHex(e.hex)
		if err != nil {
			return Colors{}, fmt.Errorf("palette.%s: %w", e.name, err)
		}
		*e.dst = col
	}
	return c, nil
}

// MustColors is Colors for configs that already passed Validate.
func (p Palette) MustColors() Colors {
	c, err := p.Colors()
	if err != nil {
		panic(err)
	}
	return c
}

// Validate reports every problem found in cfg, each wrapping ErrInvalid.
func (cfg FlappyConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}
	positive := func(name string, v float64) {
		if v <= 0 {
			bad("%s must be positive, got %g", name, v)
		}
	}
	nonEmpty := func(name string, r core.Range) {
		if !r.Valid() {
			bad("%s range [%g, %g) is empty", name, r.Min, r.Max)
		}
	}

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		bad("window size %dx%d must be positive", cfg.Window.Width, cfg.Window.Height)
	}
	positive("terminal.cell_width", cfg.Terminal.CellWidth)
	positive("terminal.cell_height", cfg.Terminal.CellHeight)

	positive("physics.gravity", cfg.Physics.Gravity)
	positive("physics.scroll_speed", cfg.Physics.ScrollSpeed)
	positive("physics.max_step", cfg.Physics.MaxStep)

	positive("bird.size", cfg.Bird.Size)
	positive("bird.flap_height", cfg.Bird.FlapHeight)
	if cfg.Bird.HitboxScale <= 0 || cfg.Bird.HitboxScale > 1 {
		bad("bird.hitbox_scale must be in (0, 1], got %g", cfg.Bird.HitboxScale)
	}

	o := cfg.Obstacles
	positive("obstacles.pillar_width", o.PillarWidth)
	positive("obstacles.gap", o.Gap)
	positive("obstacles.spawn_distance", o.SpawnDistance)
	positive("obstacles.trigger_width", o.TriggerWidth)
	positive("obstacles.fade_speed", o.FadeSpeed)
	positive("obstacles.border_thickness", o.BorderThickness)
	nonEmpty("obstacles.gap_fraction", o.GapFraction)
	if o.GapFraction.Min <= 0 || o.GapFraction.Max >= 1 {
		bad("obstacles.gap_fraction must lie inside (0, 1), got [%g, %g)", o.GapFraction.Min, o.GapFraction.Max)
	}

	e := cfg.Explosion
	if e.ParticleCount < 0 {
		bad("explosion.particle_count must not be negative, got %d", e.ParticleCount)
	}
	nonEmpty("explosion.size_fraction", e.SizeFraction)
	nonEmpty("explosion.speed", e.Speed)
	nonEmpty("explosion.lifetime", e.Lifetime)
	if e.Speed.Min < 0 || e.Lifetime.Min < 0 || e.SizeFraction.Min < 0 {
		bad("explosion ranges must not be negative")
	}

	if _, err := cfg.Palette.Colors(); err != nil {
		bad("%v", err)
	}

	return errors.Join(errs...)
}
