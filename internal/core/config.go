package core

import (
	"errors"
	"fmt"
)

// ErrNoViewport is returned when no usable viewport is available.
// The simulation cannot place borders or obstacles without one.
var ErrNoViewport = errors.New("core: no usable viewport")

// Viewport is the visible area in world units, centered on the origin.
type Viewport struct {
	W, H float64
}

// Validate returns ErrNoViewport unless both dimensions are positive.
func (v Viewport) Validate() error {
	if v.W <= 0 || v.H <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrNoViewport, v.W, v.H)
	}
	return nil
}

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in frontend units (cells or pixels)
	ScreenH  int   // Screen height in frontend units
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Scale    Vec2  // World units per screen unit; zero means 1
}

// UnitScale returns Scale with zero components replaced by 1.
func (c RuntimeConfig) UnitScale() Vec2 {
	s := c.Scale
	if s.X == 0 {
		s.X = 1
	}
	if s.Y == 0 {
		s.Y = 1
	}
	return s
}

// Viewport returns the screen size converted to world units.
func (c RuntimeConfig) Viewport() Viewport {
	s := c.UnitScale()
	return Viewport{W: float64(c.ScreenW) * s.X, H: float64(c.ScreenH) * s.Y}
}

// Validate checks that the config describes a usable screen and clock.
func (c RuntimeConfig) Validate() error {
	if err := c.Viewport().Validate(); err != nil {
		return err
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("core: tick rate must be positive, got %d", c.TickRate)
	}
	return nil
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int    // Current score
	Highscore int    // Best score this process
	Phase     string // Lifecycle phase name
	GameOver  bool   // Whether the round has ended
	Paused    bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Sprite is a renderable rectangle in world space.
// Pos is the rectangle center; higher Z draws on top.
type Sprite struct {
	Pos   Vec2
	Size  Vec2
	Color Color
	Z     float64
}

// LabelRole tells a frontend where and how to place a Label.
type LabelRole int

const (
	LabelScore LabelRole = iota
	LabelHighscore
	LabelHint
)

// Label is a piece of HUD text produced by the game.
type Label struct {
	Text  string
	Role  LabelRole
	Color Color
}
