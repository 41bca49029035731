// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Game is the interface every game exposes to the frontends.
// Games contain pure logic with no external dependencies (especially no Bubble Tea
// or Ebitengine). The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "flappy").
	// Used for CLI commands and log prefixes.
	ID() string

	// Title returns a human-readable name for display (e.g., "Flappy Bird").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by dt seconds of frame time.
	// Input is abstracted to platform-level actions (Jump, Pause, etc.).
	// Returns the result of this frame including current game state.
	Step(dt float64, in core.InputFrame) core.StepResult

	// Resize tells the game the screen changed size without restarting it.
	Resize(w, h int)

	// Render draws the current game state into the provided character grid.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// Sprites returns the world-space rectangles to draw, lowest Z first.
	Sprites() []core.Sprite

	// Labels returns the HUD text for this frame.
	Labels() []core.Label

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}
