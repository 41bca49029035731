package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/ecs"
)

// Transform places an entity. Pos is the center in world space.
type Transform struct {
	Pos core.Vec2
	Z   float64
}

// Sprite is the visible rectangle of an entity. Its size doubles as the
// collision box.
type Sprite struct {
	Size  core.Vec2
	Color core.Color
}

// Box returns the sprite's world-space box at pos.
func (s Sprite) Box(pos core.Vec2) core.Box {
	return core.NewBox(pos, s.Size)
}

// Bird marks the player body.
type Bird struct {
	FlapHeight float64 // Apex height reached by one flap
}

// Gravity accelerates an entity downward while the round runs.
type Gravity struct {
	Accel float64
}

// FlapSpeed is the upward speed that lifts a body flapHeight units under g.
func FlapSpeed(g, flapHeight float64) float64 {
	return math.Sqrt(2 * g * flapHeight)
}

// Collider marks entities the bird must not touch.
type Collider struct{}

// BorderRole selects which edge of the viewport a border follows.
type BorderRole int

const (
	BorderBottom BorderRole = -1
	BorderTop    BorderRole = 1
)

// Border is one of the two horizontal walls.
type Border struct {
	Role BorderRole
}

// TriggerState is the lifecycle of a score trigger. It only moves forward.
type TriggerState int

const (
	TriggerUnscored TriggerState = iota
	TriggerScored
)

// ScoreTrigger awards one point the first time the bird passes through it.
type ScoreTrigger struct {
	state TriggerState
}

// Score moves the trigger to TriggerScored. It returns true only on the
// first call.
func (t *ScoreTrigger) Score() bool {
	if t.state == TriggerScored {
		return false
	}
	t.state = TriggerScored
	return true
}

// State returns the trigger's current state.
func (t ScoreTrigger) State() TriggerState {
	return t.state
}

// FadeOut lowers sprite alpha at Speed per second once started.
type FadeOut struct {
	Speed   float64
	started bool
}

// Start begins the fade. There is no way back.
func (f *FadeOut) Start() {
	f.started = true
}

// Started reports whether the fade is running.
func (f FadeOut) Started() bool {
	return f.started
}

// Explodes turns an entity into a burst of particles once armed.
type Explodes struct {
	Particles    int
	SizeFraction core.Range // Particle size as a fraction of the sprite size
	Speed        core.Range
	Lifetime     core.Range
	Color        core.Color
	armed        bool
}

// Arm schedules the explosion. Arming twice is the same as arming once.
func (e *Explodes) Arm() {
	e.armed = true
}

// Armed reports whether the explosion is pending.
func (e Explodes) Armed() bool {
	return e.armed
}

// Lifetime destroys an entity once Remaining runs out.
type Lifetime struct {
	Remaining float64 // Seconds
}

// DestroyAtRestart tags entities purged when a round restarts.
type DestroyAtRestart struct{}

// world bundles the entity store with one component store per kind.
type world struct {
	*ecs.World

	transforms *ecs.Store[Transform]
	sprites    *ecs.Store[Sprite]
	velocities *ecs.Store[core.Vec2]
	gravities  *ecs.Store[Gravity]
	birds      *ecs.Store[Bird]
	colliders  *ecs.Store[Collider]
	borders    *ecs.Store[Border]
	triggers   *ecs.Store[ScoreTrigger]
	fades      *ecs.Store[FadeOut]
	explodes   *ecs.Store[Explodes]
	lifetimes  *ecs.Store[Lifetime]
	restart    *ecs.Store[DestroyAtRestart]
}

func newWorld() *world {
	w := ecs.NewWorld()
	return &world{
		World:      w,
		transforms: ecs.Register[Transform](w),
		sprites:    ecs.Register[Sprite](w),
		velocities: ecs.Register[core.Vec2](w),
		gravities:  ecs.Register[Gravity](w),
		birds:      ecs.Register[Bird](w),
		colliders:  ecs.Register[Collider](w),
		borders:    ecs.Register[Border](w),
		triggers:   ecs.Register[ScoreTrigger](w),
		fades:      ecs.Register[FadeOut](w),
		explodes:   ecs.Register[Explodes](w),
		lifetimes:  ecs.Register[Lifetime](w),
		restart:    ecs.Register[DestroyAtRestart](w),
	}
}

// spawnSprite creates an entity with a transform and a sprite.
func (w *world) spawnSprite(pos core.Vec2, z float64, size core.Vec2, c core.Color) ecs.Entity {
	e := w.Create()
	w.transforms.Set(e, Transform{Pos: pos, Z: z})
	w.sprites.Set(e, Sprite{Size: size, Color: c})
	return e
}

// box returns e's world-space box, or false if e has no transform or sprite.
func (w *world) box(e ecs.Entity) (core.Box, bool) {
	t, ok := w.transforms.Get(e)
	if !ok {
		return core.Box{}, false
	}
	s, ok := w.sprites.Get(e)
	if !ok {
		return core.Box{}, false
	}
	return s.Box(t.Pos), true
}
