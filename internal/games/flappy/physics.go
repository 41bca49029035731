package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/ecs"
)

// flapSystem sets every bird's vertical speed to the flap speed for its
// own gravity.
func flapSystem(w *world) {
	for _, e := range w.birds.Entities() {
		b, _ := w.birds.Get(e)
		g, ok := w.gravities.Get(e)
		if !ok {
			continue
		}
		v, ok := w.velocities.Get(e)
		if !ok {
			continue
		}
		v.Y = FlapSpeed(g.Accel, b.FlapHeight)
	}
}

// gravitySystem pulls falling entities down.
func gravitySystem(w *world, dt float64) {
	w.gravities.Each(func(e ecs.Entity, g *Gravity) {
		if v, ok := w.velocities.Get(e); ok {
			v.Y -= g.Accel * dt
		}
	})
}

// velocitySystem moves every entity with a velocity.
func velocitySystem(w *world, dt float64) {
	w.velocities.Each(func(e ecs.Entity, v *core.Vec2) {
		if t, ok := w.transforms.Get(e); ok {
			t.Pos = t.Pos.Add(v.Scale(dt))
		}
	})
}
