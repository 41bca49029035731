package flappy

import "github.com/vovakirdan/tui-flappy/internal/ecs"

// lifetimeSystem destroys expired entities and counts down the rest.
// An entity whose lifetime reaches zero this frame lives until the next.
func lifetimeSystem(w *world, dt float64) int {
	var expired []ecs.Entity
	w.lifetimes.Each(func(e ecs.Entity, l *Lifetime) {
		if l.Remaining <= 0 {
			expired = append(expired, e)
			return
		}
		l.Remaining -= dt
	})
	for _, e := range expired {
		w.Destroy(e)
	}
	return len(expired)
}

// fadeSystem lowers the alpha of sprites whose fade has started.
// Alpha stops at zero.
func fadeSystem(w *world, dt float64) {
	w.fades.Each(func(e ecs.Entity, f *FadeOut) {
		if !f.Started() {
			return
		}
		if s, ok := w.sprites.Get(e); ok {
			s.Color = s.Color.WithAlpha(s.Color.A - f.Speed*dt)
		}
	})
}
