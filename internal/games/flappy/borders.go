package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/ecs"
)

// spawnBorders creates the floor and the roof. They are never destroyed.
func spawnBorders(w *world, view core.Viewport, thickness float64, c core.Color) {
	for _, role := range []BorderRole{BorderBottom, BorderTop} {
		e := w.spawnSprite(borderPos(role, view), zBorder, core.V2(view.W, thickness), c)
		w.borders.Set(e, Border{Role: role})
		w.colliders.Set(e, Collider{})
	}
}

func borderPos(role BorderRole, view core.Viewport) core.Vec2 {
	return core.V2(0, float64(role)*view.H/2)
}

// bordersSystem pins the borders to the current viewport edges.
func bordersSystem(w *world, view core.Viewport, thickness float64) {
	w.borders.Each(func(e ecs.Entity, b *Border) {
		if t, ok := w.transforms.Get(e); ok {
			t.Pos = borderPos(b.Role, view)
		}
		if s, ok := w.sprites.Get(e); ok {
			s.Size = core.V2(view.W, thickness)
		}
	})
}

// outOfBoundsSystem destroys entities that scrolled past the left edge.
// Borders and the bird are exempt; the bird leaves the world only by exploding.
// It returns the number destroyed.
func outOfBoundsSystem(w *world, view core.Viewport) int {
	var gone []ecs.Entity
	left := -view.W / 2
	w.transforms.Each(func(e ecs.Entity, t *Transform) {
		if w.borders.Has(e) || w.birds.Has(e) {
			return
		}
		s, ok := w.sprites.Get(e)
		if !ok {
			return
		}
		if t.Pos.X+s.Size.X < left {
			gone = append(gone, e)
		}
	})
	for _, e := range gone {
		w.Destroy(e)
	}
	return len(gone)
}
