package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/ecs"
)

// explosionSystem replaces every armed entity with its particle burst.
// Each exploded entity is destroyed exactly once, after its particles exist.
// It returns the number of particles created.
func explosionSystem(w *world, rng *rand.Rand) int {
	created := 0
	for _, e := range ecs.Query(w.explodes, w.transforms, w.sprites) {
		ex, _ := w.explodes.Get(e)
		if !ex.Armed() {
			continue
		}
		burst := *ex
		origin, _ := w.transforms.Get(e)
		pos := origin.Pos
		sprite, _ := w.sprites.Get(e)
		size := sprite.Size

		for range burst.Particles {
			spawnParticle(w, rng, burst, pos, size)
			created++
		}
		w.Destroy(e)
	}
	return created
}

func spawnParticle(w *world, rng *rand.Rand, burst Explodes, pos, size core.Vec2) ecs.Entity {
	scale := burst.SizeFraction.Sample(rng)
	dir := randomDirection(rng)
	speed := burst.Speed.Sample(rng)
	life := burst.Lifetime.Sample(rng)

	p := w.spawnSprite(pos, zParticle, size.Scale(scale), burst.Color)
	w.velocities.Set(p, dir.Scale(speed))
	w.lifetimes.Set(p, Lifetime{Remaining: life})
	w.restart.Set(p, DestroyAtRestart{})
	return p
}

// randomDirection returns a unit vector from two uniform [-1, 1) draws,
// drawing again on the zero vector.
func randomDirection(rng *rand.Rand) core.Vec2 {
	for {
		v := core.V2(rng.Float64()*2-1, rng.Float64()*2-1)
		if n, ok := v.Normalize(); ok {
			return n
		}
	}
}
