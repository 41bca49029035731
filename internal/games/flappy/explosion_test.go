package flappy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestExplosionBurst(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Explosion
	w := newWorld()
	pos := core.V2(-275, 40)
	b := spawnTestBird(w, pos)
	ex, _ := w.explodes.Get(b)
	ex.Arm()

	n := explosionSystem(w, rand.New(rand.NewSource(9)))

	if n != cfg.ParticleCount {
		t.Fatalf("created %d particles, expected %d", n, cfg.ParticleCount)
	}
	if w.Alive(b) {
		t.Error("exploded bird should be destroyed")
	}
	if w.birds.Len() != 0 {
		t.Error("no bird components should remain")
	}
	if w.lifetimes.Len() != cfg.ParticleCount {
		t.Fatalf("lifetimes = %d", w.lifetimes.Len())
	}

	for _, p := range w.lifetimes.Entities() {
		life, _ := w.lifetimes.Get(p)
		if !cfg.Lifetime.Contains(life.Remaining) {
			t.Errorf("lifetime %v outside %v", life.Remaining, cfg.Lifetime)
		}
		v, _ := w.velocities.Get(p)
		if speed := v.Len(); speed < cfg.Speed.Min-1e-9 || speed >= cfg.Speed.Max+1e-9 {
			t.Errorf("speed %v outside %v", speed, cfg.Speed)
		}
		tr, _ := w.transforms.Get(p)
		if tr.Pos != pos {
			t.Errorf("particle spawned at %v, expected %v", tr.Pos, pos)
		}
		sp, _ := w.sprites.Get(p)
		frac := sp.Size.X / 27
		if frac < cfg.SizeFraction.Min-1e-9 || frac >= cfg.SizeFraction.Max {
			t.Errorf("size fraction %v outside %v", frac, cfg.SizeFraction)
		}
		if sp.Size.X != sp.Size.Y {
			t.Errorf("particle should be square, got %v", sp.Size)
		}
		if !w.restart.Has(p) {
			t.Error("particles should be cleared on restart")
		}
		if w.gravities.Has(p) || w.colliders.Has(p) {
			t.Error("particles neither fall nor collide")
		}
	}
}

func TestUnarmedDoesNotExplode(t *testing.T) {
	w := newWorld()
	b := spawnTestBird(w, core.V2(0, 0))

	if n := explosionSystem(w, newTestRand()); n != 0 {
		t.Errorf("created %d particles", n)
	}
	if !w.Alive(b) {
		t.Error("unarmed bird should survive")
	}
}

func TestExplosionDeterministic(t *testing.T) {
	burst := func() []core.Vec2 {
		w := newWorld()
		b := spawnTestBird(w, core.V2(0, 0))
		ex, _ := w.explodes.Get(b)
		ex.Arm()
		explosionSystem(w, rand.New(rand.NewSource(21)))

		var vels []core.Vec2
		for _, p := range w.velocities.Entities() {
			v, _ := w.velocities.Get(p)
			vels = append(vels, *v)
		}
		return vels
	}

	a, b := burst(), burst()
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("particle %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestRandomDirectionIsUnit(t *testing.T) {
	rng := newTestRand()
	for range 1000 {
		d := randomDirection(rng)
		if math.Abs(d.Len()-1) > 1e-9 {
			t.Fatalf("direction %v has length %v", d, d.Len())
		}
	}
}
