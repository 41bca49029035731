package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/ecs"
)

func spawnTestBird(w *world, pos core.Vec2) ecs.Entity {
	cfg := config.DefaultFlappyConfig()
	e := w.spawnSprite(pos, zBird, core.V2(cfg.Bird.Size, cfg.Bird.Size), core.RGB(89, 194, 255))
	w.velocities.Set(e, core.Vec2{})
	w.gravities.Set(e, Gravity{Accel: cfg.Physics.Gravity})
	w.birds.Set(e, Bird{FlapHeight: cfg.Bird.FlapHeight})
	w.explodes.Set(e, Explodes{
		Particles:    cfg.Explosion.ParticleCount,
		SizeFraction: cfg.Explosion.SizeFraction,
		Speed:        cfg.Explosion.Speed,
		Lifetime:     cfg.Explosion.Lifetime,
	})
	w.restart.Set(e, DestroyAtRestart{})
	return e
}

func spawnTestCollider(w *world, pos, size core.Vec2) ecs.Entity {
	e := w.spawnSprite(pos, zPillar, size, core.RGB(255, 180, 84))
	w.colliders.Set(e, Collider{})
	return e
}

func TestObstacleOverlapUsesShrunkenBox(t *testing.T) {
	// A 27-unit bird scaled by 0.95 reaches 12.825 from its center.
	tests := []struct {
		name     string
		pos      core.Vec2
		size     core.Vec2
		expected bool
	}{
		{"centered", core.V2(0, 0), core.V2(10, 10), true},
		{"right inside hitbox", core.V2(17.8, 0), core.V2(10, 10), true},
		{"right outside hitbox", core.V2(17.9, 0), core.V2(10, 10), false},
		{"inside full box only", core.V2(18.2, 0), core.V2(10, 10), false},
		{"above", core.V2(0, 17.9), core.V2(10, 10), false},
		{"below inside", core.V2(0, -17.8), core.V2(10, 10), true},
		{"x overlap only", core.V2(0, 40), core.V2(100, 10), false},
		{"y overlap only", core.V2(40, 0), core.V2(10, 100), false},
		{"tall pillar", core.V2(40, 0), core.V2(60, 400), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newWorld()
			b := spawnTestBird(w, core.V2(0, 0))
			spawnTestCollider(w, tc.pos, tc.size)

			hit := obstacleCollisionSystem(w, 0.95)
			if hit != tc.expected {
				t.Errorf("hit = %v, expected %v", hit, tc.expected)
			}
			ex, _ := w.explodes.Get(b)
			if ex.Armed() != tc.expected {
				t.Errorf("Armed() = %v, expected %v", ex.Armed(), tc.expected)
			}
		})
	}
}

func TestMultipleOverlapsArmOnce(t *testing.T) {
	w := newWorld()
	b := spawnTestBird(w, core.V2(0, 0))
	spawnTestCollider(w, core.V2(5, 0), core.V2(10, 10))
	spawnTestCollider(w, core.V2(-5, 0), core.V2(10, 10))

	if !obstacleCollisionSystem(w, 0.95) {
		t.Fatal("expected a hit")
	}
	obstacleCollisionSystem(w, 0.95)

	if n := explosionSystem(w, newTestRand()); n != 32 {
		t.Errorf("particles = %d, expected 32", n)
	}
	if w.Alive(b) {
		t.Error("bird should be gone")
	}
	if n := explosionSystem(w, newTestRand()); n != 0 {
		t.Errorf("second explosion pass created %d particles", n)
	}
}

func TestTriggerScoresOnce(t *testing.T) {
	w := newWorld()
	spawnTestBird(w, core.V2(0, 0))
	trig := w.spawnSprite(core.V2(0, 0), zPillar, core.V2(5, 155), core.RGB(240, 46, 46))
	w.triggers.Set(trig, ScoreTrigger{})
	w.fades.Set(trig, FadeOut{Speed: 3})

	total := 0
	for range 10 {
		total += triggerCollisionSystem(w)
	}
	if total != 1 {
		t.Errorf("points = %d, expected 1", total)
	}
	st, _ := w.triggers.Get(trig)
	if st.State() != TriggerScored {
		t.Error("trigger should be scored")
	}
	f, _ := w.fades.Get(trig)
	if !f.Started() {
		t.Error("trigger fade should have started")
	}
}

func TestTriggerMissDoesNotScore(t *testing.T) {
	w := newWorld()
	spawnTestBird(w, core.V2(0, 0))
	trig := w.spawnSprite(core.V2(100, 0), zPillar, core.V2(5, 155), core.RGB(240, 46, 46))
	w.triggers.Set(trig, ScoreTrigger{})
	w.fades.Set(trig, FadeOut{Speed: 3})

	if n := triggerCollisionSystem(w); n != 0 {
		t.Errorf("points = %d, expected 0", n)
	}
	f, _ := w.fades.Get(trig)
	if f.Started() {
		t.Error("fade should not start without a pass")
	}
}

func TestTriggersAreNotObstacles(t *testing.T) {
	w := newWorld()
	spawnTestBird(w, core.V2(0, 0))
	trig := w.spawnSprite(core.V2(0, 0), zPillar, core.V2(5, 155), core.RGB(240, 46, 46))
	w.triggers.Set(trig, ScoreTrigger{})

	if obstacleCollisionSystem(w, 0.95) {
		t.Error("a score trigger must not end the round")
	}
}

func TestScoreTriggerTransition(t *testing.T) {
	var s ScoreTrigger
	if s.State() != TriggerUnscored {
		t.Fatal("new trigger should be unscored")
	}
	if !s.Score() {
		t.Error("first Score() should succeed")
	}
	if s.Score() {
		t.Error("second Score() should fail")
	}
	if s.State() != TriggerScored {
		t.Error("trigger should stay scored")
	}
}
