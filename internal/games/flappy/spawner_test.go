package flappy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/ecs"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestSpawnerStateDue(t *testing.T) {
	tests := []struct {
		name     string
		lastX    float64
		viewW    float64
		expected bool
	}{
		{"initial", 0, 1344, true},
		{"just spawned", 1374, 1344, false},
		{"exactly at threshold", 964, 1344, false},
		{"past threshold", 963.9, 1344, true},
		{"narrow viewport", 0, 380, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := SpawnerState{LastX: tc.lastX}
			if got := s.Due(tc.viewW, 380); got != tc.expected {
				t.Errorf("Due() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSpawnerCadence(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	colors := cfg.Palette.MustColors()
	view := core.Viewport{W: 1344, H: 756}
	w := newWorld()
	rng := newTestRand()

	var s SpawnerState
	spawns := 0
	for frame := range 600 {
		before := s.LastX
		due := s.Due(view.W, cfg.Obstacles.SpawnDistance)

		plan, spawned := spawnerSystem(w, &s, rng, view, cfg, colors, frameDT)

		if spawned != due {
			t.Fatalf("frame %d: spawned=%v but due=%v", frame, spawned, due)
		}
		advance := cfg.Physics.ScrollSpeed * frameDT
		if spawned {
			spawns++
			want := plan.X + view.W/2 - advance
			if math.Abs(s.LastX-want) > 1e-9 {
				t.Fatalf("frame %d: LastX = %v, expected %v", frame, s.LastX, want)
			}
		} else if math.Abs(before-advance-s.LastX) > 1e-9 || s.LastX >= before {
			t.Fatalf("frame %d: LastX went %v -> %v", frame, before, s.LastX)
		}
	}

	// 10 s of scrolling at 350/s with a pair every 410 units, plus the first.
	if spawns != 9 {
		t.Errorf("spawns = %d, expected 9", spawns)
	}
	if w.triggers.Len() != spawns || w.colliders.Len() != 2*spawns {
		t.Errorf("triggers=%d colliders=%d for %d spawns", w.triggers.Len(), w.colliders.Len(), spawns)
	}
}

func TestPlanPairGeometry(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Obstacles
	view := core.Viewport{W: 1344, H: 756}

	for seed := int64(1); seed <= 50; seed++ {
		p := planPair(rand.New(rand.NewSource(seed)), view, cfg)

		if !cfg.GapFraction.Contains(p.Fraction) {
			t.Fatalf("seed %d: fraction %v out of range", seed, p.Fraction)
		}
		if p.X != 702 {
			t.Fatalf("seed %d: X = %v, expected 702", seed, p.X)
		}

		gapMid := view.H * (p.Fraction - 0.5)
		upperBottom := p.Upper.Pos.Y - p.Upper.Size.Y/2
		lowerTop := p.Lower.Pos.Y + p.Lower.Size.Y/2
		upperTop := p.Upper.Pos.Y + p.Upper.Size.Y/2
		lowerBottom := p.Lower.Pos.Y - p.Lower.Size.Y/2

		checks := []struct {
			name      string
			got, want float64
		}{
			{"trigger y", p.Trigger.Pos.Y, gapMid},
			{"upper bottom", upperBottom, gapMid + cfg.Gap/2},
			{"lower top", lowerTop, gapMid - cfg.Gap/2},
			{"upper top", upperTop, view.H/2 + cfg.Gap/2},
			{"lower bottom", lowerBottom, -view.H/2 - cfg.Gap/2},
			{"trigger height", p.Trigger.Size.Y, cfg.Gap},
			{"trigger width", p.Trigger.Size.X, cfg.TriggerWidth},
			{"pillar width", p.Upper.Size.X, cfg.PillarWidth},
		}
		for _, c := range checks {
			if math.Abs(c.got-c.want) > 1e-9 {
				t.Errorf("seed %d: %s = %v, expected %v", seed, c.name, c.got, c.want)
			}
		}
	}
}

func TestSpawnedPairComponents(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	colors := cfg.Palette.MustColors()
	w := newWorld()
	var s SpawnerState

	if _, ok := spawnerSystem(w, &s, newTestRand(), core.Viewport{W: 1344, H: 756}, cfg, colors, 0); !ok {
		t.Fatal("expected a spawn")
	}
	if w.Len() != 3 {
		t.Fatalf("entities = %d, expected 3", w.Len())
	}
	if w.colliders.Len() != 2 || w.triggers.Len() != 1 || w.fades.Len() != 1 || w.restart.Len() != 3 {
		t.Errorf("colliders=%d triggers=%d fades=%d restart=%d",
			w.colliders.Len(), w.triggers.Len(), w.fades.Len(), w.restart.Len())
	}
	w.velocities.Each(func(_ ecs.Entity, v *core.Vec2) {
		if *v != core.V2(-350, 0) {
			t.Errorf("velocity = %v, expected scroll speed", *v)
		}
	})
	for _, e := range w.triggers.Entities() {
		if w.colliders.Has(e) {
			t.Error("trigger must not be a collider")
		}
		sp, _ := w.sprites.Get(e)
		if sp.Color != colors.Laser {
			t.Errorf("trigger color = %v", sp.Color)
		}
	}
}
