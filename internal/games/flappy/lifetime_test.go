package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestLifetimeCountsDownThenDestroys(t *testing.T) {
	w := newWorld()
	e := w.spawnSprite(core.V2(0, 0), zParticle, core.V2(2, 2), core.RGB(1, 2, 3))
	w.lifetimes.Set(e, Lifetime{Remaining: 0.25})

	for frame := range 5 {
		lifetimeSystem(w, 0.1)
		if !w.Alive(e) {
			t.Fatalf("destroyed after %d frames, expected to live until remaining <= 0", frame+1)
		}
		if l, _ := w.lifetimes.Get(e); l.Remaining <= 0 {
			break
		}
	}

	if n := lifetimeSystem(w, 0.1); n != 1 {
		t.Errorf("expired = %d, expected 1", n)
	}
	if w.Alive(e) {
		t.Error("entity should be gone")
	}
}

func TestLifetimeIgnoresOtherEntities(t *testing.T) {
	w := newWorld()
	keep := w.spawnSprite(core.V2(0, 0), zPillar, core.V2(2, 2), core.RGB(1, 2, 3))
	dead := w.spawnSprite(core.V2(0, 0), zParticle, core.V2(2, 2), core.RGB(1, 2, 3))
	w.lifetimes.Set(dead, Lifetime{Remaining: 0})

	lifetimeSystem(w, 0.016)

	if !w.Alive(keep) || w.Alive(dead) {
		t.Error("only the expired entity should be destroyed")
	}
}

func TestFadeOut(t *testing.T) {
	tests := []struct {
		name     string
		start    bool
		steps    int
		dt       float64
		expected float64
	}{
		{"not started", false, 10, 0.1, 1},
		{"partial", true, 1, 0.1, 0.7},
		{"clamped", true, 10, 0.1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newWorld()
			e := w.spawnSprite(core.V2(0, 0), zPillar, core.V2(5, 155), core.RGB(240, 46, 46))
			f := FadeOut{Speed: 3}
			if tc.start {
				f.Start()
			}
			w.fades.Set(e, f)

			for range tc.steps {
				fadeSystem(w, tc.dt)
			}

			sp, _ := w.sprites.Get(e)
			if diff := sp.Color.A - tc.expected; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("alpha = %v, expected %v", sp.Color.A, tc.expected)
			}
		})
	}
}
