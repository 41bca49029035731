package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// SpawnerState tracks how far the last obstacle pair has scrolled.
// LastX starts at 0, jumps forward when a pair spawns and then falls at
// the scroll speed.
type SpawnerState struct {
	LastX float64
}

// Due reports whether a new pair should spawn in a viewport viewW wide.
func (s SpawnerState) Due(viewW, threshold float64) bool {
	return viewW-s.LastX > threshold
}

// Rebase records a pair spawned at pairX.
func (s *SpawnerState) Rebase(pairX, viewW float64) {
	s.LastX = pairX + viewW/2
}

// Advance scrolls the spawn marker left by speed*dt.
func (s *SpawnerState) Advance(speed, dt float64) {
	s.LastX -= speed * dt
}

// Reset returns the spawner to its initial state.
func (s *SpawnerState) Reset() {
	s.LastX = 0
}

// segment is one rectangle of a pair plan.
type segment struct {
	Pos  core.Vec2
	Size core.Vec2
}

// pairPlan is the geometry of one obstacle pair and its score trigger.
type pairPlan struct {
	X        float64
	Fraction float64 // Share of the viewport height taken by the lower pillar
	Upper    segment
	Lower    segment
	Trigger  segment
}

// planPair lays out a pair just beyond the right edge of view.
// The gap of cfg.Gap units is centered at H*(f-0.5), f drawn from
// cfg.GapFraction. Both pillars extend gap/2 past the viewport edge.
func planPair(rng *rand.Rand, view core.Viewport, cfg config.FlappyObstacles) pairPlan {
	f := cfg.GapFraction.Sample(rng)
	x := view.W/2 + cfg.PillarWidth/2

	upperH := view.H * (1 - f)
	lowerH := view.H * f

	return pairPlan{
		X:        x,
		Fraction: f,
		Upper: segment{
			Pos:  core.V2(x, view.H/2-upperH/2+cfg.Gap/2),
			Size: core.V2(cfg.PillarWidth, upperH),
		},
		Lower: segment{
			Pos:  core.V2(x, lowerH/2-view.H/2-cfg.Gap/2),
			Size: core.V2(cfg.PillarWidth, lowerH),
		},
		Trigger: segment{
			Pos:  core.V2(x, view.H*(f-0.5)),
			Size: core.V2(cfg.TriggerWidth, cfg.Gap),
		},
	}
}

// spawnerSystem spawns a pair when due, then advances the marker.
// It returns the plan of the spawned pair, if any.
func spawnerSystem(w *world, s *SpawnerState, rng *rand.Rand, view core.Viewport,
	cfg config.FlappyConfig, colors config.Colors, dt float64) (pairPlan, bool) {
	var (
		plan    pairPlan
		spawned bool
	)
	if s.Due(view.W, cfg.Obstacles.SpawnDistance) {
		plan = planPair(rng, view, cfg.Obstacles)
		spawnPair(w, plan, cfg, colors)
		s.Rebase(plan.X, view.W)
		spawned = true
	}
	s.Advance(cfg.Physics.ScrollSpeed, dt)
	return plan, spawned
}

func spawnPair(w *world, plan pairPlan, cfg config.FlappyConfig, colors config.Colors) {
	scroll := core.V2(-cfg.Physics.ScrollSpeed, 0)

	for _, seg := range []segment{plan.Upper, plan.Lower} {
		e := w.spawnSprite(seg.Pos, zPillar, seg.Size, colors.Pillar)
		w.velocities.Set(e, scroll)
		w.colliders.Set(e, Collider{})
		w.restart.Set(e, DestroyAtRestart{})
	}

	t := w.spawnSprite(plan.Trigger.Pos, zPillar, plan.Trigger.Size, colors.Laser)
	w.velocities.Set(t, scroll)
	w.triggers.Set(t, ScoreTrigger{})
	w.fades.Set(t, FadeOut{Speed: cfg.Obstacles.FadeSpeed})
	w.restart.Set(t, DestroyAtRestart{})
}
