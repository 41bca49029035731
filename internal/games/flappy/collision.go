package flappy

import "github.com/vovakirdan/tui-flappy/internal/ecs"

// obstacleCollisionSystem arms every bird whose shrunken box overlaps a
// collider. It returns true if any bird was hit.
func obstacleCollisionSystem(w *world, hitboxScale float64) bool {
	hit := false
	for _, b := range ecs.Query(w.birds, w.explodes) {
		birdBox, ok := w.box(b)
		if !ok {
			continue
		}
		birdBox = birdBox.Scaled(hitboxScale)

		for _, c := range w.colliders.Entities() {
			box, ok := w.box(c)
			if !ok || !birdBox.Overlaps(box) {
				continue
			}
			ex, _ := w.explodes.Get(b)
			ex.Arm()
			hit = true
		}
	}
	return hit
}

// triggerCollisionSystem scores every trigger the bird passes through for
// the first time and starts its fade. It returns the points earned.
func triggerCollisionSystem(w *world) int {
	points := 0
	for _, b := range w.birds.Entities() {
		birdBox, ok := w.box(b)
		if !ok {
			continue
		}
		for _, t := range w.triggers.Entities() {
			box, ok := w.box(t)
			if !ok || !birdBox.Overlaps(box) {
				continue
			}
			trig, _ := w.triggers.Get(t)
			if !trig.Score() {
				continue
			}
			points++
			if f, ok := w.fades.Get(t); ok {
				f.Start()
			}
		}
	}
	return points
}
