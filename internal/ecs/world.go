package ecs

// World owns entity handles and the component stores registered on it.
type World struct {
	entities entityStore
	sets     []Set
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// Create allocates a new live entity.
func (w *World) Create() Entity {
	return w.entities.create()
}

// Destroy removes e and all of its components. Destroying a dead or stale
// handle is a no-op and returns false.
func (w *World) Destroy(e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.sets {
		s.remove(e)
	}
	return w.entities.destroy(e)
}

// Alive reports whether e refers to a live entity.
func (w *World) Alive(e Entity) bool {
	return w.entities.isAlive(e)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.entities.count
}

// Query returns the entities present in every given set, iterating the
// smallest one. No sets, or any empty set, yields nil.
func Query(sets ...Set) []Entity {
	if len(sets) == 0 {
		return nil
	}
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}
	if smallest.Len() == 0 {
		return nil
	}
	out := make([]Entity, 0, smallest.Len())
outer:
	for _, e := range smallest.Entities() {
		for _, s := range sets {
			if !s.Has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}
