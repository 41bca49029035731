package ecs

// Set is the type-erased view of a component store used by queries and by
// World.Destroy.
type Set interface {
	Has(e Entity) bool
	Len() int
	Entities() []Entity
	remove(e Entity)
}

// Store holds components of type T keyed by entity, in a sparse set.
// Values are densely packed; Get returns a pointer into that storage which is
// valid until the next Set or Remove on the same store.
type Store[T any] struct {
	world  *World
	dense  []Entity
	values []T
	sparse []int // sparse[id-1] is the dense index, or -1
}

// Register creates a component store for T and attaches it to w so that
// destroyed entities lose their T component.
func Register[T any](w *World) *Store[T] {
	s := &Store[T]{world: w}
	w.sets = append(w.sets, s)
	return s
}

func (s *Store[T]) index(e Entity) (int, bool) {
	id := e.id()
	if id == 0 || int(id) > len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[id-1]
	if idx < 0 || idx >= len(s.dense) || s.dense[idx] != e {
		return 0, false
	}
	return idx, true
}

// Has reports whether e carries a T.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.index(e)
	return ok
}

// Get returns a pointer to e's T for in-place updates.
func (s *Store[T]) Get(e Entity) (*T, bool) {
	idx, ok := s.index(e)
	if !ok {
		return nil, false
	}
	return &s.values[idx], true
}

// Set attaches or replaces e's T. Dead entities are ignored.
func (s *Store[T]) Set(e Entity, v T) {
	if s.world != nil && !s.world.Alive(e) {
		return
	}
	if idx, ok := s.index(e); ok {
		s.values[idx] = v
		return
	}
	id := int(e.id())
	for len(s.sparse) < id {
		s.sparse = append(s.sparse, -1)
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id-1] = len(s.dense) - 1
}

// Remove detaches e's T if present.
func (s *Store[T]) Remove(e Entity) {
	s.remove(e)
}

func (s *Store[T]) remove(e Entity) {
	idx, ok := s.index(e)
	if !ok {
		return
	}
	last := len(s.dense) - 1
	moved := s.dense[last]

	s.dense[idx] = moved
	s.values[idx] = s.values[last]
	s.sparse[moved.id()-1] = idx

	var zero T
	s.values[last] = zero
	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[e.id()-1] = -1
}

// Len returns the number of entities carrying a T.
func (s *Store[T]) Len() int {
	return len(s.dense)
}

// Entities returns a snapshot of the entities carrying a T.
// The snapshot stays valid while entities are destroyed during iteration.
func (s *Store[T]) Entities() []Entity {
	out := make([]Entity, len(s.dense))
	copy(out, s.dense)
	return out
}

// Each calls fn for every (entity, component) pair. fn must not add or
// remove T components; collect entities first when destroying.
func (s *Store[T]) Each(fn func(e Entity, v *T)) {
	for i := range s.dense {
		fn(s.dense[i], &s.values[i])
	}
}
