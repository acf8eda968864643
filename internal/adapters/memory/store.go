package memory

import (
	"sync"
)

// cloneable is satisfied by entity pointers that can deep-copy themselves.
type cloneable[T any] interface {
	Clone() T
}

// store is a mutex-guarded keyed container preserving insertion order. It is
// pure storage: no cross-entity knowledge lives here. Values are cloned on
// the way in and on the way out, so callers holding a snapshot never observe
// later mutations.
type store[T cloneable[T]] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

func newStore[T cloneable[T]]() *store[T] {
	return &store[T]{items: make(map[string]T)}
}

// add inserts under id, reporting false if the id is already present.
func (s *store[T]) add(id string, item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; exists {
		return false
	}
	s.items[id] = item.Clone()
	s.order = append(s.order, id)
	return true
}

// get returns a copy of the stored value.
func (s *store[T]) get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return item.Clone(), true
}

// all returns a snapshot of every value in insertion order.
func (s *store[T]) all() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id].Clone())
	}
	return out
}

// update replaces the stored value, reporting false if the id is absent.
func (s *store[T]) update(id string, item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return false
	}
	s.items[id] = item.Clone()
	return true
}

// delete removes the entry, reporting whether removal occurred.
func (s *store[T]) delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return false
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}
