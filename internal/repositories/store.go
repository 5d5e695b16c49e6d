package repositories

import "sync"

// store is the in-memory container shared by every repository. It keeps
// records in insertion order and guards all access with a single mutex per
// instance. The id counter is incremented inside the same critical section
// as the append, so id order and insertion order always agree and an id is
// never reused, even after a delete.
type store[E any] struct {
	mu     sync.Mutex
	lastID int
	items  []E
	idOf   func(E) int
}

func newStore[E any](idOf func(E) int) *store[E] {
	return &store[E]{idOf: idOf}
}

// getAll returns a copy of the current contents in insertion order.
// Mutating the returned slice does not affect the store.
func (s *store[E]) getAll() []E {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]E, len(s.items))
	copy(out, s.items)
	return out
}

// getByID returns the record with the given id, if present. Absence is
// signaled by the bool, never by an error.
func (s *store[E]) getByID(id int) (E, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if s.idOf(item) == id {
			return item, true
		}
	}
	var zero E
	return zero, false
}

// create assigns the next id, builds the record with it and appends it to
// the end of the collection.
func (s *store[E]) create(build func(id int) E) E {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	item := build(s.lastID)
	s.items = append(s.items, item)
	return item
}

// update replaces the record with the given id in place, preserving its
// position in the collection. It reports whether a record was found;
// nothing is mutated when the id is absent.
func (s *store[E]) update(id int, apply func(existing E) E) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if s.idOf(item) == id {
			s.items[i] = apply(item)
			return true
		}
	}
	return false
}

// delete removes the record with the given id. The freed id is never
// handed out again.
func (s *store[E]) delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if s.idOf(item) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// find returns copies of every record matching the predicate, in
// insertion order.
func (s *store[E]) find(match func(E) bool) []E {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []E{}
	for _, item := range s.items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}

// any reports whether at least one record matches the predicate.
func (s *store[E]) any(match func(E) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if match(item) {
			return true
		}
	}
	return false
}
