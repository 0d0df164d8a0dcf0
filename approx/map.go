// SPDX-License-Identifier: MIT

// Package approx: approximate-keyed containers.
// Map and Set wrap a plain Go map whose keys are the interned hashes of
// Hashable values. They are not safe for concurrent use; every build owns
// its containers.

package approx

// Map is a hash map keyed by approximate equality of K.
type Map[K Hashable, V any] struct {
	in Interner
	m  map[Key]V
}

// NewMap returns an empty approximate-keyed map.
func NewMap[K Hashable, V any]() *Map[K, V] {
	return &Map[K, V]{m: make(map[Key]V)}
}

// Get returns the value stored under a key approximately equal to k.
// Looking up a never-seen value may mint interner buckets (see package doc).
func (m *Map[K, V]) Get(k K) (V, bool) {
	v, ok := m.m[KeyOf(&m.in, k)]
	return v, ok
}

// Set stores v under k, returning the previously stored value, if any.
func (m *Map[K, V]) Set(k K, v V) (V, bool) {
	key := KeyOf(&m.in, k)
	prev, ok := m.m[key]
	m.m[key] = v
	return prev, ok
}

// GetOrInsert returns the value under k, inserting v first when absent.
// The boolean reports whether the value was already present.
func (m *Map[K, V]) GetOrInsert(k K, v V) (V, bool) {
	key := KeyOf(&m.in, k)
	if prev, ok := m.m[key]; ok {
		return prev, true
	}
	m.m[key] = v
	return v, false
}

// Len reports the number of stored entries.
func (m *Map[K, V]) Len() int { return len(m.m) }

// Set is a set of values compared by approximate equality.
type Set[K Hashable] struct {
	m *Map[K, struct{}]
}

// NewSet returns an empty approximate set.
func NewSet[K Hashable]() *Set[K] {
	return &Set[K]{m: NewMap[K, struct{}]()}
}

// Add inserts k, reporting true when k was not already present.
func (s *Set[K]) Add(k K) bool {
	_, present := s.m.GetOrInsert(k, struct{}{})
	return !present
}

// Contains reports whether a value approximately equal to k is present.
func (s *Set[K]) Contains(k K) bool {
	_, ok := s.m.Get(k)
	return ok
}

// Len reports the number of stored values.
func (s *Set[K]) Len() int { return s.m.Len() }
