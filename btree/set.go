package btree

import (
	"cmp"
	"iter"
)

// Set is a persistent sorted set of keys, backed by a Map with empty
// values. The zero value is not usable; create sets with NewSet or
// NewSetFunc.
type Set[K any] struct {
	m Map[K, struct{}]
}

// NewSet creates an empty sorted set for naturally ordered keys.
func NewSet[K cmp.Ordered]() Set[K] {
	return Set[K]{m: New[K, struct{}]()}
}

// NewSetFunc creates an empty sorted set with a caller-supplied
// comparison.
func NewSetFunc[K any](compare func(a, b K) int) Set[K] {
	return Set[K]{m: NewFunc[K, struct{}](compare)}
}

// SetOf creates a sorted set holding the given keys.
func SetOf[K cmp.Ordered](keys ...K) Set[K] {
	s := NewSet[K]()
	for _, k := range keys {
		s = s.Add(k)
	}
	return s
}

// IsEmpty reports whether the set has no elements.
func (s Set[K]) IsEmpty() bool { return s.m.IsEmpty() }

// Len returns the number of elements in the set.
func (s Set[K]) Len() int { return s.m.Len() }

// Has reports whether key is an element of the set.
func (s Set[K]) Has(key K) bool { return s.m.Has(key) }

// Add returns a set containing key. The receiver is unmodified.
func (s Set[K]) Add(key K) Set[K] {
	return Set[K]{m: s.m.Set(key, struct{}{})}
}

// Remove returns a set without key. Removing an absent key returns the
// receiver unchanged.
func (s Set[K]) Remove(key K) Set[K] {
	return Set[K]{m: s.m.Delete(key)}
}

// Min returns the smallest element.
func (s Set[K]) Min() (K, bool) {
	k, _, ok := s.m.Min()
	return k, ok
}

// Max returns the largest element.
func (s Set[K]) Max() (K, bool) {
	k, _, ok := s.m.Max()
	return k, ok
}

// Each walks the elements in ascending order. Iteration stops early if
// the callback returns false.
func (s Set[K]) Each(fn func(key K) bool) {
	if fn == nil {
		return
	}
	s.m.Each(func(k K, _ struct{}) bool {
		return fn(k)
	})
}

// All returns an iterator over the elements in ascending order.
func (s Set[K]) All() iter.Seq[K] {
	return s.m.Keys()
}

// Check validates the invariants of the backing tree.
func (s Set[K]) Check() error {
	return s.m.Check()
}
