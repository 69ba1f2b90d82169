package ordmap

import "iter"

// Each visits all entries in insertion order.
//
// Iteration stops early if the callback returns false. A dense map walks the
// sequence unfiltered; a sparse map skips tombstone slots.
func (m OrdMap[K, V]) Each(fn func(key K, val V) bool) {
	if fn == nil {
		return
	}
	if m.Dense() {
		m.seq.Each(func(_ int, s slot[K, V]) bool {
			return fn(s.key, s.val)
		})
		return
	}
	m.seq.Each(func(_ int, s slot[K, V]) bool {
		if !s.live {
			return true
		}
		return fn(s.key, s.val)
	})
}

// EachReverse visits all entries in reverse insertion order.
//
// Iteration stops early if the callback returns false.
func (m OrdMap[K, V]) EachReverse(fn func(key K, val V) bool) {
	if fn == nil {
		return
	}
	if m.Dense() {
		m.seq.EachReverse(func(_ int, s slot[K, V]) bool {
			return fn(s.key, s.val)
		})
		return
	}
	m.seq.EachReverse(func(_ int, s slot[K, V]) bool {
		if !s.live {
			return true
		}
		return fn(s.key, s.val)
	})
}

// All returns an iterator over all entries in insertion order.
func (m OrdMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.Each(yield)
	}
}

// Backward returns an iterator over all entries in reverse insertion order.
func (m OrdMap[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.EachReverse(yield)
	}
}

// Pairs collects all entries into a slice, in insertion order.
func (m OrdMap[K, V]) Pairs() []Pair[K, V] {
	out := make([]Pair[K, V], 0, m.index.Len())
	m.Each(func(k K, v V) bool {
		out = append(out, Pair[K, V]{Key: k, Value: v})
		return true
	})
	return out
}

// Keys collects all keys into a slice, in insertion order.
func (m OrdMap[K, V]) Keys() []K {
	out := make([]K, 0, m.index.Len())
	m.Each(func(k K, _ V) bool {
		out = append(out, k)
		return true
	})
	return out
}

// Values collects all values into a slice, in insertion order.
func (m OrdMap[K, V]) Values() []V {
	out := make([]V, 0, m.index.Len())
	m.Each(func(_ K, v V) bool {
		out = append(out, v)
		return true
	})
	return out
}

// First returns the oldest entry, or ok == false for an empty map.
//
// A dense map reads position 0 directly; a sparse map scans from the front
// until the first live slot.
func (m OrdMap[K, V]) First() (key K, val V, ok bool) {
	if m.IsEmpty() {
		return key, val, false
	}
	if m.Dense() {
		s := m.seq.First(slot[K, V]{})
		return s.key, s.val, true
	}
	s, _, found := m.seq.Find(func(s slot[K, V]) bool { return s.live })
	assert(found, "sparse non-empty map without live slot")
	return s.key, s.val, true
}

// Last returns the most recently inserted entry, or ok == false for an empty
// map.
//
// The sequence always ends in a live slot, so this is O(1) for dense and
// sparse maps alike.
func (m OrdMap[K, V]) Last() (key K, val V, ok bool) {
	if m.IsEmpty() {
		return key, val, false
	}
	s := m.seq.Last(slot[K, V]{})
	assert(s.live, "sequence must end in a live slot")
	return s.key, s.val, true
}

// Foldl folds all entries in insertion order into an accumulator.
func Foldl[K comparable, V, A any](m OrdMap[K, V], zero A, fn func(acc A, key K, val V) A) A {
	acc := zero
	m.Each(func(k K, v V) bool {
		acc = fn(acc, k, v)
		return true
	})
	return acc
}

// Foldr folds all entries in reverse insertion order into an accumulator.
func Foldr[K comparable, V, A any](m OrdMap[K, V], zero A, fn func(acc A, key K, val V) A) A {
	acc := zero
	m.EachReverse(func(k K, v V) bool {
		acc = fn(acc, k, v)
		return true
	})
	return acc
}
