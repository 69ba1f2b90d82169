package ordmap

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fp/dict"
	"github.com/npillmayer/fp/vector"
)

// OrdMap is an immutable persistent map preserving first-insertion order.
//
// A map created by
//
//	OrdMap[K, V]{}
//
// is a valid object and behaves like an empty map. All mutating operations
// return a new map; the receiver is never modified.
//
//	Operation     |   OrdMap        |  Go map
//	--------------+-----------------+--------
//	Lookup        |   O(1) eff.     |   O(1)
//	Put           |   O(1) eff.     |   O(1), destructive
//	Delete        |   O(1) amort.   |   O(1), destructive
//	Iterate       |   O(n), ordered |   O(n), random order
type OrdMap[K comparable, V any] struct {
	index dict.Dict[K, indexEntry[V]]
	seq   vector.Vector[slot[K, V]]
	next  int // next free append position; always equals seq.Len()
}

// Pair is one key/value entry of an ordered map.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// indexEntry is the index-side view of an entry: the slot position in the
// sequence, plus the value for lookups that never touch the sequence.
type indexEntry[V any] struct {
	pos int
	val V
}

// slot is the sequence-side view of an entry. A slot with live == false is a
// tombstone left behind by a non-tail delete.
type slot[K comparable, V any] struct {
	key  K
	val  V
	live bool
}

// Empty returns an empty ordered map. The zero value is equivalent.
func Empty[K comparable, V any]() OrdMap[K, V] {
	return OrdMap[K, V]{}
}

// Len returns the number of entries in the map.
func (m OrdMap[K, V]) Len() int {
	return m.index.Len()
}

// IsEmpty reports whether the map has no entries.
func (m OrdMap[K, V]) IsEmpty() bool {
	return m.index.Len() == 0
}

// Dense reports whether the sequence holds no tombstones.
func (m OrdMap[K, V]) Dense() bool {
	return m.index.Len() == m.next
}

// Sparse reports whether the sequence holds at least one tombstone.
func (m OrdMap[K, V]) Sparse() bool {
	return !m.Dense()
}

// Get returns the value mapped to key, and whether the key is present.
func (m OrdMap[K, V]) Get(key K) (V, bool) {
	e, ok := m.index.Get(key)
	return e.val, ok
}

// GetOrDefault returns the value mapped to key, or def for an absent key.
func (m OrdMap[K, V]) GetOrDefault(key K, def V) V {
	if e, ok := m.index.Get(key); ok {
		return e.val
	}
	return def
}

// Has reports whether key is present.
func (m OrdMap[K, V]) Has(key K) bool {
	return m.index.Has(key)
}

// Put returns a new map with key mapped to val.
//
// An existing key keeps its position: the entry is overwritten in place and
// iteration order is unchanged. A new key is appended after all current keys.
func (m OrdMap[K, V]) Put(key K, val V) OrdMap[K, V] {
	if e, ok := m.index.Get(key); ok {
		seq, err := m.seq.Set(e.pos, slot[K, V]{key: key, val: val, live: true})
		assert(err == nil, "put: index position missing from sequence")
		return OrdMap[K, V]{
			index: m.index.Set(key, indexEntry[V]{pos: e.pos, val: val}),
			seq:   seq,
			next:  m.next,
		}
	}
	return OrdMap[K, V]{
		index: m.index.Set(key, indexEntry[V]{pos: m.next, val: val}),
		seq:   m.seq.Append(slot[K, V]{key: key, val: val, live: true}),
		next:  m.next + 1,
	}
}

// PutNew returns a new map with key mapped to val only if key is absent;
// otherwise it returns the receiver unchanged.
func (m OrdMap[K, V]) PutNew(key K, val V) OrdMap[K, V] {
	if m.index.Has(key) {
		return m
	}
	return m.Put(key, val)
}

// Replace returns a new map with the value of an existing key replaced.
// Replacing an absent key returns the receiver unchanged.
func (m OrdMap[K, V]) Replace(key K, val V) OrdMap[K, V] {
	if !m.index.Has(key) {
		return m
	}
	return m.Put(key, val)
}

// ReplaceOrFail is like Replace but fails with a KeyError for an absent key.
func (m OrdMap[K, V]) ReplaceOrFail(key K, val V) (OrdMap[K, V], error) {
	if !m.index.Has(key) {
		return m, keyError(m, key)
	}
	return m.Put(key, val), nil
}

// Update applies fn to the value of an existing key, or inserts def for an
// absent key.
func (m OrdMap[K, V]) Update(key K, def V, fn func(V) V) OrdMap[K, V] {
	if e, ok := m.index.Get(key); ok {
		return m.Put(key, fn(e.val))
	}
	return m.Put(key, def)
}

// UpdateOrFail applies fn to the value of an existing key and fails with a
// KeyError for an absent key.
func (m OrdMap[K, V]) UpdateOrFail(key K, fn func(V) V) (OrdMap[K, V], error) {
	e, ok := m.index.Get(key)
	if !ok {
		return m, keyError(m, key)
	}
	return m.Put(key, fn(e.val)), nil
}

// Delete returns a new map without key. Deleting an absent key returns the
// receiver unchanged.
//
// Deleting the entry at the tail of the sequence pops the sequence (together
// with any tombstones directly below it), so the sequence always ends in a
// live slot. Deleting any other entry leaves a tombstone and triggers a
// compacting rebuild once positions would outnumber live entries 2:1.
func (m OrdMap[K, V]) Delete(key K) OrdMap[K, V] {
	e, ok := m.index.Get(key)
	if !ok {
		return m
	}
	return m.deleteAt(key, e.pos)
}

func (m OrdMap[K, V]) deleteAt(key K, pos int) OrdMap[K, V] {
	index := m.index.Delete(key)
	if pos == m.next-1 {
		_, seq, err := m.seq.PopLast()
		assert(err == nil, "delete: sequence shorter than next position")
		for !seq.IsEmpty() && !seq.Last(slot[K, V]{}).live {
			_, seq, err = seq.PopLast()
			assert(err == nil, "delete: trailing tombstone vanished")
		}
		return OrdMap[K, V]{index: index, seq: seq, next: seq.Len()}
	}
	seq, err := m.seq.Set(pos, slot[K, V]{})
	assert(err == nil, "delete: index position missing from sequence")
	out := OrdMap[K, V]{index: index, seq: seq, next: m.next}
	if out.next >= 2*out.index.Len() {
		tracer().Debugf("ordmap compaction at %d positions / %d entries", out.next, out.index.Len())
		return out.compact()
	}
	return out
}

// Pop removes key and returns its value, or def for an absent key.
func (m OrdMap[K, V]) Pop(key K, def V) (V, OrdMap[K, V]) {
	if e, ok := m.index.Get(key); ok {
		return e.val, m.deleteAt(key, e.pos)
	}
	return def, m
}

// PopOrFail removes key and returns its value, failing with a KeyError for
// an absent key.
func (m OrdMap[K, V]) PopOrFail(key K) (V, OrdMap[K, V], error) {
	e, ok := m.index.Get(key)
	if !ok {
		var zero V
		return zero, m, keyError(m, key)
	}
	return e.val, m.deleteAt(key, e.pos), nil
}

// PopLazy removes key and returns its value, or the lazily computed default
// for an absent key.
func (m OrdMap[K, V]) PopLazy(key K, def func() V) (V, OrdMap[K, V]) {
	if e, ok := m.index.Get(key); ok {
		return e.val, m.deleteAt(key, e.pos)
	}
	return def(), m
}

// GetAndUpdate looks up key and applies fn to the result. fn receives the
// current value (the zero value for an absent key) and reports whether the
// key is present; it returns the value to surface to the caller, together
// with either the value to install or pop == true to delete the key instead.
// GetAndUpdate returns fn's surfaced value and the updated map.
func (m OrdMap[K, V]) GetAndUpdate(key K, fn func(val V, present bool) (ret V, newVal V, pop bool)) (V, OrdMap[K, V]) {
	e, ok := m.index.Get(key)
	ret, newVal, pop := fn(e.val, ok)
	switch {
	case pop && ok:
		return ret, m.deleteAt(key, e.pos)
	case pop:
		return ret, m
	default:
		return ret, m.Put(key, newVal)
	}
}

// Compact returns a dense map holding the same entries in the same order.
// Compacting a dense map returns the receiver unchanged.
func (m OrdMap[K, V]) Compact() OrdMap[K, V] {
	if m.Dense() {
		return m
	}
	return m.compact()
}

// compact rebuilds a dense map from the live slots in sequence order,
// renumbering positions contiguously from 0.
func (m OrdMap[K, V]) compact() OrdMap[K, V] {
	slots := make([]slot[K, V], 0, m.index.Len())
	index := dict.Empty[K, indexEntry[V]]()
	m.seq.Each(func(_ int, s slot[K, V]) bool {
		if !s.live {
			return true
		}
		index = index.Set(s.key, indexEntry[V]{pos: len(slots), val: s.val})
		slots = append(slots, s)
		return true
	})
	assert(len(slots) == m.index.Len(), "compact: live slot count diverged from index")
	return OrdMap[K, V]{
		index: index,
		seq:   vector.FromSlice(slots),
		next:  len(slots),
	}
}

// String renders the map entries in insertion order.
func (m OrdMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("ordmap[")
	first := true
	m.Each(func(k K, v V) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v:%v", k, v)
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}
