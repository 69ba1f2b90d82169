package ordmap

import "iter"

// From builds an ordered map from a list of pairs.
//
// Duplicate keys resolve to “first position, last value”: the key keeps the
// position of its first occurrence, while a later duplicate overwrites the
// value.
func From[K comparable, V any](pairs []Pair[K, V]) OrdMap[K, V] {
	return Empty[K, V]().mergePairs(func(yield func(K, V) bool) {
		for _, p := range pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	})
}

// Collect builds an ordered map from a key/value iterator, with the same
// duplicate-key semantics as From.
func Collect[K comparable, V any](seq iter.Seq2[K, V]) OrdMap[K, V] {
	return Empty[K, V]().mergePairs(seq)
}

// Merge returns a map holding all entries of a and b. Keys present in both
// maps keep a's position and take b's value; keys only in b are appended in
// b's order.
func Merge[K comparable, V any](a, b OrdMap[K, V]) OrdMap[K, V] {
	if b.IsEmpty() {
		return a
	}
	if a.IsEmpty() {
		return b
	}
	return a.mergePairs(b.All())
}

// MergePairs returns a map holding the receiver's entries updated and
// extended by the given key/value sequence, with Merge's position semantics.
func (m OrdMap[K, V]) MergePairs(seq iter.Seq2[K, V]) OrdMap[K, V] {
	return m.mergePairs(seq)
}

// sequencePatch records a late value overwrite for an already-positioned key.
type sequencePatch[K comparable, V any] struct {
	pos int
	key K
	val V
}

// mergePairs processes the batch in one pass: unknown keys are optimistically
// accumulated for a single bulk append, known keys (pre-existing or seen
// earlier in the same batch) are recorded as patches against their fixed
// position. The patch pass after the append installs final values without a
// per-key lookup into the freshly built tail.
func (m OrdMap[K, V]) mergePairs(pairs iter.Seq2[K, V]) OrdMap[K, V] {
	index := m.index
	next := m.next
	var fresh []slot[K, V]
	var patches []sequencePatch[K, V]
	for k, v := range pairs {
		if e, ok := index.Get(k); ok {
			index = index.Set(k, indexEntry[V]{pos: e.pos, val: v})
			patches = append(patches, sequencePatch[K, V]{pos: e.pos, key: k, val: v})
			continue
		}
		index = index.Set(k, indexEntry[V]{pos: next, val: v})
		fresh = append(fresh, slot[K, V]{key: k, val: v, live: true})
		next++
	}
	seq := m.seq.Concat(fresh...)
	for _, p := range patches {
		patched, err := seq.Set(p.pos, slot[K, V]{key: p.key, val: p.val, live: true})
		assert(err == nil, "merge: patch position missing from sequence")
		seq = patched
	}
	return OrdMap[K, V]{index: index, seq: seq, next: next}
}

// Take builds a fresh dense map containing only the requested keys that are
// present in m, in the order of the given key list. Duplicate requested keys
// count once, at their first occurrence.
func (m OrdMap[K, V]) Take(keys []K) OrdMap[K, V] {
	return Empty[K, V]().mergePairs(func(yield func(K, V) bool) {
		for _, k := range keys {
			if e, ok := m.index.Get(k); ok {
				if !yield(k, e.val) {
					return
				}
			}
		}
	})
}

// Drop returns a map without the given keys. Each removal follows the
// delete/compaction discipline; absent keys are ignored.
func (m OrdMap[K, V]) Drop(keys []K) OrdMap[K, V] {
	out := m
	for _, k := range keys {
		out = out.Delete(k)
	}
	return out
}
