package ordmap

import "iter"

// Equal reports whether two maps hold the same entries in the same order.
//
// Two dense maps are compared through their index tables: positions encode
// order and there are no tombstones, so no sequence walk is needed. If either
// map is sparse, the comparison falls back to walking the two filtered
// sequences in order: different delete histories can produce different
// tombstone layouts for identical content, so the raw representation must
// not be compared.
func Equal[K, V comparable](a, b OrdMap[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is like Equal but compares values with eq.
func EqualFunc[K comparable, V any](a, b OrdMap[K, V], eq func(V, V) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Dense() && b.Dense() {
		equal := true
		a.index.Each(func(k K, e indexEntry[V]) bool {
			other, ok := b.index.Get(k)
			if !ok || other.pos != e.pos || !eq(other.val, e.val) {
				equal = false
				return false
			}
			return true
		})
		return equal
	}
	next, stop := iter.Pull2(b.All())
	defer stop()
	equal := true
	a.Each(func(k K, v V) bool {
		bk, bv, ok := next()
		if !ok || bk != k || !eq(bv, v) {
			equal = false
			return false
		}
		return true
	})
	return equal
}
