package btree

import (
	"cmp"
	"iter"
)

// Each walks the entries in ascending key order. Iteration stops early if
// the callback returns false.
func (m Map[K, V]) Each(fn func(key K, val V) bool) {
	if m.root == nil || fn == nil {
		return
	}
	eachNode(m.root, fn)
}

func eachNode[K, V any](n treeNode[K, V], fn func(key K, val V) bool) bool {
	assert(n != nil, "eachNode called with nil node")
	if n.isLeaf() {
		leaf := n.(*leafNode[K, V])
		for i, k := range leaf.keys {
			if !fn(k, leaf.vals[i]) {
				return false
			}
		}
		return true
	}
	inner := n.(*innerNode[K, V])
	for _, child := range inner.children {
		if !eachNode(child, fn) {
			return false
		}
	}
	return true
}

// All returns an iterator over the entries in ascending key order,
// for use with range-over-func.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.Each(yield)
	}
}

// Keys returns an iterator over the keys in ascending order.
func (m Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.Each(func(k K, _ V) bool {
			return yield(k)
		})
	}
}

// Collect creates a sorted map from a key/value iterator. Later entries
// for a duplicate key overwrite earlier ones.
func Collect[K cmp.Ordered, V any](seq iter.Seq2[K, V]) Map[K, V] {
	m := New[K, V]()
	for k, v := range seq {
		m = m.Set(k, v)
	}
	return m
}
