package dict

import (
	"hash/maphash"
	"iter"
	"math/bits"
)

// Dict is an immutable persistent hash map from K to V.
//
// A dictionary created by
//
//	Dict[K, V]{}
//
// is a valid object and behaves like an empty map. All mutating operations
// return a new dictionary; the receiver is never modified.
type Dict[K comparable, V any] struct {
	root trieNode[K, V] // nil for the empty dictionary
	size int
}

const (
	nbits  = 5
	fanout = 1 << nbits // 32
	hmask  = fanout - 1
)

// seed is the process-wide hash seed. Dictionaries are in-memory values, so
// hashes never need to be stable across processes.
var seed = maphash.MakeSeed()

func hashOf[K comparable](key K) uint64 {
	return maphash.Comparable(seed, key)
}

func chunk(hash uint64, shift uint) uint {
	return uint(hash>>shift) & hmask
}

type entry[K comparable, V any] struct {
	key K
	val V
}

type trieNode[K comparable, V any] interface {
	isLeaf() bool
}

// leafNode holds the entries for one full hash value. More than one entry
// occurs only on a full 64-bit hash collision.
type leafNode[K comparable, V any] struct {
	hash    uint64
	entries []entry[K, V]
}

// innerNode routes by 5-bit hash chunks. The bitmap marks populated branch
// indices; slots stores the populated children densely in index order.
type innerNode[K comparable, V any] struct {
	bitmap uint32
	slots  []trieNode[K, V]
}

func (l *leafNode[K, V]) isLeaf() bool  { return true }
func (n *innerNode[K, V]) isLeaf() bool { return false }

// Empty returns an empty dictionary. The zero value is equivalent.
func Empty[K comparable, V any]() Dict[K, V] {
	return Dict[K, V]{}
}

// FromMap constructs a dictionary holding all pairs of a Go map.
func FromMap[K comparable, V any](m map[K]V) Dict[K, V] {
	d := Dict[K, V]{}
	for k, v := range m {
		d = d.Set(k, v)
	}
	return d
}

// Len returns the number of entries in the dictionary.
func (d Dict[K, V]) Len() int {
	return d.size
}

// IsEmpty reports whether the dictionary has no entries.
func (d Dict[K, V]) IsEmpty() bool {
	return d.size == 0
}

// Get returns the value mapped to key, and whether the key is present.
func (d Dict[K, V]) Get(key K) (V, bool) {
	var zero V
	if d.root == nil {
		return zero, false
	}
	hash := hashOf(key)
	n := d.root
	for shift := uint(0); ; shift += nbits {
		if n.isLeaf() {
			leaf := n.(*leafNode[K, V])
			if leaf.hash != hash {
				return zero, false
			}
			for _, e := range leaf.entries {
				if e.key == key {
					return e.val, true
				}
			}
			return zero, false
		}
		inner := n.(*innerNode[K, V])
		bit := uint32(1) << chunk(hash, shift)
		if inner.bitmap&bit == 0 {
			return zero, false
		}
		n = inner.slots[bits.OnesCount32(inner.bitmap&(bit-1))]
	}
}

// Has reports whether key is present.
func (d Dict[K, V]) Has(key K) bool {
	_, ok := d.Get(key)
	return ok
}

// Set returns a new dictionary with key mapped to val, replacing any
// previous mapping.
func (d Dict[K, V]) Set(key K, val V) Dict[K, V] {
	root, added := setNode(d.root, 0, hashOf(key), key, val)
	size := d.size
	if added {
		size++
	}
	return Dict[K, V]{root: root, size: size}
}

func setNode[K comparable, V any](n trieNode[K, V], shift uint, hash uint64, key K, val V) (trieNode[K, V], bool) {
	if n == nil {
		return &leafNode[K, V]{hash: hash, entries: []entry[K, V]{{key, val}}}, true
	}
	if n.isLeaf() {
		leaf := n.(*leafNode[K, V])
		if leaf.hash == hash {
			for i, e := range leaf.entries {
				if e.key == key {
					entries := make([]entry[K, V], len(leaf.entries))
					copy(entries, leaf.entries)
					entries[i].val = val
					return &leafNode[K, V]{hash: hash, entries: entries}, false
				}
			}
			// Full hash collision: extend the bucket.
			entries := make([]entry[K, V], len(leaf.entries)+1)
			copy(entries, leaf.entries)
			entries[len(leaf.entries)] = entry[K, V]{key, val}
			return &leafNode[K, V]{hash: hash, entries: entries}, true
		}
		fresh := &leafNode[K, V]{hash: hash, entries: []entry[K, V]{{key, val}}}
		return splitLeaves(leaf, fresh, shift), true
	}
	inner := n.(*innerNode[K, V])
	bit := uint32(1) << chunk(hash, shift)
	pos := bits.OnesCount32(inner.bitmap & (bit - 1))
	if inner.bitmap&bit == 0 {
		slots := make([]trieNode[K, V], len(inner.slots)+1)
		copy(slots, inner.slots[:pos])
		slots[pos] = &leafNode[K, V]{hash: hash, entries: []entry[K, V]{{key, val}}}
		copy(slots[pos+1:], inner.slots[pos:])
		return &innerNode[K, V]{bitmap: inner.bitmap | bit, slots: slots}, true
	}
	child, added := setNode(inner.slots[pos], shift+nbits, hash, key, val)
	slots := make([]trieNode[K, V], len(inner.slots))
	copy(slots, inner.slots)
	slots[pos] = child
	return &innerNode[K, V]{bitmap: inner.bitmap, slots: slots}, added
}

// splitLeaves builds the minimal inner-node chain separating two leaves with
// distinct hashes.
func splitLeaves[K comparable, V any](a, b *leafNode[K, V], shift uint) trieNode[K, V] {
	assert(shift < 64, "splitLeaves ran out of hash bits for distinct hashes")
	ai := chunk(a.hash, shift)
	bi := chunk(b.hash, shift)
	if ai == bi {
		child := splitLeaves(a, b, shift+nbits)
		return &innerNode[K, V]{
			bitmap: uint32(1) << ai,
			slots:  []trieNode[K, V]{child},
		}
	}
	inner := &innerNode[K, V]{bitmap: uint32(1)<<ai | uint32(1)<<bi}
	if ai < bi {
		inner.slots = []trieNode[K, V]{a, b}
	} else {
		inner.slots = []trieNode[K, V]{b, a}
	}
	return inner
}

// Delete returns a new dictionary without key. Deleting an absent key
// returns the receiver unchanged.
func (d Dict[K, V]) Delete(key K) Dict[K, V] {
	if d.root == nil {
		return d
	}
	root, removed := delNode[K, V](d.root, 0, hashOf(key), key)
	if !removed {
		return d
	}
	return Dict[K, V]{root: root, size: d.size - 1}
}

func delNode[K comparable, V any](n trieNode[K, V], shift uint, hash uint64, key K) (trieNode[K, V], bool) {
	if n.isLeaf() {
		leaf := n.(*leafNode[K, V])
		if leaf.hash != hash {
			return n, false
		}
		for i, e := range leaf.entries {
			if e.key == key {
				if len(leaf.entries) == 1 {
					return nil, true
				}
				entries := make([]entry[K, V], 0, len(leaf.entries)-1)
				entries = append(entries, leaf.entries[:i]...)
				entries = append(entries, leaf.entries[i+1:]...)
				return &leafNode[K, V]{hash: hash, entries: entries}, true
			}
		}
		return n, false
	}
	inner := n.(*innerNode[K, V])
	bit := uint32(1) << chunk(hash, shift)
	if inner.bitmap&bit == 0 {
		return n, false
	}
	pos := bits.OnesCount32(inner.bitmap & (bit - 1))
	child, removed := delNode[K, V](inner.slots[pos], shift+nbits, hash, key)
	if !removed {
		return n, false
	}
	if child == nil {
		if len(inner.slots) == 1 {
			return nil, true
		}
		slots := make([]trieNode[K, V], 0, len(inner.slots)-1)
		slots = append(slots, inner.slots[:pos]...)
		slots = append(slots, inner.slots[pos+1:]...)
		if len(slots) == 1 && slots[0].isLeaf() {
			// Canonical form: a single-leaf spine collapses to the leaf.
			return slots[0], true
		}
		return &innerNode[K, V]{bitmap: inner.bitmap &^ bit, slots: slots}, true
	}
	slots := make([]trieNode[K, V], len(inner.slots))
	copy(slots, inner.slots)
	slots[pos] = child
	if len(slots) == 1 && child.isLeaf() {
		return child, true
	}
	return &innerNode[K, V]{bitmap: inner.bitmap, slots: slots}, true
}

// Each visits all entries. Iteration order is unspecified. Iteration stops
// early if the callback returns false.
func (d Dict[K, V]) Each(fn func(key K, val V) bool) {
	if d.root == nil || fn == nil {
		return
	}
	eachNode(d.root, fn)
}

func eachNode[K comparable, V any](n trieNode[K, V], fn func(K, V) bool) bool {
	if n.isLeaf() {
		leaf := n.(*leafNode[K, V])
		for _, e := range leaf.entries {
			if !fn(e.key, e.val) {
				return false
			}
		}
		return true
	}
	inner := n.(*innerNode[K, V])
	for _, child := range inner.slots {
		if !eachNode(child, fn) {
			return false
		}
	}
	return true
}

// All returns an iterator over all key/value pairs in unspecified order.
func (d Dict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		d.Each(yield)
	}
}

// Keys returns an iterator over all keys in unspecified order.
func (d Dict[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		d.Each(func(k K, _ V) bool {
			return yield(k)
		})
	}
}
