package btree

import "cmp"

// Map is a persistent sorted map from K to V.
//
// The zero value is not usable; create maps with New or NewFunc. Mutating
// operations return a new map and leave the receiver untouched, sharing
// all unmodified subtrees between versions.
type Map[K, V any] struct {
	compare func(a, b K) int
	root    treeNode[K, V]
	height  int // 0 means empty map
	size    int
}

// New creates an empty sorted map for naturally ordered keys.
func New[K cmp.Ordered, V any]() Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc creates an empty sorted map with a caller-supplied comparison.
// compare must return a negative number if a sorts before b, zero if the
// keys are equal, and a positive number otherwise.
func NewFunc[K, V any](compare func(a, b K) int) Map[K, V] {
	assert(compare != nil, "map comparison function must not be nil")
	return Map[K, V]{compare: compare}
}

// FromMap creates a sorted map holding the entries of a Go map.
func FromMap[K cmp.Ordered, V any](src map[K]V) Map[K, V] {
	m := New[K, V]()
	for k, v := range src {
		m = m.Set(k, v)
	}
	return m
}

// IsEmpty reports whether the map has no entries.
func (m Map[K, V]) IsEmpty() bool {
	return m.root == nil
}

// Len returns the number of entries in the map.
func (m Map[K, V]) Len() int {
	return m.size
}

// Get returns the value stored for key, with ok reporting whether the key
// is present.
func (m Map[K, V]) Get(key K) (_ V, ok bool) {
	var none V
	if m.root == nil {
		return none, false
	}
	assert(m.compare != nil, "map not created with New or NewFunc")
	n := m.root
	for !n.isLeaf() {
		inner := n.(*innerNode[K, V])
		slot, within := inner.route(m.compare, key)
		if !within { // key greater than the subtree maximum
			return none, false
		}
		n = inner.children[slot]
	}
	leaf := n.(*leafNode[K, V])
	if pos, found := leaf.find(m.compare, key); found {
		return leaf.vals[pos], true
	}
	return none, false
}

// Has reports whether key is present in the map.
func (m Map[K, V]) Has(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Set returns a map with key bound to val, inserting or replacing as
// needed. The receiver is unmodified.
func (m Map[K, V]) Set(key K, val V) Map[K, V] {
	assert(m.compare != nil, "map not created with New or NewFunc")
	out := m
	if m.root == nil {
		out.root = &leafNode[K, V]{keys: []K{key}, vals: []V{val}}
		out.height = 1
		out.size = 1
		return out
	}
	updated, promoted, added := m.setRecursive(m.root, m.height, key, val)
	if promoted != nil {
		out.root = makeInner[K, V](updated, promoted)
		out.height++
	} else {
		out.root = updated
	}
	if added {
		out.size++
	}
	return out
}

// setRecursive inserts or replaces one entry in subtree n and propagates
// split results. The returned promoted sibling is non-nil only when the
// updated subtree split.
func (m Map[K, V]) setRecursive(n treeNode[K, V], height int, key K, val V) (updated, promoted treeNode[K, V], added bool) {
	assert(n != nil, "setRecursive called with nil node")
	assert(height > 0, "setRecursive called with invalid height")
	if height == 1 {
		leaf, ok := n.(*leafNode[K, V])
		assert(ok, "setRecursive expected leaf at height 1")
		pos, found := leaf.find(m.compare, key)
		cloned := leaf.clone()
		if found {
			cloned.vals[pos] = val
			return cloned, nil, false
		}
		cloned.insertEntryAt(pos, key, val)
		if len(cloned.keys) <= maxEntries {
			return cloned, nil, true
		}
		mid := len(cloned.keys) / 2
		left := &leafNode[K, V]{keys: cloned.keys[:mid:mid], vals: cloned.vals[:mid:mid]}
		right := &leafNode[K, V]{keys: cloned.keys[mid:], vals: cloned.vals[mid:]}
		return left, right, true
	}

	inner, ok := n.(*innerNode[K, V])
	assert(ok, "setRecursive expected internal node")
	slot, within := inner.route(m.compare, key)
	if !within {
		// Key beyond the current maximum: extend the rightmost subtree.
		slot = len(inner.children) - 1
	}
	updatedChild, promotedChild, added := m.setRecursive(inner.children[slot], height-1, key, val)
	cloned := inner.clone()
	cloned.children[slot] = updatedChild
	cloned.refreshKey(slot)
	if promotedChild != nil {
		cloned.insertChildAt(slot+1, promotedChild)
	}
	if len(cloned.children) <= maxEntries {
		return cloned, nil, added
	}
	mid := len(cloned.children) / 2
	left := makeInner(cloned.children[:mid:mid]...)
	right := makeInner(cloned.children[mid:]...)
	return left, right, added
}

// Delete returns a map without an entry for key. Deleting an absent key
// returns the receiver unchanged.
func (m Map[K, V]) Delete(key K) Map[K, V] {
	if m.root == nil {
		return m
	}
	assert(m.compare != nil, "map not created with New or NewFunc")
	updated, removed, _ := m.deleteRecursive(m.root, m.height, key, true)
	if !removed {
		return m
	}
	out := m
	out.root = updated
	out.size--
	out.normalizeRoot()
	return out
}

// deleteRecursive removes the entry for key from subtree n.
//
// Returns the updated subtree root (nil if the subtree became empty),
// whether an entry was removed, and whether the caller must repair
// occupancy at the parent level.
func (m Map[K, V]) deleteRecursive(n treeNode[K, V], height int, key K, isRoot bool) (updated treeNode[K, V], removed, needsRebalance bool) {
	assert(n != nil, "deleteRecursive called with nil node")
	assert(height > 0, "deleteRecursive called with invalid height")
	if height == 1 {
		leaf, ok := n.(*leafNode[K, V])
		assert(ok, "deleteRecursive expected leaf at height 1")
		pos, found := leaf.find(m.compare, key)
		if !found {
			return n, false, false
		}
		cloned := leaf.clone()
		cloned.removeEntryAt(pos)
		if len(cloned.keys) == 0 {
			return nil, true, false
		}
		return cloned, true, !isRoot && len(cloned.keys) < base
	}

	inner, ok := n.(*innerNode[K, V])
	assert(ok, "deleteRecursive expected internal node")
	slot, within := inner.route(m.compare, key)
	if !within {
		return n, false, false
	}
	updatedChild, removed, childRebalance := m.deleteRecursive(inner.children[slot], height-1, key, false)
	if !removed {
		return n, false, false
	}
	cloned := inner.clone()
	if updatedChild == nil {
		cloned.removeChildAt(slot)
	} else {
		cloned.children[slot] = updatedChild
		cloned.refreshKey(slot)
		if childRebalance {
			if !(isRoot && len(cloned.children) == 1) {
				resolved := m.rebalanceChild(cloned, slot, height-1)
				childRebalance = !resolved
			} else {
				childRebalance = false
			}
		}
	}
	if len(cloned.children) == 0 {
		return nil, true, false
	}
	selfUnderflow := !isRoot && len(cloned.children) < base
	return cloned, true, childRebalance || selfUnderflow
}

// normalizeRoot canonicalizes the root after structural edits:
// nil root means empty map, a leaf root has height 1, and an internal
// root with a single child collapses repeatedly.
func (m *Map[K, V]) normalizeRoot() {
	if m.root == nil {
		m.height = 0
		return
	}
	for {
		inner, ok := m.root.(*innerNode[K, V])
		if !ok {
			m.height = 1
			return
		}
		if len(inner.children) != 1 {
			return
		}
		m.root = inner.children[0]
		m.height--
	}
}

// Min returns the smallest key and its value.
func (m Map[K, V]) Min() (_ K, _ V, ok bool) {
	var noKey K
	var noVal V
	if m.root == nil {
		return noKey, noVal, false
	}
	n := m.root
	for !n.isLeaf() {
		n = n.(*innerNode[K, V]).children[0]
	}
	leaf := n.(*leafNode[K, V])
	return leaf.keys[0], leaf.vals[0], true
}

// Max returns the largest key and its value.
func (m Map[K, V]) Max() (_ K, _ V, ok bool) {
	var noKey K
	var noVal V
	if m.root == nil {
		return noKey, noVal, false
	}
	n := m.root
	for !n.isLeaf() {
		inner := n.(*innerNode[K, V])
		n = inner.children[len(inner.children)-1]
	}
	leaf := n.(*leafNode[K, V])
	last := len(leaf.keys) - 1
	return leaf.keys[last], leaf.vals[last], true
}
