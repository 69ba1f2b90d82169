package btree

const (
	// Node occupancy bounds for a TREE_BASE=6 shape. Non-root nodes carry
	// between base and maxEntries entries (children, for inner nodes).
	base       = 6
	maxEntries = 2 * base
)

type treeNode[K, V any] interface {
	isLeaf() bool
}

// leafNode stores entries as parallel key/value slices, sorted by key.
type leafNode[K, V any] struct {
	keys []K
	vals []V
}

func (l *leafNode[K, V]) isLeaf() bool { return true }

// innerNode routes lookups by the maximum key of each child subtree:
// keys[i] is the largest key stored under children[i].
type innerNode[K, V any] struct {
	keys     []K
	children []treeNode[K, V]
}

func (n *innerNode[K, V]) isLeaf() bool { return false }

// maxKey returns the largest key stored under n.
func maxKey[K, V any](n treeNode[K, V]) K {
	if n.isLeaf() {
		leaf := n.(*leafNode[K, V])
		assert(len(leaf.keys) > 0, "maxKey called on empty leaf")
		return leaf.keys[len(leaf.keys)-1]
	}
	inner := n.(*innerNode[K, V])
	assert(len(inner.keys) > 0, "maxKey called on empty inner node")
	return inner.keys[len(inner.keys)-1]
}

// makeInner builds a routing node over children, deriving the key table.
func makeInner[K, V any](children ...treeNode[K, V]) *innerNode[K, V] {
	assert(len(children) > 0, "makeInner called without children")
	keys := make([]K, len(children))
	for i, child := range children {
		keys[i] = maxKey[K, V](child)
	}
	return &innerNode[K, V]{keys: keys, children: children}
}

// find returns the position of key in the leaf, or the position where it
// would be inserted to keep the keys sorted.
func (l *leafNode[K, V]) find(compare func(K, K) int, key K) (pos int, found bool) {
	for i, k := range l.keys {
		c := compare(key, k)
		if c == 0 {
			return i, true
		}
		if c < 0 {
			return i, false
		}
	}
	return len(l.keys), false
}

// route returns the child slot responsible for key, i.e. the first child
// whose maximum key is >= key. ok is false if key is greater than every
// key in the subtree.
func (n *innerNode[K, V]) route(compare func(K, K) int, key K) (slot int, ok bool) {
	for i, k := range n.keys {
		if compare(key, k) <= 0 {
			return i, true
		}
	}
	return 0, false
}

func (l *leafNode[K, V]) clone() *leafNode[K, V] {
	return &leafNode[K, V]{
		keys: append([]K(nil), l.keys...),
		vals: append([]V(nil), l.vals...),
	}
}

func (n *innerNode[K, V]) clone() *innerNode[K, V] {
	return &innerNode[K, V]{
		keys:     append([]K(nil), n.keys...),
		children: append([]treeNode[K, V](nil), n.children...),
	}
}

// insertEntryAt inserts a key/value pair at position i.
//
// The receiver must be a private clone; this mutates in place.
func (l *leafNode[K, V]) insertEntryAt(i int, key K, val V) {
	assert(i >= 0 && i <= len(l.keys), "leaf insert position out of range")
	l.keys = append(l.keys[:i], append([]K{key}, l.keys[i:]...)...)
	l.vals = append(l.vals[:i], append([]V{val}, l.vals[i:]...)...)
}

// removeEntryAt removes the entry at position i. Mutates in place.
func (l *leafNode[K, V]) removeEntryAt(i int) {
	assert(i >= 0 && i < len(l.keys), "leaf remove position out of range")
	l.keys = append(l.keys[:i], l.keys[i+1:]...)
	l.vals = append(l.vals[:i], l.vals[i+1:]...)
}

// insertChildAt inserts a child at slot i, extending the key table.
// Mutates in place.
func (n *innerNode[K, V]) insertChildAt(i int, child treeNode[K, V]) {
	assert(i >= 0 && i <= len(n.children), "child insert slot out of range")
	n.children = append(n.children[:i], append([]treeNode[K, V]{child}, n.children[i:]...)...)
	n.keys = append(n.keys[:i], append([]K{maxKey[K, V](child)}, n.keys[i:]...)...)
}

// removeChildAt removes the child at slot i. Mutates in place.
func (n *innerNode[K, V]) removeChildAt(i int) {
	assert(i >= 0 && i < len(n.children), "child remove slot out of range")
	n.children = append(n.children[:i], n.children[i+1:]...)
	n.keys = append(n.keys[:i], n.keys[i+1:]...)
}

// refreshKey re-derives the routing key for the child at slot i.
func (n *innerNode[K, V]) refreshKey(i int) {
	n.keys[i] = maxKey[K, V](n.children[i])
}
