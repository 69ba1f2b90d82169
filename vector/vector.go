package vector

// Vector stores items in a persistent bit-partitioned trie plus a tail buffer.
//
// A vector created by
//
//	Vector[T]{}
//
// is a valid object and behaves like an empty sequence. All mutating
// operations return a new vector; the receiver is never modified.
//
// The tail buffer holds the most recent appends, so that append, replace-last
// and pop-last avoid touching the trie most of the time. The trie proper only
// ever stores full leaves of fanout items.
type Vector[T any] struct {
	count int
	shift uint // level of the root node in bits; meaningful only when root != nil
	root  treeNode[T]
	tail  []T // never mutated in place; reallocated on every change
}

const (
	nbits  = 5
	fanout = 1 << nbits // 32
	mask   = fanout - 1
)

type treeNode[T any] interface {
	isLeaf() bool
}

// leafNode stores a full run of fanout items. Leaves live at level 0.
type leafNode[T any] struct {
	items []T
}

// innerNode routes by index bits at its level. Children are dense from
// slot 0 up to the rightmost populated slot.
type innerNode[T any] struct {
	children [fanout]treeNode[T]
}

func (l *leafNode[T]) isLeaf() bool  { return true }
func (n *innerNode[T]) isLeaf() bool { return false }

// Empty returns an empty vector. The zero value is equivalent.
func Empty[T any]() Vector[T] {
	return Vector[T]{}
}

// FromSlice bulk-constructs a vector holding the items of a slice.
//
// The trie is built bottom-up from full leaves, which is considerably cheaper
// than repeated Append for large inputs. The input slice is copied.
func FromSlice[T any](items []T) Vector[T] {
	n := len(items)
	if n == 0 {
		return Vector[T]{}
	}
	tailLen := (n-1)%fanout + 1
	tailOff := n - tailLen
	tail := make([]T, tailLen)
	copy(tail, items[tailOff:])
	if tailOff == 0 {
		return Vector[T]{count: n, tail: tail}
	}
	leaves := make([]treeNode[T], 0, tailOff/fanout)
	for i := 0; i < tailOff; i += fanout {
		leaf := &leafNode[T]{items: make([]T, fanout)}
		copy(leaf.items, items[i:i+fanout])
		leaves = append(leaves, leaf)
	}
	shift := uint(nbits)
	level := leaves
	for len(level) > fanout {
		next := make([]treeNode[T], 0, (len(level)+fanout-1)/fanout)
		for i := 0; i < len(level); i += fanout {
			end := min(i+fanout, len(level))
			inner := &innerNode[T]{}
			copy(inner.children[:], level[i:end])
			next = append(next, inner)
		}
		level = next
		shift += nbits
	}
	root := &innerNode[T]{}
	copy(root.children[:], level)
	return Vector[T]{count: n, shift: shift, root: root, tail: tail}
}

// Len returns the number of items in the vector.
func (v Vector[T]) Len() int {
	return v.count
}

// IsEmpty reports whether the vector has no items.
func (v Vector[T]) IsEmpty() bool {
	return v.count == 0
}

// tailOffset returns the index of the first item stored in the tail buffer.
func (v Vector[T]) tailOffset() int {
	return v.count - len(v.tail)
}

// level returns the effective root level, normalizing the zero value.
func (v Vector[T]) level() uint {
	if v.shift < nbits {
		return nbits
	}
	return v.shift
}

// At returns the item at index.
func (v Vector[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.count {
		return zero, ErrIndexOutOfBounds
	}
	if i >= v.tailOffset() {
		return v.tail[i-v.tailOffset()], nil
	}
	return v.leafFor(i).items[i&mask], nil
}

// leafFor returns the trie leaf containing index i, which must lie below the
// tail offset.
func (v Vector[T]) leafFor(i int) *leafNode[T] {
	assert(v.root != nil, "leafFor called on tail-only vector")
	assert(i >= 0 && i < v.tailOffset(), "leafFor index outside the trie")
	n := v.root
	for level := v.shift; level > 0; level -= nbits {
		inner, ok := n.(*innerNode[T])
		assert(ok, "leafFor expected inner node above leaf level")
		n = inner.children[(i>>level)&mask]
	}
	leaf, ok := n.(*leafNode[T])
	assert(ok, "leafFor expected leaf at level 0")
	return leaf
}

// Append returns a new vector with item added after all current items.
func (v Vector[T]) Append(item T) Vector[T] {
	if len(v.tail) < fanout {
		newTail := make([]T, len(v.tail)+1)
		copy(newTail, v.tail)
		newTail[len(v.tail)] = item
		return Vector[T]{count: v.count + 1, shift: v.shift, root: v.root, tail: newTail}
	}
	// Tail is full: push it into the trie as a leaf and start a fresh tail.
	tailLeaf := &leafNode[T]{items: v.tail}
	out := Vector[T]{count: v.count + 1, tail: []T{item}}
	shift := v.level()
	if v.root != nil && (v.count>>nbits) > (1<<shift) {
		// Trie is full: grow a new root level.
		newRoot := &innerNode[T]{}
		newRoot.children[0] = v.root
		newRoot.children[1] = newPath[T](shift, tailLeaf)
		out.root = newRoot
		out.shift = shift + nbits
		return out
	}
	out.root = v.pushTail(shift, v.root, tailLeaf)
	out.shift = shift
	return out
}

// Concat returns a new vector with all items appended in order.
func (v Vector[T]) Concat(items ...T) Vector[T] {
	out := v
	for _, item := range items {
		out = out.Append(item)
	}
	return out
}

// pushTail hangs a full tail leaf below parent on the rightmost path.
//
// v.count is the count before the append that triggered the push, so
// v.count-1 addresses the last item of the leaf being pushed.
func (v Vector[T]) pushTail(level uint, parent treeNode[T], tailLeaf *leafNode[T]) treeNode[T] {
	subidx := ((v.count - 1) >> level) & mask
	ret := &innerNode[T]{}
	if parent != nil {
		inner, ok := parent.(*innerNode[T])
		assert(ok, "pushTail expected inner node")
		ret.children = inner.children
	}
	if level == nbits {
		ret.children[subidx] = tailLeaf
		return ret
	}
	if child := ret.children[subidx]; child != nil {
		ret.children[subidx] = v.pushTail(level-nbits, child, tailLeaf)
	} else {
		ret.children[subidx] = newPath[T](level-nbits, tailLeaf)
	}
	return ret
}

// newPath wraps n in a chain of single-child inner nodes down from level.
func newPath[T any](level uint, n treeNode[T]) treeNode[T] {
	if level == 0 {
		return n
	}
	ret := &innerNode[T]{}
	ret.children[0] = newPath[T](level-nbits, n)
	return ret
}

// Set returns a new vector with the item at an already-populated index
// replaced. Indices outside [0, Len()) fail with ErrIndexOutOfBounds.
func (v Vector[T]) Set(i int, item T) (Vector[T], error) {
	if i < 0 || i >= v.count {
		return Vector[T]{}, ErrIndexOutOfBounds
	}
	if i >= v.tailOffset() {
		newTail := make([]T, len(v.tail))
		copy(newTail, v.tail)
		newTail[i-v.tailOffset()] = item
		return Vector[T]{count: v.count, shift: v.shift, root: v.root, tail: newTail}, nil
	}
	newRoot := v.assoc(v.shift, v.root, i, item)
	return Vector[T]{count: v.count, shift: v.shift, root: newRoot, tail: v.tail}, nil
}

// assoc path-copies the spine from level down to the leaf owning index i.
func (v Vector[T]) assoc(level uint, n treeNode[T], i int, item T) treeNode[T] {
	if level == 0 {
		leaf, ok := n.(*leafNode[T])
		assert(ok, "assoc expected leaf at level 0")
		items := make([]T, len(leaf.items))
		copy(items, leaf.items)
		items[i&mask] = item
		return &leafNode[T]{items: items}
	}
	inner, ok := n.(*innerNode[T])
	assert(ok, "assoc expected inner node")
	ret := &innerNode[T]{children: inner.children}
	sub := (i >> level) & mask
	ret.children[sub] = v.assoc(level-nbits, inner.children[sub], i, item)
	return ret
}

// PopLast removes the last item and returns it together with the shrunk
// vector. Popping an empty vector fails with ErrEmpty.
func (v Vector[T]) PopLast() (T, Vector[T], error) {
	var zero T
	if v.count == 0 {
		return zero, v, ErrEmpty
	}
	last := v.tail[len(v.tail)-1]
	if v.count == 1 {
		return last, Vector[T]{}, nil
	}
	if len(v.tail) > 1 {
		newTail := make([]T, len(v.tail)-1)
		copy(newTail, v.tail)
		return last, Vector[T]{count: v.count - 1, shift: v.shift, root: v.root, tail: newTail}, nil
	}
	// Tail is down to one item: hoist the rightmost trie leaf into the tail.
	// Trie leaves are never mutated, so sharing the item slice is safe.
	newTail := v.leafFor(v.count - 2).items
	newRoot := v.popTail(v.shift, v.root)
	newShift := v.shift
	if newRoot == nil {
		newShift = 0
	} else if newShift > nbits {
		if inner, ok := newRoot.(*innerNode[T]); ok && inner.children[1] == nil {
			newRoot = inner.children[0]
			newShift -= nbits
		}
	}
	return last, Vector[T]{count: v.count - 1, shift: newShift, root: newRoot, tail: newTail}, nil
}

// popTail removes the rightmost leaf below n, pruning emptied spine nodes.
//
// Returns nil when the subtree under n becomes empty. v.count is the count
// before the pop, so v.count-2 addresses the last item that remains in the
// trie-plus-old-tail layout.
func (v Vector[T]) popTail(level uint, n treeNode[T]) treeNode[T] {
	subidx := ((v.count - 2) >> level) & mask
	inner, ok := n.(*innerNode[T])
	assert(ok, "popTail expected inner node")
	if level > nbits {
		newChild := v.popTail(level-nbits, inner.children[subidx])
		if newChild == nil && subidx == 0 {
			return nil
		}
		ret := &innerNode[T]{children: inner.children}
		ret.children[subidx] = newChild
		return ret
	}
	if subidx == 0 {
		return nil
	}
	ret := &innerNode[T]{children: inner.children}
	ret.children[subidx] = nil
	return ret
}

// First returns the first item, or def for an empty vector.
func (v Vector[T]) First(def T) T {
	if v.count == 0 {
		return def
	}
	if v.tailOffset() == 0 {
		return v.tail[0]
	}
	return v.leafFor(0).items[0]
}

// Last returns the last item, or def for an empty vector.
func (v Vector[T]) Last(def T) T {
	if v.count == 0 {
		return def
	}
	return v.tail[len(v.tail)-1]
}

// ToSlice collects all items into a fresh slice.
func (v Vector[T]) ToSlice() []T {
	out := make([]T, 0, v.count)
	v.Each(func(_ int, item T) bool {
		out = append(out, item)
		return true
	})
	return out
}

// Find returns the first item satisfying pred, together with its index.
func (v Vector[T]) Find(pred func(T) bool) (item T, index int, ok bool) {
	v.Each(func(i int, it T) bool {
		if pred(it) {
			item, index, ok = it, i, true
			return false
		}
		return true
	})
	return item, index, ok
}
