package vector

import "iter"

// Each visits all items front-to-back, together with their indices.
//
// Iteration stops early if the callback returns false.
func (v Vector[T]) Each(fn func(index int, item T) bool) {
	if v.count == 0 || fn == nil {
		return
	}
	pos := 0
	if v.root != nil {
		if !v.eachNode(v.root, fn, &pos) {
			return
		}
	}
	for _, item := range v.tail {
		if !fn(pos, item) {
			return
		}
		pos++
	}
}

func (v Vector[T]) eachNode(n treeNode[T], fn func(int, T) bool, pos *int) bool {
	assert(n != nil, "eachNode called with nil node")
	if n.isLeaf() {
		leaf := n.(*leafNode[T])
		for _, item := range leaf.items {
			if !fn(*pos, item) {
				return false
			}
			(*pos)++
		}
		return true
	}
	inner := n.(*innerNode[T])
	for _, child := range inner.children {
		if child == nil {
			return true
		}
		if !v.eachNode(child, fn, pos) {
			return false
		}
	}
	return true
}

// EachReverse visits all items back-to-front, together with their indices.
//
// Iteration stops early if the callback returns false.
func (v Vector[T]) EachReverse(fn func(index int, item T) bool) {
	if v.count == 0 || fn == nil {
		return
	}
	pos := v.count - 1
	for i := len(v.tail) - 1; i >= 0; i-- {
		if !fn(pos, v.tail[i]) {
			return
		}
		pos--
	}
	if v.root != nil {
		v.eachNodeReverse(v.root, fn, &pos)
	}
}

func (v Vector[T]) eachNodeReverse(n treeNode[T], fn func(int, T) bool, pos *int) bool {
	assert(n != nil, "eachNodeReverse called with nil node")
	if n.isLeaf() {
		leaf := n.(*leafNode[T])
		for i := len(leaf.items) - 1; i >= 0; i-- {
			if !fn(*pos, leaf.items[i]) {
				return false
			}
			(*pos)--
		}
		return true
	}
	inner := n.(*innerNode[T])
	for i := fanout - 1; i >= 0; i-- {
		if inner.children[i] == nil {
			continue
		}
		if !v.eachNodeReverse(inner.children[i], fn, pos) {
			return false
		}
	}
	return true
}

// All returns an iterator over index/item pairs in logical order.
func (v Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		v.Each(yield)
	}
}

// Backward returns an iterator over index/item pairs in reverse order.
func (v Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		v.EachReverse(yield)
	}
}

// Foldl folds all items front-to-back into an accumulator.
func Foldl[T, A any](v Vector[T], zero A, fn func(acc A, item T) A) A {
	acc := zero
	v.Each(func(_ int, item T) bool {
		acc = fn(acc, item)
		return true
	})
	return acc
}

// Foldr folds all items back-to-front into an accumulator.
func Foldr[T, A any](v Vector[T], zero A, fn func(acc A, item T) A) A {
	acc := zero
	v.EachReverse(func(_ int, item T) bool {
		acc = fn(acc, item)
		return true
	})
	return acc
}
