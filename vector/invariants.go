package vector

import "fmt"

// Check validates structural vector invariants.
//
// This checker is intentionally strict and should be used in tests while the
// implementation is evolving.
func (v Vector[T]) Check() error {
	if v.count == 0 {
		if v.root != nil || len(v.tail) != 0 {
			return fmt.Errorf("vector: empty vector must have nil root and empty tail")
		}
		return nil
	}
	if len(v.tail) == 0 || len(v.tail) > fanout {
		return fmt.Errorf("vector: tail length %d outside [1,%d]", len(v.tail), fanout)
	}
	trieItems := 0
	if v.root != nil {
		if v.shift < nbits || v.shift%nbits != 0 {
			return fmt.Errorf("vector: invalid root level %d", v.shift)
		}
		n, err := v.checkNode(v.root, v.shift)
		if err != nil {
			return err
		}
		trieItems = n
	}
	if trieItems != v.tailOffset() {
		return fmt.Errorf("vector: trie holds %d items, tail offset is %d", trieItems, v.tailOffset())
	}
	if trieItems%fanout != 0 {
		return fmt.Errorf("vector: trie item count %d is not leaf-aligned", trieItems)
	}
	return nil
}

func (v Vector[T]) checkNode(n treeNode[T], level uint) (int, error) {
	if n == nil {
		return 0, fmt.Errorf("vector: nil node at level %d", level)
	}
	if level == 0 {
		leaf, ok := n.(*leafNode[T])
		if !ok {
			return 0, fmt.Errorf("vector: inner node at leaf level")
		}
		if len(leaf.items) != fanout {
			return 0, fmt.Errorf("vector: trie leaf holds %d items, want %d", len(leaf.items), fanout)
		}
		return fanout, nil
	}
	inner, ok := n.(*innerNode[T])
	if !ok {
		return 0, fmt.Errorf("vector: leaf node at level %d", level)
	}
	total := 0
	seenNil := false
	for i, child := range inner.children {
		if child == nil {
			seenNil = true
			continue
		}
		if seenNil {
			return 0, fmt.Errorf("vector: non-dense children at level %d slot %d", level, i)
		}
		items, err := v.checkNode(child, level-nbits)
		if err != nil {
			return 0, err
		}
		total += items
	}
	return total, nil
}
