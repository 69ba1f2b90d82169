package btree

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and is used by tests after every
// mutation scenario.
func (m Map[K, V]) Check() error {
	if m.root == nil {
		if m.height != 0 {
			return fmt.Errorf("%w: empty map must have height 0", ErrInvariantViolated)
		}
		if m.size != 0 {
			return fmt.Errorf("%w: empty map must have size 0", ErrInvariantViolated)
		}
		return nil
	}
	if m.compare == nil {
		return fmt.Errorf("%w: map has no comparison function", ErrInvariantViolated)
	}
	entries, height, err := m.checkNode(m.root, true)
	if err != nil {
		return err
	}
	if height != m.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvariantViolated, height, m.height)
	}
	if entries != m.size {
		return fmt.Errorf("%w: size mismatch (%d entries != size %d)", ErrInvariantViolated, entries, m.size)
	}
	var prev K
	first := true
	ordered := true
	m.Each(func(k K, _ V) bool {
		if !first && m.compare(prev, k) >= 0 {
			ordered = false
			return false
		}
		prev, first = k, false
		return true
	})
	if !ordered {
		return fmt.Errorf("%w: keys not strictly ascending", ErrInvariantViolated)
	}
	return nil
}

func (m Map[K, V]) checkNode(n treeNode[K, V], isRoot bool) (entries int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvariantViolated)
	}
	if n.isLeaf() {
		leaf := n.(*leafNode[K, V])
		if len(leaf.keys) != len(leaf.vals) {
			return 0, 0, fmt.Errorf("%w: leaf key/value slices out of sync", ErrInvariantViolated)
		}
		if len(leaf.keys) == 0 {
			return 0, 0, fmt.Errorf("%w: empty leaf node", ErrInvariantViolated)
		}
		if !isRoot && len(leaf.keys) < base {
			return 0, 0, fmt.Errorf("%w: leaf occupancy %d below %d", ErrInvariantViolated, len(leaf.keys), base)
		}
		if len(leaf.keys) > maxEntries {
			return 0, 0, fmt.Errorf("%w: leaf occupancy %d exceeds %d", ErrInvariantViolated, len(leaf.keys), maxEntries)
		}
		return len(leaf.keys), 1, nil
	}
	inner := n.(*innerNode[K, V])
	if len(inner.children) != len(inner.keys) {
		return 0, 0, fmt.Errorf("%w: routing key table out of sync", ErrInvariantViolated)
	}
	if isRoot {
		if len(inner.children) < 2 {
			return 0, 0, fmt.Errorf("%w: internal root with %d children", ErrInvariantViolated, len(inner.children))
		}
	} else if len(inner.children) < base {
		return 0, 0, fmt.Errorf("%w: internal occupancy %d below %d", ErrInvariantViolated, len(inner.children), base)
	}
	if len(inner.children) > maxEntries {
		return 0, 0, fmt.Errorf("%w: internal occupancy %d exceeds %d", ErrInvariantViolated, len(inner.children), maxEntries)
	}
	var childHeight int
	for i, child := range inner.children {
		cEntries, cHeight, cErr := m.checkNode(child, false)
		if cErr != nil {
			return 0, 0, cErr
		}
		entries += cEntries
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvariantViolated)
		}
		if m.compare(inner.keys[i], maxKey[K, V](child)) != 0 {
			return 0, 0, fmt.Errorf("%w: routing key at slot %d does not match subtree maximum", ErrInvariantViolated, i)
		}
	}
	return entries, childHeight + 1, nil
}
