package btree

// rebalanceChild repairs occupancy for the child at slot after a delete.
//
// parent must be a private clone and the child at slot a freshly copied
// node; siblings are cloned here before they are touched. childHeight
// selects leaf vs internal sibling operations.
func (m Map[K, V]) rebalanceChild(parent *innerNode[K, V], slot int, childHeight int) bool {
	assert(parent != nil, "rebalanceChild called with nil parent")
	assert(slot >= 0 && slot < len(parent.children), "rebalanceChild slot out of range")
	assert(childHeight > 0, "rebalanceChild childHeight must be positive")
	if childHeight == 1 {
		return m.rebalanceLeafChild(parent, slot)
	}
	return m.rebalanceInnerChild(parent, slot)
}

// applyRebalancePolicy centralizes sibling operation order after delete:
// borrow-left, borrow-right, merge-left, merge-right.
func (m Map[K, V]) applyRebalancePolicy(
	parent *innerNode[K, V], slot int,
	borrowLeft func() bool,
	borrowRight func() bool,
	mergeLeft func() bool,
	mergeRight func() bool,
) bool {
	hasLeft := slot > 0
	hasRight := slot+1 < len(parent.children)
	if hasLeft && borrowLeft() {
		return true
	}
	if hasRight && borrowRight() {
		return true
	}
	if hasLeft && mergeLeft() {
		return true
	}
	if hasRight && mergeRight() {
		return true
	}
	return false
}

func (m Map[K, V]) rebalanceLeafChild(parent *innerNode[K, V], slot int) bool {
	child, ok := parent.children[slot].(*leafNode[K, V])
	assert(ok, "rebalanceLeafChild expected leaf child")
	if len(child.keys) >= base {
		return true
	}
	return m.applyRebalancePolicy(
		parent, slot,
		func() bool {
			left, lok := parent.children[slot-1].(*leafNode[K, V])
			assert(lok, "rebalanceLeafChild expected leaf left sibling")
			if len(left.keys) <= base {
				return false
			}
			leftClone := left.clone()
			parent.children[slot-1] = leftClone
			last := len(leftClone.keys) - 1
			k, v := leftClone.keys[last], leftClone.vals[last]
			leftClone.removeEntryAt(last)
			child.insertEntryAt(0, k, v)
			parent.refreshKey(slot - 1)
			return true
		},
		func() bool {
			right, rok := parent.children[slot+1].(*leafNode[K, V])
			assert(rok, "rebalanceLeafChild expected leaf right sibling")
			if len(right.keys) <= base {
				return false
			}
			rightClone := right.clone()
			parent.children[slot+1] = rightClone
			k, v := rightClone.keys[0], rightClone.vals[0]
			rightClone.removeEntryAt(0)
			child.insertEntryAt(len(child.keys), k, v)
			parent.refreshKey(slot)
			return true
		},
		func() bool {
			left, lok := parent.children[slot-1].(*leafNode[K, V])
			assert(lok, "rebalanceLeafChild expected leaf left sibling for merge")
			merged := &leafNode[K, V]{
				keys: append(append([]K(nil), left.keys...), child.keys...),
				vals: append(append([]V(nil), left.vals...), child.vals...),
			}
			parent.children[slot-1] = merged
			parent.refreshKey(slot - 1)
			parent.removeChildAt(slot)
			return true
		},
		func() bool {
			right, rok := parent.children[slot+1].(*leafNode[K, V])
			assert(rok, "rebalanceLeafChild expected leaf right sibling for merge")
			merged := &leafNode[K, V]{
				keys: append(append([]K(nil), child.keys...), right.keys...),
				vals: append(append([]V(nil), child.vals...), right.vals...),
			}
			parent.children[slot] = merged
			parent.refreshKey(slot)
			parent.removeChildAt(slot + 1)
			return true
		},
	)
}

// rebalanceInnerChild applies borrow/merge to an underfull internal child.
// Child pointers move between siblings together with their routing keys.
func (m Map[K, V]) rebalanceInnerChild(parent *innerNode[K, V], slot int) bool {
	child, ok := parent.children[slot].(*innerNode[K, V])
	assert(ok, "rebalanceInnerChild expected internal child")
	if len(child.children) >= base {
		return true
	}
	return m.applyRebalancePolicy(
		parent, slot,
		func() bool {
			left, lok := parent.children[slot-1].(*innerNode[K, V])
			assert(lok, "rebalanceInnerChild expected internal left sibling")
			if len(left.children) <= base {
				return false
			}
			leftClone := left.clone()
			parent.children[slot-1] = leftClone
			borrowed := leftClone.children[len(leftClone.children)-1]
			leftClone.removeChildAt(len(leftClone.children) - 1)
			child.insertChildAt(0, borrowed)
			parent.refreshKey(slot - 1)
			return true
		},
		func() bool {
			right, rok := parent.children[slot+1].(*innerNode[K, V])
			assert(rok, "rebalanceInnerChild expected internal right sibling")
			if len(right.children) <= base {
				return false
			}
			rightClone := right.clone()
			parent.children[slot+1] = rightClone
			borrowed := rightClone.children[0]
			rightClone.removeChildAt(0)
			child.insertChildAt(len(child.children), borrowed)
			parent.refreshKey(slot)
			return true
		},
		func() bool {
			left, lok := parent.children[slot-1].(*innerNode[K, V])
			assert(lok, "rebalanceInnerChild expected internal left sibling for merge")
			mergedChildren := make([]treeNode[K, V], 0, len(left.children)+len(child.children))
			mergedChildren = append(mergedChildren, left.children...)
			mergedChildren = append(mergedChildren, child.children...)
			parent.children[slot-1] = makeInner(mergedChildren...)
			parent.refreshKey(slot - 1)
			parent.removeChildAt(slot)
			return true
		},
		func() bool {
			right, rok := parent.children[slot+1].(*innerNode[K, V])
			assert(rok, "rebalanceInnerChild expected internal right sibling for merge")
			mergedChildren := make([]treeNode[K, V], 0, len(child.children)+len(right.children))
			mergedChildren = append(mergedChildren, child.children...)
			mergedChildren = append(mergedChildren, right.children...)
			parent.children[slot] = makeInner(mergedChildren...)
			parent.refreshKey(slot)
			parent.removeChildAt(slot + 1)
			return true
		},
	)
}
