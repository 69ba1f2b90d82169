package btree

import "errors"

// ErrInvariantViolated signals that a structural check found the tree in an
// inconsistent state. This indicates a bug in the tree algorithms, not an
// input error.
var ErrInvariantViolated = errors.New("btree: structural invariant violated")
