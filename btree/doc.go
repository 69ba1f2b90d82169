/*
Package btree implements a persistent, key-ordered B+ tree.

The tree backs the sorted map and set types of this module. All entries
live in leaf nodes; inner nodes route lookups through the maximum key of
each child subtree. Mutating operations copy the root-to-leaf path they
touch and share every untouched node with the input tree, so old versions
remain valid and cheap to keep around.

Node occupancy follows the usual B-tree discipline: non-root nodes hold
between base and 2*base entries, inserts split overflowing nodes and
promote a sibling, deletes repair underfull nodes by borrowing from or
merging with an adjacent sibling.

# Status

Concurrency-safe by construction: values of type Map and Set are immutable
and may be shared freely between goroutines.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package btree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.btree'.
func tracer() tracing.Trace {
	return tracing.Select("fp.btree")
}

// assert panics with msg if condition does not hold. We use this for
// invariant checking during development, not for error signalling.
func assert(condition bool, msg string) {
	if !condition {
		tracer().Errorf("assertion failed: " + msg)
		panic("btree: " + msg)
	}
}
