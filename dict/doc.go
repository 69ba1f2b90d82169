/*
Package dict implements an immutable persistent hash map.

The dictionary is a hash array mapped trie (HAMT): a 32-way trie over the
bits of a key hash, with bitmap-compressed inner nodes. Point operations cost
O(log₃₂ n), which is effectively constant. Each “modification” returns a new
dictionary sharing almost all memory with the original, so every version may
be read concurrently without coordination.

Keys may be any comparable Go type; hashing goes through hash/maphash with a
process-wide random seed. Keys whose full hash collides are kept in a small
collision bucket and resolved by key equality.

Iteration order is unspecified (it follows hash order). Clients needing a
deterministic order should reach for package ordmap or package btree instead.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package dict

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.dict'.
func tracer() tracing.Trace {
	return tracing.Select("fp.dict")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
