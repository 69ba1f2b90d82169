/*
Package vector implements an immutable persistent vector, designed for
use-cases similar to Go slices.

An immutable persistent vector has copy-on-write behaviour: Each “modification”
of the vector (appending, replacement or popping) creates a copy, leaving the
original unmodified. Under the hood, copy-on-write retains most of the memory
held by the original, and creates a new incarnation of parts of the structure
only. Thus, most of the structure/memory is shared between original and copy,
transparently to clients.

Immutable vectors are inherently concurrency-safe.

# Structure

The vector is a bit-partitioned trie with a fanout of 32 plus a small tail
buffer holding the most recent appends. Point access costs O(log₃₂ n), which
is effectively constant for realistic sizes; appending, replacing the last
slots and popping the last slot run in O(1) amortized, because they operate
on the tail buffer most of the time.

	Operation     |   Vector        |  Slice
	--------------+-----------------+--------
	Index         |   O(log32 n)    |   O(1)
	Append        |   O(1) amort.   |   O(1) amort., destructive
	Replace       |   O(log32 n)    |   O(1), destructive
	Pop last      |   O(1) amort.   |   O(1), destructive
	Iterate       |   O(n)          |   O(n)

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.vector'.
func tracer() tracing.Trace {
	return tracing.Select("fp.vector")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
