/*
Package ordmap implements an immutable persistent map that preserves
insertion order.

An ordered map behaves like a hash map for lookup but iterates its entries in
the order keys were first inserted. Re-inserting an existing key replaces its
value without moving the key; deleting and re-inserting a key moves it to the
end.

# Structure

The map keeps two synchronized views of the same logical data:

  - an index: a persistent hash dictionary from key to (position, value),
    serving all point lookups in effectively constant time, and
  - a sequence: a persistent vector of slots in insertion order, serving all
    ordered enumeration.

Deleting a key other than the most recently inserted one leaves a tombstone
in the sequence. Tombstones make deletes cheap but cost memory and slow down
ordered access, so the map rebuilds itself into a dense form whenever
tombstones would outnumber live entries (a 2× ratio bound, amortizing the
rebuild cost over the deletes that caused it). A map without tombstones is
called dense, otherwise sparse; the distinction is observable through Dense
and Sparse but never changes the logical content.

Like all containers in this module, an ordered map is a value: every
operation returns a new map and leaves the receiver untouched, sharing
structure with it. Any version may be read concurrently without
coordination.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ordmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.ordmap'.
func tracer() tracing.Trace {
	return tracing.Select("fp.ordmap")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
