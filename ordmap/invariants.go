package ordmap

import "fmt"

// check validates the synchronization invariants between the two views.
//
// This checker is intentionally strict and is used by tests after every
// mutation scenario.
func (m OrdMap[K, V]) check() error {
	if err := m.seq.Check(); err != nil {
		return fmt.Errorf("ordmap: backing sequence invalid: %w", err)
	}
	if m.next != m.seq.Len() {
		return fmt.Errorf("ordmap: next position %d != sequence length %d", m.next, m.seq.Len())
	}
	live := 0
	lastLive := false
	var mismatch error
	m.seq.Each(func(pos int, s slot[K, V]) bool {
		lastLive = s.live
		if !s.live {
			return true
		}
		live++
		e, ok := m.index.Get(s.key)
		if !ok {
			mismatch = fmt.Errorf("ordmap: live key %v at %d missing from index", s.key, pos)
			return false
		}
		if e.pos != pos {
			mismatch = fmt.Errorf("ordmap: key %v indexed at %d but stored at %d", s.key, e.pos, pos)
			return false
		}
		return true
	})
	if mismatch != nil {
		return mismatch
	}
	if live != m.index.Len() {
		return fmt.Errorf("ordmap: %d live slots vs %d index entries", live, m.index.Len())
	}
	if m.next > 0 && !lastLive {
		return fmt.Errorf("ordmap: sequence ends in a tombstone")
	}
	if m.Sparse() && m.next > 2*m.index.Len() {
		return fmt.Errorf("ordmap: sparse ratio exceeded: %d positions / %d entries", m.next, m.index.Len())
	}
	return nil
}
