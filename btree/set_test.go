package btree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSetBasics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.btree")
	defer teardown()

	s := SetOf("pear", "apple", "fig", "apple")
	if s.Len() != 3 {
		t.Fatalf("len = %d", s.Len())
	}
	if !s.Has("fig") || s.Has("quince") {
		t.Fatalf("membership broken")
	}
	var keys []string
	for k := range s.All() {
		keys = append(keys, k)
	}
	want := []string{"apple", "fig", "pear"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
	if min, _ := s.Min(); min != "apple" {
		t.Fatalf("Min = %s", min)
	}
	if max, _ := s.Max(); max != "pear" {
		t.Fatalf("Max = %s", max)
	}
	if err := s.Check(); err != nil {
		t.Fatalf("invariants: %v", err)
	}
}

func TestSetRemoveIsPersistent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.btree")
	defer teardown()

	s := SetOf(1, 2, 3)
	s2 := s.Remove(2)
	if s2.Len() != 2 || s2.Has(2) {
		t.Fatalf("remove failed")
	}
	if !s.Has(2) {
		t.Fatalf("remove modified the input set")
	}
	if got := s2.Remove(99); got.Len() != 2 {
		t.Fatalf("removing an absent element changed the set")
	}
}

func TestSetCustomOrdering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.btree")
	defer teardown()

	s := NewSetFunc[int](func(a, b int) int { return b - a })
	for _, k := range []int{5, 1, 3} {
		s = s.Add(k)
	}
	var keys []int
	s.Each(func(k int) bool {
		keys = append(keys, k)
		return true
	})
	want := []int{5, 3, 1}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
}
