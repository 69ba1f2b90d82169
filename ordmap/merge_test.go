package ordmap

import (
	"maps"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMergePrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.ordmap")
	defer teardown()

	a := From(pairs("a", 1, "b", 2))
	b := From(pairs("a", 3, "d", 4))
	m := Merge(a, b)
	want := pairs("a", 3, "b", 2, "d", 4)
	if diff := cmp.Diff(want, m.Pairs()); diff != "" {
		t.Fatalf("Merge (-want +got):\n%s", diff)
	}
	if err := m.check(); err != nil {
		t.Fatalf("invariants: %v", err)
	}
	// Keys of b take precedence for values, a for positions.
	if v, _ := m.Get("a"); v != 3 {
		t.Fatalf("merged a=%d, want b's value 3", v)
	}
	// Neither input is modified.
	if v, _ := a.Get("a"); v != 1 {
		t.Fatalf("left input modified, a=%d", v)
	}
}

func TestMergeFastPaths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.ordmap")
	defer teardown()

	a := From(pairs("a", 1))
	var empty OrdMap[string, int]
	if got := Merge(a, empty); !Equal(a, got) {
		t.Fatalf("merging with an empty right side must return the left map")
	}
	if got := Merge(empty, a); !Equal(a, got) {
		t.Fatalf("merging into an empty left side must return the right map")
	}
}

func TestMergeDuplicatesWithinBatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.ordmap")
	defer teardown()

	// A key first seen within the batch keeps its first-seen position even
	// when a later duplicate overwrites its value.
	m := From(pairs("a", 1, "b", 2, "a", 3))
	want := pairs("a", 3, "b", 2)
	if diff := cmp.Diff(want, m.Pairs()); diff != "" {
		t.Fatalf("duplicate build (-want +got):\n%s", diff)
	}
	if !m.Dense() {
		t.Fatalf("batch build must produce a dense map")
	}
	if err := m.check(); err != nil {
		t.Fatalf("invariants: %v", err)
	}
}

func TestMergeIntoSparseMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.ordmap")
	defer teardown()

	a := From(pairs("a", 1, "b", 2, "x", 9, "c", 3)).Delete("x")
	b := From(pairs("b", 20, "z", 26))
	m := Merge(a, b)
	want := pairs("a", 1, "b", 20, "c", 3, "z", 26)
	if diff := cmp.Diff(want, m.Pairs()); diff != "" {
		t.Fatalf("sparse merge (-want +got):\n%s", diff)
	}
	if err := m.check(); err != nil {
		t.Fatalf("invariants: %v", err)
	}
}

func TestMergeLookupProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.ordmap")
	defer teardown()

	a := From(pairs("a", 1, "b", 2, "c", 3))
	b := From(pairs("b", 20, "d", 40))
	m := Merge(a, b)
	for _, k := range []string{"a", "b", "c", "d", "zzz"} {
		want, ok := b.Get(k)
		if !ok {
			want, ok = a.Get(k)
		}
		got, gotOK := m.Get(k)
		if gotOK != ok || got != want {
			t.Fatalf("key %s: merged=(%d,%v), want (%d,%v)", k, got, gotOK, want, ok)
		}
	}
}

func TestCollect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.ordmap")
	defer teardown()

	src := map[string]int{"a": 1, "b": 2, "c": 3}
	m := Collect(maps.All(src))
	if m.Len() != 3 {
		t.Fatalf("Collect len = %d", m.Len())
	}
	for k, want := range src {
		if v, ok := m.Get(k); !ok || v != want {
			t.Fatalf("key %s: got (%d,%v)", k, v, ok)
		}
	}
}

func TestTake(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.ordmap")
	defer teardown()

	m := From(pairs("a", 1, "b", 2, "c", 3, "d", 4))
	taken := m.Take([]string{"c", "a", "zzz", "c"})
	// Caller order, not map order; absent keys skipped; duplicates once.
	want := pairs("c", 3, "a", 1)
	if diff := cmp.Diff(want, taken.Pairs()); diff != "" {
		t.Fatalf("Take (-want +got):\n%s", diff)
	}
	if !taken.Dense() {
		t.Fatalf("Take must build a dense map")
	}
	// Taking from a sparse map is independent of its tombstone layout.
	sparse := m.Delete("b")
	taken2 := sparse.Take([]string{"d", "a"})
	if diff := cmp.Diff(pairs("d", 4, "a", 1), taken2.Pairs()); diff != "" {
		t.Fatalf("sparse Take (-want +got):\n%s", diff)
	}
}

func TestDrop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.ordmap")
	defer teardown()

	m := From(pairs("a", 1, "b", 2, "c", 3, "d", 4))
	dropped := m.Drop([]string{"b", "zzz", "d"})
	want := pairs("a", 1, "c", 3)
	if diff := cmp.Diff(want, dropped.Pairs()); diff != "" {
		t.Fatalf("Drop (-want +got):\n%s", diff)
	}
	if err := dropped.check(); err != nil {
		t.Fatalf("invariants: %v", err)
	}
}
