package btree

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEmptyMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.btree")
	defer teardown()

	m := New[int, string]()
	if !m.IsEmpty() || m.Len() != 0 {
		t.Fatalf("new map not empty: len=%d", m.Len())
	}
	if _, ok := m.Get(7); ok {
		t.Fatalf("empty map returned a value")
	}
	if _, _, ok := m.Min(); ok {
		t.Fatalf("empty map has a minimum")
	}
	if err := m.Check(); err != nil {
		t.Fatalf("invariants: %v", err)
	}
	if got := m.Delete(7); got.Len() != 0 {
		t.Fatalf("delete on empty map changed it")
	}
}

func TestMapSetAndGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.btree")
	defer teardown()

	m := New[string, int]()
	m = m.Set("b", 2).Set("a", 1).Set("c", 3)
	if m.Len() != 3 {
		t.Fatalf("len = %d", m.Len())
	}
	for k, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		if v, ok := m.Get(k); !ok || v != want {
			t.Fatalf("key %s: got (%d,%v)", k, v, ok)
		}
	}
	if _, ok := m.Get("zzz"); ok {
		t.Fatalf("lookup beyond maximum key succeeded")
	}
	// Replacing a key does not change the size.
	m2 := m.Set("b", 20)
	if m2.Len() != 3 {
		t.Fatalf("replace changed size to %d", m2.Len())
	}
	if v, _ := m2.Get("b"); v != 20 {
		t.Fatalf("replace did not take: b=%d", v)
	}
	if v, _ := m.Get("b"); v != 2 {
		t.Fatalf("replace modified the input map: b=%d", v)
	}
}

func TestMapDeepInsert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.btree")
	defer teardown()

	const n = 3000
	m := New[int, int]()
	for i := range n {
		m = m.Set(i*7%n, i*7%n) // non-monotone insertion order
	}
	if m.Len() != n {
		t.Fatalf("len = %d, want %d", m.Len(), n)
	}
	if m.height < 3 {
		t.Fatalf("expected a tree of height >= 3, got %d", m.height)
	}
	if err := m.Check(); err != nil {
		t.Fatalf("invariants: %v", err)
	}
	for _, k := range []int{0, 1, n / 2, n - 1} {
		if v, ok := m.Get(k); !ok || v != k {
			t.Fatalf("key %d: got (%d,%v)", k, v, ok)
		}
	}
	minK, _, _ := m.Min()
	maxK, _, _ := m.Max()
	if minK != 0 || maxK != n-1 {
		t.Fatalf("Min/Max = %d/%d", minK, maxK)
	}
}

func TestMapOrderedIteration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.btree")
	defer teardown()

	m := FromMap(map[string]int{"pear": 2, "apple": 1, "quince": 3, "fig": 4})
	var keys []string
	for k := range m.All() {
		keys = append(keys, k)
	}
	want := []string{"apple", "fig", "pear", "quince"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
	// Early stop.
	count := 0
	m.Each(func(string, int) bool {
		count++
		return count < 2
	})
	if count != 2 {
		t.Fatalf("early stop visited %d entries", count)
	}
}

func TestMapCustomOrdering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.btree")
	defer teardown()

	// Descending order through a caller comparison.
	m := NewFunc[int, string](func(a, b int) int { return b - a })
	for _, k := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		m = m.Set(k, fmt.Sprint(k))
	}
	if m.Len() != 7 {
		t.Fatalf("len = %d", m.Len())
	}
	prev := -1
	m.Each(func(k int, _ string) bool {
		if prev >= 0 && k >= prev {
			t.Fatalf("not descending: %d after %d", k, prev)
		}
		prev = k
		return true
	})
	if k, _, _ := m.Min(); k != 9 {
		t.Fatalf("Min under reversed ordering = %d, want 9", k)
	}
	if err := m.Check(); err != nil {
		t.Fatalf("invariants: %v", err)
	}
}

func TestMapDeleteWithRebalancing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.btree")
	defer teardown()

	const n = 1500
	m := New[int, int]()
	for i := range n {
		m = m.Set(i, i)
	}
	// Delete in a shuffled order to hit borrow and merge paths on both
	// sides, checking invariants as the tree shrinks through every height.
	rng := rand.New(rand.NewSource(7))
	perm := rng.Perm(n)
	for i, k := range perm {
		m = m.Delete(k)
		if m.Len() != n-i-1 {
			t.Fatalf("after %d deletes: len = %d", i+1, m.Len())
		}
		if i%53 == 0 {
			if err := m.Check(); err != nil {
				t.Fatalf("after deleting %d: %v", k, err)
			}
		}
	}
	if !m.IsEmpty() || m.root != nil || m.height != 0 {
		t.Fatalf("drained map not empty: len=%d height=%d", m.Len(), m.height)
	}
}

func TestMapDeleteAbsentKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.btree")
	defer teardown()

	m := New[int, int]().Set(1, 1).Set(2, 2)
	if got := m.Delete(99); got.Len() != 2 {
		t.Fatalf("deleting an absent key changed the map")
	}
	if got := m.Delete(0); got.Len() != 2 {
		t.Fatalf("deleting a key below the minimum changed the map")
	}
}

func TestMapPersistence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.btree")
	defer teardown()

	const n = 500
	m := New[int, int]()
	for i := range n {
		m = m.Set(i, i)
	}
	shrunk := m
	for i := 0; i < n; i += 2 {
		shrunk = shrunk.Delete(i)
	}
	if shrunk.Len() != n/2 {
		t.Fatalf("shrunk len = %d", shrunk.Len())
	}
	// The original version is untouched by deletes on its descendant.
	if m.Len() != n {
		t.Fatalf("original len = %d after deletes on a copy", m.Len())
	}
	for i := range n {
		if v, ok := m.Get(i); !ok || v != i {
			t.Fatalf("original lost key %d", i)
		}
	}
	if err := m.Check(); err != nil {
		t.Fatalf("original invariants: %v", err)
	}
	if err := shrunk.Check(); err != nil {
		t.Fatalf("shrunk invariants: %v", err)
	}
}

// TestMapRandomizedAgainstModel drives a map with random operations and
// compares every outcome against a plain Go map.
func TestMapRandomizedAgainstModel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.btree")
	defer teardown()

	rng := rand.New(rand.NewSource(42))
	m := New[int, int]()
	model := make(map[int]int)
	const ops = 10000
	const keyspace = 700
	for i := range ops {
		k := rng.Intn(keyspace)
		switch rng.Intn(3) {
		case 0, 1:
			v := rng.Int()
			m = m.Set(k, v)
			model[k] = v
		case 2:
			m = m.Delete(k)
			delete(model, k)
		}
		if m.Len() != len(model) {
			t.Fatalf("op %d: len %d, model %d", i, m.Len(), len(model))
		}
		if i%97 == 0 {
			if err := m.Check(); err != nil {
				t.Fatalf("op %d: %v", i, err)
			}
		}
	}
	for k, want := range model {
		if v, ok := m.Get(k); !ok || v != want {
			t.Fatalf("key %d: got (%d,%v), want %d", k, v, ok, want)
		}
	}
	var got []int
	for k := range m.Keys() {
		got = append(got, k)
	}
	if !sort.IntsAreSorted(got) {
		t.Fatalf("iteration order not sorted")
	}
	want := make([]int, 0, len(model))
	for k := range model {
		want = append(want, k)
	}
	sort.Ints(want)
	if len(got) != len(want) {
		t.Fatalf("key count %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("key set diverged at %d: %d vs %d", i, got[i], want[i])
		}
	}
}

func TestCollectSorted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.btree")
	defer teardown()

	m := FromMap(map[string]int{"b": 2, "a": 1})
	c := Collect(m.All())
	if c.Len() != 2 {
		t.Fatalf("len = %d", c.Len())
	}
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("a = (%d,%v)", v, ok)
	}
}
