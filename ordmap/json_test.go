package ordmap

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestJSONMarshalPreservesOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.ordmap")
	defer teardown()

	m := From(pairs("b", 2, "a", 1, "c", 3))
	data, err := MarshalJSON(m)
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if got := string(data); got != `{"b":2,"a":1,"c":3}` {
		t.Fatalf("MarshalJSON = %s", got)
	}
	// Sparse maps encode their live entries only.
	sparse := m.Delete("a")
	data, err = MarshalJSON(sparse)
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if got := string(data); got != `{"b":2,"c":3}` {
		t.Fatalf("sparse MarshalJSON = %s", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.ordmap")
	defer teardown()

	m := From(pairs("one", 1, "two", 2, "three", 3))
	data, err := MarshalJSON(m)
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	back, err := UnmarshalJSON[int](data)
	if err != nil {
		t.Fatalf("UnmarshalJSON failed: %v", err)
	}
	if !Equal(m, back) {
		t.Fatalf("round trip changed the map: %s vs %s", m, back)
	}
}

func TestJSONUnmarshalDocumentOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.ordmap")
	defer teardown()

	m, err := UnmarshalJSON[int]([]byte(`{"z": 26, "a": 1, "z": 99}`))
	if err != nil {
		t.Fatalf("UnmarshalJSON failed: %v", err)
	}
	// Duplicate members: first position, last value.
	want := pairs("z", 99, "a", 1)
	got := m.Pairs()
	if len(got) != len(want) {
		t.Fatalf("Pairs = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("at %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestJSONUnmarshalRejectsNonObjects(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.ordmap")
	defer teardown()

	for _, input := range []string{`[1,2,3]`, `42`, `"hello"`, `{"a":`} {
		if _, err := UnmarshalJSON[int]([]byte(input)); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("input %s: want ErrInvalidArgument, got %v", input, err)
		}
	}
}

func TestMap2DotSmoke(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.ordmap")
	defer teardown()

	m := From(pairs("a", 1, "b", 2, "x", 9)).Delete("b")
	var buf bytes.Buffer
	Map2Dot(m, &buf)
	out := buf.String()
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Fatalf("not a DOT document: %s", out)
	}
	for _, frag := range []string{"a = 1", "color=gray", "rankdir=LR"} {
		if !strings.Contains(out, frag) {
			t.Fatalf("DOT output missing %q:\n%s", frag, out)
		}
	}
}
