package store_test

import (
	"errors"
	"testing"

	"github.com/tamralen/gattr/store"
	"github.com/tamralen/gattr/value"
)

// TestNamespace_SetGet covers whole-sequence replacement, copy-on-read
// and the length guard.
func TestNamespace_SetGet(t *testing.T) {
	ns := store.NewNamespace(3)
	seq := []value.Value{value.Number(1), value.Number(2), value.Number(3)}

	if err := ns.Set("w", seq); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	got, ok := ns.Get("w")
	if !ok {
		t.Fatal("Get should find w")
	}
	for i := range seq {
		if !value.Equal(got[i], seq[i]) {
			t.Errorf("element %d differs", i)
		}
	}

	// Copy-on-read: mutating what Get handed out must not leak back.
	got[0] = value.Number(99)
	fresh, _ := ns.Get("w")
	if !value.Equal(fresh[0], value.Number(1)) {
		t.Error("Get must return a copy, not a live view")
	}

	// And the input is copied, not retained.
	seq[1] = value.String("boom")
	fresh, _ = ns.Get("w")
	if !value.Equal(fresh[1], value.Number(2)) {
		t.Error("Set must copy its input")
	}

	if err := ns.Set("w", seq[:2]); !errors.Is(err, store.ErrSequenceLength) {
		t.Errorf("short Set error = %v; want ErrSequenceLength", err)
	}
}

// TestNamespace_SetAt covers lazy creation, positional writes and the
// range guard.
func TestNamespace_SetAt(t *testing.T) {
	ns := store.NewNamespace(3)

	if err := ns.SetAt("color", 1, value.String("red")); err != nil {
		t.Fatalf("SetAt error: %v", err)
	}
	seq, _ := ns.Get("color")
	if !seq[0].IsAbsent() || !seq[2].IsAbsent() {
		t.Error("lazily created sequence should be Absent elsewhere")
	}
	if s, _ := seq[1].AsString(); s != "red" {
		t.Errorf("seq[1] = %v; want red", seq[1])
	}

	for _, pos := range []int{-1, 3} {
		if err := ns.SetAt("color", pos, value.Absent); !errors.Is(err, store.ErrOutOfRange) {
			t.Errorf("SetAt(%d) error = %v; want ErrOutOfRange", pos, err)
		}
	}
}

// TestNamespace_NamesDeleteType covers enumeration order, deletion and
// classification.
func TestNamespace_NamesDeleteType(t *testing.T) {
	ns := store.NewNamespace(2)
	_ = ns.Set("b", []value.Value{value.Bool(true), value.Absent})
	_ = ns.Set("a", []value.Value{value.Number(1), value.Number(2)})
	_ = ns.Set("c", []value.Value{value.String("x"), value.Number(1)})

	names := ns.Names()
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Errorf("Names = %v; want sorted [a b c]", names)
	}

	if c, err := ns.TypeOf("a"); err != nil || c != value.ClassNumeric {
		t.Errorf("TypeOf(a) = (%v, %v); want Numeric", c, err)
	}
	if c, err := ns.TypeOf("b"); err != nil || c != value.ClassBoolean {
		t.Errorf("TypeOf(b) = (%v, %v); want Boolean", c, err)
	}
	if c, err := ns.TypeOf("c"); err != nil || c != value.ClassObject {
		t.Errorf("TypeOf(c) = (%v, %v); want Object", c, err)
	}
	if _, err := ns.TypeOf("nope"); !errors.Is(err, store.ErrNoSuchAttribute) {
		t.Errorf("TypeOf(nope) error = %v; want ErrNoSuchAttribute", err)
	}

	ns.Delete("b")
	if ns.Has("b") {
		t.Error("b should be gone after Delete")
	}
	ns.Delete("b") // second delete is a no-op
}
