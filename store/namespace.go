// File: namespace.go
// Role: One scope's attribute table: name → value sequence, with the
//       shape invariant len(sequence) == entity count for every name.
// Aliasing: Get returns copies; internal mutators are the only code
//           touching backing storage.

package store

import (
	"fmt"
	"sort"

	"github.com/tamralen/gattr/value"
)

// Namespace maps attribute names to value sequences for one scope.
// Name lookup is by exact, case-sensitive string equality; insertion
// order is irrelevant (Names sorts).
//
// Invariant: every sequence has length exactly count. All mutators
// either preserve it or refuse the mutation outright.
type Namespace struct {
	count int
	attrs map[string][]value.Value
}

// NewNamespace returns an empty namespace for count entities.
func NewNamespace(count int) *Namespace {
	return &Namespace{count: count, attrs: make(map[string][]value.Value)}
}

// Len reports the scope's current entity count.
func (ns *Namespace) Len() int { return ns.count }

// Has reports whether name exists in this namespace.
func (ns *Namespace) Has(name string) bool {
	_, ok := ns.attrs[name]

	return ok
}

// Get returns a copy of name's sequence; ok is false for unknown
// names. Mutating the result never affects the namespace.
// Complexity: O(count).
func (ns *Namespace) Get(name string) ([]value.Value, bool) {
	seq, ok := ns.attrs[name]
	if !ok {
		return nil, false
	}

	return value.CloneSeq(seq), true
}

// peek returns the live sequence for internal, read-only use (engine
// input, index builds). Never handed across the package boundary.
func (ns *Namespace) peek(name string) ([]value.Value, bool) {
	seq, ok := ns.attrs[name]

	return seq, ok
}

// Set replaces name's whole sequence. The sequence must match the
// entity count exactly, else ErrSequenceLength and nothing changes.
// The input is copied, not retained.
// Complexity: O(count).
func (ns *Namespace) Set(name string, seq []value.Value) error {
	if len(seq) != ns.count {
		return fmt.Errorf("%w: attr=%q got=%d want=%d", ErrSequenceLength, name, len(seq), ns.count)
	}
	ns.attrs[name] = value.CloneSeq(seq)

	return nil
}

// SetAt writes one position of name's sequence, lazily creating an
// Absent-filled sequence if the name is new. A position outside
// [0, count) yields ErrOutOfRange and nothing changes.
// Complexity: O(1), O(count) on lazy creation.
func (ns *Namespace) SetAt(name string, pos int, v value.Value) error {
	if pos < 0 || pos >= ns.count {
		return fmt.Errorf("%w: attr=%q pos=%d count=%d", ErrOutOfRange, name, pos, ns.count)
	}
	seq, ok := ns.attrs[name]
	if !ok {
		seq = make([]value.Value, ns.count)
		ns.attrs[name] = seq
	}
	seq[pos] = v

	return nil
}

// Delete removes name from the namespace; unknown names are a no-op.
func (ns *Namespace) Delete(name string) { delete(ns.attrs, name) }

// Names returns all attribute names, sorted for deterministic
// iteration. Complexity: O(n log n).
func (ns *Namespace) Names() []string {
	names := make([]string, 0, len(ns.attrs))
	for name := range ns.attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// TypeOf classifies name's sequence; unknown names yield
// ErrNoSuchAttribute. Complexity: O(count).
func (ns *Namespace) TypeOf(name string) (value.Class, error) {
	seq, ok := ns.attrs[name]
	if !ok {
		return 0, fmt.Errorf("%w: attr=%q", ErrNoSuchAttribute, name)
	}

	return value.Classify(seq), nil
}

// clone deep-copies the namespace; the result shares no storage with
// the source. Complexity: O(n·count).
func (ns *Namespace) clone() *Namespace {
	out := NewNamespace(ns.count)
	for name, seq := range ns.attrs {
		out.attrs[name] = value.CloneSeq(seq)
	}

	return out
}

// grow appends n entities. Existing names receive their supplied
// sequence or Absent padding; names present only in newAttrs start as
// an Absent-filled sequence of the old count plus the supplied tail.
// All supplied sequences must have length n (validated before any
// write, so a failure leaves the namespace untouched).
// Complexity: O((attrs+new)·(count+n)).
func (ns *Namespace) grow(n int, newAttrs map[string][]value.Value) error {
	for name, seq := range newAttrs {
		if len(seq) != n {
			return fmt.Errorf("%w: attr=%q got=%d want=%d", ErrSequenceLength, name, len(seq), n)
		}
	}
	for name, seq := range ns.attrs {
		if supplied, ok := newAttrs[name]; ok {
			ns.attrs[name] = append(seq, value.CloneSeq(supplied)...)
		} else {
			ns.attrs[name] = append(seq, make([]value.Value, n)...)
		}
	}
	for name, supplied := range newAttrs {
		if _, ok := ns.attrs[name]; ok {
			continue
		}
		seq := make([]value.Value, ns.count, ns.count+n)
		ns.attrs[name] = append(seq, value.CloneSeq(supplied)...)
	}
	ns.count += n

	return nil
}

// permute rebuilds every sequence so that output position i holds the
// value previously at order[i]. The order need not be a bijection over
// the old range — it defines the entire new sequence, and the new
// entity count is len(order) — but every index must be valid against
// the old count, else ErrOutOfRange and nothing changes.
// Complexity: O(attrs·len(order)).
func (ns *Namespace) permute(order []int) error {
	for i, idx := range order {
		if idx < 0 || idx >= ns.count {
			return fmt.Errorf("%w: order[%d]=%d count=%d", ErrOutOfRange, i, idx, ns.count)
		}
	}
	for name, seq := range ns.attrs {
		next := make([]value.Value, len(order))
		for i, idx := range order {
			next[i] = seq[idx]
		}
		ns.attrs[name] = next
	}
	ns.count = len(order)

	return nil
}

// replace swaps in a brand-new attribute table (the destructive
// rebuild Combine commits). Sequences are adopted, not copied: the
// caller hands over ownership.
func (ns *Namespace) replace(count int, attrs map[string][]value.Value) {
	ns.count = count
	ns.attrs = attrs
}
