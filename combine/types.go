// File: types.go
// Role: Reducer enumeration, merge-group structure, per-attribute
//       rules and the Spec resolving names to rules.
// Policy: a Spec is built once per combine operation and is read-only
//         afterwards; Resolve never fails (unmentioned names fall back
//         to the default, and the zero default is Ignore).

package combine

import (
	"errors"
	"strconv"

	"github.com/tamralen/gattr/value"
)

// Sentinel errors for combination.
var (
	// ErrUnknownReducer indicates a Rule carried an out-of-range or
	// engine-unreachable reducer (Ignore must be resolved by the caller).
	ErrUnknownReducer = errors.New("combine: unknown or non-reducible reducer")

	// ErrNilFunc indicates a Func rule without a ReduceFunc attached.
	ErrNilFunc = errors.New("combine: Func rule requires a non-nil Fn")

	// ErrNotNumeric indicates a String or Opaque member fed to a
	// numeric reducer (Sum, Product, Mean, or an even-sized Median).
	ErrNotNumeric = errors.New("combine: value is not numeric")

	// ErrNotComparable indicates Min/Max/Median met two values with no
	// mutual order.
	ErrNotComparable = errors.New("combine: values are not comparable")

	// ErrFuncFailed wraps any error returned by a caller-supplied
	// ReduceFunc.
	ErrFuncFailed = errors.New("combine: supplied reduce function failed")

	// ErrPosition indicates a merge-group references a source position
	// outside the value sequence.
	ErrPosition = errors.New("combine: merge-group position out of range")
)

// Reducer selects one built-in combination strategy.
//
// Ignore is the zero Reducer: attributes resolving to it are dropped
// by the store before the Engine is ever invoked.
type Reducer uint8

const (
	// Ignore drops the attribute from the combined result.
	Ignore Reducer = iota
	// Sum is the numeric sum of the group (empty group → 0).
	Sum
	// Product is the numeric product of the group (empty group → 1).
	Product
	// Min is the smallest group member under value.Compare.
	Min
	// Max is the largest group member under value.Compare.
	Max
	// Random picks one member uniformly.
	Random
	// First is the member at the group's first source position.
	First
	// Last is the member at the group's last source position.
	Last
	// Mean is the running numeric mean of the group.
	Mean
	// Median is the middle of the sorted group (numeric mean of the
	// two middles when the group has even size).
	Median
	// Concat joins the members' Text() forms with no separator.
	Concat
	// Func applies the Rule's caller-supplied Fn.
	Func
)

// String returns the reducer name for diagnostics.
func (r Reducer) String() string {
	switch r {
	case Ignore:
		return "Ignore"
	case Sum:
		return "Sum"
	case Product:
		return "Product"
	case Min:
		return "Min"
	case Max:
		return "Max"
	case Random:
		return "Random"
	case First:
		return "First"
	case Last:
		return "Last"
	case Mean:
		return "Mean"
	case Median:
		return "Median"
	case Concat:
		return "Concat"
	case Func:
		return "Func"
	default:
		return "Reducer(" + strconv.Itoa(int(r)) + ")"
	}
}

// Groups is the merge-group structure of one contraction: group order
// defines output order, and each group lists the source positions
// (pre-contraction indices) collapsing into that output entity, in
// merge order. Groups are input-only and never persisted.
type Groups [][]int

// ReduceFunc is a caller-supplied reduction: called once per group
// with the ordered raw values of that group's members, it returns the
// single combined value. Any error aborts the whole combine operation.
type ReduceFunc func(members []value.Value) (value.Value, error)

// Rule pairs a Reducer with its function payload (Func rules only).
// The zero Rule is Ignore.
type Rule struct {
	Reducer Reducer
	Fn      ReduceFunc
}

// validate rejects rules the Engine cannot execute.
func (r Rule) validate() error {
	switch {
	case r.Reducer == Ignore || r.Reducer > Func:
		return ErrUnknownReducer
	case r.Reducer == Func && r.Fn == nil:
		return ErrNilFunc
	default:
		return nil
	}
}

// Spec assigns one Rule per attribute name for a single combine
// operation, with a default for unmentioned names. The zero default is
// Ignore, so a Spec mentioning only "w" drops every other attribute.
type Spec struct {
	def    Rule
	byName map[string]Rule
}

// NewSpec returns a Spec whose unmentioned names resolve to def.
func NewSpec(def Rule) *Spec {
	return &Spec{def: def, byName: make(map[string]Rule)}
}

// Uniform returns a Spec applying a single built-in reducer to every
// attribute name.
func Uniform(r Reducer) *Spec { return NewSpec(Rule{Reducer: r}) }

// Set assigns the rule for one attribute name, replacing any previous
// assignment. It returns the Spec for chaining.
func (s *Spec) Set(name string, r Rule) *Spec {
	s.byName[name] = r

	return s
}

// Resolve returns the rule governing name: the explicit assignment if
// any, otherwise the default. A nil Spec resolves everything to Ignore.
func (s *Spec) Resolve(name string) Rule {
	if s == nil {
		return Rule{}
	}
	if r, ok := s.byName[name]; ok {
		return r
	}

	return s.def
}
