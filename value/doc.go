// Package value defines the tagged Value union carried by every
// attribute slot, plus the sequence classifier and the total order
// used by order-sensitive reducers.
//
// A Value is one of:
//
//   - Absent  — the default for unset slots (the zero Value)
//   - Bool    — true / false
//   - Number  — IEEE-754 double
//   - String  — UTF-8 text
//   - Opaque  — a host-owned payload the store never inspects
//
// The host scripting layer that produces raw values has no static
// attribute schema; type *inference* therefore lives at this boundary
// (Classify) and never inside storage — storage is always "sequence of
// Value", independent of host typing.
//
// Classification of a sequence proceeds Boolean → Numeric → String →
// Object:
//
//   - Boolean iff every element is Absent or a Bool
//   - else Numeric iff every element is Absent, a Number, or a Bool
//     (a Bool converts losslessly to 0/1)
//   - else String iff every element is Absent or a String
//   - else Object (heterogeneous or host-opaque)
//
// An empty sequence classifies as Numeric by convention, matching the
// single-value graph-scope degenerate case.
//
// Complexity: every function in this package is O(n) in the sequence
// length or O(1); nothing allocates beyond its result.
package value
