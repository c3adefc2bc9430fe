// Package combine decides, during vertex or edge contraction, what the
// merged entity's attribute values should be.
//
// The inputs are the pre-contraction value sequence of one attribute
// and a Groups structure: an ordered list of merge-groups, each an
// ordered list of source positions collapsing into one output entity.
// The Engine produces exactly one value per group, in group order,
// using one of the built-in reducers or a caller-supplied function.
//
// Built-in reducers:
//
//	Sum, Product — numeric fold; Absent contributes the identity
//	               element (0 / 1), Bool coerces to 0/1, anything else
//	               is a hard ErrNotNumeric
//	Min, Max     — by the total order of value.Compare
//	Random       — uniform pick from the group
//	First, Last  — the group's first / last member in group order
//	Mean         — running (Welford) mean of the numeric members
//	Median       — middle of the sorted group; numeric mean of the two
//	               middles for even-sized groups
//	Concat       — separator-less join of the members' Text() forms
//	Func         — a caller-supplied ReduceFunc
//
// Every reducer tolerates an empty group: Sum yields 0, Product 1,
// Concat the empty string, and all others Absent.
//
// Reducer selection is per attribute name through a Spec: an explicit
// name→Rule mapping with a default for unmentioned names. Ignore (the
// zero Rule) is resolved one level up, in the store — an attribute
// whose rule is Ignore is dropped entirely and never reaches the
// Engine.
//
// Failure is all-or-nothing by contract: the store commits none of an
// attribute set's combined values unless every attribute reduced
// without error (see store.Combine).
//
// Dispatch is through a fixed table built at compile time — no name
// lookup, no lazily-initialized global state.
package combine
