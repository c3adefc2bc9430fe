// Package gattr is a per-graph attribute side-table: named, typed
// values attached to a graph as a whole, to each vertex, and to each
// edge, kept index-aligned with the host graph engine that owns the
// topology.
//
// 🚀 What is gattr?
//
//	A small library that a graph engine consults at its extension
//	points — create, destroy, copy, add, permute, contract — so that
//	attributes survive every structural change:
//	  • Tagged values: Absent / Bool / Number / String / Opaque
//	  • Three scopes: Graph, Vertex, Edge
//	  • A lazy name→position index for O(1) vertex lookup by name
//	  • A combination engine deciding merged values under contraction
//	    (Sum, Product, Min, Max, Random, First, Last, Mean, Median,
//	    Concat, or your own function)
//
// ✨ Why choose gattr?
//
//   - Engine-agnostic – the store never touches topology; it only sees
//     entity counts, permutations and merge groups
//   - No aliasing – every sequence handed out is a copy; copies of a
//     store never share storage with their source
//   - All-or-nothing mutation – a failed combine commits nothing
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	value/   — the tagged Value union and the type classifier
//	combine/ — reducers, combination specs and the combination engine
//	store/   — attribute namespaces, the vertex name index and the
//	           Store consumed by the host engine's callbacks
//
// Quick sketch:
//
//	st := store.New()
//	_ = st.AddEntities(store.ScopeVertex, 3, map[string][]value.Value{
//	    "w": {value.Number(1), value.Number(2), value.Number(3)},
//	})
//	spec := combine.NewSpec(combine.Rule{Reducer: combine.Ignore})
//	spec.Set("w", combine.Rule{Reducer: combine.Sum})
//	_ = st.Combine(store.ScopeVertex, combine.Groups{{0, 1}, {2}}, spec)
//	// "w" is now [3, 3]; everything unnamed was dropped.
//
// See each subpackage's doc.go for the full contract, and store/doc.go
// for the single-owner concurrency model.
package gattr
