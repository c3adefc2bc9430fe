// Package store keeps the attributes of one host graph: a Graph scope
// of single values plus Vertex and Edge scopes of value sequences kept
// index-aligned with the host engine's entity order.
//
// The host graph engine owns one Store per graph instance and calls
// into it at its extension points; the mapping is:
//
//	graph created          → New(...)
//	graph destroyed        → (*Store).Destroy
//	graph copied           → (*Store).Copy
//	vertices/edges added   → (*Store).AddEntities
//	vertices/edges permuted→ (*Store).Permute
//	vertices/edges merged  → (*Store).Combine
//	attribute queries      → Has, Type, Names, NamesAndTypes, Values,
//	                         GraphValue
//	raw-value writes       → Set, SetAt, SetGraphValue, Delete
//
// Shape invariant: in the Vertex and Edge scopes, every attribute's
// sequence has length exactly equal to the scope's current entity
// count. Every mutating operation restores this invariant before
// returning — also on the error path, where the scope is left in its
// pre-call state (all-or-nothing; see Combine in particular).
//
// Aliasing: sequences returned by queries are copies, and a Copy of a
// Store never shares storage with its source. Mutating what you were
// handed never changes the store; write back through Set/SetAt.
//
// Concurrency model: unlike a self-locking structure, a Store is
// single-threaded by contract — the host engine calls it synchronously
// and non-reentrantly, and exactly one graph owns each Store. There is
// no internal locking; callers sharing a Store across goroutines must
// serialize access externally. No operation blocks, suspends, or
// performs I/O.
//
// The vertex name index: lookups of a vertex position by its "name"
// attribute value go through a lazily built index, invalidated by any
// vertex-scope mutation and rebuilt on the next VertexByName call.
// Duplicate names resolve to the highest position (last-write-wins).
package store
