// File: name_index.go
// Role: Lazily built secondary index from the vertex "name" attribute
//       value back to the vertex position.
// Lifecycle: marked stale by every vertex-scope mutation (and on
//            request); rebuilt in full on the next lookup. Owned by
//            exactly one Store, never shared.

package store

import "github.com/tamralen/gattr/value"

// nameKey is the hashable projection of an indexable name value.
// Opaque payloads have no equality the store can rely on, so they (and
// Absent) are not indexable.
type nameKey struct {
	kind value.Kind
	b    bool
	n    float64
	s    string
}

// indexKey projects v onto a map key; ok is false for Absent and
// Opaque values.
func indexKey(v value.Value) (nameKey, bool) {
	switch v.Kind() {
	case value.KindBool:
		b, _ := v.AsBool()

		return nameKey{kind: value.KindBool, b: b}, true
	case value.KindNumber:
		n, _ := v.AsNumber()

		return nameKey{kind: value.KindNumber, n: n}, true
	case value.KindString:
		s, _ := v.AsString()

		return nameKey{kind: value.KindString, s: s}, true
	default:
		return nameKey{}, false
	}
}

// nameIndex maps name values to vertex positions. valid==false means
// the next lookup rebuilds.
type nameIndex struct {
	valid bool
	byKey map[nameKey]int
}

// invalidate marks the index stale; the map is dropped immediately so
// a stale index never pins freed sequences.
func (ix *nameIndex) invalidate() {
	ix.valid = false
	ix.byKey = nil
}

// rebuild scans positions 0..len(seq)-1 and overwrites on duplicates,
// so the highest position wins (documented last-write-wins).
func (ix *nameIndex) rebuild(seq []value.Value) {
	ix.byKey = make(map[nameKey]int, len(seq))
	for pos, v := range seq {
		if key, ok := indexKey(v); ok {
			ix.byKey[key] = pos
		}
	}
	ix.valid = true
}

// lookup returns the position for v; ok is false when v is absent from
// the index (or not indexable). The caller must have rebuilt first.
func (ix *nameIndex) lookup(v value.Value) (int, bool) {
	key, ok := indexKey(v)
	if !ok {
		return 0, false
	}
	pos, ok := ix.byKey[key]

	return pos, ok
}
