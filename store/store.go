// File: store.go
// Role: Store lifecycle (New, Destroy, Copy), queries, and raw-value
//       writes. Entity mutations live in mutate.go.
// Determinism: Names/NamesAndTypes return sorted results, like every
//              enumeration in this module.

package store

import (
	"fmt"

	"github.com/tamralen/gattr/combine"
	"github.com/tamralen/gattr/value"
)

// Store owns the three attribute namespaces of one host graph plus the
// vertex name index and the combination engine driven during
// contraction. Exactly one host graph owns each Store; see doc.go for
// the single-owner concurrency contract.
type Store struct {
	scopes [numScopes]*Namespace
	names  nameIndex
	engine *combine.Engine
}

// New creates a Store for a freshly created host graph. The Graph
// scope is seeded from WithGraphAttrs if given; Vertex and Edge scopes
// start empty at entity count 0. Construction is all-or-nothing and
// infallible. Complexity: O(len(graph attrs)).
func New(opts ...Option) *Store {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	st := &Store{engine: combine.NewEngine(combine.WithRand(o.rnd))}
	// The Graph scope is the degenerate single-value case: one entity,
	// every sequence of length one.
	st.scopes[ScopeGraph] = NewNamespace(1)
	st.scopes[ScopeVertex] = NewNamespace(0)
	st.scopes[ScopeEdge] = NewNamespace(0)
	for name, v := range o.graphAttrs {
		st.scopes[ScopeGraph].attrs[name] = []value.Value{v}
	}

	return st
}

// Destroy releases all namespaces and the name index. Idempotent;
// every later operation on the Store fails with ErrDestroyed.
func (st *Store) Destroy() {
	for i := range st.scopes {
		st.scopes[i] = nil
	}
	st.names.invalidate()
	st.engine = nil
}

// destroyed reports whether Destroy has run.
func (st *Store) destroyed() bool { return st.scopes[ScopeGraph] == nil }

// ns resolves a scope to its namespace, guarding destroyed stores and
// undefined scopes.
func (st *Store) ns(scope Scope) (*Namespace, error) {
	if st.destroyed() {
		return nil, ErrDestroyed
	}
	if scope >= numScopes {
		return nil, fmt.Errorf("%w: scope=%s", ErrBadScope, scope)
	}

	return st.scopes[scope], nil
}

// entityNS is ns restricted to the Vertex and Edge scopes (entity
// mutations are undefined for the Graph scope).
func (st *Store) entityNS(scope Scope) (*Namespace, error) {
	if scope == ScopeGraph {
		return nil, fmt.Errorf("%w: scope=%s", ErrBadScope, scope)
	}

	return st.ns(scope)
}

// Copy returns a deep copy covering the requested scopes; un-requested
// scopes start empty (entity count 0, no attributes) so the host can
// repopulate them while copying structure. The name index is not
// copied — the copy rebuilds it lazily on first lookup. The copy never
// aliases the source's storage. Complexity: O(copied values).
func (st *Store) Copy(copyGraph, copyVertex, copyEdge bool) *Store {
	out := New()
	if st.destroyed() {
		return out
	}
	out.engine = st.engine
	if copyGraph {
		out.scopes[ScopeGraph] = st.scopes[ScopeGraph].clone()
	}
	if copyVertex {
		out.scopes[ScopeVertex] = st.scopes[ScopeVertex].clone()
	}
	if copyEdge {
		out.scopes[ScopeEdge] = st.scopes[ScopeEdge].clone()
	}

	return out
}

// Counts reports the current vertex and edge entity counts, for
// diagnostics and host-side admission checks.
func (st *Store) Counts() (vertices, edges int) {
	if st.destroyed() {
		return 0, 0
	}

	return st.scopes[ScopeVertex].Len(), st.scopes[ScopeEdge].Len()
}

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

// Has reports whether name exists in scope. False for destroyed
// stores and undefined scopes (a pure predicate never errors).
func (st *Store) Has(scope Scope, name string) bool {
	ns, err := st.ns(scope)
	if err != nil {
		return false
	}

	return ns.Has(name)
}

// Type classifies name's values in scope; unknown names yield
// ErrNoSuchAttribute. Complexity: O(count).
func (st *Store) Type(scope Scope, name string) (value.Class, error) {
	ns, err := st.ns(scope)
	if err != nil {
		return 0, err
	}
	c, err := ns.TypeOf(name)
	if err != nil {
		return 0, fmt.Errorf("scope=%s: %w", scope, err)
	}

	return c, nil
}

// Names returns scope's attribute names, sorted.
func (st *Store) Names(scope Scope) ([]string, error) {
	ns, err := st.ns(scope)
	if err != nil {
		return nil, err
	}

	return ns.Names(), nil
}

// NamesAndTypes returns scope's attribute names (sorted) with their
// classifications, index-aligned — the host engine's list-attributes
// callback in one call. Complexity: O(attrs·count).
func (st *Store) NamesAndTypes(scope Scope) ([]string, []value.Class, error) {
	ns, err := st.ns(scope)
	if err != nil {
		return nil, nil, err
	}
	names := ns.Names()
	classes := make([]value.Class, len(names))
	for i, name := range names {
		classes[i], _ = ns.TypeOf(name)
	}

	return names, classes, nil
}

// Values returns name's values in scope. A nil selection means all
// positions in order; otherwise values are returned in selection
// order. Unknown names yield ErrNoSuchAttribute, invalid positions
// ErrOutOfRange. The result never aliases the store.
// Complexity: O(len(selection)).
func (st *Store) Values(scope Scope, name string, selection []int) ([]value.Value, error) {
	ns, err := st.ns(scope)
	if err != nil {
		return nil, err
	}
	seq, ok := ns.peek(name)
	if !ok {
		return nil, fmt.Errorf("%w: scope=%s attr=%q", ErrNoSuchAttribute, scope, name)
	}
	if selection == nil {
		return value.CloneSeq(seq), nil
	}
	out := make([]value.Value, len(selection))
	for i, pos := range selection {
		if pos < 0 || pos >= len(seq) {
			return nil, fmt.Errorf("%w: scope=%s attr=%q pos=%d count=%d", ErrOutOfRange, scope, name, pos, len(seq))
		}
		out[i] = seq[pos].Clone()
	}

	return out, nil
}

// GraphValue returns the single value of a Graph-scope attribute.
func (st *Store) GraphValue(name string) (value.Value, error) {
	vs, err := st.Values(ScopeGraph, name, nil)
	if err != nil {
		return value.Absent, err
	}

	return vs[0], nil
}

//----------------------------------------------------------------------------//
// Raw-value writes (host scripting layer)
//----------------------------------------------------------------------------//

// Set replaces name's whole sequence in scope; the sequence must match
// the scope's entity count (Graph scope: exactly one value).
func (st *Store) Set(scope Scope, name string, seq []value.Value) error {
	ns, err := st.ns(scope)
	if err != nil {
		return err
	}
	if err = ns.Set(name, seq); err != nil {
		return fmt.Errorf("scope=%s: %w", scope, err)
	}
	st.touchName(scope, name)

	return nil
}

// SetAt writes one position of name's sequence in scope, lazily
// creating an Absent-filled sequence for new names.
func (st *Store) SetAt(scope Scope, name string, pos int, v value.Value) error {
	ns, err := st.ns(scope)
	if err != nil {
		return err
	}
	if err = ns.SetAt(name, pos, v); err != nil {
		return fmt.Errorf("scope=%s: %w", scope, err)
	}
	st.touchName(scope, name)

	return nil
}

// SetGraphValue writes the single value of a Graph-scope attribute,
// creating it if new.
func (st *Store) SetGraphValue(name string, v value.Value) error {
	ns, err := st.ns(ScopeGraph)
	if err != nil {
		return err
	}
	ns.attrs[name] = []value.Value{v}

	return nil
}

// Delete removes name from scope; unknown names are a no-op.
func (st *Store) Delete(scope Scope, name string) error {
	ns, err := st.ns(scope)
	if err != nil {
		return err
	}
	ns.Delete(name)
	st.touchName(scope, name)

	return nil
}

// touchName invalidates the name index when a write touched the
// vertex "name" attribute.
func (st *Store) touchName(scope Scope, name string) {
	if scope == ScopeVertex && name == NameAttr {
		st.names.invalidate()
	}
}

//----------------------------------------------------------------------------//
// Name index
//----------------------------------------------------------------------------//

// VertexByName returns the position of the vertex whose "name"
// attribute equals v. The index covers exactly the vertices with a
// non-Absent, non-Opaque name; duplicate names resolve to the highest
// position (last-write-wins). Built lazily on the first lookup after
// invalidation. Complexity: O(1) amortized, O(V) on rebuild.
func (st *Store) VertexByName(v value.Value) (int, bool) {
	if st.destroyed() {
		return 0, false
	}
	if !st.names.valid {
		seq, _ := st.scopes[ScopeVertex].peek(NameAttr)
		st.names.rebuild(seq)
	}

	return st.names.lookup(v)
}

// InvalidateNameIndex marks the name index stale on request; the next
// VertexByName rebuilds it.
func (st *Store) InvalidateNameIndex() { st.names.invalidate() }
