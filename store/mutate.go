// File: mutate.go
// Role: Entity mutations — AddEntities, Permute, Combine — for the
//       Vertex and Edge scopes.
// Atomicity: every mutation validates before it writes; a failure
//            leaves the scope exactly as it was. Combine computes all
//            attributes first and commits the rebuilt namespace only
//            if every reducer succeeded.

package store

import (
	"fmt"

	"github.com/tamralen/gattr/combine"
	"github.com/tamralen/gattr/value"
)

// AddEntities appends n entities to scope. Existing attributes grow by
// their sequence from newAttrs or by n Absent values; names present
// only in newAttrs are created Absent-filled over the old entities.
// Every supplied sequence must have length n (ErrSequenceLength).
// A negative n is a defensive no-op, not an error.
// Invalidates the name index on the Vertex scope.
// Complexity: O(attrs·(count+n)).
func (st *Store) AddEntities(scope Scope, n int, newAttrs map[string][]value.Value) error {
	ns, err := st.entityNS(scope)
	if err != nil {
		return err
	}
	if n < 0 {
		return nil
	}
	if err = ns.grow(n, newAttrs); err != nil {
		return fmt.Errorf("scope=%s: %w", scope, err)
	}
	if scope == ScopeVertex {
		st.names.invalidate()
	}

	return nil
}

// Permute reorders scope so that output position i holds the value
// previously at order[i], for every attribute. The order defines the
// entire new sequence (the new entity count is len(order)); any index
// outside the old count fails with ErrOutOfRange and nothing changes.
// Invalidates the name index on the Vertex scope.
// Complexity: O(attrs·len(order)).
func (st *Store) Permute(scope Scope, order []int) error {
	ns, err := st.entityNS(scope)
	if err != nil {
		return err
	}
	if err = ns.permute(order); err != nil {
		return fmt.Errorf("scope=%s: %w", scope, err)
	}
	if scope == ScopeVertex {
		st.names.invalidate()
	}

	return nil
}

// Combine contracts scope's entities: every attribute present in the
// scope resolves its rule from spec (unmentioned names take the
// spec's default; the zero default is Ignore) and is reduced to one
// value per merge-group. Names resolving to Ignore are dropped.
//
// The result replaces the scope's whole attribute table — a
// destructive rebuild, not an in-place edit — and the new entity count
// is len(groups). Commitment is all-or-nothing: if any reducer fails,
// the error is returned with scope and attribute context and the scope
// keeps its pre-call state.
//
// Invalidates the name index on the Vertex scope.
// Complexity: O(attrs·Σ|group|) plus reducer cost.
func (st *Store) Combine(scope Scope, groups combine.Groups, spec *combine.Spec) error {
	ns, err := st.entityNS(scope)
	if err != nil {
		return err
	}

	next := make(map[string][]value.Value)
	for _, name := range ns.Names() {
		rule := spec.Resolve(name)
		if rule.Reducer == combine.Ignore {
			continue
		}
		seq, _ := ns.peek(name)
		reduced, rerr := st.engine.Reduce(seq, groups, rule)
		if rerr != nil {
			return fmt.Errorf("scope=%s attr=%q: %w", scope, name, rerr)
		}
		next[name] = reduced
	}

	ns.replace(len(groups), next)
	if scope == ScopeVertex {
		st.names.invalidate()
	}

	return nil
}
