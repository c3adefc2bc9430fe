package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tamralen/gattr/combine"
	"github.com/tamralen/gattr/store"
	"github.com/tamralen/gattr/value"
)

// requireSeq asserts one attribute's full sequence.
func requireSeq(t *testing.T, st *store.Store, scope store.Scope, name string, want []value.Value) {
	t.Helper()
	got, err := st.Values(scope, name, nil)
	require.NoError(t, err)
	require.Len(t, got, len(want), "attr %q", name)
	for i := range want {
		assert.True(t, value.Equal(want[i], got[i]), "attr %q position %d: want %v got %v", name, i, want[i], got[i])
	}
}

//----------------------------------------------------------------------------//
// AddEntities
//----------------------------------------------------------------------------//

// TestAddEntities_AbsentPadding: growing a scope pads every untouched
// attribute with Absent.
func TestAddEntities_AbsentPadding(t *testing.T) {
	st := store.New()
	require.NoError(t, st.AddEntities(store.ScopeVertex, 3, map[string][]value.Value{
		"w": {value.Number(1), value.Number(2), value.Number(3)},
	}))

	require.NoError(t, st.AddEntities(store.ScopeVertex, 2, nil))

	vcount, _ := st.Counts()
	assert.Equal(t, 5, vcount)
	requireSeq(t, st, store.ScopeVertex, "w", []value.Value{
		value.Number(1), value.Number(2), value.Number(3), value.Absent, value.Absent,
	})
}

// TestAddEntities_NewAttr checks a name supplied only for the new
// entities: the old positions backfill with Absent.
func TestAddEntities_NewAttr(t *testing.T) {
	st := seedVertices(t)
	require.NoError(t, st.AddEntities(store.ScopeVertex, 1, map[string][]value.Value{
		"fresh": {value.Bool(true)},
	}))

	requireSeq(t, st, store.ScopeVertex, "fresh", []value.Value{
		value.Absent, value.Absent, value.Absent, value.Bool(true),
	})
	requireSeq(t, st, store.ScopeVertex, "w", []value.Value{
		value.Number(1), value.Number(2), value.Number(3), value.Absent,
	})
}

// TestAddEntities_Validation covers the negative-count clamp, the
// sequence-length guard and the graph-scope rejection.
func TestAddEntities_Validation(t *testing.T) {
	st := seedVertices(t)

	require.NoError(t, st.AddEntities(store.ScopeVertex, -2, nil), "negative count is a no-op")
	vcount, _ := st.Counts()
	assert.Equal(t, 3, vcount)

	err := st.AddEntities(store.ScopeVertex, 2, map[string][]value.Value{
		"w": {value.Number(9)}, // length 1, want 2
	})
	assert.ErrorIs(t, err, store.ErrSequenceLength)
	vcount, _ = st.Counts()
	assert.Equal(t, 3, vcount, "failed grow must not commit")
	requireSeq(t, st, store.ScopeVertex, "w", []value.Value{
		value.Number(1), value.Number(2), value.Number(3),
	})

	err = st.AddEntities(store.ScopeGraph, 1, nil)
	assert.ErrorIs(t, err, store.ErrBadScope)
}

//----------------------------------------------------------------------------//
// Permute
//----------------------------------------------------------------------------//

// TestPermute: order [2,0,1] over w=[1,2,3] yields w=[3,1,2].
func TestPermute(t *testing.T) {
	st := seedVertices(t)

	require.NoError(t, st.Permute(store.ScopeVertex, []int{2, 0, 1}))
	requireSeq(t, st, store.ScopeVertex, "w", []value.Value{
		value.Number(3), value.Number(1), value.Number(2),
	})
	requireSeq(t, st, store.ScopeVertex, "tag", []value.Value{
		value.String("c"), value.String("a"), value.String("b"),
	})
}

// TestPermute_NotBijection: the order defines the whole new sequence,
// so repeats and drops are legal and change the entity count.
func TestPermute_NotBijection(t *testing.T) {
	st := seedVertices(t)

	require.NoError(t, st.Permute(store.ScopeVertex, []int{1, 1}))
	vcount, _ := st.Counts()
	assert.Equal(t, 2, vcount)
	requireSeq(t, st, store.ScopeVertex, "w", []value.Value{
		value.Number(2), value.Number(2),
	})
}

// TestPermute_OutOfRange asserts the all-or-nothing error path.
func TestPermute_OutOfRange(t *testing.T) {
	st := seedVertices(t)

	err := st.Permute(store.ScopeVertex, []int{0, 3})
	assert.ErrorIs(t, err, store.ErrOutOfRange)
	// Untouched on the error path.
	requireSeq(t, st, store.ScopeVertex, "w", []value.Value{
		value.Number(1), value.Number(2), value.Number(3),
	})
}

//----------------------------------------------------------------------------//
// Combine
//----------------------------------------------------------------------------//

// TestCombine_DropUnnamed: "w" sums, "tag" has no rule and the Ignore
// default drops it.
func TestCombine_DropUnnamed(t *testing.T) {
	st := seedVertices(t)
	spec := combine.NewSpec(combine.Rule{}) // default: Ignore
	spec.Set("w", combine.Rule{Reducer: combine.Sum})

	require.NoError(t, st.Combine(store.ScopeVertex, combine.Groups{{0, 1}, {2}}, spec))

	vcount, _ := st.Counts()
	assert.Equal(t, 2, vcount)
	requireSeq(t, st, store.ScopeVertex, "w", []value.Value{
		value.Number(3), value.Number(3),
	})
	assert.False(t, st.Has(store.ScopeVertex, "tag"), "attributes without a rule are dropped")
}

// TestCombine_Uniform applies one reducer to every attribute.
func TestCombine_Uniform(t *testing.T) {
	st := seedVertices(t)

	require.NoError(t, st.Combine(store.ScopeVertex, combine.Groups{{2, 0, 1}}, combine.Uniform(combine.First)))
	requireSeq(t, st, store.ScopeVertex, "w", []value.Value{value.Number(3)})
	requireSeq(t, st, store.ScopeVertex, "tag", []value.Value{value.String("c")})
}

// TestCombine_Atomic asserts the all-or-nothing contract: a reducer
// failing on one attribute commits nothing, not even the attributes
// already reduced.
func TestCombine_Atomic(t *testing.T) {
	st := seedVertices(t)

	// Sum works for "w" but hard-fails on the string "tag".
	err := st.Combine(store.ScopeVertex, combine.Groups{{0, 1, 2}}, combine.Uniform(combine.Sum))
	assert.ErrorIs(t, err, combine.ErrNotNumeric)

	vcount, _ := st.Counts()
	assert.Equal(t, 3, vcount, "entity count unchanged after failed combine")
	requireSeq(t, st, store.ScopeVertex, "w", []value.Value{
		value.Number(1), value.Number(2), value.Number(3),
	})
	requireSeq(t, st, store.ScopeVertex, "tag", []value.Value{
		value.String("a"), value.String("b"), value.String("c"),
	})
}

// TestCombine_FuncRule routes one attribute through a host-supplied
// reduction.
func TestCombine_FuncRule(t *testing.T) {
	st := seedVertices(t)
	spec := combine.NewSpec(combine.Rule{})
	spec.Set("tag", combine.Rule{Reducer: combine.Func, Fn: func(members []value.Value) (value.Value, error) {
		return value.Number(float64(len(members))), nil
	}})

	require.NoError(t, st.Combine(store.ScopeVertex, combine.Groups{{0, 2}, {1}}, spec))
	requireSeq(t, st, store.ScopeVertex, "tag", []value.Value{value.Number(2), value.Number(1)})
}

// TestCombine_NilSpec drops everything: a nil spec resolves every name
// to Ignore.
func TestCombine_NilSpec(t *testing.T) {
	st := seedVertices(t)

	require.NoError(t, st.Combine(store.ScopeVertex, combine.Groups{{0, 1, 2}}, nil))
	names, err := st.Names(store.ScopeVertex)
	require.NoError(t, err)
	assert.Empty(t, names)
	vcount, _ := st.Counts()
	assert.Equal(t, 1, vcount)
}

//----------------------------------------------------------------------------//
// Shape invariant
//----------------------------------------------------------------------------//

// TestShapeInvariant runs a mixed mutation sequence and asserts every
// attribute sequence length equals the entity count after each step.
func TestShapeInvariant(t *testing.T) {
	st := seedVertices(t)

	check := func(stage string) {
		t.Helper()
		for _, scope := range []store.Scope{store.ScopeVertex, store.ScopeEdge} {
			names, err := st.Names(scope)
			require.NoError(t, err)
			vcount, ecount := st.Counts()
			want := vcount
			if scope == store.ScopeEdge {
				want = ecount
			}
			for _, name := range names {
				vs, verr := st.Values(scope, name, nil)
				require.NoError(t, verr)
				assert.Len(t, vs, want, "%s: scope=%s attr=%q", stage, scope, name)
			}
		}
	}

	check("seed")
	require.NoError(t, st.AddEntities(store.ScopeVertex, 2, nil))
	check("add")
	require.NoError(t, st.AddEntities(store.ScopeEdge, 4, map[string][]value.Value{
		"cap": {value.Number(1), value.Number(2), value.Number(3), value.Number(4)},
	}))
	check("edges")
	require.NoError(t, st.Permute(store.ScopeVertex, []int{4, 3, 2, 1, 0}))
	check("permute")
	require.NoError(t, st.Combine(store.ScopeVertex, combine.Groups{{0, 1}, {2, 3, 4}},
		combine.Uniform(combine.Last)))
	check("combine")
	require.NoError(t, st.SetAt(store.ScopeVertex, "brand-new", 0, value.Bool(true)))
	check("setat")
}
