package store_test

import (
	"fmt"

	"github.com/tamralen/gattr/combine"
	"github.com/tamralen/gattr/store"
	"github.com/tamralen/gattr/value"
)

// Example walks a full host-engine lifecycle: create, add vertices,
// permute, contract, query.
func Example() {
	st := store.New(store.WithGraphAttrs(map[string]value.Value{
		"title": value.String("mesh"),
	}))
	defer st.Destroy()

	// Three vertices arrive with a weight attribute.
	_ = st.AddEntities(store.ScopeVertex, 3, map[string][]value.Value{
		"w": {value.Number(1), value.Number(2), value.Number(3)},
	})

	// The engine reorders its vertices.
	_ = st.Permute(store.ScopeVertex, []int{2, 0, 1})

	// Contraction: the first two merged positions sum their weights.
	spec := combine.NewSpec(combine.Rule{}) // unmentioned names: Ignore
	spec.Set("w", combine.Rule{Reducer: combine.Sum})
	_ = st.Combine(store.ScopeVertex, combine.Groups{{0, 1}, {2}}, spec)

	title, _ := st.GraphValue("title")
	ws, _ := st.Values(store.ScopeVertex, "w", nil)
	fmt.Println(title.Text())
	for _, w := range ws {
		fmt.Println(w.Text())
	}
	// Output:
	// mesh
	// 4
	// 2
}

// ExampleStore_VertexByName resolves vertex positions from the "name"
// attribute through the lazy index.
func ExampleStore_VertexByName() {
	st := store.New()
	_ = st.AddEntities(store.ScopeVertex, 2, map[string][]value.Value{
		store.NameAttr: {value.String("ada"), value.String("bob")},
	})

	pos, ok := st.VertexByName(value.String("bob"))
	fmt.Println(pos, ok)
	// Output: 1 true
}
