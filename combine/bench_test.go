package combine_test

import (
	"testing"

	"github.com/tamralen/gattr/combine"
	"github.com/tamralen/gattr/value"
)

// benchReduce runs one reducer over 1024 values contracted pairwise.
func benchReduce(b *testing.B, r combine.Reducer) {
	const n = 1024
	vs := make([]value.Value, n)
	groups := make(combine.Groups, 0, n/2)
	for i := 0; i < n; i++ {
		vs[i] = value.Number(float64(i))
	}
	for i := 0; i < n; i += 2 {
		groups = append(groups, []int{i, i + 1})
	}
	e := combine.NewEngine()
	rule := combine.Rule{Reducer: r}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Reduce(vs, groups, rule); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReduce_Sum(b *testing.B)    { benchReduce(b, combine.Sum) }
func BenchmarkReduce_Mean(b *testing.B)   { benchReduce(b, combine.Mean) }
func BenchmarkReduce_Median(b *testing.B) { benchReduce(b, combine.Median) }
func BenchmarkReduce_Concat(b *testing.B) { benchReduce(b, combine.Concat) }
