// File: engine.go
// Role: The combination Engine: gathers each merge-group's members and
//       dispatches to the selected reducer through a fixed table.
// Determinism: every reducer except Random is deterministic; Random
//              draws from the process source unless WithRand supplies
//              a seeded one.

package combine

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/tamralen/gattr/value"
)

// Option configures an Engine.
type Option func(*Engine)

// WithRand makes the Random reducer draw from rnd instead of the
// process-wide source. A nil rnd is ignored.
func WithRand(rnd *rand.Rand) Option {
	return func(e *Engine) {
		if rnd != nil {
			e.rnd = rnd
		}
	}
}

// Engine reduces one attribute's value sequence over a merge-group
// structure. A zero Engine is usable; NewEngine exists to apply
// options.
type Engine struct {
	// rnd backs the Random reducer; nil means the process source.
	rnd *rand.Rand
}

// NewEngine returns an Engine with the given options applied in order.
// Complexity: O(len(opts)).
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// reduceFn is the shape of every built-in reducer: one group's ordered
// members in, one combined value out.
type reduceFn func(e *Engine, members []value.Value) (value.Value, error)

// reducers is the fixed dispatch table, indexed by Reducer and built
// at compile time. Ignore and Func have no table entry: Ignore never
// reaches the Engine, Func carries its own function in the Rule.
var reducers = [Func + 1]reduceFn{
	Sum:     reduceSum,
	Product: reduceProduct,
	Min:     reduceMin,
	Max:     reduceMax,
	Random:  reduceRandom,
	First:   reduceFirst,
	Last:    reduceLast,
	Mean:    reduceMean,
	Median:  reduceMedian,
	Concat:  reduceConcat,
}

// Reduce produces one combined value per merge-group, in group order.
//
// Every source position in groups must lie within values, else
// ErrPosition (nothing is computed). A Rule of Ignore (or any rule the
// Engine cannot execute) yields ErrUnknownReducer / ErrNilFunc — the
// store resolves Ignore before calling here.
//
// Complexity: O(Σ|group|) for most reducers, O(Σ|group|·log|group|)
// for Median.
func (e *Engine) Reduce(values []value.Value, groups Groups, rule Rule) ([]value.Value, error) {
	if err := rule.validate(); err != nil {
		return nil, fmt.Errorf("%w: reducer=%s", err, rule.Reducer)
	}
	out := make([]value.Value, len(groups))
	members := make([]value.Value, 0, 8)
	for gi, group := range groups {
		members = members[:0]
		for _, pos := range group {
			if pos < 0 || pos >= len(values) {
				return nil, fmt.Errorf("%w: group=%d pos=%d size=%d", ErrPosition, gi, pos, len(values))
			}
			members = append(members, values[pos])
		}

		var (
			v   value.Value
			err error
		)
		if rule.Reducer == Func {
			// Hand the function its own copy: a ReduceFunc must never
			// observe the scratch buffer being reused.
			if v, err = rule.Fn(value.CloneSeq(members)); err != nil {
				err = fmt.Errorf("%w: %v", ErrFuncFailed, err)
			}
		} else {
			v, err = reducers[rule.Reducer](e, members)
		}
		if err != nil {
			return nil, fmt.Errorf("group=%d: %w", gi, err)
		}
		out[gi] = v
	}

	return out, nil
}

// numOf is the coercion shared by the numeric reducers: Number and
// Bool pass, anything else is a hard failure. Absent is handled by
// each reducer (identity element / skip).
func numOf(v value.Value) (float64, error) {
	if n, ok := v.Num(); ok {
		return n, nil
	}

	return 0, fmt.Errorf("%w: kind=%s", ErrNotNumeric, v.Kind())
}

// reduceSum folds the group additively; Absent contributes 0.
func reduceSum(_ *Engine, members []value.Value) (value.Value, error) {
	acc := 0.0
	for _, m := range members {
		if m.IsAbsent() {
			continue
		}
		n, err := numOf(m)
		if err != nil {
			return value.Absent, err
		}
		acc += n
	}

	return value.Number(acc), nil
}

// reduceProduct folds the group multiplicatively; Absent contributes 1.
func reduceProduct(_ *Engine, members []value.Value) (value.Value, error) {
	acc := 1.0
	for _, m := range members {
		if m.IsAbsent() {
			continue
		}
		n, err := numOf(m)
		if err != nil {
			return value.Absent, err
		}
		acc *= n
	}

	return value.Number(acc), nil
}

// reduceMin keeps the smallest member under value.Compare.
func reduceMin(_ *Engine, members []value.Value) (value.Value, error) {
	return reduceExtremum(members, -1)
}

// reduceMax keeps the largest member under value.Compare.
func reduceMax(_ *Engine, members []value.Value) (value.Value, error) {
	return reduceExtremum(members, 1)
}

// reduceExtremum scans for the member whose comparison sign against
// the current best matches want.
func reduceExtremum(members []value.Value, want int) (value.Value, error) {
	if len(members) == 0 {
		return value.Absent, nil
	}
	best := members[0]
	for _, m := range members[1:] {
		c, err := value.Compare(m, best)
		if err != nil {
			return value.Absent, fmt.Errorf("%w: %v", ErrNotComparable, err)
		}
		if c == want {
			best = m
		}
	}

	return best, nil
}

// reduceRandom picks one member uniformly.
func reduceRandom(e *Engine, members []value.Value) (value.Value, error) {
	if len(members) == 0 {
		return value.Absent, nil
	}

	return members[e.intn(len(members))], nil
}

// intn draws from the configured source, or the process source.
func (e *Engine) intn(n int) int {
	if e.rnd != nil {
		return e.rnd.Intn(n)
	}

	return rand.Intn(n)
}

// reduceFirst returns the member at the group's first source position.
func reduceFirst(_ *Engine, members []value.Value) (value.Value, error) {
	if len(members) == 0 {
		return value.Absent, nil
	}

	return members[0], nil
}

// reduceLast returns the member at the group's last source position.
func reduceLast(_ *Engine, members []value.Value) (value.Value, error) {
	if len(members) == 0 {
		return value.Absent, nil
	}

	return members[len(members)-1], nil
}

// reduceMean keeps a running (Welford) mean of the numeric members.
// Absent members are skipped; a group with no numeric members (empty
// included) yields Absent rather than 0 or NaN.
func reduceMean(_ *Engine, members []value.Value) (value.Value, error) {
	count, mean := 0, 0.0
	for _, m := range members {
		if m.IsAbsent() {
			continue
		}
		n, err := numOf(m)
		if err != nil {
			return value.Absent, err
		}
		count++
		mean += (n - mean) / float64(count)
	}
	if count == 0 {
		return value.Absent, nil
	}

	return value.Number(mean), nil
}

// reduceMedian sorts the group under value.Compare and returns the
// middle member, or the numeric mean of the two middles for even-sized
// groups. Empty groups yield Absent.
func reduceMedian(_ *Engine, members []value.Value) (value.Value, error) {
	if len(members) == 0 {
		return value.Absent, nil
	}
	sorted := value.CloneSeq(members)
	var cmpErr error
	sort.SliceStable(sorted, func(i, j int) bool {
		if cmpErr != nil {
			return false
		}
		c, err := value.Compare(sorted[i], sorted[j])
		if err != nil {
			cmpErr = err

			return false
		}

		return c < 0
	})
	if cmpErr != nil {
		return value.Absent, fmt.Errorf("%w: %v", ErrNotComparable, cmpErr)
	}
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], nil
	}
	lo, err := numOf(sorted[mid-1])
	if err != nil {
		return value.Absent, err
	}
	hi, err := numOf(sorted[mid])
	if err != nil {
		return value.Absent, err
	}

	return value.Number((lo + hi) / 2), nil
}

// reduceConcat joins the members' Text() forms with no separator.
func reduceConcat(_ *Engine, members []value.Value) (value.Value, error) {
	var sb strings.Builder
	for _, m := range members {
		sb.WriteString(m.Text())
	}

	return value.String(sb.String()), nil
}
