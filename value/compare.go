// File: compare.go
// Role: The total order used by order-sensitive reducers (Min, Max,
//       Median).
// Contract: Absent sorts before everything; numbers (with Bool viewed
//           as 0/1) order by value; strings order lexicographically;
//           any other pairing is not comparable.

package value

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotComparable indicates two values have no defined mutual order
// (e.g. a String against a Number, or any Opaque operand).
var ErrNotComparable = errors.New("value: values are not comparable")

// Compare returns -1, 0 or +1 ordering a before/equal/after b.
//
// Ordering rules:
//   - Absent < every non-Absent value; two Absents are equal.
//   - Numeric operands (Number, or Bool as 0/1) order by value.
//   - Strings order lexicographically (byte-wise).
//   - Everything else → ErrNotComparable.
//
// Complexity: O(1) (O(len) for strings).
func Compare(a, b Value) (int, error) {
	if a.kind == KindAbsent || b.kind == KindAbsent {
		switch {
		case a.kind == b.kind:
			return 0, nil
		case a.kind == KindAbsent:
			return -1, nil
		default:
			return 1, nil
		}
	}
	if an, aok := a.Num(); aok {
		if bn, bok := b.Num(); bok {
			switch {
			case an < bn:
				return -1, nil
			case an > bn:
				return 1, nil
			default:
				return 0, nil
			}
		}
	}
	if as, aok := a.AsString(); aok {
		if bs, bok := b.AsString(); bok {
			return strings.Compare(as, bs), nil
		}
	}

	return 0, fmt.Errorf("%w: %s vs %s", ErrNotComparable, a.kind, b.kind)
}
