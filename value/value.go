// File: value.go
// Role: The tagged Value union: constructors, accessors, numeric view,
//       text rendering and cloning.
// Aliasing: Value is a value type; Clone exists so callers duplicating
//           whole sequences never share backing storage. Opaque
//           payloads are host-owned and intentionally shared.

package value

import (
	"fmt"
	"strconv"
)

// Kind discriminates the variants of a Value.
type Kind uint8

const (
	// KindAbsent marks an unset slot; the zero Value has this kind.
	KindAbsent Kind = iota
	// KindBool holds true or false.
	KindBool
	// KindNumber holds an IEEE-754 double.
	KindNumber
	// KindString holds UTF-8 text.
	KindString
	// KindOpaque holds a host-owned payload the store never inspects.
	KindOpaque
)

// String returns a short diagnostic name for the kind.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "Absent"
	case KindBool:
		return "Bool"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindOpaque:
		return "Opaque"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a tagged union over Absent, Bool, Number, String and
// Opaque. The zero Value is Absent. Values are immutable by
// convention: every accessor returns a copy of the payload.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	o    interface{}
}

// Absent is the unset slot value (identical to the zero Value).
var Absent = Value{}

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a double.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// String wraps UTF-8 text.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Opaque wraps a host-owned payload. The store treats it as a black
// box: it participates in no classification bucket but Object, is
// never coerced, and is shared (not deep-copied) on Clone.
func Opaque(v interface{}) Value { return Value{kind: KindOpaque, o: v} }

// Kind reports the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the slot is unset.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// AsBool returns the boolean payload; ok is false for other kinds.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsNumber returns the numeric payload; ok is false for other kinds.
func (v Value) AsNumber() (float64, bool) { return v.n, v.kind == KindNumber }

// AsString returns the string payload; ok is false for other kinds.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsOpaque returns the host payload; ok is false for other kinds.
func (v Value) AsOpaque() (interface{}, bool) { return v.o, v.kind == KindOpaque }

// Num returns the lossless numeric view of the value: a Number is
// itself, a Bool is 1 or 0. Every other kind (including Absent) is not
// numeric here — callers pick their own identity element for Absent.
func (v Value) Num() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.n, true
	case KindBool:
		if v.b {
			return 1, true
		}

		return 0, true
	default:
		return 0, false
	}
}

// Text renders the value for concatenation: Absent is the empty
// string, Bool is "true"/"false", Number uses the shortest 'g' form,
// String is itself, Opaque falls back to fmt.Sprint.
func (v Value) Text() string {
	switch v.kind {
	case KindAbsent:
		return ""
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.n, 'g', -1, 64)
	case KindString:
		return v.s
	default:
		return fmt.Sprint(v.o)
	}
}

// Clone returns a copy that shares no mutable storage with v. Only
// Opaque payloads remain shared, by contract (they are host-owned).
func (v Value) Clone() Value { return v }

// Equal reports semantic equality: same kind and same payload. Opaque
// payloads compare by interface equality and must therefore hold
// comparable dynamic types; the store never relies on Opaque equality.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindAbsent:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.n == b.n
	case KindString:
		return a.s == b.s
	default:
		return a.o == b.o
	}
}

// CloneSeq duplicates a whole sequence element-wise; the result never
// aliases src. A nil src yields an empty, non-nil sequence.
// Complexity: O(n).
func CloneSeq(src []Value) []Value {
	dst := make([]Value, len(src))
	for i, v := range src {
		dst[i] = v.Clone()
	}

	return dst
}
