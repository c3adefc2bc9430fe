// File: classify.go
// Role: Sequence classification Boolean → Numeric → String → Object.
// Purity: Classify has no side effects and no failure modes; the same
//         sequence always classifies the same way.

package value

import "strconv"

// Class is the inferred type of an attribute's value sequence.
type Class uint8

const (
	// ClassBoolean: every element is Absent or Bool.
	ClassBoolean Class = iota
	// ClassNumeric: every element is Absent, Number, or a losslessly
	// convertible Bool. The empty sequence is Numeric by convention.
	ClassNumeric
	// ClassString: every element is Absent or String.
	ClassString
	// ClassObject: heterogeneous or host-opaque.
	ClassObject
)

// String returns the class name as surfaced to the host engine.
func (c Class) String() string {
	switch c {
	case ClassBoolean:
		return "Boolean"
	case ClassNumeric:
		return "Numeric"
	case ClassString:
		return "String"
	case ClassObject:
		return "Object"
	default:
		return "Class(" + strconv.Itoa(int(c)) + ")"
	}
}

// Classify inspects a value sequence and returns its class. The
// buckets are tried in order Boolean, Numeric, String; anything that
// fits none of them is Object. Absent elements fit every bucket.
// Complexity: O(n), single pass.
func Classify(vs []Value) Class {
	// The empty sequence is Numeric by convention (graph-scope
	// degenerate case), even though it vacuously fits every bucket.
	if len(vs) == 0 {
		return ClassNumeric
	}
	// One pass: track which buckets remain possible.
	boolOK, numOK, strOK := true, true, true
	for _, v := range vs {
		switch v.kind {
		case KindAbsent:
			// fits everywhere
		case KindBool:
			// Bool converts losslessly to 0/1, so Numeric stays open.
			strOK = false
		case KindNumber:
			boolOK, strOK = false, false
		case KindString:
			boolOK, numOK = false, false
		default:
			boolOK, numOK, strOK = false, false, false
		}
		if !boolOK && !numOK && !strOK {
			return ClassObject
		}
	}
	switch {
	case boolOK:
		return ClassBoolean
	case numOK:
		return ClassNumeric
	case strOK:
		return ClassString
	default:
		return ClassObject
	}
}
