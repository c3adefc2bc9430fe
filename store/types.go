// File: types.go
// Role: Scope enumeration, sentinel errors and Store options.

package store

import (
	"errors"
	"math/rand"
	"strconv"

	"github.com/tamralen/gattr/value"
)

// Sentinel errors for store operations.
var (
	// ErrNoSuchAttribute indicates a query referenced an unknown
	// attribute name in the given scope.
	ErrNoSuchAttribute = errors.New("store: no such attribute")

	// ErrOutOfRange indicates a position index outside the scope's
	// current entity count.
	ErrOutOfRange = errors.New("store: position out of range")

	// ErrBadScope indicates an entity mutation was attempted on the
	// Graph scope, or an undefined Scope value was passed.
	ErrBadScope = errors.New("store: operation not defined for scope")

	// ErrSequenceLength indicates a supplied value sequence does not
	// match the required entity count. A sequence of the wrong length
	// can never be committed: admitting it would break the shape
	// invariant every query relies on.
	ErrSequenceLength = errors.New("store: sequence length mismatch")

	// ErrDestroyed indicates an operation on a Store after Destroy.
	ErrDestroyed = errors.New("store: store has been destroyed")
)

// NameAttr is the vertex attribute backing the name index.
const NameAttr = "name"

// Scope selects one of the three attribute namespaces.
type Scope uint8

const (
	// ScopeGraph holds one value per attribute for the graph itself.
	ScopeGraph Scope = iota
	// ScopeVertex holds one value per vertex per attribute.
	ScopeVertex
	// ScopeEdge holds one value per edge per attribute.
	ScopeEdge

	numScopes = 3
)

// String returns the scope name for diagnostics and error context.
func (s Scope) String() string {
	switch s {
	case ScopeGraph:
		return "Graph"
	case ScopeVertex:
		return "Vertex"
	case ScopeEdge:
		return "Edge"
	default:
		return "Scope(" + strconv.Itoa(int(s)) + ")"
	}
}

// Option configures a Store at creation time.
type Option func(*options)

type options struct {
	graphAttrs map[string]value.Value
	rnd        *rand.Rand
}

// WithGraphAttrs seeds the Graph scope with initial (name, value)
// pairs. The map is read once during New and not retained.
func WithGraphAttrs(attrs map[string]value.Value) Option {
	return func(o *options) { o.graphAttrs = attrs }
}

// WithRand makes the Random reducer of this store's combination engine
// draw from rnd instead of the process-wide source.
func WithRand(rnd *rand.Rand) Option {
	return func(o *options) { o.rnd = rnd }
}
