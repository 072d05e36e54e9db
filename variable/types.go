// Package variable defines the Variable and Set primitives shared by the
// factor, diagram, order, and be packages.
//
// A Variable is an immutable, integer-indexed discrete random/decision
// quantity with a finite domain. A Set is an ordered-by-index collection
// of Variables supporting the usual set algebra (union, intersection,
// containment, subtraction) used throughout the elimination engine to
// describe factor scopes.
package variable

import "errors"

// Sentinel errors for variable construction and set operations.
var (
	// ErrBadCardinality indicates a non-positive domain cardinality was supplied.
	ErrBadCardinality = errors.New("variable: cardinality must be positive")

	// ErrNegativeIndex indicates a negative variable index was supplied.
	ErrNegativeIndex = errors.New("variable: index must be non-negative")
)

// Kind tags the role a Variable plays in an influence diagram.
type Kind int

const (
	// Chance marks a random variable governed by a conditional probability factor.
	Chance Kind = iota
	// Decision marks a controllable variable whose value is chosen by a policy.
	Decision
	// Value marks a deterministic value node (no probability factor of its own).
	Value
)

// String renders the Kind using the single-letter tags used by spec-level
// model descriptions ('c', 'd', 'v').
func (k Kind) String() string {
	switch k {
	case Chance:
		return "c"
	case Decision:
		return "d"
	case Value:
		return "v"
	default:
		return "?"
	}
}

// Variable is an immutable discrete variable: a non-negative integer index,
// a positive domain cardinality, and a Kind tag.
//
// Variables are created once via New and never mutated afterward; the
// elimination engine and factor algebra pass Variable values by value.
type Variable struct {
	index int
	card  int
	kind  Kind
}

// New constructs a Variable with the given index, domain cardinality, and kind.
// Returns ErrNegativeIndex if index < 0, or ErrBadCardinality if card <= 0.
func New(index, card int, kind Kind) (Variable, error) {
	if index < 0 {
		return Variable{}, ErrNegativeIndex
	}
	if card <= 0 {
		return Variable{}, ErrBadCardinality
	}
	return Variable{index: index, card: card, kind: kind}, nil
}

// Index returns the variable's non-negative integer identity.
func (v Variable) Index() int { return v.index }

// Card returns the variable's domain cardinality.
func (v Variable) Card() int { return v.card }

// Kind returns the variable's role tag.
func (v Variable) Kind() Kind { return v.kind }
