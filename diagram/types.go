// Package diagram defines InfluenceDiagram, the read-only input container
// the bucket engine consumes: an ordered variable list, per-variable kind
// tags, a factor list, an optional temporal partial order on decisions,
// and a LIMID flag.
package diagram

import (
	"errors"
	"fmt"

	"github.com/vareng/bucketelim/factor"
	"github.com/vareng/bucketelim/variable"
)

// Sentinel errors for InfluenceDiagram construction.
var (
	// ErrDuplicateVariable indicates the same chance/decision variable
	// index appears more than once in the variable list.
	ErrDuplicateVariable = errors.New("diagram: variable index appears more than once")

	// ErrDecisionNotInPartialOrder indicates a partial order was supplied
	// but omits one of the model's decision variables.
	ErrDecisionNotInPartialOrder = errors.New("diagram: decision variable missing from partial order")

	// ErrUnknownPartialOrderVariable indicates the partial order names a
	// variable index that is not part of the model.
	ErrUnknownPartialOrderVariable = errors.New("diagram: partial order references an unknown variable")
)

// InfluenceDiagram is the borrowed, read-only input to the bucket engine.
//
// Construct with New; the returned value is immutable and safe to read
// from multiple engines concurrently (spec.md §5 "Shared resources").
type InfluenceDiagram struct {
	vars         []variable.Variable
	factors      []factor.Factor
	partialOrder []int
	limid        bool
}

// Option configures an InfluenceDiagram at construction time, mirroring
// core.GraphOption's functional-option pattern.
type Option func(*InfluenceDiagram)

// WithPartialOrder supplies the temporal partial order: a sequence of
// variable indices stating which decisions are observed before which.
func WithPartialOrder(order []int) Option {
	return func(d *InfluenceDiagram) {
		d.partialOrder = append([]int(nil), order...)
	}
}

// WithLimid marks the model as a LIMID. The bucket engine rejects LIMID
// models with UnsupportedModel per spec.md §4.3.
func WithLimid() Option {
	return func(d *InfluenceDiagram) { d.limid = true }
}

// New constructs an InfluenceDiagram from vars (kind is read off each
// Variable) and factors, applying opts.
//
// Invariants enforced:
//   - no chance/decision variable index appears twice in vars.
//   - if a partial order is supplied, every decision variable's index
//     appears in it, and every index in it names a variable of the model.
func New(vars []variable.Variable, factors []factor.Factor, opts ...Option) (*InfluenceDiagram, error) {
	seen := make(map[int]bool, len(vars))
	for _, v := range vars {
		if v.Kind() == variable.Value {
			continue
		}
		if seen[v.Index()] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateVariable, v.Index())
		}
		seen[v.Index()] = true
	}

	d := &InfluenceDiagram{
		vars:    append([]variable.Variable(nil), vars...),
		factors: append([]factor.Factor(nil), factors...),
	}
	for _, opt := range opts {
		opt(d)
	}

	if err := d.validatePartialOrder(); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *InfluenceDiagram) validatePartialOrder() error {
	if len(d.partialOrder) == 0 {
		return nil
	}

	inOrder := make(map[int]bool, len(d.partialOrder))
	byIndex := make(map[int]variable.Variable, len(d.vars))
	for _, v := range d.vars {
		byIndex[v.Index()] = v
	}
	for _, idx := range d.partialOrder {
		if _, ok := byIndex[idx]; !ok {
			return fmt.Errorf("%w: %d", ErrUnknownPartialOrderVariable, idx)
		}
		inOrder[idx] = true
	}
	for _, v := range d.vars {
		if v.Kind() == variable.Decision && !inOrder[v.Index()] {
			return fmt.Errorf("%w: %d", ErrDecisionNotInPartialOrder, v.Index())
		}
	}
	return nil
}

// NumVars returns the number of variables in the model.
func (d *InfluenceDiagram) NumVars() int { return len(d.vars) }

// Variable returns the i'th variable in construction order. Callers that
// need a variable by its index should use VariableByIndex.
func (d *InfluenceDiagram) Variable(i int) variable.Variable { return d.vars[i] }

// Variables returns the model's variables in construction order. The
// returned slice is owned by the caller.
func (d *InfluenceDiagram) Variables() []variable.Variable {
	out := make([]variable.Variable, len(d.vars))
	copy(out, d.vars)
	return out
}

// VariableByIndex returns the variable with the given index, or false if
// no such variable exists in the model.
func (d *InfluenceDiagram) VariableByIndex(index int) (variable.Variable, bool) {
	for _, v := range d.vars {
		if v.Index() == index {
			return v, true
		}
	}
	return variable.Variable{}, false
}

// Kind returns the kind of the variable with the given index.
func (d *InfluenceDiagram) Kind(index int) variable.Kind {
	v, _ := d.VariableByIndex(index)
	return v.Kind()
}

// Factors returns the model's input factors. The returned slice is owned
// by the caller; the underlying Factor values are immutable.
func (d *InfluenceDiagram) Factors() []factor.Factor {
	out := make([]factor.Factor, len(d.factors))
	copy(out, d.factors)
	return out
}

// IsLimid reports whether the model is a LIMID (limited-memory influence
// diagram), which the bucket engine does not support.
func (d *InfluenceDiagram) IsLimid() bool { return d.limid }

// PartialOrder returns the temporal partial order on decisions, or nil if
// none was supplied.
func (d *InfluenceDiagram) PartialOrder() []int {
	if len(d.partialOrder) == 0 {
		return nil
	}
	out := make([]int, len(d.partialOrder))
	copy(out, d.partialOrder)
	return out
}
