package factor

import (
	"fmt"
	"math"

	"github.com/vareng/bucketelim/variable"
)

// checkCompatible verifies that every variable shared between f's and g's
// scopes (matched by index) carries the same domain cardinality in both.
// A mismatch is a fatal input error per spec.md §4.1.
func checkCompatible(f, g Factor) error {
	for _, v := range f.scope.Slice() {
		if other, ok := g.scope.Get(v.Index()); ok && other.Card() != v.Card() {
			return fmt.Errorf("%w: variable %d has cardinality %d and %d", ErrScopeMismatch, v.Index(), v.Card(), other.Card())
		}
	}
	return nil
}

// combine builds scope(f)∪scope(g) and fills each entry by applying op to
// the aligned (f,g) entries under that joint configuration. Factors with
// disjoint scopes yield an outer product/sum, matching spec.md's tie-break
// rule. The result's type tag is left at its zero value (Probability);
// callers re-tag via WithType before storing the message.
func combine(f, g Factor, op func(a, b float64) float64) Factor {
	scope := f.scope.Union(g.scope)
	strides, size := buildStrides(scope)
	vars := scope.Slice()
	entries := make([]float64, size)

	config := make(map[int]int, len(vars))
	for idx := 0; idx < size; idx++ {
		decode(vars, idx, config)
		entries[idx] = op(f.entries[f.flatIndex(config)], g.entries[g.flatIndex(config)])
	}

	return Factor{scope: scope, entries: entries, strides: strides}
}

// decode fills config with the digit assignment for flat offset idx under
// vars (in canonical ascending-index order, v0 fastest-varying).
func decode(vars []variable.Variable, idx int, config map[int]int) {
	remaining := idx
	for _, v := range vars {
		config[v.Index()] = remaining % v.Card()
		remaining /= v.Card()
	}
}

// Product returns the entrywise product of f and g over scope(f)∪scope(g).
// Returns ErrScopeMismatch if f and g disagree on the cardinality of a
// shared variable.
func Product(f, g Factor) (Factor, error) {
	if err := checkCompatible(f, g); err != nil {
		return Factor{}, err
	}
	return combine(f, g, func(a, b float64) float64 { return a * b }), nil
}

// Sum returns the entrywise sum of f and g over scope(f)∪scope(g).
// Returns ErrScopeMismatch if f and g disagree on the cardinality of a
// shared variable.
func Sum(f, g Factor) (Factor, error) {
	if err := checkCompatible(f, g); err != nil {
		return Factor{}, err
	}
	return combine(f, g, func(a, b float64) float64 { return a + b }), nil
}

// Quotient returns the entrywise division f/g over scope(f)∪scope(g).
// By convention 0/0 is defined as 0; a non-zero numerator over a zero
// denominator returns ErrDivideByZero, and a cardinality mismatch on a
// shared variable returns ErrScopeMismatch.
func Quotient(f, g Factor) (Factor, error) {
	if err := checkCompatible(f, g); err != nil {
		return Factor{}, err
	}
	ok := true
	out := combine(f, g, func(a, b float64) float64 {
		if b == 0 {
			if a == 0 {
				return 0
			}
			ok = false
			return 0
		}
		return a / b
	})
	if !ok {
		return Factor{}, ErrDivideByZero
	}
	return out, nil
}

// marginalAgg eliminates the variables in vs from f's scope by folding
// entries that share a projected configuration with combine, seeded at
// identity.
func marginalAgg(f Factor, vs variable.Set, identity float64, combine func(acc, v float64) float64) Factor {
	resultScope := f.scope.Subtract(vs)
	resultStrides, resultSize := buildStrides(resultScope)
	resultVars := resultScope.Slice()

	entries := make([]float64, resultSize)
	for i := range entries {
		entries[i] = identity
	}

	vars := f.scope.Slice()
	config := make(map[int]int, len(vars))
	for idx := 0; idx < len(f.entries); idx++ {
		decode(vars, idx, config)
		ri := 0
		for _, v := range resultVars {
			ri += config[v.Index()] * resultStrides[v.Index()]
		}
		entries[ri] = combine(entries[ri], f.entries[idx])
	}

	return Factor{scope: resultScope, entries: entries, strides: resultStrides, typ: f.typ}
}

// SumMarginal returns scope(f)\vs summed over the configurations of
// vs∩scope(f). A no-op if vs doesn't intersect scope(f).
func SumMarginal(f Factor, vs variable.Set) Factor {
	return marginalAgg(f, vs, 0, func(acc, v float64) float64 { return acc + v })
}

// MaxMarginal returns scope(f)\vs maximized over the configurations of
// vs∩scope(f). A no-op if vs doesn't intersect scope(f).
func MaxMarginal(f Factor, vs variable.Set) Factor {
	return marginalAgg(f, vs, math.Inf(-1), func(acc, v float64) float64 {
		if v > acc {
			return v
		}
		return acc
	})
}

// MinMarginal returns scope(f)\vs minimized over the configurations of
// vs∩scope(f). A no-op if vs doesn't intersect scope(f).
func MinMarginal(f Factor, vs variable.Set) Factor {
	return marginalAgg(f, vs, math.Inf(1), func(acc, v float64) float64 {
		if v < acc {
			return v
		}
		return acc
	})
}

// Operator selects the elimination rule applied by Marginalize.
type Operator int

const (
	// SumOp eliminates by summation (chance-variable and value-variable buckets).
	SumOp Operator = iota
	// MaxOp eliminates by maximization (decision-variable buckets).
	MaxOp
	// MinOp eliminates by minimization (not exercised by spec.md's scenarios,
	// kept for API symmetry with SumOp and MaxOp).
	MinOp
)

// Marginalize dispatches to SumMarginal, MaxMarginal, or MinMarginal by op,
// used internally by the bucket engine's elimination dispatch.
func Marginalize(f Factor, vs variable.Set, op Operator) Factor {
	switch op {
	case SumOp:
		return SumMarginal(f, vs)
	case MaxOp:
		return MaxMarginal(f, vs)
	case MinOp:
		return MinMarginal(f, vs)
	default:
		return SumMarginal(f, vs)
	}
}

// Slice fixes variable x to value val, dropping it from the scope.
// If x is not in f's scope, Slice returns f unchanged (scope(f)\{x} == scope(f)).
func Slice(f Factor, x variable.Variable, val int) Factor {
	if !f.scope.ContainsIndex(x.Index()) {
		return f
	}
	resultScope := f.scope.Subtract(variable.NewSet(x))
	resultStrides, resultSize := buildStrides(resultScope)
	resultVars := resultScope.Slice()

	entries := make([]float64, resultSize)
	vars := f.scope.Slice()
	config := make(map[int]int, len(vars))
	for idx := 0; idx < len(f.entries); idx++ {
		decode(vars, idx, config)
		if config[x.Index()] != val {
			continue
		}
		ri := 0
		for _, v := range resultVars {
			ri += config[v.Index()] * resultStrides[v.Index()]
		}
		entries[ri] = f.entries[idx]
	}

	return Factor{scope: resultScope, entries: entries, strides: resultStrides, typ: f.typ}
}

// ScalarMax returns the maximum entry across f's entire table, regardless
// of scope. For a scalar factor this is simply its one entry.
func ScalarMax(f Factor) float64 {
	max := math.Inf(-1)
	for _, e := range f.entries {
		if e > max {
			max = e
		}
	}
	return max
}
