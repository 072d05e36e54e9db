package factor

import (
	"github.com/vareng/bucketelim/variable"
)

// Factor is a mapping from joint configurations of its Scope to
// real-valued entries, tagged Probability or Utility.
//
// The table is stored flat and addressed by a mixed-radix index: for
// scope variables sorted ascending by index v0,v1,...,vk-1 with strides
// s0=1, si = s(i-1)*card(v(i-1)), a configuration (c0,...,ck-1) lives at
// flat offset sum(ci*si). A scalar factor (empty scope) has exactly one
// entry.
type Factor struct {
	scope   variable.Set
	entries []float64
	typ     Type
	strides map[int]int // variable index -> stride, derived from scope
}

// NewScalar builds a zero-variable Factor holding a single entry v.
func NewScalar(v float64, t Type) Factor {
	return Factor{
		scope:   variable.Set{},
		entries: []float64{v},
		typ:     t,
		strides: map[int]int{},
	}
}

// New builds a Factor over scope with the given flat table of entries.
// len(entries) must equal the product of scope's cardinalities, or
// ErrTableLength is returned.
func New(scope variable.Set, entries []float64, t Type) (Factor, error) {
	strides, size := buildStrides(scope)
	if size != len(entries) {
		return Factor{}, ErrTableLength
	}
	cp := make([]float64, len(entries))
	copy(cp, entries)
	return Factor{scope: scope, entries: cp, typ: t, strides: strides}, nil
}

// buildStrides computes the mixed-radix stride for each variable in scope
// (in canonical ascending order) and the total table size.
func buildStrides(scope variable.Set) (map[int]int, int) {
	vars := scope.Slice()
	strides := make(map[int]int, len(vars))
	size := 1
	for _, v := range vars {
		strides[v.Index()] = size
		size *= v.Card()
	}
	return strides, size
}

// Scope returns the factor's variable scope.
func (f Factor) Scope() variable.Set { return f.scope }

// Type returns the factor's semantic type tag.
func (f Factor) Type() Type { return f.typ }

// WithType returns a copy of f re-tagged with t. Binary algebra operators
// leave the result's tag at its zero value, Probability (see combine); callers (the
// bucket engine) use WithType to set it explicitly before storing a
// message.
func (f Factor) WithType(t Type) Factor {
	f.typ = t
	return f
}

// NumEntries returns the number of entries in the factor's table
// (the product of its scope's cardinalities; 1 for a scalar factor).
func (f Factor) NumEntries() int { return len(f.entries) }

// Entries returns the factor's flat table. The returned slice is owned
// by the caller; mutating it does not affect f.
func (f Factor) Entries() []float64 {
	out := make([]float64, len(f.entries))
	copy(out, f.entries)
	return out
}

// At returns the entry for the given assignment, a map from variable
// index to domain value, for every variable in f's scope. Variables in
// config not present in f's scope are ignored.
func (f Factor) At(config map[int]int) float64 {
	return f.entries[f.flatIndex(config)]
}

// flatIndex computes f's table offset for the given joint assignment.
func (f Factor) flatIndex(config map[int]int) int {
	idx := 0
	for varIdx, stride := range f.strides {
		idx += config[varIdx] * stride
	}
	return idx
}

// IsScalar reports whether f has an empty scope (a single entry).
func (f Factor) IsScalar() bool { return f.scope.Len() == 0 }

// ScalarValue returns the single entry of a scalar factor. The caller
// must ensure f is scalar (IsScalar()); behavior is undefined otherwise
// for non-scalar f with at least one entry, it returns entries[0].
func (f Factor) ScalarValue() float64 { return f.entries[0] }
