package variable

import "sort"

// Set is an ordered-by-index collection of Variables with no duplicates.
// The zero value is an empty Set ready to use.
//
// Complexity: construction from n variables is O(n log n); membership
// tests are O(log n) via binary search over the canonical ordering.
type Set struct {
	vars []Variable
}

// NewSet builds a Set from the given variables, sorting by index and
// dropping duplicates (by index).
func NewSet(vars ...Variable) Set {
	if len(vars) == 0 {
		return Set{}
	}
	cp := make([]Variable, len(vars))
	copy(cp, vars)
	sort.Slice(cp, func(i, j int) bool { return cp[i].index < cp[j].index })

	out := cp[:1]
	for _, v := range cp[1:] {
		if out[len(out)-1].index == v.index {
			continue
		}
		out = append(out, v)
	}
	return Set{vars: out}
}

// Len returns the number of variables in the set.
func (s Set) Len() int { return len(s.vars) }

// Slice returns the set's variables in canonical (index-ascending) order.
// The returned slice is owned by the caller; mutating it does not affect s.
func (s Set) Slice() []Variable {
	out := make([]Variable, len(s.vars))
	copy(out, s.vars)
	return out
}

// Contains reports whether v (matched by index) is a member of s.
func (s Set) Contains(v Variable) bool {
	return s.ContainsIndex(v.index)
}

// ContainsIndex reports whether a variable with the given index is a member of s.
func (s Set) ContainsIndex(index int) bool {
	i := sort.Search(len(s.vars), func(i int) bool { return s.vars[i].index >= index })
	return i < len(s.vars) && s.vars[i].index == index
}

// Get returns the member variable with the given index and true, or the
// zero Variable and false if no such member exists.
func (s Set) Get(index int) (Variable, bool) {
	i := sort.Search(len(s.vars), func(i int) bool { return s.vars[i].index >= index })
	if i < len(s.vars) && s.vars[i].index == index {
		return s.vars[i], true
	}
	return Variable{}, false
}

// Union returns the set of variables present in either s or other.
func (s Set) Union(other Set) Set {
	merged := make([]Variable, 0, len(s.vars)+len(other.vars))
	merged = append(merged, s.vars...)
	merged = append(merged, other.vars...)
	return NewSet(merged...)
}

// Intersect returns the set of variables present in both s and other.
func (s Set) Intersect(other Set) Set {
	out := make([]Variable, 0, minInt(len(s.vars), len(other.vars)))
	i, j := 0, 0
	for i < len(s.vars) && j < len(other.vars) {
		switch {
		case s.vars[i].index < other.vars[j].index:
			i++
		case s.vars[i].index > other.vars[j].index:
			j++
		default:
			out = append(out, s.vars[i])
			i++
			j++
		}
	}
	return NewSet(out...)
}

// Subtract returns the set of variables in s that are not in other.
func (s Set) Subtract(other Set) Set {
	out := make([]Variable, 0, len(s.vars))
	for _, v := range s.vars {
		if !other.Contains(v) {
			out = append(out, v)
		}
	}
	return NewSet(out...)
}

// Subset reports whether every variable in s is also a member of other.
func (s Set) Subset(other Set) bool {
	for _, v := range s.vars {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// Equal reports whether s and other contain exactly the same variables.
func (s Set) Equal(other Set) bool {
	if len(s.vars) != len(other.vars) {
		return false
	}
	for i := range s.vars {
		if s.vars[i].index != other.vars[i].index {
			return false
		}
	}
	return true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
