package variable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vareng/bucketelim/variable"
)

func mustVar(t *testing.T, idx, card int, kind variable.Kind) variable.Variable {
	v, err := variable.New(idx, card, kind)
	require.NoError(t, err)
	return v
}

func TestNewSet_SortsAndDedups(t *testing.T) {
	v2 := mustVar(t, 2, 2, variable.Chance)
	v0 := mustVar(t, 0, 2, variable.Chance)
	v1 := mustVar(t, 1, 2, variable.Chance)
	dup := mustVar(t, 1, 5, variable.Decision) // same index as v1, different card

	s := variable.NewSet(v2, v0, v1, dup)
	require.Equal(t, 3, s.Len())

	got := s.Slice()
	require.Equal(t, []int{0, 1, 2}, []int{got[0].Index(), got[1].Index(), got[2].Index()})
	// first occurrence wins
	require.Equal(t, 2, got[1].Card())
}

func TestSet_ContainsAndGet(t *testing.T) {
	v0 := mustVar(t, 0, 2, variable.Chance)
	v1 := mustVar(t, 1, 3, variable.Decision)
	s := variable.NewSet(v0, v1)

	require.True(t, s.Contains(v0))
	require.True(t, s.ContainsIndex(1))
	require.False(t, s.ContainsIndex(7))

	got, ok := s.Get(1)
	require.True(t, ok)
	require.Equal(t, 3, got.Card())

	_, ok = s.Get(5)
	require.False(t, ok)
}

func TestSet_UnionIntersectSubtract(t *testing.T) {
	v0 := mustVar(t, 0, 2, variable.Chance)
	v1 := mustVar(t, 1, 2, variable.Chance)
	v2 := mustVar(t, 2, 2, variable.Chance)

	a := variable.NewSet(v0, v1)
	b := variable.NewSet(v1, v2)

	u := a.Union(b)
	require.Equal(t, 3, u.Len())

	i := a.Intersect(b)
	require.Equal(t, 1, i.Len())
	require.True(t, i.ContainsIndex(1))

	d := a.Subtract(b)
	require.Equal(t, 1, d.Len())
	require.True(t, d.ContainsIndex(0))
}

func TestSet_SubsetAndEqual(t *testing.T) {
	v0 := mustVar(t, 0, 2, variable.Chance)
	v1 := mustVar(t, 1, 2, variable.Chance)

	a := variable.NewSet(v0)
	b := variable.NewSet(v0, v1)

	require.True(t, a.Subset(b))
	require.False(t, b.Subset(a))
	require.False(t, a.Equal(b))
	require.True(t, a.Equal(variable.NewSet(v0)))
}

func TestSet_EmptyIsZeroValue(t *testing.T) {
	var s variable.Set
	require.Equal(t, 0, s.Len())
	require.False(t, s.ContainsIndex(0))
}
