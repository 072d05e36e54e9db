package factor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vareng/bucketelim/factor"
	"github.com/vareng/bucketelim/variable"
)

func TestProduct_DisjointScopes_OuterProduct(t *testing.T) {
	a := mustVar(t, 0, 2, variable.Chance)
	b := mustVar(t, 1, 2, variable.Chance)

	fa, err := factor.New(variable.NewSet(a), []float64{2, 3}, factor.Probability)
	require.NoError(t, err)
	fb, err := factor.New(variable.NewSet(b), []float64{5, 7}, factor.Probability)
	require.NoError(t, err)

	p, err := factor.Product(fa, fb)
	require.NoError(t, err)
	require.Equal(t, 4, p.NumEntries())
	require.Equal(t, 10.0, p.At(map[int]int{0: 0, 1: 0})) // 2*5
	require.Equal(t, 15.0, p.At(map[int]int{0: 1, 1: 0})) // 3*5
	require.Equal(t, 14.0, p.At(map[int]int{0: 0, 1: 1})) // 2*7
	require.Equal(t, 21.0, p.At(map[int]int{0: 1, 1: 1})) // 3*7
}

func TestProduct_ScopeMismatch(t *testing.T) {
	a2 := mustVar(t, 0, 2, variable.Chance)
	a3 := mustVar(t, 0, 3, variable.Chance)

	fa, _ := factor.New(variable.NewSet(a2), []float64{1, 2}, factor.Probability)
	fb, _ := factor.New(variable.NewSet(a3), []float64{1, 2, 3}, factor.Probability)

	_, err := factor.Product(fa, fb)
	require.ErrorIs(t, err, factor.ErrScopeMismatch)
}

func TestSum_OverlappingScope(t *testing.T) {
	a := mustVar(t, 0, 2, variable.Chance)
	b := mustVar(t, 1, 2, variable.Chance)

	fa, _ := factor.New(variable.NewSet(a, b), []float64{1, 2, 3, 4}, factor.Utility)
	fb, _ := factor.New(variable.NewSet(a), []float64{10, 20}, factor.Utility)

	s, err := factor.Sum(fa, fb)
	require.NoError(t, err)
	require.Equal(t, 11.0, s.At(map[int]int{0: 0, 1: 0}))
	require.Equal(t, 22.0, s.At(map[int]int{0: 1, 1: 0}))
	require.Equal(t, 13.0, s.At(map[int]int{0: 0, 1: 1}))
	require.Equal(t, 24.0, s.At(map[int]int{0: 1, 1: 1}))
}

func TestQuotient_ZeroOverZeroIsZero(t *testing.T) {
	a := mustVar(t, 0, 2, variable.Chance)
	num, _ := factor.New(variable.NewSet(a), []float64{0, 4}, factor.Utility)
	den, _ := factor.New(variable.NewSet(a), []float64{0, 2}, factor.Probability)

	q, err := factor.Quotient(num, den)
	require.NoError(t, err)
	require.Equal(t, 0.0, q.At(map[int]int{0: 0}))
	require.Equal(t, 2.0, q.At(map[int]int{0: 1}))
}

func TestQuotient_NonZeroOverZeroIsError(t *testing.T) {
	a := mustVar(t, 0, 2, variable.Chance)
	num, _ := factor.New(variable.NewSet(a), []float64{5, 4}, factor.Utility)
	den, _ := factor.New(variable.NewSet(a), []float64{0, 2}, factor.Probability)

	_, err := factor.Quotient(num, den)
	require.ErrorIs(t, err, factor.ErrDivideByZero)
}

func TestSumMarginal(t *testing.T) {
	a := mustVar(t, 0, 2, variable.Chance)
	b := mustVar(t, 1, 2, variable.Chance)
	f, _ := factor.New(variable.NewSet(a, b), []float64{1, 2, 3, 4}, factor.Probability)

	out := factor.SumMarginal(f, variable.NewSet(a))
	require.Equal(t, 1, out.Scope().Len())
	require.Equal(t, 3.0, out.At(map[int]int{1: 0}))  // 1+2
	require.Equal(t, 7.0, out.At(map[int]int{1: 1}))  // 3+4
}

func TestSumMarginal_NoOpWhenDisjoint(t *testing.T) {
	a := mustVar(t, 0, 2, variable.Chance)
	other := mustVar(t, 9, 2, variable.Chance)
	f, _ := factor.New(variable.NewSet(a), []float64{1, 2}, factor.Probability)

	out := factor.SumMarginal(f, variable.NewSet(other))
	require.True(t, out.Scope().Equal(f.Scope()))
	require.Equal(t, f.Entries(), out.Entries())
}

func TestMaxMarginal(t *testing.T) {
	a := mustVar(t, 0, 2, variable.Chance)
	b := mustVar(t, 1, 2, variable.Chance)
	f, _ := factor.New(variable.NewSet(a, b), []float64{1, 5, 3, 2}, factor.Utility)

	out := factor.MaxMarginal(f, variable.NewSet(a))
	require.Equal(t, 5.0, out.At(map[int]int{1: 0})) // max(1,5)
	require.Equal(t, 3.0, out.At(map[int]int{1: 1})) // max(3,2)
}

func TestMinMarginal(t *testing.T) {
	a := mustVar(t, 0, 2, variable.Chance)
	b := mustVar(t, 1, 2, variable.Chance)
	f, _ := factor.New(variable.NewSet(a, b), []float64{1, 5, 3, 2}, factor.Utility)

	out := factor.MinMarginal(f, variable.NewSet(a))
	require.Equal(t, 1.0, out.At(map[int]int{1: 0})) // min(1,5)
	require.Equal(t, 2.0, out.At(map[int]int{1: 1})) // min(3,2)
}

func TestMarginalize_Dispatch(t *testing.T) {
	a := mustVar(t, 0, 2, variable.Chance)
	b := mustVar(t, 1, 2, variable.Chance)
	f, _ := factor.New(variable.NewSet(a, b), []float64{1, 5, 3, 2}, factor.Utility)

	sumOut := factor.Marginalize(f, variable.NewSet(a), factor.SumOp)
	require.Equal(t, 6.0, sumOut.At(map[int]int{1: 0}))

	maxOut := factor.Marginalize(f, variable.NewSet(a), factor.MaxOp)
	require.Equal(t, 5.0, maxOut.At(map[int]int{1: 0}))

	minOut := factor.Marginalize(f, variable.NewSet(a), factor.MinOp)
	require.Equal(t, 1.0, minOut.At(map[int]int{1: 0}))
}

func TestSlice(t *testing.T) {
	a := mustVar(t, 0, 2, variable.Chance)
	b := mustVar(t, 1, 2, variable.Decision)
	f, _ := factor.New(variable.NewSet(a, b), []float64{1, 2, 3, 4}, factor.Probability)

	sliced := factor.Slice(f, b, 0)
	require.Equal(t, 1, sliced.Scope().Len())
	require.Equal(t, 1.0, sliced.At(map[int]int{0: 0}))
	require.Equal(t, 2.0, sliced.At(map[int]int{0: 1}))

	sliced1 := factor.Slice(f, b, 1)
	require.Equal(t, 3.0, sliced1.At(map[int]int{0: 0}))
	require.Equal(t, 4.0, sliced1.At(map[int]int{0: 1}))
}

func TestSlice_NoOpIfNotInScope(t *testing.T) {
	a := mustVar(t, 0, 2, variable.Chance)
	other := mustVar(t, 5, 2, variable.Decision)
	f, _ := factor.New(variable.NewSet(a), []float64{1, 2}, factor.Probability)

	out := factor.Slice(f, other, 0)
	require.True(t, out.Scope().Equal(f.Scope()))
}

func TestScalarMax(t *testing.T) {
	a := mustVar(t, 0, 3, variable.Chance)
	f, _ := factor.New(variable.NewSet(a), []float64{-1, 4, 2}, factor.Utility)
	require.Equal(t, 4.0, factor.ScalarMax(f))

	scalar := factor.NewScalar(9, factor.Utility)
	require.Equal(t, 9.0, factor.ScalarMax(scalar))
}
