package variable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vareng/bucketelim/variable"
)

func TestNew_Valid(t *testing.T) {
	v, err := variable.New(3, 2, variable.Chance)
	require.NoError(t, err)
	require.Equal(t, 3, v.Index())
	require.Equal(t, 2, v.Card())
	require.Equal(t, variable.Chance, v.Kind())
}

func TestNew_NegativeIndex(t *testing.T) {
	_, err := variable.New(-1, 2, variable.Chance)
	require.ErrorIs(t, err, variable.ErrNegativeIndex)
}

func TestNew_BadCardinality(t *testing.T) {
	_, err := variable.New(0, 0, variable.Chance)
	require.ErrorIs(t, err, variable.ErrBadCardinality)

	_, err = variable.New(0, -3, variable.Decision)
	require.ErrorIs(t, err, variable.ErrBadCardinality)
}

func TestKind_String(t *testing.T) {
	cases := []struct {
		kind variable.Kind
		want string
	}{
		{variable.Chance, "c"},
		{variable.Decision, "d"},
		{variable.Value, "v"},
		{variable.Kind(99), "?"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.kind.String())
	}
}
