package ports

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCombinedStateOf(t *testing.T) {
	cases := []struct {
		v4Down, v6Down bool
		want           CombinedState
	}{
		{false, false, StateHealthy},
		{true, false, StateV4Down},
		{false, true, StateV6Down},
		{true, true, StateFullyDown},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, CombinedStateOf(tc.v4Down, tc.v6Down))
	}
}

func TestCombinedState_FamilyDown(t *testing.T) {
	require.False(t, StateHealthy.FamilyDown(FamilyV4))
	require.False(t, StateHealthy.FamilyDown(FamilyV6))

	require.True(t, StateV4Down.FamilyDown(FamilyV4))
	require.False(t, StateV4Down.FamilyDown(FamilyV6))

	require.False(t, StateV6Down.FamilyDown(FamilyV4))
	require.True(t, StateV6Down.FamilyDown(FamilyV6))

	require.True(t, StateFullyDown.FamilyDown(FamilyV4))
	require.True(t, StateFullyDown.FamilyDown(FamilyV6))
}
