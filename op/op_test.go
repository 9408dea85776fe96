package op

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupRoundTrip(t *testing.T) {
	for _, lit := range []string{"+", "-", "*", "/", "%", "&&", "||"} {
		bop, ok := LookupBinaryOp(lit)
		require.True(t, ok, lit)
		require.Equal(t, lit, bop.String())
	}
	for _, lit := range []string{"<", "<=", "==", ">", ">="} {
		cop, ok := LookupCompareOp(lit)
		require.True(t, ok, lit)
		require.Equal(t, lit, cop.String())
	}
	for _, lit := range []string{",", ".", ";"} {
		sop, ok := LookupStackOp(lit)
		require.True(t, ok, lit)
		require.Equal(t, lit, sop.String())
	}
}

func TestLookupMisses(t *testing.T) {
	_, ok := LookupBinaryOp("==")
	require.False(t, ok)
	_, ok = LookupCompareOp("+")
	require.False(t, ok)
	_, ok = LookupStackOp(":")
	require.False(t, ok)
	require.Equal(t, "", BinaryOpType(99).String())
}

func TestCategory(t *testing.T) {
	require.Equal(t, "arithmetic", Arithmetic.String())
	require.Equal(t, "logical", Logical.String())
	require.Equal(t, "stack", Stack.String())
	require.Equal(t, "unknown", Category(0).String())
}
