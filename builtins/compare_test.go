package builtins

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proofscript/lispcore/core"
)

func TestBuiltinChainedComparisons(t *testing.T) {
	require.Equal(t, core.Bool(true), call(t, core.BLt, nums(1, 2, 3)))
	require.Equal(t, core.Bool(false), call(t, core.BLt, nums(1, 3, 2)))
	require.Equal(t, core.Bool(true), call(t, core.BLe, nums(1, 1, 2)))
	require.Equal(t, core.Bool(true), call(t, core.BEq, nums(2, 2, 2)))
	require.Equal(t, core.Bool(false), call(t, core.BEq, nums(2, 2, 3)))
}

func TestBuiltinComparisonVacuouslyTrueOnSingleArg(t *testing.T) {
	require.Equal(t, core.Bool(true), call(t, core.BLt, nums(1)))
}

func TestBuiltinGtGe(t *testing.T) {
	require.Equal(t, core.Bool(true), call(t, core.BGt, nums(3, 2, 1)))
	require.Equal(t, core.Bool(true), call(t, core.BGe, nums(3, 3, 1)))
}
