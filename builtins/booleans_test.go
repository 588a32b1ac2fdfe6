package builtins

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proofscript/lispcore/core"
)

func bools(bs ...bool) []core.Value {
	out := make([]core.Value, len(bs))
	for i, b := range bs {
		out[i] = core.Bool(b)
	}
	return out
}

func TestBuiltinAnd(t *testing.T) {
	require.Equal(t, core.Bool(true), call(t, core.BAnd, bools(true, true)))
	require.Equal(t, core.Bool(false), call(t, core.BAnd, bools(true, false)))
	require.Equal(t, core.Bool(true), call(t, core.BAnd, nil))
}

func TestBuiltinOr(t *testing.T) {
	require.Equal(t, core.Bool(true), call(t, core.BOr, bools(false, true)))
	require.Equal(t, core.Bool(false), call(t, core.BOr, bools(false, false)))
	require.Equal(t, core.Bool(false), call(t, core.BOr, nil))
}

func TestBuiltinNotIsNorOverAllArgs(t *testing.T) {
	require.Equal(t, core.Bool(true), call(t, core.BNot, bools(false, false)))
	require.Equal(t, core.Bool(false), call(t, core.BNot, bools(false, true)))
}
