package builtins

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proofscript/lispcore/core"
)

func TestBuiltinToStringVariants(t *testing.T) {
	require.Equal(t, core.String("3"), call(t, core.BToString, []core.Value{core.NewNumber(3)}))
	require.Equal(t, core.String("hi"), call(t, core.BToString, []core.Value{core.String("hi")}))
	require.Equal(t, core.String("pending"), call(t, core.BToString, []core.Value{core.UnparsedFormula{Text: "pending"}}))
}

// ToString on an Atom renders its interned name (spec 4.3), via
// core.AsAtomString rather than a hand-rolled table lookup.
func TestBuiltinToStringOnAtom(t *testing.T) {
	c := newTestContext()
	atom := core.Atom{ID: c.Host().Atoms.GetAtom("foo")}
	v, err := c.CallFunc(core.FileSpan{}, core.Proc{P: &core.Builtin{Tag: core.BToString}}, []core.Value{atom})
	require.NoError(t, err)
	require.Equal(t, core.String("foo"), v)
}

func TestBuiltinStringToAtomRoundTrips(t *testing.T) {
	c := newTestContext()
	v, err := c.CallFunc(core.FileSpan{}, core.Proc{P: &core.Builtin{Tag: core.BStringToAtom}}, []core.Value{core.String("foo")})
	require.NoError(t, err)
	atom, ok := v.(core.Atom)
	require.True(t, ok)
	require.Equal(t, "foo", c.Host().Atoms.Name(atom.ID))
}

func TestBuiltinStringAppend(t *testing.T) {
	got := call(t, core.BStringAppend, []core.Value{core.String("a"), core.String("b"), core.String("c")})
	require.Equal(t, core.String("abc"), got)
}

func TestBuiltinStringAppendEmpty(t *testing.T) {
	require.Equal(t, core.String(""), call(t, core.BStringAppend, nil))
}
