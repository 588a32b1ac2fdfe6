package builtins

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proofscript/lispcore/core"
	"github.com/proofscript/lispcore/host"
)

func TestBuiltinDisplayPushesInfoDiagnostic(t *testing.T) {
	atoms := host.NewAtomTable()
	diag := host.NewDiagSink()
	c := newContextWith(atoms, diag, host.NewElaborator())

	_, err := c.CallFunc(core.FileSpan{}, core.Proc{P: &core.Builtin{Tag: core.BDisplay}}, []core.Value{core.String("hi")})
	require.NoError(t, err)

	pushed := diag.Drain()
	require.Len(t, pushed, 1)
	require.Equal(t, core.Info, pushed[0].Level)
	require.Equal(t, "hi", pushed[0].Error())
}

func TestBuiltinErrorRaisesUserDiagnostic(t *testing.T) {
	c := newTestContext()
	_, err := c.CallFunc(core.FileSpan{}, core.Proc{P: &core.Builtin{Tag: core.BError}}, []core.Value{core.String("boom")})
	require.Error(t, err)

	d, ok := err.(*core.Diagnostic)
	require.True(t, ok)
	require.Equal(t, "user", d.Kind)
}

func TestBuiltinAsyncIsSynchronous(t *testing.T) {
	plus := core.Proc{P: &core.Builtin{Tag: core.BAdd}}
	got := call(t, core.BAsync, append([]core.Value{plus}, nums(1, 2, 3)...))
	require.True(t, core.Equal(got, core.NewNumber(6)))
}

func TestBuiltinElaboratorGetGoalsAndAddThm(t *testing.T) {
	atoms := host.NewAtomTable()
	elab := host.NewElaborator()
	elab.PushGoal(core.Goal{Type: core.NewNumber(1)})

	c := newContextWith(atoms, host.NewDiagSink(), elab)

	goals, err := c.CallFunc(core.FileSpan{}, core.Proc{P: &core.Builtin{Tag: core.BGetGoals}}, nil)
	require.NoError(t, err)
	require.True(t, core.Equal(goals, core.List{Elems: []core.Value{core.Goal{Type: core.NewNumber(1)}}}))

	name := core.Atom{ID: atoms.GetAtom("thm1")}
	_, err = c.CallFunc(core.FileSpan{}, core.Proc{P: &core.Builtin{Tag: core.BAddThm}}, []core.Value{name, core.NewNumber(1)})
	require.NoError(t, err)

	goals, err = c.CallFunc(core.FileSpan{}, core.Proc{P: &core.Builtin{Tag: core.BGetGoals}}, nil)
	require.NoError(t, err)
	require.True(t, core.Equal(goals, core.List{}))
}

func TestBuiltinInferTypeUnimplementedYieldsUndefAndDiagnostic(t *testing.T) {
	atoms := host.NewAtomTable()
	elab := host.NewElaborator()
	diag := host.NewDiagSink()

	c := newContextWith(atoms, diag, elab)
	got, err := c.CallFunc(core.FileSpan{}, core.Proc{P: &core.Builtin{Tag: core.BInferType}}, nil)
	require.NoError(t, err)
	require.Equal(t, core.Undef, got)

	pushed := diag.Drain()
	require.Len(t, pushed, 1)
	require.Equal(t, core.Info, pushed[0].Level)
}
