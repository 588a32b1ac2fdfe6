package engine

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proofscript/lispcore/core"
	"github.com/proofscript/lispcore/host"
)

func newTestContext() *Context {
	atoms := host.NewAtomTable()
	return NewContext(Host{
		Atoms:   atoms,
		Printer: host.NewPrinter(atoms),
		Diag:    host.NewDiagSink(),
		Elab:    host.NewElaborator(),
	})
}

func TestEvaluateConstAndList(t *testing.T) {
	c := newTestContext()
	v, err := c.Evaluate(&core.IRList{Elems: []core.IR{
		&core.IRConst{Value: core.NewNumber(1)},
		&core.IRConst{Value: core.NewNumber(2)},
	}})
	require.NoError(t, err)
	require.True(t, core.Equal(v, core.List{Elems: []core.Value{core.NewNumber(1), core.NewNumber(2)}}))
}

func TestEvaluateIfBranches(t *testing.T) {
	c := newTestContext()
	ir := &core.IRIf{
		Cond: &core.IRConst{Value: core.Bool(true)},
		Then: &core.IRConst{Value: core.String("yes")},
		Else: &core.IRConst{Value: core.String("no")},
	}
	v, err := c.Evaluate(ir)
	require.NoError(t, err)
	require.Equal(t, core.String("yes"), v)

	ir.Cond = &core.IRConst{Value: core.Bool(false)}
	v, err = c.Evaluate(ir)
	require.NoError(t, err)
	require.Equal(t, core.String("no"), v)
}

func TestEvaluateGlobalDefPersistsAcrossEvaluateCalls(t *testing.T) {
	c := newTestContext()
	atom := c.Host().Atoms.GetAtom("x")

	_, err := c.Evaluate(&core.IRDef{
		Binding: &core.DefBinding{Atom: atom},
		Value:   &core.IRConst{Value: core.NewNumber(42)},
	})
	require.NoError(t, err)

	v, err := c.Evaluate(&core.IRGlobal{Atom: atom})
	require.NoError(t, err)
	require.True(t, core.Equal(v, core.NewNumber(42)))
}

func TestEvaluateLocalDefInSequenceIsVisibleToLaterForms(t *testing.T) {
	c := newTestContext()
	atom := c.Host().Atoms.GetAtom("unused")
	_ = atom

	seq := &core.IREval{Elems: []core.IR{
		&core.IRDef{Value: &core.IRConst{Value: core.NewNumber(1)}},
		&core.IRLocal{Index: 0},
	}}
	v, err := c.Evaluate(seq)
	require.NoError(t, err)
	require.True(t, core.Equal(v, core.NewNumber(1)))
}

func TestEvaluateUnknownGlobalFails(t *testing.T) {
	c := newTestContext()
	atom := c.Host().Atoms.GetAtom("never-bound")
	_, err := c.Evaluate(&core.IRGlobal{Atom: atom})
	require.Error(t, err)
}

func TestEvaluateUnresolvedFocusIsUnimplemented(t *testing.T) {
	c := newTestContext()
	_, err := c.Evaluate(&core.IRFocus{})
	require.Error(t, err)
}

// Applying a Lambda in tail position replaces the enclosing activation
// frame rather than growing the stack, so a deeply "recursive" tail
// loop runs in bounded control-stack depth.
func TestTailRecursiveLambdaDoesNotGrowStack(t *testing.T) {
	c := newTestContext()
	c.SetMaxStackDepth(64)

	// (fn (n acc) (if (= n 0) acc (self (- n 1) (+ acc 1))))
	// built by hand: Local 0 = self (captured), Local 1 = n, Local 2 = acc.
	body := &core.IRIf{
		Cond: &core.IRApp{
			Fn:   &core.IRConst{Value: core.Proc{P: &core.Builtin{Tag: core.BEq}}},
			Args: []core.IR{&core.IRLocal{Index: 1}, &core.IRConst{Value: core.NewNumber(0)}},
		},
		Then: &core.IRLocal{Index: 2},
		Else: &core.IRApp{
			Fn: &core.IRLocal{Index: 0},
			Args: []core.IR{
				&core.IRApp{
					Fn:   &core.IRConst{Value: core.Proc{P: &core.Builtin{Tag: core.BSub}}},
					Args: []core.IR{&core.IRLocal{Index: 1}, &core.IRConst{Value: core.NewNumber(1)}},
				},
				&core.IRApp{
					Fn:   &core.IRConst{Value: core.Proc{P: &core.Builtin{Tag: core.BAdd}}},
					Args: []core.IR{&core.IRLocal{Index: 2}, &core.IRConst{Value: core.NewNumber(1)}},
				},
			},
		},
	}

	savedEq, savedSub, savedAdd := BuiltinDispatch[core.BEq], BuiltinDispatch[core.BSub], BuiltinDispatch[core.BAdd]
	defer func() {
		BuiltinDispatch[core.BEq] = savedEq
		BuiltinDispatch[core.BSub] = savedSub
		BuiltinDispatch[core.BAdd] = savedAdd
	}()

	BuiltinDispatch[core.BEq] = func(c *Context, sp1, sp2 core.FileSpan, args []core.Value) (State, error) {
		a, aok := core.Unwrap(args[0]).(core.Number)
		b, bok := core.Unwrap(args[1]).(core.Number)
		return c.Ret(core.Bool(aok && bok && a.Int.Cmp(b.Int) == 0)), nil
	}
	BuiltinDispatch[core.BSub] = func(c *Context, sp1, sp2 core.FileSpan, args []core.Value) (State, error) {
		a := core.Unwrap(args[0]).(core.Number)
		b := core.Unwrap(args[1]).(core.Number)
		return c.Ret(core.Number{Int: new(big.Int).Sub(a.Int, b.Int)}), nil
	}
	BuiltinDispatch[core.BAdd] = func(c *Context, sp1, sp2 core.FileSpan, args []core.Value) (State, error) {
		a := core.Unwrap(args[0]).(core.Number)
		b := core.Unwrap(args[1]).(core.Number)
		return c.Ret(core.Number{Int: new(big.Int).Add(a.Int, b.Int)}), nil
	}

	lambda := &core.Lambda{Spec: core.ExactSpec(2), Code: body}
	// self-reference: captured env slot 0 holds the lambda itself, achieved
	// by constructing the closure then splicing it into its own Env.
	lambda.Env = []core.Value{core.Proc{P: lambda}}

	v, err := c.CallFunc(core.FileSpan{}, core.Proc{P: lambda}, []core.Value{core.NewNumber(5000), core.NewNumber(0)})
	require.NoError(t, err)
	require.True(t, core.Equal(v, core.NewNumber(5000)))
}
