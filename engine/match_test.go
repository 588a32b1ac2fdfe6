package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proofscript/lispcore/core"
)

// (match 3 (n n)) — a single bound-variable pattern always matches.
func TestMatchBoundVariableBindsScrutinee(t *testing.T) {
	c := newTestContext()
	ir := &core.IRMatch{
		Scrutinee: &core.IRConst{Value: core.NewNumber(3)},
		Branches: []core.Branch{
			{Pat: core.PatAtom{Slot: 0}, Vars: 1, Eval: &core.IRLocal{Index: 0}},
		},
	}
	v, err := c.Evaluate(ir)
	require.NoError(t, err)
	require.True(t, core.Equal(v, core.NewNumber(3)))
}

// First branch's literal fails to match 5, falling through to the second.
func TestMatchFallsThroughToNextBranch(t *testing.T) {
	c := newTestContext()
	ir := &core.IRMatch{
		Scrutinee: &core.IRConst{Value: core.NewNumber(5)},
		Branches: []core.Branch{
			{Pat: core.PatNumber{Value: core.NewNumber(1)}, Eval: &core.IRConst{Value: core.String("one")}},
			{Pat: core.PatSkip{}, Eval: &core.IRConst{Value: core.String("other")}},
		},
	}
	v, err := c.Evaluate(ir)
	require.NoError(t, err)
	require.Equal(t, core.String("other"), v)
}

func TestMatchExhaustedBranchesFails(t *testing.T) {
	c := newTestContext()
	ir := &core.IRMatch{
		Scrutinee: &core.IRConst{Value: core.NewNumber(5)},
		Branches: []core.Branch{
			{Pat: core.PatNumber{Value: core.NewNumber(1)}, Eval: &core.IRConst{Value: core.Undef}},
		},
	}
	_, err := c.Evaluate(ir)
	require.Error(t, err)
}

// (match '(1 2 3) ((list a b c) (+ a b c))) exercises PatList binding
// against a proper list of the exact expected length.
func TestMatchListPatternBindsElementsInOrder(t *testing.T) {
	c := newTestContext()
	saved := BuiltinDispatch[core.BAdd]
	defer func() { BuiltinDispatch[core.BAdd] = saved }()
	BuiltinDispatch[core.BAdd] = func(c *Context, sp1, sp2 core.FileSpan, args []core.Value) (State, error) {
		sum := int64(0)
		for _, a := range args {
			sum += core.Unwrap(a).(core.Number).Int.Int64()
		}
		return c.Ret(core.NewNumber(sum)), nil
	}

	scrutinee := core.List{Elems: []core.Value{core.NewNumber(1), core.NewNumber(2), core.NewNumber(3)}}
	ir := &core.IRMatch{
		Scrutinee: &core.IRConst{Value: scrutinee},
		Branches: []core.Branch{{
			Pat: core.PatList{Elems: []core.Pattern{
				core.PatAtom{Slot: 0}, core.PatAtom{Slot: 1}, core.PatAtom{Slot: 2},
			}},
			Vars: 3,
			Eval: &core.IRApp{
				Fn:   &core.IRConst{Value: core.Proc{P: &core.Builtin{Tag: core.BAdd}}},
				Args: []core.IR{&core.IRLocal{Index: 0}, &core.IRLocal{Index: 1}, &core.IRLocal{Index: 2}},
			},
		}},
	}
	v, err := c.Evaluate(ir)
	require.NoError(t, err)
	require.True(t, core.Equal(v, core.NewNumber(6)))
}

// A (=> k) continuation branch calls its bound continuation with no
// arguments, falling through to resume matching against the remaining
// branches (spec 4.5).
func TestMatchContinuationResumesRestBranches(t *testing.T) {
	c := newTestContext()
	ir := &core.IRMatch{
		Scrutinee: &core.IRConst{Value: core.NewNumber(5)},
		Branches: []core.Branch{
			{Pat: core.PatSkip{}, Cont: true, Eval: &core.IRApp{Fn: &core.IRLocal{Index: 0}}},
			{Pat: core.PatNumber{Value: core.NewNumber(5)}, Eval: &core.IRConst{Value: core.String("fell-through")}},
		},
	}
	v, err := c.Evaluate(ir)
	require.NoError(t, err)
	require.Equal(t, core.String("fell-through"), v)
}

// A match continuation's dynamic extent ends when the branch that
// captured it returns; invoking it afterward reports "continuation has
// expired" rather than resuming (spec 4.2.2, 4.5) — true even if the
// continuation is never invoked while in scope, since the frame marking
// its extent is torn down on ordinary return too.
func TestMatchContinuationExpiresOnceScopeReturns(t *testing.T) {
	c := newTestContext()
	ir := &core.IRMatch{
		Scrutinee: &core.IRConst{Value: core.NewNumber(5)},
		Branches: []core.Branch{
			{Pat: core.PatSkip{}, Cont: true, Eval: &core.IRLocal{Index: 0}},
		},
	}
	v, err := c.Evaluate(ir)
	require.NoError(t, err)
	cont, ok := core.Unwrap(v).(core.Proc)
	require.True(t, ok)

	_, err = c.CallFunc(core.FileSpan{}, cont, nil)
	require.Error(t, err)
	var diag *core.Diagnostic
	require.ErrorAs(t, err, &diag)
	require.Equal(t, "continuation", diag.Kind)
}

// PatAnd/PatOr/PatNot compose sub-patterns the way spec 3.3 describes:
// And requires every element to match, Or requires one, Not negates.
func TestMatchAndOrNotPatterns(t *testing.T) {
	c := newTestContext()
	ir := &core.IRMatch{
		Scrutinee: &core.IRConst{Value: core.NewNumber(4)},
		Branches: []core.Branch{{
			Pat: core.PatAnd{Elems: []core.Pattern{
				core.PatOr{Elems: []core.Pattern{core.PatNumber{Value: core.NewNumber(1)}, core.PatNumber{Value: core.NewNumber(4)}}},
				core.PatNot{Elems: []core.Pattern{core.PatNumber{Value: core.NewNumber(1)}}},
				core.PatAtom{Slot: 0},
			}},
			Vars: 1,
			Eval: &core.IRLocal{Index: 0},
		}},
	}
	v, err := c.Evaluate(ir)
	require.NoError(t, err)
	require.True(t, core.Equal(v, core.NewNumber(4)))
}

// A Test pattern suspends the pattern machine to call back into the
// engine with a predicate bound at a fixed ctx slot, resuming only once
// that call returns (spec 4.4); a false predicate falls through like any
// other failed pattern.
func TestMatchTestPatternCallsBoundPredicate(t *testing.T) {
	c := newTestContext()
	saved := BuiltinDispatch[core.BIsNumber]
	defer func() { BuiltinDispatch[core.BIsNumber] = saved }()
	BuiltinDispatch[core.BIsNumber] = func(c *Context, sp1, sp2 core.FileSpan, args []core.Value) (State, error) {
		_, ok := core.Unwrap(args[0]).(core.Number)
		return c.Ret(core.Bool(ok)), nil
	}

	matchIR := &core.IRMatch{
		Scrutinee: &core.IRConst{Value: core.NewNumber(4)},
		Branches: []core.Branch{
			{
				Pat:  core.PatTest{Slot: 0, Elems: []core.Pattern{core.PatAtom{Slot: 0}}},
				Vars: 1,
				Eval: &core.IRLocal{Index: 1},
			},
			{Pat: core.PatSkip{}, Eval: &core.IRConst{Value: core.String("not-a-number")}},
		},
	}
	lambda := &core.Lambda{Spec: core.ExactSpec(1), Code: matchIR}
	isNumber := core.Proc{P: &core.Builtin{Tag: core.BIsNumber}}

	v, err := c.CallFunc(core.FileSpan{}, core.Proc{P: lambda}, []core.Value{isNumber})
	require.NoError(t, err)
	require.True(t, core.Equal(v, core.NewNumber(4)))

	BuiltinDispatch[core.BIsNumber] = func(c *Context, sp1, sp2 core.FileSpan, args []core.Value) (State, error) {
		return c.Ret(core.Bool(false)), nil
	}
	v, err = c.CallFunc(core.FileSpan{}, core.Proc{P: lambda}, []core.Value{isNumber})
	require.NoError(t, err)
	require.Equal(t, core.String("not-a-number"), v)
}

func TestMapProcMismatchedLengthsFail(t *testing.T) {
	c := newTestContext()
	identity := core.Proc{P: &core.Builtin{Tag: core.BAdd}}
	state := c.StartMap(core.FileSpan{}, core.FileSpan{}, identity, []core.Uncons{
		core.NewUncons(core.List{Elems: []core.Value{core.NewNumber(1), core.NewNumber(2)}}),
		core.NewUncons(core.List{Elems: []core.Value{core.NewNumber(1)}}),
	})
	_, err := c.run(state)
	require.Error(t, err)
}
