package engine_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	_ "github.com/proofscript/lispcore/builtins"
	"github.com/proofscript/lispcore/core"
	"github.com/proofscript/lispcore/engine"
	"github.com/proofscript/lispcore/host"
)

func newScenarioContext() (*engine.Context, *host.AtomTable, *host.DiagSink) {
	atoms := host.NewAtomTable()
	diag := host.NewDiagSink()
	c := engine.NewContext(engine.Host{
		Atoms:   atoms,
		Printer: host.NewPrinter(atoms),
		Diag:    diag,
		Elab:    host.NewElaborator(),
	})
	return c, atoms, diag
}

// valueEqual lets go-cmp walk arbitrary Value trees by deferring every
// leaf comparison to the evaluator's own Equal, instead of reflecting
// into Number's *big.Int or AtomMap's unexported fields by hand.
var valueEqual = cmp.Comparer(func(a, b core.Value) bool { return core.Equal(a, b) })

// (+ 1 2 (* 3 4)) via the real, init-registered arithmetic builtins.
func TestScenarioNestedArithmetic(t *testing.T) {
	c, _, _ := newScenarioContext()
	ir := &core.IRApp{
		Fn: &core.IRConst{Value: core.Proc{P: &core.Builtin{Tag: core.BAdd}}},
		Args: []core.IR{
			&core.IRConst{Value: core.NewNumber(1)},
			&core.IRConst{Value: core.NewNumber(2)},
			&core.IRApp{
				Fn:   &core.IRConst{Value: core.Proc{P: &core.Builtin{Tag: core.BMul}}},
				Args: []core.IR{&core.IRConst{Value: core.NewNumber(3)}, &core.IRConst{Value: core.NewNumber(4)}},
			},
		},
	}
	v, err := c.Evaluate(ir)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(core.Value(core.NewNumber(15)), v, valueEqual))
}

// (cons 1 (list 2 3)) then (hd (tl ...)) walks the result back apart.
func TestScenarioConsListHeadTail(t *testing.T) {
	c, _, _ := newScenarioContext()
	built := &core.IRApp{
		Fn: &core.IRConst{Value: core.Proc{P: &core.Builtin{Tag: core.BCons}}},
		Args: []core.IR{
			&core.IRConst{Value: core.NewNumber(1)},
			&core.IRApp{
				Fn: &core.IRConst{Value: core.Proc{P: &core.Builtin{Tag: core.BList}}},
				Args: []core.IR{
					&core.IRConst{Value: core.NewNumber(2)},
					&core.IRConst{Value: core.NewNumber(3)},
				},
			},
		},
	}
	hdOfTl := &core.IRApp{
		Fn:   &core.IRConst{Value: core.Proc{P: &core.Builtin{Tag: core.BHead}}},
		Args: []core.IR{&core.IRApp{Fn: &core.IRConst{Value: core.Proc{P: &core.Builtin{Tag: core.BTail}}}, Args: []core.IR{built}}},
	}
	v, err := c.Evaluate(hdOfTl)
	require.NoError(t, err)
	require.True(t, core.Equal(v, core.NewNumber(2)))
}

// display pushes an info diagnostic and error an error diagnostic, both
// through the real host diagnostic sink.
func TestScenarioDisplayThenErrorDiagnostics(t *testing.T) {
	c, _, diag := newScenarioContext()

	_, err := c.Evaluate(&core.IRApp{
		Fn:   &core.IRConst{Value: core.Proc{P: &core.Builtin{Tag: core.BDisplay}}},
		Args: []core.IR{&core.IRConst{Value: core.String("starting")}},
	})
	require.NoError(t, err)

	_, err = c.Evaluate(&core.IRApp{
		Fn:   &core.IRConst{Value: core.Proc{P: &core.Builtin{Tag: core.BError}}},
		Args: []core.IR{&core.IRConst{Value: core.String("boom")}},
	})
	require.Error(t, err)

	pushed := diag.Drain()
	var rendered []string
	for _, d := range pushed {
		rendered = append(rendered, d.Kind+": "+d.Error())
	}
	snaps.MatchSnapshot(t, "display-then-error-diagnostics", rendered)
}

// An end-to-end global def followed by reading it back and applying it,
// exercising atom interning, global binding, and builtin multiplication
// together the way a real multi-statement script would.
func TestScenarioDefAndApplyAcrossEvaluateCalls(t *testing.T) {
	c, atoms, _ := newScenarioContext()
	doubled := atoms.GetAtom("doubled")

	_, err := c.Evaluate(&core.IRDef{
		Binding: &core.DefBinding{Atom: doubled},
		Value: &core.IRLambda{
			Spec: core.ExactSpec(1),
			Code: &core.IRApp{
				Fn:   &core.IRConst{Value: core.Proc{P: &core.Builtin{Tag: core.BMul}}},
				Args: []core.IR{&core.IRLocal{Index: 0}, &core.IRConst{Value: core.NewNumber(2)}},
			},
		},
	})
	require.NoError(t, err)

	v, err := c.Evaluate(&core.IRApp{
		Fn:   &core.IRGlobal{Atom: doubled},
		Args: []core.IR{&core.IRConst{Value: core.NewNumber(21)}},
	})
	require.NoError(t, err)
	require.True(t, core.Equal(v, core.NewNumber(42)))
}
