package builtins

import (
	"github.com/proofscript/lispcore/core"
	"github.com/proofscript/lispcore/engine"
)

func init() {
	engine.BuiltinDispatch[core.BInferType] = elab(func(e core.Elaborator, at core.FileSpan, args []core.Value) (core.Value, error) {
		return e.InferType(at, args)
	})
	engine.BuiltinDispatch[core.BRefine] = elab(func(e core.Elaborator, at core.FileSpan, args []core.Value) (core.Value, error) {
		return e.Refine(at, args)
	})
	engine.BuiltinDispatch[core.BGetGoals] = elab(func(e core.Elaborator, at core.FileSpan, args []core.Value) (core.Value, error) {
		return e.GetGoals(at, args)
	})
	engine.BuiltinDispatch[core.BAddThm] = elab(func(e core.Elaborator, at core.FileSpan, args []core.Value) (core.Value, error) {
		return e.AddThm(at, args)
	})
	engine.BuiltinDispatch[core.BPrettyPrint] = elab(func(e core.Elaborator, at core.FileSpan, args []core.Value) (core.Value, error) {
		return e.PrettyPrint(at, args)
	})
}

// elab adapts one Elaborator method into a BuiltinFunc (spec 4.3,
// "Elaborator-coupled primitives"): a host that returns
// core.ErrUnimplemented gets an info diagnostic instead of a hard
// failure, and the call still produces Undef rather than aborting the
// script.
func elab(call func(core.Elaborator, core.FileSpan, []core.Value) (core.Value, error)) engine.BuiltinFunc {
	return func(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
		e := c.Host().Elab
		if e == nil {
			pushInfo(c, sp1, "unimplemented")
			return c.Ret(core.Undef), nil
		}
		v, err := call(e, sp1, args)
		if err == core.ErrUnimplemented {
			pushInfo(c, sp1, "unimplemented")
			return c.Ret(core.Undef), nil
		}
		if err != nil {
			return nil, engine.WithSpan(sp1, err)
		}
		return c.Ret(v), nil
	}
}
