package builtins

import (
	"github.com/proofscript/lispcore/core"
	"github.com/proofscript/lispcore/engine"
)

func init() {
	engine.BuiltinDispatch[core.BNot] = bnot
	engine.BuiltinDispatch[core.BAnd] = band
	engine.BuiltinDispatch[core.BOr] = bor
}

// bnot, band and bor operate on already-reduced arguments (spec 4.3,
// "evaluated strictly"), so there is no short-circuiting left to do
// here; that happens, if at all, on the calling side before Apply.
func bnot(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	for _, a := range args {
		if core.Truthy(core.Unwrap(a)) {
			return c.Ret(core.Bool(false)), nil
		}
	}
	return c.Ret(core.Bool(true)), nil
}

func band(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	for _, a := range args {
		if !core.Truthy(core.Unwrap(a)) {
			return c.Ret(core.Bool(false)), nil
		}
	}
	return c.Ret(core.Bool(true)), nil
}

func bor(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	for _, a := range args {
		if core.Truthy(core.Unwrap(a)) {
			return c.Ret(core.Bool(true)), nil
		}
	}
	return c.Ret(core.Bool(false)), nil
}
