package builtins

import (
	"github.com/proofscript/lispcore/core"
	"github.com/proofscript/lispcore/engine"
)

func init() {
	engine.BuiltinDispatch[core.BNewRef] = bnewref
	engine.BuiltinDispatch[core.BGetRef] = bgetref
	engine.BuiltinDispatch[core.BSetRef] = bsetref
}

func bnewref(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	return c.Ret(core.NewRef(args[0])), nil
}

func bgetref(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	r, err := core.AsRef(args[0])
	if err != nil {
		return nil, engine.WithSpan(sp1, err)
	}
	return c.Ret(r.Get()), nil
}

func bsetref(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	r, err := core.AsRef(args[0])
	if err != nil {
		return nil, engine.WithSpan(sp1, err)
	}
	r.Set(args[1])
	return c.Ret(core.Undef), nil
}
