package builtins

import (
	"github.com/proofscript/lispcore/core"
	"github.com/proofscript/lispcore/engine"
)

func init() {
	engine.BuiltinDispatch[core.BDisplay] = bdisplay
	engine.BuiltinDispatch[core.BPrint] = bprint
	engine.BuiltinDispatch[core.BError] = berror
	engine.BuiltinDispatch[core.BAsync] = basync
}

func bdisplay(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	s, err := core.AsString(args[0])
	if err != nil {
		return nil, engine.WithSpan(sp1, err)
	}
	pushInfo(c, sp1, s)
	return c.Ret(core.Undef), nil
}

func bprint(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	pushInfo(c, sp1, c.Host().Printer.Print(args[0]))
	return c.Ret(core.Undef), nil
}

func berror(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	s, err := core.AsString(args[0])
	if err != nil {
		return nil, engine.WithSpan(sp1, err)
	}
	return nil, engine.WithSpan(sp1, core.NewUserError(s))
}

func pushInfo(c *engine.Context, sp core.FileSpan, msg string) {
	if sink := c.Host().Diag; sink != nil {
		sink.Push(&core.Diagnostic{Level: core.Info, At: sp, Kind: "display", Cause: errAsString(msg)})
	}
}

type errString string

func (e errString) Error() string { return string(e) }

func errAsString(s string) error { return errString(s) }

// basync applies its first argument to the rest, synchronously (spec
// 4.3, "Async... placeholder semantics"): no task is actually spawned.
func basync(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	return c.TailCall(sp1, sp2, args[0], args[1:]), nil
}
