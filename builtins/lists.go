package builtins

import (
	"github.com/proofscript/lispcore/core"
	"github.com/proofscript/lispcore/engine"
)

func init() {
	engine.BuiltinDispatch[core.BList] = blist
	engine.BuiltinDispatch[core.BCons] = bcons
	engine.BuiltinDispatch[core.BHead] = bhead
	engine.BuiltinDispatch[core.BTail] = btail
	engine.BuiltinDispatch[core.BApply] = bapply
	engine.BuiltinDispatch[core.BMap] = bmap
	engine.BuiltinDispatch[core.BBegin] = bbegin
}

func blist(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	return c.Ret(core.List{Elems: append([]core.Value(nil), args...)}), nil
}

// bcons builds a (possibly dotted) pair (spec 4.3, "Cons"): zero
// arguments is the empty list, one argument is returned as-is (it
// stands for the whole improper tail), otherwise the last argument
// becomes the tail of a DottedList over the rest. Flattening a list
// tail into the head elements is left to consumers, per spec.
func bcons(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	switch len(args) {
	case 0:
		return c.Ret(core.List{}), nil
	case 1:
		return c.Ret(args[0]), nil
	default:
		last := len(args) - 1
		return c.Ret(core.DottedList{Elems: append([]core.Value(nil), args[:last]...), Tail: args[last]}), nil
	}
}

func bhead(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	v, err := core.Head(args[0])
	if err != nil {
		return nil, engine.WithSpan(sp1, err)
	}
	return c.Ret(v), nil
}

func btail(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	v, err := core.Tail(args[0])
	if err != nil {
		return nil, engine.WithSpan(sp1, err)
	}
	return c.Ret(v), nil
}

// bapply flattens Apply(f, a1, ..., tail) into a single application and
// hands it back as a tail call (spec 4.3, "Apply"), so a recursive use
// of apply costs no extra stack depth.
func bapply(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	fn := args[0]
	tail := args[len(args)-1]
	u := core.NewUncons(tail)
	if !u.IsList() {
		return nil, engine.WithSpan(sp1, core.NewShapeError("apply: last argument is not a list"))
	}
	flat := append([]core.Value(nil), args[1:len(args)-1]...)
	for {
		v, ok := u.Uncons()
		if !ok {
			break
		}
		flat = append(flat, v)
	}
	return c.TailCall(sp1, sp2, fn, flat), nil
}

// bmap drives the Map primitive (spec 4.3, "Map primitive"): a single
// function argument applies it with no arguments, otherwise a cursor is
// opened over each sequence and MapProc steps them in lockstep.
func bmap(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	fn := args[0]
	if len(args) == 1 {
		return c.TailCall(sp1, sp2, fn, nil), nil
	}
	uncs := make([]core.Uncons, len(args)-1)
	for i, seq := range args[1:] {
		uncs[i] = core.NewUncons(seq)
	}
	return c.StartMap(sp1, sp2, fn, uncs), nil
}

func bbegin(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	if len(args) == 0 {
		return c.Ret(core.Undef), nil
	}
	return c.Ret(args[len(args)-1]), nil
}
