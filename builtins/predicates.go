package builtins

import (
	"github.com/proofscript/lispcore/core"
	"github.com/proofscript/lispcore/engine"
)

func init() {
	engine.BuiltinDispatch[core.BIsBool] = predicate(func(v core.Value) bool { _, ok := v.(core.Bool); return ok })
	engine.BuiltinDispatch[core.BIsAtom] = predicate(func(v core.Value) bool { _, ok := v.(core.Atom); return ok })
	engine.BuiltinDispatch[core.BIsPair] = predicate(isPair)
	engine.BuiltinDispatch[core.BIsNull] = predicate(isNull)
	engine.BuiltinDispatch[core.BIsNumber] = predicate(func(v core.Value) bool { _, ok := v.(core.Number); return ok })
	engine.BuiltinDispatch[core.BIsString] = predicate(func(v core.Value) bool { _, ok := v.(core.String); return ok })
	engine.BuiltinDispatch[core.BIsProc] = predicate(func(v core.Value) bool { _, ok := v.(core.Proc); return ok })
	engine.BuiltinDispatch[core.BIsDef] = predicate(func(v core.Value) bool { return !core.Equal(v, core.Undef) })
	engine.BuiltinDispatch[core.BIsRef] = isref
	engine.BuiltinDispatch[core.BIsAtomMap] = predicate(func(v core.Value) bool { _, ok := v.(core.AtomMap); return ok })
	engine.BuiltinDispatch[core.BIsMVar] = predicate(func(v core.Value) bool { _, ok := v.(core.MVar); return ok })
	engine.BuiltinDispatch[core.BIsGoal] = predicate(func(v core.Value) bool { _, ok := v.(core.Goal); return ok })
}

func isPair(v core.Value) bool {
	switch x := v.(type) {
	case core.List:
		return len(x.Elems) > 0
	case core.DottedList:
		return true
	default:
		return false
	}
}

func isNull(v core.Value) bool {
	l, ok := v.(core.List)
	return ok && len(l.Elems) == 0
}

// predicate adapts a plain Value test into a BuiltinFunc, unwrapping the
// argument first (spec 4.3, "all see through Ref/Span").
func predicate(test func(core.Value) bool) engine.BuiltinFunc {
	return func(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
		return c.Ret(core.Bool(test(core.Unwrap(args[0])))), nil
	}
}

// isref answers ref? directly, unwrapping only Span wrappers: the whole
// point of ref? is to detect the cell itself before Unwrap dereferences it.
func isref(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	v := args[0]
	for {
		s, ok := v.(core.Span)
		if !ok {
			break
		}
		v = s.Elem
	}
	_, ok := v.(*core.Ref)
	return c.Ret(core.Bool(ok)), nil
}
