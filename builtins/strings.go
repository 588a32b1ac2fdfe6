package builtins

import (
	"strings"

	"github.com/proofscript/lispcore/core"
	"github.com/proofscript/lispcore/engine"
)

func init() {
	engine.BuiltinDispatch[core.BToString] = btostring
	engine.BuiltinDispatch[core.BStringToAtom] = bstringtoatom
	engine.BuiltinDispatch[core.BStringAppend] = bstringappend
}

// btostring renders its argument to a string (spec 4.3, "ToString"):
// String, UnparsedFormula, Atom and Number render directly; everything
// else goes through the host's printer.
func btostring(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	switch v := core.Unwrap(args[0]).(type) {
	case core.String:
		return c.Ret(v), nil
	case core.UnparsedFormula:
		return c.Ret(core.String(v.Text)), nil
	case core.Atom:
		name, err := core.AsAtomString(v, c.Host().Atoms)
		if err != nil {
			return nil, engine.WithSpan(sp1, err)
		}
		return c.Ret(core.String(name)), nil
	case core.Number:
		return c.Ret(core.String(v.Int.String())), nil
	default:
		return c.Ret(core.String(c.Host().Printer.Print(args[0]))), nil
	}
}

func bstringtoatom(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	s, err := core.AsString(args[0])
	if err != nil {
		return nil, engine.WithSpan(sp1, err)
	}
	return c.Ret(core.Atom{ID: c.Host().Atoms.GetAtom(s)}), nil
}

func bstringappend(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	var b strings.Builder
	for _, a := range args {
		s, err := core.AsString(a)
		if err != nil {
			return nil, engine.WithSpan(sp1, err)
		}
		b.WriteString(s)
	}
	return c.Ret(core.String(b.String())), nil
}
