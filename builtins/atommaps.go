package builtins

import (
	"github.com/proofscript/lispcore/core"
	"github.com/proofscript/lispcore/engine"
)

func init() {
	engine.BuiltinDispatch[core.BNewAtomMap] = bnewatommap
	engine.BuiltinDispatch[core.BLookup] = blookup
}

// bnewatommap builds a fresh atom map from a sequence of one- or
// two-element pair lists (spec 4.3, "Atom maps"): a singleton pair
// deletes the key (a no-op against a map just built from scratch, kept
// for symmetry with a host that might seed construction from an
// existing map), a pair of two inserts. A key may be given as a String
// or an Atom; a String key is interned.
func bnewatommap(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	m := core.NewAtomMap()
	for _, pair := range args {
		elems, err := pairElems(pair)
		if err != nil {
			return nil, engine.WithSpan(sp1, err)
		}
		key, err := core.AsStringAtom(elems[0], c.Host().Atoms)
		if err != nil {
			return nil, engine.WithSpan(sp1, err)
		}
		switch len(elems) {
		case 1:
			m = m.Delete(key.ID)
		case 2:
			m = m.Set(key.ID, elems[1])
		default:
			return nil, engine.WithSpan(sp1, core.NewShapeError("new-atom-map!: pair must have one or two elements"))
		}
	}
	return c.Ret(m), nil
}

func pairElems(pair core.Value) ([]core.Value, error) {
	u := core.NewUncons(pair)
	var elems []core.Value
	for {
		v, ok := u.Uncons()
		if !ok {
			break
		}
		elems = append(elems, v)
	}
	if len(elems) == 0 || len(elems) > 2 {
		return nil, core.NewShapeError("new-atom-map!: pair must have one or two elements")
	}
	return elems, nil
}

// blookup resolves a key, falling back to default (spec 4.3, "Lookup"):
// a procedure default is invoked with no arguments via a tail call
// rather than the builtin calling back into run() itself.
func blookup(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	m, err := core.AsMap(args[0])
	if err != nil {
		return nil, engine.WithSpan(sp1, err)
	}
	key, err := core.AsStringAtom(args[1], c.Host().Atoms)
	if err != nil {
		return nil, engine.WithSpan(sp1, err)
	}
	if v, ok := m.Get(key.ID); ok {
		return c.Ret(v), nil
	}
	if len(args) < 3 {
		return c.Ret(core.Undef), nil
	}
	def := args[2]
	if _, isProc := core.Unwrap(def).(core.Proc); isProc {
		return c.TailCall(sp1, sp2, def, nil), nil
	}
	return c.Ret(def), nil
}
