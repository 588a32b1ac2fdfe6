package core

import "math/big"

// AsRef coerces v (seeing through Span) to its own identity as a *Ref —
// i.e. fails unless v, once its Span wrappers are peeled, is a Ref. It
// does not dereference through the Ref itself, since a Ref cannot be
// unwrapped into something that still behaves like a Ref (spec 4.1).
func AsRef(v Value) (*Ref, error) {
	for {
		s, ok := v.(Span)
		if !ok {
			break
		}
		v = s.Elem
	}
	if r, ok := v.(*Ref); ok {
		return r, nil
	}
	return nil, typeErrorf("ref", v)
}

// AsMap coerces unwrap(v) to an AtomMap.
func AsMap(v Value) (AtomMap, error) {
	if m, ok := Unwrap(v).(AtomMap); ok {
		return m, nil
	}
	return AtomMap{}, typeErrorf("atom map", v)
}

// AsString coerces unwrap(v) to a Go string.
func AsString(v Value) (string, error) {
	if s, ok := Unwrap(v).(String); ok {
		return string(s), nil
	}
	return "", typeErrorf("string", v)
}

// AsAtomString renders unwrap(v)'s interned name as a string, given the
// table it was interned in.
func AsAtomString(v Value, table AtomTable) (string, error) {
	a, ok := Unwrap(v).(Atom)
	if !ok {
		return "", typeErrorf("atom", v)
	}
	return table.Name(a.ID), nil
}

// AsStringAtom coerces unwrap(v) to an Atom, matching the original's
// as_string_atom (String(s) => get_atom(s), Atom(a) => a): a String is
// interned into table and an Atom passes through unchanged.
func AsStringAtom(v Value, table AtomTable) (Atom, error) {
	switch w := Unwrap(v).(type) {
	case Atom:
		return w, nil
	case String:
		return Atom{ID: table.GetAtom(string(w))}, nil
	default:
		return Atom{}, typeErrorf("string or atom", v)
	}
}

// AsInt coerces unwrap(v) to a big.Int.
func AsInt(v Value) (*big.Int, error) {
	if n, ok := Unwrap(v).(Number); ok {
		return n.Int, nil
	}
	return nil, typeErrorf("number", v)
}

// GoalType extracts the Type of unwrap(v), which must be a Goal.
func GoalType(v Value) (Value, error) {
	if g, ok := Unwrap(v).(Goal); ok {
		return g.Type, nil
	}
	return nil, typeErrorf("goal", v)
}
