// Package core defines the value model and IR the evaluator walks:
// tagged value variants, the dotted-list cursor, the IR tree, procedure
// kinds, and diagnostics. Nothing in this package evaluates anything;
// see package engine for the reduction loop.
package core

import (
	"math/big"
	"sync"
)

// Value is a shared handle to one of the tagged variants in spec 3.1.
// Concrete variants are value or pointer types implementing this marker
// interface; type-switch on the concrete type to inspect one.
//
// Go's garbage collector stands in for the reference counting spec.md
// 3.1 describes: Values are immutable (aside from the contents of a Ref
// cell) and freely shared by assignment, so ordinary Go sharing already
// gives the "shared, reference-counted handle" semantics the spec asks
// for without a separate refcount field.
type Value interface {
	isValue()
}

// Atom is an interned symbol; equality is by ID (GLOSSARY).
type Atom struct{ ID AtomID }

// Bool is a boolean primitive.
type Bool bool

// Number is an arbitrary-precision integer (spec 3.1: "Number(bigint)").
type Number struct{ Int *big.Int }

// String is a string primitive.
type String string

// List is a proper list of values.
type List struct{ Elems []Value }

// DottedList is an improper list: Elems followed by a Tail that is not
// itself required to be a list (though it may recursively be one).
type DottedList struct {
	Elems []Value
	Tail  Value
}

// Proc wraps a procedure value (spec 3.4).
type Proc struct{ P Procedure }

// Ref is a mutable cell. It is always handled through a pointer so that
// interior mutation is visible to every holder of the cell (spec 4.3,
// "reference cells"); the mutex guards concurrent access from host-owned
// threads the cell may have escaped into (spec 5).
type Ref struct {
	mu  sync.Mutex
	val Value
}

// AtomMap is an immutable mapping from atom id to value. Updates produce
// a new AtomMap (copy-on-write): every Set or Delete copies the whole
// entry map.
type AtomMap struct {
	entries map[AtomID]Value
	order   []AtomID // insertion order, for deterministic printing/iteration
}

// Goal, MVar and UnparsedFormula are opaque elaborator objects threaded
// through the core unchanged (spec 3.1); the core never inspects their
// contents beyond what Value requires.
type Goal struct{ Type Value }
type MVar struct {
	ID   int
	Type Value
}
type UnparsedFormula struct{ Text string }

// Span wraps a value with a source-location annotation. It is
// semantically transparent: Unwrap peels it off for every predicate,
// coercion, and equality check (spec 3.1).
type Span struct {
	At   FileSpan
	Elem Value
}

// undefType is the singleton type behind Undef.
type undefType struct{}

// Undef represents "no value". It is legal to store and return but
// rejected wherever a definite value is required.
var Undef Value = undefType{}

func (Atom) isValue()           {}
func (Bool) isValue()           {}
func (Number) isValue()         {}
func (String) isValue()         {}
func (List) isValue()           {}
func (DottedList) isValue()     {}
func (Proc) isValue()           {}
func (*Ref) isValue()           {}
func (AtomMap) isValue()        {}
func (Goal) isValue()           {}
func (MVar) isValue()           {}
func (UnparsedFormula) isValue() {}
func (Span) isValue()           {}
func (undefType) isValue()      {}

// NewNumber wraps an int64 as a Number value.
func NewNumber(n int64) Number { return Number{Int: big.NewInt(n)} }

// Unwrap peels through Ref (dereferencing to current content) and Span
// (unwrapping the annotation), repeatedly, until neither applies.
func Unwrap(v Value) Value {
	for {
		switch x := v.(type) {
		case *Ref:
			v = x.Get()
		case Span:
			v = x.Elem
		default:
			return v
		}
	}
}

// Truthy reports whether v (already unwrapped by the caller per spec
// 3.1's convention) is truthy: every value is truthy except Bool(false).
func Truthy(v Value) bool {
	if b, ok := v.(Bool); ok {
		return bool(b)
	}
	return true
}

// Equal reports structural equality of two values, seeing through Ref and
// Span on both sides.
func Equal(a, b Value) bool {
	a, b = Unwrap(a), Unwrap(b)
	switch x := a.(type) {
	case Atom:
		y, ok := b.(Atom)
		return ok && x.ID == y.ID
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && x.Int.Cmp(y.Int) == 0
	case String:
		y, ok := b.(String)
		return ok && x == y
	case undefType:
		_, ok := b.(undefType)
		return ok
	case List:
		return equalListLike(x.Elems, nil, b)
	case DottedList:
		return equalListLike(x.Elems, x.Tail, b)
	case AtomMap:
		y, ok := b.(AtomMap)
		if !ok || len(x.order) != len(y.order) {
			return false
		}
		for _, id := range x.order {
			yv, ok := y.entries[id]
			if !ok || !Equal(x.entries[id], yv) {
				return false
			}
		}
		return true
	case Proc:
		y, ok := b.(Proc)
		return ok && x.P == y.P
	case Goal:
		y, ok := b.(Goal)
		return ok && Equal(x.Type, y.Type)
	case MVar:
		y, ok := b.(MVar)
		return ok && x.ID == y.ID
	case UnparsedFormula:
		y, ok := b.(UnparsedFormula)
		return ok && x.Text == y.Text
	default:
		return false
	}
}

// equalListLike compares a (elems, tail) pair — a List if tail == nil,
// else a DottedList — against another value by flattening both sides
// through Uncons, so a DottedList whose tail is itself a list compares
// equal to its flattened List form (spec 3.2).
func equalListLike(elems []Value, tail Value, b Value) bool {
	var lhs Value
	if tail == nil {
		lhs = List{Elems: elems}
	} else {
		lhs = DottedList{Elems: elems, Tail: tail}
	}
	switch Unwrap(b).(type) {
	case List, DottedList:
	default:
		return false
	}
	lu, ru := NewUncons(lhs), NewUncons(b)
	for {
		lv, lok := lu.Uncons()
		rv, rok := ru.Uncons()
		if lok != rok {
			return false
		}
		if !lok {
			lt, rt := lu.AsLisp(), ru.AsLisp()
			_, lProper := lt.(List)
			_, rProper := rt.(List)
			if lProper || rProper {
				return lProper && rProper
			}
			return Equal(lt, rt)
		}
		if !Equal(lv, rv) {
			return false
		}
	}
}
