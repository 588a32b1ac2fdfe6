package core

// IR is the tree of pre-parsed expressions the engine walks (spec 3.3).
// It is an input contract only: nothing in this package constructs IR
// from source text (out of scope, spec 1(a)). Implementations are
// pointer types so a Lambda can hold a shared, owning handle to its body
// that outlives the IR fragment it was read from (spec 9, "Cyclic
// ownership of IR vs. control stack").
type IR interface {
	isIR()
}

type IRLocal struct{ Index int }

type IRGlobal struct {
	At   FileSpan
	Atom AtomID
}

type IRConst struct{ Value Value }

type IRList struct {
	At    FileSpan
	Elems []IR
}

type IRDottedList struct {
	Elems []IR
	Tail  IR
}

type IRApp struct {
	CallSite FileSpan
	HeadSite FileSpan
	Fn       IR
	Args     []IR
}

type IRIf struct {
	Cond IR
	Then IR
	Else IR
}

// IRFocus is elaborator-specific and unimplemented in this design
// (spec 9, "Open question"): the engine raises "unimplemented" on
// reaching one.
type IRFocus struct{ Elems []IR }

// IRDef's Binding is nil for an anonymous definition/assignment.
type IRDef struct {
	Binding *DefBinding
	Value   IR
}

type DefBinding struct {
	At   FileSpan
	Atom AtomID
}

type IREval struct{ Elems []IR }

type IRLambda struct {
	At   FileSpan
	Spec Spec
	Code IR
}

type IRMatch struct {
	At        FileSpan
	Scrutinee IR
	Branches  []Branch
}

func (*IRLocal) isIR()       {}
func (*IRGlobal) isIR()      {}
func (*IRConst) isIR()       {}
func (*IRList) isIR()        {}
func (*IRDottedList) isIR()  {}
func (*IRApp) isIR()         {}
func (*IRIf) isIR()          {}
func (*IRFocus) isIR()       {}
func (*IRDef) isIR()         {}
func (*IREval) isIR()        {}
func (*IRLambda) isIR()      {}
func (*IRMatch) isIR()       {}

// Branch is one clause of a Match form (spec 3.3, GLOSSARY): a pattern,
// the number of variable slots it binds, whether it is a re-matchable
// continuation branch, and the body to run once matched.
type Branch struct {
	Pat  Pattern
	Vars int
	Cont bool
	Eval IR
}

// Pattern is the pattern AST a Branch matches against (spec 3.3).
type Pattern interface {
	isPattern()
}

type PatSkip struct{}
type PatAtom struct{ Slot int }
type PatQuoteAtom struct{ Atom AtomID }
type PatString struct{ Value string }
type PatBool struct{ Value bool }
type PatNumber struct{ Value Number }
type PatQExprAtom struct{ Atom AtomID }

type PatDottedList struct {
	Elems []Pattern
	Tail  Pattern
}

// PatList's Min is nil for an exact-length match, or points at the
// at-least-n bound (spec 3.3, "opt_min").
type PatList struct {
	Elems []Pattern
	Min   *int
}

type PatAnd struct{ Elems []Pattern }
type PatOr struct{ Elems []Pattern }
type PatNot struct{ Elems []Pattern }

type PatTest struct {
	At    FileSpan
	Slot  int
	Elems []Pattern
}

func (PatSkip) isPattern()        {}
func (PatAtom) isPattern()        {}
func (PatQuoteAtom) isPattern()   {}
func (PatString) isPattern()      {}
func (PatBool) isPattern()        {}
func (PatNumber) isPattern()      {}
func (PatQExprAtom) isPattern()   {}
func (PatDottedList) isPattern()  {}
func (PatList) isPattern()        {}
func (PatAnd) isPattern()         {}
func (PatOr) isPattern()          {}
func (PatNot) isPattern()         {}
func (PatTest) isPattern()        {}
