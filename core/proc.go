package core

import "sync/atomic"

// Spec constrains procedure application (spec 3.4): Exact(n) requires
// exactly n arguments; AtLeast(n) requires >= n, bundling the overflow
// into a list appended as the nth argument.
type Spec struct {
	N       int
	AtLeast bool
}

// ExactSpec builds an exact-arity spec.
func ExactSpec(n int) Spec { return Spec{N: n} }

// AtLeastSpec builds an at-least-arity spec.
func AtLeastSpec(n int) Spec { return Spec{N: n, AtLeast: true} }

// Matches reports whether nargs satisfies the spec.
func (s Spec) Matches(nargs int) bool {
	if s.AtLeast {
		return nargs >= s.N
	}
	return nargs == s.N
}

// ProcSpec exposes a procedure's arity spec to callers outside this
// package (the interface method itself is unexported so that nothing
// but the three kinds enumerated here can ever implement Procedure).
func ProcSpec(p Procedure) Spec { return p.spec() }

// Procedure is one of the three kinds of spec 3.4. All implementations
// are pointer types so that two Proc values compare equal (via Go's
// native interface ==) exactly when they denote the same procedure
// object, never by incidentally-matching contents.
type Procedure interface {
	isProcedure()
	spec() Spec
}

// BuiltinTag enumerates the fixed palette of primitives (spec 4.3).
type BuiltinTag int

const (
	BDisplay BuiltinTag = iota
	BPrint
	BError
	BBegin
	BApply
	BAdd
	BSub
	BMul
	BDiv
	BMod
	BMax
	BMin
	BLt
	BLe
	BGt
	BGe
	BEq
	BToString
	BStringToAtom
	BStringAppend
	BNot
	BAnd
	BOr
	BList
	BCons
	BHead
	BTail
	BMap
	BIsBool
	BIsAtom
	BIsPair
	BIsNull
	BIsNumber
	BIsString
	BIsProc
	BIsDef
	BIsRef
	BIsAtomMap
	BIsMVar
	BIsGoal
	BNewRef
	BGetRef
	BSetRef
	BNewAtomMap
	BLookup
	BAsync
	BInferType
	BRefine
	BGetGoals
	BAddThm
	BPrettyPrint
)

// Builtin is a reference to one of the enumerated primitives.
type Builtin struct {
	Tag BuiltinTag
}

func (*Builtin) isProcedure() {}
func (b *Builtin) spec() Spec { return builtinSpecs[b.Tag] }

// Lambda is a user closure (spec 3.4): its defining position, a copy of
// the enclosing local-value vector at definition time, an arity spec,
// and the shared IR body.
type Lambda struct {
	Pos  ProcPos
	Env  []Value
	Spec Spec
	Code IR
	File File
}

func (*Lambda) isProcedure() {}
func (l *Lambda) spec() Spec { return l.Spec }

// ProcPos records where a lambda was defined, for stack traces
// (spec 4.2.4, GLOSSARY "Procedure position"): Named if the nearest
// enclosing frame at the point of the Lambda IR node was a Def with a
// binding name, Unnamed otherwise.
type ProcPos struct {
	Named bool
	At    FileSpan
	Name  AtomID
}

// MatchCont is a first-class, single-shot continuation resuming a match
// at the next branch (spec 3.4, 4.5). Valid is shared with the
// MatchCont frame on the control stack; invoking the continuation, a
// later branch of the same match proceeding, or the owning frame being
// unwound all clear it (spec 5).
type MatchCont struct {
	Valid *atomic.Bool
}

func (*MatchCont) isProcedure() {}
func (*MatchCont) spec() Spec   { return Spec{N: 0} }

var builtinSpecs = map[BuiltinTag]Spec{
	BDisplay:      ExactSpec(1),
	BPrint:        ExactSpec(1),
	BError:        ExactSpec(1),
	BBegin:        AtLeastSpec(0),
	BApply:        AtLeastSpec(2),
	BAdd:          AtLeastSpec(0),
	BSub:          AtLeastSpec(1),
	BMul:          AtLeastSpec(0),
	BDiv:          AtLeastSpec(1),
	BMod:          AtLeastSpec(1),
	BMax:          AtLeastSpec(1),
	BMin:          AtLeastSpec(1),
	BLt:           AtLeastSpec(1),
	BLe:           AtLeastSpec(1),
	BGt:           AtLeastSpec(1),
	BGe:           AtLeastSpec(1),
	BEq:           AtLeastSpec(1),
	BToString:     ExactSpec(1),
	BStringToAtom: ExactSpec(1),
	BStringAppend: AtLeastSpec(0),
	BNot:          AtLeastSpec(0),
	BAnd:          AtLeastSpec(0),
	BOr:           AtLeastSpec(0),
	BList:         AtLeastSpec(0),
	BCons:         AtLeastSpec(0),
	BHead:         ExactSpec(1),
	BTail:         ExactSpec(1),
	BMap:          AtLeastSpec(1),
	BIsBool:       ExactSpec(1),
	BIsAtom:       ExactSpec(1),
	BIsPair:       ExactSpec(1),
	BIsNull:       ExactSpec(1),
	BIsNumber:     ExactSpec(1),
	BIsString:     ExactSpec(1),
	BIsProc:       ExactSpec(1),
	BIsDef:        ExactSpec(1),
	BIsRef:        ExactSpec(1),
	BIsAtomMap:    ExactSpec(1),
	BIsMVar:       ExactSpec(1),
	BIsGoal:       ExactSpec(1),
	BNewRef:       ExactSpec(1),
	BGetRef:       ExactSpec(1),
	BSetRef:       ExactSpec(2),
	BNewAtomMap:   AtLeastSpec(0),
	BLookup:       AtLeastSpec(2),
	BAsync:        AtLeastSpec(1),
	BInferType:    AtLeastSpec(0),
	BRefine:       AtLeastSpec(0),
	BGetGoals:     AtLeastSpec(0),
	BAddThm:       AtLeastSpec(0),
	BPrettyPrint:  AtLeastSpec(0),
}

// BuiltinNames maps the canonical script-visible name to its tag, used
// by Global's "unbound but is a recognised built-in name" synthesis
// (spec 4.2.1).
var BuiltinNames = map[string]BuiltinTag{
	"display":          BDisplay,
	"print":            BPrint,
	"error":            BError,
	"begin":            BBegin,
	"apply":            BApply,
	"+":                BAdd,
	"-":                BSub,
	"*":                BMul,
	"//":               BDiv,
	"%":                BMod,
	"max":              BMax,
	"min":              BMin,
	"<":                BLt,
	"<=":               BLe,
	">":                BGt,
	">=":               BGe,
	"=":                BEq,
	"number->string":   BToString,
	"string->atom":     BStringToAtom,
	"string-append":    BStringAppend,
	"not":              BNot,
	"and":              BAnd,
	"or":               BOr,
	"list":             BList,
	"cons":             BCons,
	"hd":               BHead,
	"tl":               BTail,
	"map":              BMap,
	"bool?":            BIsBool,
	"atom?":            BIsAtom,
	"pair?":            BIsPair,
	"null?":            BIsNull,
	"number?":          BIsNumber,
	"string?":          BIsString,
	"fn?":              BIsProc,
	"def?":             BIsDef,
	"ref?":             BIsRef,
	"atom-map?":        BIsAtomMap,
	"mvar?":            BIsMVar,
	"goal?":            BIsGoal,
	"new-ref":          BNewRef,
	"get-ref":          BGetRef,
	"set-ref!":         BSetRef,
	"new-atom-map!":    BNewAtomMap,
	"lookup":           BLookup,
	"async":            BAsync,
	"infer-type":       BInferType,
	"refine":           BRefine,
	"get-goals":        BGetGoals,
	"add-thm!":         BAddThm,
	"pretty-print":     BPrettyPrint,
}

// BuiltinName reverses BuiltinNames, for error messages and printing.
func BuiltinName(tag BuiltinTag) string {
	for name, t := range BuiltinNames {
		if t == tag {
			return name
		}
	}
	return "<builtin>"
}
