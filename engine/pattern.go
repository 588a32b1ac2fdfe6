package engine

import "github.com/proofscript/lispcore/core"

// The pattern machine (spec 4.4) is a small state machine of its own,
// nested inside the main reduction loop: matching a single branch's
// pattern against a scrutinee can itself require evaluating a user
// predicate (Test), which must go through the very same Eval/Ret loop
// as everything else. So pattern matching cannot simply recurse in Go —
// a Test pattern suspends here and resumes only once the engine has run
// the predicate to completion.

// patDot distinguishes a dotted-tail pattern's two flavors of "what
// happens once the literal element patterns are exhausted": DottedList
// hands the remaining suffix to a sub-pattern, List checks shape only
// (an exact count, or an at-least-n bound for the caller's overflow
// bucket).
type patDot struct {
	dotted bool
	tail   core.Pattern
	min    *int
}

// patState is the pattern machine's "active" register (spec 4.4).
type patState interface{ isPatState() }

type peEval struct {
	Pat core.Pattern
	E   core.Value
}

type peRet struct{ B bool }

type peList struct {
	U    core.Uncons
	Pats []core.Pattern
	Idx  int
	Dot  patDot
}

type peBinary struct {
	Or, Out bool
	E       core.Value
	Pats    []core.Pattern
	Idx     int
}

func (peEval) isPatState()  {}
func (peRet) isPatState()   {}
func (peList) isPatState()  {}
func (peBinary) isPatState() {}

// patFrame is one entry of the pattern machine's own stack, mirroring
// patState's List/Binary shapes minus the work already dispatched.
type patFrame interface{ isPatFrame() }

type pfList struct {
	U    core.Uncons
	Pats []core.Pattern
	Idx  int
	Dot  patDot
}

type pfBinary struct {
	Or, Out bool
	E       core.Value
	Pats    []core.Pattern
	Idx     int
}

func (pfList) isPatFrame()   {}
func (pfBinary) isPatFrame() {}

// pendingTest is what patternStep returns when a Test pattern needs a
// user predicate evaluated before matching can continue (spec 4.4,
// "Test(sp, i, pats)" suspends on slot i's bound value).
type pendingTest struct {
	At   core.FileSpan
	Slot int
}

// patternStep drives the pattern machine from active until it reaches
// a verdict (ok=true, verdict is the result) or must suspend on a Test
// predicate (ok=false, pending describes what to evaluate). stack and
// vars are both owned by the caller and mutated in place; resuming a
// suspended match means calling patternStep again with the same stack
// and vars, starting from peRet{B: <predicate truthiness>}.
func patternStep(stack *[]patFrame, vars []core.Value, active patState) (verdict bool, ok bool, pending *pendingTest) {
	for {
		switch a := active.(type) {
		case peEval:
			switch p := a.Pat.(type) {
			case core.PatSkip:
				active = peRet{B: true}
			case core.PatAtom:
				vars[p.Slot] = a.E
				active = peRet{B: true}
			case core.PatQuoteAtom:
				atom, isAtom := core.Unwrap(a.E).(core.Atom)
				active = peRet{B: isAtom && atom.ID == p.Atom}
			case core.PatString:
				s, isString := core.Unwrap(a.E).(core.String)
				active = peRet{B: isString && string(s) == p.Value}
			case core.PatBool:
				b, isBool := core.Unwrap(a.E).(core.Bool)
				active = peRet{B: isBool && bool(b) == p.Value}
			case core.PatNumber:
				n, isNumber := core.Unwrap(a.E).(core.Number)
				active = peRet{B: isNumber && n.Int.Cmp(p.Value.Int) == 0}
			case core.PatQExprAtom:
				active = peRet{B: matchQExprAtom(a.E, p.Atom)}
			case core.PatDottedList:
				active = peList{U: core.NewUncons(a.E), Pats: p.Elems, Dot: patDot{dotted: true, tail: p.Tail}}
			case core.PatList:
				active = peList{U: core.NewUncons(a.E), Pats: p.Elems, Dot: patDot{min: p.Min}}
			case core.PatAnd:
				active = peBinary{Or: false, Out: false, E: a.E, Pats: p.Elems}
			case core.PatOr:
				active = peBinary{Or: true, Out: true, E: a.E, Pats: p.Elems}
			case core.PatNot:
				active = peBinary{Or: true, Out: false, E: a.E, Pats: p.Elems}
			case core.PatTest:
				*stack = append(*stack, pfBinary{Or: false, Out: false, E: a.E, Pats: p.Elems})
				return false, false, &pendingTest{At: p.At, Slot: p.Slot}
			}

		case peRet:
			if len(*stack) == 0 {
				return a.B, true, nil
			}
			top := (*stack)[len(*stack)-1]
			*stack = (*stack)[:len(*stack)-1]
			switch f := top.(type) {
			case pfList:
				if a.B {
					active = peList{U: f.U, Pats: f.Pats, Idx: f.Idx, Dot: f.Dot}
				} else {
					active = peRet{B: false}
				}
			case pfBinary:
				if a.B != f.Or {
					active = peBinary{Or: f.Or, Out: f.Out, E: f.E, Pats: f.Pats, Idx: f.Idx}
				} else {
					active = peRet{B: f.Out}
				}
			}

		case peList:
			if a.Idx >= len(a.Pats) {
				switch {
				case a.Dot.dotted:
					active = peEval{Pat: a.Dot.tail, E: a.U.AsLisp()}
				case a.Dot.min == nil:
					active = peRet{B: a.U.Exactly(0)}
				default:
					active = peRet{B: a.U.AtLeast(*a.Dot.min)}
				}
				continue
			}
			u := a.U
			elem, has := u.Uncons()
			if !has {
				active = peRet{B: false}
				continue
			}
			*stack = append(*stack, pfList{U: u, Pats: a.Pats, Idx: a.Idx + 1, Dot: a.Dot})
			active = peEval{Pat: a.Pats[a.Idx], E: elem}

		case peBinary:
			if a.Idx >= len(a.Pats) {
				active = peRet{B: !a.Out}
				continue
			}
			*stack = append(*stack, pfBinary{Or: a.Or, Out: a.Out, E: a.E, Pats: a.Pats, Idx: a.Idx + 1})
			active = peEval{Pat: a.Pats[a.Idx], E: a.E}
		}
	}
}

// matchQExprAtom implements quasiquoted-atom matching (spec 4.4,
// "'atom inside a quasiquoted pattern also matches a singleton list
// holding that atom", needed because quasiquote wraps a bare atom
// literal in a one-element list to distinguish it from an unquote).
func matchQExprAtom(e core.Value, want core.AtomID) bool {
	switch v := core.Unwrap(e).(type) {
	case core.Atom:
		return v.ID == want
	case core.List:
		if len(v.Elems) != 1 {
			return false
		}
		atom, ok := core.Unwrap(v.Elems[0]).(core.Atom)
		return ok && atom.ID == want
	default:
		return false
	}
}
