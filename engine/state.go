// Package engine implements the (State, Stack) reduction loop of spec.md
// section 4.2: an explicit, heap-allocated control stack standing in for
// the host call stack, so interpreted recursion depth never grows the
// Go call stack. See Context.Evaluate/run for the loop itself.
package engine

import (
	"sync/atomic"

	"github.com/proofscript/lispcore/core"
)

// State describes what the engine is about to do next (spec 4.2).
type State interface{ isState() }

type stEval struct{ IR core.IR }
type stRet struct{ V core.Value }

type stList struct {
	At    core.FileSpan
	Accum []core.Value
	Rest  []core.IR
}

type stDottedList struct {
	Accum []core.Value
	Rest  []core.IR
	Tail  core.IR
}

// stApp evaluates each remaining argument expression in turn, then
// applies once Rest is empty (spec 4.2.1, "App(sp1, sp2, f, es) evaluates
// f, then each e"); the function position itself is evaluated first via
// frAppFn, before any stApp value exists.
type stApp struct {
	Sp1, Sp2 core.FileSpan
	Fn       core.Value
	Done     []core.Value
	Rest     []core.IR
}

// stMatch tries the next remaining branch against Scrutinee, or raises
// "match failed" once Branches is exhausted (spec 4.5).
type stMatch struct {
	At        core.FileSpan
	Scrutinee core.Value
	Branches  []core.Branch
}

// stPattern drives the nested pattern-matching machine (spec 4.4) against
// Cur; Rest is what stMatch retries if Cur's pattern fails to match.
type stPattern struct {
	At        core.FileSpan
	Scrutinee core.Value
	Cur       core.Branch
	Rest      []core.Branch
	PStack    []patFrame
	Vars      []core.Value
	PState    patState
}

type stMapProc struct {
	Sp1, Sp2 core.FileSpan
	Fn       core.Value
	Uncs     []core.Uncons
	Accum    []core.Value
}

func (stEval) isState()       {}
func (stRet) isState()        {}
func (stList) isState()       {}
func (stDottedList) isState() {}
func (stApp) isState()        {}
func (stMatch) isState()      {}
func (stPattern) isState()    {}
func (stMapProc) isState()    {}

// Frame is one entry of the control stack (spec 4.2).
type Frame interface{ isFrame() }

type frList struct {
	At    core.FileSpan
	Accum []core.Value
	Rest  []core.IR
}

type frDottedList struct {
	Accum []core.Value
	Rest  []core.IR
	Tail  core.IR
}

// frDottedList2 finalises a dotted list once its tail expression has
// been evaluated (spec 4.2.3).
type frDottedList2 struct{ Accum []core.Value }

type frAppFn struct {
	Sp1, Sp2 core.FileSpan
	Args     []core.IR
}

type frApp struct {
	Sp1, Sp2 core.FileSpan
	Fn       core.Value
	Done     []core.Value
	Rest     []core.IR
}

type frIf struct{ Then, Else core.IR }

type frDef struct{ Binding *core.DefBinding }

type frEvalSeq struct{ Rest []core.IR }

// frDrop pops one local binding from ctx on return.
type frDrop struct{}

// frRet is the procedure-activation frame (spec 4.2, "Ret(prev_file,
// proc_pos, prev_ctx, code)"): it records the caller's file/ctx, the
// callee's ProcPos for stack-trace annotation, and an owning handle to
// the callee's IR so it stays alive for the duration of the call.
type frRet struct {
	PrevFile core.File
	PrevCtx  []core.Value
	ProcPos  core.ProcPos
	Code     core.IR
}

// frMatch is pushed before the scrutinee expression is evaluated; the
// scrutinee itself becomes known only once that evaluation returns
// (spec 4.2.3, "Match(sp, brs) evaluates e, then begins matching").
type frMatch struct {
	At       core.FileSpan
	Branches []core.Branch
}

// frMatchCont is the capture point a MatchCont procedure resumes
// (spec 4.2.2, 4.5): invoking it re-enters matching at Rest, the
// branches that had not yet been tried when the cont branch matched.
type frMatchCont struct {
	At        core.FileSpan
	Scrutinee core.Value
	Rest      []core.Branch
	Valid     *atomic.Bool
}

// frTestPattern saves pattern-machine state across a user predicate call
// (spec 4.4, "Test(sp, i, pats)"): once the predicate returns, its
// truthiness becomes peRet{B: ...} and the pattern machine resumes from
// PStack/Vars exactly where it suspended.
type frTestPattern struct {
	At        core.FileSpan
	Scrutinee core.Value
	Cur       core.Branch
	Rest      []core.Branch
	PStack    []patFrame
	Vars      []core.Value
}

type frMapProc struct {
	Sp1, Sp2 core.FileSpan
	Fn       core.Value
	Uncs     []core.Uncons
	Accum    []core.Value
}

func (frList) isFrame()        {}
func (frDottedList) isFrame()  {}
func (frDottedList2) isFrame() {}
func (frAppFn) isFrame()       {}
func (frApp) isFrame()         {}
func (frIf) isFrame()          {}
func (frDef) isFrame()         {}
func (frEvalSeq) isFrame()     {}
func (frDrop) isFrame()        {}
func (frRet) isFrame()         {}
func (frMatch) isFrame()       {}
func (frMatchCont) isFrame()   {}
func (frTestPattern) isFrame() {}
func (frMapProc) isFrame()     {}
