package core

import (
	"fmt"

	"github.com/mpvl/unique"
)

// Level is a diagnostic's severity (spec 6, "Diagnostics").
type Level int

const (
	Info Level = iota
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Info:
		return "info"
	case Warning:
		return "warning"
	default:
		return "error"
	}
}

// Frame is one entry of a stack trail: the call site and a human label
// ("name()" for a named procedure position, "[fn]" for an unnamed one —
// spec 4.2.4).
type Frame struct {
	At    FileSpan
	Label string
}

// Diagnostic is the error taxonomy of spec 7, unified into a single
// carrier: a severity, the primary span, a boxed cause, and an optional
// stack trail collected by walking the control stack (spec 4.2.4).
type Diagnostic struct {
	Level Level
	At    FileSpan
	Kind  string // "type", "arity", "lookup", "match", "continuation", "user", "shape"
	Cause error
	Trail []Frame
}

func (d *Diagnostic) Error() string {
	if d.Cause != nil {
		return d.Cause.Error()
	}
	return d.Kind
}

func (d *Diagnostic) Unwrap() error { return d.Cause }

// WithTrail attaches a deduplicated stack trail to the diagnostic and
// returns it, for chaining at the point an error escapes the engine.
//
// Deep non-tail self-recursion leaves one activation frame per level,
// each with the same definition span and label, which would otherwise
// produce a trail with thousands of back-to-back identical frames (a
// tail call replaces its caller's frame, so tail loops leave just one).
// dedupeTrail collapses runs
// of consecutive, identical frames down to one, using mpvl/unique's
// sort-then-compact algorithm over a trivial identity ordering (the
// trail's existing order is the only order that matters here, so Less
// always reports the stable order and Equal does the real work).
func (d *Diagnostic) WithTrail(trail []Frame) *Diagnostic {
	d.Trail = dedupeTrail(trail)
	return d
}

type frameRun []Frame

func (r frameRun) Len() int           { return len(r) }
func (r frameRun) Less(i, j int) bool { return i < j }
func (r frameRun) Swap(i, j int)      { r[i], r[j] = r[j], r[i] }
func (r frameRun) Equal(i, j int) bool {
	return r[i].At == r[j].At && r[i].Label == r[j].Label
}

func dedupeTrail(trail []Frame) []Frame {
	if len(trail) < 2 {
		return trail
	}
	cp := append([]Frame(nil), trail...)
	n := unique.Sort(frameRun(cp))
	return cp[:n]
}

func typeErrorf(expected string, got Value) error {
	return &Diagnostic{Level: Error, Kind: "type",
		Cause: fmt.Errorf("expected %s, got %s", expected, renderKind(got))}
}

// TypeErrorWithValue renders got through printer (spec 7: "Message
// carries printer output of the offending value"). Call sites that hold
// a Printer (builtins, the engine) should prefer this over the bare
// typeErrorf a core accessor raises on its own.
func TypeErrorWithValue(expected string, got Value, printer Printer) error {
	rendered := renderKind(got)
	if printer != nil {
		rendered = printer.Print(got)
	}
	return &Diagnostic{Level: Error, Kind: "type",
		Cause: fmt.Errorf("expected %s, got %s", expected, rendered)}
}

func renderKind(v Value) string {
	switch Unwrap(v).(type) {
	case Atom:
		return "atom"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case List:
		return "list"
	case DottedList:
		return "dotted list"
	case Proc:
		return "procedure"
	case *Ref:
		return "ref"
	case AtomMap:
		return "atom map"
	case Goal:
		return "goal"
	case MVar:
		return "metavariable"
	case UnparsedFormula:
		return "formula"
	case undefType:
		return "undef"
	default:
		return "value"
	}
}

// NewArityError reports a procedure application with the wrong number of
// arguments. atLeast distinguishes "expected N argument(s)" (false) from
// "expected at least N argument(s)" (true) per spec 4.2.2.
func NewArityError(n int, atLeast bool) error {
	if atLeast {
		return &Diagnostic{Level: Error, Kind: "arity",
			Cause: fmt.Errorf("expected at least %d argument(s)", n)}
	}
	return &Diagnostic{Level: Error, Kind: "arity",
		Cause: fmt.Errorf("expected %d argument(s)", n)}
}

// NewLookupError reports a reference to an unbound global (spec 4.2.1).
func NewLookupError(name string) error {
	return &Diagnostic{Level: Error, Kind: "lookup",
		Cause: fmt.Errorf("Reference to unbound variable '%s'", name)}
}

// NewUnknownAtomError reports a map lookup by an atom the map never
// registered, with no default supplied (spec 4.3, "Atom maps").
func NewUnknownAtomError(name string) error {
	return &Diagnostic{Level: Error, Kind: "lookup",
		Cause: fmt.Errorf("unknown key '%s'", name)}
}

// NewMatchFailure reports that no branch of a Match matched (spec 4.5).
func NewMatchFailure() error {
	return &Diagnostic{Level: Error, Kind: "match", Cause: fmt.Errorf("match failed")}
}

// NewContinuationExpired reports invoking a MatchCont whose scope has
// ended (spec 4.2.2, 5).
func NewContinuationExpired() error {
	return &Diagnostic{Level: Error, Kind: "continuation",
		Cause: fmt.Errorf("continuation has expired")}
}

// NewUserError wraps an explicit (error s) call (spec 4.3, "I/O-like").
func NewUserError(msg string) error {
	return &Diagnostic{Level: Error, Kind: "user", Cause: fmt.Errorf("%s", msg)}
}

// NewShapeError reports apply's tail not being a list, or map's
// sequences disagreeing in length (spec 7).
func NewShapeError(msg string) error {
	return &Diagnostic{Level: Error, Kind: "shape", Cause: fmt.Errorf("%s", msg)}
}
