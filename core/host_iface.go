package core

// Printer renders a value to a human-readable string (spec 6); the core
// delegates to it from Print, PrettyPrint, and diagnostic formatting but
// never implements rendering itself (out of scope, spec 1(b)).
type Printer interface {
	Print(v Value) string
}

// DiagSink is the host's diagnostic transport: info/warning/error
// reports are pushed into it (spec 6). Wire transport (LSP or otherwise)
// is the host's concern, not the core's (spec 1(d)).
type DiagSink interface {
	Push(d *Diagnostic)
}

// Elaborator is the opaque set of proof-state primitives (spec 1(c), 6)
// that elaborator-coupled built-ins forward to. Each method receives
// already-evaluated arguments and the call-site span (for diagnostics)
// and returns a value or an error; a host that does not implement a
// given operation should return ErrUnimplemented so the built-in can
// emit the standard "unimplemented" info diagnostic (spec 4.3).
type Elaborator interface {
	InferType(at FileSpan, args []Value) (Value, error)
	Refine(at FileSpan, args []Value) (Value, error)
	GetGoals(at FileSpan, args []Value) (Value, error)
	AddThm(at FileSpan, args []Value) (Value, error)
	PrettyPrint(at FileSpan, args []Value) (Value, error)
}

// ErrUnimplemented is returned by an Elaborator method the host has not
// (yet) implemented.
var ErrUnimplemented = &Diagnostic{Level: Info, Kind: "unimplemented"}
