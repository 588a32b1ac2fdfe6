package engine

import "github.com/proofscript/lispcore/core"

// Ret builds the State a builtin should return once it has an ordinary
// computed value (spec 4.3): the vast majority of primitives land here.
func (c *Context) Ret(v core.Value) State { return stRet{V: v} }

// TailCall builds the State a builtin should return when it needs to
// apply another procedure in its own place — apply, map called with no
// input lists, async, lookup's default-procedure fallback (spec 4.3) — so
// that call participates in tail-call elimination exactly like any
// ordinary application would, instead of the builtin recursing into
// run() itself.
func (c *Context) TailCall(sp1, sp2 core.FileSpan, fn core.Value, args []core.Value) State {
	return stApp{Sp1: sp1, Sp2: sp2, Fn: fn, Done: args}
}

// StartMap builds the initial State for the map primitive given one or
// more input lists (spec 4.3, "map"): uncs is one lazy cursor per
// input list, advanced in lockstep by the engine's own MapProc state.
func (c *Context) StartMap(sp1, sp2 core.FileSpan, fn core.Value, uncs []core.Uncons) State {
	return stMapProc{Sp1: sp1, Sp2: sp2, Fn: fn, Uncs: uncs}
}

// Host exposes the collaborators passed to NewContext (spec 6), for
// builtins that need the atom table, printer, diagnostic sink, or
// elaborator.
func (c *Context) Host() Host { return c.host }

// File reports the file the engine is currently executing in, for
// builtins that need to stamp a value with the current position (e.g.
// constructing a ProcPos or a Span by hand).
func (c *Context) File() core.File { return c.file }

// WithSpan exposes withSpan to the builtins package, so a primitive can
// pin its own call-site span onto an error exactly as the engine's own
// raise sites do.
func WithSpan(sp core.FileSpan, err error) error { return withSpan(sp, err) }
