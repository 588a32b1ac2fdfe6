package engine

import (
	"fmt"

	"github.com/proofscript/lispcore/core"
)

// Host bundles the collaborators the core consumes (spec 6): the atom
// table, a value printer, a diagnostic sink, and the elaborator's opaque
// proof-state primitives.
type Host struct {
	Atoms   core.AtomTable
	Printer core.Printer
	Diag    core.DiagSink
	Elab    core.Elaborator
}

// maxStackDepth is an ambient safety net absent from spec.md's own
// invariants: the control stack may in principle grow without bound for
// non-tail recursion, but an unbounded Go slice backing a pathological
// script is a memory-exhaustion risk a production host should not take.
// Grounded on the teacher's engine.EvaluationStack, which caps recursion
// at a fixed depth for the same reason.
const maxStackDepth = 100_000

// Context is the evaluator's ambient state (spec 3.5): the indexed local
// bindings IR Local(i) reads, the control stack of suspended frames, and
// the file identity tagging freshly-synthesised spans.
type Context struct {
	ctx           []core.Value
	stack         []Frame
	file          core.File
	host          Host
	maxStackDepth int
}

// NewContext creates an evaluator context for host, starting in file
// "<input>" with empty bindings (spec 6, "Evaluate... from a fresh
// state with empty ctx and stack").
func NewContext(host Host) *Context {
	return &Context{file: core.File{Name: "<input>"}, host: host, maxStackDepth: maxStackDepth}
}

// SetMaxStackDepth overrides the default control-stack depth limit, for
// a host whose config (e.g. a `.lispcorerc`) wants a tighter or looser
// bound than the ambient default.
func (c *Context) SetMaxStackDepth(n int) { c.maxStackDepth = n }

// fspan tags a bare byte-offset range with the context's current file,
// for callers (e.g. a host's IR builder) that only have a Range in hand.
func (c *Context) fspan(sp core.Range) core.FileSpan {
	return core.FileSpan{File: c.file, Span: sp}
}

// procPos computes a Lambda's defining position (spec 4.2.1): Named if
// the frame directly beneath the soon-to-be-pushed activation is a Def
// with a binding name, Unnamed otherwise.
func (c *Context) procPos(at core.FileSpan) core.ProcPos {
	if len(c.stack) > 0 {
		if d, ok := c.stack[len(c.stack)-1].(frDef); ok && d.Binding != nil {
			return core.ProcPos{Named: true, At: at, Name: d.Binding.Atom}
		}
	}
	return core.ProcPos{At: at}
}

func procLabel(pos core.ProcPos, atoms core.AtomTable) string {
	if pos.Named {
		return atoms.Name(pos.Name) + "()"
	}
	return "[fn]"
}

// Evaluate runs ir from a fresh state (spec 6).
func (c *Context) Evaluate(ir core.IR) (core.Value, error) {
	c.ctx = nil
	c.stack = nil
	return c.run(stEval{IR: ir})
}

// CallFunc calls an already-constructed procedure value (spec 6).
func (c *Context) CallFunc(sp core.FileSpan, f core.Value, args []core.Value) (core.Value, error) {
	c.ctx = nil
	c.stack = nil
	return c.run(stApp{Sp1: sp, Sp2: sp, Fn: f, Done: args})
}

// CallOverridable resolves tag's name in the global binding table
// (permitting user overrides); if bound, calls that binding, otherwise
// calls the built-in directly (spec 6).
func (c *Context) CallOverridable(sp core.FileSpan, tag core.BuiltinTag, args []core.Value) (core.Value, error) {
	name := core.BuiltinName(tag)
	id := c.host.Atoms.GetAtom(name)
	if b, ok := c.host.Atoms.Lookup(id); ok && b.Value != nil {
		return c.CallFunc(sp, b.Value, args)
	}
	return c.CallFunc(sp, core.Proc{P: &core.Builtin{Tag: tag}}, args)
}

func (c *Context) push(f Frame) {
	c.stack = append(c.stack, f)
}

func (c *Context) pop() (Frame, bool) {
	if len(c.stack) == 0 {
		return nil, false
	}
	f := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return f, true
}

func (c *Context) fail(sp core.FileSpan, err error) (core.Value, error) {
	d, ok := err.(*core.Diagnostic)
	if !ok {
		d = &core.Diagnostic{Level: core.Error, Kind: "user", Cause: err}
	}
	if d.At == (core.FileSpan{}) {
		d.At = sp
	}
	d.WithTrail(c.stackTrail())
	if c.host.Diag != nil {
		c.host.Diag.Push(d)
	}
	return nil, d
}

func errf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
