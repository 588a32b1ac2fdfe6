package engine

import "github.com/proofscript/lispcore/core"

// stackTrail walks the control stack top to bottom, collecting every
// activation (frRet) frame into a trail of (FileSpan, label) pairs
// (spec 4.2.4): the span is where that activation's procedure was
// defined, the label is its name ("name()") or "[fn]" if anonymous.
// Runs of identical frames from deep non-tail self-recursion are
// compressed by core.Diagnostic.WithTrail, not here.
func (c *Context) stackTrail() []core.Frame {
	var trail []core.Frame
	for i := len(c.stack) - 1; i >= 0; i-- {
		r, ok := c.stack[i].(frRet)
		if !ok {
			continue
		}
		trail = append(trail, core.Frame{
			At:    r.ProcPos.At,
			Label: procLabel(r.ProcPos, c.host.Atoms),
		})
	}
	return trail
}
