package host

import "github.com/proofscript/lispcore/core"

// DiagSink is an in-memory diagnostic transport (spec 6): every pushed
// Diagnostic is retained in order, for a CLI or test to drain after a
// run. A real LSP-backed host would forward each Push over the wire
// instead (out of scope, spec 1(d)); this one stands in for that.
type DiagSink struct {
	All []*core.Diagnostic
}

// NewDiagSink returns an empty sink.
func NewDiagSink() *DiagSink { return &DiagSink{} }

func (s *DiagSink) Push(d *core.Diagnostic) {
	s.All = append(s.All, d)
}

// Drain returns every diagnostic pushed so far and clears the sink.
func (s *DiagSink) Drain() []*core.Diagnostic {
	out := s.All
	s.All = nil
	return out
}
