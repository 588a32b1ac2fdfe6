package main

import (
	"github.com/proofscript/lispcore/engine"
	"github.com/proofscript/lispcore/host"
)

// environment bundles one evaluator session's collaborators: the atom
// table and elaborator persist across every top-level form a session
// evaluates (so a (def ...) in one form is visible to the next), while
// the engine.Context itself resets its local bindings and control
// stack on each individual Evaluate call (spec 6).
type environment struct {
	atoms   *host.AtomTable
	printer *host.Printer
	diag    *host.DiagSink
	elab    *host.Elaborator
	ctx     *engine.Context
	cc      *compiler
}

func newEnvironment(cfg host.Config) *environment {
	atoms := host.NewAtomTable()
	printer := host.NewPrinter(atoms)
	diag := host.NewDiagSink()
	elab := host.NewElaborator()

	ctx := engine.NewContext(engine.Host{
		Atoms:   atoms,
		Printer: printer,
		Diag:    diag,
		Elab:    elab,
	})
	ctx.SetMaxStackDepth(cfg.MaxStackDepth)

	return &environment{
		atoms:   atoms,
		printer: printer,
		diag:    diag,
		elab:    elab,
		ctx:     ctx,
		cc:      newCompiler(atoms),
	}
}

// runForm compiles and evaluates one top-level datum, draining and
// returning whatever diagnostics it produced.
func (e *environment) runForm(d datum) (string, []string, error) {
	ir, err := e.cc.compile(d, nil)
	if err != nil {
		return "", nil, err
	}
	v, err := e.ctx.Evaluate(ir)

	var lines []string
	for _, diag := range e.diag.Drain() {
		lines = append(lines, diag.Error())
	}
	if err != nil {
		return "", lines, err
	}
	return e.printer.Print(v), lines, nil
}
