// Package host is a minimal, self-contained stand-in for the
// surrounding proof-elaboration tool: an in-memory atom table, value
// printer, diagnostic sink, and elaborator, sufficient to run the
// evaluator end-to-end without a real proof tool attached.
package host

import (
	"sync"

	"github.com/proofscript/lispcore/core"
)

// AtomTable is a thread-naive, in-memory implementation of
// core.AtomTable: names are interned once and never reused, bindings
// are stored in a plain map. The mutex exists only because a Ref cell
// may escape into a host-owned worker (spec 5); the table itself is
// consulted exclusively from the interpreter thread during a run.
type AtomTable struct {
	mu       sync.Mutex
	byName   map[string]core.AtomID
	names    []string
	bindings map[core.AtomID]core.Binding
}

// NewAtomTable returns an empty table.
func NewAtomTable() *AtomTable {
	return &AtomTable{
		byName:   map[string]core.AtomID{},
		bindings: map[core.AtomID]core.Binding{},
	}
}

func (t *AtomTable) GetAtom(name string) core.AtomID {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.byName[name]; ok {
		return id
	}
	id := core.AtomID(len(t.names))
	t.names = append(t.names, name)
	t.byName[name] = id
	return id
}

func (t *AtomTable) Name(id core.AtomID) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if int(id) < 0 || int(id) >= len(t.names) {
		return "<unknown atom>"
	}
	return t.names[id]
}

func (t *AtomTable) Lookup(id core.AtomID) (core.Binding, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	b, ok := t.bindings[id]
	return b, ok
}

func (t *AtomTable) Bind(id core.AtomID, b core.Binding) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.bindings[id] = b
}
