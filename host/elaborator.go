package host

import (
	"strconv"
	"sync"

	"github.com/proofscript/lispcore/core"
)

// Elaborator is a minimal in-memory stand-in for a real proof tool's
// goal/declaration state (spec 6, "Elaborator"): enough to exercise
// GetGoals and AddThm end-to-end. InferType, Refine and PrettyPrint
// require actual type-checking/pretty-printing logic a demo host has
// no business inventing, so they report core.ErrUnimplemented, which
// the builtins package turns into the standard "unimplemented" info
// diagnostic (spec 4.3).
type Elaborator struct {
	mu       sync.Mutex
	goals    []core.Value
	theorems map[string]core.Value
}

// NewElaborator returns an elaborator with no open goals.
func NewElaborator() *Elaborator {
	return &Elaborator{theorems: map[string]core.Value{}}
}

// PushGoal adds an open goal, for a host embedding this package to
// seed state before handing control to the evaluator.
func (e *Elaborator) PushGoal(goal core.Value) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.goals = append(e.goals, goal)
}

func (e *Elaborator) InferType(at core.FileSpan, args []core.Value) (core.Value, error) {
	return nil, core.ErrUnimplemented
}

func (e *Elaborator) Refine(at core.FileSpan, args []core.Value) (core.Value, error) {
	return nil, core.ErrUnimplemented
}

func (e *Elaborator) GetGoals(at core.FileSpan, args []core.Value) (core.Value, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return core.List{Elems: append([]core.Value(nil), e.goals...)}, nil
}

// AddThm expects (name-atom, type, proof?); it records the declaration
// and clears any goal whose Type equals the declared type.
func (e *Elaborator) AddThm(at core.FileSpan, args []core.Value) (core.Value, error) {
	if len(args) < 2 {
		return nil, core.NewShapeError("add-thm!: expected (name type ...)")
	}
	name, ok := core.Unwrap(args[0]).(core.Atom)
	if !ok {
		return nil, core.NewShapeError("add-thm!: first argument must be an atom")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.theorems[at.File.Name+"#"+strconv.Itoa(int(name.ID))] = args[1]
	remaining := e.goals[:0:0]
	for _, g := range e.goals {
		if ty, err := core.GoalType(g); err == nil && core.Equal(ty, args[1]) {
			continue
		}
		remaining = append(remaining, g)
	}
	e.goals = remaining
	return core.Undef, nil
}

func (e *Elaborator) PrettyPrint(at core.FileSpan, args []core.Value) (core.Value, error) {
	return nil, core.ErrUnimplemented
}
