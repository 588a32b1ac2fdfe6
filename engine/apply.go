package engine

import "github.com/proofscript/lispcore/core"

// BuiltinFunc implements one tagged primitive (spec 4.3). It returns the
// next State directly rather than a bare Value so that primitives like
// apply and map can hand back a fresh stApp/stMapProc and participate in
// tail-call elimination exactly like a user call would.
type BuiltinFunc func(c *Context, sp1, sp2 core.FileSpan, args []core.Value) (State, error)

// BuiltinDispatch is populated by the builtins package's init, keeping
// this package ignorant of any individual primitive's implementation
// (and avoiding an import cycle: builtins imports engine, not the other
// way around).
var BuiltinDispatch = map[core.BuiltinTag]BuiltinFunc{}

// apply drives State::App's terminal case once every argument has been
// evaluated (spec 4.2.2): fn must unwrap to a Proc, argument count must
// satisfy its Spec, and then behavior forks on the three procedure kinds.
func (c *Context) apply(sp1, sp2 core.FileSpan, fn core.Value, args []core.Value) (State, error) {
	proc, ok := core.Unwrap(fn).(core.Proc)
	if !ok {
		return nil, withSpan(sp1, core.NewShapeError("not a function, cannot apply"))
	}
	spec := core.ProcSpec(proc.P)
	if !spec.Matches(len(args)) {
		return nil, withSpan(sp1, core.NewArityError(spec.N, spec.AtLeast))
	}
	switch p := proc.P.(type) {
	case *core.Builtin:
		return c.evaluateBuiltin(sp1, sp2, p.Tag, args)
	case *core.Lambda:
		return c.applyLambda(p, spec, args), nil
	case *core.MatchCont:
		return c.applyMatchCont(sp2, p)
	default:
		return nil, withSpan(sp1, core.NewShapeError("not a function, cannot apply"))
	}
}

func (c *Context) evaluateBuiltin(sp1, sp2 core.FileSpan, tag core.BuiltinTag, args []core.Value) (State, error) {
	fn, ok := BuiltinDispatch[tag]
	if !ok {
		return nil, withSpan(sp1, core.NewUserError("unimplemented: "+core.BuiltinName(tag)))
	}
	return fn(c, sp1, sp2, args)
}

// applyLambda binds args into a fresh copy of the closure's captured
// environment and transfers control to its body (spec 4.2.2). When the
// frame immediately below is itself an activation about to return
// (tail position), that frame is replaced in place instead of a new one
// being pushed: this is the entirety of the interpreter's tail-call
// elimination, and it falls out of frame *replacement* rather than any
// special-cased loop detection.
func (c *Context) applyLambda(p *core.Lambda, spec core.Spec, args []core.Value) State {
	newEnv := append([]core.Value(nil), p.Env...)
	if spec.AtLeast {
		newEnv = append(newEnv, args[:spec.N]...)
		overflow := append([]core.Value(nil), args[spec.N:]...)
		newEnv = append(newEnv, core.List{Elems: overflow})
	} else {
		newEnv = append(newEnv, args...)
	}

	prevFile, prevCtx := c.file, c.ctx
	if len(c.stack) > 0 {
		if tail, ok := c.stack[len(c.stack)-1].(frRet); ok {
			c.stack = c.stack[:len(c.stack)-1]
			prevFile, prevCtx = tail.PrevFile, tail.PrevCtx
		}
	}
	c.ctx = newEnv
	c.push(frRet{PrevFile: prevFile, PrevCtx: prevCtx, ProcPos: p.Pos, Code: p.Code})
	c.file = p.Pos.At.File
	return stEval{IR: p.Code}
}

// applyMatchCont resumes the match this continuation was captured from,
// unwinding every frame pushed since capture (spec 4.2.2, 4.5). A
// continuation is single-shot: the frame it targets, once found, is
// invalidated right along with it, so a second invocation always raises
// "continuation has expired".
func (c *Context) applyMatchCont(sp2 core.FileSpan, p *core.MatchCont) (State, error) {
	if !p.Valid.Load() {
		return nil, withSpan(sp2, core.NewContinuationExpired())
	}
	for {
		f, ok := c.pop()
		if !ok {
			return nil, withSpan(sp2, core.NewContinuationExpired())
		}
		switch fr := f.(type) {
		case frMatchCont:
			fr.Valid.Store(false)
			if fr.Valid == p.Valid {
				return stMatch{At: fr.At, Scrutinee: fr.Scrutinee, Branches: fr.Rest}, nil
			}
		case frDrop:
			c.ctx = c.ctx[:len(c.ctx)-1]
		case frRet:
			c.file = fr.PrevFile
			c.ctx = fr.PrevCtx
		}
	}
}
