package engine

import "github.com/proofscript/lispcore/core"

// run is the reduction loop of spec 4.2: State is repeatedly rewritten,
// consulting and mutating the control stack, until a State::Ret reaches
// an empty stack (the whole computation's result) or something raises a
// Diagnostic. Every branch below corresponds to exactly one transition
// of the spec's (State, Stack) relation; none of them recurse into run
// itself; depth is bounded only by maxStackDepth on c.stack.
func (c *Context) run(initial State) (core.Value, error) {
	active := initial
	for {
		if len(c.stack) > c.maxStackDepth {
			return c.fail(c.spanOf(active), errf("stack depth exceeded"))
		}

		var next State
		var err error

		switch s := active.(type) {
		case stEval:
			next, err = c.stepEval(s.IR)

		case stRet:
			next, err = c.stepRet(s.V)

		case stList:
			if len(s.Rest) == 0 {
				next = stRet{V: core.Span{At: s.At, Elem: core.List{Elems: s.Accum}}}
			} else {
				c.push(frList{At: s.At, Accum: s.Accum, Rest: s.Rest[1:]})
				next = stEval{IR: s.Rest[0]}
			}

		case stDottedList:
			if len(s.Rest) == 0 {
				c.push(frDottedList2{Accum: s.Accum})
				next = stEval{IR: s.Tail}
			} else {
				c.push(frDottedList{Accum: s.Accum, Rest: s.Rest[1:], Tail: s.Tail})
				next = stEval{IR: s.Rest[0]}
			}

		case stApp:
			if len(s.Rest) == 0 {
				next, err = c.apply(s.Sp1, s.Sp2, s.Fn, s.Done)
			} else {
				c.push(frApp{Sp1: s.Sp1, Sp2: s.Sp2, Fn: s.Fn, Done: s.Done, Rest: s.Rest[1:]})
				next = stEval{IR: s.Rest[0]}
			}

		case stMatch:
			next, err = c.stepMatch(s)

		case stPattern:
			next, err = c.stepPattern(s)

		case stMapProc:
			next, err = c.stepMapProc(s)

		default:
			err = errf("unreachable state")
		}

		if err != nil {
			return c.fail(core.FileSpan{File: c.file}, err)
		}
		if done, ok := next.(stRet); ok && len(c.stack) == 0 {
			return done.V, nil
		}
		active = next
	}
}

// stepEval dispatches one IR node (spec 4.2.1). Every variant either
// produces an immediate stRet, pushes exactly one frame and descends
// into a sub-expression, or (List/DottedList literals) hands off to a
// list-building state without pushing a frame.
func (c *Context) stepEval(ir core.IR) (State, error) {
	switch n := ir.(type) {
	case *core.IRLocal:
		return stRet{V: c.ctx[n.Index]}, nil

	case *core.IRGlobal:
		if b, has := c.host.Atoms.Lookup(n.Atom); has && b.Value != nil {
			return stRet{V: b.Value}, nil
		}
		name := c.host.Atoms.Name(n.Atom)
		tag, isBuiltin := core.BuiltinNames[name]
		if !isBuiltin {
			return nil, withSpan(n.At, core.NewLookupError(name))
		}
		v := core.Value(core.Proc{P: &core.Builtin{Tag: tag}})
		c.host.Atoms.Bind(n.Atom, core.Binding{Value: v})
		return stRet{V: v}, nil

	case *core.IRConst:
		return stRet{V: n.Value}, nil

	case *core.IRList:
		return stList{At: n.At, Rest: n.Elems}, nil

	case *core.IRDottedList:
		return stDottedList{Rest: n.Elems, Tail: n.Tail}, nil

	case *core.IRApp:
		c.push(frAppFn{Sp1: n.CallSite, Sp2: n.HeadSite, Args: n.Args})
		return stEval{IR: n.Fn}, nil

	case *core.IRIf:
		c.push(frIf{Then: n.Then, Else: n.Else})
		return stEval{IR: n.Cond}, nil

	case *core.IRFocus:
		return nil, withSpan(core.FileSpan{File: c.file}, core.NewShapeError("unimplemented: focus"))

	case *core.IRDef:
		c.push(frDef{Binding: n.Binding})
		return stEval{IR: n.Value}, nil

	case *core.IREval:
		if len(n.Elems) == 0 {
			return stRet{V: core.Undef}, nil
		}
		c.push(frEvalSeq{Rest: n.Elems[1:]})
		return stEval{IR: n.Elems[0]}, nil

	case *core.IRLambda:
		return stRet{V: core.Proc{P: &core.Lambda{
			Pos:  c.procPos(n.At),
			Env:  append([]core.Value(nil), c.ctx...),
			Spec: n.Spec,
			Code: n.Code,
			File: c.file,
		}}}, nil

	case *core.IRMatch:
		c.push(frMatch{At: n.At, Branches: n.Branches})
		return stEval{IR: n.Scrutinee}, nil

	default:
		return nil, errf("unreachable IR node")
	}
}

// stepRet pops one frame and resumes it with the value just produced
// (spec 4.2.3). An empty stack is handled by the caller (run), which
// treats it as the whole computation's result.
func (c *Context) stepRet(ret core.Value) (State, error) {
	f, has := c.pop()
	if !has {
		return stRet{V: ret}, nil
	}
	switch fr := f.(type) {
	case frList:
		return stList{At: fr.At, Accum: append(fr.Accum, ret), Rest: fr.Rest}, nil

	case frDottedList:
		return stDottedList{Accum: append(fr.Accum, ret), Rest: fr.Rest, Tail: fr.Tail}, nil

	case frDottedList2:
		return stRet{V: finishDottedList(fr.Accum, ret)}, nil

	case frAppFn:
		return stApp{Sp1: fr.Sp1, Sp2: fr.Sp2, Fn: ret, Rest: fr.Args}, nil

	case frApp:
		return stApp{Sp1: fr.Sp1, Sp2: fr.Sp2, Fn: fr.Fn, Done: append(fr.Done, ret), Rest: fr.Rest}, nil

	case frIf:
		if core.Truthy(core.Unwrap(ret)) {
			return stEval{IR: fr.Then}, nil
		}
		return stEval{IR: fr.Else}, nil

	case frDef:
		return c.stepDef(fr, ret)

	case frEvalSeq:
		if len(fr.Rest) == 0 {
			return stRet{V: ret}, nil
		}
		c.push(frEvalSeq{Rest: fr.Rest[1:]})
		return stEval{IR: fr.Rest[0]}, nil

	case frDrop:
		c.ctx = c.ctx[:len(c.ctx)-1]
		return stRet{V: ret}, nil

	case frRet:
		c.file = fr.PrevFile
		c.ctx = fr.PrevCtx
		return stRet{V: ret}, nil

	case frMatch:
		return stMatch{At: fr.At, Scrutinee: ret, Branches: fr.Branches}, nil

	case frMatchCont:
		fr.Valid.Store(false)
		return stRet{V: ret}, nil

	case frTestPattern:
		return stPattern{
			At:        fr.At,
			Scrutinee: fr.Scrutinee,
			Cur:       fr.Cur,
			Rest:      fr.Rest,
			PStack:    fr.PStack,
			Vars:      fr.Vars,
			PState:    peRet{B: core.Truthy(core.Unwrap(ret))},
		}, nil

	case frMapProc:
		return stMapProc{Sp1: fr.Sp1, Sp2: fr.Sp2, Fn: fr.Fn, Uncs: fr.Uncs, Accum: append(fr.Accum, ret)}, nil

	default:
		return nil, errf("unreachable frame kind")
	}
}

// finishDottedList appends a just-evaluated tail expression's value into
// accum, flattening it if it is itself list-shaped (spec 4.2.3): a
// DottedList whose tail evaluates to a List or another DottedList reads
// identically to a single flat list either way (core.Equal treats both
// forms alike), so flattening here is a normalization, not a
// correctness requirement.
func finishDottedList(accum []core.Value, tail core.Value) core.Value {
	if len(accum) == 0 {
		return tail
	}
	switch u := core.Unwrap(tail).(type) {
	case core.List:
		return core.List{Elems: append(append([]core.Value(nil), accum...), u.Elems...)}
	case core.DottedList:
		return core.DottedList{Elems: append(append([]core.Value(nil), accum...), u.Elems...), Tail: u.Tail}
	default:
		return core.DottedList{Elems: accum, Tail: tail}
	}
}

// stepDef resolves a Def/assignment once its value expression has
// returned (spec 4.2.1): a top-level binding writes directly into the
// atom table; a local one threads the value into ctx, guarded by a
// Drop frame, but only if the enclosing frame is itself one that
// tolerates a mid-sequence local (an application's argument list or a
// begin-style sequence) — anything else (e.g. mid-application-spine)
// gets its frame pushed back untouched. Def itself always evaluates to
// undef; the bound value is never the expression's own result.
func (c *Context) stepDef(fr frDef, value core.Value) (State, error) {
	next, has := c.pop()
	switch {
	case !has:
		if fr.Binding != nil {
			at := fr.Binding.At
			c.host.Atoms.Bind(fr.Binding.Atom, core.Binding{DefinedAt: &at, Value: value})
		}
	case supportsDef(next):
		c.push(frDrop{})
		c.push(next)
		c.ctx = append(c.ctx, value)
	default:
		c.push(next)
	}
	return stRet{V: core.Undef}, nil
}

// supportsDef reports whether a frame's computation may reference a
// local just bound by a (def ...) appearing in argument/sequence
// position beneath it (spec 4.2.1).
func supportsDef(f Frame) bool {
	switch f.(type) {
	case frApp, frEvalSeq:
		return true
	default:
		return false
	}
}

// spanOf best-efforts a span to attach to an error when none more
// specific is available (e.g. "stack depth exceeded", or an unreachable
// default case), by tagging the current file with a zero span.
func (c *Context) spanOf(_ State) core.FileSpan {
	return core.FileSpan{File: c.file}
}

// withSpan pins err's primary span (spec 7's every diagnostic carries a
// FileSpan): most of the error constructors in core/diagnostic.go are
// span-agnostic by design, since the raise site always knows the exact
// span better than a generic fallback would. A non-Diagnostic error
// (unexpected: every core constructor returns one) is wrapped rather
// than silently dropped.
func withSpan(sp core.FileSpan, err error) error {
	if d, ok := err.(*core.Diagnostic); ok {
		d.At = sp
		return d
	}
	return &core.Diagnostic{Level: core.Error, At: sp, Kind: "user", Cause: err}
}
