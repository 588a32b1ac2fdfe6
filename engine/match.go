package engine

import (
	"sync/atomic"

	"github.com/proofscript/lispcore/core"
)

// stepMatch tries the next remaining branch, seeding a fresh pattern
// machine over its pattern against the scrutinee (spec 4.5). Exhausting
// Branches without a match is the one place "match failed" is raised.
func (c *Context) stepMatch(s stMatch) (State, error) {
	if len(s.Branches) == 0 {
		return nil, withSpan(s.At, core.NewMatchFailure())
	}
	cur := s.Branches[0]
	rest := s.Branches[1:]
	vars := make([]core.Value, cur.Vars)
	for i := range vars {
		vars[i] = core.Undef
	}
	return stPattern{
		At:        s.At,
		Scrutinee: s.Scrutinee,
		Cur:       cur,
		Rest:      rest,
		Vars:      vars,
		PState:    peEval{Pat: cur.Pat, E: s.Scrutinee},
	}, nil
}

// stepPattern advances the pattern machine one turn: either it reaches a
// verdict (matched or not), or it suspends on a Test predicate, in which
// case the predicate (a procedure already bound in ctx at a slot fixed
// at compile time) is applied to the whole scrutinee and the pattern
// machine's state is parked in a frTestPattern frame until that
// application returns (spec 4.4).
func (c *Context) stepPattern(s stPattern) (State, error) {
	pstack := s.PStack
	verdict, ok, pending := patternStep(&pstack, s.Vars, s.PState)
	if !ok {
		c.push(frTestPattern{
			At:        s.At,
			Scrutinee: s.Scrutinee,
			Cur:       s.Cur,
			Rest:      s.Rest,
			PStack:    pstack,
			Vars:      s.Vars,
		})
		pred := c.ctx[pending.Slot]
		return stApp{Sp1: pending.At, Sp2: pending.At, Fn: pred, Done: []core.Value{s.Scrutinee}}, nil
	}
	if !verdict {
		return stMatch{At: s.At, Scrutinee: s.Scrutinee, Branches: s.Rest}, nil
	}

	c.ctx = append(c.ctx, s.Vars...)
	if s.Cur.Cont {
		valid := &atomic.Bool{}
		valid.Store(true)
		c.ctx = append(c.ctx, core.Proc{P: &core.MatchCont{Valid: valid}})
		c.push(frMatchCont{At: s.At, Scrutinee: s.Scrutinee, Rest: s.Rest, Valid: valid})
		c.push(frDrop{})
	}
	for range s.Vars {
		c.push(frDrop{})
	}
	return stEval{IR: s.Cur.Eval}, nil
}
