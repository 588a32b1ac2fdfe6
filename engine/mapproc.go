package engine

import "github.com/proofscript/lispcore/core"

// stepMapProc drives one round of the map primitive (spec 4.3, "map"):
// pop one element off every input cursor in lockstep, apply Fn to the
// tuple, and repeat, collecting results, until the first cursor runs
// dry — at which point every other cursor must be dry too, or the
// inputs disagreed in length.
func (c *Context) stepMapProc(s stMapProc) (State, error) {
	uncs := s.Uncs
	first, ok := uncs[0].Uncons()
	if !ok {
		for _, u := range uncs {
			if !u.Exactly(0) {
				return nil, withSpan(s.Sp1, core.NewShapeError("mismatched input length"))
			}
		}
		return stRet{V: core.List{Elems: s.Accum}}, nil
	}

	args := make([]core.Value, 0, len(uncs))
	args = append(args, first)
	for i := 1; i < len(uncs); i++ {
		e, ok := uncs[i].Uncons()
		if !ok {
			return nil, withSpan(s.Sp1, core.NewShapeError("mismatched input length"))
		}
		args = append(args, e)
	}
	c.push(frMapProc{Sp1: s.Sp1, Sp2: s.Sp2, Fn: s.Fn, Uncs: uncs, Accum: s.Accum})
	return stApp{Sp1: s.Sp1, Sp2: s.Sp2, Fn: s.Fn, Done: args}, nil
}
