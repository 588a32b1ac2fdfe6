package builtins

import (
	"math/big"

	"github.com/proofscript/lispcore/core"
	"github.com/proofscript/lispcore/engine"
)

func init() {
	engine.BuiltinDispatch[core.BLt] = chained(func(a, b *big.Int) bool { return a.Cmp(b) < 0 })
	engine.BuiltinDispatch[core.BLe] = chained(func(a, b *big.Int) bool { return a.Cmp(b) <= 0 })
	engine.BuiltinDispatch[core.BGt] = chained(func(a, b *big.Int) bool { return a.Cmp(b) > 0 })
	engine.BuiltinDispatch[core.BGe] = chained(func(a, b *big.Int) bool { return a.Cmp(b) >= 0 })
	engine.BuiltinDispatch[core.BEq] = chained(func(a, b *big.Int) bool { return a.Cmp(b) == 0 })
}

// chained builds a BuiltinFunc computing the chained predicate of spec
// 4.3: true iff p(a_i, a_{i+1}) holds for every adjacent pair, vacuously
// true on a single argument.
func chained(p func(a, b *big.Int) bool) engine.BuiltinFunc {
	return func(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
		ints, err := asInts(args)
		if err != nil {
			return nil, engine.WithSpan(sp1, err)
		}
		for i := 0; i+1 < len(ints); i++ {
			if !p(ints[i], ints[i+1]) {
				return c.Ret(core.Bool(false)), nil
			}
		}
		return c.Ret(core.Bool(true)), nil
	}
}
