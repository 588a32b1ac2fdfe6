// Package builtins implements the fixed palette of primitives spec.md
// 4.3 describes, one concern per file, each registering itself into
// engine.BuiltinDispatch from an init function so that package engine
// never needs to import this one (avoiding the cycle the other
// direction would create).
package builtins

import (
	"math/big"

	"github.com/proofscript/lispcore/core"
	"github.com/proofscript/lispcore/engine"
)

func init() {
	engine.BuiltinDispatch[core.BAdd] = badd
	engine.BuiltinDispatch[core.BSub] = bsub
	engine.BuiltinDispatch[core.BMul] = bmul
	engine.BuiltinDispatch[core.BDiv] = bdiv
	engine.BuiltinDispatch[core.BMod] = bmod
	engine.BuiltinDispatch[core.BMax] = bmax
	engine.BuiltinDispatch[core.BMin] = bmin
}

func asInts(args []core.Value) ([]*big.Int, error) {
	ints := make([]*big.Int, len(args))
	for i, a := range args {
		n, err := core.AsInt(a)
		if err != nil {
			return nil, err
		}
		ints[i] = n
	}
	return ints, nil
}

func badd(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	ints, err := asInts(args)
	if err != nil {
		return nil, engine.WithSpan(sp1, err)
	}
	sum := big.NewInt(0)
	for _, n := range ints {
		sum.Add(sum, n)
	}
	return c.Ret(core.Number{Int: sum}), nil
}

func bmul(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	ints, err := asInts(args)
	if err != nil {
		return nil, engine.WithSpan(sp1, err)
	}
	prod := big.NewInt(1)
	for _, n := range ints {
		prod.Mul(prod, n)
	}
	return c.Ret(core.Number{Int: prod}), nil
}

// bsub negates its sole argument, or left-folds subtraction over two or
// more (spec 4.3, "Sub").
func bsub(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	ints, err := asInts(args)
	if err != nil {
		return nil, engine.WithSpan(sp1, err)
	}
	if len(ints) == 1 {
		return c.Ret(core.Number{Int: new(big.Int).Neg(ints[0])}), nil
	}
	acc := new(big.Int).Set(ints[0])
	for _, n := range ints[1:] {
		acc.Sub(acc, n)
	}
	return c.Ret(core.Number{Int: acc}), nil
}

// bdiv and bmod use math/big's Euclidean DivMod (remainder always
// non-negative), the "floor/remainder semantics of the big-integer
// library" spec 4.3 leaves to the host's library of choice.
func bdiv(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	ints, err := asInts(args)
	if err != nil {
		return nil, engine.WithSpan(sp1, err)
	}
	acc := new(big.Int).Set(ints[0])
	q, m := new(big.Int), new(big.Int)
	for _, n := range ints[1:] {
		if n.Sign() == 0 {
			return nil, engine.WithSpan(sp1, core.NewUserError("division by zero"))
		}
		q.DivMod(acc, n, m)
		acc = new(big.Int).Set(q)
	}
	return c.Ret(core.Number{Int: acc}), nil
}

func bmod(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	ints, err := asInts(args)
	if err != nil {
		return nil, engine.WithSpan(sp1, err)
	}
	acc := new(big.Int).Set(ints[0])
	q, m := new(big.Int), new(big.Int)
	for _, n := range ints[1:] {
		if n.Sign() == 0 {
			return nil, engine.WithSpan(sp1, core.NewUserError("division by zero"))
		}
		q.DivMod(acc, n, m)
		acc = new(big.Int).Set(m)
	}
	return c.Ret(core.Number{Int: acc}), nil
}

func bmax(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	ints, err := asInts(args)
	if err != nil {
		return nil, engine.WithSpan(sp1, err)
	}
	best := ints[0]
	for _, n := range ints[1:] {
		if n.Cmp(best) > 0 {
			best = n
		}
	}
	return c.Ret(core.Number{Int: best}), nil
}

func bmin(c *engine.Context, sp1, sp2 core.FileSpan, args []core.Value) (engine.State, error) {
	ints, err := asInts(args)
	if err != nil {
		return nil, engine.WithSpan(sp1, err)
	}
	best := ints[0]
	for _, n := range ints[1:] {
		if n.Cmp(best) < 0 {
			best = n
		}
	}
	return c.Ret(core.Number{Int: best}), nil
}
