package main

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"github.com/proofscript/lispcore/core"
)

// This reader is a demo front-end only (spec.md 1(a) explicitly leaves
// parsing source text into IR out of scope for the core): a small
// Scheme-like surface syntax good enough to drive the evaluator from
// the command line and REPL, not a full reimplementation of whatever
// surface syntax the original tool's parser accepts.

type datum interface{ isDatum() }

type symDatum string
type numDatum struct{ n *big.Int }
type strDatum string
type boolDatum bool
type quoteDatum struct{ inner datum }
type listDatum struct{ elems []datum }

func (symDatum) isDatum()   {}
func (numDatum) isDatum()   {}
func (strDatum) isDatum()   {}
func (boolDatum) isDatum()  {}
func (quoteDatum) isDatum() {}
func (listDatum) isDatum()  {}

// readAll tokenizes and parses every top-level datum in src.
func readAll(src string) ([]datum, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	var out []datum
	for !p.atEnd() {
		d, err := p.parseOne()
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

type parser struct {
	toks []string
	pos  int
}

func (p *parser) atEnd() bool { return p.pos >= len(p.toks) }

func (p *parser) peek() string {
	if p.atEnd() {
		return ""
	}
	return p.toks[p.pos]
}

func (p *parser) next() string {
	t := p.toks[p.pos]
	p.pos++
	return t
}

func (p *parser) parseOne() (datum, error) {
	if p.atEnd() {
		return nil, fmt.Errorf("unexpected end of input")
	}
	t := p.next()
	switch t {
	case "(":
		var elems []datum
		for {
			if p.atEnd() {
				return nil, fmt.Errorf("unexpected end of input, expected ')'")
			}
			if p.peek() == ")" {
				p.next()
				return listDatum{elems: elems}, nil
			}
			d, err := p.parseOne()
			if err != nil {
				return nil, err
			}
			elems = append(elems, d)
		}
	case ")":
		return nil, fmt.Errorf("unexpected ')'")
	case "'":
		inner, err := p.parseOne()
		if err != nil {
			return nil, err
		}
		return quoteDatum{inner: inner}, nil
	case "#t":
		return boolDatum(true), nil
	case "#f":
		return boolDatum(false), nil
	default:
		if t[0] == '"' {
			return strDatum(t[1 : len(t)-1]), nil
		}
		if n, ok := new(big.Int).SetString(t, 10); ok {
			return numDatum{n: n}, nil
		}
		return symDatum(t), nil
	}
}

// tokenize splits src into atomic tokens: parens, a leading quote, or
// maximal runs of non-whitespace/non-paren characters (strings are
// re-assembled whole, including embedded whitespace).
func tokenize(src string) ([]string, error) {
	var toks []string
	r := []rune(src)
	i := 0
	for i < len(r) {
		c := r[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case c == ';':
			for i < len(r) && r[i] != '\n' {
				i++
			}
		case c == '(' || c == ')' || c == '\'':
			toks = append(toks, string(c))
			i++
		case c == '"':
			start := i
			i++
			for i < len(r) && r[i] != '"' {
				if r[i] == '\\' {
					i++
				}
				i++
			}
			if i >= len(r) {
				return nil, fmt.Errorf("unterminated string literal")
			}
			i++
			toks = append(toks, string(r[start:i]))
		default:
			start := i
			for i < len(r) && !unicode.IsSpace(r[i]) && r[i] != '(' && r[i] != ')' && r[i] != '"' {
				i++
			}
			toks = append(toks, string(r[start:i]))
		}
	}
	return toks, nil
}

// compiler resolves symbols against a growing lexical scope (one name
// per ctx slot) and interns globals through atoms, producing the IR
// package engine actually walks.
type compiler struct {
	atoms core.AtomTable
}

func newCompiler(atoms core.AtomTable) *compiler { return &compiler{atoms: atoms} }

func (cc *compiler) compile(d datum, scope []string) (core.IR, error) {
	switch x := d.(type) {
	case numDatum:
		return &core.IRConst{Value: core.Number{Int: x.n}}, nil
	case strDatum:
		return &core.IRConst{Value: core.String(unescape(string(x)))}, nil
	case boolDatum:
		return &core.IRConst{Value: core.Bool(bool(x))}, nil
	case symDatum:
		return cc.compileSymbol(string(x), scope), nil
	case quoteDatum:
		v, err := cc.quoteValue(x.inner)
		if err != nil {
			return nil, err
		}
		return &core.IRConst{Value: v}, nil
	case listDatum:
		return cc.compileList(x.elems, scope)
	default:
		return nil, fmt.Errorf("unhandled datum %T", d)
	}
}

func (cc *compiler) compileSymbol(name string, scope []string) core.IR {
	for i := len(scope) - 1; i >= 0; i-- {
		if scope[i] == name {
			return &core.IRLocal{Index: i}
		}
	}
	return &core.IRGlobal{Atom: cc.atoms.GetAtom(name)}
}

func (cc *compiler) quoteValue(d datum) (core.Value, error) {
	switch x := d.(type) {
	case numDatum:
		return core.Number{Int: x.n}, nil
	case strDatum:
		return core.String(unescape(string(x))), nil
	case boolDatum:
		return core.Bool(bool(x)), nil
	case symDatum:
		return core.Atom{ID: cc.atoms.GetAtom(string(x))}, nil
	case quoteDatum:
		return cc.quoteValue(x.inner)
	case listDatum:
		elems := make([]core.Value, len(x.elems))
		for i, e := range x.elems {
			v, err := cc.quoteValue(e)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return core.List{Elems: elems}, nil
	default:
		return nil, fmt.Errorf("unhandled quoted datum %T", d)
	}
}

func (cc *compiler) compileList(elems []datum, scope []string) (core.IR, error) {
	if len(elems) == 0 {
		return &core.IRConst{Value: core.List{}}, nil
	}
	if head, ok := elems[0].(symDatum); ok {
		switch string(head) {
		case "if":
			if len(elems) != 4 {
				return nil, fmt.Errorf("if: expected (if cond then else)")
			}
			cond, err := cc.compile(elems[1], scope)
			if err != nil {
				return nil, err
			}
			then, err := cc.compile(elems[2], scope)
			if err != nil {
				return nil, err
			}
			els, err := cc.compile(elems[3], scope)
			if err != nil {
				return nil, err
			}
			return &core.IRIf{Cond: cond, Then: then, Else: els}, nil

		case "def":
			if len(elems) != 3 {
				return nil, fmt.Errorf("def: expected (def name value)")
			}
			sym, ok := elems[1].(symDatum)
			if !ok {
				return nil, fmt.Errorf("def: name must be a symbol")
			}
			val, err := cc.compile(elems[2], scope)
			if err != nil {
				return nil, err
			}
			atom := cc.atoms.GetAtom(string(sym))
			return &core.IRDef{Binding: &core.DefBinding{Atom: atom}, Value: val}, nil

		case "begin":
			return cc.compileSeq(elems[1:], scope)

		case "fn", "lambda":
			return cc.compileFn(elems[1:], scope)

		case "match":
			return cc.compileMatch(elems[1:], scope)
		}
	}
	fn, err := cc.compile(elems[0], scope)
	if err != nil {
		return nil, err
	}
	args := make([]core.IR, len(elems)-1)
	for i, e := range elems[1:] {
		ir, err := cc.compile(e, scope)
		if err != nil {
			return nil, err
		}
		args[i] = ir
	}
	return &core.IRApp{Fn: fn, Args: args}, nil
}

func (cc *compiler) compileSeq(elems []datum, scope []string) (core.IR, error) {
	irs := make([]core.IR, len(elems))
	for i, e := range elems {
		ir, err := cc.compile(e, scope)
		if err != nil {
			return nil, err
		}
		irs[i] = ir
	}
	return &core.IREval{Elems: irs}, nil
}

// compileFn reads (fn (p1 p2 ... *rest) body...): a parameter prefixed
// with "*" is the overflow-collecting final parameter of an AtLeast
// spec (spec.md 3.4).
func (cc *compiler) compileFn(elems []datum, scope []string) (core.IR, error) {
	if len(elems) < 1 {
		return nil, fmt.Errorf("fn: expected (fn (params...) body...)")
	}
	plist, ok := elems[0].(listDatum)
	if !ok {
		return nil, fmt.Errorf("fn: parameter list must be a list")
	}
	var names []string
	atLeast := false
	for i, p := range plist.elems {
		sym, ok := p.(symDatum)
		if !ok {
			return nil, fmt.Errorf("fn: parameter must be a symbol")
		}
		name := string(sym)
		if strings.HasPrefix(name, "*") {
			if i != len(plist.elems)-1 {
				return nil, fmt.Errorf("fn: *rest parameter must be last")
			}
			atLeast = true
			name = strings.TrimPrefix(name, "*")
		}
		names = append(names, name)
	}
	spec := core.ExactSpec(len(names))
	if atLeast {
		spec = core.AtLeastSpec(len(names) - 1)
	}
	newScope := append(append([]string(nil), scope...), names...)
	code, err := cc.compileSeq(elems[1:], newScope)
	if err != nil {
		return nil, err
	}
	return &core.IRLambda{Spec: spec, Code: code}, nil
}

// compileMatch reads (match scrutinee (pattern body...) ...); pattern
// syntax covers the literal/list shapes of spec.md 3.3 and 4.4 but not
// And/Or/Not/Test/QExprAtom, which remain reachable only by building
// core.Pattern values directly (e.g. from an embedding host) — see
// DESIGN.md.
func (cc *compiler) compileMatch(elems []datum, scope []string) (core.IR, error) {
	if len(elems) < 1 {
		return nil, fmt.Errorf("match: expected (match scrutinee clause...)")
	}
	scrutinee, err := cc.compile(elems[0], scope)
	if err != nil {
		return nil, err
	}
	branches := make([]core.Branch, 0, len(elems)-1)
	for _, c := range elems[1:] {
		clause, ok := c.(listDatum)
		if !ok || len(clause.elems) < 2 {
			return nil, fmt.Errorf("match: clause must be (pattern body...)")
		}
		var vars []string
		pat, err := cc.compilePattern(clause.elems[0], &vars)
		if err != nil {
			return nil, err
		}
		body, err := cc.compileSeq(clause.elems[1:], append(append([]string(nil), scope...), vars...))
		if err != nil {
			return nil, err
		}
		branches = append(branches, core.Branch{Pat: pat, Vars: len(vars), Eval: body})
	}
	return &core.IRMatch{Scrutinee: scrutinee, Branches: branches}, nil
}

func (cc *compiler) compilePattern(d datum, vars *[]string) (core.Pattern, error) {
	switch x := d.(type) {
	case symDatum:
		if string(x) == "_" {
			return core.PatSkip{}, nil
		}
		slot := len(*vars)
		*vars = append(*vars, string(x))
		return core.PatAtom{Slot: slot}, nil
	case numDatum:
		return core.PatNumber{Value: core.Number{Int: x.n}}, nil
	case strDatum:
		return core.PatString{Value: unescape(string(x))}, nil
	case boolDatum:
		return core.PatBool{Value: bool(x)}, nil
	case quoteDatum:
		sym, ok := x.inner.(symDatum)
		if !ok {
			return nil, fmt.Errorf("match: only 'symbol quoting is supported in patterns")
		}
		return core.PatQuoteAtom{Atom: cc.atoms.GetAtom(string(sym))}, nil
	case listDatum:
		elems := x.elems
		if n := len(elems); n >= 1 {
			if last, ok := elems[n-1].(symDatum); ok && string(last) == "..." {
				pats := make([]core.Pattern, n-1)
				for i, e := range elems[:n-1] {
					p, err := cc.compilePattern(e, vars)
					if err != nil {
						return nil, err
					}
					pats[i] = p
				}
				min := len(pats)
				return core.PatList{Elems: pats, Min: &min}, nil
			}
		}
		pats := make([]core.Pattern, len(elems))
		for i, e := range elems {
			p, err := cc.compilePattern(e, vars)
			if err != nil {
				return nil, err
			}
			pats[i] = p
		}
		return core.PatList{Elems: pats}, nil
	default:
		return nil, fmt.Errorf("unhandled pattern datum %T", d)
	}
}

// unescape expands the backslash escapes a string literal's token may
// contain (tokenize only finds the closing quote, it does not interpret
// what is between them).
func unescape(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(s[i])
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
