package host

import (
	"fmt"
	"strings"

	"github.com/proofscript/lispcore/core"
)

// Printer renders a Value the way a REPL or Display/Print builtin
// would (spec 6): atoms resolve through the same table the evaluator
// interns into, lists print parenthesized, Ref prints through to its
// current content.
type Printer struct {
	Atoms *AtomTable
}

// NewPrinter builds a Printer backed by atoms.
func NewPrinter(atoms *AtomTable) *Printer {
	return &Printer{Atoms: atoms}
}

func (p *Printer) Print(v core.Value) string {
	var b strings.Builder
	p.write(&b, v)
	return b.String()
}

func (p *Printer) write(b *strings.Builder, v core.Value) {
	switch x := v.(type) {
	case core.Span:
		p.write(b, x.Elem)
	case *core.Ref:
		p.write(b, x.Get())
	case core.Atom:
		b.WriteString(p.Atoms.Name(x.ID))
	case core.Bool:
		if x {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case core.Number:
		b.WriteString(x.Int.String())
	case core.String:
		fmt.Fprintf(b, "%q", string(x))
	case core.List:
		b.WriteByte('(')
		for i, e := range x.Elems {
			if i > 0 {
				b.WriteByte(' ')
			}
			p.write(b, e)
		}
		b.WriteByte(')')
	case core.DottedList:
		b.WriteByte('(')
		for i, e := range x.Elems {
			if i > 0 {
				b.WriteByte(' ')
			}
			p.write(b, e)
		}
		b.WriteString(" . ")
		p.write(b, x.Tail)
		b.WriteByte(')')
	case core.Proc:
		b.WriteString("#<procedure>")
	case core.AtomMap:
		b.WriteString("#<atom-map>")
	case core.Goal:
		b.WriteString("#<goal ")
		p.write(b, x.Type)
		b.WriteByte('>')
	case core.MVar:
		fmt.Fprintf(b, "?m%d", x.ID)
	case core.UnparsedFormula:
		fmt.Fprintf(b, "$%s$", x.Text)
	default:
		b.WriteString("#<undef>")
	}
}
