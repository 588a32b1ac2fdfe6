package host

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proofscript/lispcore/core"
)

func TestPrinterAtomsAndBools(t *testing.T) {
	atoms := NewAtomTable()
	p := NewPrinter(atoms)

	id := atoms.GetAtom("foo")
	require.Equal(t, "foo", p.Print(core.Atom{ID: id}))
	require.Equal(t, "#t", p.Print(core.Bool(true)))
	require.Equal(t, "#f", p.Print(core.Bool(false)))
}

func TestPrinterNumberAndString(t *testing.T) {
	p := NewPrinter(NewAtomTable())
	require.Equal(t, "42", p.Print(core.NewNumber(42)))
	require.Equal(t, `"hi"`, p.Print(core.String("hi")))
}

func TestPrinterListAndDottedList(t *testing.T) {
	p := NewPrinter(NewAtomTable())
	list := core.List{Elems: []core.Value{core.NewNumber(1), core.NewNumber(2)}}
	require.Equal(t, "(1 2)", p.Print(list))

	dotted := core.DottedList{
		Elems: []core.Value{core.NewNumber(1)},
		Tail:  core.NewNumber(2),
	}
	require.Equal(t, "(1 . 2)", p.Print(dotted))
}

func TestPrinterSeesThroughRefAndSpan(t *testing.T) {
	p := NewPrinter(NewAtomTable())
	wrapped := core.Span{Elem: core.NewRef(core.NewNumber(7))}
	require.Equal(t, "7", p.Print(wrapped))
}

func TestPrinterMVarAndFormula(t *testing.T) {
	p := NewPrinter(NewAtomTable())
	require.Equal(t, "?m3", p.Print(core.MVar{ID: 3}))
	require.Equal(t, "$x = y$", p.Print(core.UnparsedFormula{Text: "x = y"}))
}
