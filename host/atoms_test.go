package host

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proofscript/lispcore/core"
)

func TestGetAtomInternsOnce(t *testing.T) {
	at := NewAtomTable()
	a := at.GetAtom("foo")
	b := at.GetAtom("foo")
	c := at.GetAtom("bar")

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}

func TestNameRoundTripsGetAtom(t *testing.T) {
	at := NewAtomTable()
	id := at.GetAtom("hello")
	require.Equal(t, "hello", at.Name(id))
}

func TestNameOnUnknownAtomIDIsPlaceholder(t *testing.T) {
	at := NewAtomTable()
	require.Equal(t, "<unknown atom>", at.Name(core.AtomID(99)))
}

func TestBindLookupRoundTrip(t *testing.T) {
	at := NewAtomTable()
	id := at.GetAtom("x")

	_, ok := at.Lookup(id)
	require.False(t, ok)

	at.Bind(id, core.Binding{Value: core.NewNumber(1)})
	b, ok := at.Lookup(id)
	require.True(t, ok)
	require.True(t, core.Equal(b.Value, core.NewNumber(1)))

	at.Bind(id, core.Binding{Value: core.NewNumber(2)})
	b, ok = at.Lookup(id)
	require.True(t, ok)
	require.True(t, core.Equal(b.Value, core.NewNumber(2)))
}
