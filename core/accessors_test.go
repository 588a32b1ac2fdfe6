package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeAtomTable is a bare-bones AtomTable for exercising accessors that
// take one, without pulling in the host package (which imports core).
type fakeAtomTable struct {
	names []string
	ids   map[string]AtomID
}

func newFakeAtomTable() *fakeAtomTable {
	return &fakeAtomTable{ids: map[string]AtomID{}}
}

func (f *fakeAtomTable) GetAtom(name string) AtomID {
	if id, ok := f.ids[name]; ok {
		return id
	}
	f.names = append(f.names, name)
	id := AtomID(len(f.names) - 1)
	f.ids[name] = id
	return id
}

func (f *fakeAtomTable) Name(id AtomID) string         { return f.names[id] }
func (f *fakeAtomTable) Lookup(AtomID) (Binding, bool) { return Binding{}, false }
func (f *fakeAtomTable) Bind(AtomID, Binding)          {}

func TestAsStringAtomInternsStringKey(t *testing.T) {
	table := newFakeAtomTable()
	a, err := AsStringAtom(String("foo"), table)
	require.NoError(t, err)
	require.Equal(t, "foo", table.Name(a.ID))
}

func TestAsStringAtomPassesThroughAtom(t *testing.T) {
	table := newFakeAtomTable()
	want := Atom{ID: table.GetAtom("foo")}
	got, err := AsStringAtom(want, table)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestAsStringAtomRejectsOtherKinds(t *testing.T) {
	_, err := AsStringAtom(NewNumber(1), newFakeAtomTable())
	require.Error(t, err)
}

func TestAsAtomStringRendersInternedName(t *testing.T) {
	table := newFakeAtomTable()
	atom := Atom{ID: table.GetAtom("bar")}
	s, err := AsAtomString(atom, table)
	require.NoError(t, err)
	require.Equal(t, "bar", s)
}

func TestAsAtomStringRejectsNonAtom(t *testing.T) {
	_, err := AsAtomString(String("bar"), newFakeAtomTable())
	require.Error(t, err)
}

func TestGoalTypeExtractsType(t *testing.T) {
	ty, err := GoalType(Goal{Type: NewNumber(5)})
	require.NoError(t, err)
	require.True(t, Equal(ty, NewNumber(5)))
}

func TestGoalTypeRejectsNonGoal(t *testing.T) {
	_, err := GoalType(NewNumber(5))
	require.Error(t, err)
}
