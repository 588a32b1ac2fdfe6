package core

// AtomID is an interned atom's identifier, unique within the AtomTable
// that minted it (GLOSSARY, "Atom").
type AtomID int

// File identifies the source text a FileSpan is relative to. Files are
// compared by value, so two Files with the same Name compare equal.
type File struct {
	Name string
}

// Range is a half-open byte offset pair within a File's text.
type Range struct {
	Start, End int
}

// FileSpan locates a Range within a specific File (spec 3, "every IR
// node and Diagnostic carries a source span"). The zero FileSpan is a
// valid "no span yet" sentinel, used by fail to detect a Diagnostic
// that was raised without one.
type FileSpan struct {
	File File
	Span Range
}

// AtomTable interns symbol names to AtomIDs and holds each atom's
// current global binding (spec 6): the engine never manages atom
// identity or global storage itself, only consults this collaborator.
type AtomTable interface {
	// GetAtom interns name, returning its existing id or minting a
	// fresh one.
	GetAtom(name string) AtomID
	// Name renders id back to the string it was interned from.
	Name(id AtomID) string
	// Lookup reports id's current global binding, if any.
	Lookup(id AtomID) (Binding, bool)
	// Bind replaces id's global binding.
	Bind(id AtomID, b Binding)
}

// Binding is a global atom's value slot (spec 4.2.1). DefinedAt is nil
// until the atom has actually been def'd; an atom recognised only as a
// built-in name is synthesised into the table lazily with DefinedAt
// left nil (see engine's IRGlobal handling).
type Binding struct {
	DefinedAt *FileSpan
	Value     Value
}
