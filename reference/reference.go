// Package reference supplies the canonical gene-symbol sets and synonym
// tables used to repair bad row labels. Reference data comes either from the
// bundled nomenclature snapshots (see Bundled) or from a caller-supplied
// tab-delimited file (see Load). A Reference is read-only after construction.
package reference

// Set is a collection of canonical gene symbols.
type Set map[string]struct{}

// Has reports whether symbol is a current canonical symbol.
func (s Set) Has(symbol string) bool {
	_, ok := s[symbol]
	return ok
}

// Row pairs one canonical symbol with its known synonyms, in source-table
// order. A synonym never equals its own canonical symbol; such self-pairs are
// discarded at load time.
type Row struct {
	Symbol   string
	Synonyms []string
}

// Reference is the full lookup needed by the fixer: the set of currently
// valid symbols plus the synonym table. Rows preserve source order, which
// downstream de-duplication depends on. Every Row.Symbol belongs to
// Canonical; Load and Bundled guarantee this, and hand-built references
// should too.
type Reference struct {
	Canonical Set
	Rows      []Row
}
