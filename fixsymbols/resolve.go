package fixsymbols

import "github.com/kevmanderson/EWCE/reference"

// Pair records one resolution: a bad row label (Synonym) and the canonical
// symbol it maps to.
type Pair struct {
	Symbol  string
	Synonym string
}

// Index maps synonym -> canonical symbol for exactly the synonyms that occur
// as bad row labels. Pairs preserve the order in which synonyms were first
// encountered during table flattening; when the same synonym is listed under
// more than one canonical symbol, the first listing wins. That ordering is a
// property of the source table, deterministic but not semantically
// meaningful.
type Index struct {
	pairs     []Pair
	canonical map[string]string
}

// BuildIndex flattens the reference synonym table into (canonical, synonym)
// pairs, keeping only pairs whose synonym is one of the notCanonical labels.
// Self-pairs never occur (discarded at reference load) and duplicate synonyms
// are dropped first-occurrence-wins.
func BuildIndex(ref *reference.Reference, notCanonical []string) *Index {
	idx := &Index{canonical: make(map[string]string)}

	if len(notCanonical) < 1 {
		return idx
	}

	bad := make(map[string]struct{}, len(notCanonical))
	for _, label := range notCanonical {
		bad[label] = struct{}{}
	}

	for _, row := range ref.Rows {
		for _, synonym := range row.Synonyms {
			if _, isBad := bad[synonym]; !isBad {
				continue
			}
			if synonym == row.Symbol {
				continue
			}
			if _, dup := idx.canonical[synonym]; dup {
				continue
			}

			idx.canonical[synonym] = row.Symbol
			idx.pairs = append(idx.pairs, Pair{Symbol: row.Symbol, Synonym: synonym})
		}
	}

	return idx
}

// Len is the number of resolvable bad labels.
func (idx *Index) Len() int {
	return len(idx.pairs)
}

// Canonical returns the canonical symbol for a bad label, if one is known.
func (idx *Index) Canonical(synonym string) (string, bool) {
	symbol, ok := idx.canonical[synonym]
	return symbol, ok
}

// Pairs returns the resolutions in first-encountered order.
func (idx *Index) Pairs() []Pair {
	return idx.pairs
}
