package fixsymbols

import (
	"gonum.org/v1/gonum/floats"

	"github.com/kevmanderson/EWCE/exprmatrix"
)

// MergeStats describes what Merge did to each resolvable row.
type MergeStats struct {
	// Summed holds bad rows folded into a canonical row that the matrix
	// already contained.
	Summed []Pair
	// Renamed holds bad rows relabeled to a canonical symbol the matrix
	// did not contain.
	Renamed []Pair
	// DroppedAmbiguous holds bad labels removed outright because two or
	// more of them resolved to the same absent canonical symbol. Summing
	// rows for a symbol the matrix never contained would fabricate data,
	// so none of the colliding rows survive.
	DroppedAmbiguous []string
}

// Merge builds a new matrix in which every resolvable bad row has been folded
// into (or renamed to) its canonical symbol. The input matrix is not
// modified. Kept rows precede renamed rows, each group in original row order.
func Merge(m *exprmatrix.Matrix, idx *Index) (*exprmatrix.Matrix, MergeStats) {
	var stats MergeStats

	rowAt := m.RowIndex()

	// Canonical symbols that exist both under their correct name and under
	// at least one bad synonym row. A target whose own row is a bad label
	// will not survive under that name, so it counts as absent even though
	// the row exists; this only arises when reference data violates the
	// Canonical ⊇ Row.Symbol invariant.
	dupTarget := make(map[string]struct{})
	// Resolutions per canonical symbol absent from the matrix, to detect
	// ambiguous collisions.
	absentCount := make(map[string]int)
	for _, p := range idx.Pairs() {
		_, targetIsBad := idx.Canonical(p.Symbol)
		if _, exists := rowAt[p.Symbol]; exists && !targetIsBad {
			dupTarget[p.Symbol] = struct{}{}
		} else {
			absentCount[p.Symbol]++
		}
	}

	out := &exprmatrix.Matrix{Samples: append([]string{}, m.Samples...)}
	outAt := make(map[string]int)

	// Good rows: labels that are not bad synonyms.
	for i, gene := range m.Genes {
		if _, isBad := idx.Canonical(gene); isBad {
			continue
		}
		outAt[gene] = len(out.Genes)
		out.AddRow(gene, append([]float64{}, m.Values[i]...))
	}

	// Bad rows: fold into an existing canonical row, rename to a new one,
	// or drop on ambiguous collision.
	for i, gene := range m.Genes {
		symbol, isBad := idx.Canonical(gene)
		if !isBad {
			continue
		}

		if _, exists := dupTarget[symbol]; exists {
			floats.Add(out.Values[outAt[symbol]], m.Values[i])
			stats.Summed = append(stats.Summed, Pair{Symbol: symbol, Synonym: gene})
			continue
		}

		if absentCount[symbol] > 1 {
			stats.DroppedAmbiguous = append(stats.DroppedAmbiguous, gene)
			continue
		}

		outAt[symbol] = len(out.Genes)
		out.AddRow(symbol, append([]float64{}, m.Values[i]...))
		stats.Renamed = append(stats.Renamed, Pair{Symbol: symbol, Synonym: gene})
	}

	return out, stats
}
