package fixsymbols

import (
	"strings"

	"github.com/kevmanderson/EWCE/exprmatrix"
	"github.com/kevmanderson/EWCE/reference"
)

// NotCanonical returns the matrix row labels that are not current canonical
// symbols, preserving matrix row order.
func NotCanonical(m *exprmatrix.Matrix, ref *reference.Reference) []string {
	var out []string
	for _, gene := range m.Genes {
		if !ref.Canonical.Has(gene) {
			out = append(out, gene)
		}
	}

	return out
}

// Month fragments that spreadsheet auto-formatting substitutes into gene
// symbols (Sept2 -> "2-Sep" and friends).
var monthFragments = []string{"Sep", "Mar", "Feb"}

// DateLike returns the labels that look like spreadsheet date corruption.
// This is a caution only; such labels still go through normal resolution.
func DateLike(labels []string) []string {
	var out []string
	for _, label := range labels {
		for _, month := range monthFragments {
			if strings.Contains(label, month) {
				out = append(out, label)
				break
			}
		}
	}

	return out
}
