// Package exprmatrix provides an in-memory gene expression matrix whose rows
// are keyed by gene symbol, along with loading, saving, and validation
// helpers. Matrices are treated as immutable by the rest of this module; code
// that needs to modify one works on a Clone.
package exprmatrix

import (
	"fmt"
	"math"
)

// Matrix is a numeric expression table. Genes holds the row labels (one per
// row of Values, unique), Samples holds the column labels.
type Matrix struct {
	Genes   []string
	Samples []string
	Values  [][]float64
}

// InvalidInputError indicates that the caller's matrix cannot be processed at
// all: it is absent, malformed, or contains non-numeric content. It is always
// raised before any symbol resolution work begins.
type InvalidInputError struct {
	Reason string
}

func (e InvalidInputError) Error() string {
	return "invalid input matrix: " + e.Reason
}

// Validate checks the structural invariants that the symbol-fixing pipeline
// depends on. Any violation is fatal and yields an InvalidInputError.
func Validate(m *Matrix) error {
	if m == nil {
		return InvalidInputError{Reason: "no matrix was provided"}
	}

	if len(m.Genes) != len(m.Values) {
		return InvalidInputError{Reason: fmt.Sprintf("%d row labels but %d value rows", len(m.Genes), len(m.Values))}
	}

	if len(m.Genes) < 1 {
		return InvalidInputError{Reason: "matrix has no rows"}
	}

	seen := make(map[string]struct{}, len(m.Genes))
	for i, gene := range m.Genes {
		if gene == "" {
			return InvalidInputError{Reason: fmt.Sprintf("row %d has an empty label", i)}
		}
		if gene == "NaN" {
			// The classic R-export artifact: a lost row label
			// serialized as NaN.
			return InvalidInputError{Reason: fmt.Sprintf("row %d is labeled NaN", i)}
		}
		if _, exists := seen[gene]; exists {
			return InvalidInputError{Reason: fmt.Sprintf("duplicate row label %s", gene)}
		}
		seen[gene] = struct{}{}

		if len(m.Values[i]) != len(m.Samples) {
			return InvalidInputError{Reason: fmt.Sprintf("row %s has %d values but the matrix has %d samples", gene, len(m.Values[i]), len(m.Samples))}
		}

		for _, v := range m.Values[i] {
			if math.IsNaN(v) {
				return InvalidInputError{Reason: fmt.Sprintf("row %s holds a NaN value", gene)}
			}
		}
	}

	return nil
}

// Clone deep-copies the matrix so that callers can modify the result without
// aliasing the original.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{
		Genes:   append([]string{}, m.Genes...),
		Samples: append([]string{}, m.Samples...),
		Values:  make([][]float64, 0, len(m.Values)),
	}
	for _, row := range m.Values {
		out.Values = append(out.Values, append([]float64{}, row...))
	}

	return out
}

// RowIndex maps each row label to its row number.
func (m *Matrix) RowIndex() map[string]int {
	idx := make(map[string]int, len(m.Genes))
	for i, gene := range m.Genes {
		idx[gene] = i
	}

	return idx
}

// AddRow appends a row. The values slice is not copied.
func (m *Matrix) AddRow(gene string, values []float64) {
	m.Genes = append(m.Genes, gene)
	m.Values = append(m.Values, values)
}
