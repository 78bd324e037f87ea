package exprmatrix

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/carbocation/pfx"
)

// Write emits the matrix as tab-delimited text: a header row of "symbol" plus
// the sample labels, then one row per gene.
func Write(m *Matrix, w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write(append([]string{"symbol"}, m.Samples...)); err != nil {
		return err
	}

	rec := make([]string, 0, len(m.Samples)+1)
	for i, gene := range m.Genes {
		rec = rec[:0]
		rec = append(rec, gene)
		for _, v := range m.Values[i] {
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// Save writes the matrix to a tab-delimited file at path.
func Save(m *Matrix, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	if err := Write(m, f); err != nil {
		f.Close()
		return pfx.Err(err)
	}

	return f.Close()
}
