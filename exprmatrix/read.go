package exprmatrix

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/csimplestring/go-csv/detector"
)

// determineDelimiter returns the single most likely rune delimiting the
// values in data, assuming a CSV-like file. Tab-delimited is the common case
// for expression matrices, but comma and semicolon dumps show up in the wild.
func determineDelimiter(data []byte) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(bytes.NewReader(data), '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return '\t'
}

// Parse reads a delimited expression matrix from r. The first record is the
// header (its first field names the gene column and is ignored; the rest are
// sample labels); each subsequent record is one gene row. The delimiter is
// auto-detected.
//
// Values encoded as quoted text that still parse as numbers are coerced, with
// a single caution logged to l (the standard logger if l is nil); anything
// else non-numeric is an InvalidInputError.
func Parse(r io.Reader, l *log.Logger) (*Matrix, error) {
	if l == nil {
		l = log.Default()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = determineDelimiter(data)
	cr.LazyQuotes = true
	cr.Comment = '#'

	header, err := cr.Read()
	if err == io.EOF {
		return nil, InvalidInputError{Reason: "matrix file is empty"}
	} else if err != nil {
		return nil, err
	}
	if len(header) < 2 {
		return nil, InvalidInputError{Reason: "matrix header has no sample columns"}
	}

	m := &Matrix{Samples: append([]string{}, header[1:]...)}

	coerced := false
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		row := make([]float64, 0, len(rec)-1)
		for col, field := range rec[1:] {
			v, wasText, err := parseCell(field)
			if err != nil {
				return nil, InvalidInputError{Reason: fmt.Sprintf("row %s column %s holds non-numeric value %q", rec[0], header[col+1], field)}
			}
			coerced = coerced || wasText
			row = append(row, v)
		}

		m.AddRow(rec[0], row)
	}

	if coerced {
		l.Println("Caution: matrix values were text-encoded and have been coerced to numeric")
	}

	if err := Validate(m); err != nil {
		return nil, err
	}

	return m, nil
}

// parseCell parses one matrix cell, reporting whether quote-stripping was
// needed to make it numeric.
func parseCell(field string) (float64, bool, error) {
	s := strings.TrimSpace(field)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, false, nil
	}

	trimmed := strings.Trim(s, `"'`)
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false, err
	}

	return v, true, nil
}
