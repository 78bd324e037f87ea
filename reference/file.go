package reference

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// DefaultSynonymColumn is the header name expected to hold the pipe-joined
// synonym list in reference files, including the bundled snapshots.
const DefaultSynonymColumn = "synonyms"

const symbolColumn = "symbol"

type fileRow struct {
	Symbol   string `csv:"symbol"`
	Synonyms string `csv:"synonyms"`
}

// Load reads a caller-supplied tab-delimited reference file. Each row pairs a
// canonical symbol (column "symbol") with a pipe-joined synonym list held in
// synonymColumn (DefaultSynonymColumn if empty). Rows with an empty synonym
// field still contribute to the canonical set but are dropped from the
// synonym table.
func Load(path, synonymColumn string) (*Reference, error) {
	if synonymColumn == "" {
		synonymColumn = DefaultSynonymColumn
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, MissingFileError{Path: path, Err: err}
	} else if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, pfx.Err(err)
	}

	data, err = remapHeader(data, path, synonymColumn)
	if err != nil {
		return nil, err
	}

	return parseRows(data)
}

// remapHeader verifies that the required columns are present and renames the
// caller's synonym column to the default so that the struct tags match. The
// rename must not collide with another column, so a custom synonym column
// cannot coexist with a literal "synonyms" column, nor shadow "symbol".
func remapHeader(data []byte, path, synonymColumn string) ([]byte, error) {
	if synonymColumn == symbolColumn {
		return nil, fmt.Errorf("reference file %s: the synonym column cannot be the %q column", path, symbolColumn)
	}

	line, rest, found := bytes.Cut(data, []byte{'\n'})
	if !found {
		rest = nil
	}

	fields := strings.Split(strings.TrimRight(string(line), "\r"), "\t")

	synonymAt := -1
	hasSymbol := false
	for i, name := range fields {
		switch name {
		case synonymColumn:
			synonymAt = i
		case DefaultSynonymColumn:
			// Only reachable when a custom synonym column was
			// requested alongside a literal "synonyms" column.
			return nil, fmt.Errorf("reference file %s: column %q conflicts with the requested synonym column %q", path, DefaultSynonymColumn, synonymColumn)
		case symbolColumn:
			hasSymbol = true
		}
	}

	if synonymAt < 0 {
		return nil, MissingColumnError{Column: synonymColumn, Path: path}
	}
	if !hasSymbol {
		return nil, MissingColumnError{Column: symbolColumn, Path: path}
	}

	fields[synonymAt] = DefaultSynonymColumn

	out := bytes.NewBufferString(strings.Join(fields, "\t"))
	out.WriteByte('\n')
	out.Write(rest)

	return out.Bytes(), nil
}

func parseRows(data []byte) (*Reference, error) {
	// Tell gocsv to use tab as the delimiter
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = '\t'
		r.LazyQuotes = true
		return r
	})

	records := []*fileRow{}
	if err := gocsv.UnmarshalBytes(data, &records); err != nil {
		return nil, pfx.Err(err)
	}

	ref := &Reference{Canonical: make(Set, len(records))}
	for _, rec := range records {
		symbol := strings.TrimSpace(rec.Symbol)
		if symbol == "" {
			continue
		}
		ref.Canonical[symbol] = struct{}{}

		synonyms := splitSynonyms(symbol, rec.Synonyms)
		if len(synonyms) < 1 {
			continue
		}

		ref.Rows = append(ref.Rows, Row{Symbol: symbol, Synonyms: synonyms})
	}

	return ref, nil
}

// splitSynonyms splits a pipe-joined synonym list, discarding empty tokens
// and self-pairs (a synonym equal to its own canonical symbol).
func splitSynonyms(symbol, joined string) []string {
	var out []string
	for _, token := range strings.Split(joined, "|") {
		token = strings.TrimSpace(token)
		if token == "" || token == symbol {
			continue
		}
		out = append(out, token)
	}

	return out
}
