// Package fixsymbols repairs the row labels of a gene expression matrix:
// labels that are not current canonical symbols are resolved through a
// synonym table, rows resolving to a symbol already present are summed into
// it, and whatever cannot be resolved is reported.
package fixsymbols

import (
	"log"

	"github.com/kevmanderson/EWCE/exprmatrix"
	"github.com/kevmanderson/EWCE/reference"
)

// DefaultSpecies selects the bundled reference data when Options names
// neither a Reference nor a ReferencePath nor a Species.
const DefaultSpecies = "mouse"

// Options configures Fix. Reference sources are consulted in order:
// Reference (pre-loaded, e.g. synthetic data in tests), ReferencePath
// (caller-supplied tab-delimited file), then the bundled snapshot for
// Species.
type Options struct {
	Reference           *reference.Reference
	ReferencePath       string
	SynonymColumn       string
	Species             string
	ReportAllUnresolved bool

	// Log receives diagnostics; defaults to the standard logger.
	Log *log.Logger
}

func (opts Options) reference() (*reference.Reference, error) {
	if opts.Reference != nil {
		return opts.Reference, nil
	}

	if opts.ReferencePath != "" {
		return reference.Load(opts.ReferencePath, opts.SynonymColumn)
	}

	species := opts.Species
	if species == "" {
		species = DefaultSpecies
	}

	return reference.Bundled(species)
}

// Fix validates the matrix, resolves bad row labels through the synonym
// table, merges resolvable rows, and returns the corrected matrix plus a
// report. The input matrix is never modified. All fatal conditions (invalid
// matrix, unloadable reference) surface before any resolution work, so no
// partial matrix is ever returned alongside an error.
func Fix(m *exprmatrix.Matrix, opts Options) (*exprmatrix.Matrix, *Report, error) {
	logger := opts.Log
	if logger == nil {
		logger = log.Default()
	}

	if err := exprmatrix.Validate(m); err != nil {
		return nil, nil, err
	}

	ref, err := opts.reference()
	if err != nil {
		return nil, nil, err
	}

	report := &Report{ReportAllUnresolved: opts.ReportAllUnresolved}
	report.NotCanonical = NotCanonical(m, ref)
	report.DateLike = DateLike(report.NotCanonical)

	if len(report.NotCanonical) < 1 {
		report.Log(logger)
		return m.Clone(), report, nil
	}

	idx := BuildIndex(ref, report.NotCanonical)

	out, stats := Merge(m, idx)
	report.MergeStats = stats

	for _, label := range report.NotCanonical {
		if _, resolved := idx.Canonical(label); !resolved {
			report.Unresolved = append(report.Unresolved, label)
		}
	}

	report.Log(logger)

	return out, report, nil
}
