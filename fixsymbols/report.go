package fixsymbols

import (
	"fmt"
	"log"
	"strings"
)

// CorruptedLabelWarning is the recoverable condition raised when row labels
// look like spreadsheet date corruption. It never aborts processing.
type CorruptedLabelWarning struct {
	Labels []string
}

func (w CorruptedLabelWarning) Error() string {
	return fmt.Sprintf("possible spreadsheet-corrupted date-like gene symbols: %s", strings.Join(w.Labels, ", "))
}

// Report summarizes one Fix invocation.
type Report struct {
	// NotCanonical holds the originally invalid row labels, matrix order.
	NotCanonical []string
	// DateLike holds the invalid labels matching the date-corruption
	// pattern.
	DateLike []string

	MergeStats

	// Unresolved holds the labels still invalid after resolution.
	Unresolved []string

	// ReportAllUnresolved lists every unresolved label when logging,
	// instead of the first 20.
	ReportAllUnresolved bool
}

// CorrectedCount is the number of rows fixed via a synonym match, whether by
// folding into an existing row or by renaming.
func (r *Report) CorrectedCount() int {
	return len(r.Summed) + len(r.Renamed)
}

// Warning returns the date-corruption warning, or nil if no label matched.
func (r *Report) Warning() error {
	if len(r.DateLike) < 1 {
		return nil
	}

	return CorruptedLabelWarning{Labels: r.DateLike}
}

const previewLimit = 20

func preview(labels []string) string {
	if len(labels) <= previewLimit {
		return strings.Join(labels, ", ")
	}

	return strings.Join(labels[:previewLimit], ", ") + ", ..."
}

// Log emits the diagnostic summary. All output is informational; nothing
// here is fatal.
func (r *Report) Log(l *log.Logger) {
	l.Printf("%d row labels are not current canonical symbols", len(r.NotCanonical))
	if n := len(r.NotCanonical); n > 0 {
		l.Printf("Invalid labels: %s", preview(r.NotCanonical))
	}

	if w := r.Warning(); w != nil {
		l.Printf("Warning: %v", w)
	}

	for _, p := range r.Summed {
		l.Printf("Merged duplicate gene: %s summed into existing row %s", p.Synonym, p.Symbol)
	}

	l.Printf("%d rows corrected via synonym match", r.CorrectedCount())

	if len(r.DroppedAmbiguous) > 0 {
		l.Printf("Dropped %d rows whose labels resolve ambiguously to the same new symbol: %s", len(r.DroppedAmbiguous), preview(r.DroppedAmbiguous))
	}

	l.Printf("%d labels remain unresolved", len(r.Unresolved))
	if len(r.Unresolved) > 0 {
		if r.ReportAllUnresolved {
			l.Printf("Unresolved labels: %s", strings.Join(r.Unresolved, ", "))
		} else {
			l.Printf("Unresolved labels: %s", preview(r.Unresolved))
		}
	}
}
