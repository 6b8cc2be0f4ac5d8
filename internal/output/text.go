package output

import (
	"fmt"
	"io"

	"github.com/vburojevic/hdrift/internal/domain"
)

// TextWriter writes the plain-text drift report. Every line goes straight to
// the underlying writer so output already written survives a later failure.
type TextWriter struct {
	w      io.Writer
	styled bool
}

// NewTextWriter creates a new text writer. styled only affects the
// signature table; the per-record report is never decorated.
func NewTextWriter(w io.Writer, styled bool) *TextWriter {
	return &TextWriter{w: w, styled: styled}
}

// Record writes the drift pair when the record drifted, then the banner
// and one line per scalar field.
func (t *TextWriter) Record(ev domain.RecordEvent) error {
	if ev.Drifted {
		if _, err := fmt.Fprintln(t.w, FormatSignature(ev.Baseline)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(t.w, FormatSignature(ev.Signature)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(t.w, "DATA POINT %d\n", ev.Index+1); err != nil {
		return err
	}
	for _, f := range ev.Fields {
		if _, err := fmt.Fprintf(t.w, "> %s %s\n", f.Key, FormatValue(f.Value)); err != nil {
			return err
		}
	}
	return nil
}

// Skipped writes nothing; skipped lines are reported on the log.
func (t *TextWriter) Skipped(int, error) error {
	return nil
}

// Summary writes the two closing lines
func (t *TextWriter) Summary(sum domain.RunSummary) error {
	if _, err := fmt.Fprintf(t.w, "Processed %d data entries.\n", sum.Records); err != nil {
		return err
	}
	_, err := fmt.Fprintf(t.w, "%d different headers found!\n", sum.Drift)
	return err
}

// Signatures renders the distinct signatures as a table
func (t *TextWriter) Signatures(stats []domain.SignatureStat) error {
	return WriteSignatureTable(t.w, stats, t.styled)
}
