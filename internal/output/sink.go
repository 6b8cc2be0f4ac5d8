package output

import (
	"io"

	"github.com/vburojevic/hdrift/internal/domain"
)

// Sink receives the events of a run in order and writes them out
type Sink interface {
	// Record is called once per decoded record.
	Record(ev domain.RecordEvent) error
	// Skipped is called for a line dropped under the skip policy.
	Skipped(line int, err error) error
	// Summary is called once after the last record.
	Summary(sum domain.RunSummary) error
	// Signatures is called after Summary when the signature report is enabled.
	Signatures(stats []domain.SignatureStat) error
}

// NewSink returns the sink for the given output format
func NewSink(format string, w io.Writer, styled bool) Sink {
	if format == FormatNDJSON {
		return NewNDJSONWriter(w)
	}
	return NewTextWriter(w, styled)
}

const (
	FormatText   = "text"
	FormatNDJSON = "ndjson"
)
