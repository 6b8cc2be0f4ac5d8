package output

import (
	"encoding/json"
	"io"

	"github.com/vburojevic/hdrift/internal/domain"
)

// NDJSONWriter writes run events as NDJSON
type NDJSONWriter struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewNDJSONWriter creates a new NDJSON writer
func NewNDJSONWriter(w io.Writer) *NDJSONWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &NDJSONWriter{
		w:       w,
		encoder: enc,
	}
}

// FieldOutput is one scalar field; Value is the JSON text from the input line
type FieldOutput struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// RecordOutput describes one decoded record
type RecordOutput struct {
	Type          string        `json:"type"` // Always "record"
	SchemaVersion int           `json:"schemaVersion"`
	Index         int           `json:"index"` // 1-based, same as DATA POINT
	Line          int           `json:"line,omitempty"`
	Fields        []FieldOutput `json:"fields"`
	Signature     []string      `json:"signature"`
	Drift         bool          `json:"drift"`
}

// DriftOutput precedes a record whose signature differs from the baseline
type DriftOutput struct {
	Type          string   `json:"type"` // Always "drift"
	SchemaVersion int      `json:"schemaVersion"`
	Index         int      `json:"index"`
	Baseline      []string `json:"baseline"`
	Signature     []string `json:"signature"`
}

// SkippedOutput reports a line dropped under the skip policy
type SkippedOutput struct {
	Type          string `json:"type"` // Always "skipped"
	SchemaVersion int    `json:"schemaVersion"`
	Line          int    `json:"line"`
	Error         string `json:"error"`
}

// SummaryOutput closes a successful run
type SummaryOutput struct {
	Type          string `json:"type"` // Always "summary"
	SchemaVersion int    `json:"schemaVersion"`
	Records       int    `json:"records"`
	Drift         int    `json:"drift"`
	Skipped       int    `json:"skipped,omitempty"`
	ElapsedMS     int64  `json:"elapsed_ms"`
}

// SignatureOutput describes one distinct signature
type SignatureOutput struct {
	Type          string   `json:"type"` // Always "signature"
	SchemaVersion int      `json:"schemaVersion"`
	Keys          []string `json:"keys"`
	Count         int      `json:"count"`
	FirstIndex    int      `json:"first_index"`
	Baseline      bool     `json:"baseline"`
}

// ErrorOutput represents a structured error
type ErrorOutput struct {
	Type          string `json:"type"` // Always "error"
	SchemaVersion int    `json:"schemaVersion"`
	Code          string `json:"code"`
	Message       string `json:"message"`
	Hint          string `json:"hint,omitempty"`
}

// Record writes a drift object when the record drifted, then the record itself
func (w *NDJSONWriter) Record(ev domain.RecordEvent) error {
	if ev.Drifted {
		if err := w.encoder.Encode(&DriftOutput{
			Type:          "drift",
			SchemaVersion: SchemaVersion,
			Index:         ev.Index + 1,
			Baseline:      keysOf(ev.Baseline),
			Signature:     keysOf(ev.Signature),
		}); err != nil {
			return err
		}
	}

	fields := make([]FieldOutput, 0, len(ev.Fields))
	for _, f := range ev.Fields {
		fields = append(fields, FieldOutput{Key: f.Key, Value: json.RawMessage(f.Value.Raw)})
	}
	return w.encoder.Encode(&RecordOutput{
		Type:          "record",
		SchemaVersion: SchemaVersion,
		Index:         ev.Index + 1,
		Line:          ev.Line,
		Fields:        fields,
		Signature:     keysOf(ev.Signature),
		Drift:         ev.Drifted,
	})
}

// Skipped writes a skipped object
func (w *NDJSONWriter) Skipped(line int, err error) error {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return w.encoder.Encode(&SkippedOutput{
		Type:          "skipped",
		SchemaVersion: SchemaVersion,
		Line:          line,
		Error:         msg,
	})
}

// Summary writes the run summary
func (w *NDJSONWriter) Summary(sum domain.RunSummary) error {
	return w.encoder.Encode(&SummaryOutput{
		Type:          "summary",
		SchemaVersion: SchemaVersion,
		Records:       sum.Records,
		Drift:         sum.Drift,
		Skipped:       sum.Skipped,
		ElapsedMS:     sum.Elapsed.Milliseconds(),
	})
}

// Signatures writes one object per distinct signature
func (w *NDJSONWriter) Signatures(stats []domain.SignatureStat) error {
	for _, s := range stats {
		if err := w.encoder.Encode(&SignatureOutput{
			Type:          "signature",
			SchemaVersion: SchemaVersion,
			Keys:          keysOf(s.Signature),
			Count:         s.Count,
			FirstIndex:    s.FirstIndex + 1,
			Baseline:      s.Baseline,
		}); err != nil {
			return err
		}
	}
	return nil
}

// WriteError outputs an error
func (w *NDJSONWriter) WriteError(code, message string, hint ...string) error {
	out := &ErrorOutput{
		Type:          "error",
		SchemaVersion: SchemaVersion,
		Code:          code,
		Message:       message,
	}
	if len(hint) > 0 {
		out.Hint = hint[0]
	}
	return w.encoder.Encode(out)
}

// keysOf never returns nil so empty signatures encode as [] rather than null
func keysOf(sig domain.Signature) []string {
	if sig == nil {
		return []string{}
	}
	return sig
}
