package domain

import "time"

// RecordEvent is what the drift tracker reports for one record
type RecordEvent struct {
	// Index is the 0-based position of the record among decoded records.
	Index int
	// Line is the 1-based source line the record came from.
	Line      int
	Fields    []Field
	Signature Signature
	// Baseline is only set when Drifted is true.
	Baseline Signature
	Drifted  bool
}

// RunSummary is computed once after the last record
type RunSummary struct {
	Records int
	Drift   int
	Skipped int
	Elapsed time.Duration
}

// SignatureStat describes one distinct header signature seen during a run
type SignatureStat struct {
	Signature Signature
	Count     int
	// FirstIndex is the 0-based index of the first record with this signature.
	FirstIndex int
	Baseline   bool
}
