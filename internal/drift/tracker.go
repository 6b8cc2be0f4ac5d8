// Package drift extracts scalar fields from records and tracks whether each
// record's header signature matches the one captured from the first record.
package drift

import (
	"iter"

	"github.com/vburojevic/hdrift/internal/domain"
)

// Scalars yields the fields of rec whose values are not arrays or objects,
// in record order. Composite values are skipped, never flattened.
func Scalars(rec domain.Record) iter.Seq[domain.Field] {
	return func(yield func(domain.Field) bool) {
		for _, f := range rec.Fields {
			if f.Value.Composite() {
				continue
			}
			if !yield(f) {
				return
			}
		}
	}
}

// SignatureOf returns the ordered scalar keys of rec
func SignatureOf(rec domain.Record) domain.Signature {
	sig := domain.Signature{}
	for f := range Scalars(rec) {
		sig = append(sig, f.Key)
	}
	return sig
}

// State is carried from one record to the next
type State struct {
	// Seen counts records already folded in. Zero means no baseline yet.
	Seen     int
	Baseline domain.Signature
	Drift    int
}

// Step folds one record into state. The first record sets the baseline;
// every later record whose signature differs from it positionally adds
// exactly one to Drift, however many keys differ.
func Step(state State, rec domain.Record) (State, domain.RecordEvent) {
	ev := domain.RecordEvent{Index: state.Seen}
	for f := range Scalars(rec) {
		ev.Fields = append(ev.Fields, f)
		ev.Signature = append(ev.Signature, f.Key)
	}
	if ev.Signature == nil {
		ev.Signature = domain.Signature{}
	}

	next := State{Seen: state.Seen + 1, Baseline: state.Baseline, Drift: state.Drift}
	if state.Seen == 0 {
		next.Baseline = ev.Signature.Clone()
		return next, ev
	}

	if !ev.Signature.Equal(state.Baseline) {
		next.Drift++
		ev.Drifted = true
		ev.Baseline = state.Baseline
	}
	return next, ev
}

// Tracker threads State through a sequence of records
type Tracker struct {
	state State
}

// NewTracker creates a tracker with no baseline
func NewTracker() *Tracker {
	return &Tracker{}
}

// Observe folds rec into the tracker and returns the event for it
func (t *Tracker) Observe(rec domain.Record) domain.RecordEvent {
	var ev domain.RecordEvent
	t.state, ev = Step(t.state, rec)
	return ev
}

// State returns the current fold state
func (t *Tracker) State() State {
	return t.state
}

// Summary returns the record count and drift tally so far
func (t *Tracker) Summary() domain.RunSummary {
	return domain.RunSummary{Records: t.state.Seen, Drift: t.state.Drift}
}
