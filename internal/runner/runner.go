// Package runner drives a file through decoding, drift tracking and output.
package runner

import (
	"errors"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/vburojevic/hdrift/internal/decode"
	"github.com/vburojevic/hdrift/internal/domain"
	"github.com/vburojevic/hdrift/internal/drift"
	"github.com/vburojevic/hdrift/internal/output"
	"github.com/vburojevic/hdrift/internal/source"
	"go.uber.org/zap"
)

// Policy decides what happens to a line that fails to decode
type Policy string

const (
	// PolicyAbort stops the run at the first bad line. No summary is written.
	PolicyAbort Policy = "abort"
	// PolicySkip drops bad lines and keeps going.
	PolicySkip Policy = "skip"
)

// ParsePolicy converts a config or flag value to a Policy
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyAbort, "":
		return PolicyAbort, nil
	case PolicySkip:
		return PolicySkip, nil
	default:
		return "", fmt.Errorf("unknown decode error policy %q (want abort or skip)", s)
	}
}

// Options configure a Runner
type Options struct {
	Policy Policy
	// Signatures emits the distinct-signature report after the summary.
	Signatures bool
	Logger     *zap.Logger
	Clock      clock.Clock
}

// Runner processes one input stream
type Runner struct {
	sink       output.Sink
	policy     Policy
	signatures bool
	logger     *zap.Logger
	clock      clock.Clock
}

// New creates a runner writing to sink
func New(sink output.Sink, opts Options) *Runner {
	r := &Runner{
		sink:       sink,
		policy:     opts.Policy,
		signatures: opts.Signatures,
		logger:     opts.Logger,
		clock:      opts.Clock,
	}
	if r.policy == "" {
		r.policy = PolicyAbort
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	if r.clock == nil {
		r.clock = clock.New()
	}
	return r
}

// Run consumes every line of src. Each record is written to the sink as
// soon as it is processed. Under PolicyAbort the first decode failure is
// returned as a *decode.Error and the summary is never written.
func (r *Runner) Run(src *source.Lines) (domain.RunSummary, error) {
	start := r.clock.Now()
	tracker := drift.NewTracker()
	catalog := drift.NewCatalog()
	skipped := 0

	for src.Next() {
		line := src.Number()
		rec, err := decode.DecodeLine(src.Bytes(), line)
		if err != nil {
			if r.policy != PolicySkip {
				r.logger.Debug("aborting on malformed record", zap.Int("line", line), zap.Error(err))
				return domain.RunSummary{}, err
			}
			skipped++
			r.logger.Warn("skipping malformed record", zap.Int("line", line), zap.Error(err))
			if err := r.sink.Skipped(line, err); err != nil {
				return domain.RunSummary{}, fmt.Errorf("write skipped line %d: %w", line, err)
			}
			continue
		}

		ev := tracker.Observe(rec)
		ev.Line = line
		catalog.Add(ev)
		if ev.Drifted {
			r.logger.Debug("header drift",
				zap.Int("record", ev.Index+1),
				zap.Strings("baseline", ev.Baseline),
				zap.Strings("signature", ev.Signature))
		}
		if err := r.sink.Record(ev); err != nil {
			return domain.RunSummary{}, fmt.Errorf("write record %d: %w", ev.Index+1, err)
		}
	}
	if err := src.Err(); err != nil {
		return domain.RunSummary{}, fmt.Errorf("read input: %w", err)
	}

	sum := tracker.Summary()
	sum.Skipped = skipped
	sum.Elapsed = r.clock.Since(start)
	r.logger.Debug("run complete",
		zap.Int("records", sum.Records),
		zap.Int("drift", sum.Drift),
		zap.Int("skipped", sum.Skipped),
		zap.Int("signatures", catalog.Len()),
		zap.Duration("elapsed", sum.Elapsed))

	if err := r.sink.Summary(sum); err != nil {
		return sum, fmt.Errorf("write summary: %w", err)
	}
	if r.signatures {
		if err := r.sink.Signatures(catalog.Stats()); err != nil {
			return sum, fmt.Errorf("write signatures: %w", err)
		}
	}
	return sum, nil
}

// IsDecodeError reports whether err came from a malformed line
func IsDecodeError(err error) bool {
	var de *decode.Error
	return errors.As(err, &de)
}
