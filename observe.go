package simplify

import (
	"log/slog"
	"time"
)

// RuleRecord describes one rule invocation: which rule ran, what it saw
// and produced, and whether it changed anything. The driver emits one of
// these per successful rule application, not per rule attempt — a rule
// that looked at a node and did nothing produces no record.
type RuleRecord struct {
	Rule     string
	Before   any
	After    any
	Changed  bool
	Elapsed  time.Duration
}

// Sink receives rule records as the driver runs. It is purely an
// observability hook: nothing about simplification's correctness depends
// on a sink being installed, or on what it does with what it's given.
type Sink interface {
	Record(RuleRecord)
}

// NopSink discards every record. It is the default sink, chosen so that
// running Simplify has zero observability overhead unless a caller asks
// for it.
type NopSink struct{}

// Record implements Sink by doing nothing.
func (NopSink) Record(RuleRecord) {}

// SlogSink adapts a *slog.Logger into a Sink, logging one debug line per
// rule invocation.
type SlogSink struct {
	Logger *slog.Logger
}

// Record implements Sink.
func (s SlogSink) Record(r RuleRecord) {
	if s.Logger == nil {
		return
	}
	s.Logger.Debug("rule applied",
		slog.String("rule", r.Rule),
		slog.Bool("changed", r.Changed),
		slog.Duration("elapsed", r.Elapsed),
	)
}

// warnNonConvergence logs, at warn level, that the driver hit its
// iteration cap without reaching a fixed point.
func warnNonConvergence(sink Sink, iterations int) {
	s, ok := sink.(SlogSink)
	if !ok || s.Logger == nil {
		return
	}
	s.Logger.Warn("simplify did not converge", slog.Int("iterations", iterations))
}
