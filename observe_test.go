package simplify

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNopSinkDiscardsRecords(t *testing.T) {
	var s NopSink
	assert.NotPanics(t, func() {
		s.Record(RuleRecord{Rule: "x", Changed: true})
	})
}

func TestSlogSinkLogsRuleApplication(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sink := SlogSink{Logger: logger}

	sink.Record(RuleRecord{Rule: "pruneKeywordsForType", Changed: true, Elapsed: time.Millisecond})

	out := buf.String()
	assert.Contains(t, out, "rule applied")
	assert.Contains(t, out, "pruneKeywordsForType")
}

func TestSlogSinkNilLoggerIsNoop(t *testing.T) {
	sink := SlogSink{}
	assert.NotPanics(t, func() {
		sink.Record(RuleRecord{Rule: "x"})
	})
}

func TestWarnNonConvergenceOnlyLogsForSlogSink(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	warnNonConvergence(SlogSink{Logger: logger}, maxIterations)
	assert.Contains(t, buf.String(), "did not converge")

	buf.Reset()
	warnNonConvergence(NopSink{}, maxIterations)
	assert.Empty(t, buf.String())
}
