package telemetry

import (
	"bytes"
	"errors"
	"os"
	"testing"
)

func TestLoggerLevelsNoPanic(t *testing.T) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	defer func() { os.Stdout = old }()

	l := New()
	l.Debug("seeding", "vehicle", 3, "jobs", 12)
	l.Info("search completed", "index", 1, "cost", 42.5)
	l.Warn("deadline approaching", "remaining_ms", 50)
	l.Error("matrix lookup failed", "vehicle_type", "truck", "err", errors.New("boom"))

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
}

func TestNoopLoggerProducesNoOutput(t *testing.T) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	defer func() { os.Stdout = old }()

	l := NewNoop()
	l.Info("should not print", "x", 1)

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	if buf.Len() != 0 {
		t.Fatalf("expected no output from noop logger, got %q", buf.String())
	}
}
