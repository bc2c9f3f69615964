package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger enabled at %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var buf bytes.Buffer
	SetLogger(NewTextLogger(&buf, false))
	Logger().Info("pointer moved", "x", 3)
	Logger().Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "pointer moved") || !strings.Contains(out, "x=3") {
		t.Errorf("log output missing record: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record written at info level: %q", out)
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}

func TestNewTextLoggerVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf, true)
	l.Debug("bounds missing")
	if !strings.Contains(buf.String(), "bounds missing") {
		t.Errorf("verbose logger dropped debug record: %q", buf.String())
	}
}
