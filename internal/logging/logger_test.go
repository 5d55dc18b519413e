package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":         slog.LevelInfo,
		"info":     slog.LevelInfo,
		"DEBUG":    slog.LevelDebug,
		"trace":    LevelTrace,
		"warn":     slog.LevelWarn,
		"error":    slog.LevelError,
		"nonsense": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%v, want %v", in, got, want)
		}
	}
	if ValidLevel("nonsense") {
		t.Fatal("nonsense must not be a valid level")
	}
	if !ValidLevel("Trace") {
		t.Fatal("trace must be valid")
	}
}

func TestNewLoggerLabelsTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("trace", &buf)
	logger.Log(context.Background(), LevelTrace, "rule applied", "row", 1)
	if !strings.Contains(buf.String(), "level=TRACE") {
		t.Fatalf("trace level not labelled: %q", buf.String())
	}
}

func TestNewLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("info", &buf)
	logger.Debug("hidden")
	logger.Info("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("debug output leaked at info level: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("info output missing: %q", buf.String())
	}
}
