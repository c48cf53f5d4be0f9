package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestMakeJSONOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON), WithTimeLayout(""))

	logger.Info("hello", slog.String("key", "value"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	if record["msg"] != "hello" {
		t.Errorf("msg = %v, want hello", record["msg"])
	}

	if record["key"] != "value" {
		t.Errorf("key = %v, want value", record["key"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelWarn), WithFormat(FormatText))

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("output contains filtered messages: %q", out)
	}

	if !strings.Contains(out, "kept") {
		t.Errorf("output missing warn message: %q", out)
	}
}

func TestWrapOverrides(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelError))
	if logger.Level() != LevelError {
		t.Fatalf("Level() = %v, want %v", logger.Level(), LevelError)
	}

	wrapped := logger.Wrap(WithLevel(LevelDebug))
	if wrapped.Level() != LevelDebug {
		t.Errorf("wrapped Level() = %v, want %v", wrapped.Level(), LevelDebug)
	}

	// Original logger is unchanged.
	if logger.Level() != LevelError {
		t.Errorf("original Level() = %v, want %v", logger.Level(), LevelError)
	}
}

func TestWithAttrs(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON), WithTimeLayout("")).
		With(slog.String("component", "segmenter"))

	logger.Info("scan complete")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	if record["component"] != "segmenter" {
		t.Errorf("component = %v, want segmenter", record["component"])
	}
}

func TestZeroValueLoggerIsSilent(t *testing.T) {
	var logger Logger

	// Must not panic.
	logger.Info("nothing")
	logger.Error("nothing")
}

func TestPrettyTextHandler(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithFormat(FormatText),
		WithPretty(true),
		WithTimeLayout(""),
	)

	logger.Info("styled", slog.Int("count", 3))

	out := buf.String()
	if !strings.Contains(out, "styled") {
		t.Errorf("output missing message: %q", out)
	}

	if !strings.Contains(out, "\033[") {
		t.Errorf("output missing ANSI color codes: %q", out)
	}
}
