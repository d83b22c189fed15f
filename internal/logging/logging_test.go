package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%v, want %v", in, got, want)
		}
	}
}

func TestNew_EmptyPathDiscards(t *testing.T) {
	logger, closer, err := New("", "debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Error("goes nowhere")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestNew_BadPath(t *testing.T) {
	_, closer, err := New(filepath.Join(t.TempDir(), "missing", "dir", "x.log"), "info")
	if err == nil {
		t.Fatalf("expected error for unopenable path")
	}
	if closer == nil {
		t.Fatalf("closer must be usable even on error")
	}
}

func TestNew_WritesJSONAtLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marknote.log")
	logger, closer, err := New(path, "warn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info("dropped")
	logger.Warn("kept", "key", "value")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), raw)
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("line is not JSON: %v", err)
	}
	if rec["msg"] != "kept" || rec["key"] != "value" {
		t.Fatalf("record=%v", rec)
	}
}
