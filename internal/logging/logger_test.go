package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func decodeLines(t *testing.T, raw string) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("line is not valid JSON: %v: %s", err, line)
		}
		out = append(out, entry)
	}
	return out
}

func TestOpen(t *testing.T) {
	t.Run("creates the log file and its directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "triad.log")

		logger, err := Open(path, LevelDebug)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		logger.Info("hello", "key", "value")
		if err := logger.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read log file: %v", err)
		}
		entries := decodeLines(t, string(content))
		if len(entries) != 1 || entries[0]["msg"] != "hello" || entries[0]["key"] != "value" {
			t.Errorf("unexpected entries: %v", entries)
		}
	})

	t.Run("writes to stderr when path is empty", func(t *testing.T) {
		logger, err := Open("", LevelInfo)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		if logger.file != nil {
			t.Error("expected file to be nil when path is empty")
		}
		if err := logger.Close(); err != nil {
			t.Errorf("Close on stderr logger failed: %v", err)
		}
	})
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	entries := decodeLines(t, buf.String())
	if len(entries) != 2 {
		t.Fatalf("expected 2 log lines (WARN and ERROR only), got %d", len(entries))
	}
	if entries[0]["level"] != "WARN" || entries[1]["level"] != "ERROR" {
		t.Errorf("unexpected levels: %v", entries)
	}
}

func TestChildLoggers(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)

	logger.WithRun(42, 30).WithComponent("matcher").Info("run finished", "proposals", 120)

	entries := decodeLines(t, buf.String())
	if len(entries) != 1 {
		t.Fatalf("expected 1 line, got %d", len(entries))
	}
	entry := entries[0]
	if entry["seed"] != float64(42) || entry["population"] != float64(30) {
		t.Errorf("run attributes missing: %v", entry)
	}
	if entry["component"] != "matcher" || entry["proposals"] != float64(120) {
		t.Errorf("attributes missing: %v", entry)
	}

	// The parent is unaffected by its children.
	buf.Reset()
	logger.Info("plain")
	if entry := decodeLines(t, buf.String())[0]; entry["component"] != nil {
		t.Errorf("parent logger leaked child attributes: %v", entry)
	}
}

func TestValidLevels(t *testing.T) {
	levels := ValidLevels()
	want := []string{LevelDebug, LevelInfo, LevelWarn, LevelError}
	if len(levels) != len(want) {
		t.Fatalf("ValidLevels() = %v, want %v", levels, want)
	}
	for i := range want {
		if levels[i] != want[i] {
			t.Errorf("ValidLevels()[%d] = %q, want %q", i, levels[i], want[i])
		}
	}
}
