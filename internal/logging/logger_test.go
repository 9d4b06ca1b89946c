package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "kinolog.log")

	logger, err := New(Options{
		Level:            "info",
		Format:           "console",
		OutputPaths:      []string{logPath},
		ErrorOutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("hello", String("key", "value"))

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing message, got %q", string(data))
	}
	if !strings.Contains(string(data), "key=value") {
		t.Errorf("log file missing attribute, got %q", string(data))
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	for _, input := range []string{"", "nonsense", "INFO"} {
		if got := parseLevel(input); got.String() != "INFO" {
			t.Errorf("parseLevel(%q) = %v, want INFO", input, got)
		}
	}
	if got := parseLevel("debug"); got.String() != "DEBUG" {
		t.Errorf("parseLevel(debug) = %v, want DEBUG", got)
	}
}

func TestNewComponentLoggerNilBase(t *testing.T) {
	logger := NewComponentLogger(nil, "accounts")
	if logger == nil {
		t.Fatal("expected a logger")
	}
	// Must not panic even though the base is a no-op.
	logger.Info("ignored")
}
