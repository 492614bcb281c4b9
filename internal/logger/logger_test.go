package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	log := New("warn", &buf)
	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record should be filtered at warn level: %q", out)
	}

	if !strings.Contains(out, "shown") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestLogger_WithSharesLevel(t *testing.T) {
	var buf bytes.Buffer

	parent := New("error", &buf)
	child := parent.With("run_id", "abc")

	parent.SetLevel("debug")
	child.Debug("archive loaded")

	out := buf.String()
	if !strings.Contains(out, "archive loaded") || !strings.Contains(out, "run_id=abc") {
		t.Errorf("child did not follow parent level or lost attrs: %q", out)
	}
}
