package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"  error  ", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("FLIGHTPARSE_LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_LEVEL", "ERROR")
	if got := LevelFromEnv(); got != slog.LevelDebug {
		t.Errorf("LevelFromEnv() = %v, want DEBUG (FLIGHTPARSE_LOG_LEVEL wins)", got)
	}

	t.Setenv("FLIGHTPARSE_LOG_LEVEL", "")
	if got := LevelFromEnv(); got != slog.LevelError {
		t.Errorf("LevelFromEnv() = %v, want ERROR from LOG_LEVEL fallback", got)
	}

	t.Setenv("LOG_LEVEL", "")
	if got := LevelFromEnv(); got != slog.LevelInfo {
		t.Errorf("LevelFromEnv() = %v, want the INFO default", got)
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("visible", slog.String("key", "value"))

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("logger emitted a record below its level: %q", output)
	}
	if !strings.Contains(output, "visible") || !strings.Contains(output, "key=value") {
		t.Errorf("logger output missing the warn record: %q", output)
	}
}
