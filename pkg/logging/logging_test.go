package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { SetLevel(slog.LevelInfo) })

	var buf bytes.Buffer
	logger := New(&buf)

	SetLevel(slog.LevelWarn)
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered at warn level, got %q", buf.String())
	}

	SetLevel(slog.LevelDebug)
	logger.Debug("shown", "key", "value")
	if !strings.Contains(buf.String(), "shown") || !strings.Contains(buf.String(), "key=value") {
		t.Errorf("expected debug line after lowering level, got %q", buf.String())
	}
	if Level() != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", Level())
	}
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	if got := levelFromEnv(); got != slog.LevelError {
		t.Errorf("levelFromEnv() = %v, want error", got)
	}

	t.Setenv("LOG_LEVEL", "bogus")
	if got := levelFromEnv(); got != slog.LevelInfo {
		t.Errorf("levelFromEnv() = %v, want info fallback", got)
	}
}
