// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup()                 // level from LOG_LEVEL env (default: info)
//	logging.SetupWithLevel(lvl)     // explicit level
//	logging.SetLevel(lvl)           // adjust at runtime, e.g. on config reload
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// level is shared by every handler created here so SetLevel takes effect
// without rebuilding the logger.
var level = new(slog.LevelVar)

// Setup configures colored logging at the level specified by LOG_LEVEL env var
// (default: INFO).
func Setup() {
	SetupWithLevel(levelFromEnv())
}

// SetupWithLevel configures colored logging at the given level.
func SetupWithLevel(lvl slog.Level) {
	level.Set(lvl)
	slog.SetDefault(New(os.Stderr))
}

// New returns a tint logger writing to w that follows the shared level.
func New(w io.Writer) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
		NoColor:    !isTerminal(w),
	}))
}

// SetLevel changes the level of every logger created by this package.
func SetLevel(lvl slog.Level) {
	level.Set(lvl)
}

// Level returns the current shared level.
func Level() slog.Level {
	return level.Level()
}

// ParseLevel maps debug, info, warn (or warning) and error to a slog level.
// An empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

func levelFromEnv() slog.Level {
	lvl, err := ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
