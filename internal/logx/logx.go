// Package logx configures the process-wide slog logger from CLI verbosity
// flags.
package logx

import (
	"io"
	"log/slog"
)

// UserLevel is the level selected on the command line. Messages below it are
// dropped.
var UserLevel = slog.LevelWarn

// LevelFromFlags maps the verbosity flags to a level:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// Flags are checked in that order, so vv wins over q.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetDefaultLogger installs a text handler writing to w at level and records
// the level in UserLevel.
func SetDefaultLogger(w io.Writer, level slog.Level) *slog.Logger {
	UserLevel = level
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
