/*
PURPOSE:
  Provides a structured logger for weather-summary.
  Wraps slog for consistent output.

REQUIREMENTS:
  User-specified:
  - "Sane" CLI output. Not spammy.

  Implementation-discovered:
  - stdout carries the report only (it may be piped into jq or a CSV tool),
    so logs go to stderr.
  - Quiet (warn) by default, debug with --verbose.

ARCHITECTURE INTEGRATION:
  - Configured by: internal/cli (PersistentPreRunE)
  - Used by: internal/engine, internal/cli

ERROR HANDLING:
  - N/A

IMPLEMENTATION RULES:
  - Use `log/slog` (Go 1.21+).

USAGE:
  output.Logger.Debug("message", "key", "value")

RELATED FILES:
  - internal/config/config.go (log_level)
*/

package output

import (
	"io"
	"log/slog"
	"os"
)

var Logger *slog.Logger

func init() {
	Configure(os.Stderr, slog.LevelWarn)
}

// Configure replaces Logger with a text logger writing to w at the given level.
// args are attached to every record (e.g. "run_id", id).
func Configure(w io.Writer, level slog.Leveler, args ...any) {
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	if len(args) > 0 {
		l = l.With(args...)
	}
	Logger = l
}

// SetLogger allows overriding the default logger (e.g. for testing or config changes)
func SetLogger(l *slog.Logger) {
	Logger = l
}
