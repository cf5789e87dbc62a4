// Package log configures structured logging for retroui using log/slog.
package log

import (
	"log/slog"
	"os"
)

// Setup configures the default slog logger based on verbosity flags.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
//
// Output is written to stderr using slog.TextHandler so diagnostics never
// mix with the generated document.
func Setup(verbose, quiet bool) {
	var level slog.Level
	switch {
	case quiet:
		level = slog.LevelWarn
	case verbose:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// WithRun returns a logger that tags every record with the given run ID.
// Each CLI invocation gets one ID so interleaved stderr output from scripts
// driving retroui stays attributable.
func WithRun(runID string) *slog.Logger {
	return slog.Default().With("run_id", runID)
}
