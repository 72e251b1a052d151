// Package observability provides structured logging, metrics, and tracing
// for expression parsing.
//
// Features:
//   - Structured logging via slog
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"context"
	"log/slog"
	"time"
)

// EnrichLogger adds parse context to a logger.
// Returns a new logger with the parse_id field.
//
// Example:
//
//	enriched := EnrichLogger(logger, "3f2c...")
//	enriched.Debug("converted") // includes parse_id
func EnrichLogger(logger *slog.Logger, parseID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("parse_id", parseID))
}

// Diagnostic logs a tagged diagnostic message at the given level.
func Diagnostic(logger *slog.Logger, level slog.Level, tag, msg string, attrs ...slog.Attr) {
	if logger == nil {
		return
	}
	logger.LogAttrs(context.Background(), level, msg, append([]slog.Attr{slog.String("tag", tag)}, attrs...)...)
}

// LogParseComplete logs a successful parse with tag "parse".
func LogParseComplete(logger *slog.Logger, expr, result string, durationMs float64) {
	Diagnostic(logger, slog.LevelDebug, "parse", "expression parsed",
		slog.String("expr", expr),
		slog.String("result", result),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogParseError logs a failed parse with tag "parse". Errors in the input are
// routine, so they log at Info.
func LogParseError(logger *slog.Logger, expr string, err error, durationMs float64) {
	Diagnostic(logger, slog.LevelInfo, "parse", "expression failed",
		slog.String("expr", expr),
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

// Milliseconds converts a duration to fractional milliseconds.
func Milliseconds(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
