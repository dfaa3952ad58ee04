// Package logging provides structured logging using Go's slog package.
package logging

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// RunIDKey is the context key for the run-correlation UUID (§6 CLI
	// surface: every invocation of the driver gets one).
	RunIDKey ContextKey = "run_id"
)

var defaultLogger *slog.Logger

func init() {
	InitLogger(LevelInfo, FormatJSON)
}

// Level represents a log level.
type Level int

const (
	// LevelDebug is for debug messages.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// Format represents a log output format.
type Format int

const (
	// FormatJSON outputs logs in JSON format.
	FormatJSON Format = iota
	// FormatText outputs logs in human-readable text format; the CLI
	// selects it with --log-format=text. Either format goes to stderr (§6).
	FormatText
)

// InitLogger initializes the global logger with the specified level and
// format, writing to stderr so stdout stays free for TSV output.
func InitLogger(level Level, format Format) {
	var slogLevel slog.Level
	switch level {
	case LevelDebug:
		slogLevel = slog.LevelDebug
	case LevelInfo:
		slogLevel = slog.LevelInfo
	case LevelWarn:
		slogLevel = slog.LevelWarn
	case LevelError:
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// GetLogger returns the global logger instance.
func GetLogger() *slog.Logger {
	return defaultLogger
}

// WithRunID attaches a run-correlation id to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// GetRunID retrieves the run id from the context, or "" if absent.
func GetRunID(ctx context.Context) string {
	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return runID
	}
	return ""
}

// LoggerFromContext returns a logger with the run id attached, if any.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger := defaultLogger
	if runID := GetRunID(ctx); runID != "" {
		logger = logger.With("run_id", runID)
	}
	return logger
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { defaultLogger.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { defaultLogger.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { defaultLogger.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { defaultLogger.Error(msg, args...) }

// InfoContext logs an info message with the run id from ctx attached.
func InfoContext(ctx context.Context, msg string, args ...any) {
	LoggerFromContext(ctx).Info(msg, args...)
}

// WarnContext logs a warning message with the run id from ctx attached.
func WarnContext(ctx context.Context, msg string, args ...any) {
	LoggerFromContext(ctx).Warn(msg, args...)
}

// ErrorContext logs an error message with the run id from ctx attached.
func ErrorContext(ctx context.Context, msg string, args ...any) {
	LoggerFromContext(ctx).Error(msg, args...)
}

// BookStart logs the beginning of one book's processing.
func BookStart(ctx context.Context, book string, mode string) {
	InfoContext(ctx, "book_start", "book", book, "mode", mode)
}

// BookComplete logs a book's completion, including row counts.
func BookComplete(ctx context.Context, book string, rows, noMatchRows int, duration time.Duration) {
	InfoContext(ctx, "book_complete", "book", book, "rows", rows,
		"no_match_rows", noMatchRows, "duration_ms", duration.Milliseconds())
}

// BookSkipped logs that a book was skipped in batch mode after a fatal
// per-book error (§7: USFM fetch/parse failure is fatal for that book, but
// the batch driver logs and continues).
func BookSkipped(ctx context.Context, book string, err error) {
	WarnContext(ctx, "book_skipped", "book", book, "error", err.Error())
}

// CompanionFallback logs a companion-service failure and the recovered
// fallback that was applied (§7).
func CompanionFallback(ctx context.Context, service string, err error) {
	WarnContext(ctx, "companion_fallback", "service", service, "error", err.Error())
}
