// Package log provides structured logging for the training pipeline.
//
// The package defines a small slog-compatible Logger interface plus the
// attribute-key vocabulary the library logs with (operation names, data
// shapes, metrics). Implementations are swappable: the default backend is
// log/slog with a JSON handler, tests install a buffer-backed provider, and
// applications may bridge to zerolog, logrus, or zap without touching call
// sites.
//
// A typical call site builds a contextual logger once and reuses it:
//
//	logger := log.GetLoggerWithName("linear").With(
//	    log.ModelNameKey, "LinearRegression",
//	)
//	logger.Info("training started",
//	    log.OperationKey, log.OperationFit,
//	    log.SamplesKey, 1000,
//	    log.FeaturesKey, 5,
//	)
package log

import (
	"context"
)

// Logger is the logging interface used throughout the library. Methods take
// a message followed by alternating key-value fields, mirroring log/slog, so
// any slog handler satisfies it through a thin adapter.
type Logger interface {
	// Debug logs detailed diagnostic information, typically disabled in
	// production. Fields are alternating key-value pairs:
	//
	//	logger.Debug("optimization progress",
	//	    log.IterationKey, 42,
	//	    log.LossKey, 0.173,
	//	)
	Debug(msg string, fields ...any)

	// Info logs general operational events such as a completed fit.
	Info(msg string, fields ...any)

	// Warn logs recoverable problems, for example numerically suspicious
	// values that do not abort training.
	Warn(msg string, fields ...any)

	// Error logs failures. When the first field is an error value the
	// implementation may treat it specially; the default backend rewrites
	// it into a structured attribute carrying the stacktrace.
	Error(msg string, fields ...any)

	// With returns a Logger that includes fields in every subsequent
	// message. Use it to attach model or component context once instead
	// of repeating it at every call site.
	With(fields ...any) Logger

	// Enabled reports whether records at level would be emitted, letting
	// callers skip expensive field construction:
	//
	//	if logger.Enabled(ctx, log.LevelDebug) {
	//	    logger.Debug("weights", "values", expensiveSnapshot())
	//	}
	Enabled(ctx context.Context, level Level) bool
}

// Level is a log severity level. The numeric values match slog.Level so the
// two convert directly.
type Level int

const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the conventional upper-case name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider creates and configures loggers. The package holds one
// active provider; swapping it redirects all library logging, which tests
// rely on to capture output.
type LoggerProvider interface {
	// GetLogger returns the default logger.
	GetLogger() Logger

	// GetLoggerWithName returns a logger tagged with a component name.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum level for loggers from this provider.
	SetLevel(level Level)
}
