package log

import (
	"log/slog"
	"os"
)

// SetupLogger configures both the process-wide slog default and the package
// logger provider to emit JSON records at the given level. Log output goes
// to stderr so that command results on stdout stay machine-readable.
func SetupLogger(loglevel string) {
	level := &slog.LevelVar{}
	level.Set(ToLogLevel(loglevel))

	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}
	handler := slog.NewJSONHandler(os.Stderr, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	root := slog.New(errFmtHandler)

	slog.SetDefault(root)
	SetLoggerProvider(&SlogProvider{level: level, root: root})
}

// ToLogLevel parses a level name. Unknown names fall back to info.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
