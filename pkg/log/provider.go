// Package log wires the Logger interface to a concrete backend.
//
// This file contains the default slog-backed implementation and the
// package-level provider registry. Library code obtains loggers through
// GetLogger / GetLoggerWithName and never holds a backend directly, so
// applications and tests can swap the backend with SetLoggerProvider.

package log

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// slogLogger adapts a *slog.Logger to the Logger interface.
type slogLogger struct {
	logger *slog.Logger
}

// Debug implements Logger.Debug.
func (s *slogLogger) Debug(msg string, fields ...any) {
	s.logger.Debug(msg, fields...)
}

// Info implements Logger.Info.
func (s *slogLogger) Info(msg string, fields ...any) {
	s.logger.Info(msg, fields...)
}

// Warn implements Logger.Warn.
func (s *slogLogger) Warn(msg string, fields ...any) {
	s.logger.Warn(msg, fields...)
}

// Error implements Logger.Error. When the first field is an error value it
// is rewritten as ErrAttr so that ErrFmtHandler can lift its stacktrace
// into a structured attribute.
func (s *slogLogger) Error(msg string, fields ...any) {
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			args := make([]any, 0, len(fields))
			args = append(args, ErrAttr(err))
			args = append(args, fields[1:]...)
			s.logger.Error(msg, args...)
			return
		}
	}
	s.logger.Error(msg, fields...)
}

// With implements Logger.With.
func (s *slogLogger) With(fields ...any) Logger {
	return &slogLogger{logger: s.logger.With(fields...)}
}

// Enabled implements Logger.Enabled.
func (s *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.logger.Enabled(ctx, slog.Level(level))
}

// SlogProvider is the default LoggerProvider. It hands out loggers backed
// by a shared slog root whose level can be adjusted at runtime.
type SlogProvider struct {
	level *slog.LevelVar
	root  *slog.Logger
}

// NewSlogProvider creates a provider that writes JSON records to stderr at
// info level. The root handler is wrapped by ErrFmtHandler so logged errors
// carry their stacktrace.
func NewSlogProvider() *SlogProvider {
	level := &slog.LevelVar{}
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &SlogProvider{
		level: level,
		root:  slog.New(WrapByErrFmtHandler(handler)),
	}
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *SlogProvider) GetLogger() Logger {
	return &slogLogger{logger: p.root}
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
func (p *SlogProvider) GetLoggerWithName(name string) Logger {
	return &slogLogger{logger: p.root.With(ComponentKey, name)}
}

// SetLevel implements LoggerProvider.SetLevel.
func (p *SlogProvider) SetLevel(level Level) {
	p.level.Set(slog.Level(level))
}

var (
	providerMu sync.RWMutex
	provider   LoggerProvider = NewSlogProvider()
)

// SetLoggerProvider replaces the package-wide logger provider.
// Tests use this to capture library log output.
func SetLoggerProvider(p LoggerProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	provider = p
}

// GetLogger returns the default logger from the current provider.
func GetLogger() Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return provider.GetLogger()
}

// GetLoggerWithName returns a named component logger from the current provider.
func GetLoggerWithName(name string) Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return provider.GetLoggerWithName(name)
}

// SetLevel sets the minimum level on the current provider.
func SetLevel(level Level) {
	providerMu.RLock()
	defer providerMu.RUnlock()
	provider.SetLevel(level)
}
