package log

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// Attribute keys emitted for logged errors.
const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr packs err into the attribute ErrFmtHandler looks for.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// ErrFmtHandler decorates another slog.Handler. When a record carries an
// error attribute whose value is a cockroachdb/errors error, the handler
// adds the captured stacktrace as a separate string attribute.
type ErrFmtHandler struct {
	handler slog.Handler
}

// WrapByErrFmtHandler wraps handler with stacktrace extraction.
func WrapByErrFmtHandler(handler slog.Handler) slog.Handler {
	return &ErrFmtHandler{handler: handler}
}

func (eh *ErrFmtHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return eh.handler.Enabled(ctx, l)
}

func (eh *ErrFmtHandler) Handle(ctx context.Context, r slog.Record) error {
	if trace := stacktraceFrom(r); trace != "" {
		// Record copies share state; clone before mutating.
		r = r.Clone()
		r.AddAttrs(slog.String(StacktraceAttrKey, trace))
	}
	return eh.handler.Handle(ctx, r)
}

func (eh *ErrFmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithAttrs(attrs)}
}

func (eh *ErrFmtHandler) WithGroup(g string) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithGroup(g)}
}

// stacktraceFrom returns the stacktrace recorded in r's error attribute.
// cockroachdb/errors stores the formatted trace as the first safe detail.
func stacktraceFrom(r slog.Record) string {
	var trace string
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key != ErrAttrKey {
			return true
		}
		if err, ok := attr.Value.Any().(error); ok {
			if details := errors.GetSafeDetails(err).SafeDetails; len(details) > 0 {
				trace = details[0]
			}
		}
		return false
	})
	return trace
}
