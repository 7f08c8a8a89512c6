package log

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

type contextKey struct{}

// SetContextLogger returns a copy of ctx carrying lg. When ctx holds a valid
// span, lg is wrapped in a SpanLogger recording to that span unless it is a
// SpanLogger already. A nil lg is stored as a NoopLogger.
func SetContextLogger(ctx context.Context, lg Logger) context.Context {
	if lg == nil {
		lg = NewNoopLogger()
	}

	_, wrapped := lg.(*SpanLogger)
	if span := trace.SpanFromContext(ctx); !wrapped && span.SpanContext().IsValid() {
		lg = NewSpanLogger(lg, NewOtelSpanEventRecorder(span))
	}
	return context.WithValue(ctx, contextKey{}, lg)
}

// FromContext returns the logger stored in ctx, or a NoopLogger.
func FromContext(ctx context.Context) Logger {
	if lg, ok := ctx.Value(contextKey{}).(Logger); ok {
		return lg
	}
	return NewNoopLogger()
}
