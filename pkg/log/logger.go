package log

import (
	"fmt"
	"strings"
)

// Logger is a leveled, structured logger. keysAndValues are alternating
// key/value pairs, e.g. "command", "sign", "fields", 3.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	// Fatal logs at fatal level. ZapLogger exits the process afterwards.
	Fatal(msg string, keysAndValues ...any)

	// WithKV returns a logger that adds key/value to every entry.
	WithKV(key string, value any) Logger
	// GetAllKV returns the pairs added with WithKV, oldest first.
	GetAllKV() []any
	// WithName returns a logger whose name is extended with name, dot separated.
	WithName(name string) Logger
	Name() string
	// AddCallerSkip returns a logger that reports the caller skip frames
	// further up the stack. Implementations without caller reporting return
	// themselves.
	AddCallerSkip(skip int) Logger
}

// Level is the severity of a log entry.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)

// ParseLevel converts a configuration string into a Level.
func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToLower(strings.TrimSpace(s))); l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal:
		return l, nil
	case "warning":
		return LevelWarn, nil
	default:
		return "", fmt.Errorf("unknown log level %q", s)
	}
}

// SpanEventRecorder receives log entries as trace span events.
type SpanEventRecorder interface {
	TraceID() string
	SpanID() string

	// RecordEvent adds an event named name with keysAndValues as attributes.
	RecordEvent(name string, keysAndValues ...any)
	// RecordError adds an event like RecordEvent and marks the span failed.
	RecordError(name string, keysAndValues ...any)
}
