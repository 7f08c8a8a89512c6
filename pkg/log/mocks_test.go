package log_test

import "github.com/erc7824/fieldsig/pkg/log"

var _ log.Logger = &MockLogger{}
var _ log.SpanEventRecorder = &MockSpanEventRecorder{}

// MockLogger captures the last entry and the state changes applied to it.
// Derived loggers share state with their parent.
type MockLogger struct {
	lastEntry MockLogEntry

	name          string
	keysAndValues []any
	callerSkip    int
}

type MockLogEntry struct {
	Level         log.Level
	Message       string
	KeysAndValues []any
}

func NewMockLogger() *MockLogger {
	return &MockLogger{name: "mock", keysAndValues: []any{}}
}

func (ml *MockLogger) Debug(msg string, keysAndValues ...any) {
	ml.record(log.LevelDebug, msg, keysAndValues)
}

func (ml *MockLogger) Info(msg string, keysAndValues ...any) {
	ml.record(log.LevelInfo, msg, keysAndValues)
}

func (ml *MockLogger) Warn(msg string, keysAndValues ...any) {
	ml.record(log.LevelWarn, msg, keysAndValues)
}

func (ml *MockLogger) Error(msg string, keysAndValues ...any) {
	ml.record(log.LevelError, msg, keysAndValues)
}

func (ml *MockLogger) Fatal(msg string, keysAndValues ...any) {
	ml.record(log.LevelFatal, msg, keysAndValues)
}

func (ml *MockLogger) WithKV(key string, value any) log.Logger {
	ml.keysAndValues = append(ml.keysAndValues, key, value)
	return ml
}

func (ml *MockLogger) GetAllKV() []any { return ml.keysAndValues }

func (ml *MockLogger) WithName(name string) log.Logger {
	ml.name = name
	return ml
}

func (ml *MockLogger) Name() string { return ml.name }

func (ml *MockLogger) AddCallerSkip(skip int) log.Logger {
	ml.callerSkip += skip
	return ml
}

func (ml *MockLogger) CallerSkip() int { return ml.callerSkip }

func (ml *MockLogger) LastEntry() MockLogEntry { return ml.lastEntry }

func (ml *MockLogger) record(level log.Level, msg string, keysAndValues []any) {
	kv := append([]any{}, ml.keysAndValues...)
	ml.lastEntry = MockLogEntry{
		Level:         level,
		Message:       msg,
		KeysAndValues: append(kv, keysAndValues...),
	}
}

// MockSpanEventRecorder keeps the last recorded event. The event name is
// stored under "msg" at the front of the metadata.
type MockSpanEventRecorder struct {
	traceID           string
	spanID            string
	hasErr            bool
	lastEventMetadata []any
}

func NewMockSpanEventRecorder(traceID, spanID string) *MockSpanEventRecorder {
	return &MockSpanEventRecorder{traceID: traceID, spanID: spanID}
}

func (ser *MockSpanEventRecorder) TraceID() string { return ser.traceID }

func (ser *MockSpanEventRecorder) SpanID() string { return ser.spanID }

func (ser *MockSpanEventRecorder) RecordEvent(name string, keysAndValues ...any) {
	ser.lastEventMetadata = append([]any{"msg", name}, keysAndValues...)
}

func (ser *MockSpanEventRecorder) RecordError(name string, keysAndValues ...any) {
	ser.hasErr = true
	ser.lastEventMetadata = append([]any{"msg", name}, keysAndValues...)
}

func (ser *MockSpanEventRecorder) LastEventMetadata() []any { return ser.lastEventMetadata }

func (ser *MockSpanEventRecorder) HasError() bool { return ser.hasErr }

func kvToMap(kv []any) map[string]any {
	m := make(map[string]any)
	for i := 0; i+1 < len(kv); i += 2 {
		if key, ok := kv[i].(string); ok {
			m[key] = kv[i+1]
		}
	}
	return m
}
