package log

var _ Logger = &SpanLogger{}

// SpanLogger forwards entries to a wrapped Logger and records each of them as
// an event on a trace span. Entries forwarded to the wrapped logger carry the
// traceId and spanId of the span.
type SpanLogger struct {
	lg  Logger
	ser SpanEventRecorder
}

// NewSpanLogger wraps lg so that its entries are also recorded through ser.
func NewSpanLogger(lg Logger, ser SpanEventRecorder) Logger {
	return &SpanLogger{
		lg:  lg.AddCallerSkip(1),
		ser: ser,
	}
}

func (sl *SpanLogger) Debug(msg string, keysAndValues ...any) {
	sl.ser.RecordEvent(msg, sl.eventAttributes(LevelDebug, keysAndValues)...)
	sl.lg.Debug(msg, sl.withTraceIDs(keysAndValues)...)
}

func (sl *SpanLogger) Info(msg string, keysAndValues ...any) {
	sl.ser.RecordEvent(msg, sl.eventAttributes(LevelInfo, keysAndValues)...)
	sl.lg.Info(msg, sl.withTraceIDs(keysAndValues)...)
}

func (sl *SpanLogger) Warn(msg string, keysAndValues ...any) {
	sl.ser.RecordEvent(msg, sl.eventAttributes(LevelWarn, keysAndValues)...)
	sl.lg.Warn(msg, sl.withTraceIDs(keysAndValues)...)
}

// Error records the entry as a span error.
func (sl *SpanLogger) Error(msg string, keysAndValues ...any) {
	sl.ser.RecordError(msg, sl.eventAttributes(LevelError, keysAndValues)...)
	sl.lg.Error(msg, sl.withTraceIDs(keysAndValues)...)
}

// Fatal records the entry as a span error before the wrapped logger runs.
func (sl *SpanLogger) Fatal(msg string, keysAndValues ...any) {
	sl.ser.RecordError(msg, sl.eventAttributes(LevelFatal, keysAndValues)...)
	sl.lg.Fatal(msg, sl.withTraceIDs(keysAndValues)...)
}

func (sl *SpanLogger) WithKV(key string, value any) Logger {
	return &SpanLogger{lg: sl.lg.WithKV(key, value), ser: sl.ser}
}

func (sl *SpanLogger) GetAllKV() []any {
	return sl.lg.GetAllKV()
}

func (sl *SpanLogger) WithName(name string) Logger {
	return &SpanLogger{lg: sl.lg.WithName(name), ser: sl.ser}
}

func (sl *SpanLogger) Name() string {
	return sl.lg.Name()
}

func (sl *SpanLogger) AddCallerSkip(skip int) Logger {
	return &SpanLogger{lg: sl.lg.AddCallerSkip(skip), ser: sl.ser}
}

func (sl *SpanLogger) withTraceIDs(keysAndValues []any) []any {
	kv := make([]any, 0, len(keysAndValues)+4)
	kv = append(kv, "traceId", sl.ser.TraceID(), "spanId", sl.ser.SpanID())
	return append(kv, keysAndValues...)
}

// eventAttributes returns level, component, the logger's persistent pairs and
// then keysAndValues, with sensitive values masked.
func (sl *SpanLogger) eventAttributes(level Level, keysAndValues []any) []any {
	persistent := sl.lg.GetAllKV()
	kv := make([]any, 0, len(persistent)+len(keysAndValues)+4)
	kv = append(kv, "level", string(level), "component", sl.lg.Name())
	kv = append(kv, persistent...)
	kv = append(kv, keysAndValues...)
	return Redact(kv)
}
