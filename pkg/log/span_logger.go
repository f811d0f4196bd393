package log

var _ Logger = SpanLogger{}

// SpanLogger forwards every entry to a wrapped Logger and mirrors it as an event on a span.
// RPC calls run inside a span, so a failed call shows its log lines next to the span timing.
type SpanLogger struct {
	lg  Logger
	ser SpanEventRecorder
}

// NewSpanLogger wraps lg and records its entries on ser.
// The wrapped logger skips one more frame to account for the wrapper.
func NewSpanLogger(lg Logger, ser SpanEventRecorder) Logger {
	return SpanLogger{
		lg:  lg.AddCallerSkip(1),
		ser: ser,
	}
}

// Debug logs a debug message to both the wrapped logger and the span.
func (sl SpanLogger) Debug(msg string, keysAndValues ...any) {
	sl.ser.RecordEvent(msg, sl.eventAttributes(LevelDebug, keysAndValues)...)
	sl.lg.Debug(msg, sl.withTraceIDs(keysAndValues)...)
}

// Info logs an info message to both the wrapped logger and the span.
func (sl SpanLogger) Info(msg string, keysAndValues ...any) {
	sl.ser.RecordEvent(msg, sl.eventAttributes(LevelInfo, keysAndValues)...)
	sl.lg.Info(msg, sl.withTraceIDs(keysAndValues)...)
}

// Warn logs a warning message to both the wrapped logger and the span.
func (sl SpanLogger) Warn(msg string, keysAndValues ...any) {
	sl.ser.RecordEvent(msg, sl.eventAttributes(LevelWarn, keysAndValues)...)
	sl.lg.Warn(msg, sl.withTraceIDs(keysAndValues)...)
}

// Error also marks the span as failed.
func (sl SpanLogger) Error(msg string, keysAndValues ...any) {
	sl.ser.RecordError(msg, sl.eventAttributes(LevelError, keysAndValues)...)
	sl.lg.Error(msg, sl.withTraceIDs(keysAndValues)...)
}

// Fatal logs a fatal message and records it as an error event on the span.
func (sl SpanLogger) Fatal(msg string, keysAndValues ...any) {
	sl.ser.RecordError(msg, sl.eventAttributes(LevelFatal, keysAndValues)...)
	sl.lg.Fatal(msg, sl.withTraceIDs(keysAndValues)...)
}

// WithKV returns a SpanLogger whose wrapped logger carries the pair.
// The recorder stays the same.
func (sl SpanLogger) WithKV(key string, value any) Logger {
	return SpanLogger{lg: sl.lg.WithKV(key, value), ser: sl.ser}
}

// GetAllKV returns the pairs of the wrapped logger.
func (sl SpanLogger) GetAllKV() []any {
	return sl.lg.GetAllKV()
}

// WithName names the wrapped logger.
func (sl SpanLogger) WithName(name string) Logger {
	return SpanLogger{lg: sl.lg.WithName(name), ser: sl.ser}
}

// Name returns the name of the wrapped logger.
func (sl SpanLogger) Name() string {
	return sl.lg.Name()
}

// AddCallerSkip returns a SpanLogger whose wrapped logger skips skip more frames.
func (sl SpanLogger) AddCallerSkip(skip int) Logger {
	return SpanLogger{lg: sl.lg.AddCallerSkip(skip), ser: sl.ser}
}

func (sl SpanLogger) withTraceIDs(keysAndValues []any) []any {
	return append([]any{
		"traceId", sl.ser.TraceID(),
		"spanId", sl.ser.SpanID(),
	}, keysAndValues...)
}

// eventAttributes prepends level, component and the persistent pairs of the wrapped logger,
// since span events do not see the logger's own fields.
func (sl SpanLogger) eventAttributes(level Level, keysAndValues []any) []any {
	attrs := append([]any{
		"level", string(level),
		"component", sl.lg.Name(),
	}, sl.lg.GetAllKV()...)
	return append(attrs, keysAndValues...)
}
