package log

// Logger is the structured logger used across corepc.
type Logger interface {
	// Debug logs wire-level detail such as request ids and raw payload sizes.
	Debug(msg string, keysAndValues ...any)
	// Info logs lifecycle events: node spawned, node ready, node stopped.
	Info(msg string, keysAndValues ...any)
	// Warn logs recoverable problems, e.g. a readiness poll that failed and will be retried.
	Warn(msg string, keysAndValues ...any)
	// Error logs failures that abort an operation.
	Error(msg string, keysAndValues ...any)
	// Fatal logs an unrecoverable failure. The zap backed logger exits the process.
	Fatal(msg string, keysAndValues ...any)
	// WithKV returns a logger that attaches key/value to every entry.
	WithKV(key string, value any) Logger
	// GetAllKV returns the persistent key/value pairs of this logger.
	GetAllKV() []any
	// WithName returns a child logger; names are joined with dots.
	WithName(name string) Logger
	// Name returns the dotted logger name.
	Name() string
	// AddCallerSkip returns a logger that skips extra stack frames when reporting the caller.
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

// SpanEventRecorder records log entries on a trace span.
type SpanEventRecorder interface {
	TraceID() string
	SpanID() string

	// RecordEvent adds an event; keysAndValues are alternating keys and values.
	RecordEvent(name string, keysAndValues ...any)
	// RecordError adds an event and marks the span as failed.
	RecordError(name string, keysAndValues ...any)
}
