package log

import (
	"bytes"
	"sync"
)

// maxPendingLine bounds a single unterminated line; longer output is flushed as is.
const maxPendingLine = 64 * 1024

// LineWriter is an io.Writer that emits one log entry per line written to it.
// The supervisor plugs it into a daemon's stdout/stderr when output viewing is enabled.
type LineWriter struct {
	lg    Logger
	level Level

	mu      sync.Mutex
	pending []byte
}

// NewLineWriter logs each line at level on lg.
func NewLineWriter(lg Logger, level Level) *LineWriter {
	return &LineWriter{lg: lg.AddCallerSkip(1), level: level}
}

// Write buffers p and emits every complete line. It never fails.
func (w *LineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = append(w.pending, p...)
	for {
		i := bytes.IndexByte(w.pending, '\n')
		if i < 0 {
			break
		}
		w.emit(w.pending[:i])
		w.pending = w.pending[i+1:]
	}
	if len(w.pending) > maxPendingLine {
		w.emit(w.pending)
		w.pending = nil
	}
	return len(p), nil
}

// Flush emits a trailing line that was not newline terminated.
func (w *LineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.pending) > 0 {
		w.emit(w.pending)
		w.pending = nil
	}
}

func (w *LineWriter) emit(line []byte) {
	line = bytes.TrimRight(line, "\r")
	if len(line) == 0 {
		return
	}
	msg := string(line)
	switch w.level {
	case LevelDebug:
		w.lg.Debug(msg)
	case LevelWarn:
		w.lg.Warn(msg)
	case LevelError:
		w.lg.Error(msg)
	default:
		w.lg.Info(msg)
	}
}
