package crc32c

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"time"
)

// Logger wraps slog.Logger with crc32c-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithName adds a blob or file name field to the logger.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("name", name),
	}
}

// LogSelection logs the engine chosen by the dispatcher.
func (l *Logger) LogSelection(ctx context.Context, info Info) {
	l.DebugContext(ctx, "crc32c implementation selected",
		"impl", info.Impl.String(),
		"overridden", info.Overridden,
		"arch", info.Capabilities.Arch,
		"cpu", info.Capabilities.CPU,
		"features", info.Capabilities.Features(),
	)
}

// LogScrub logs a completed or failed scrub of a blob.
func (l *Logger) LogScrub(ctx context.Context, name string, size int64, checksum uint32, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "scrub failed",
			"name", name,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "scrub completed",
		"name", name,
		"size", size,
		"checksum", checksum,
		"elapsed", elapsed,
	)
}

// LogCorruption logs a blob with count bad blocks, the lowest being first.
func (l *Logger) LogCorruption(ctx context.Context, name string, blockSize int, count uint64, first uint32) {
	if count == 0 {
		return
	}
	l.WarnContext(ctx, "checksum mismatch",
		"name", name,
		"block_size", blockSize,
		"bad_blocks", count,
		"first_bad", first,
	)
}

var pkgLogger atomic.Pointer[Logger]

func init() {
	pkgLogger.Store(NoopLogger())
}

// SetLogger installs the logger used for package diagnostics. A nil logger
// restores the no-op default. The engine selection is logged once, on first
// use, so install the logger before computing any checksum to see it.
func SetLogger(l *Logger) {
	if l == nil {
		l = NoopLogger()
	}
	pkgLogger.Store(l)
}

func logger() *Logger {
	return pkgLogger.Load()
}
