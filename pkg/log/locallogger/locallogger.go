// Package locallogger writes JSON logs to a rotated file, so a process with no
// console still leaves diagnostics behind.
package locallogger

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LocalLogger is a rotated JSON log file
type LocalLogger struct {
	lj      *lumberjack.Logger
	handler slog.Handler
}

// New creates a local logger writing to logFilePath at the given level
func New(logFilePath string, level slog.Leveler) *LocalLogger {
	// Create lumberjack logger for file rotation
	lj := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28,   // days
		Compress:   true, // compress rotated files
	}

	return &LocalLogger{
		lj: lj,
		handler: slog.NewJSONHandler(lj, &slog.HandlerOptions{
			AddSource: true,
			Level:     level,
		}),
	}
}

// Handler returns the slog.Handler writing to the file
func (ll *LocalLogger) Handler() slog.Handler {
	return ll.handler
}

// Writer returns the underlying io.Writer for direct access
func (ll *LocalLogger) Writer() io.Writer {
	return ll.lj
}

// Close closes the log file
func (ll *LocalLogger) Close() error {
	return ll.lj.Close()
}
