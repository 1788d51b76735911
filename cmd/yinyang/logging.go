package main

import (
	"io"
	"log/slog"

	"github.com/itstyrion/yinyang/pkg/log/locallogger"
	"github.com/itstyrion/yinyang/pkg/log/multislogger"
)

// closerFunc adapts a function to the io.Closer interface.
type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// buildLogger sets up the file log and, when debugging, stderr. The returned
// closer flushes and closes the file.
func buildLogger(opts *options, stderr io.Writer) (*multislogger.MultiSlogger, io.Closer) {
	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}

	slogger := multislogger.New()
	closer := closerFunc(func() error { return nil })

	if opts.logFile != disableLogFile {
		ll := locallogger.New(opts.logFile, level)
		slogger.AddHandler(ll.Handler())
		closer = ll.Close
	}

	// A windowsgui binary has no console, so stderr is only worth it when asked for
	if opts.debug {
		slogger.AddHandler(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	return slogger, closer
}
