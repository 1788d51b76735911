package gowrapper

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
)

// Go runs the given function in a goroutine, logging and swallowing any panic.
func Go(ctx context.Context, slogger *slog.Logger, goroutine func()) {
	GoWithRecoveryAction(ctx, slogger, goroutine, func(any) {})
}

// GoWithRecoveryAction runs the given function in a goroutine. If it panics, the
// panic and its stack trace are logged and recoveryAction is called with the
// recovered value.
func GoWithRecoveryAction(ctx context.Context, slogger *slog.Logger, goroutine func(), recoveryAction func(r any)) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				slogger.Log(ctx, slog.LevelError,
					"panic stack trace",
					"stack_trace", fmt.Sprintf("%+v\n%s", r, string(debug.Stack())),
				)

				// Run the recovery action after logging, so a panicking
				// recovery action can't hide the original panic
				recoveryAction(r)
			}
		}()

		goroutine()
	}()
}
