package gowrapper

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// lockedBuffer is written to by the goroutine under test and read by the test itself
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (l *lockedBuffer) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Write(p)
}

func (l *lockedBuffer) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.String()
}

func TestGo(t *testing.T) {
	t.Parallel()

	var logBytes lockedBuffer
	slogger := slog.New(slog.NewTextHandler(&logBytes, &slog.HandlerOptions{Level: slog.LevelDebug}))

	done := make(chan struct{})
	Go(context.TODO(), slogger, func() {
		close(done)
	})

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("goroutine did not run")
	}

	require.Empty(t, logBytes.String())
}

func TestGoWithRecoveryAction(t *testing.T) {
	t.Parallel()

	var logBytes lockedBuffer
	slogger := slog.New(slog.NewTextHandler(&logBytes, &slog.HandlerOptions{Level: slog.LevelDebug}))

	recovered := make(chan any, 1)
	GoWithRecoveryAction(context.TODO(), slogger, func() {
		panic("test panic")
	}, func(r any) {
		recovered <- r
	})

	select {
	case r := <-recovered:
		require.Equal(t, "test panic", r)
	case <-time.After(5 * time.Second):
		t.Fatal("recovery action was not called")
	}

	require.Contains(t, logBytes.String(), "panic stack trace")
	require.Contains(t, logBytes.String(), "test panic")
}
