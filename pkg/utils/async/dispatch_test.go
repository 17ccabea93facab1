package async_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/drover/pkg/utils/async"
	"github.com/m-mizutani/gt"
)

// safeBuffer is a thread-safe buffer for concurrent logging
type safeBuffer struct {
	b bytes.Buffer
	m sync.Mutex
}

func (sb *safeBuffer) Write(p []byte) (int, error) {
	sb.m.Lock()
	defer sb.m.Unlock()
	return sb.b.Write(p)
}

func (sb *safeBuffer) String() string {
	sb.m.Lock()
	defer sb.m.Unlock()
	return sb.b.String()
}

func TestDispatch(t *testing.T) {
	t.Run("executes handler asynchronously", func(t *testing.T) {
		done := make(chan struct{})

		async.Dispatch(context.Background(), func(ctx context.Context) error {
			close(done)
			return nil
		})

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("handler was not executed")
		}
	})

	t.Run("handler survives caller cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)

		async.Dispatch(ctx, func(ctx context.Context) error {
			// The caller's cancellation must not reach the handler context
			cancel()
			time.Sleep(10 * time.Millisecond)
			done <- ctx.Err()
			return nil
		})

		select {
		case err := <-done:
			gt.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("handler did not finish")
		}
	})

	t.Run("logs handler error", func(t *testing.T) {
		buf := &safeBuffer{}
		logger := slog.New(slog.NewTextHandler(buf, nil))
		ctx := ctxlog.With(context.Background(), logger)

		executed := make(chan struct{})
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer close(executed)
			return errors.New("handler failed")
		})

		<-executed
		waitForLog(t, buf, "handler failed")
	})

	t.Run("recovers from panic", func(t *testing.T) {
		buf := &safeBuffer{}
		logger := slog.New(slog.NewTextHandler(buf, nil))
		ctx := ctxlog.With(context.Background(), logger)

		async.Dispatch(ctx, func(ctx context.Context) error {
			panic("boom")
		})

		waitForLog(t, buf, "panic in async handler")
	})
}

// waitForLog polls the buffer until the message appears; the log write
// happens after the handler returns, so a completion signal is not enough
func waitForLog(t *testing.T, buf *safeBuffer, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(buf.String(), msg) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("log %q not found in output: %s", msg, buf.String())
}
