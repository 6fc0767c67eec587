// Package chflow provides context-aware helpers for waiting on channels and
// timers.
package chflow

import (
	"context"
	"time"
)

// Receive waits for a value on ch or for ctx to be done. The boolean is false
// when ctx ended first or ch was closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Sleep pauses for d unless ctx is done first, in which case it returns
// ctx.Err(). A non-positive d only checks ctx.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	if _, ok := Receive(ctx, timer.C); !ok {
		return ctx.Err()
	}

	return nil
}
