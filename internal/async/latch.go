// Package async provides one-shot completion latches and settlement-based
// fan-out waiting for the startup/restoration sequence.
package async

import (
	"context"
	"sync"
)

// Latch is a one-shot completion. It settles exactly once, either fulfilled
// (nil error) or failed, and never reverts. All waiters observe the same
// outcome.
type Latch struct {
	once sync.Once
	done chan struct{}
	err  error
}

// NewLatch creates an unsettled latch.
func NewLatch() *Latch {
	return &Latch{done: make(chan struct{})}
}

// Resolve settles the latch. Subsequent calls are no-ops.
func (l *Latch) Resolve(err error) {
	l.once.Do(func() {
		l.err = err
		close(l.done)
	})
}

// Done returns a channel closed once the latch settles.
func (l *Latch) Done() <-chan struct{} {
	return l.done
}

// Settled reports whether the latch has settled.
func (l *Latch) Settled() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}

// Err returns the settlement error. Only meaningful after Done is closed.
func (l *Latch) Err() error {
	select {
	case <-l.done:
		return l.err
	default:
		return nil
	}
}

// Wait blocks until the latch settles or ctx is cancelled. It returns the
// settlement error, or the context error on cancellation.
func (l *Latch) Wait(ctx context.Context) error {
	select {
	case <-l.done:
		return l.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ResolvedLatch returns a latch already settled with err.
func ResolvedLatch(err error) *Latch {
	l := NewLatch()
	l.Resolve(err)
	return l
}
