package async

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Settle runs every task concurrently and waits until all of them have
// settled. Individual task errors are collected, never propagated between
// tasks: one task failing does not cancel or abort its siblings. The returned
// slice holds each task's outcome at its original index.
func Settle(ctx context.Context, tasks ...func(context.Context) error) []error {
	errs := make([]error, len(tasks))

	g, ctx := errgroup.WithContext(ctx)
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			// Swallow the error so the group never cancels siblings;
			// settlement means fulfilled or failed, not all succeeded.
			errs[i] = task(ctx)
			return nil
		})
	}
	_ = g.Wait()

	return errs
}

// SettleLatches waits for every latch to settle, tolerating individual
// failures, and returns their settlement errors in order.
func SettleLatches(ctx context.Context, latches ...*Latch) []error {
	tasks := make([]func(context.Context) error, len(latches))
	for i, l := range latches {
		tasks[i] = l.Wait
	}
	return Settle(ctx, tasks...)
}
