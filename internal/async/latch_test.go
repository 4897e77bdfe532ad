package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdl/panemux/internal/async"
)

func TestLatch_ResolvesOnce(t *testing.T) {
	l := async.NewLatch()
	require.False(t, l.Settled())

	failure := errors.New("boom")
	l.Resolve(failure)
	l.Resolve(nil) // second settlement must not revert the first

	require.True(t, l.Settled())
	assert.Equal(t, failure, l.Err())
	assert.Equal(t, failure, l.Wait(context.Background()))
}

func TestLatch_WaitHonorsContext(t *testing.T) {
	l := async.NewLatch()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := l.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestResolvedLatch(t *testing.T) {
	l := async.ResolvedLatch(nil)
	require.True(t, l.Settled())
	assert.NoError(t, l.Wait(context.Background()))
}

func TestSettle_ToleratesIndividualFailures(t *testing.T) {
	failure := errors.New("one failed")

	errs := async.Settle(context.Background(),
		func(context.Context) error { return nil },
		func(context.Context) error { return failure },
		func(context.Context) error { return nil },
	)

	require.Len(t, errs, 3)
	assert.NoError(t, errs[0])
	assert.Equal(t, failure, errs[1])
	assert.NoError(t, errs[2])
}

func TestSettleLatches_WaitsForAll(t *testing.T) {
	a := async.NewLatch()
	b := async.NewLatch()
	failure := errors.New("b failed")

	go func() {
		a.Resolve(nil)
		b.Resolve(failure)
	}()

	errs := async.SettleLatches(context.Background(), a, b)

	require.Len(t, errs, 2)
	assert.NoError(t, errs[0])
	assert.Equal(t, failure, errs[1])
}
