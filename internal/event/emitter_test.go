package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdl/panemux/internal/event"
)

func TestEmitter_DeliversInSubscriptionOrder(t *testing.T) {
	e := event.NewEmitter[int]()

	var got []int
	e.Subscribe(func(v int) { got = append(got, v) })
	e.Subscribe(func(v int) { got = append(got, v*10) })

	e.Emit(1)
	e.Emit(2)

	assert.Equal(t, []int{1, 10, 2, 20}, got)
}

func TestEmitter_DisposeStopsDelivery(t *testing.T) {
	e := event.NewEmitter[string]()

	var got []string
	sub := e.Subscribe(func(v string) { got = append(got, v) })

	e.Emit("a")
	sub.Dispose()
	e.Emit("b")

	assert.Equal(t, []string{"a"}, got)
	assert.Equal(t, 0, e.SubscriberCount())
}

func TestEmitter_DisposeTwiceIsNoop(t *testing.T) {
	e := event.NewEmitter[int]()
	sub := e.Subscribe(func(int) {})

	sub.Dispose()
	require.NotPanics(t, sub.Dispose)
	assert.Equal(t, 0, e.SubscriberCount())
}

func TestBundle_DisposesEverySubscriptionOnce(t *testing.T) {
	e := event.NewEmitter[int]()
	calls := 0
	b := event.NewBundle()
	b.Add(e.Subscribe(func(int) { calls++ }))
	b.Add(e.Subscribe(func(int) { calls++ }))

	e.Emit(0)
	require.Equal(t, 2, calls)

	b.Dispose()
	b.Dispose()
	e.Emit(0)

	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, e.SubscriberCount())
}

func TestBundle_AddAfterDisposeDisposesImmediately(t *testing.T) {
	e := event.NewEmitter[int]()
	b := event.NewBundle()
	b.Dispose()

	b.Add(e.Subscribe(func(int) {}))

	assert.Equal(t, 0, e.SubscriberCount())
}
