// Package event provides a small typed observer primitive: emitters that
// synchronously deliver values to subscribed handlers, subscriptions that can
// be disposed exactly once, and bundles that tear down a set of subscriptions
// together.
package event

import "sync"

// Handler receives emitted values.
type Handler[T any] func(T)

// Subscription represents a single registered handler. Disposing it removes
// the handler; disposing twice is a no-op.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Dispose removes the handler from its emitter.
func (s *Subscription) Dispose() {
	if s == nil {
		return
	}
	s.once.Do(s.cancel)
}

// Emitter delivers values of type T to subscribers in subscription order.
// Delivery is synchronous: Emit returns once every handler has run.
type Emitter[T any] struct {
	mu       sync.Mutex
	nextID   int
	order    []int
	handlers map[int]Handler[T]
}

// NewEmitter creates an empty emitter.
func NewEmitter[T any]() *Emitter[T] {
	return &Emitter[T]{handlers: make(map[int]Handler[T])}
}

// Subscribe registers a handler and returns its subscription.
func (e *Emitter[T]) Subscribe(h Handler[T]) *Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.handlers[id] = h
	e.order = append(e.order, id)

	return &Subscription{cancel: func() { e.remove(id) }}
}

func (e *Emitter[T]) remove(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.handlers, id)
	for i, v := range e.order {
		if v == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

// Emit delivers v to every current subscriber. Handlers registered or
// disposed while Emit runs do not affect the in-flight delivery.
func (e *Emitter[T]) Emit(v T) {
	e.mu.Lock()
	snapshot := make([]Handler[T], 0, len(e.order))
	for _, id := range e.order {
		if h, ok := e.handlers[id]; ok {
			snapshot = append(snapshot, h)
		}
	}
	e.mu.Unlock()

	for _, h := range snapshot {
		h(v)
	}
}

// SubscriberCount returns the number of live subscriptions.
func (e *Emitter[T]) SubscriberCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.handlers)
}
