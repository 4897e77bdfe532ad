package event

import "sync"

// Bundle owns a set of subscriptions and disposes them together.
// Dispose is idempotent; adding to a disposed bundle disposes immediately.
type Bundle struct {
	mu       sync.Mutex
	disposed bool
	subs     []*Subscription
}

// NewBundle creates an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{}
}

// Add takes ownership of a subscription.
func (b *Bundle) Add(subs ...*Subscription) {
	b.mu.Lock()
	if b.disposed {
		b.mu.Unlock()
		for _, s := range subs {
			s.Dispose()
		}
		return
	}
	b.subs = append(b.subs, subs...)
	b.mu.Unlock()
}

// Dispose tears down every owned subscription exactly once.
func (b *Bundle) Dispose() {
	b.mu.Lock()
	if b.disposed {
		b.mu.Unlock()
		return
	}
	b.disposed = true
	subs := b.subs
	b.subs = nil
	b.mu.Unlock()

	for _, s := range subs {
		s.Dispose()
	}
}
