package parts

import (
	"github.com/avdl/panemux/internal/event"
)

// AggregateEvents are the coordinator's system-wide streams. A caller
// observing them sees every part's activity through one subscription,
// regardless of how many parts exist.
type AggregateEvents struct {
	// PartAdded fires after a part enters the registry.
	PartAdded *event.Emitter[Part]
	// PartRemoved fires after a part has been unregistered and torn down.
	PartRemoved *event.Emitter[Part]
	// FocusChanged fires with the part that gained activation focus.
	FocusChanged *event.Emitter[Part]

	ActiveGroupChanged *event.Emitter[Group]
	GroupAdded         *event.Emitter[Group]
	GroupRemoved       *event.Emitter[Group]
	GroupMoved         *event.Emitter[Group]
	GroupActivated     *event.Emitter[Group]
	MaximizeChanged    *event.Emitter[Group]
	GroupIndexChanged  *event.Emitter[Group]
	GroupLockedChanged *event.Emitter[Group]
}

func newAggregateEvents() *AggregateEvents {
	return &AggregateEvents{
		PartAdded:          event.NewEmitter[Part](),
		PartRemoved:        event.NewEmitter[Part](),
		FocusChanged:       event.NewEmitter[Part](),
		ActiveGroupChanged: event.NewEmitter[Group](),
		GroupAdded:         event.NewEmitter[Group](),
		GroupRemoved:       event.NewEmitter[Group](),
		GroupMoved:         event.NewEmitter[Group](),
		GroupActivated:     event.NewEmitter[Group](),
		MaximizeChanged:    event.NewEmitter[Group](),
		GroupIndexChanged:  event.NewEmitter[Group](),
		GroupLockedChanged: event.NewEmitter[Group](),
	}
}

// Events returns the coordinator's aggregate streams.
func (c *Coordinator) Events() *AggregateEvents {
	return c.events
}

// subscribePart wires one part's streams into the aggregate streams. The
// returned bundle tears every subscription down exactly once at
// unregistration.
func (c *Coordinator) subscribePart(part Part) *event.Bundle {
	bundle := event.NewBundle()
	ev := part.Events()

	bundle.Add(ev.Focus.Subscribe(func(struct{}) {
		c.handlePartFocus(part)
	}))

	forward := func(src *event.Emitter[Group], dst *event.Emitter[Group]) {
		bundle.Add(src.Subscribe(func(g Group) {
			dst.Emit(g)
		}))
	}
	forward(ev.ActiveGroupChanged, c.events.ActiveGroupChanged)
	forward(ev.GroupAdded, c.events.GroupAdded)
	forward(ev.GroupRemoved, c.events.GroupRemoved)
	forward(ev.GroupMoved, c.events.GroupMoved)
	forward(ev.GroupActivated, c.events.GroupActivated)
	forward(ev.MaximizeChanged, c.events.MaximizeChanged)
	forward(ev.GroupIndexChanged, c.events.GroupIndexChanged)
	forward(ev.GroupLockedChanged, c.events.GroupLockedChanged)

	return bundle
}

// handlePartFocus applies the focus mutation rule to the MRU list and
// re-broadcasts the part's active group. The active-group re-broadcast only
// happens with more than one part: with a single part the part itself
// already emits active-group-changed, and a duplicate would double-fire.
func (c *Coordinator) handlePartFocus(part Part) {
	c.mu.Lock()
	c.promoteMRULocked(part)
	multi := len(c.parts) > 1
	c.mu.Unlock()

	c.events.FocusChanged.Emit(part)

	if multi {
		if g := part.ActiveGroup(); g != nil {
			c.events.ActiveGroupChanged.Emit(g)
		}
	}
}
