package parts

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/avdl/panemux/internal/async"
	"github.com/avdl/panemux/internal/domain/entity"
	"github.com/avdl/panemux/internal/domain/repository"
	"github.com/avdl/panemux/internal/event"
	"github.com/avdl/panemux/internal/logging"
)

// ErrMainPartNotRemovable is returned when attempting to unregister the main
// part.
var ErrMainPartNotRemovable = errors.New("main part cannot be removed")

// ErrPartNotFound is returned when a part identifier matches no registered
// part.
var ErrPartNotFound = errors.New("part not found")

// Options configures a Coordinator.
type Options struct {
	Factory     PartFactory
	Displays    DisplayProvider
	Store       repository.PartStateRepository
	WorkspaceID string
}

type registeredPart struct {
	part      Part
	subs      *event.Bundle
	resources Disposable
}

// Coordinator is the unified editor-group service over all window parts.
type Coordinator struct {
	logger      zerolog.Logger
	factory     PartFactory
	displays    DisplayProvider
	store       repository.PartStateRepository
	workspaceID string

	mu    sync.RWMutex
	parts []*registeredPart // registration order, main part first
	main  Part
	mru   []Part

	events   *AggregateEvents
	ready    *async.Latch
	restored *async.Latch
}

// New creates the coordinator, eagerly creates and registers the main part,
// and kicks off the asynchronous restoration sequence. Callers observe
// startup through WhenReady and WhenRestored.
func New(ctx context.Context, opts Options) (*Coordinator, error) {
	if opts.Factory == nil {
		return nil, errors.New("part factory is required")
	}
	if opts.Store == nil {
		return nil, errors.New("part state repository is required")
	}

	ctx = logging.WithComponent(ctx, "part-coordinator")

	c := &Coordinator{
		logger:      *logging.FromContext(ctx),
		factory:     opts.Factory,
		displays:    opts.Displays,
		store:       opts.Store,
		workspaceID: opts.WorkspaceID,
		events:      newAggregateEvents(),
		ready:       async.NewLatch(),
		restored:    async.NewLatch(),
	}

	main, resources, err := opts.Factory.CreateMainPart(ctx)
	if err != nil {
		return nil, fmt.Errorf("create main part: %w", err)
	}
	c.main = main
	c.registerPart(main, resources)

	go c.restore(ctx)

	return c, nil
}

// WhenReady settles once the layout is visible and interactive.
func (c *Coordinator) WhenReady() *async.Latch {
	return c.ready
}

// WhenRestored settles once previously open content has been fully
// reopened. This may take materially longer than readiness.
func (c *Coordinator) WhenRestored() *async.Latch {
	return c.restored
}

// MainPart returns the main part. It exists for the coordinator's whole
// lifetime.
func (c *Coordinator) MainPart() Part {
	return c.main
}

// Parts returns every registered part in registration order, main part
// first.
func (c *Coordinator) Parts() []Part {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.partsLocked()
}

func (c *Coordinator) partsLocked() []Part {
	out := make([]Part, len(c.parts))
	for i, rp := range c.parts {
		out[i] = rp.part
	}
	return out
}

// PartCount returns the number of registered parts.
func (c *Coordinator) PartCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.parts)
}

// Part returns the registered part with the given identifier.
func (c *Coordinator) Part(id entity.PartID) (Part, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, rp := range c.parts {
		if rp.part.ID() == id {
			return rp.part, true
		}
	}
	return nil, false
}

// CreateAuxiliaryPart creates, registers, and wires a new auxiliary part.
// Registration is the single labeling point: the dense "Window N" label is
// assigned there and supersedes any label carried in opts.
func (c *Coordinator) CreateAuxiliaryPart(ctx context.Context, opts AuxiliaryPartOptions) (Part, error) {
	part, resources, err := c.factory.CreateAuxiliaryPart(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("create auxiliary part: %w", err)
	}

	c.registerPart(part, resources)
	c.logger.Debug().
		Str("part_id", string(part.ID())).
		Str("label", part.Label()).
		Msg("auxiliary part registered")

	return part, nil
}

// RemovePart unregisters an auxiliary part: its subscriptions and resources
// are disposed exactly once, it is removed from the MRU list, and the
// remaining auxiliary parts are relabeled densely. The main part is never
// removable.
func (c *Coordinator) RemovePart(id entity.PartID) error {
	c.mu.Lock()

	if c.main != nil && c.main.ID() == id {
		c.mu.Unlock()
		return ErrMainPartNotRemovable
	}

	idx := -1
	for i, rp := range c.parts {
		if rp.part.ID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return ErrPartNotFound
	}

	rp := c.parts[idx]
	c.parts = append(c.parts[:idx], c.parts[idx+1:]...)
	c.removeFromMRULocked(rp.part)
	c.relabelLocked()
	c.mu.Unlock()

	// Tear down outside the lock: disposal and the removal event may call
	// back into the coordinator.
	rp.subs.Dispose()
	if rp.resources != nil {
		rp.resources.Dispose()
	}

	c.logger.Debug().Str("part_id", string(id)).Msg("part unregistered")
	c.events.PartRemoved.Emit(rp.part)

	return nil
}

// registerPart enters the part into registry, label, event, and MRU
// bookkeeping.
func (c *Coordinator) registerPart(part Part, resources Disposable) {
	subs := c.subscribePart(part)

	c.mu.Lock()
	c.parts = append(c.parts, &registeredPart{part: part, subs: subs, resources: resources})
	c.relabelLocked()
	c.mu.Unlock()

	c.events.PartAdded.Emit(part)
}

// relabelLocked recomputes dense auxiliary labels from live position: the
// auxiliary part at position i (main part excluded) is labeled "Window i+1".
func (c *Coordinator) relabelLocked() {
	aux := 0
	for _, rp := range c.parts {
		if rp.part == c.main {
			continue
		}
		aux++
		rp.part.SetLabel(fmt.Sprintf("Window %d", aux))
	}
}
