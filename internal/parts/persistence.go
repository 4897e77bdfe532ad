package parts

import (
	"context"
	"fmt"

	"github.com/avdl/panemux/internal/async"
	"github.com/avdl/panemux/internal/domain/entity"
)

// SaveState captures the cross-part UI snapshot: one entry per auxiliary
// part (layout state, plus bounds and zoom when the part's window is
// currently resolvable) and the MRU list as positions into the current parts
// array. With zero auxiliary parts any previously stored snapshot is deleted
// rather than replaced by an empty one.
func (c *Coordinator) SaveState(ctx context.Context) error {
	c.mu.RLock()
	parts := c.partsLocked()
	// Recency-complete ordering: every live part appears exactly once, so a
	// clean restore can map positions back one-to-one.
	mru := c.partsByRecencyLocked()
	c.mu.RUnlock()

	var auxiliary []entity.AuxiliaryPartState
	for _, p := range parts {
		if p == c.main {
			continue
		}
		state := entity.AuxiliaryPartState{State: p.CreateState()}
		if c.displays != nil {
			if bounds, ok := c.displays.Bounds(p.WindowID()); ok && !bounds.IsZero() {
				state.Bounds = &bounds
			}
			if zoom, ok := c.displays.ZoomLevel(p.WindowID()); ok {
				state.ZoomLevel = &zoom
			}
		}
		auxiliary = append(auxiliary, state)
	}

	if len(auxiliary) == 0 {
		if err := c.store.DeleteSnapshot(ctx, c.workspaceID); err != nil {
			return fmt.Errorf("delete parts snapshot: %w", err)
		}
		return nil
	}

	snapshot := entity.NewPartsSnapshot()
	snapshot.Auxiliary = auxiliary
	for _, p := range mru {
		for i, candidate := range parts {
			if candidate == p {
				snapshot.MRU = append(snapshot.MRU, i)
				break
			}
		}
	}

	if err := c.store.SaveSnapshot(ctx, c.workspaceID, snapshot); err != nil {
		return fmt.Errorf("save parts snapshot: %w", err)
	}
	return nil
}

// restore runs the two-phase startup sequence once. Every wait is
// settlement-based: an individual part failing to create, become ready, or
// finish restoring never blocks or aborts the others.
func (c *Coordinator) restore(ctx context.Context) {
	// Phase boundaries are the only suspension points; all registry, MRU,
	// and label mutations happen synchronously inside registration calls.
	if err := c.main.WhenReady().Wait(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("main part readiness failed")
	}

	var saved *entity.PartsSnapshot
	if c.main.WillRestoreState() {
		var err error
		saved, err = c.store.GetSnapshot(ctx, c.workspaceID)
		if err != nil {
			c.logger.Warn().Err(err).Msg("reading parts snapshot failed")
			saved = nil
		}
	}

	if saved != nil {
		c.restoreAuxiliaryParts(ctx, saved)
		c.rebuildMRU(saved)
	}

	errs := async.SettleLatches(ctx, c.readyLatches()...)
	c.logSettlement(errs, "part readiness failed")

	if g := c.MostRecentlyActivePart().ActiveGroup(); g != nil {
		g.Focus()
	}

	c.logger.Debug().Int("part_count", c.PartCount()).Msg("editor parts ready")
	c.ready.Resolve(nil)

	errs = async.SettleLatches(ctx, c.restoredLatches()...)
	c.logSettlement(errs, "part restoration failed")

	c.logger.Debug().Msg("editor parts restored")
	c.restored.Resolve(nil)
}

// restoreAuxiliaryParts issues every creation request without waiting for
// each individually, then waits for all of them to settle.
func (c *Coordinator) restoreAuxiliaryParts(ctx context.Context, saved *entity.PartsSnapshot) {
	tasks := make([]func(context.Context) error, 0, len(saved.Auxiliary))
	for _, aux := range saved.Auxiliary {
		opts := AuxiliaryPartOptions{
			Bounds:    aux.Bounds,
			State:     aux.State,
			ZoomLevel: aux.ZoomLevel,
		}
		tasks = append(tasks, func(ctx context.Context) error {
			_, err := c.CreateAuxiliaryPart(ctx, opts)
			return err
		})
	}

	errs := async.Settle(ctx, tasks...)
	c.logSettlement(errs, "auxiliary part creation failed")
}

// rebuildMRU maps the saved MRU positions onto live parts when the saved
// entry count matches the current part count; on mismatch (a creation
// failed) it falls back to natural creation order. It only runs after a
// snapshot was actually restored: without one, the MRU list keeps whatever
// focus activity has already built, and an empty list falls back to the
// main part.
func (c *Coordinator) rebuildMRU(saved *entity.PartsSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	parts := c.partsLocked()

	if len(saved.MRU) == len(parts) {
		mru := make([]Part, 0, len(parts))
		seen := make(map[Part]bool, len(parts))
		valid := true
		for _, pos := range saved.MRU {
			if pos < 0 || pos >= len(parts) || seen[parts[pos]] {
				valid = false
				break
			}
			seen[parts[pos]] = true
			mru = append(mru, parts[pos])
		}
		if valid {
			c.mru = mru
			return
		}
		c.logger.Warn().Msg("saved MRU positions invalid, using creation order")
	}

	c.mru = parts
}

func (c *Coordinator) readyLatches() []*async.Latch {
	latches := make([]*async.Latch, 0, c.PartCount())
	for _, p := range c.Parts() {
		latches = append(latches, p.WhenReady())
	}
	return latches
}

func (c *Coordinator) restoredLatches() []*async.Latch {
	latches := make([]*async.Latch, 0, c.PartCount())
	for _, p := range c.Parts() {
		latches = append(latches, p.WhenRestored())
	}
	return latches
}

func (c *Coordinator) logSettlement(errs []error, msg string) {
	for i, err := range errs {
		if err != nil {
			c.logger.Warn().Err(err).Int("index", i).Msg(msg)
		}
	}
}
