package parts

import (
	"errors"

	"github.com/avdl/panemux/internal/domain/entity"
)

// ErrInvalidGroup is returned by the strict resolution path when an
// identifier corresponds to no live group. It fails fast and is never
// retried.
var ErrInvalidGroup = errors.New("invalid group")

// PartForGroup resolves the part owning the given group. Resolution is
// lenient: with exactly one registered part it always returns the main part,
// even when the identifier matches no known group; with multiple parts an
// unmatched identifier falls back to the main part.
func (c *Coordinator) PartForGroup(id entity.GroupID) Part {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.partForGroupLocked(id)
}

func (c *Coordinator) partForGroupLocked(id entity.GroupID) Part {
	if len(c.parts) == 1 {
		return c.main
	}
	for _, rp := range c.parts {
		if rp.part.HasGroup(id) {
			return rp.part
		}
	}
	return c.main
}

// PartForWindow resolves the part bound to the given display-surface handle,
// falling back to the main part. With exactly one registered part it always
// returns the main part.
func (c *Coordinator) PartForWindow(id entity.WindowID) Part {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.parts) == 1 {
		return c.main
	}
	for _, rp := range c.parts {
		if rp.part.WindowID() == id {
			return rp.part
		}
	}
	return c.main
}

// GroupStrict dereferences a group identifier to its live group. Unlike the
// lenient routing path, it returns ErrInvalidGroup when nothing resolves;
// it is used by operations that must read group properties.
func (c *Coordinator) GroupStrict(id entity.GroupID) (Group, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, rp := range c.parts {
		if g, ok := rp.part.Group(id); ok {
			return g, nil
		}
	}
	return nil, ErrInvalidGroup
}
