package parts

import (
	"github.com/avdl/panemux/internal/domain/entity"
)

// Groups enumerates every part's groups in the requested order.
//
// Creation order concatenates each part's own groups with parts in
// registration order. Grid-appearance order is identical across parts —
// there is no shared grid between windows, so cross-part spatial ordering is
// approximated by creation order — while within a single part it reflects
// that part's actual visual grid. Most-recently-active order walks parts by
// activation recency and uses each part's own recency order within.
func (c *Coordinator) Groups(order entity.GroupOrder) []Group {
	var source []Part
	switch order {
	case entity.GroupOrderMostRecentlyActive:
		source = c.PartsByRecency()
	default:
		source = c.Parts()
	}

	var out []Group
	for _, p := range source {
		out = append(out, p.Groups(order)...)
	}
	return out
}

// GroupCount returns the total number of groups across all parts.
func (c *Coordinator) GroupCount() int {
	count := 0
	for _, p := range c.Parts() {
		count += p.GroupCount()
	}
	return count
}

// HasGroup reports whether any registered part owns the group.
func (c *Coordinator) HasGroup(id entity.GroupID) bool {
	for _, p := range c.Parts() {
		if p.HasGroup(id) {
			return true
		}
	}
	return false
}

// Group returns the live group with the given identifier.
func (c *Coordinator) Group(id entity.GroupID) (Group, bool) {
	for _, p := range c.Parts() {
		if g, ok := p.Group(id); ok {
			return g, true
		}
	}
	return nil, false
}

// ActivePart returns the part owning the currently active group.
func (c *Coordinator) ActivePart() Part {
	return c.MostRecentlyActivePart()
}

// ActiveGroup returns the currently active group of the active part.
func (c *Coordinator) ActiveGroup() Group {
	return c.ActivePart().ActiveGroup()
}

// FindGroup searches for a group relative to source.
//
// FIRST and LAST dispatch globally over the grid-appearance-ordered list
// regardless of source. Everything else first attempts a same-part
// non-wrapping search in the part owning source; when that fails and the
// scope is NEXT or PREVIOUS, the search steps through the global
// grid-appearance list, where wrap applies only at the global ends. For any
// other scope, or when only one part exists, the same-part result (wrapped
// per wrap) is returned directly.
func (c *Coordinator) FindGroup(scope entity.FindScope, source entity.GroupID, wrap bool) (Group, bool) {
	if scope.Direction == entity.DirectionNone {
		switch scope.Location {
		case entity.FindFirst, entity.FindLast:
			return c.findGlobalEdge(scope.Location)
		}
	}

	owner := c.PartForGroup(source)

	if c.PartCount() == 1 {
		return owner.FindGroup(scope, source, wrap)
	}

	if g, ok := owner.FindGroup(scope, source, false); ok {
		return g, true
	}

	if scope.Direction == entity.DirectionNone &&
		(scope.Location == entity.FindNext || scope.Location == entity.FindPrevious) {
		return c.findGlobalStep(scope.Location, source, wrap)
	}

	return owner.FindGroup(scope, source, wrap)
}

func (c *Coordinator) findGlobalEdge(location entity.FindLocation) (Group, bool) {
	all := c.Groups(entity.GroupOrderGridAppearance)
	if len(all) == 0 {
		return nil, false
	}
	if location == entity.FindFirst {
		return all[0], true
	}
	return all[len(all)-1], true
}

func (c *Coordinator) findGlobalStep(location entity.FindLocation, source entity.GroupID, wrap bool) (Group, bool) {
	all := c.Groups(entity.GroupOrderGridAppearance)

	idx := -1
	for i, g := range all {
		if g.ID() == source {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}

	if location == entity.FindNext {
		idx++
	} else {
		idx--
	}

	// Wrap only at the global boundary, never at a part-local one.
	if idx < 0 {
		if !wrap {
			return nil, false
		}
		idx = len(all) - 1
	} else if idx >= len(all) {
		if !wrap {
			return nil, false
		}
		idx = 0
	}

	return all[idx], true
}
