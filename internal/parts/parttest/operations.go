package parttest

import (
	"github.com/avdl/panemux/internal/domain/entity"
	"github.com/avdl/panemux/internal/parts"
)

var defaultGroupSize = entity.Size{Width: 800, Height: 600}

// Focus emits the part's focus event.
func (p *Part) Focus() {
	p.events.Focus.Emit(struct{}{})
}

func (p *Part) ActivateGroup(id entity.GroupID) {
	p.mu.Lock()
	g, _ := p.lookupLocked(id)
	p.mu.Unlock()
	if g != nil {
		p.activate(g)
	}
}

// activate makes g the active group and moves it to the front of the
// part-local MRU order.
func (p *Part) activate(g *Group) {
	p.mu.Lock()
	changed := p.active != g
	p.active = g
	p.mru = append([]*Group{g}, removeGroup(p.mru, g)...)
	p.mu.Unlock()

	p.events.GroupActivated.Emit(g)
	if changed {
		p.events.ActiveGroupChanged.Emit(g)
	}
}

func (p *Part) RestoreGroup(id entity.GroupID) {
	p.mu.Lock()
	g, _ := p.lookupLocked(id)
	p.mu.Unlock()
	if g == nil {
		return
	}
	// Restoring drops any maximization so the group becomes visible.
	p.mu.Lock()
	p.maximized = false
	p.mu.Unlock()
}

func (p *Part) GroupSize(id entity.GroupID) entity.Size {
	p.mu.Lock()
	defer p.mu.Unlock()
	if size, ok := p.sizes[id]; ok {
		return size
	}
	return defaultGroupSize
}

func (p *Part) SetGroupSize(id entity.GroupID, size entity.Size) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if g, _ := p.lookupLocked(id); g != nil {
		p.sizes[id] = size
	}
}

func (p *Part) ArrangeGroups(arrangement parts.Arrangement, id entity.GroupID) {
	switch arrangement {
	case parts.ArrangeEven:
		p.mu.Lock()
		p.sizes = make(map[entity.GroupID]entity.Size)
		p.maximized = false
		p.mu.Unlock()
	case parts.ArrangeMinimizeOthers:
		p.setMaximized(id, true)
	case parts.ArrangeToggle:
		p.ToggleMaximizeGroup(id)
	}
}

func (p *Part) ToggleMaximizeGroup(id entity.GroupID) {
	p.mu.Lock()
	maximized := p.maximized
	p.mu.Unlock()
	p.setMaximized(id, !maximized)
}

func (p *Part) setMaximized(id entity.GroupID, maximized bool) {
	p.mu.Lock()
	g, _ := p.lookupLocked(id)
	if g == nil {
		p.mu.Unlock()
		return
	}
	p.maximized = maximized
	p.mu.Unlock()

	p.events.MaximizeChanged.Emit(g)
}

func (p *Part) ToggleExpandGroup(id entity.GroupID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	g, _ := p.lookupLocked(id)
	if g == nil {
		return
	}
	if _, ok := p.sizes[id]; ok {
		delete(p.sizes, id)
	} else {
		p.sizes[id] = entity.Size{Width: defaultGroupSize.Width * 2, Height: defaultGroupSize.Height}
	}
}

// MoveGroup places source adjacent to target: before it for left/up, after
// it otherwise. Index-changed fires for every group whose grid position
// shifted.
func (p *Part) MoveGroup(source, target entity.GroupID, direction entity.Direction) (parts.Group, bool) {
	p.mu.Lock()
	src, srcIdx := p.lookupLocked(source)
	tgt, _ := p.lookupLocked(target)
	if src == nil || tgt == nil || src == tgt {
		p.mu.Unlock()
		return nil, false
	}

	before := direction == entity.DirectionLeft || direction == entity.DirectionUp
	p.grid = append(p.grid[:srcIdx], p.grid[srcIdx+1:]...)
	_, tgtIdx := p.lookupLocked(target)
	insert := tgtIdx
	if !before {
		insert = tgtIdx + 1
	}
	p.grid = append(p.grid[:insert], append([]*Group{src}, p.grid[insert:]...)...)
	shifted := p.grid[min(srcIdx, insert):]
	p.mu.Unlock()

	p.events.GroupMoved.Emit(src)
	for _, g := range shifted {
		p.events.GroupIndexChanged.Emit(g)
	}
	return src, true
}

// MergeGroup folds source into target and removes source from the grid.
func (p *Part) MergeGroup(source, target entity.GroupID) (parts.Group, bool) {
	p.mu.Lock()
	src, _ := p.lookupLocked(source)
	tgt, _ := p.lookupLocked(target)
	p.mu.Unlock()
	if src == nil || tgt == nil || src == tgt {
		return nil, false
	}

	p.RemoveGroup(source)
	return tgt, true
}

// CopyGroup duplicates source next to target.
func (p *Part) CopyGroup(source, target entity.GroupID, direction entity.Direction) (parts.Group, bool) {
	p.mu.Lock()
	src, _ := p.lookupLocked(source)
	tgt, _ := p.lookupLocked(target)
	p.mu.Unlock()
	if src == nil || tgt == nil {
		return nil, false
	}

	copied := p.AddGroup()
	return p.MoveGroup(copied.ID(), target, direction)
}

// SetGroupLocked toggles the group's lock and emits locked-changed.
func (p *Part) SetGroupLocked(id entity.GroupID, locked bool) {
	p.mu.Lock()
	g, _ := p.lookupLocked(id)
	if g == nil {
		p.mu.Unlock()
		return
	}
	g.locked = locked
	p.mu.Unlock()

	p.events.GroupLockedChanged.Emit(g)
}

type dropTarget struct{}

func (dropTarget) Dispose() {}

func (p *Part) CreateDropTarget(id entity.GroupID) (parts.Disposable, bool) {
	if !p.HasGroup(id) {
		return nil, false
	}
	return dropTarget{}, true
}

func (p *Part) ApplyLayout(layout parts.GridLayout) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.layout = layout
	p.orientation = layout.Orientation
}

func (p *Part) Layout() parts.GridLayout {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.layout
}

func (p *Part) Orientation() parts.Orientation {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.orientation
}

func (p *Part) SetOrientation(o parts.Orientation) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.orientation = o
	p.layout.Orientation = o
}

// MergeAllGroups folds every other group into target.
func (p *Part) MergeAllGroups(target entity.GroupID) (parts.Group, bool) {
	p.mu.Lock()
	tgt, _ := p.lookupLocked(target)
	others := make([]entity.GroupID, 0, len(p.grid))
	for _, g := range p.grid {
		if g != tgt {
			others = append(others, g.id)
		}
	}
	p.mu.Unlock()
	if tgt == nil {
		return nil, false
	}

	for _, id := range others {
		p.RemoveGroup(id)
	}
	return tgt, true
}

// FindGroup performs the part-local search. Positional scopes walk the grid
// order; directional scopes approximate the flat grid linearly (left/up is
// previous, right/down is next) and never wrap.
func (p *Part) FindGroup(scope entity.FindScope, source entity.GroupID, wrap bool) (parts.Group, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.grid) == 0 {
		return nil, false
	}

	if scope.Direction != entity.DirectionNone {
		_, idx := p.lookupLocked(source)
		if idx < 0 {
			return nil, false
		}
		if scope.Direction == entity.DirectionLeft || scope.Direction == entity.DirectionUp {
			idx--
		} else {
			idx++
		}
		if idx < 0 || idx >= len(p.grid) {
			return nil, false
		}
		return p.grid[idx], true
	}

	switch scope.Location {
	case entity.FindFirst:
		return p.grid[0], true
	case entity.FindLast:
		return p.grid[len(p.grid)-1], true
	}

	_, idx := p.lookupLocked(source)
	if idx < 0 {
		return nil, false
	}
	if scope.Location == entity.FindNext {
		idx++
		if idx >= len(p.grid) {
			if !wrap {
				return nil, false
			}
			idx = 0
		}
	} else {
		idx--
		if idx < 0 {
			if !wrap {
				return nil, false
			}
			idx = len(p.grid) - 1
		}
	}
	return p.grid[idx], true
}
