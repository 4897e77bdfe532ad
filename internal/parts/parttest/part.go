// Package parttest provides an in-memory reference implementation of the
// part collaborator contract: a flat-grid part, a factory, and a display
// provider. It backs the package tests and the demo host; it deliberately
// has no real layout engine.
package parttest

import (
	"encoding/json"
	"sync"

	"github.com/avdl/panemux/internal/async"
	"github.com/avdl/panemux/internal/domain/entity"
	"github.com/avdl/panemux/internal/parts"
)

// State is the opaque layout snapshot this part serializes.
type State struct {
	Groups int `json:"groups"`
	Active int `json:"active"`
}

// Config controls part construction.
type Config struct {
	Groups        int
	WillRestore   bool
	ManualSignals bool // leave ready/restored unsettled until resolved explicitly
}

// Part is a flat, in-memory window part.
type Part struct {
	mu       sync.Mutex
	id       entity.PartID
	windowID entity.WindowID
	label    string

	ready       *async.Latch
	restored    *async.Latch
	willRestore bool

	events *parts.Events

	created []*Group // creation order
	grid    []*Group // grid-appearance order
	mru     []*Group // most-recently-active order
	active  *Group

	orientation parts.Orientation
	layout      parts.GridLayout
	sizes       map[entity.GroupID]entity.Size
	maximized   bool
}

// NewPart creates a part with cfg.Groups initial groups.
func NewPart(windowID entity.WindowID, cfg Config) *Part {
	p := &Part{
		id:          entity.NewPartID(),
		windowID:    windowID,
		ready:       async.NewLatch(),
		restored:    async.NewLatch(),
		willRestore: cfg.WillRestore,
		events:      parts.NewEvents(),
		sizes:       make(map[entity.GroupID]entity.Size),
	}
	for i := 0; i < cfg.Groups; i++ {
		p.AddGroup()
	}
	if !cfg.ManualSignals {
		p.ready.Resolve(nil)
		p.restored.Resolve(nil)
	}
	return p
}

func (p *Part) ID() entity.PartID         { return p.id }
func (p *Part) WindowID() entity.WindowID { return p.windowID }

func (p *Part) Label() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.label
}

func (p *Part) SetLabel(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.label = label
}

func (p *Part) WhenReady() *async.Latch    { return p.ready }
func (p *Part) WhenRestored() *async.Latch { return p.restored }
func (p *Part) WillRestoreState() bool     { return p.willRestore }

// ResolveReady settles the readiness latch (manual-signal parts only).
func (p *Part) ResolveReady(err error) { p.ready.Resolve(err) }

// ResolveRestored settles the restoration latch (manual-signal parts only).
func (p *Part) ResolveRestored(err error) { p.restored.Resolve(err) }

func (p *Part) Events() *parts.Events { return p.events }

// CreateState serializes the part's layout as group count plus active index.
func (p *Part) CreateState() json.RawMessage {
	p.mu.Lock()
	state := State{Groups: len(p.created), Active: p.activeIndexLocked()}
	p.mu.Unlock()

	raw, _ := json.Marshal(state)
	return raw
}

func (p *Part) activeIndexLocked() int {
	for i, g := range p.grid {
		if g == p.active {
			return i
		}
	}
	return 0
}

// AddGroup appends a new group to the grid. The first group becomes active.
func (p *Part) AddGroup() *Group {
	p.mu.Lock()
	g := &Group{id: entity.NewGroupID(), part: p}
	p.created = append(p.created, g)
	p.grid = append(p.grid, g)
	p.mru = append(p.mru, g)
	first := p.active == nil
	if first {
		p.active = g
	}
	p.mu.Unlock()

	p.events.GroupAdded.Emit(g)
	if first {
		p.events.ActiveGroupChanged.Emit(g)
	}
	return g
}

// RemoveGroup removes the group from the grid. Removing the active group
// activates its grid neighbor.
func (p *Part) RemoveGroup(id entity.GroupID) {
	p.mu.Lock()
	g, idx := p.lookupLocked(id)
	if g == nil {
		p.mu.Unlock()
		return
	}
	p.grid = append(p.grid[:idx], p.grid[idx+1:]...)
	p.created = removeGroup(p.created, g)
	p.mru = removeGroup(p.mru, g)
	delete(p.sizes, id)

	var newActive *Group
	if p.active == g {
		p.active = nil
		if len(p.grid) > 0 {
			if idx >= len(p.grid) {
				idx = len(p.grid) - 1
			}
			newActive = p.grid[idx]
		}
	}
	p.mu.Unlock()

	p.events.GroupRemoved.Emit(g)
	if newActive != nil {
		p.activate(newActive)
	}
}

func (p *Part) GroupCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.grid)
}

func (p *Part) HasGroup(id entity.GroupID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	g, _ := p.lookupLocked(id)
	return g != nil
}

func (p *Part) Group(id entity.GroupID) (parts.Group, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	g, _ := p.lookupLocked(id)
	if g == nil {
		return nil, false
	}
	return g, true
}

func (p *Part) Groups(order entity.GroupOrder) []parts.Group {
	p.mu.Lock()
	defer p.mu.Unlock()

	var src []*Group
	switch order {
	case entity.GroupOrderCreation:
		src = p.created
	case entity.GroupOrderMostRecentlyActive:
		src = p.mru
	default:
		src = p.grid
	}

	out := make([]parts.Group, len(src))
	for i, g := range src {
		out[i] = g
	}
	return out
}

func (p *Part) ActiveGroup() parts.Group {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active == nil {
		return nil
	}
	return p.active
}

func (p *Part) lookupLocked(id entity.GroupID) (*Group, int) {
	for i, g := range p.grid {
		if g.id == id {
			return g, i
		}
	}
	return nil, -1
}

func removeGroup(list []*Group, g *Group) []*Group {
	for i, candidate := range list {
		if candidate == g {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
