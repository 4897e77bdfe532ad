package parttest

import (
	"github.com/avdl/panemux/internal/domain/entity"
)

// Group is a flat in-memory editor group.
type Group struct {
	id     entity.GroupID
	part   *Part
	locked bool
}

func (g *Group) ID() entity.GroupID { return g.id }

// Index returns the group's position in its part's grid.
func (g *Group) Index() int {
	g.part.mu.Lock()
	defer g.part.mu.Unlock()
	_, idx := g.part.lookupLocked(g.id)
	return idx
}

func (g *Group) IsLocked() bool {
	g.part.mu.Lock()
	defer g.part.mu.Unlock()
	return g.locked
}

// Focus activates the group and gives its part activation focus.
func (g *Group) Focus() {
	g.part.activate(g)
	g.part.Focus()
}
