package parts

import (
	"github.com/avdl/panemux/internal/domain/entity"
)

// Group-targeted operations resolve the owning part leniently and forward
// the call unchanged. Operations without a group argument always target the
// active part.

// ActivateGroup makes the group its part's active group.
func (c *Coordinator) ActivateGroup(id entity.GroupID) {
	c.PartForGroup(id).ActivateGroup(id)
}

// RestoreGroup restores a minimized group without activating it.
func (c *Coordinator) RestoreGroup(id entity.GroupID) {
	c.PartForGroup(id).RestoreGroup(id)
}

// GroupSize returns the group's allocated size. The strict path applies:
// an unknown identifier yields ErrInvalidGroup.
func (c *Coordinator) GroupSize(id entity.GroupID) (entity.Size, error) {
	g, err := c.GroupStrict(id)
	if err != nil {
		return entity.Size{}, err
	}
	return c.PartForGroup(g.ID()).GroupSize(g.ID()), nil
}

// SetGroupSize resizes the group. Strict path, as the size must be applied
// to a live group.
func (c *Coordinator) SetGroupSize(id entity.GroupID, size entity.Size) error {
	g, err := c.GroupStrict(id)
	if err != nil {
		return err
	}
	c.PartForGroup(g.ID()).SetGroupSize(g.ID(), size)
	return nil
}

// ArrangeGroups applies a bulk sizing arrangement in the group's part.
func (c *Coordinator) ArrangeGroups(arrangement Arrangement, id entity.GroupID) {
	c.PartForGroup(id).ArrangeGroups(arrangement, id)
}

// ToggleMaximizeGroup toggles maximization of the group within its part.
func (c *Coordinator) ToggleMaximizeGroup(id entity.GroupID) {
	c.PartForGroup(id).ToggleMaximizeGroup(id)
}

// ToggleExpandGroup toggles expansion of the group within its part.
func (c *Coordinator) ToggleExpandGroup(id entity.GroupID) {
	c.PartForGroup(id).ToggleExpandGroup(id)
}

// MoveGroup moves source relative to target. Ownership transfer between
// parts is the owning part's own logic; the coordinator only routes.
func (c *Coordinator) MoveGroup(source, target entity.GroupID, direction entity.Direction) (Group, bool) {
	return c.PartForGroup(source).MoveGroup(source, target, direction)
}

// MergeGroup merges source into target.
func (c *Coordinator) MergeGroup(source, target entity.GroupID) (Group, bool) {
	return c.PartForGroup(source).MergeGroup(source, target)
}

// CopyGroup copies source next to target.
func (c *Coordinator) CopyGroup(source, target entity.GroupID, direction entity.Direction) (Group, bool) {
	return c.PartForGroup(source).CopyGroup(source, target, direction)
}

// CreateDropTarget installs a drop target on the group's part.
func (c *Coordinator) CreateDropTarget(id entity.GroupID) (Disposable, bool) {
	return c.PartForGroup(id).CreateDropTarget(id)
}

// ApplyLayout applies an overall grid layout to the active part.
func (c *Coordinator) ApplyLayout(layout GridLayout) {
	c.ActivePart().ApplyLayout(layout)
}

// Layout returns the active part's grid layout.
func (c *Coordinator) Layout() GridLayout {
	return c.ActivePart().Layout()
}

// Orientation returns the active part's grid orientation.
func (c *Coordinator) Orientation() Orientation {
	return c.ActivePart().Orientation()
}

// SetOrientation sets the active part's grid orientation.
func (c *Coordinator) SetOrientation(o Orientation) {
	c.ActivePart().SetOrientation(o)
}

// MergeAllGroups merges every group of the active part into target.
func (c *Coordinator) MergeAllGroups(target entity.GroupID) (Group, bool) {
	return c.ActivePart().MergeAllGroups(target)
}
