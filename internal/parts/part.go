package parts

import (
	"context"
	"encoding/json"

	"github.com/avdl/panemux/internal/async"
	"github.com/avdl/panemux/internal/domain/entity"
	"github.com/avdl/panemux/internal/event"
)

// Disposable releases resources exactly once.
type Disposable interface {
	Dispose()
}

// Group is a tabbed content panel. Identifiers are unique across the whole
// system, and every group belongs to exactly one part at a time.
type Group interface {
	// ID returns the system-wide unique group identifier.
	ID() entity.GroupID
	// Index returns the group's position within its part's grid.
	Index() int
	// IsLocked reports whether the group is locked.
	IsLocked() bool
	// Focus requests input focus for the group.
	Focus()
}

// Events is the set of streams every part must expose. The coordinator
// subscribes to all of them at registration and re-emits each on its
// matching system-wide stream.
type Events struct {
	Focus              *event.Emitter[struct{}]
	ActiveGroupChanged *event.Emitter[Group]
	GroupAdded         *event.Emitter[Group]
	GroupRemoved       *event.Emitter[Group]
	GroupMoved         *event.Emitter[Group]
	GroupActivated     *event.Emitter[Group]
	MaximizeChanged    *event.Emitter[Group]
	GroupIndexChanged  *event.Emitter[Group]
	GroupLockedChanged *event.Emitter[Group]
}

// NewEvents creates the full event stream set for a part.
func NewEvents() *Events {
	return &Events{
		Focus:              event.NewEmitter[struct{}](),
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

// Orientation of a part's group grid.
type Orientation int

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

// GridLayout describes a part's overall group arrangement. The Groups
// payload is defined by the part's own layout engine and treated as opaque
// here.
type GridLayout struct {
	Orientation Orientation     `json:"orientation"`
	Groups      json.RawMessage `json:"groups,omitempty"`
}

// Arrangement selects a bulk sizing operation over a part's groups.
type Arrangement int

const (
	ArrangeEven Arrangement = iota
	ArrangeMinimizeOthers
	ArrangeToggle
)

// Part is a window-level container of groups. Its internal layout algorithm
// (tree/grid of groups, splitting, sizing math) is the part's own concern;
// the coordinator only depends on this surface.
type Part interface {
	ID() entity.PartID
	// WindowID is the part's display-surface handle.
	WindowID() entity.WindowID
	Label() string
	// SetLabel pushes a recomputed display label to the part.
	SetLabel(label string)

	// WhenReady settles once the part's layout is constructed and
	// interactive.
	WhenReady() *async.Latch
	// WhenRestored settles once the part's previously persisted content has
	// been fully reopened.
	WhenRestored() *async.Latch
	// WillRestoreState reports whether the part intends to restore prior
	// state, as opposed to opening a specific set of editors.
	WillRestoreState() bool
	// CreateState produces an opaque serializable layout snapshot.
	CreateState() json.RawMessage

	Events() *Events

	GroupCount() int
	HasGroup(id entity.GroupID) bool
	Group(id entity.GroupID) (Group, bool)
	Groups(order entity.GroupOrder) []Group
	ActiveGroup() Group
	// FindGroup performs a part-local search. Wrapping applies only at the
	// part's own boundaries.
	FindGroup(scope entity.FindScope, source entity.GroupID, wrap bool) (Group, bool)

	ActivateGroup(id entity.GroupID)
	RestoreGroup(id entity.GroupID)
	GroupSize(id entity.GroupID) entity.Size
	SetGroupSize(id entity.GroupID, size entity.Size)
	ArrangeGroups(arrangement Arrangement, id entity.GroupID)
	ToggleMaximizeGroup(id entity.GroupID)
	ToggleExpandGroup(id entity.GroupID)
	MoveGroup(source, target entity.GroupID, direction entity.Direction) (Group, bool)
	MergeGroup(source, target entity.GroupID) (Group, bool)
	CopyGroup(source, target entity.GroupID, direction entity.Direction) (Group, bool)
	CreateDropTarget(id entity.GroupID) (Disposable, bool)

	ApplyLayout(layout GridLayout)
	Layout() GridLayout
	Orientation() Orientation
	SetOrientation(o Orientation)
	MergeAllGroups(target entity.GroupID) (Group, bool)
}

// AuxiliaryPartOptions carries the creation request for an auxiliary part.
type AuxiliaryPartOptions struct {
	Label     string
	Bounds    *entity.Rect
	State     json.RawMessage
	ZoomLevel *float64
}

// PartFactory constructs parts. The returned disposable bundles the part's
// resources and is disposed exactly once at unregistration.
type PartFactory interface {
	CreateMainPart(ctx context.Context) (Part, Disposable, error)
	CreateAuxiliaryPart(ctx context.Context, opts AuxiliaryPartOptions) (Part, Disposable, error)
}

// DisplayProvider reports screen geometry for a part's display surface, or
// "unresolved" when the surface is not realized.
type DisplayProvider interface {
	Bounds(id entity.WindowID) (entity.Rect, bool)
	ZoomLevel(id entity.WindowID) (float64, bool)
}
