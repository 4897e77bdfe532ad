package entity

// GroupOrder selects an ordering for cross-part group enumeration.
type GroupOrder int

const (
	// GroupOrderCreation orders groups by part registration order, then each
	// part's own creation order.
	GroupOrderCreation GroupOrder = iota

	// GroupOrderGridAppearance orders groups by visual grid position within a
	// part. Across multiple parts there is no shared grid, so the cross-part
	// order intentionally falls back to creation order.
	GroupOrderGridAppearance

	// GroupOrderMostRecentlyActive orders parts by activation recency, then
	// each part's own most-recently-active group order.
	GroupOrderMostRecentlyActive
)

// FindLocation positions a group search relative to the whole grid or to a
// source group.
type FindLocation int

const (
	// FindFirst targets the very first group in grid-appearance order.
	FindFirst FindLocation = iota
	// FindLast targets the very last group in grid-appearance order.
	FindLast
	// FindNext targets the group after the source.
	FindNext
	// FindPrevious targets the group before the source.
	FindPrevious
)

// Direction is a spatial direction for group placement and directional
// search.
type Direction int

const (
	// DirectionNone means no direction applies.
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
	DirectionUp
	DirectionDown
)

// FindScope describes a group search: either positional (Location, when
// Direction is DirectionNone) or directional.
type FindScope struct {
	Location  FindLocation
	Direction Direction
}
