package entity

import (
	"encoding/json"
	"time"
)

// PartsSnapshotVersion is the current schema version for the persisted
// cross-part UI snapshot. Increment on breaking serialization changes.
const PartsSnapshotVersion = 1

// PartsSnapshot is the persisted cross-part UI state: one entry per auxiliary
// part plus the MRU order. It is entirely absent from storage when there are
// zero auxiliary parts.
type PartsSnapshot struct {
	Version   int                  `json:"version"`
	Auxiliary []AuxiliaryPartState `json:"auxiliary"`
	// MRU holds positions into the full parts array at save time (main part
	// included at position 0), not stable identifiers.
	MRU     []int     `json:"mru"`
	SavedAt time.Time `json:"saved_at"`
}

// AuxiliaryPartState captures one auxiliary part: its opaque layout state,
// and its window bounds and zoom level when the window was resolvable at
// save time.
type AuxiliaryPartState struct {
	State     json.RawMessage `json:"state"`
	Bounds    *Rect           `json:"bounds,omitempty"`
	ZoomLevel *float64        `json:"zoomLevel,omitempty"`
}

// NewPartsSnapshot creates an empty snapshot stamped with the current schema
// version and time.
func NewPartsSnapshot() *PartsSnapshot {
	return &PartsSnapshot{
		Version: PartsSnapshotVersion,
		SavedAt: time.Now(),
	}
}
