// Package entity defines the identifiers, geometry, and snapshot types shared
// by the part coordinator and its persistence layer.
package entity

import "github.com/google/uuid"

// PartID uniquely identifies a window part.
type PartID string

// GroupID uniquely identifies an editor group across the entire system,
// not just within its owning part.
type GroupID string

// WindowID is the display-surface handle associated with a part.
type WindowID string

// MainWindowID is the handle of the main part's window.
const MainWindowID WindowID = "window-main"

// NewPartID generates a unique part identifier.
func NewPartID() PartID {
	return PartID(uuid.NewString())
}

// NewGroupID generates a unique group identifier.
func NewGroupID() GroupID {
	return GroupID(uuid.NewString())
}

// NewWindowID generates a unique window handle.
func NewWindowID() WindowID {
	return WindowID(uuid.NewString())
}
