// Package repository declares persistence interfaces for the part
// coordinator.
package repository

import (
	"context"

	"github.com/avdl/panemux/internal/domain/entity"
)

// PartStateRepository persists the cross-part UI snapshot under a single
// fixed key per workspace, in machine-local storage.
type PartStateRepository interface {
	// SaveSnapshot saves or replaces the workspace's snapshot.
	SaveSnapshot(ctx context.Context, workspaceID string, snapshot *entity.PartsSnapshot) error

	// GetSnapshot returns the workspace's snapshot, or nil when none is
	// stored or the stored version is unknown.
	GetSnapshot(ctx context.Context, workspaceID string) (*entity.PartsSnapshot, error)

	// DeleteSnapshot removes the workspace's snapshot. Deleting a missing
	// snapshot is not an error.
	DeleteSnapshot(ctx context.Context, workspaceID string) error
}
