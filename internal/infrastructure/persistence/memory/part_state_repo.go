// Package memory provides an in-memory snapshot repository for tests and the
// demo host.
package memory

import (
	"context"
	"sync"

	"github.com/avdl/panemux/internal/domain/entity"
	"github.com/avdl/panemux/internal/domain/repository"
)

type partStateRepo struct {
	mu        sync.Mutex
	snapshots map[string]*entity.PartsSnapshot
}

// NewPartStateRepository creates an empty in-memory snapshot repository.
func NewPartStateRepository() repository.PartStateRepository {
	return &partStateRepo{snapshots: make(map[string]*entity.PartsSnapshot)}
}

func (r *partStateRepo) SaveSnapshot(_ context.Context, workspaceID string, snapshot *entity.PartsSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[workspaceID] = snapshot
	return nil
}

func (r *partStateRepo) GetSnapshot(_ context.Context, workspaceID string) (*entity.PartsSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshots[workspaceID], nil
}

func (r *partStateRepo) DeleteSnapshot(_ context.Context, workspaceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.snapshots, workspaceID)
	return nil
}
