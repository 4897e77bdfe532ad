package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avdl/panemux/internal/domain/entity"
	"github.com/avdl/panemux/internal/domain/repository"
	"github.com/avdl/panemux/internal/logging"
)

type partStateRepo struct {
	db *sql.DB
}

// NewPartStateRepository creates a SQLite-backed snapshot repository.
func NewPartStateRepository(db *sql.DB) repository.PartStateRepository {
	return &partStateRepo{db: db}
}

// SaveSnapshot saves or replaces the workspace's snapshot.
func (r *partStateRepo) SaveSnapshot(ctx context.Context, workspaceID string, snapshot *entity.PartsSnapshot) error {
	log := logging.FromContext(ctx)
	if snapshot == nil {
		return errors.New("snapshot cannot be nil")
	}

	stateJSON, err := json.Marshal(snapshot)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal parts snapshot")
		return err
	}

	log.Debug().
		Str("workspace_id", workspaceID).
		Int("auxiliary_count", len(snapshot.Auxiliary)).
		Int("mru_count", len(snapshot.MRU)).
		Msg("saving parts snapshot")

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO part_state (workspace_id, state_json, version, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(workspace_id) DO UPDATE SET
			state_json = excluded.state_json,
			version = excluded.version,
			updated_at = excluded.updated_at`,
		workspaceID, string(stateJSON), snapshot.Version, snapshot.SavedAt)
	if err != nil {
		return fmt.Errorf("upsert parts snapshot: %w", err)
	}

	return nil
}

// GetSnapshot returns the workspace's snapshot, or nil when none is stored.
func (r *partStateRepo) GetSnapshot(ctx context.Context, workspaceID string) (*entity.PartsSnapshot, error) {
	var stateJSON string
	err := r.db.QueryRowContext(ctx,
		`SELECT state_json FROM part_state WHERE workspace_id = ?`, workspaceID).
		Scan(&stateJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var snapshot entity.PartsSnapshot
	if err := json.Unmarshal([]byte(stateJSON), &snapshot); err != nil {
		logging.FromContext(ctx).Error().Err(err).
			Str("workspace_id", workspaceID).
			Msg("failed to unmarshal parts snapshot")
		return nil, err
	}

	// Unknown versions are discarded rather than failing restore.
	if snapshot.Version != entity.PartsSnapshotVersion {
		logging.FromContext(ctx).Warn().
			Str("workspace_id", workspaceID).
			Int("version", snapshot.Version).
			Msg("discarding parts snapshot with unknown version")
		return nil, nil
	}

	return &snapshot, nil
}

// DeleteSnapshot removes the workspace's snapshot.
func (r *partStateRepo) DeleteSnapshot(ctx context.Context, workspaceID string) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("workspace_id", workspaceID).Msg("deleting parts snapshot")

	_, err := r.db.ExecContext(ctx,
		`DELETE FROM part_state WHERE workspace_id = ?`, workspaceID)
	return err
}
