package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdl/panemux/internal/domain/entity"
	"github.com/avdl/panemux/internal/domain/repository"
	"github.com/avdl/panemux/internal/infrastructure/persistence/sqlite"
)

func newTestRepo(t *testing.T) repository.PartStateRepository {
	t.Helper()

	db, err := sqlite.InitDB(filepath.Join(t.TempDir(), "panemux.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlite.NewPartStateRepository(db)
}

func testSnapshot() *entity.PartsSnapshot {
	bounds := entity.Rect{X: 5, Y: 5, Width: 1024, Height: 768}
	s := entity.NewPartsSnapshot()
	s.Auxiliary = []entity.AuxiliaryPartState{
		{State: []byte(`{"groups":2,"active":1}`), Bounds: &bounds},
		{State: []byte(`{"groups":1,"active":0}`)},
	}
	s.MRU = []int{2, 0, 1}
	return s
}

func TestPartStateRepo_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSnapshot(ctx, "ws", testSnapshot()))

	got, err := repo.GetSnapshot(ctx, "ws")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, entity.PartsSnapshotVersion, got.Version)
	assert.Equal(t, []int{2, 0, 1}, got.MRU)
	require.Len(t, got.Auxiliary, 2)
	require.NotNil(t, got.Auxiliary[0].Bounds)
	assert.Equal(t, 1024, got.Auxiliary[0].Bounds.Width)
	assert.Nil(t, got.Auxiliary[1].Bounds)
	assert.JSONEq(t, `{"groups":2,"active":1}`, string(got.Auxiliary[0].State))
}

func TestPartStateRepo_SaveOverwritesExisting(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSnapshot(ctx, "ws", testSnapshot()))

	updated := entity.NewPartsSnapshot()
	updated.Auxiliary = []entity.AuxiliaryPartState{{State: []byte(`{"groups":4,"active":0}`)}}
	updated.MRU = []int{1, 0}
	require.NoError(t, repo.SaveSnapshot(ctx, "ws", updated))

	got, err := repo.GetSnapshot(ctx, "ws")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Auxiliary, 1)
	assert.Equal(t, []int{1, 0}, got.MRU)
}

func TestPartStateRepo_MissingSnapshotIsNotAnError(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.GetSnapshot(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPartStateRepo_UnknownVersionIsDiscarded(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	future := testSnapshot()
	future.Version = entity.PartsSnapshotVersion + 1
	require.NoError(t, repo.SaveSnapshot(ctx, "ws", future))

	got, err := repo.GetSnapshot(ctx, "ws")
	require.NoError(t, err)
	assert.Nil(t, got, "snapshots written by a newer build are skipped, not fatal")
}

func TestPartStateRepo_WorkspacesAreIsolated(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSnapshot(ctx, "a", testSnapshot()))

	got, err := repo.GetSnapshot(ctx, "b")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPartStateRepo_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSnapshot(ctx, "ws", testSnapshot()))
	require.NoError(t, repo.DeleteSnapshot(ctx, "ws"))

	got, err := repo.GetSnapshot(ctx, "ws")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting an absent row is a no-op.
	require.NoError(t, repo.DeleteSnapshot(ctx, "ws"))
}
