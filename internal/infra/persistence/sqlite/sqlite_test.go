package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"campus/config"
	"campus/internal/domain/entity"
	"campus/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, path string) *sql.DB {
	t.Helper()

	cfg := &config.Config{Storage: &config.StorageConfig{Path: path}}
	db, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestIdentityRepository_RoundTrip(t *testing.T) {
	db := openTestStore(t, filepath.Join(t.TempDir(), "store.db"))
	repo := NewIdentityRepository(db)
	ctx := context.Background()

	_, err := repo.Load(ctx)
	assert.True(t, errors.Is(err, repository.ErrIdentityNotFound))

	saved := &entity.Identity{Name: "Asha", RegNo: "2112345"}
	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	// Save replaces the single record.
	require.NoError(t, repo.Save(ctx, &entity.Identity{Name: "Ravi", RegNo: "2254321"}))
	loaded, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", loaded.Name)

	require.NoError(t, repo.Delete(ctx))
	_, err = repo.Load(ctx)
	assert.True(t, errors.Is(err, repository.ErrIdentityNotFound))

	// Deleting again is not an error.
	require.NoError(t, repo.Delete(ctx))
}

func TestIdentityRepository_SurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")
	ctx := context.Background()

	first := openTestStore(t, path)
	require.NoError(t, NewIdentityRepository(first).Save(ctx, &entity.Identity{Name: "Asha", RegNo: "2112345"}))
	require.NoError(t, first.Close())

	second := openTestStore(t, path)
	loaded, err := NewIdentityRepository(second).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Asha", loaded.Name)
	assert.Equal(t, "2112345", loaded.RegNo)
}

func TestFavoriteRepository_SetSemantics(t *testing.T) {
	db := openTestStore(t, filepath.Join(t.TempDir(), "store.db"))
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	ids, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, repo.Add(ctx, "f1"))
	require.NoError(t, repo.Add(ctx, "p2"))
	// Adding an existing id is a no-op.
	require.NoError(t, repo.Add(ctx, "f1"))

	ids, err = repo.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"f1", "p2"}, ids)

	contains, err := repo.Contains(ctx, "f1")
	require.NoError(t, err)
	assert.True(t, contains)

	require.NoError(t, repo.Remove(ctx, "f1"))
	contains, err = repo.Contains(ctx, "f1")
	require.NoError(t, err)
	assert.False(t, contains)

	// Removing a missing id is not an error.
	require.NoError(t, repo.Remove(ctx, "ghost"))
}

func TestFavoriteRepository_SurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")
	ctx := context.Background()

	first := openTestStore(t, path)
	repo := NewFavoriteRepository(first)
	require.NoError(t, repo.Add(ctx, "salon2"))
	require.NoError(t, repo.Add(ctx, "t1"))
	require.NoError(t, first.Close())

	second := openTestStore(t, path)
	ids, err := NewFavoriteRepository(second).List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"salon2", "t1"}, ids)
}
