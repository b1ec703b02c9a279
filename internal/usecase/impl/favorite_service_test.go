package impl

import (
	"context"
	"testing"

	domainerrors "campus/internal/domain/errors"
	"campus/internal/infra/catalog"
	"campus/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFavoriteService(t *testing.T) (usecase.FavoriteUsecase, *memFavoriteRepo) {
	t.Helper()

	store, err := catalog.NewFromSeed()
	require.NoError(t, err)

	repo := &memFavoriteRepo{}
	return NewFavoriteUsecase(repo, store, testNotifier()), repo
}

func TestFavoriteService_Toggle_AddsThenRemoves(t *testing.T) {
	svc, _ := newFavoriteService(t)
	ctx := context.Background()

	out, err := svc.Toggle(ctx, "f1")
	require.NoError(t, err)
	assert.True(t, out.Favorited)

	out, err = svc.Toggle(ctx, "f1")
	require.NoError(t, err)
	assert.False(t, out.Favorited)

	ids, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids, "two toggles restore the original membership")
}

func TestFavoriteService_Toggle_UnknownEntity(t *testing.T) {
	svc, repo := newFavoriteService(t)

	_, err := svc.Toggle(context.Background(), "nope")

	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)
	assert.Empty(t, repo.ids)
}

func TestFavoriteService_List_InsertionOrder(t *testing.T) {
	svc, _ := newFavoriteService(t)
	ctx := context.Background()

	for _, id := range []string{"p2", "f1", "s1"} {
		_, err := svc.Toggle(ctx, id)
		require.NoError(t, err)
	}

	ids, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"p2", "f1", "s1"}, ids)
}
