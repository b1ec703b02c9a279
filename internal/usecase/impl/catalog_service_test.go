package impl

import (
	"bytes"
	"context"
	"testing"

	domainerrors "campus/internal/domain/errors"
	"campus/internal/infra/catalog"
	"campus/internal/infra/qrcode"
	"campus/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) usecase.CatalogUsecase {
	t.Helper()

	store, err := catalog.NewFromSeed()
	require.NoError(t, err)

	session := NewSessionUsecase(&memIdentityRepo{}, testNotifier())
	reviews := NewReviewUsecase(session, store, testNotifier())
	qr := qrcode.NewQRCodeService(256, "M")

	return NewCatalogUsecase(store, reviews, qr)
}

func TestCatalogService_Catalog(t *testing.T) {
	svc := newCatalogService(t)

	out, err := svc.Catalog(context.Background())

	require.NoError(t, err)
	counts := out.Count()
	assert.Equal(t, 10, counts.FoodVendors)
	assert.Equal(t, 4, counts.Services)
	assert.Equal(t, 2, counts.Transports)
	assert.Equal(t, 6, counts.Places)
	assert.Equal(t, 2, counts.Salons)
}

func TestCatalogService_Place_MergesReviews(t *testing.T) {
	svc := newCatalogService(t)

	out, err := svc.Place(context.Background(), "p2")

	require.NoError(t, err)
	assert.Equal(t, "Hirakud Dam", out.Place.Name)
	assert.Equal(t, len(out.Place.Reviews), len(out.Reviews))
}

func TestCatalogService_Place_Unknown(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.Place(context.Background(), "f1")

	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound,
		"vendor ids are not places")
}

func TestCatalogService_PlaceQR_ReturnsPNG(t *testing.T) {
	svc := newCatalogService(t)

	png, err := svc.PlaceQR(context.Background(), "p2")

	require.NoError(t, err)
	pngMagic := []byte{0x89, 'P', 'N', 'G'}
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestCatalogService_PlaceQR_Unknown(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.PlaceQR(context.Background(), "nope")

	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)
}
