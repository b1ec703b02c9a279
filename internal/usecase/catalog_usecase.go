package usecase

import (
	"context"

	"campus/internal/domain/entity"
)

// PlaceDetailOutput is a place together with its merged review list.
type PlaceDetailOutput struct {
	Place   entity.Place    `json:"place"`
	Reviews []entity.Review `json:"reviews"`
}

// CatalogUsecase exposes the seeded campus catalog.
type CatalogUsecase interface {
	// Catalog returns every category of the catalog.
	Catalog(ctx context.Context) (*entity.Catalog, error)

	// Place returns one place with its reviews.
	Place(ctx context.Context, id string) (*PlaceDetailOutput, error)

	// PlaceQR renders a PNG QR code that opens the place's location in a
	// map application.
	PlaceQR(ctx context.Context, id string) ([]byte, error)
}
