package impl

import (
	"context"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/repository"
	"campus/internal/domain/service"
	"campus/internal/errors"
	"campus/internal/usecase"
)

type catalogService struct {
	catalogRepo   repository.CatalogRepository
	reviewUsecase usecase.ReviewUsecase
	qrcodeSvc     service.QRCodeService
}

// NewCatalogUsecase creates a new catalog usecase instance
func NewCatalogUsecase(
	catalogRepo repository.CatalogRepository,
	reviewUsecase usecase.ReviewUsecase,
	qrcodeSvc service.QRCodeService,
) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo:   catalogRepo,
		reviewUsecase: reviewUsecase,
		qrcodeSvc:     qrcodeSvc,
	}
}

// Catalog returns the full seeded dataset.
func (s *catalogService) Catalog(ctx context.Context) (*entity.Catalog, error) {
	catalog := s.catalogRepo.Catalog()
	return &catalog, nil
}

// Place returns one place with its seeded and session reviews merged.
func (s *catalogService) Place(ctx context.Context, id string) (*usecase.PlaceDetailOutput, error) {
	place, err := s.catalogRepo.FindPlace(id)
	if err != nil {
		if errors.Is(err, repository.ErrEntityNotFound) {
			return nil, domainerrors.ErrEntityNotFound
		}
		return nil, errors.Wrap(err, "find place")
	}

	reviews, err := s.reviewUsecase.Reviews(ctx, id)
	if err != nil {
		return nil, err
	}

	return &usecase.PlaceDetailOutput{
		Place:   *place,
		Reviews: reviews,
	}, nil
}

// PlaceQR renders a locator QR code for the place.
func (s *catalogService) PlaceQR(ctx context.Context, id string) ([]byte, error) {
	place, err := s.catalogRepo.FindPlace(id)
	if err != nil {
		if errors.Is(err, repository.ErrEntityNotFound) {
			return nil, domainerrors.ErrEntityNotFound
		}
		return nil, errors.Wrap(err, "find place")
	}

	png, err := s.qrcodeSvc.GeneratePlaceQR(place)
	if err != nil {
		return nil, errors.Wrap(err, "generate place QR")
	}
	return png, nil
}
