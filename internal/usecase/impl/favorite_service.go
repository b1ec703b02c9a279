package impl

import (
	"context"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/repository"
	"campus/internal/errors"
	"campus/internal/usecase"
)

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	catalogRepo  repository.CatalogRepository
	notifier     usecase.NotificationUsecase
}

// NewFavoriteUsecase creates a new favorite usecase instance
func NewFavoriteUsecase(
	favoriteRepo repository.FavoriteRepository,
	catalogRepo repository.CatalogRepository,
	notifier usecase.NotificationUsecase,
) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		catalogRepo:  catalogRepo,
		notifier:     notifier,
	}
}

// Toggle flips membership for the entity id. Two toggles restore the
// original state.
func (s *favoriteService) Toggle(ctx context.Context, entityID string) (*usecase.ToggleFavoriteOutput, error) {
	if !s.catalogRepo.HasEntity(entityID) {
		return nil, domainerrors.ErrEntityNotFound
	}

	favorited, err := s.favoriteRepo.Contains(ctx, entityID)
	if err != nil {
		return nil, errors.Wrap(err, "check favorite")
	}

	if favorited {
		if err := s.favoriteRepo.Remove(ctx, entityID); err != nil {
			return nil, errors.Wrap(err, "remove favorite")
		}
		s.notifier.Push(entity.NotificationInfo, "Removed from favorites")
	} else {
		if err := s.favoriteRepo.Add(ctx, entityID); err != nil {
			return nil, errors.Wrap(err, "add favorite")
		}
		s.notifier.Push(entity.NotificationSuccess, "Added to favorites")
	}

	return &usecase.ToggleFavoriteOutput{
		EntityID:  entityID,
		Favorited: !favorited,
	}, nil
}

// List returns the favorited entity ids in insertion order.
func (s *favoriteService) List(ctx context.Context) ([]string, error) {
	ids, err := s.favoriteRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list favorites")
	}
	return ids, nil
}
