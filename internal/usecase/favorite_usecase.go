package usecase

import "context"

// ToggleFavoriteOutput reports the membership state after a toggle.
type ToggleFavoriteOutput struct {
	EntityID  string `json:"entityId"`
	Favorited bool   `json:"favorited"`
}

// FavoriteUsecase defines the bookmarked-entity set.
type FavoriteUsecase interface {
	// Toggle flips an entity's membership and returns the new state.
	Toggle(ctx context.Context, entityID string) (*ToggleFavoriteOutput, error)

	// List returns the favorited entity ids in insertion order.
	List(ctx context.Context) ([]string, error)
}
