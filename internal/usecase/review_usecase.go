package usecase

import (
	"context"

	"campus/internal/domain/entity"
)

// SubmitReviewInput carries a new review for a catalog entity. Image is an
// optional data URI captured client side.
type SubmitReviewInput struct {
	EntityID string `json:"entityId" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"required,max=500"`
	Image    string `json:"image,omitempty"`
}

// ReviewUsecase defines review submission and retrieval.
type ReviewUsecase interface {
	// SubmitReview validates and records a review. The caller must have an
	// active identity.
	SubmitReview(ctx context.Context, input SubmitReviewInput) (*entity.Review, error)

	// Reviews returns the seeded reviews of an entity followed by the
	// session-submitted ones, oldest first within each group.
	Reviews(ctx context.Context, entityID string) ([]entity.Review, error)
}
