package impl

import (
	"context"
	"encoding/base64"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/repository"
	"campus/internal/errors"
	"campus/internal/usecase"
	"campus/internal/util"

	"github.com/google/uuid"
)

const (
	maxCommentLength = 500
	maxImageBytes    = 5 * 1024 * 1024
)

// avatarColors are the cosmetic tags assigned round-robin-randomly to new
// reviews.
var avatarColors = []string{
	"bg-indigo-500", "bg-violet-500", "bg-pink-500", "bg-emerald-500", "bg-amber-500",
}

type reviewService struct {
	sessionUsecase usecase.SessionUsecase
	catalogRepo    repository.CatalogRepository
	notifier       usecase.NotificationUsecase
	now            func() time.Time

	// submitted holds the session-scoped reviews keyed by entity id. They
	// are appended after the seeded ones and lost on restart.
	mu        sync.Mutex
	submitted map[string][]entity.Review
}

// NewReviewUsecase creates a new review usecase instance
func NewReviewUsecase(
	sessionUsecase usecase.SessionUsecase,
	catalogRepo repository.CatalogRepository,
	notifier usecase.NotificationUsecase,
) usecase.ReviewUsecase {
	return &reviewService{
		sessionUsecase: sessionUsecase,
		catalogRepo:    catalogRepo,
		notifier:       notifier,
		now:            time.Now,
		submitted:      make(map[string][]entity.Review),
	}
}

// SubmitReview validates and appends a review. Each field is checked on its
// own so the caller learns exactly which one failed; nothing is appended on
// any failure.
func (s *reviewService) SubmitReview(ctx context.Context, input usecase.SubmitReviewInput) (*entity.Review, error) {
	identity, err := s.sessionUsecase.Current(ctx)
	if err != nil {
		if errors.Is(err, domainerrors.ErrIdentityNotFound) {
			return nil, domainerrors.ErrLoginRequired
		}
		return nil, errors.Wrap(err, "resolve identity")
	}

	if !s.catalogRepo.HasEntity(input.EntityID) {
		return nil, domainerrors.ErrEntityNotFound
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrInvalidRating.WithDetails(
			fmt.Sprintf("rating must be between 1 and 5, got %d", input.Rating))
	}
	comment := strings.TrimSpace(input.Comment)
	if comment == "" {
		return nil, domainerrors.ErrInvalidComment
	}
	if len(comment) > maxCommentLength {
		return nil, domainerrors.ErrInvalidComment.WithDetails(
			fmt.Sprintf("comment must be at most %d characters", maxCommentLength))
	}
	if size := imageSourceSize(input.Image); size > maxImageBytes {
		return nil, domainerrors.ErrImageTooLarge.WithDetails(
			fmt.Sprintf("image is %s, limit is %s",
				util.FormatBytes(size), util.FormatBytes(maxImageBytes)))
	}

	review := entity.Review{
		ID:          uuid.New().String(),
		User:        identity.Name,
		Rating:      input.Rating,
		Comment:     comment,
		Date:        s.now(),
		AvatarColor: avatarColors[rand.Intn(len(avatarColors))],
		ImageURL:    input.Image,
	}

	s.mu.Lock()
	s.submitted[input.EntityID] = append(s.submitted[input.EntityID], review)
	s.mu.Unlock()

	s.notifier.Push(entity.NotificationSuccess, "Review submitted successfully!")

	return &review, nil
}

// Reviews returns the seeded reviews followed by the session-submitted
// ones, both in insertion order.
func (s *reviewService) Reviews(ctx context.Context, entityID string) ([]entity.Review, error) {
	seeded, err := s.catalogRepo.SeedReviews(entityID)
	if err != nil {
		if errors.Is(err, repository.ErrEntityNotFound) {
			return nil, domainerrors.ErrEntityNotFound
		}
		return nil, errors.Wrap(err, "seed reviews")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := make([]entity.Review, 0, len(seeded)+len(s.submitted[entityID]))
	merged = append(merged, seeded...)
	merged = append(merged, s.submitted[entityID]...)
	return merged, nil
}

// imageSourceSize estimates the original file size of an image data URI
// from its base64 payload length. Remote URLs and empty values count as
// zero.
func imageSourceSize(image string) int64 {
	const marker = ";base64,"
	idx := strings.Index(image, marker)
	if !strings.HasPrefix(image, "data:") || idx < 0 {
		return 0
	}
	payload := image[idx+len(marker):]
	return int64(base64.StdEncoding.DecodedLen(len(payload)))
}
