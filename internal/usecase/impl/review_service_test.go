package impl

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/infra/catalog"
	"campus/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewService(t *testing.T, loggedIn bool) usecase.ReviewUsecase {
	t.Helper()

	store, err := catalog.NewFromSeed()
	require.NoError(t, err)

	identityRepo := &memIdentityRepo{}
	if loggedIn {
		identityRepo.identity = &entity.Identity{Name: "Asha", RegNo: "2112345"}
	}
	session := NewSessionUsecase(identityRepo, testNotifier())

	return NewReviewUsecase(session, store, testNotifier())
}

func validReview() usecase.SubmitReviewInput {
	return usecase.SubmitReviewInput{
		EntityID: "f1",
		Rating:   4,
		Comment:  "Great chowmein!",
	}
}

func TestReviewService_SubmitReview_Success(t *testing.T) {
	svc := newReviewService(t, true)
	ctx := context.Background()

	review, err := svc.SubmitReview(ctx, validReview())

	require.NoError(t, err)
	assert.Equal(t, "Asha", review.User)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, "Great chowmein!", review.Comment)
	assert.NotEmpty(t, review.ID)
	assert.Contains(t, avatarColors, review.AvatarColor)
	assert.False(t, review.Date.IsZero())

	reviews, err := svc.Reviews(ctx, "f1")
	require.NoError(t, err)
	require.Len(t, reviews, 3, "two seeded reviews plus the new one")
	assert.Equal(t, review.ID, reviews[2].ID, "submitted review comes after the seeded ones")
}

func TestReviewService_SubmitReview_RequiresLogin(t *testing.T) {
	svc := newReviewService(t, false)
	ctx := context.Background()

	_, err := svc.SubmitReview(ctx, validReview())

	assert.ErrorIs(t, err, domainerrors.ErrLoginRequired)

	reviews, listErr := svc.Reviews(ctx, "f1")
	require.NoError(t, listErr)
	assert.Len(t, reviews, 2, "ledger unchanged on rejection")
}

func TestReviewService_SubmitReview_FieldValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.SubmitReviewInput)
		want   error
	}{
		{
			name:   "zero rating",
			mutate: func(in *usecase.SubmitReviewInput) { in.Rating = 0 },
			want:   domainerrors.ErrInvalidRating,
		},
		{
			name:   "rating above five",
			mutate: func(in *usecase.SubmitReviewInput) { in.Rating = 6 },
			want:   domainerrors.ErrInvalidRating,
		},
		{
			name:   "whitespace comment",
			mutate: func(in *usecase.SubmitReviewInput) { in.Comment = "   " },
			want:   domainerrors.ErrInvalidComment,
		},
		{
			name:   "comment too long",
			mutate: func(in *usecase.SubmitReviewInput) { in.Comment = strings.Repeat("x", 501) },
			want:   domainerrors.ErrInvalidComment,
		},
		{
			name:   "unknown entity",
			mutate: func(in *usecase.SubmitReviewInput) { in.EntityID = "nope" },
			want:   domainerrors.ErrEntityNotFound,
		},
		{
			name: "oversized image",
			mutate: func(in *usecase.SubmitReviewInput) {
				payload := base64.StdEncoding.EncodeToString(make([]byte, 5*1024*1024+1))
				in.Image = "data:image/png;base64," + payload
			},
			want: domainerrors.ErrImageTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newReviewService(t, true)

			input := validReview()
			tt.mutate(&input)

			_, err := svc.SubmitReview(context.Background(), input)
			assert.ErrorIs(t, err, tt.want)

			reviews, listErr := svc.Reviews(context.Background(), "f1")
			require.NoError(t, listErr)
			assert.Len(t, reviews, 2, "nothing appended on rejection")
		})
	}
}

func TestReviewService_SubmitReview_AcceptsSmallImage(t *testing.T) {
	svc := newReviewService(t, true)

	input := validReview()
	input.Image = "data:image/png;base64," + base64.StdEncoding.EncodeToString(make([]byte, 64))

	review, err := svc.SubmitReview(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, input.Image, review.ImageURL)
}

func TestReviewService_Reviews_UnknownEntity(t *testing.T) {
	svc := newReviewService(t, true)

	_, err := svc.Reviews(context.Background(), "nope")

	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)
}

func TestReviewService_Reviews_SessionScoped(t *testing.T) {
	// Reviews live in memory only: a fresh service over the same catalog
	// starts from the seeded list again.
	first := newReviewService(t, true)
	_, err := first.SubmitReview(context.Background(), validReview())
	require.NoError(t, err)

	second := newReviewService(t, true)
	reviews, err := second.Reviews(context.Background(), "f1")
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}
