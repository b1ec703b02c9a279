package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"campus/internal/domain/entity"
	"campus/internal/domain/repository"
	"campus/internal/domain/service"
	"campus/internal/usecase"
)

// memIdentityRepo is an in-memory IdentityRepository for usecase tests.
type memIdentityRepo struct {
	identity *entity.Identity
	loadErr  error
}

func (r *memIdentityRepo) Load(ctx context.Context) (*entity.Identity, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if r.identity == nil {
		return nil, repository.ErrIdentityNotFound
	}
	copied := *r.identity
	return &copied, nil
}

func (r *memIdentityRepo) Save(ctx context.Context, identity *entity.Identity) error {
	copied := *identity
	r.identity = &copied
	return nil
}

func (r *memIdentityRepo) Delete(ctx context.Context) error {
	r.identity = nil
	return nil
}

// memFavoriteRepo is an in-memory FavoriteRepository preserving insertion
// order.
type memFavoriteRepo struct {
	ids []string
}

func (r *memFavoriteRepo) List(ctx context.Context) ([]string, error) {
	return append([]string(nil), r.ids...), nil
}

func (r *memFavoriteRepo) Add(ctx context.Context, entityID string) error {
	for _, id := range r.ids {
		if id == entityID {
			return nil
		}
	}
	r.ids = append(r.ids, entityID)
	return nil
}

func (r *memFavoriteRepo) Remove(ctx context.Context, entityID string) error {
	for i, id := range r.ids {
		if id == entityID {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memFavoriteRepo) Contains(ctx context.Context, entityID string) (bool, error) {
	for _, id := range r.ids {
		if id == entityID {
			return true, nil
		}
	}
	return false, nil
}

// stubProvider records the context it was handed and returns a fixed reply
// or error.
type stubProvider struct {
	reply     string
	err       error
	gotSystem string
	gotTurns  []service.Turn
}

func (p *stubProvider) Complete(ctx context.Context, system string, turns []service.Turn) (string, error) {
	p.gotSystem = system
	p.gotTurns = append([]service.Turn(nil), turns...)
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testNotifier() usecase.NotificationUsecase {
	return NewNotificationUsecase(time.Minute)
}
