package usecase

import (
	"context"

	"campus/internal/domain/entity"
)

// LoginInput carries the two-field student login form.
type LoginInput struct {
	Name  string `json:"name" validate:"required,max=50"`
	RegNo string `json:"regNo" validate:"required,len=7,numeric"`
}

// SessionUsecase defines the single-identity login flow.
type SessionUsecase interface {
	// Login validates and stores the identity, replacing any previous one.
	Login(ctx context.Context, input LoginInput) (*entity.Identity, error)

	// Logout clears the active identity. Logging out while logged out is a
	// no-op.
	Logout(ctx context.Context) error

	// Current returns the active identity, restoring it from storage when
	// needed. Returns ErrIdentityNotFound when nobody is logged in.
	Current(ctx context.Context) (*entity.Identity, error)
}
