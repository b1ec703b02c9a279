// Package repository defines the persistence boundary of the domain.
// Implementations live under internal/infra and are injected, so tests can
// substitute in-memory fakes.
package repository

import (
	"context"

	"campus/internal/domain/entity"

	"campus/internal/errors"
)

// ErrIdentityNotFound is returned when no identity has been persisted.
var ErrIdentityNotFound = errors.New("identity not found")

// IdentityRepository stores at most one active identity per installation.
// Save overwrites any previous record; the stored identity must round-trip
// exactly across process restarts.
type IdentityRepository interface {
	// Load returns the persisted identity, or ErrIdentityNotFound.
	Load(ctx context.Context) (*entity.Identity, error)

	// Save persists the identity, replacing any existing record.
	Save(ctx context.Context, identity *entity.Identity) error

	// Delete erases the persisted identity. Deleting a missing record is
	// not an error.
	Delete(ctx context.Context) error
}
