// Package repository defines the persistence boundary of the domain.
package repository

import "context"

// FavoriteRepository stores the set of entity ids marked favorite. The set
// is unbounded and must survive process restarts, round-tripping exactly.
type FavoriteRepository interface {
	// List returns all favorited entity ids in insertion order.
	List(ctx context.Context) ([]string, error)

	// Add records the entity id as favorite. Adding an existing id is a
	// no-op.
	Add(ctx context.Context, entityID string) error

	// Remove deletes the entity id from the set. Removing a missing id is
	// not an error.
	Remove(ctx context.Context, entityID string) error

	// Contains reports whether the entity id is currently favorited.
	Contains(ctx context.Context, entityID string) (bool, error)
}
