// Package repository defines the persistence boundary of the domain.
package repository

import (
	"campus/internal/domain/entity"

	"campus/internal/errors"
)

// ErrEntityNotFound is returned when no catalog entity carries the id.
var ErrEntityNotFound = errors.New("catalog entity not found")

// CatalogRepository is the read-only view over the immutable campus
// dataset. No context parameter: the catalog is in-memory and never blocks.
type CatalogRepository interface {
	// Catalog returns the full dataset in curated order.
	Catalog() entity.Catalog

	// FindPlace returns the place with the given id, or ErrEntityNotFound.
	FindPlace(id string) (*entity.Place, error)

	// SeedReviews returns the curated reviews for an entity id, or
	// ErrEntityNotFound when the id is unknown to any category.
	SeedReviews(entityID string) ([]entity.Review, error)

	// HasEntity reports whether any category contains the id.
	HasEntity(id string) bool
}
