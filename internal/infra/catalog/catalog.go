// Package catalog provides the immutable in-memory campus dataset and the
// read-only store over it.
package catalog

import (
	"fmt"

	"campus/internal/domain/entity"
	"campus/internal/domain/repository"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// Main gate coordinates, the reference point for computed place distances.
const (
	mainGateLat = 21.497297
	mainGateLng = 83.904025
)

// Store is the in-memory CatalogRepository. The dataset is validated once
// at construction and never mutated afterwards.
type Store struct {
	data    entity.Catalog
	places  map[string]*entity.Place
	reviews map[string][]entity.Review
}

var _ repository.CatalogRepository = (*Store)(nil)

// New validates the dataset and builds the lookup indexes. A duplicate id
// anywhere across the categories is an ingestion error, not a record to
// silently prefer.
func New(data entity.Catalog) (*Store, error) {
	store := &Store{
		data:    data,
		places:  make(map[string]*entity.Place, len(data.Places)),
		reviews: make(map[string][]entity.Review),
	}

	register := func(id string, reviews []entity.Review) error {
		if id == "" {
			return errors.New("catalog entity with empty id")
		}
		if _, exists := store.reviews[id]; exists {
			return errors.Errorf("duplicate catalog entity id %q", id)
		}
		store.reviews[id] = reviews

		return nil
	}

	for i := range data.FoodVendors {
		if err := register(data.FoodVendors[i].ID, data.FoodVendors[i].Reviews); err != nil {
			return nil, err
		}
	}
	for i := range data.Services {
		if err := register(data.Services[i].ID, data.Services[i].Reviews); err != nil {
			return nil, err
		}
	}
	for i := range data.Transports {
		if err := register(data.Transports[i].ID, data.Transports[i].Reviews); err != nil {
			return nil, err
		}
	}
	for i := range data.Salons {
		if err := register(data.Salons[i].ID, data.Salons[i].Reviews); err != nil {
			return nil, err
		}
	}
	for i := range data.Places {
		place := &store.data.Places[i]
		if err := register(place.ID, place.Reviews); err != nil {
			return nil, err
		}
		if place.Distance == "" {
			place.Distance = distanceFromGate(place.Lat, place.Lng)
		}
		store.places[place.ID] = place
	}

	return store, nil
}

// NewFromSeed builds the store over the curated dataset.
func NewFromSeed() (*Store, error) {
	return New(Seed())
}

// Catalog returns the full dataset in curated order.
func (s *Store) Catalog() entity.Catalog {
	return s.data
}

// FindPlace returns the place with the given id.
func (s *Store) FindPlace(id string) (*entity.Place, error) {
	place, ok := s.places[id]
	if !ok {
		return nil, errors.Wrapf(repository.ErrEntityNotFound, "place %q", id)
	}

	return place, nil
}

// SeedReviews returns the curated reviews for an entity id.
func (s *Store) SeedReviews(entityID string) ([]entity.Review, error) {
	reviews, ok := s.reviews[entityID]
	if !ok {
		return nil, errors.Wrapf(repository.ErrEntityNotFound, "entity %q", entityID)
	}

	return reviews, nil
}

// HasEntity reports whether any category contains the id.
func (s *Store) HasEntity(id string) bool {
	_, ok := s.reviews[id]

	return ok
}

// distanceFromGate formats the straight-line distance from the main gate.
func distanceFromGate(lat, lng float64) string {
	meters := geo.Distance(orb.Point{mainGateLng, mainGateLat}, orb.Point{lng, lat})
	if meters < 1000 {
		return fmt.Sprintf("%.0fm from Campus", meters)
	}

	return fmt.Sprintf("%.1fkm from Campus", meters/1000)
}
