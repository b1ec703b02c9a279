// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "campus/internal/domain/entity"

// SearchOutput is the filtered catalog view plus per-category counts for
// the section headers.
type SearchOutput struct {
	Query   string         `json:"query"`
	Results entity.Catalog `json:"results"`
	Counts  entity.Counts  `json:"counts"`
}

// SearchUsecase defines keyword filtering over the catalog.
type SearchUsecase interface {
	// Filter returns the subsequence of the given catalog whose entries
	// match the query. Pure: no side effects, original order preserved,
	// empty query returns the catalog unchanged.
	Filter(query string, catalog entity.Catalog) entity.Catalog

	// Search filters the full campus catalog.
	Search(query string) *SearchOutput
}
