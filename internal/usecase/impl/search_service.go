// Package impl provides the concrete implementations of the usecase
// interfaces.
package impl

import (
	"strings"

	"campus/internal/domain/entity"
	"campus/internal/domain/repository"
	"campus/internal/usecase"
)

type searchService struct {
	catalogRepo repository.CatalogRepository
}

// NewSearchUsecase creates a new search usecase instance
func NewSearchUsecase(catalogRepo repository.CatalogRepository) usecase.SearchUsecase {
	return &searchService{catalogRepo: catalogRepo}
}

// Filter keeps the entries whose name or category tag contains the
// normalized query. Substring test only; no tokenization, no ranking.
// Entries keep their original order.
func (s *searchService) Filter(query string, catalog entity.Catalog) entity.Catalog {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return catalog
	}

	out := entity.Catalog{}
	for _, v := range catalog.FoodVendors {
		if matches(q, v.Name, v.Type...) {
			out.FoodVendors = append(out.FoodVendors, v)
		}
	}
	for _, sv := range catalog.Services {
		if matches(q, sv.Name, sv.Type) {
			out.Services = append(out.Services, sv)
		}
	}
	for _, t := range catalog.Transports {
		if matches(q, t.Name, t.Type) {
			out.Transports = append(out.Transports, t)
		}
	}
	for _, p := range catalog.Places {
		if matches(q, p.Name, p.Type) {
			out.Places = append(out.Places, p)
		}
	}
	for _, sl := range catalog.Salons {
		if matches(q, sl.Name, sl.Type) {
			out.Salons = append(out.Salons, sl)
		}
	}
	return out
}

// Search filters the seeded campus catalog.
func (s *searchService) Search(query string) *usecase.SearchOutput {
	results := s.Filter(query, s.catalogRepo.Catalog())
	return &usecase.SearchOutput{
		Query:   strings.TrimSpace(query),
		Results: results,
		Counts:  results.Count(),
	}
}

func matches(query string, name string, tags ...string) bool {
	if strings.Contains(strings.ToLower(name), query) {
		return true
	}
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
