package impl

import (
	"testing"

	"campus/internal/infra/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearchService(t *testing.T) *searchService {
	t.Helper()

	store, err := catalog.NewFromSeed()
	require.NoError(t, err)

	return NewSearchUsecase(store).(*searchService)
}

func TestSearchService_Filter_EmptyQueryIsIdentity(t *testing.T) {
	svc := newSearchService(t)
	full := catalog.Seed()

	assert.Equal(t, full, svc.Filter("", full))
	assert.Equal(t, full, svc.Filter("   ", full))
}

func TestSearchService_Filter_MatchesNameSubstring(t *testing.T) {
	svc := newSearchService(t)

	out := svc.Filter("hirakud", catalog.Seed())

	require.Len(t, out.Places, 1)
	assert.Equal(t, "Hirakud Dam", out.Places[0].Name)
	assert.Empty(t, out.FoodVendors)
	assert.Empty(t, out.Salons)
}

func TestSearchService_Filter_MatchesAnyTypeTag(t *testing.T) {
	svc := newSearchService(t)

	out := svc.Filter("biryani", catalog.Seed())

	// Matched via the "Biryani" type tag; "Biriyani Vibes" spells its name
	// differently so only the tag can match it.
	require.Len(t, out.FoodVendors, 2)
	assert.Equal(t, "Biriyani Vibes", out.FoodVendors[0].Name)
	assert.Equal(t, "Lucky Biriyani", out.FoodVendors[1].Name)
}

func TestSearchService_Filter_PreservesCatalogOrder(t *testing.T) {
	svc := newSearchService(t)

	out := svc.Filter("fast food", catalog.Seed())

	var names []string
	for _, v := range out.FoodVendors {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{
		"BB Food Corner",
		"Swarup Fast Food",
		"Friends Fast Food",
		"Engineer's Bro Delight",
	}, names)
}

func TestSearchService_Filter_Idempotent(t *testing.T) {
	svc := newSearchService(t)
	full := catalog.Seed()

	once := svc.Filter("temple", full)
	twice := svc.Filter("temple", once)

	assert.Equal(t, once, twice)
}

func TestSearchService_Filter_CaseInsensitive(t *testing.T) {
	svc := newSearchService(t)

	lower := svc.Filter("xerox", catalog.Seed())
	upper := svc.Filter("XEROX", catalog.Seed())

	require.Len(t, lower.Services, 1)
	assert.Equal(t, "Campus Print Shop", lower.Services[0].Name)
	assert.Equal(t, lower, upper)
}

func TestSearchService_Search_Counts(t *testing.T) {
	svc := newSearchService(t)

	out := svc.Search("  salon  ")

	assert.Equal(t, "salon", out.Query)
	assert.Equal(t, 2, out.Counts.Salons)
	assert.Equal(t, 0, out.Counts.Transports)
	assert.Len(t, out.Results.Salons, 2)
}

func TestSearchService_Filter_NoMatches(t *testing.T) {
	svc := newSearchService(t)

	out := svc.Filter("xyzzy", catalog.Seed())

	assert.Equal(t, 0, out.Count().FoodVendors+out.Count().Services+
		out.Count().Transports+out.Count().Places+out.Count().Salons)
}
