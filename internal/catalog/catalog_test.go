package catalog_test

import (
	"testing"

	"venue-booking/internal/catalog"
	"venue-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVenues() []entity.Venue {
	return []entity.Venue{
		{ID: uuid.New(), Name: "Trattoria Lucana", Location: "Rome, Italy", Rating: 4.8, PricePerPerson: 95, Category: "italian"},
		{ID: uuid.New(), Name: "Sakura Omakase", Location: "Kyoto, Japan", Rating: 4.9, PricePerPerson: 1500, Category: "japanese"},
		{ID: uuid.New(), Name: "Casa Azul", Location: "Mexico City, Mexico", Rating: 4.5, PricePerPerson: 48, Category: "mexican", Featured: true},
		{ID: uuid.New(), Name: "Spice Route", Location: "Mumbai, India", Rating: 3.9, PricePerPerson: 35, Category: "indian"},
	}
}

func TestApply_QueryMatchesNameOrLocation(t *testing.T) {
	venues := testVenues()

	byName := catalog.Apply(venues, catalog.Filter{Query: "sakura"})
	require.Len(t, byName, 1)
	assert.Equal(t, "Sakura Omakase", byName[0].Name)

	byLocation := catalog.Apply(venues, catalog.Filter{Query: "ROME"})
	require.Len(t, byLocation, 1)
	assert.Equal(t, "Trattoria Lucana", byLocation[0].Name)
}

func TestApply_CombinedFiltersAreAND(t *testing.T) {
	venues := testVenues()

	// Price cap excludes the 1500 record regardless of its rating
	got := catalog.Apply(venues, catalog.Filter{
		MinPrice:  0,
		MaxPrice:  1000,
		MinRating: 4,
		Category:  "all",
	})

	require.Len(t, got, 2)
	for _, v := range got {
		assert.NotEqual(t, "Sakura Omakase", v.Name)
		assert.GreaterOrEqual(t, v.Rating, 4.0)
	}
}

func TestApply_CategoryExactMatch(t *testing.T) {
	venues := testVenues()

	got := catalog.Apply(venues, catalog.Filter{Category: "mexican"})
	require.Len(t, got, 1)
	assert.Equal(t, "Casa Azul", got[0].Name)

	all := catalog.Apply(venues, catalog.Filter{Category: catalog.CategoryAll})
	assert.Len(t, all, len(venues))
}

func TestApply_PriceRangeInclusive(t *testing.T) {
	venues := testVenues()

	got := catalog.Apply(venues, catalog.Filter{MinPrice: 35, MaxPrice: 48})
	require.Len(t, got, 2)
}

func TestSort_PriceAscending(t *testing.T) {
	sorted := catalog.Sort(testVenues(), catalog.SortPriceAsc)

	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, sorted[i-1].PricePerPerson, sorted[i].PricePerPerson)
	}
}

func TestSort_RatingDescending(t *testing.T) {
	sorted := catalog.Sort(testVenues(), catalog.SortRatingDesc)

	for i := 1; i < len(sorted); i++ {
		assert.GreaterOrEqual(t, sorted[i-1].Rating, sorted[i].Rating)
	}
}

func TestSort_FeaturedFirstIsStable(t *testing.T) {
	venues := testVenues()
	sorted := catalog.Sort(venues, catalog.SortFeatured)

	require.Len(t, sorted, 4)
	assert.Equal(t, "Casa Azul", sorted[0].Name)

	// Non-featured venues keep their catalog order
	assert.Equal(t, "Trattoria Lucana", sorted[1].Name)
	assert.Equal(t, "Sakura Omakase", sorted[2].Name)
	assert.Equal(t, "Spice Route", sorted[3].Name)
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	venues := testVenues()
	first := venues[0].Name

	catalog.Sort(venues, catalog.SortPriceDesc)

	assert.Equal(t, first, venues[0].Name)
}

func TestParseSortOrder_FallsBackToFeatured(t *testing.T) {
	assert.Equal(t, catalog.SortPriceAsc, catalog.ParseSortOrder("price_asc"))
	assert.Equal(t, catalog.SortFeatured, catalog.ParseSortOrder("bogus"))
	assert.Equal(t, catalog.SortFeatured, catalog.ParseSortOrder(""))
}
