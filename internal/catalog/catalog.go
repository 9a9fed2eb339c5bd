// Package catalog holds the pure filter and sort operations over the seeded
// venue list. Nothing here has side effects; every function returns a new
// slice and leaves its input untouched.
package catalog

import (
	"sort"
	"strings"

	"venue-booking/internal/data/entity"
)

// CategoryAll matches every category.
const CategoryAll = "all"

// Filter combines the catalog predicates with logical AND. Zero values
// disable the corresponding predicate.
type Filter struct {
	Query     string  // case-insensitive substring on name or location
	MinPrice  float64 // inclusive
	MaxPrice  float64 // inclusive; <= 0 means no cap
	MinRating float64
	Category  string // exact match; "" or "all" matches everything
}

// Matches reports whether a venue passes every active predicate.
func (f Filter) Matches(v entity.Venue) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(v.Name), q) &&
			!strings.Contains(strings.ToLower(v.Location), q) {
			return false
		}
	}

	if v.PricePerPerson < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && v.PricePerPerson > f.MaxPrice {
		return false
	}

	if v.Rating < f.MinRating {
		return false
	}

	if f.Category != "" && f.Category != CategoryAll && v.Category != f.Category {
		return false
	}

	return true
}

// Apply returns the venues passing the filter, preserving catalog order.
func Apply(venues []entity.Venue, f Filter) []entity.Venue {
	out := make([]entity.Venue, 0, len(venues))
	for _, v := range venues {
		if f.Matches(v) {
			out = append(out, v)
		}
	}
	return out
}

type SortOrder string

const (
	SortFeatured   SortOrder = "featured"
	SortPriceAsc   SortOrder = "price_asc"
	SortPriceDesc  SortOrder = "price_desc"
	SortRatingDesc SortOrder = "rating_desc"
)

// ParseSortOrder falls back to featured-first for unknown values.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(s) {
	case SortPriceAsc, SortPriceDesc, SortRatingDesc:
		return SortOrder(s)
	default:
		return SortFeatured
	}
}

// Sort returns a sorted copy. Featured-first is a stable ordering: featured
// venues float to the front, everything else keeps its catalog position.
func Sort(venues []entity.Venue, order SortOrder) []entity.Venue {
	out := make([]entity.Venue, len(venues))
	copy(out, venues)

	switch order {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PricePerPerson < out[j].PricePerPerson
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PricePerPerson > out[j].PricePerPerson
		})
	case SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Featured && !out[j].Featured
		})
	}

	return out
}
