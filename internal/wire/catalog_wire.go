package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/venues - List venues with filter/sort query params
	r.Get("/api/venues", catalogHandler.GetVenues)

	// GET /api/venues/{id} - Venue detail
	r.Get("/api/venues/{id}", catalogHandler.GetVenueByID)

	// GET /api/explore - Search with location/date/time/guests params
	r.Get("/api/explore", catalogHandler.Explore)
}
