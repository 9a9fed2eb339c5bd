package adaptor

import (
	"net/http"

	"venue-booking/internal/catalog"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetVenues handles GET /api/venues (public)
// Query params: q, min_price, max_price, min_rating, category, sort, page, per_page
func (h *CatalogHandler) GetVenues(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := catalog.Filter{
		Query:     query.Get("q"),
		MinPrice:  utils.ParseFloat(query.Get("min_price"), 0),
		MaxPrice:  utils.ParseFloat(query.Get("max_price"), 0),
		MinRating: utils.ParseFloat(query.Get("min_rating"), 0),
		Category:  query.Get("category"),
	}
	order := catalog.ParseSortOrder(query.Get("sort"))

	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 20),
	}

	venues, err := h.service.ListVenues(r.Context(), filter, order, req)
	if err != nil {
		handleServiceError(w, h.log, err, "get venues")
		return
	}

	utils.ResponseSuccess(w, "success", venues)
}

// GetVenueByID handles GET /api/venues/{id} (public)
func (h *CatalogHandler) GetVenueByID(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "id")
	if venueID == "" {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	venue, err := h.service.GetVenueByID(r.Context(), venueID)
	if err != nil {
		handleServiceError(w, h.log, err, "get venue by ID")
		return
	}

	utils.ResponseSuccess(w, "success", venue)
}

// Explore handles GET /api/explore (public)
// Query params: location, date, time, guests
func (h *CatalogHandler) Explore(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	result, err := h.service.Explore(
		r.Context(),
		query.Get("location"),
		query.Get("date"),
		query.Get("time"),
		utils.ParseInt(query.Get("guests"), 0),
	)
	if err != nil {
		handleServiceError(w, h.log, err, "explore")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}
