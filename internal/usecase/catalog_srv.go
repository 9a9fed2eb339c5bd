package usecase

import (
	"context"
	"fmt"

	"venue-booking/internal/catalog"
	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

type CatalogService interface {
	ListVenues(ctx context.Context, filter catalog.Filter, order catalog.SortOrder, req *request.PaginatedRequest) (*response.PaginatedResponse[response.VenueResponse], error)
	GetVenueByID(ctx context.Context, venueID string) (*response.VenueResponse, error)
	Explore(ctx context.Context, location, date, timeSlot string, guests int) (*response.ExploreResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListVenues(ctx context.Context, filter catalog.Filter, order catalog.SortOrder, req *request.PaginatedRequest) (*response.PaginatedResponse[response.VenueResponse], error) {
	venues := s.repo.Venue.FindAll(ctx)

	matched := catalog.Apply(venues, filter)
	sorted := catalog.Sort(matched, order)

	total := int64(len(sorted))
	offset := req.Offset()
	limit := req.Limit()

	var page []entity.Venue
	if offset < len(sorted) {
		end := offset + limit
		if end > len(sorted) {
			end = len(sorted)
		}
		page = sorted[offset:end]
	}

	venueResponses := make([]response.VenueResponse, len(page))
	for i, v := range page {
		venueResponses[i] = response.VenueToResponse(v)
	}

	s.log.Info("Venues retrieved",
		zap.Int("matched", len(sorted)),
		zap.Int("returned", len(venueResponses)),
		zap.String("sort", string(order)),
	)

	return response.NewPaginatedResponse(venueResponses, req.Page, req.PerPage, total), nil
}

func (s *catalogService) GetVenueByID(ctx context.Context, venueID string) (*response.VenueResponse, error) {
	id, err := utils.ParseUUID(venueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID format %s: %w", venueID, err)
	}

	venue := s.repo.Venue.FindByID(ctx, id)
	if venue == nil {
		return nil, fmt.Errorf("venue %s not found", venueID)
	}

	resp := response.VenueToResponse(*venue)
	return &resp, nil
}

// Explore is the search surface: the location query narrows the catalog,
// date/time/guests are carried through so the client can preseed the draft.
func (s *catalogService) Explore(ctx context.Context, location, date, timeSlot string, guests int) (*response.ExploreResponse, error) {
	venues := s.repo.Venue.FindAll(ctx)

	matched := catalog.Apply(venues, catalog.Filter{Query: location})
	sorted := catalog.Sort(matched, catalog.SortFeatured)

	venueResponses := make([]response.VenueResponse, len(sorted))
	for i, v := range sorted {
		venueResponses[i] = response.VenueToResponse(v)
	}

	s.log.Info("Explore search",
		zap.String("location", location),
		zap.Int("matched", len(sorted)),
	)

	return &response.ExploreResponse{
		Location: location,
		Date:     date,
		Time:     timeSlot,
		Guests:   guests,
		Venues:   venueResponses,
	}, nil
}
