package usecase

import (
	"context"

	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// recentLimit caps the recent-bookings list on the admin dashboard.
const recentLimit = 10

type DashboardService interface {
	AdminDashboard(ctx context.Context) (*response.AdminDashboardResponse, error)
	ManagerDashboard(ctx context.Context, managerID uuid.UUID) (*response.ManagerDashboardResponse, error)
}

type dashboardService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDashboardService(repo *repository.Repository, log *zap.Logger) DashboardService {
	return &dashboardService{
		repo: repo,
		log:  log.With(zap.String("service", "dashboard")),
	}
}

func (s *dashboardService) AdminDashboard(ctx context.Context) (*response.AdminDashboardResponse, error) {
	bookings := s.repo.Booking.FindAll(ctx)

	var revenue float64
	for _, b := range bookings {
		revenue += b.FinalTotal
	}

	// Newest first; the store appends in creation order
	recent := make([]response.BookingResponse, 0, recentLimit)
	for i := len(bookings) - 1; i >= 0 && len(recent) < recentLimit; i-- {
		recent = append(recent, response.BookingToResponse(bookings[i]))
	}

	s.log.Info("Admin dashboard built",
		zap.Int("bookings", len(bookings)),
		zap.Float64("revenue", revenue),
	)

	return &response.AdminDashboardResponse{
		VenueCount:   s.repo.Venue.Count(),
		BookingCount: len(bookings),
		Revenue:      revenue,
		Recent:       recent,
	}, nil
}

func (s *dashboardService) ManagerDashboard(ctx context.Context, managerID uuid.UUID) (*response.ManagerDashboardResponse, error) {
	venues := s.repo.Venue.FindByManager(ctx, managerID)

	venueIDs := make([]uuid.UUID, len(venues))
	venueResponses := make([]response.VenueResponse, len(venues))
	for i, v := range venues {
		venueIDs[i] = v.ID
		venueResponses[i] = response.VenueToResponse(v)
	}

	bookings := s.repo.Booking.FindByVenues(ctx, venueIDs)
	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		bookingResponses[i] = response.BookingToResponse(b)
	}

	s.log.Info("Manager dashboard built",
		zap.String("manager_id", managerID.String()),
		zap.Int("venues", len(venues)),
		zap.Int("bookings", len(bookings)),
	)

	return &response.ManagerDashboardResponse{
		Venues:   venueResponses,
		Bookings: bookingResponses,
	}, nil
}
