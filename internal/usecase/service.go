package usecase

import (
	"venue-booking/internal/data/repository"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Catalog   CatalogService
	Booking   BookingService
	Dashboard DashboardService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		Catalog:   NewCatalogService(repo, log),
		Booking:   NewBookingService(repo, log),
		Dashboard: NewDashboardService(repo, log),
	}
}
