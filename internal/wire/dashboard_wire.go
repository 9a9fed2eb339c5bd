package wire

import (
	"venue-booking/internal/adaptor"
	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDashboard(
	r chi.Router,
	dashboardHandler *adaptor.DashboardHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(entity.RoleAdmin, log))

		// GET /api/admin/dashboard - Venue/booking/revenue overview
		r.Get("/api/admin/dashboard", dashboardHandler.Admin)
	})

	// ==================== MANAGER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(entity.RoleVenueManager, log))

		// GET /api/manager/dashboard - The manager's venues and their bookings
		r.Get("/api/manager/dashboard", dashboardHandler.Manager)
	})
}
