package wire

import (
	"venue-booking/internal/adaptor"
	"venue-booking/internal/data/repository"
	"venue-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== FUNNEL ROUTES ====================
	// Auth is optional here: the draft belongs to the browsing session, and
	// the checkout guard answers anonymous visitors with a login redirect
	// instead of a bare 401.
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalAuth(repo.Session, repo.User, log))

		// POST /api/booking/select - Put a venue into the draft
		r.Post("/api/booking/select", bookingHandler.SelectVenue)

		// GET /api/booking - Scheduling page (requires a selected venue)
		r.Get("/api/booking", bookingHandler.GetDraft)

		// PATCH /api/booking - Partial draft update
		r.Patch("/api/booking", bookingHandler.UpdateDraft)

		// POST /api/booking - Scheduling submit (exit transition)
		r.Post("/api/booking", bookingHandler.SubmitSchedule)

		// DELETE /api/booking - Explicit draft reset
		r.Delete("/api/booking", bookingHandler.ResetDraft)

		// GET /api/checkout - Checkout summary with fee breakdown
		r.Get("/api/checkout", bookingHandler.GetCheckout)

		// POST /api/checkout - Terminal transition: confirm the booking
		r.Post("/api/checkout", bookingHandler.PostCheckout)
	})

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// GET /api/bookings/{ref} - Confirmation page
		r.Get("/api/bookings/{ref}", bookingHandler.GetBookingByRef)
	})
}
