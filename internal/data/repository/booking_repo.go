package repository

import (
	"context"
	"sync"

	"venue-booking/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingRepository is the append-only ConfirmedBooking collection. Append
// performs no validation; snapshots are immutable once stored.
type BookingRepository interface {
	Append(ctx context.Context, booking entity.ConfirmedBooking)
	FindByRef(ctx context.Context, ref string) *entity.ConfirmedBooking
	FindByUser(ctx context.Context, userID uuid.UUID) []entity.ConfirmedBooking
	FindByVenues(ctx context.Context, venueIDs []uuid.UUID) []entity.ConfirmedBooking
	FindAll(ctx context.Context) []entity.ConfirmedBooking
	Count() int
}

type bookingRepository struct {
	mu       sync.RWMutex
	bookings []entity.ConfirmedBooking
	log      *zap.Logger
}

func NewBookingRepository(log *zap.Logger) BookingRepository {
	return &bookingRepository{
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Append(ctx context.Context, booking entity.ConfirmedBooking) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = append(r.bookings, booking)
}

func (r *bookingRepository) FindByRef(ctx context.Context, ref string) *entity.ConfirmedBooking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.bookings {
		if r.bookings[i].Ref == ref {
			b := r.bookings[i]
			return &b
		}
	}
	return nil
}

func (r *bookingRepository) FindByUser(ctx context.Context, userID uuid.UUID) []entity.ConfirmedBooking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entity.ConfirmedBooking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

func (r *bookingRepository) FindByVenues(ctx context.Context, venueIDs []uuid.UUID) []entity.ConfirmedBooking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make(map[uuid.UUID]struct{}, len(venueIDs))
	for _, id := range venueIDs {
		ids[id] = struct{}{}
	}

	var out []entity.ConfirmedBooking
	for _, b := range r.bookings {
		if _, ok := ids[b.VenueID]; ok {
			out = append(out, b)
		}
	}
	return out
}

func (r *bookingRepository) FindAll(ctx context.Context) []entity.ConfirmedBooking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.ConfirmedBooking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

func (r *bookingRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.bookings)
}
