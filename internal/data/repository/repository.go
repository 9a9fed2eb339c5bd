package repository

import (
	"fmt"

	"go.uber.org/zap"
)

type Repository struct {
	Venue   VenueRepository
	User    UserRepository
	Session SessionRepository
	Draft   DraftRepository
	Booking BookingRepository
}

// NewRepository builds every in-memory store and seeds the static catalog
// and demo accounts. Nothing here survives a process restart.
func NewRepository(log *zap.Logger) (*Repository, error) {
	users, err := SeedUsers()
	if err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}

	venueRepo := NewVenueRepository(SeedVenues(), log)

	return &Repository{
		Venue:   venueRepo,
		User:    NewUserRepository(users, log),
		Session: NewSessionRepository(log),
		Draft:   NewDraftRepository(venueRepo, log),
		Booking: NewBookingRepository(log),
	}, nil
}
