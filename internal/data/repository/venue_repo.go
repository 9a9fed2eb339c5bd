package repository

import (
	"context"
	"sync"

	"venue-booking/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VenueRepository interface {
	FindAll(ctx context.Context) []entity.Venue
	FindByID(ctx context.Context, id uuid.UUID) *entity.Venue
	FindByManager(ctx context.Context, managerID uuid.UUID) []entity.Venue
	Count() int
}

type venueRepository struct {
	mu     sync.RWMutex
	venues []entity.Venue
	byID   map[uuid.UUID]int
	log    *zap.Logger
}

func NewVenueRepository(venues []entity.Venue, log *zap.Logger) VenueRepository {
	byID := make(map[uuid.UUID]int, len(venues))
	for i, v := range venues {
		byID[v.ID] = i
	}

	return &venueRepository{
		venues: venues,
		byID:   byID,
		log:    log.With(zap.String("repository", "venue")),
	}
}

func (r *venueRepository) FindAll(ctx context.Context) []entity.Venue {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Venue, len(r.venues))
	copy(out, r.venues)
	return out
}

func (r *venueRepository) FindByID(ctx context.Context, id uuid.UUID) *entity.Venue {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil
	}

	v := r.venues[i]
	return &v
}

func (r *venueRepository) FindByManager(ctx context.Context, managerID uuid.UUID) []entity.Venue {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entity.Venue
	for _, v := range r.venues {
		if v.ManagerID == managerID {
			out = append(out, v)
		}
	}
	return out
}

func (r *venueRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.venues)
}
