package repository

import (
	"context"
	"sync"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/pricing"

	"go.uber.org/zap"
)

// DraftRepository owns every session's in-progress BookingDraft. Merge is the
// only write path: patch fields overwrite, omitted fields persist, and the
// draft total is recomputed whenever a pricing input changed, so TotalPrice
// is always derivable from (venue price x guests x nights). No operation
// errors; validation is the caller's responsibility.
type DraftRepository interface {
	Get(ctx context.Context, sessionID string) entity.BookingDraft
	Merge(ctx context.Context, sessionID string, patch entity.DraftPatch) entity.BookingDraft
	Reset(ctx context.Context, sessionID string)
}

type draftRepository struct {
	mu     sync.Mutex
	drafts map[string]entity.BookingDraft
	venues VenueRepository
	log    *zap.Logger
}

func NewDraftRepository(venues VenueRepository, log *zap.Logger) DraftRepository {
	return &draftRepository{
		drafts: make(map[string]entity.BookingDraft),
		venues: venues,
		log:    log.With(zap.String("repository", "draft")),
	}
}

func (r *draftRepository) Get(ctx context.Context, sessionID string) entity.BookingDraft {
	r.mu.Lock()
	defer r.mu.Unlock()

	draft, ok := r.drafts[sessionID]
	if !ok {
		return entity.EmptyDraft()
	}
	return draft
}

func (r *draftRepository) Merge(ctx context.Context, sessionID string, patch entity.DraftPatch) entity.BookingDraft {
	r.mu.Lock()
	defer r.mu.Unlock()

	draft, ok := r.drafts[sessionID]
	if !ok {
		draft = entity.EmptyDraft()
	}

	repriced := false
	if patch.VenueID != nil {
		draft.VenueID = patch.VenueID
		repriced = true
	}
	if patch.CheckIn != nil {
		draft.CheckIn = patch.CheckIn
		repriced = true
	}
	if patch.CheckOut != nil {
		draft.CheckOut = patch.CheckOut
		repriced = true
	}
	if patch.TimeSlot != nil {
		draft.TimeSlot = *patch.TimeSlot
	}
	if patch.Guests != nil {
		draft.Guests = *patch.Guests
		repriced = true
	}
	if patch.Seating != nil {
		draft.Seating = *patch.Seating
	}

	if repriced {
		draft.TotalPrice = r.reprice(ctx, draft)
	}

	r.drafts[sessionID] = draft
	return draft
}

func (r *draftRepository) Reset(ctx context.Context, sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.drafts[sessionID] = entity.EmptyDraft()
}

// reprice recomputes the draft total from its current pricing inputs.
// Without a selected venue there is nothing to price. Without dates the
// minimum one-night stay is assumed.
func (r *draftRepository) reprice(ctx context.Context, draft entity.BookingDraft) float64 {
	if draft.VenueID == nil {
		return 0
	}

	venue := r.venues.FindByID(ctx, *draft.VenueID)
	if venue == nil {
		return 0
	}

	nights := 1
	if draft.CheckIn != nil && draft.CheckOut != nil {
		nights = pricing.Nights(*draft.CheckIn, *draft.CheckOut)
	}

	return pricing.BaseTotal(venue.PricePerPerson, draft.Guests, nights)
}
