package repository_test

import (
	"context"
	"testing"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDraftRepo(t *testing.T) (repository.DraftRepository, entity.Venue) {
	t.Helper()

	venues := repository.SeedVenues()
	require.NotEmpty(t, venues)

	venueRepo := repository.NewVenueRepository(venues, zap.NewNop())
	return repository.NewDraftRepository(venueRepo, zap.NewNop()), venues[0]
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestGet_ReturnsEmptyDefault(t *testing.T) {
	repo, _ := newDraftRepo(t)

	draft := repo.Get(context.Background(), "sess-1")

	assert.Nil(t, draft.VenueID)
	assert.Nil(t, draft.CheckIn)
	assert.Equal(t, 1, draft.Guests)
	assert.Zero(t, draft.TotalPrice)
}

func TestMerge_OmittedFieldsArePreserved(t *testing.T) {
	repo, venue := newDraftRepo(t)
	ctx := context.Background()

	repo.Merge(ctx, "sess-1", entity.DraftPatch{VenueID: &venue.ID})
	repo.Merge(ctx, "sess-1", entity.DraftPatch{TimeSlot: strPtr("19:00")})
	repo.Merge(ctx, "sess-1", entity.DraftPatch{Guests: intPtr(4)})

	draft := repo.Get(ctx, "sess-1")
	require.NotNil(t, draft.VenueID)
	assert.Equal(t, venue.ID, *draft.VenueID)
	assert.Equal(t, "19:00", draft.TimeSlot)
	assert.Equal(t, 4, draft.Guests)
}

func TestMerge_RecomputesTotalOnPricingInputs(t *testing.T) {
	repo, venue := newDraftRepo(t)
	ctx := context.Background()

	checkIn := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC)

	draft := repo.Merge(ctx, "sess-1", entity.DraftPatch{
		VenueID:  &venue.ID,
		CheckIn:  &checkIn,
		CheckOut: &checkOut,
		Guests:   intPtr(2),
	})

	// price x guests x nights
	assert.Equal(t, venue.PricePerPerson*2*2, draft.TotalPrice)

	draft = repo.Merge(ctx, "sess-1", entity.DraftPatch{Guests: intPtr(3)})
	assert.Equal(t, venue.PricePerPerson*3*2, draft.TotalPrice)
}

func TestMerge_NonPricingFieldKeepsTotal(t *testing.T) {
	repo, venue := newDraftRepo(t)
	ctx := context.Background()

	before := repo.Merge(ctx, "sess-1", entity.DraftPatch{VenueID: &venue.ID, Guests: intPtr(2)})
	after := repo.Merge(ctx, "sess-1", entity.DraftPatch{Seating: strPtr("window")})

	assert.Equal(t, before.TotalPrice, after.TotalPrice)
	assert.Equal(t, "window", after.Seating)
}

func TestMerge_NoVenueMeansZeroTotal(t *testing.T) {
	repo, _ := newDraftRepo(t)

	draft := repo.Merge(context.Background(), "sess-1", entity.DraftPatch{Guests: intPtr(5)})

	assert.Zero(t, draft.TotalPrice)
}

func TestMerge_SessionsAreIndependent(t *testing.T) {
	repo, venue := newDraftRepo(t)
	ctx := context.Background()

	repo.Merge(ctx, "sess-1", entity.DraftPatch{VenueID: &venue.ID})

	other := repo.Get(ctx, "sess-2")
	assert.Nil(t, other.VenueID)
}

func TestReset_RestoresEmptyDefault(t *testing.T) {
	repo, venue := newDraftRepo(t)
	ctx := context.Background()

	repo.Merge(ctx, "sess-1", entity.DraftPatch{VenueID: &venue.ID, Guests: intPtr(6)})
	repo.Reset(ctx, "sess-1")

	draft := repo.Get(ctx, "sess-1")
	assert.Nil(t, draft.VenueID)
	assert.Equal(t, 1, draft.Guests)
	assert.Zero(t, draft.TotalPrice)
}
