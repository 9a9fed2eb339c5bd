package usecase_test

import (
	"context"
	"strings"
	"testing"

	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/funnel"
	"venue-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingService(t *testing.T) (usecase.BookingService, *repository.Repository) {
	t.Helper()

	repos, err := repository.NewRepository(zap.NewNop())
	require.NoError(t, err)

	return usecase.NewBookingService(repos, zap.NewNop()), repos
}

func buildFullDraft(t *testing.T, svc usecase.BookingService, sessionID string) {
	t.Helper()
	ctx := context.Background()

	venue := repository.SeedVenues()[0]
	_, err := svc.SelectVenue(ctx, sessionID, &request.SelectVenueRequest{VenueID: venue.ID.String()})
	require.NoError(t, err)

	_, err = svc.SubmitSchedule(ctx, sessionID, &request.ScheduleRequest{
		CheckIn:  "2026-05-01",
		CheckOut: "2026-05-03",
		TimeSlot: "19:00",
		Guests:   2,
	})
	require.NoError(t, err)
}

func TestSelectVenue_UnknownVenue(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.SelectVenue(context.Background(), "sess-1", &request.SelectVenueRequest{
		VenueID: uuid.New().String(),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSubmitSchedule_RejectsBackwardDates(t *testing.T) {
	svc, _ := newBookingService(t)
	ctx := context.Background()

	venue := repository.SeedVenues()[0]
	_, err := svc.SelectVenue(ctx, "sess-1", &request.SelectVenueRequest{VenueID: venue.ID.String()})
	require.NoError(t, err)

	_, err = svc.SubmitSchedule(ctx, "sess-1", &request.ScheduleRequest{
		CheckIn:  "2026-05-03",
		CheckOut: "2026-05-01",
		TimeSlot: "19:00",
		Guests:   2,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "check-out must be after check-in")

	// Rejected transition writes nothing
	draft, err := svc.GetDraft(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, draft.CheckIn)
}

func TestSubmitSchedule_ComputesDraftTotal(t *testing.T) {
	svc, _ := newBookingService(t)

	buildFullDraft(t, svc, "sess-1")

	draft, err := svc.GetDraft(context.Background(), "sess-1")
	require.NoError(t, err)

	venue := repository.SeedVenues()[0]
	// 2 guests x 2 nights
	assert.Equal(t, venue.PricePerPerson*2*2, draft.TotalPrice)
}

func TestGuard_CheckoutRedirects(t *testing.T) {
	svc, _ := newBookingService(t)
	ctx := context.Background()

	// Empty draft: back to the catalog
	redirect, ok := svc.Guard(ctx, "sess-1", funnel.StageCheckout, true)
	assert.False(t, ok)
	assert.Equal(t, funnel.PathCatalog, redirect)

	// Full draft but anonymous: to the login page
	buildFullDraft(t, svc, "sess-1")
	redirect, ok = svc.Guard(ctx, "sess-1", funnel.StageCheckout, false)
	assert.False(t, ok)
	assert.Equal(t, funnel.PathLogin, redirect)

	// Full draft and authenticated
	_, ok = svc.Guard(ctx, "sess-1", funnel.StageCheckout, true)
	assert.True(t, ok)
}

func TestQuote_FeeBreakdown(t *testing.T) {
	svc, _ := newBookingService(t)
	ctx := context.Background()

	buildFullDraft(t, svc, "sess-1")

	quote, err := svc.Quote(ctx, "sess-1")
	require.NoError(t, err)

	venue := repository.SeedVenues()[0]
	base := venue.PricePerPerson * 2 * 2

	assert.Equal(t, 2, quote.Nights)
	assert.Equal(t, base, quote.BaseTotal)
	assert.InDelta(t, base*0.05, quote.ServiceFee, 1e-9)
	assert.InDelta(t, base*0.10, quote.Tax, 1e-9)
	assert.InDelta(t, base*1.15, quote.FinalTotal, 1e-9)
}

func TestCheckout_AppendsSnapshotAndResetsDraft(t *testing.T) {
	svc, repos := newBookingService(t)
	ctx := context.Background()

	buildFullDraft(t, svc, "sess-1")

	userID := uuid.New()
	booking, err := svc.Checkout(ctx, "sess-1", userID)
	require.NoError(t, err)

	venue := repository.SeedVenues()[0]
	base := venue.PricePerPerson * 2 * 2

	assert.True(t, strings.HasPrefix(booking.Ref, "BOOK-"))
	assert.Equal(t, venue.ID.String(), booking.VenueID)
	assert.Equal(t, venue.Name, booking.VenueName)
	assert.Equal(t, "2026-05-01", booking.CheckIn)
	assert.Equal(t, "2026-05-03", booking.CheckOut)
	assert.Equal(t, 2, booking.Guests)
	assert.InDelta(t, base*1.15, booking.FinalTotal, 1e-9)
	assert.Equal(t, "confirmed", booking.Status)

	// Exactly one confirmed booking appended
	assert.Equal(t, 1, repos.Booking.Count())
	stored := repos.Booking.FindByRef(ctx, booking.Ref)
	require.NotNil(t, stored)
	assert.Equal(t, userID, stored.UserID)

	// A completed checkout starts the next booking from a clean draft
	draft, err := svc.GetDraft(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, draft.Venue)
	assert.Zero(t, draft.TotalPrice)
}

func TestCheckout_RefusesDatesInvertedAfterSchedule(t *testing.T) {
	svc, repos := newBookingService(t)
	ctx := context.Background()

	buildFullDraft(t, svc, "sess-1")

	// A partial update can move check-out before check-in after the
	// schedule was accepted; checkout must catch it
	before := "2026-04-01"
	_, err := svc.UpdateDraft(ctx, "sess-1", &request.UpdateDraftRequest{CheckOut: &before})
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, "sess-1", uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check-out must be after check-in")
	assert.Zero(t, repos.Booking.Count())

	_, err = svc.Quote(ctx, "sess-1")
	require.Error(t, err)
}

func TestCheckout_IncompleteDraftRefused(t *testing.T) {
	svc, repos := newBookingService(t)

	_, err := svc.Checkout(context.Background(), "sess-1", uuid.New())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid checkout state")
	assert.Zero(t, repos.Booking.Count())
}

func TestGetBookingByRef_OwnerOnly(t *testing.T) {
	svc, _ := newBookingService(t)
	ctx := context.Background()

	buildFullDraft(t, svc, "sess-1")

	owner := uuid.New()
	booking, err := svc.Checkout(ctx, "sess-1", owner)
	require.NoError(t, err)

	got, err := svc.GetBookingByRef(ctx, booking.Ref, owner)
	require.NoError(t, err)
	assert.Equal(t, booking.Ref, got.Ref)

	_, err = svc.GetBookingByRef(ctx, booking.Ref, uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}
