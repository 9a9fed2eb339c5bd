package usecase

import (
	"context"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/internal/funnel"
	"venue-booking/internal/pricing"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type BookingService interface {
	// Funnel guard: may this stage be entered with the session's draft?
	Guard(ctx context.Context, sessionID string, stage funnel.Stage, authenticated bool) (redirect string, ok bool)

	// Draft operations
	GetDraft(ctx context.Context, sessionID string) (*response.DraftResponse, error)
	SelectVenue(ctx context.Context, sessionID string, req *request.SelectVenueRequest) (*response.DraftResponse, error)
	UpdateDraft(ctx context.Context, sessionID string, req *request.UpdateDraftRequest) (*response.DraftResponse, error)
	SubmitSchedule(ctx context.Context, sessionID string, req *request.ScheduleRequest) (*response.DraftResponse, error)
	ResetDraft(ctx context.Context, sessionID string) error

	// Checkout
	Quote(ctx context.Context, sessionID string) (*response.QuoteResponse, error)
	Checkout(ctx context.Context, sessionID string, userID uuid.UUID) (*response.BookingResponse, error)

	// Confirmed bookings
	GetBookingByRef(ctx context.Context, ref string, userID uuid.UUID) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Guard(ctx context.Context, sessionID string, stage funnel.Stage, authenticated bool) (string, bool) {
	draft := s.repo.Draft.Get(ctx, sessionID)
	redirect, ok := funnel.GuardEntry(stage, draft, authenticated)
	if !ok {
		s.log.Info("Funnel entry refused",
			zap.String("stage", stage.String()),
			zap.String("redirect", redirect),
		)
	}
	return redirect, ok
}

func (s *bookingService) GetDraft(ctx context.Context, sessionID string) (*response.DraftResponse, error) {
	draft := s.repo.Draft.Get(ctx, sessionID)
	resp := s.draftResponse(ctx, draft)
	return &resp, nil
}

func (s *bookingService) SelectVenue(ctx context.Context, sessionID string, req *request.SelectVenueRequest) (*response.DraftResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Select venue validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	venueID, err := utils.ParseUUID(req.VenueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID format %s: %w", req.VenueID, err)
	}

	venue := s.repo.Venue.FindByID(ctx, venueID)
	if venue == nil {
		return nil, fmt.Errorf("venue %s not found", req.VenueID)
	}

	draft := s.repo.Draft.Merge(ctx, sessionID, entity.DraftPatch{VenueID: &venueID})

	s.log.Info("Venue selected",
		zap.String("venue_id", req.VenueID),
		zap.String("venue", venue.Name),
	)

	resp := s.draftResponse(ctx, draft)
	return &resp, nil
}

// UpdateDraft merges a partial update. Fields absent from the request keep
// their prior values.
func (s *bookingService) UpdateDraft(ctx context.Context, sessionID string, req *request.UpdateDraftRequest) (*response.DraftResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update draft validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	patch := entity.DraftPatch{
		TimeSlot: req.TimeSlot,
		Guests:   req.Guests,
		Seating:  req.Seating,
	}

	if req.CheckIn != nil {
		checkIn, err := time.Parse(dateLayout, *req.CheckIn)
		if err != nil {
			return nil, fmt.Errorf("invalid check-in date %s: %w", *req.CheckIn, err)
		}
		patch.CheckIn = &checkIn
	}
	if req.CheckOut != nil {
		checkOut, err := time.Parse(dateLayout, *req.CheckOut)
		if err != nil {
			return nil, fmt.Errorf("invalid check-out date %s: %w", *req.CheckOut, err)
		}
		patch.CheckOut = &checkOut
	}

	draft := s.repo.Draft.Merge(ctx, sessionID, patch)

	resp := s.draftResponse(ctx, draft)
	return &resp, nil
}

// SubmitSchedule is the scheduling page's exit transition: every required
// field is validated against the funnel rules before anything is written.
func (s *bookingService) SubmitSchedule(ctx context.Context, sessionID string, req *request.ScheduleRequest) (*response.DraftResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Schedule validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("invalid check-in date %s: %w", req.CheckIn, err)
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("invalid check-out date %s: %w", req.CheckOut, err)
	}

	// Dry-run the transition on a candidate before any state is written
	candidate := s.repo.Draft.Get(ctx, sessionID)
	candidate.CheckIn = &checkIn
	candidate.CheckOut = &checkOut
	candidate.TimeSlot = req.TimeSlot
	candidate.Guests = req.Guests

	if _, rej := funnel.Transition(funnel.StageScheduling, candidate); rej != nil {
		s.log.Warn("Schedule transition refused",
			zap.String("field", rej.Field),
			zap.String("reason", rej.Reason),
		)
		return nil, fmt.Errorf("invalid schedule: %s", rej.Reason)
	}

	patch := entity.DraftPatch{
		CheckIn:  &checkIn,
		CheckOut: &checkOut,
		TimeSlot: &req.TimeSlot,
		Guests:   &req.Guests,
	}
	if req.Seating != "" {
		patch.Seating = &req.Seating
	}

	draft := s.repo.Draft.Merge(ctx, sessionID, patch)

	s.log.Info("Schedule submitted",
		zap.String("check_in", req.CheckIn),
		zap.String("check_out", req.CheckOut),
		zap.Int("guests", req.Guests),
		zap.Float64("total_price", draft.TotalPrice),
	)

	resp := s.draftResponse(ctx, draft)
	return &resp, nil
}

func (s *bookingService) ResetDraft(ctx context.Context, sessionID string) error {
	s.repo.Draft.Reset(ctx, sessionID)
	s.log.Info("Draft reset")
	return nil
}

// Quote builds the checkout summary from the canonical price formula.
func (s *bookingService) Quote(ctx context.Context, sessionID string) (*response.QuoteResponse, error) {
	draft := s.repo.Draft.Get(ctx, sessionID)

	if _, rej := funnel.Transition(funnel.StageCheckout, draft); rej != nil {
		return nil, fmt.Errorf("invalid checkout state: %s", rej.Reason)
	}

	venue := s.repo.Venue.FindByID(ctx, *draft.VenueID)
	if venue == nil {
		return nil, fmt.Errorf("venue %s not found", draft.VenueID.String())
	}

	nights := pricing.Nights(*draft.CheckIn, *draft.CheckOut)
	base := pricing.BaseTotal(venue.PricePerPerson, draft.Guests, nights)
	quote := pricing.NewQuote(base)

	return &response.QuoteResponse{
		Draft:      s.draftResponse(ctx, draft),
		Nights:     nights,
		BaseTotal:  quote.BaseTotal,
		ServiceFee: quote.ServiceFee,
		Tax:        quote.Tax,
		FinalTotal: quote.FinalTotal,
	}, nil
}

// Checkout is the terminal transition: validate, snapshot, append, reset.
func (s *bookingService) Checkout(ctx context.Context, sessionID string, userID uuid.UUID) (*response.BookingResponse, error) {
	draft := s.repo.Draft.Get(ctx, sessionID)

	if _, rej := funnel.Transition(funnel.StageCheckout, draft); rej != nil {
		s.log.Warn("Checkout transition refused",
			zap.String("field", rej.Field),
			zap.String("reason", rej.Reason),
		)
		return nil, fmt.Errorf("invalid checkout state: %s", rej.Reason)
	}

	venue := s.repo.Venue.FindByID(ctx, *draft.VenueID)
	if venue == nil {
		return nil, fmt.Errorf("venue %s not found", draft.VenueID.String())
	}

	nights := pricing.Nights(*draft.CheckIn, *draft.CheckOut)
	base := pricing.BaseTotal(venue.PricePerPerson, draft.Guests, nights)
	quote := pricing.NewQuote(base)

	now := time.Now()
	booking := entity.ConfirmedBooking{
		Ref:           utils.GenerateBookingRef(now),
		UserID:        userID,
		VenueID:       venue.ID,
		VenueName:     venue.Name,
		VenueLocation: venue.Location,
		CheckIn:       *draft.CheckIn,
		CheckOut:      *draft.CheckOut,
		TimeSlot:      draft.TimeSlot,
		Guests:        draft.Guests,
		Seating:       draft.Seating,
		BaseTotal:     quote.BaseTotal,
		ServiceFee:    quote.ServiceFee,
		Tax:           quote.Tax,
		FinalTotal:    quote.FinalTotal,
		Status:        entity.BookingStatusConfirmed,
		CreatedAt:     now,
	}

	s.repo.Booking.Append(ctx, booking)

	// A completed checkout starts the next booking from a clean draft
	s.repo.Draft.Reset(ctx, sessionID)

	s.log.Info("Booking confirmed",
		zap.String("ref", booking.Ref),
		zap.String("user_id", userID.String()),
		zap.String("venue", venue.Name),
		zap.Int("guests", booking.Guests),
		zap.Float64("final_total", booking.FinalTotal),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBookingByRef(ctx context.Context, ref string, userID uuid.UUID) (*response.BookingResponse, error) {
	booking := s.repo.Booking.FindByRef(ctx, ref)
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", ref)
	}

	if booking.UserID != userID {
		return nil, fmt.Errorf("unauthorized to view this booking")
	}

	resp := response.BookingToResponse(*booking)
	return &resp, nil
}

func (s *bookingService) draftResponse(ctx context.Context, draft entity.BookingDraft) response.DraftResponse {
	var venue *entity.Venue
	if draft.VenueID != nil {
		venue = s.repo.Venue.FindByID(ctx, *draft.VenueID)
	}
	return response.DraftToResponse(draft, venue)
}
