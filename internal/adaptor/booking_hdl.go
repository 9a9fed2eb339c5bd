package adaptor

import (
	"encoding/json"
	"net/http"

	"venue-booking/internal/dto/request"
	"venue-booking/internal/funnel"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// guard runs the stage's entry guard and writes the redirect response when
// the stage may not be entered. Returns false when the request is done.
func (h *BookingHandler) guard(w http.ResponseWriter, r *http.Request, stage funnel.Stage) (string, bool) {
	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Missing browsing session")
		return "", false
	}

	_, authenticated := utils.GetUserIDFromContext(r.Context())

	if redirect, ok := h.service.Guard(r.Context(), sessionID, stage, authenticated); !ok {
		utils.ResponseRedirect(w, "Missing prerequisite for "+stage.String(), redirect)
		return "", false
	}

	return sessionID, true
}

// GetDraft handles GET /api/booking
func (h *BookingHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.guard(w, r, funnel.StageScheduling)
	if !ok {
		return
	}

	draft, err := h.service.GetDraft(r.Context(), sessionID)
	if err != nil {
		handleServiceError(w, h.log, err, "get draft")
		return
	}

	utils.ResponseSuccess(w, "success", draft)
}

// SelectVenue handles POST /api/booking/select
func (h *BookingHandler) SelectVenue(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Missing browsing session")
		return
	}

	var req request.SelectVenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	draft, err := h.service.SelectVenue(r.Context(), sessionID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "select venue")
		return
	}

	utils.ResponseSuccess(w, "success", draft)
}

// UpdateDraft handles PATCH /api/booking
func (h *BookingHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.guard(w, r, funnel.StageScheduling)
	if !ok {
		return
	}

	var req request.UpdateDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	draft, err := h.service.UpdateDraft(r.Context(), sessionID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update draft")
		return
	}

	utils.ResponseSuccess(w, "success", draft)
}

// SubmitSchedule handles POST /api/booking
func (h *BookingHandler) SubmitSchedule(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.guard(w, r, funnel.StageScheduling)
	if !ok {
		return
	}

	var req request.ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	draft, err := h.service.SubmitSchedule(r.Context(), sessionID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit schedule")
		return
	}

	utils.ResponseSuccess(w, "success", draft)
}

// ResetDraft handles DELETE /api/booking
func (h *BookingHandler) ResetDraft(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Missing browsing session")
		return
	}

	if err := h.service.ResetDraft(r.Context(), sessionID); err != nil {
		handleServiceError(w, h.log, err, "reset draft")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetCheckout handles GET /api/checkout
func (h *BookingHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.guard(w, r, funnel.StageCheckout)
	if !ok {
		return
	}

	quote, err := h.service.Quote(r.Context(), sessionID)
	if err != nil {
		handleServiceError(w, h.log, err, "get checkout quote")
		return
	}

	utils.ResponseSuccess(w, "success", quote)
}

// PostCheckout handles POST /api/checkout
func (h *BookingHandler) PostCheckout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.guard(w, r, funnel.StageCheckout)
	if !ok {
		return
	}

	// The checkout guard already required authentication
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	booking, err := h.service.Checkout(r.Context(), sessionID, userID)
	if err != nil {
		handleServiceError(w, h.log, err, "checkout")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetBookingByRef handles GET /api/bookings/{ref} (protected)
func (h *BookingHandler) GetBookingByRef(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	ref := chi.URLParam(r, "ref")
	if ref == "" {
		utils.ResponseBadRequest(w, "Booking reference is required", nil)
		return
	}

	booking, err := h.service.GetBookingByRef(r.Context(), ref, userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}
