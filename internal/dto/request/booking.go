package request

type SelectVenueRequest struct {
	VenueID string `json:"venue_id" validate:"required,uuid"`
}

// UpdateDraftRequest is a partial update: nil fields are omitted and the
// draft keeps their prior values. Dates use YYYY-MM-DD.
type UpdateDraftRequest struct {
	CheckIn  *string `json:"check_in,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CheckOut *string `json:"check_out,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TimeSlot *string `json:"time_slot,omitempty"`
	Guests   *int    `json:"guests,omitempty" validate:"omitempty,gte=1"`
	Seating  *string `json:"seating,omitempty" validate:"omitempty,oneof=indoor outdoor window bar any"`
}

// ScheduleRequest is the scheduling page's submit: all funnel-required
// fields at once.
type ScheduleRequest struct {
	CheckIn  string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
	TimeSlot string `json:"time_slot" validate:"required"`
	Guests   int    `json:"guests" validate:"required,gte=1"`
	Seating  string `json:"seating,omitempty" validate:"omitempty,oneof=indoor outdoor window bar any"`
}
