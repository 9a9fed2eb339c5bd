package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

const dateLayout = "2006-01-02"

type DraftResponse struct {
	Venue      *VenueResponse `json:"venue,omitempty"`
	CheckIn    string         `json:"check_in,omitempty"`
	CheckOut   string         `json:"check_out,omitempty"`
	TimeSlot   string         `json:"time_slot,omitempty"`
	Guests     int            `json:"guests"`
	Seating    string         `json:"seating,omitempty"`
	TotalPrice float64        `json:"total_price"`
}

func DraftToResponse(draft entity.BookingDraft, venue *entity.Venue) DraftResponse {
	resp := DraftResponse{
		TimeSlot:   draft.TimeSlot,
		Guests:     draft.Guests,
		Seating:    draft.Seating,
		TotalPrice: draft.TotalPrice,
	}

	if venue != nil {
		v := VenueToResponse(*venue)
		resp.Venue = &v
	}
	if draft.CheckIn != nil {
		resp.CheckIn = draft.CheckIn.Format(dateLayout)
	}
	if draft.CheckOut != nil {
		resp.CheckOut = draft.CheckOut.Format(dateLayout)
	}

	return resp
}

// QuoteResponse is the checkout summary: the draft plus the fee breakdown.
type QuoteResponse struct {
	Draft      DraftResponse `json:"draft"`
	Nights     int           `json:"nights"`
	BaseTotal  float64       `json:"base_total"`
	ServiceFee float64       `json:"service_fee"`
	Tax        float64       `json:"tax"`
	FinalTotal float64       `json:"final_total"`
}

type BookingResponse struct {
	Ref           string    `json:"ref"`
	VenueID       string    `json:"venue_id"`
	VenueName     string    `json:"venue_name"`
	VenueLocation string    `json:"venue_location"`
	CheckIn       string    `json:"check_in"`
	CheckOut      string    `json:"check_out"`
	TimeSlot      string    `json:"time_slot"`
	Guests        int       `json:"guests"`
	Seating       string    `json:"seating,omitempty"`
	BaseTotal     float64   `json:"base_total"`
	ServiceFee    float64   `json:"service_fee"`
	Tax           float64   `json:"tax"`
	FinalTotal    float64   `json:"final_total"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func BookingToResponse(b entity.ConfirmedBooking) BookingResponse {
	return BookingResponse{
		Ref:           b.Ref,
		VenueID:       b.VenueID.String(),
		VenueName:     b.VenueName,
		VenueLocation: b.VenueLocation,
		CheckIn:       b.CheckIn.Format(dateLayout),
		CheckOut:      b.CheckOut.Format(dateLayout),
		TimeSlot:      b.TimeSlot,
		Guests:        b.Guests,
		Seating:       b.Seating,
		BaseTotal:     b.BaseTotal,
		ServiceFee:    b.ServiceFee,
		Tax:           b.Tax,
		FinalTotal:    b.FinalTotal,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
	}
}

// ProfileResponse is the profile page; Tab selects which section is filled.
type ProfileResponse struct {
	Tab      string            `json:"tab"`
	Account  *UserResponse     `json:"account,omitempty"`
	Bookings []BookingResponse `json:"bookings,omitempty"`
}
