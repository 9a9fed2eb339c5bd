package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
)

// BookingDraft is the single in-progress booking for one browsing session.
// All mutation goes through the draft store's merge operation.
type BookingDraft struct {
	VenueID    *uuid.UUID
	CheckIn    *time.Time
	CheckOut   *time.Time
	TimeSlot   string
	Guests     int
	Seating    string
	TotalPrice float64
}

// EmptyDraft is the default a session starts from and returns to on reset.
func EmptyDraft() BookingDraft {
	return BookingDraft{Guests: 1}
}

// DraftPatch carries a partial update. Nil fields are omitted and must be
// preserved by the merge, never defaulted or cleared.
type DraftPatch struct {
	VenueID  *uuid.UUID
	CheckIn  *time.Time
	CheckOut *time.Time
	TimeSlot *string
	Guests   *int
	Seating  *string
}

// ConfirmedBooking is an immutable snapshot taken at checkout submission.
type ConfirmedBooking struct {
	Ref           string
	UserID        uuid.UUID
	VenueID       uuid.UUID
	VenueName     string
	VenueLocation string
	CheckIn       time.Time
	CheckOut      time.Time
	TimeSlot      string
	Guests        int
	Seating       string
	BaseTotal     float64
	ServiceFee    float64
	Tax           float64
	FinalTotal    float64
	Status        BookingStatus
	CreatedAt     time.Time
}
