// Package funnel models the fixed linear booking flow:
// selection -> scheduling -> checkout -> confirmation.
//
// Guards and transitions run exactly once per navigation request. An entry
// guard answers "may this stage be shown, and if not, where does the client
// go back to"; a transition answers "may the flow advance, and if not, why".
package funnel

import (
	"fmt"

	"venue-booking/internal/data/entity"
)

type Stage int

const (
	StageSelection Stage = iota
	StageScheduling
	StageCheckout
	StageConfirmation
)

func (s Stage) String() string {
	switch s {
	case StageSelection:
		return "selection"
	case StageScheduling:
		return "scheduling"
	case StageCheckout:
		return "checkout"
	case StageConfirmation:
		return "confirmation"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Redirect targets for failed entry guards.
const (
	PathCatalog    = "/api/venues"
	PathScheduling = "/api/booking"
	PathLogin      = "/api/login"
)

// Rejection blocks a transition. No state is written when one is returned.
type Rejection struct {
	Field  string
	Reason string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Field, r.Reason)
}

// GuardEntry checks a stage's prerequisites against the current draft.
// It returns ok=true when the stage may be entered, otherwise the path the
// client must be sent back to.
func GuardEntry(stage Stage, draft entity.BookingDraft, authenticated bool) (redirect string, ok bool) {
	switch stage {
	case StageSelection:
		return "", true

	case StageScheduling:
		if draft.VenueID == nil {
			return PathCatalog, false
		}
		return "", true

	case StageCheckout:
		if draft.VenueID == nil {
			return PathCatalog, false
		}
		if draft.CheckIn == nil || draft.CheckOut == nil {
			return PathScheduling, false
		}
		if !authenticated {
			return PathLogin, false
		}
		return "", true

	case StageConfirmation:
		return "", true

	default:
		return PathCatalog, false
	}
}

// Transition validates the fields a stage must have before the flow may
// advance, and returns the next stage or a rejection.
func Transition(stage Stage, draft entity.BookingDraft) (Stage, *Rejection) {
	switch stage {
	case StageSelection:
		if draft.VenueID == nil {
			return stage, &Rejection{Field: "venue", Reason: "a venue must be selected"}
		}
		return StageScheduling, nil

	case StageScheduling:
		if draft.CheckIn == nil || draft.CheckOut == nil {
			return stage, &Rejection{Field: "dates", Reason: "check-in and check-out dates are required"}
		}
		if !draft.CheckIn.Before(*draft.CheckOut) {
			return stage, &Rejection{Field: "dates", Reason: "check-out must be after check-in"}
		}
		if draft.TimeSlot == "" {
			return stage, &Rejection{Field: "time_slot", Reason: "a time slot must be chosen"}
		}
		if draft.Guests < 1 {
			return stage, &Rejection{Field: "guests", Reason: "at least one guest is required"}
		}
		return StageCheckout, nil

	case StageCheckout:
		if draft.VenueID == nil {
			return stage, &Rejection{Field: "venue", Reason: "a venue must be selected"}
		}
		if draft.CheckIn == nil || draft.CheckOut == nil {
			return stage, &Rejection{Field: "dates", Reason: "check-in and check-out dates are required"}
		}
		if !draft.CheckIn.Before(*draft.CheckOut) {
			return stage, &Rejection{Field: "dates", Reason: "check-out must be after check-in"}
		}
		if draft.TimeSlot == "" {
			return stage, &Rejection{Field: "time_slot", Reason: "a time slot must be chosen"}
		}
		return StageConfirmation, nil

	case StageConfirmation:
		return stage, &Rejection{Field: "stage", Reason: "the funnel is already complete"}

	default:
		return stage, &Rejection{Field: "stage", Reason: "unknown funnel stage"}
	}
}
