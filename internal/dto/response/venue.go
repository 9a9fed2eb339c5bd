package response

import (
	"venue-booking/internal/data/entity"
)

type VenueResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Location       string  `json:"location"`
	Rating         float64 `json:"rating"`
	PricePerPerson float64 `json:"price_per_person"`
	Description    string  `json:"description,omitempty"`
	ImageURL       string  `json:"image_url,omitempty"`
	Category       string  `json:"category"`
	Featured       bool    `json:"featured"`
}

func VenueToResponse(v entity.Venue) VenueResponse {
	return VenueResponse{
		ID:             v.ID.String(),
		Name:           v.Name,
		Location:       v.Location,
		Rating:         v.Rating,
		PricePerPerson: v.PricePerPerson,
		Description:    v.Description,
		ImageURL:       v.ImageURL,
		Category:       v.Category,
		Featured:       v.Featured,
	}
}

// ExploreResponse echoes the search context alongside the matching venues.
type ExploreResponse struct {
	Location string          `json:"location,omitempty"`
	Date     string          `json:"date,omitempty"`
	Time     string          `json:"time,omitempty"`
	Guests   int             `json:"guests,omitempty"`
	Venues   []VenueResponse `json:"venues"`
}
