package response

type AdminDashboardResponse struct {
	VenueCount   int               `json:"venue_count"`
	BookingCount int               `json:"booking_count"`
	Revenue      float64           `json:"revenue"`
	Recent       []BookingResponse `json:"recent_bookings"`
}

type ManagerDashboardResponse struct {
	Venues   []VenueResponse   `json:"venues"`
	Bookings []BookingResponse `json:"bookings"`
}
