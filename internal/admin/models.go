package admin

// Stats is the aggregate admin view folded over every booking record.
type Stats struct {
	TotalBookings   int            `json:"totalBookings"`
	TotalTickets    int            `json:"totalTickets"`
	Revenue         float64        `json:"revenue"`
	BookingsByEvent map[string]int `json:"bookingsByEvent"`
}
