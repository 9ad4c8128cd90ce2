package bookings

import "time"

// BookingSummary is returned on a successful purchase.
type BookingSummary struct {
	BookingID     string    `json:"bookingId"`
	EventID       string    `json:"eventId"`
	Section       string    `json:"section"`
	Row           string    `json:"row"`
	Quantity      int       `json:"quantity"`
	SeatNumbers   []int     `json:"seatNumbers"`
	GroupDiscount bool      `json:"groupDiscount"`
	BookedAt      time.Time `json:"bookedAt"`
}

// BookingDetail is the single-booking read shape with the owning event's
// name and date denormalized onto it.
type BookingDetail struct {
	ID            string      `json:"id"`
	EventID       string      `json:"eventId"`
	Section       string      `json:"section"`
	Row           string      `json:"row"`
	Quantity      int         `json:"quantity"`
	SeatNumbers   SeatNumbers `json:"seatNumbers"`
	GroupDiscount bool        `json:"groupDiscount"`
	BookedAt      time.Time   `json:"bookedAt"`
	EventName     string      `json:"eventName"`
	EventDate     time.Time   `json:"eventDate"`
}
