package bookings

import (
	"time"

	"github.com/google/uuid"
)

// Mode distinguishes the two accounting variants a booking can carry.
type Mode string

const (
	// ModeCounted reserves a quantity of seats without identifying which.
	ModeCounted Mode = "COUNTED"
	// ModeSeatIdentified claims specific, individually numbered seats.
	ModeSeatIdentified Mode = "SEAT_IDENTIFIED"
)

// Booking is an immutable purchase record against one row of an event's
// layout. It is created atomically by the booking engine and never updated
// or deleted afterwards (only a full admin reset removes bookings).
type Booking struct {
	ID      uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EventID uuid.UUID `gorm:"type:uuid;index:idx_booking_row;not null" json:"event_id"`
	Section string    `gorm:"column:section_name;size:255;index:idx_booking_row;not null" json:"section"`
	Row     string    `gorm:"column:row_name;size:255;index:idx_booking_row;not null" json:"row"`

	Quantity int `gorm:"not null;check:quantity > 0" json:"quantity"`

	// SeatNumbers holds the claimed seat numbers sorted ascending, or is
	// empty for a count-based booking.
	SeatNumbers SeatNumbers `gorm:"type:jsonb;serializer:json" json:"seat_numbers"`

	GroupDiscount bool `gorm:"not null;default:false" json:"group_discount"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// SeatNumbers is stored as a jsonb array.
type SeatNumbers []int

// TableName specifies the table name for GORM
func (Booking) TableName() string {
	return "bookings"
}

// BookingMode reports which accounting variant the booking uses.
func (b *Booking) BookingMode() Mode {
	if len(b.SeatNumbers) > 0 {
		return ModeSeatIdentified
	}
	return ModeCounted
}

// SeatsConsumed is the number of seats this booking removes from a row's
// availability: the identified seat count when seats are numbered, the raw
// quantity otherwise. The two modes never double-count.
func (b *Booking) SeatsConsumed() int {
	if b.BookingMode() == ModeSeatIdentified {
		return len(b.SeatNumbers)
	}
	return b.Quantity
}
