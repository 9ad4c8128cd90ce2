package bookings

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrInvalidSectionRow = errors.New("invalid section or row")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidBooking    = errors.New("invalid booking data")
)

// InsufficientSeatsError rejects a booking whose quantity exceeds the row's
// remaining capacity. Available carries the actual count so callers can
// adjust and retry.
type InsufficientSeatsError struct {
	Available int
}

func (e *InsufficientSeatsError) Error() string {
	return fmt.Sprintf("not enough seats available: %d left", e.Available)
}

// SeatConflictError rejects a seat-numbered booking whose first conflicting
// seat is already claimed by another booking.
type SeatConflictError struct {
	Seat int
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seat %d is already booked", e.Seat)
}

// InvalidSeatNumberError rejects a seat number outside [1, totalSeats].
type InvalidSeatNumberError struct {
	Seat       int
	TotalSeats int
}

func (e *InvalidSeatNumberError) Error() string {
	return fmt.Sprintf("invalid seat number %d: row has %d seats", e.Seat, e.TotalSeats)
}
