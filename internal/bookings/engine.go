package bookings

import "sort"

// ClaimedSeats folds the seat numbers identified by the given bookings into
// a set. Count-based bookings contribute nothing here; they only affect the
// aggregate count.
func ClaimedSeats(existing []Booking) map[int]struct{} {
	claimed := make(map[int]struct{})
	for i := range existing {
		for _, seat := range existing[i].SeatNumbers {
			claimed[seat] = struct{}{}
		}
	}
	return claimed
}

// BookedCount is the total number of seats consumed in a row across both
// accounting modes.
func BookedCount(existing []Booking) int {
	total := 0
	for i := range existing {
		total += existing[i].SeatsConsumed()
	}
	return total
}

// PlanReservation decides whether a reservation fits into a row given its
// current bookings, and resolves the seat numbers to store. It is a pure
// function; the caller is responsible for running it under the row's
// serialization point so that concurrent attempts observe each other.
//
// Seat-numbered requests fail on the first requested seat that is out of
// range or already claimed, then on aggregate capacity (a row mixing both
// modes must still never exceed totalSeats). Count-based requests fail on
// aggregate capacity alone. The returned seat numbers are sorted ascending,
// or nil for a count-based reservation.
func PlanReservation(totalSeats int, existing []Booking, quantity int, seatNumbers []int) ([]int, error) {
	available := totalSeats - BookedCount(existing)

	if len(seatNumbers) == 0 {
		if available < quantity {
			return nil, &InsufficientSeatsError{Available: available}
		}
		return nil, nil
	}

	claimed := ClaimedSeats(existing)
	for _, seat := range seatNumbers {
		if seat < 1 || seat > totalSeats {
			return nil, &InvalidSeatNumberError{Seat: seat, TotalSeats: totalSeats}
		}
		if _, taken := claimed[seat]; taken {
			return nil, &SeatConflictError{Seat: seat}
		}
	}
	if available < quantity {
		return nil, &InsufficientSeatsError{Available: available}
	}

	planned := make([]int, len(seatNumbers))
	copy(planned, seatNumbers)
	sort.Ints(planned)
	return planned, nil
}
