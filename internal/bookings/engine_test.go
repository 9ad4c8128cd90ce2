package bookings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func counted(quantity int) Booking {
	return Booking{Quantity: quantity}
}

func identified(seats ...int) Booking {
	return Booking{Quantity: len(seats), SeatNumbers: seats}
}

func TestPlanReservation_CountedSuccess(t *testing.T) {
	planned, err := PlanReservation(10, []Booking{counted(3)}, 5, nil)

	assert.NoError(t, err)
	assert.Nil(t, planned)
}

func TestPlanReservation_CountedExactFit(t *testing.T) {
	planned, err := PlanReservation(10, []Booking{counted(6)}, 4, nil)

	assert.NoError(t, err)
	assert.Nil(t, planned)
}

func TestPlanReservation_CountedInsufficient(t *testing.T) {
	_, err := PlanReservation(10, []Booking{counted(8)}, 3, nil)

	var insufficient *InsufficientSeatsError
	assert.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 2, insufficient.Available)
}

func TestPlanReservation_CountedFullRow(t *testing.T) {
	_, err := PlanReservation(5, []Booking{counted(5)}, 1, nil)

	var insufficient *InsufficientSeatsError
	assert.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 0, insufficient.Available)
}

func TestPlanReservation_IdentifiedSuccess(t *testing.T) {
	planned, err := PlanReservation(10, nil, 3, []int{7, 2, 5})

	assert.NoError(t, err)
	assert.Equal(t, []int{2, 5, 7}, planned)
}

func TestPlanReservation_IdentifiedDoesNotMutateInput(t *testing.T) {
	requested := []int{7, 2, 5}
	_, err := PlanReservation(10, nil, 3, requested)

	assert.NoError(t, err)
	assert.Equal(t, []int{7, 2, 5}, requested)
}

func TestPlanReservation_SeatOutOfRange(t *testing.T) {
	_, err := PlanReservation(10, nil, 2, []int{3, 11})

	var badSeat *InvalidSeatNumberError
	assert.ErrorAs(t, err, &badSeat)
	assert.Equal(t, 11, badSeat.Seat)
	assert.Equal(t, 10, badSeat.TotalSeats)
}

func TestPlanReservation_SeatZeroRejected(t *testing.T) {
	_, err := PlanReservation(10, nil, 1, []int{0})

	var badSeat *InvalidSeatNumberError
	assert.ErrorAs(t, err, &badSeat)
	assert.Equal(t, 0, badSeat.Seat)
}

func TestPlanReservation_SeatConflict(t *testing.T) {
	existing := []Booking{identified(1, 2, 3)}

	_, err := PlanReservation(10, existing, 2, []int{4, 2})

	var conflict *SeatConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, 2, conflict.Seat)
}

func TestPlanReservation_ConflictReportedBeforeCapacity(t *testing.T) {
	// Row is full AND seat 1 is taken; the conflict wins because the seat
	// checks run before the aggregate check.
	existing := []Booking{identified(1, 2), counted(8)}

	_, err := PlanReservation(10, existing, 1, []int{1})

	var conflict *SeatConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestPlanReservation_MixedModesShareCapacity(t *testing.T) {
	// 6 of 10 seats consumed by a counted booking. Seats 7-10 are free as
	// identifiers but only 4 seats remain in aggregate, so claiming 5
	// specific seats must fail even though none of them conflict.
	existing := []Booking{counted(6)}

	_, err := PlanReservation(10, existing, 5, []int{1, 2, 3, 4, 5})

	var insufficient *InsufficientSeatsError
	assert.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 4, insufficient.Available)
}

func TestPlanReservation_IdentifiedFitsAroundCounted(t *testing.T) {
	existing := []Booking{counted(6), identified(1)}

	planned, err := PlanReservation(10, existing, 3, []int{2, 3, 4})

	assert.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, planned)
}

func TestBookedCount_MixedModes(t *testing.T) {
	existing := []Booking{counted(3), identified(5, 6), counted(1)}

	assert.Equal(t, 6, BookedCount(existing))
}

func TestClaimedSeats_IgnoresCountedBookings(t *testing.T) {
	existing := []Booking{counted(4), identified(2, 9)}

	claimed := ClaimedSeats(existing)

	assert.Len(t, claimed, 2)
	assert.Contains(t, claimed, 2)
	assert.Contains(t, claimed, 9)
}
