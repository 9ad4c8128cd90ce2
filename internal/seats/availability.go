package seats

import (
	"ticketly/internal/bookings"
	"ticketly/internal/events"
)

// RowAvailability is the per-row availability snapshot.
type RowAvailability struct {
	Available int `json:"available"`
	Total     int `json:"total"`
	Booked    int `json:"booked"`
}

// Availability maps section name -> row name -> availability.
type Availability map[string]map[string]RowAvailability

// SeatDetail reports the booked state of one numbered seat.
type SeatDetail struct {
	SeatNumber int  `json:"seatNumber"`
	IsBooked   bool `json:"isBooked"`
}

// ComputeAvailability derives the live availability of every row in the
// event's layout from its booking records. A seat-identified booking
// consumes its identified seats, a count-based booking consumes its
// quantity; the booking engine guarantees the sum never exceeds a row's
// capacity, so no clamping happens here.
func ComputeAvailability(event *events.Event, all []bookings.Booking) Availability {
	availability := make(Availability, len(event.Sections))
	for _, section := range event.Sections {
		rows := make(map[string]RowAvailability, len(section.Rows))
		for _, row := range section.Rows {
			booked := 0
			for i := range all {
				if all[i].Section == section.Name && all[i].Row == row.Name {
					booked += all[i].SeatsConsumed()
				}
			}
			rows[row.Name] = RowAvailability{
				Available: row.TotalSeats - booked,
				Total:     row.TotalSeats,
				Booked:    booked,
			}
		}
		availability[section.Name] = rows
	}
	return availability
}

// ComputeSeatDetails reports, per seat number, whether any booking claims
// it. Count-based bookings are invisible here: they reduce the aggregate
// counts in ComputeAvailability but identify no physical seat. Returns
// false when the section/row pair is not part of the layout.
func ComputeSeatDetails(event *events.Event, all []bookings.Booking, section, row string) ([]SeatDetail, bool) {
	target, ok := event.FindRow(section, row)
	if !ok {
		return nil, false
	}

	claimed := make(map[int]struct{})
	for i := range all {
		if all[i].Section != section || all[i].Row != row {
			continue
		}
		for _, seat := range all[i].SeatNumbers {
			claimed[seat] = struct{}{}
		}
	}

	details := make([]SeatDetail, 0, target.TotalSeats)
	for seat := 1; seat <= target.TotalSeats; seat++ {
		_, booked := claimed[seat]
		details = append(details, SeatDetail{SeatNumber: seat, IsBooked: booked})
	}
	return details, true
}
