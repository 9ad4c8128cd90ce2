package seats

import (
	"context"
	"testing"

	"ticketly/internal/bookings"
	"ticketly/internal/events"
	"ticketly/internal/shared/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// --- Mock readers ---

type mockEventReader struct {
	getByIDFn func(ctx context.Context, id uuid.UUID) (*events.Event, error)
}

func (m *mockEventReader) GetByID(ctx context.Context, id uuid.UUID) (*events.Event, error) {
	return m.getByIDFn(ctx, id)
}

type mockBookingReader struct {
	getByEventFn func(ctx context.Context, eventID uuid.UUID) ([]bookings.Booking, error)
}

func (m *mockBookingReader) GetBookingsByEventID(ctx context.Context, eventID uuid.UUID) ([]bookings.Booking, error) {
	return m.getByEventFn(ctx, eventID)
}

func sampleEvent() *events.Event {
	return &events.Event{
		ID:   uuid.New(),
		Name: "Jazz Night",
		Sections: []events.Section{
			{
				Name: "Premium",
				Rows: []events.Row{
					{Name: "A", TotalSeats: 10},
					{Name: "B", TotalSeats: 8},
				},
			},
			{
				Name: "Standard",
				Rows: []events.Row{
					{Name: "C", TotalSeats: 20},
				},
			},
		},
	}
}

func booking(section, row string, quantity int, seats ...int) bookings.Booking {
	return bookings.Booking{
		Section:     section,
		Row:         row,
		Quantity:    quantity,
		SeatNumbers: seats,
	}
}

// --- Pure computation tests ---

func TestComputeAvailability_EmptyEvent(t *testing.T) {
	availability := ComputeAvailability(sampleEvent(), nil)

	assert.Equal(t, RowAvailability{Available: 10, Total: 10, Booked: 0}, availability["Premium"]["A"])
	assert.Equal(t, RowAvailability{Available: 8, Total: 8, Booked: 0}, availability["Premium"]["B"])
	assert.Equal(t, RowAvailability{Available: 20, Total: 20, Booked: 0}, availability["Standard"]["C"])
}

func TestComputeAvailability_MixedModes(t *testing.T) {
	all := []bookings.Booking{
		booking("Premium", "A", 3),
		booking("Premium", "A", 2, 7, 8),
		booking("Standard", "C", 4),
	}

	availability := ComputeAvailability(sampleEvent(), all)

	assert.Equal(t, RowAvailability{Available: 5, Total: 10, Booked: 5}, availability["Premium"]["A"])
	assert.Equal(t, RowAvailability{Available: 8, Total: 8, Booked: 0}, availability["Premium"]["B"])
	assert.Equal(t, RowAvailability{Available: 16, Total: 20, Booked: 4}, availability["Standard"]["C"])
}

func TestComputeAvailability_SameRowNameInDifferentSections(t *testing.T) {
	event := &events.Event{
		Sections: []events.Section{
			{Name: "Left", Rows: []events.Row{{Name: "1", TotalSeats: 5}}},
			{Name: "Right", Rows: []events.Row{{Name: "1", TotalSeats: 5}}},
		},
	}
	all := []bookings.Booking{booking("Left", "1", 3)}

	availability := ComputeAvailability(event, all)

	assert.Equal(t, 2, availability["Left"]["1"].Available)
	assert.Equal(t, 5, availability["Right"]["1"].Available)
}

func TestComputeSeatDetails_ClaimedSeatsOnly(t *testing.T) {
	all := []bookings.Booking{
		booking("Premium", "A", 2, 3, 5),
	}

	details, ok := ComputeSeatDetails(sampleEvent(), all, "Premium", "A")

	assert.True(t, ok)
	assert.Len(t, details, 10)
	assert.Equal(t, SeatDetail{SeatNumber: 3, IsBooked: true}, details[2])
	assert.Equal(t, SeatDetail{SeatNumber: 5, IsBooked: true}, details[4])
	assert.Equal(t, SeatDetail{SeatNumber: 1, IsBooked: false}, details[0])
}

func TestComputeSeatDetails_CountedBookingsInvisible(t *testing.T) {
	// A count-based booking consumes capacity but claims no physical seat,
	// so the seat map stays entirely unbooked.
	all := []bookings.Booking{
		booking("Premium", "A", 6),
	}

	details, ok := ComputeSeatDetails(sampleEvent(), all, "Premium", "A")

	assert.True(t, ok)
	for _, detail := range details {
		assert.False(t, detail.IsBooked)
	}
}

func TestComputeSeatDetails_UnknownRow(t *testing.T) {
	_, ok := ComputeSeatDetails(sampleEvent(), nil, "Premium", "Z")
	assert.False(t, ok)

	_, ok = ComputeSeatDetails(sampleEvent(), nil, "Balcony", "A")
	assert.False(t, ok)
}

// --- Service tests ---

func TestGetAvailability_Success(t *testing.T) {
	event := sampleEvent()
	eventRepo := &mockEventReader{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*events.Event, error) {
			return event, nil
		},
	}
	bookingRepo := &mockBookingReader{
		getByEventFn: func(ctx context.Context, eventID uuid.UUID) ([]bookings.Booking, error) {
			return []bookings.Booking{booking("Premium", "A", 4)}, nil
		},
	}

	svc := NewService(eventRepo, bookingRepo, config.RedisConfig{})
	availability, err := svc.GetAvailability(context.Background(), event.ID)

	assert.NoError(t, err)
	assert.Equal(t, 6, availability["Premium"]["A"].Available)
}

func TestGetAvailability_ReadIsIdempotent(t *testing.T) {
	event := sampleEvent()
	calls := 0
	eventRepo := &mockEventReader{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*events.Event, error) {
			return event, nil
		},
	}
	bookingRepo := &mockBookingReader{
		getByEventFn: func(ctx context.Context, eventID uuid.UUID) ([]bookings.Booking, error) {
			calls++
			return []bookings.Booking{booking("Premium", "A", 4)}, nil
		},
	}

	svc := NewService(eventRepo, bookingRepo, config.RedisConfig{})

	first, err := svc.GetAvailability(context.Background(), event.ID)
	assert.NoError(t, err)
	second, err := svc.GetAvailability(context.Background(), event.ID)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, calls)
}

func TestGetAvailability_EventNotFound(t *testing.T) {
	eventRepo := &mockEventReader{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*events.Event, error) {
			return nil, events.ErrEventNotFound
		},
	}

	svc := NewService(eventRepo, &mockBookingReader{}, config.RedisConfig{})
	_, err := svc.GetAvailability(context.Background(), uuid.New())

	assert.ErrorIs(t, err, events.ErrEventNotFound)
}

func TestGetSeatDetails_Success(t *testing.T) {
	event := sampleEvent()
	eventRepo := &mockEventReader{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*events.Event, error) {
			return event, nil
		},
	}
	bookingRepo := &mockBookingReader{
		getByEventFn: func(ctx context.Context, eventID uuid.UUID) ([]bookings.Booking, error) {
			return []bookings.Booking{booking("Premium", "B", 1, 2)}, nil
		},
	}

	svc := NewService(eventRepo, bookingRepo, config.RedisConfig{})
	details, err := svc.GetSeatDetails(context.Background(), event.ID, "Premium", "B")

	assert.NoError(t, err)
	assert.Len(t, details, 8)
	assert.True(t, details[1].IsBooked)
}

func TestGetSeatDetails_UnknownSectionRow(t *testing.T) {
	event := sampleEvent()
	eventRepo := &mockEventReader{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*events.Event, error) {
			return event, nil
		},
	}
	bookingRepo := &mockBookingReader{
		getByEventFn: func(ctx context.Context, eventID uuid.UUID) ([]bookings.Booking, error) {
			return nil, nil
		},
	}

	svc := NewService(eventRepo, bookingRepo, config.RedisConfig{})
	_, err := svc.GetSeatDetails(context.Background(), event.ID, "Balcony", "A")

	assert.ErrorIs(t, err, ErrSectionRowNotFound)
}
