package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ticketly/internal/events"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// CreateBookingInRow runs the whole accept/reject decision and the
	// insert atomically; see the method comment on the implementation.
	CreateBookingInRow(ctx context.Context, booking *Booking, requestedSeats []int) error

	GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetBookingDetail(ctx context.Context, id uuid.UUID) (*BookingDetail, error)
	GetAllBookings(ctx context.Context) ([]Booking, error)
	GetBookingsByEventID(ctx context.Context, eventID uuid.UUID) ([]Booking, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// eventLockQuery selects the event row SELECT ... FOR UPDATE, which holds
// the lock until the surrounding transaction ends. All booking decisions
// for the event serialize on this lock.
func eventLockQuery(tx *gorm.DB, eventID uuid.UUID) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", eventID)
}

// CreateBookingInRow commits a booking only if the target row still has room
// for it. The event row is locked FOR UPDATE for the duration of the
// transaction, which serializes all booking decisions per event: two
// concurrent attempts on the same row can never both observe the same
// availability snapshot. Rows of different events never contend. A rejected
// attempt inserts nothing.
func (r *repository) CreateBookingInRow(ctx context.Context, booking *Booking, requestedSeats []int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the event row to serialize bookings for this event
		var event events.Event
		err := eventLockQuery(tx, booking.EventID).First(&event).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return fmt.Errorf("failed to lock event: %w", err)
		}

		// 2. Resolve the row's capacity from the layout
		var row events.Row
		err = tx.Table("event_rows").
			Select("event_rows.*").
			Joins("JOIN event_sections ON event_sections.id = event_rows.section_id").
			Where("event_sections.event_id = ? AND event_sections.name = ? AND event_rows.name = ?",
				booking.EventID, booking.Section, booking.Row).
			Take(&row).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidSectionRow
			}
			return fmt.Errorf("failed to resolve row: %w", err)
		}

		// 3. Load the row's current bookings and plan the reservation
		var existing []Booking
		err = tx.
			Where("event_id = ? AND section_name = ? AND row_name = ?",
				booking.EventID, booking.Section, booking.Row).
			Find(&existing).Error
		if err != nil {
			return fmt.Errorf("failed to load bookings: %w", err)
		}

		planned, err := PlanReservation(row.TotalSeats, existing, booking.Quantity, requestedSeats)
		if err != nil {
			return err
		}
		if planned == nil {
			planned = []int{}
		}
		booking.SeatNumbers = planned

		// 4. Commit the booking
		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
}

func (r *repository) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// GetBookingDetail returns a booking together with the owning event's name
// and date denormalized onto it.
func (r *repository) GetBookingDetail(ctx context.Context, id uuid.UUID) (*BookingDetail, error) {
	booking, err := r.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var event struct {
		Name string
		Date time.Time
	}
	err = r.db.WithContext(ctx).
		Table("events").
		Select("name", "date").
		Where("id = ?", booking.EventID).
		Take(&event).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return &BookingDetail{
		ID:            booking.ID.String(),
		EventID:       booking.EventID.String(),
		Section:       booking.Section,
		Row:           booking.Row,
		Quantity:      booking.Quantity,
		SeatNumbers:   booking.SeatNumbers,
		GroupDiscount: booking.GroupDiscount,
		BookedAt:      booking.CreatedAt,
		EventName:     event.Name,
		EventDate:     event.Date,
	}, nil
}

func (r *repository) GetAllBookings(ctx context.Context) ([]Booking, error) {
	var all []Booking
	err := r.db.WithContext(ctx).Find(&all).Error
	return all, err
}

func (r *repository) GetBookingsByEventID(ctx context.Context, eventID uuid.UUID) ([]Booking, error) {
	var all []Booking
	err := r.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&all).Error
	return all, err
}
