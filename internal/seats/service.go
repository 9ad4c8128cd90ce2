package seats

import (
	"context"
	"errors"

	"ticketly/internal/bookings"
	"ticketly/internal/events"
	"ticketly/internal/shared/config"
	"ticketly/internal/shared/constants"
	"ticketly/pkg/cache"

	"github.com/google/uuid"
)

// ErrSectionRowNotFound is returned when the requested section/row pair is
// not part of the event's layout.
var ErrSectionRowNotFound = errors.New("event, section or row not found")

// EventReader provides the event layout (interface to avoid depending on
// the events service directly).
type EventReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*events.Event, error)
}

// BookingReader provides the booking records availability is derived from.
type BookingReader interface {
	GetBookingsByEventID(ctx context.Context, eventID uuid.UUID) ([]bookings.Booking, error)
}

type Service interface {
	GetAvailability(ctx context.Context, eventID uuid.UUID) (Availability, error)
	GetSeatDetails(ctx context.Context, eventID uuid.UUID, section, row string) ([]SeatDetail, error)
	SetCacheService(cacheService cache.Service)
}

type service struct {
	eventRepo    EventReader
	bookingRepo  BookingReader
	redisCfg     config.RedisConfig
	cacheService cache.Service
}

func NewService(eventRepo EventReader, bookingRepo BookingReader, redisCfg config.RedisConfig) Service {
	return &service{
		eventRepo:   eventRepo,
		bookingRepo: bookingRepo,
		redisCfg:    redisCfg,
	}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

// GetAvailability returns the per-section, per-row availability snapshot
// for an event. Responses are served cache-aside with a short TTL; a
// snapshot may be slightly stale but reads never block the booking path.
func (s *service) GetAvailability(ctx context.Context, eventID uuid.UUID) (Availability, error) {
	if s.cacheService == nil {
		return s.computeAvailability(ctx, eventID)
	}

	var availability Availability
	err := s.cacheService.GetOrSet(ctx,
		constants.AvailabilityKey(eventID.String()),
		s.redisCfg.AvailabilityTTL,
		func() (interface{}, error) {
			return s.computeAvailability(ctx, eventID)
		},
		&availability,
	)
	if err != nil {
		return nil, err
	}
	return availability, nil
}

func (s *service) computeAvailability(ctx context.Context, eventID uuid.UUID) (Availability, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	all, err := s.bookingRepo.GetBookingsByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return ComputeAvailability(event, all), nil
}

// GetSeatDetails returns the seat-by-seat booked state for one row.
func (s *service) GetSeatDetails(ctx context.Context, eventID uuid.UUID, section, row string) ([]SeatDetail, error) {
	if s.cacheService == nil {
		return s.computeSeatDetails(ctx, eventID, section, row)
	}

	var details []SeatDetail
	err := s.cacheService.GetOrSet(ctx,
		constants.SeatDetailKey(eventID.String(), section, row),
		s.redisCfg.SeatDetailTTL,
		func() (interface{}, error) {
			return s.computeSeatDetails(ctx, eventID, section, row)
		},
		&details,
	)
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (s *service) computeSeatDetails(ctx context.Context, eventID uuid.UUID, section, row string) ([]SeatDetail, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	all, err := s.bookingRepo.GetBookingsByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	details, ok := ComputeSeatDetails(event, all, section, row)
	if !ok {
		return nil, ErrSectionRowNotFound
	}
	return details, nil
}
