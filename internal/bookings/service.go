package bookings

import (
	"context"
	"errors"
	"fmt"

	"ticketly/internal/shared/config"
	"ticketly/internal/shared/constants"
	"ticketly/pkg/cache"
	"ticketly/pkg/logger"

	"github.com/google/uuid"
)

// Notifier publishes booking lifecycle events to the message bus.
// Defined here so the notifications package can depend on bookings without
// a cycle.
type Notifier interface {
	PublishBookingCreated(ctx context.Context, booking *Booking) error
}

// Service interface defines the contract for the booking engine and the
// booking read paths.
type Service interface {
	BookSeats(ctx context.Context, eventID uuid.UUID, req PurchaseRequest) (*BookingSummary, error)
	GetBookingDetail(ctx context.Context, bookingID uuid.UUID) (*BookingDetail, error)
	GetAllBookings(ctx context.Context) ([]Booking, error)
	GetBookingsByEvent(ctx context.Context, eventID uuid.UUID) ([]Booking, error)
	SetCacheService(cacheService cache.Service)
	SetNotifier(notifier Notifier)
}

type service struct {
	repo         Repository
	pricing      config.PricingConfig
	cacheService cache.Service
	notifier     Notifier
}

func NewService(repo Repository, pricing config.PricingConfig) Service {
	return &service{
		repo:    repo,
		pricing: pricing,
	}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

// SetNotifier injects the booking-event publisher
func (s *service) SetNotifier(notifier Notifier) {
	s.notifier = notifier
}

// BookSeats validates and commits a purchase against one row of the event's
// layout. On acceptance exactly one booking record is created; every failure
// path creates nothing.
func (s *service) BookSeats(ctx context.Context, eventID uuid.UUID, req PurchaseRequest) (*BookingSummary, error) {
	if err := validatePurchase(req); err != nil {
		return nil, err
	}

	booking := &Booking{
		EventID:  eventID,
		Section:  req.Section,
		Row:      req.Row,
		Quantity: req.Quantity,
		// Frozen at creation; later pricing changes never reprice old bookings.
		GroupDiscount: req.Quantity >= s.pricing.GroupSize,
	}

	if err := s.repo.CreateBookingInRow(ctx, booking, req.SeatNumbers); err != nil {
		if isRejection(err) {
			logger.GetDefault().LogBookingRejected(ctx, eventID.String(), req.Section, req.Row, err.Error())
		}
		return nil, err
	}

	logger.GetDefault().LogBookingCreated(ctx, booking.ID.String(), eventID.String(), req.Section, req.Row, req.Quantity)

	// Cached availability for this event is now stale. Failures here are
	// logged but never fail the committed booking.
	s.invalidateAvailabilityCache(ctx, eventID)

	if s.notifier != nil {
		if err := s.notifier.PublishBookingCreated(ctx, booking); err != nil {
			logger.GetDefault().ErrorWithContext(ctx, "failed to publish booking event", err,
				map[string]interface{}{"booking_id": booking.ID.String()})
		}
	}

	return &BookingSummary{
		BookingID:     booking.ID.String(),
		EventID:       eventID.String(),
		Section:       booking.Section,
		Row:           booking.Row,
		Quantity:      booking.Quantity,
		SeatNumbers:   booking.SeatNumbers,
		GroupDiscount: booking.GroupDiscount,
		BookedAt:      booking.CreatedAt,
	}, nil
}

func (s *service) GetBookingDetail(ctx context.Context, bookingID uuid.UUID) (*BookingDetail, error) {
	return s.repo.GetBookingDetail(ctx, bookingID)
}

func (s *service) GetAllBookings(ctx context.Context) ([]Booking, error) {
	return s.repo.GetAllBookings(ctx)
}

func (s *service) GetBookingsByEvent(ctx context.Context, eventID uuid.UUID) ([]Booking, error) {
	return s.repo.GetBookingsByEventID(ctx, eventID)
}

func (s *service) invalidateAvailabilityCache(ctx context.Context, eventID uuid.UUID) {
	if s.cacheService == nil {
		return
	}

	if err := s.cacheService.Delete(ctx, constants.AvailabilityKey(eventID.String())); err != nil {
		logger.GetDefault().ErrorWithContext(ctx, "failed to invalidate availability cache", err,
			map[string]interface{}{"event_id": eventID.String()})
	}
	if err := s.cacheService.DeletePattern(ctx, constants.CacheKeySeatDetailPrefix+eventID.String()+":*"); err != nil {
		logger.GetDefault().ErrorWithContext(ctx, "failed to invalidate seat detail cache", err,
			map[string]interface{}{"event_id": eventID.String()})
	}
}

// validatePurchase covers the static preconditions that need no inventory
// state: positive quantity, and for seat-numbered requests a seat list whose
// length matches the quantity with no duplicates. Range checks against the
// row's capacity happen inside the booking transaction.
func validatePurchase(req PurchaseRequest) error {
	if req.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidBooking)
	}
	if len(req.SeatNumbers) == 0 {
		return nil
	}

	if len(req.SeatNumbers) != req.Quantity {
		return fmt.Errorf("%w: %d seat numbers given for quantity %d", ErrInvalidBooking, len(req.SeatNumbers), req.Quantity)
	}
	seen := make(map[int]struct{}, len(req.SeatNumbers))
	for _, seat := range req.SeatNumbers {
		if _, dup := seen[seat]; dup {
			return fmt.Errorf("%w: duplicate seat number %d", ErrInvalidBooking, seat)
		}
		seen[seat] = struct{}{}
	}
	return nil
}

// isRejection reports whether an error is an expected business-rule
// rejection rather than a storage failure.
func isRejection(err error) bool {
	var insufficient *InsufficientSeatsError
	var conflict *SeatConflictError
	var badSeat *InvalidSeatNumberError
	return errors.Is(err, ErrEventNotFound) ||
		errors.Is(err, ErrInvalidSectionRow) ||
		errors.As(err, &insufficient) ||
		errors.As(err, &conflict) ||
		errors.As(err, &badSeat)
}
