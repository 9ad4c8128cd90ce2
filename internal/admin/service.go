package admin

import (
	"context"
	"fmt"

	"ticketly/internal/bookings"
	"ticketly/internal/shared/config"
	"ticketly/internal/shared/constants"
	"ticketly/pkg/cache"
	"ticketly/pkg/logger"
)

// BookingReader provides the booking records the stats are folded over
// (interface to avoid depending on the bookings service directly).
type BookingReader interface {
	GetAllBookings(ctx context.Context) ([]bookings.Booking, error)
}

type Service interface {
	GetStats(ctx context.Context) (*Stats, error)
	ListBookings(ctx context.Context) ([]bookings.Booking, error)
	ResetAll(ctx context.Context) error
	SetCacheService(cacheService cache.Service)
}

type service struct {
	repo         Repository
	bookingRepo  BookingReader
	pricing      config.PricingConfig
	cacheService cache.Service
}

func NewService(repo Repository, bookingRepo BookingReader, pricing config.PricingConfig) Service {
	return &service{
		repo:        repo,
		bookingRepo: bookingRepo,
		pricing:     pricing,
	}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

// GetStats folds every booking into the aggregate totals. Revenue uses the
// configured per-seat prices: the discounted price for group bookings, the
// base price otherwise.
func (s *service) GetStats(ctx context.Context) (*Stats, error) {
	all, err := s.bookingRepo.GetAllBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	stats := &Stats{
		TotalBookings:   len(all),
		BookingsByEvent: make(map[string]int),
	}
	for i := range all {
		b := &all[i]
		stats.TotalTickets += b.Quantity

		price := s.pricing.BasePrice
		if b.GroupDiscount {
			price = s.pricing.GroupPrice
		}
		stats.Revenue += float64(b.Quantity) * price

		stats.BookingsByEvent[b.EventID.String()] += b.Quantity
	}
	return stats, nil
}

func (s *service) ListBookings(ctx context.Context) ([]bookings.Booking, error) {
	return s.bookingRepo.GetAllBookings(ctx)
}

// ResetAll clears all inventory and booking state, then drops every cached
// read so no stale snapshot survives the wipe.
func (s *service) ResetAll(ctx context.Context) error {
	if err := s.repo.ResetAll(ctx); err != nil {
		return err
	}

	if s.cacheService != nil {
		for _, pattern := range []string{
			constants.PatternInvalidateAvailabilityAll,
			constants.PatternInvalidateSeatDetailAll,
		} {
			if err := s.cacheService.DeletePattern(ctx, pattern); err != nil {
				logger.GetDefault().ErrorWithContext(ctx, "failed to invalidate cache after reset", err,
					map[string]interface{}{"pattern": pattern})
			}
		}
	}

	logger.GetDefault().Info("All inventory and booking data reset")
	return nil
}
