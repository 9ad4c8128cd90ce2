package admin

import (
	"context"
	"fmt"

	"ticketly/internal/bookings"
	"ticketly/internal/events"

	"gorm.io/gorm"
)

type Repository interface {
	// ResetAll wipes every booking and the whole event inventory in one
	// transaction. Admin/test isolation only.
	ResetAll(ctx context.Context) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ResetAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session := tx.Session(&gorm.Session{AllowGlobalUpdate: true})

		if err := session.Delete(&bookings.Booking{}).Error; err != nil {
			return fmt.Errorf("failed to delete bookings: %w", err)
		}
		if err := session.Delete(&events.Row{}).Error; err != nil {
			return fmt.Errorf("failed to delete rows: %w", err)
		}
		if err := session.Delete(&events.Section{}).Error; err != nil {
			return fmt.Errorf("failed to delete sections: %w", err)
		}
		if err := session.Delete(&events.Event{}).Error; err != nil {
			return fmt.Errorf("failed to delete events: %w", err)
		}
		return nil
	})
}
