package database

import (
	"ticketly/internal/bookings"
	"ticketly/internal/events"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&events.Event{},
		&events.Section{},
		&events.Row{},
		&bookings.Booking{},
	)
}
