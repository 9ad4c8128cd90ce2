package bookings

import (
	"testing"

	"ticketly/internal/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB opens a gorm handle that only builds SQL, never executing it
// or touching a live server.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=ticketly dbname=ticketly port=5432",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)
	return db
}

// The whole serialization guarantee of CreateBookingInRow hangs on the event
// query actually carrying a row lock, so pin the generated SQL.
func TestEventLockQueryEmitsForUpdate(t *testing.T) {
	db := newDryRunDB(t)

	var event events.Event
	stmt := eventLockQuery(db, uuid.New()).Find(&event).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "FOR UPDATE")
	assert.Contains(t, sql, `"events"`)
}

func TestEventLockQueryFiltersByEventID(t *testing.T) {
	db := newDryRunDB(t)
	eventID := uuid.New()

	var event events.Event
	stmt := eventLockQuery(db, eventID).Find(&event).Statement

	assert.Contains(t, stmt.SQL.String(), "id = ")
	assert.Contains(t, stmt.Vars, eventID)
}
