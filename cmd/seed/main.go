package main

import (
	"context"
	"fmt"
	"log"

	"ticketly/internal/bookings"
	"ticketly/internal/events"
	"ticketly/internal/shared/config"
	"ticketly/internal/shared/database"

	"github.com/google/uuid"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Ticketly Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(cfg); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order.
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"bookings",
		"event_rows",
		"event_sections",
		"events",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

// SeedAll seeds events with their seating layouts plus a few sample bookings.
func (s *Seeder) SeedAll(cfg *config.Config) error {
	ctx := context.Background()

	eventIDs, err := s.SeedEvents(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}

	if err := s.SeedBookings(ctx, cfg, eventIDs); err != nil {
		return fmt.Errorf("failed to seed bookings: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if s.db.Redis != nil {
		if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

// SeedEvents creates sample events through the events service so layouts
// pass the same validation the API applies.
func (s *Seeder) SeedEvents(ctx context.Context) (map[string]uuid.UUID, error) {
	fmt.Println("  🎪 Seeding events...")

	service := events.NewService(events.NewRepository(s.db.PostgreSQL))

	eventsData := []events.CreateEventRequest{
		{
			Name: "Classical Music Evening",
			Date: "2026-10-12",
			Sections: []events.SectionRequest{
				{
					Name: "Premium",
					Rows: []events.RowRequest{
						{Name: "A", TotalSeats: 13},
						{Name: "B", TotalSeats: 13},
					},
				},
				{
					Name: "Standard",
					Rows: []events.RowRequest{
						{Name: "C", TotalSeats: 20},
						{Name: "D", TotalSeats: 20},
					},
				},
			},
		},
		{
			Name: "Tech Conference 2026",
			Date: "2026-11-05",
			Sections: []events.SectionRequest{
				{
					Name: "VIP",
					Rows: []events.RowRequest{
						{Name: "A", TotalSeats: 8},
					},
				},
				{
					Name: "General",
					Rows: []events.RowRequest{
						{Name: "B", TotalSeats: 10},
						{Name: "C", TotalSeats: 10},
					},
				},
			},
		},
		{
			Name: "Startup Pitch Night",
			Date: "2026-09-20",
			Sections: []events.SectionRequest{
				{
					Name: "Floor",
					Rows: []events.RowRequest{
						{Name: "1", TotalSeats: 25},
						{Name: "2", TotalSeats: 25},
						{Name: "3", TotalSeats: 25},
					},
				},
			},
		},
	}

	eventIDs := make(map[string]uuid.UUID)
	for _, req := range eventsData {
		created, err := service.CreateEvent(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("failed to create event %s: %w", req.Name, err)
		}
		id, err := uuid.Parse(created.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ID of event %s: %w", req.Name, err)
		}
		eventIDs[req.Name] = id
		fmt.Printf("    ✅ Created event: %s\n", req.Name)
	}

	return eventIDs, nil
}

// SeedBookings creates sample bookings through the booking service so they
// go through the same capacity checks as API purchases.
func (s *Seeder) SeedBookings(ctx context.Context, cfg *config.Config, eventIDs map[string]uuid.UUID) error {
	fmt.Println("  🎟️ Seeding bookings...")

	service := bookings.NewService(bookings.NewRepository(s.db.PostgreSQL), cfg.Pricing)

	bookingsData := []struct {
		event string
		req   bookings.PurchaseRequest
	}{
		{"Classical Music Evening", bookings.PurchaseRequest{Section: "Premium", Row: "A", Quantity: 2, SeatNumbers: []int{1, 2}}},
		{"Classical Music Evening", bookings.PurchaseRequest{Section: "Standard", Row: "C", Quantity: 4}},
		{"Tech Conference 2026", bookings.PurchaseRequest{Section: "VIP", Row: "A", Quantity: 3, SeatNumbers: []int{4, 5, 6}}},
		{"Startup Pitch Night", bookings.PurchaseRequest{Section: "Floor", Row: "2", Quantity: 5}},
	}

	for _, data := range bookingsData {
		eventID, ok := eventIDs[data.event]
		if !ok {
			continue
		}
		summary, err := service.BookSeats(ctx, eventID, data.req)
		if err != nil {
			return fmt.Errorf("failed to book %s %s/%s: %w", data.event, data.req.Section, data.req.Row, err)
		}
		fmt.Printf("    ✅ Booked %d seat(s) in %s %s/%s (booking %s)\n",
			data.req.Quantity, data.event, data.req.Section, data.req.Row, summary.BookingID)
	}

	return nil
}
