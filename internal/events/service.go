package events

import (
	"context"
	"fmt"
	"time"

	"ticketly/pkg/logger"

	"github.com/google/uuid"
)

type Service interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*EventResponse, error)
	GetEventByID(ctx context.Context, id uuid.UUID) (*EventResponse, error)
	ListEvents(ctx context.Context) ([]EventSummary, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateEvent validates the requested seating layout and persists the event.
// The layout is immutable after this point.
func (s *service) CreateEvent(ctx context.Context, req CreateEventRequest) (*EventResponse, error) {
	date, err := parseEventDate(req.Date)
	if err != nil {
		return nil, err
	}

	if err := validateLayout(req.Sections); err != nil {
		return nil, err
	}

	event := &Event{
		Name: req.Name,
		Date: date,
	}
	for si, section := range req.Sections {
		sec := Section{
			Name:     section.Name,
			Position: si,
		}
		for ri, row := range section.Rows {
			sec.Rows = append(sec.Rows, Row{
				Name:       row.Name,
				Position:   ri,
				TotalSeats: row.TotalSeats,
			})
		}
		event.Sections = append(event.Sections, sec)
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	logger.GetDefault().LogEventCreated(ctx, event.ID.String(), event.Name)

	resp := event.ToResponse()
	return &resp, nil
}

func (s *service) GetEventByID(ctx context.Context, id uuid.UUID) (*EventResponse, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := event.ToResponse()
	return &resp, nil
}

func (s *service) ListEvents(ctx context.Context) ([]EventSummary, error) {
	events, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	summaries := make([]EventSummary, 0, len(events))
	for i := range events {
		summaries = append(summaries, events[i].ToSummary())
	}
	return summaries, nil
}

// validateLayout enforces the structural rules of a seating layout:
// at least one section, at least one row per section, unique names per
// parent and strictly positive capacities.
func validateLayout(sections []SectionRequest) error {
	if len(sections) == 0 {
		return fmt.Errorf("%w: at least one section is required", ErrInvalidLayout)
	}

	sectionNames := make(map[string]struct{}, len(sections))
	for _, section := range sections {
		if section.Name == "" {
			return fmt.Errorf("%w: section name is required", ErrInvalidLayout)
		}
		if _, dup := sectionNames[section.Name]; dup {
			return fmt.Errorf("%w: duplicate section name %q", ErrInvalidLayout, section.Name)
		}
		sectionNames[section.Name] = struct{}{}

		if len(section.Rows) == 0 {
			return fmt.Errorf("%w: section %q has no rows", ErrInvalidLayout, section.Name)
		}
		rowNames := make(map[string]struct{}, len(section.Rows))
		for _, row := range section.Rows {
			if row.Name == "" {
				return fmt.Errorf("%w: row name is required in section %q", ErrInvalidLayout, section.Name)
			}
			if _, dup := rowNames[row.Name]; dup {
				return fmt.Errorf("%w: duplicate row name %q in section %q", ErrInvalidLayout, row.Name, section.Name)
			}
			rowNames[row.Name] = struct{}{}

			if row.TotalSeats <= 0 {
				return fmt.Errorf("%w: row %q must have a positive seat count", ErrInvalidLayout, row.Name)
			}
		}
	}
	return nil
}

// parseEventDate accepts RFC 3339 timestamps or plain dates.
func parseEventDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}
