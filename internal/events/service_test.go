package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// --- Mock Repository ---

type mockRepo struct {
	createFn  func(ctx context.Context, event *Event) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*Event, error)
	getAllFn  func(ctx context.Context) ([]Event, error)
}

func (m *mockRepo) Create(ctx context.Context, event *Event) error {
	return m.createFn(ctx, event)
}
func (m *mockRepo) GetByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockRepo) GetAll(ctx context.Context) ([]Event, error) {
	return m.getAllFn(ctx)
}

func validRequest() CreateEventRequest {
	return CreateEventRequest{
		Name: "Jazz Night",
		Date: "2026-10-12",
		Sections: []SectionRequest{
			{
				Name: "Premium",
				Rows: []RowRequest{
					{Name: "A", TotalSeats: 10},
					{Name: "B", TotalSeats: 8},
				},
			},
			{
				Name: "Standard",
				Rows: []RowRequest{
					{Name: "C", TotalSeats: 20},
				},
			},
		},
	}
}

// --- Tests ---

func TestCreateEvent_Success(t *testing.T) {
	var created *Event
	repo := &mockRepo{
		createFn: func(ctx context.Context, event *Event) error {
			event.ID = uuid.New()
			created = event
			return nil
		},
	}

	svc := NewService(repo)
	resp, err := svc.CreateEvent(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Equal(t, "Jazz Night", resp.Name)
	assert.Len(t, resp.Sections, 2)
	assert.Equal(t, 10, resp.Sections[0].Rows[0].TotalSeats)

	// Positions follow request order so reads preserve the layout shape.
	assert.Equal(t, 0, created.Sections[0].Position)
	assert.Equal(t, 1, created.Sections[1].Position)
	assert.Equal(t, 1, created.Sections[0].Rows[1].Position)
}

func TestCreateEvent_AcceptsRFC3339Date(t *testing.T) {
	repo := &mockRepo{
		createFn: func(ctx context.Context, event *Event) error { return nil },
	}
	req := validRequest()
	req.Date = "2026-10-12T19:30:00Z"

	svc := NewService(repo)
	resp, err := svc.CreateEvent(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 12, 19, 30, 0, 0, time.UTC), resp.Date)
}

func TestCreateEvent_InvalidDate(t *testing.T) {
	req := validRequest()
	req.Date = "12/10/2026"

	svc := NewService(&mockRepo{})
	_, err := svc.CreateEvent(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateEvent_NoSections(t *testing.T) {
	req := validRequest()
	req.Sections = nil

	svc := NewService(&mockRepo{})
	_, err := svc.CreateEvent(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestCreateEvent_SectionWithoutRows(t *testing.T) {
	req := validRequest()
	req.Sections[1].Rows = nil

	svc := NewService(&mockRepo{})
	_, err := svc.CreateEvent(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestCreateEvent_DuplicateSectionNames(t *testing.T) {
	req := validRequest()
	req.Sections[1].Name = "Premium"

	svc := NewService(&mockRepo{})
	_, err := svc.CreateEvent(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestCreateEvent_DuplicateRowNamesInSection(t *testing.T) {
	req := validRequest()
	req.Sections[0].Rows[1].Name = "A"

	svc := NewService(&mockRepo{})
	_, err := svc.CreateEvent(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestCreateEvent_SameRowNameInDifferentSectionsAllowed(t *testing.T) {
	repo := &mockRepo{
		createFn: func(ctx context.Context, event *Event) error { return nil },
	}
	req := validRequest()
	req.Sections[1].Rows[0].Name = "A"

	svc := NewService(repo)
	_, err := svc.CreateEvent(context.Background(), req)

	assert.NoError(t, err)
}

func TestCreateEvent_NonPositiveSeatCount(t *testing.T) {
	req := validRequest()
	req.Sections[0].Rows[0].TotalSeats = 0

	svc := NewService(&mockRepo{})
	_, err := svc.CreateEvent(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestCreateEvent_RepoError(t *testing.T) {
	repo := &mockRepo{
		createFn: func(ctx context.Context, event *Event) error {
			return errors.New("db connection failed")
		},
	}

	svc := NewService(repo)
	_, err := svc.CreateEvent(context.Background(), validRequest())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "db connection failed")
}

func TestGetEventByID_Success(t *testing.T) {
	id := uuid.New()
	repo := &mockRepo{
		getByIDFn: func(ctx context.Context, got uuid.UUID) (*Event, error) {
			assert.Equal(t, id, got)
			return &Event{
				ID:   id,
				Name: "Jazz Night",
				Sections: []Section{
					{Name: "Premium", Rows: []Row{{Name: "A", TotalSeats: 10}}},
				},
			}, nil
		},
	}

	svc := NewService(repo)
	resp, err := svc.GetEventByID(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, id.String(), resp.ID)
	assert.Len(t, resp.Sections, 1)
}

func TestGetEventByID_NotFound(t *testing.T) {
	repo := &mockRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*Event, error) {
			return nil, ErrEventNotFound
		},
	}

	svc := NewService(repo)
	_, err := svc.GetEventByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestListEvents_SummaryShape(t *testing.T) {
	repo := &mockRepo{
		getAllFn: func(ctx context.Context) ([]Event, error) {
			return []Event{
				{ID: uuid.New(), Name: "Event A"},
				{ID: uuid.New(), Name: "Event B"},
			}, nil
		},
	}

	svc := NewService(repo)
	summaries, err := svc.ListEvents(context.Background())

	assert.NoError(t, err)
	assert.Len(t, summaries, 2)
	assert.Equal(t, "Event A", summaries[0].Name)
}

func TestListEvents_Empty(t *testing.T) {
	repo := &mockRepo{
		getAllFn: func(ctx context.Context) ([]Event, error) {
			return []Event{}, nil
		},
	}

	svc := NewService(repo)
	summaries, err := svc.ListEvents(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, summaries)
}
