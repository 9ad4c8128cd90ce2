package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is the seating inventory for a single event. The layout (sections
// and rows) is fixed at creation time and never mutated afterwards; all
// booking state lives in booking records, not here.
type Event struct {
	ID   uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name string    `gorm:"not null;size:255" json:"name"`
	Date time.Time `gorm:"not null" json:"date"`

	Sections []Section `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE;" json:"sections"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Section is a named group of rows. Section names are unique per event.
type Section struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EventID  uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_event_section" json:"event_id"`
	Name     string    `gorm:"not null;size:255;uniqueIndex:idx_event_section" json:"name"`
	Position int       `gorm:"not null" json:"position"`

	Rows []Row `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE;" json:"rows"`
}

// Row is a named subdivision of a section with a fixed seat capacity.
// Row names are unique per section.
type Row struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SectionID  uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_section_row" json:"section_id"`
	Name       string    `gorm:"not null;size:255;uniqueIndex:idx_section_row" json:"name"`
	Position   int       `gorm:"not null" json:"position"`
	TotalSeats int       `gorm:"not null;check:total_seats > 0" json:"total_seats"`
}

// TableName specifies the table name for GORM
func (Event) TableName() string {
	return "events"
}

func (Section) TableName() string {
	return "event_sections"
}

func (Row) TableName() string {
	return "event_rows"
}

// FindRow resolves a section/row pair by name, returning false when either
// is absent from the layout.
func (e *Event) FindRow(section, row string) (*Row, bool) {
	for si := range e.Sections {
		if e.Sections[si].Name != section {
			continue
		}
		for ri := range e.Sections[si].Rows {
			if e.Sections[si].Rows[ri].Name == row {
				return &e.Sections[si].Rows[ri], true
			}
		}
		return nil, false
	}
	return nil, false
}

// ToResponse converts an Event to its API shape
func (e *Event) ToResponse() EventResponse {
	sections := make([]SectionResponse, 0, len(e.Sections))
	for _, section := range e.Sections {
		rows := make([]RowResponse, 0, len(section.Rows))
		for _, row := range section.Rows {
			rows = append(rows, RowResponse{
				Name:       row.Name,
				TotalSeats: row.TotalSeats,
			})
		}
		sections = append(sections, SectionResponse{
			Name: section.Name,
			Rows: rows,
		})
	}

	return EventResponse{
		ID:        e.ID.String(),
		Name:      e.Name,
		Date:      e.Date,
		Sections:  sections,
		CreatedAt: e.CreatedAt,
	}
}

// ToSummary projects an Event to the listing shape (id, name, date only).
func (e *Event) ToSummary() EventSummary {
	return EventSummary{
		ID:   e.ID.String(),
		Name: e.Name,
		Date: e.Date,
	}
}
