package events

import "time"

type EventResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Date      time.Time         `json:"date"`
	Sections  []SectionResponse `json:"sections"`
	CreatedAt time.Time         `json:"created_at"`
}

type SectionResponse struct {
	Name string        `json:"name"`
	Rows []RowResponse `json:"rows"`
}

type RowResponse struct {
	Name       string `json:"name"`
	TotalSeats int    `json:"totalSeats"`
}

// EventSummary is the listing projection: id, name and date only.
type EventSummary struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}
