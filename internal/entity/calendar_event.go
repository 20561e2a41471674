package entity

import (
	"github.com/google/uuid"
)

// CalendarEvent represents a calendar event for data transfer between layers.
type CalendarEvent struct {
	ID     uuid.UUID `json:"id"`
	PageID uuid.UUID `json:"page_id"`
	// Month and Year come from the owning page; zero when the page edge
	// was not loaded.
	Month        int     `json:"month"`
	Year         int     `json:"year"`
	Day          int     `json:"day"`
	Hour         *int    `json:"hour,omitempty"`
	Minute       *int    `json:"minute,omitempty"`
	AmPm         *string `json:"am_pm,omitempty"`
	AllDay       bool    `json:"all_day"`
	Title        string  `json:"title"`
	OriginalText string  `json:"original_text"`
	Color        string  `json:"color"`
	Featured     bool    `json:"featured"`
	Position     int     `json:"position"`
}
