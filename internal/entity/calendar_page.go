package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CalendarPage represents a calendar page for data transfer between layers.
type CalendarPage struct {
	ID        uuid.UUID       `json:"id"`
	ImagePath string          `json:"image_path"`
	Status    string          `json:"status"`
	Month     *int            `json:"month,omitempty"`
	Year      *int            `json:"year,omitempty"`
	Notes     []string        `json:"notes,omitempty"`
	RawResult json.RawMessage `json:"raw_result,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
