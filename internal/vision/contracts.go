package vision

import (
	"context"
	"encoding/json"
)

// ExtractedEvent is one calendar entry as returned by the extraction
// service. Title and OriginalText may be present even when the time
// fields could not be parsed; such events are kept, never dropped.
type ExtractedEvent struct {
	Day          int     `json:"day"`
	Hour         *int    `json:"hour,omitempty"`
	Minute       *int    `json:"minute,omitempty"`
	AmPm         *string `json:"am_pm,omitempty"`
	Title        string  `json:"title"`
	Color        string  `json:"color,omitempty"`
	AllDay       bool    `json:"all_day,omitempty"`
	Featured     bool    `json:"featured,omitempty"`
	OriginalText string  `json:"original_text"`
}

// Extraction is the normalized shape we want from the extraction service.
type Extraction struct {
	SuccessfullyParsed bool             `json:"successfully_parsed"`
	Month              *int             `json:"month,omitempty"`
	Year               *int             `json:"year,omitempty"`
	Events             []ExtractedEvent `json:"events,omitempty"`
	Notes              []string         `json:"notes_or_announcements,omitempty"`
}

// Extractor is the interface the ingestion job depends on. Implementations
// return the parsed result plus the raw response payload for auditing; on
// failure the raw payload (when any) is still returned alongside the error.
type Extractor interface {
	ExtractCalendar(ctx context.Context, imagePath string) (Extraction, []byte, error)
}

// ErrorPayload builds the structured raw_result stored on a failed page.
// When the extraction service produced any response before failing, raw
// carries it so the offending output stays available for diagnosis.
func ErrorPayload(message string, raw []byte) json.RawMessage {
	payload := map[string]any{
		"successfully_parsed": false,
		"status":              "failed",
		"error":               message,
	}
	if len(raw) > 0 {
		payload["raw"] = string(raw)
	}
	b, _ := json.Marshal(payload)
	return b
}
