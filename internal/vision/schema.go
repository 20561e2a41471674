package vision

// BuildCalendarJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We embed it in the extraction prompt as the output contract
// and also use it locally to validate what comes back.
func BuildCalendarJSONSchema() map[string]any {
	eventProps := map[string]any{
		"day":           map[string]any{"type": "integer", "minimum": 1, "maximum": 31},
		"hour":          map[string]any{"type": "integer", "minimum": 0, "maximum": 23},
		"minute":        map[string]any{"type": "integer", "minimum": 0, "maximum": 59},
		"am_pm":         map[string]any{"type": "string", "enum": []string{"am", "pm"}},
		"title":         map[string]any{"type": "string", "minLength": 1},
		"color":         map[string]any{"type": "string"},
		"all_day":       map[string]any{"type": "boolean"},
		"featured":      map[string]any{"type": "boolean"},
		"original_text": map[string]any{"type": "string"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"successfully_parsed": map[string]any{"type": "boolean"},
			"month":               map[string]any{"type": "integer", "minimum": 1, "maximum": 12},
			"year":                map[string]any{"type": "integer"},
			"events": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties":           eventProps,
					"required":             []string{"day", "title", "original_text"},
				},
			},
			"notes_or_announcements": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []string{"successfully_parsed"},
	}
}
