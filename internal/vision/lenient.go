package vision

import (
	"encoding/json"
	"strings"
)

// StripCodeFence removes a surrounding markdown code fence from a model
// response. Some models wrap the JSON in ```json ... ``` even when asked
// for a bare object.
func StripCodeFence(raw []byte) []byte {
	s := strings.TrimSpace(string(raw))
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}
	return []byte(s)
}

// ParseExtraction validates a raw model payload against the calendar
// schema and decodes it. The cleaned payload is returned so callers can
// persist exactly what was validated.
func ParseExtraction(raw []byte) (Extraction, []byte, error) {
	cleaned := StripCodeFence(raw)
	if err := ValidateJSONAgainstSchema(BuildCalendarJSONSchema(), cleaned); err != nil {
		return Extraction{}, cleaned, err
	}
	var out Extraction
	if err := json.Unmarshal(cleaned, &out); err != nil {
		return Extraction{}, cleaned, err
	}
	return out, cleaned, nil
}
