package vision

import (
	"encoding/json"
	"testing"
)

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare json untouched", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading whitespace", "  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := string(StripCodeFence([]byte(tc.in))); got != tc.want {
				t.Fatalf("StripCodeFence = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseExtractionWellFormed(t *testing.T) {
	payload := `{
		"successfully_parsed": true,
		"month": 9,
		"year": 2026,
		"events": [
			{"day": 1, "hour": 10, "minute": 30, "am_pm": "am", "title": "History Facts", "color": "black", "all_day": false, "featured": false, "original_text": "10;30am History Facts"},
			{"day": 2, "title": "Picnic", "all_day": true, "color": "red", "featured": true, "original_text": "Picnic"}
		],
		"notes_or_announcements": ["Office closed Labor Day"]
	}`

	out, cleaned, err := ParseExtraction([]byte(payload))
	if err != nil {
		t.Fatalf("ParseExtraction: %v", err)
	}
	if !out.SuccessfullyParsed {
		t.Error("successfully_parsed not decoded")
	}
	if out.Month == nil || *out.Month != 9 || out.Year == nil || *out.Year != 2026 {
		t.Errorf("month/year = %v/%v, want 9/2026", out.Month, out.Year)
	}
	if len(out.Events) != 2 {
		t.Fatalf("events = %d, want 2", len(out.Events))
	}
	first := out.Events[0]
	if first.Hour == nil || *first.Hour != 10 || first.Minute == nil || *first.Minute != 30 {
		t.Errorf("first event time = %v:%v, want 10:30", first.Hour, first.Minute)
	}
	if first.OriginalText != "10;30am History Facts" {
		t.Errorf("original_text = %q", first.OriginalText)
	}
	if out.Events[1].Hour != nil {
		t.Error("all-day event should have no hour")
	}
	if !json.Valid(cleaned) {
		t.Error("cleaned payload is not valid JSON")
	}
}

func TestParseExtractionFenced(t *testing.T) {
	payload := "```json\n{\"successfully_parsed\": false}\n```"
	out, _, err := ParseExtraction([]byte(payload))
	if err != nil {
		t.Fatalf("ParseExtraction: %v", err)
	}
	if out.SuccessfullyParsed {
		t.Error("expected successfully_parsed=false")
	}
}

func TestParseExtractionRejectsMalformed(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"missing required field", `{"month": 9}`},
		{"event without title", `{"successfully_parsed": true, "events": [{"day": 3, "original_text": "x"}]}`},
		{"day out of schema range", `{"successfully_parsed": true, "events": [{"day": 32, "title": "x", "original_text": "x"}]}`},
		{"unknown top-level key", `{"successfully_parsed": true, "bogus": 1}`},
		{"not json at all", `the calendar shows september`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := ParseExtraction([]byte(tc.payload)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestErrorPayload(t *testing.T) {
	raw := ErrorPayload("boom", nil)
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["error"] != "boom" || m["status"] != "failed" {
		t.Fatalf("payload = %v", m)
	}
	if parsed, ok := m["successfully_parsed"].(bool); !ok || parsed {
		t.Fatal("successfully_parsed must be false")
	}
	if _, present := m["raw"]; present {
		t.Fatal("raw must be omitted when the service produced no response")
	}
}

func TestErrorPayloadKeepsRawResponse(t *testing.T) {
	response := `{"month": "March"}`
	raw := ErrorPayload("schema validation failed", []byte(response))
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["raw"] != response {
		t.Fatalf("raw = %v, want the original response text", m["raw"])
	}
}
