package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adeola-m/calendar-tracker/internal/vision"
)

// ExtractCalendar implements vision.Extractor against the Gemini
// generateContent endpoint. The calendar image is inlined base64; the JSON
// output contract is embedded in the prompt and validated locally against
// the same schema, so a malformed response never reaches the caller as a
// parsed result.
func (c *Client) ExtractCalendar(ctx context.Context, imagePath string) (vision.Extraction, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	if c.cfg.APIKey == "" {
		return vision.Extraction{}, nil, fmt.Errorf("GOOGLE_API_KEY not configured")
	}

	data, mimeType, err := readImage(imagePath)
	if err != nil {
		c.logger.Error("vision.extract.read_image_error", "req_id", rid, "path", imagePath, "error", err)
		return vision.Extraction{}, nil, fmt.Errorf("read image: %w", err)
	}

	c.logger.Info("vision.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"mime_type", mimeType,
		"image_bytes", len(data),
	)

	schema := vision.BuildCalendarJSONSchema()
	now := time.Now()
	body := map[string]any{
		"contents": []map[string]any{{
			"parts": []map[string]any{
				{"inline_data": map[string]any{
					"mime_type": mimeType,
					"data":      base64.StdEncoding.EncodeToString(data),
				}},
				{"text": buildPrompt(int(now.Month()), now.Year()) +
					"\n\nReturn ONLY JSON that matches this schema:\n" + mustJSON(schema)},
			},
		}},
		"generationConfig": map[string]any{
			"response_mime_type": "application/json",
		},
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model)
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.logger.Error("vision.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return vision.Extraction{}, raw, err
	}

	var gr struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &gr); err != nil {
		c.logger.Error("vision.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return vision.Extraction{}, raw, fmt.Errorf("decode gemini response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		c.logger.Error("vision.extract.no_candidates",
			"req_id", rid, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return vision.Extraction{}, raw, fmt.Errorf("no candidates in gemini response")
	}

	var text strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}

	out, cleaned, err := vision.ParseExtraction([]byte(text.String()))
	if err != nil {
		c.logger.Error("vision.extract.schema_validation_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return vision.Extraction{}, cleaned, fmt.Errorf("schema validation failed: %w", err)
	}

	c.logger.Info("vision.extract.ok",
		"req_id", rid,
		"successfully_parsed", out.SuccessfullyParsed,
		"events", len(out.Events),
		"notes", len(out.Notes),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, cleaned, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.logger.Warn("gemini response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return raw, fmt.Errorf("gemini status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}

func readImage(path string) ([]byte, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	mt := mime.TypeByExtension("." + ext)
	if mt == "" {
		switch ext {
		case "jpg", "jpeg":
			mt = "image/jpeg"
		case "png":
			mt = "image/png"
		default:
			mt = "application/octet-stream"
		}
	}
	return b, mt, nil
}

func buildPrompt(currentMonth, currentYear int) string {
	parts := []string{
		"Analyze this image of a calendar.",
		"Identify the month and year. Extract all events written on the days. For the event title, make sure it matches exactly as the image shows.",
		"If a time is mis-formatted with a semi-colon (or is some other unusual way), like 10;30, consider it to be 10:30, and make sure the event is still included.",
		"CRITICAL: examine every single day box on the calendar grid thoroughly.",
		"Many days have multiple events. Do not stop after finding the first event for a day.",
		"Scan the calendar row by row. For each day, list ALL distinct text items as separate events, then re-check for missed events.",
		"Capture the original_text for every event found, even if you can't parse the time perfectly. Use that field to save the event data.",
		"Strings like \"10;30am History Facts\" are still events even though the time is mis-formatted.",
		fmt.Sprintf("Defaults if not visible: Month %d, Year %d.", currentMonth, currentYear),
	}
	return strings.Join(parts, "\n")
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
