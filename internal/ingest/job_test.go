package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/adeola-m/calendar-tracker/constants"
	"github.com/adeola-m/calendar-tracker/internal/entity"
	"github.com/adeola-m/calendar-tracker/internal/repository"
	"github.com/adeola-m/calendar-tracker/internal/vision"
)

type fakePageRepo struct {
	mu    sync.Mutex
	pages map[uuid.UUID]*entity.CalendarPage
}

func newFakePageRepo() *fakePageRepo {
	return &fakePageRepo{pages: make(map[uuid.UUID]*entity.CalendarPage)}
}

func (r *fakePageRepo) Create(_ context.Context, imagePath string) (*entity.CalendarPage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := &entity.CalendarPage{
		ID:        uuid.New(),
		ImagePath: imagePath,
		Status:    string(constants.PageStatusPending),
		CreatedAt: time.Now(),
	}
	r.pages[p.ID] = p
	cp := *p
	return &cp, nil
}

func (r *fakePageRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.CalendarPage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pages[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *p
	return &cp, nil
}

func (r *fakePageRepo) MarkProcessing(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pages[id].Status = string(constants.PageStatusProcessing)
	return nil
}

func (r *fakePageRepo) FinishSuccess(_ context.Context, id uuid.UUID, month, year int, notes []string, raw json.RawMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.pages[id]
	p.Status = string(constants.PageStatusSuccess)
	p.Month = &month
	p.Year = &year
	p.Notes = notes
	p.RawResult = raw
	return nil
}

func (r *fakePageRepo) FinishFailure(_ context.Context, id uuid.UUID, raw json.RawMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.pages[id]
	p.Status = string(constants.PageStatusFailed)
	p.RawResult = raw
	return nil
}

func (r *fakePageRepo) MonthHasPages(context.Context, int, int) (bool, error) {
	return false, nil
}

func (r *fakePageRepo) status(id uuid.UUID) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pages[id].Status
}

type fakeEventRepo struct {
	mu      sync.Mutex
	batches map[uuid.UUID][]*entity.CalendarEvent
	failure error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{batches: make(map[uuid.UUID][]*entity.CalendarEvent)}
}

func (r *fakeEventRepo) ReplaceForPage(_ context.Context, pageID uuid.UUID, events []*entity.CalendarEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failure != nil {
		return r.failure
	}
	r.batches[pageID] = events
	return nil
}

func (r *fakeEventRepo) ListForPage(_ context.Context, pageID uuid.UUID) ([]*entity.CalendarEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.batches[pageID], nil
}

func (r *fakeEventRepo) ListForDay(context.Context, int, int, int) ([]*entity.CalendarEvent, error) {
	return nil, nil
}

func (r *fakeEventRepo) ListForMonths(context.Context, []repository.YearMonth) ([]*entity.CalendarEvent, error) {
	return nil, nil
}

func (r *fakeEventRepo) ListForDates(context.Context, []time.Time) ([]*entity.CalendarEvent, error) {
	return nil, nil
}

func (r *fakeEventRepo) MonthHasEvents(context.Context, int, int) (bool, error) {
	return false, nil
}

type stubExtractor struct {
	res   vision.Extraction
	raw   []byte
	err   error
	delay time.Duration
}

func (s *stubExtractor) ExtractCalendar(context.Context, string) (vision.Extraction, []byte, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.res, s.raw, s.err
}

func intp(v int) *int       { return &v }
func strp(s string) *string { return &s }

func waitTerminal(t *testing.T, repo *fakePageRepo, id uuid.UUID) string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s := repo.status(id); constants.PageStatus(s).Terminal() {
			return s
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("page %s never reached a terminal status (last: %s)", id, repo.status(id))
	return ""
}

func TestSubmitReturnsProcessing(t *testing.T) {
	pages := newFakePageRepo()
	events := newFakeEventRepo()
	ext := &stubExtractor{
		res:   vision.Extraction{SuccessfullyParsed: true, Month: intp(9), Year: intp(2026)},
		raw:   []byte(`{"successfully_parsed":true}`),
		delay: 50 * time.Millisecond,
	}
	job := NewJob(pages, events, ext, time.Second, nil)

	page, err := job.Submit(context.Background(), "/images/sept.jpg")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if page.Status != string(constants.PageStatusProcessing) {
		t.Fatalf("status after Submit = %q, want processing", page.Status)
	}
	if got := pages.status(page.ID); got != string(constants.PageStatusProcessing) {
		t.Fatalf("stored status after Submit = %q, want processing", got)
	}
	waitTerminal(t, pages, page.ID)
}

func TestRoundTripPersistsAllEvents(t *testing.T) {
	stub := []vision.ExtractedEvent{
		{Day: 1, Hour: intp(10), Minute: intp(30), AmPm: strp("am"), Title: "History Facts", Color: "black", OriginalText: "10;30am History Facts"},
		{Day: 2, AllDay: true, Title: "Picnic", Color: "red", Featured: true, OriginalText: "Picnic"},
		{Day: 15, Title: "Mystery", OriginalText: "Mystery"},
	}
	pages := newFakePageRepo()
	events := newFakeEventRepo()
	ext := &stubExtractor{
		res: vision.Extraction{
			SuccessfullyParsed: true,
			Month:              intp(9),
			Year:               intp(2026),
			Events:             stub,
			Notes:              []string{"Office closed Labor Day"},
		},
		raw: []byte(`{"successfully_parsed":true}`),
	}
	job := NewJob(pages, events, ext, time.Second, nil)

	page, err := job.Submit(context.Background(), "/images/sept.jpg")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got := waitTerminal(t, pages, page.ID); got != string(constants.PageStatusSuccess) {
		t.Fatalf("terminal status = %q, want success", got)
	}

	stored, _ := events.ListForPage(context.Background(), page.ID)
	if len(stored) != len(stub) {
		t.Fatalf("stored %d events, want %d", len(stored), len(stub))
	}
	for i, want := range stub {
		got := stored[i]
		if got.Day != want.Day || got.Title != want.Title || got.OriginalText != want.OriginalText ||
			got.AllDay != want.AllDay || got.Featured != want.Featured {
			t.Errorf("event %d = %+v, want %+v", i, got, want)
		}
	}
	// Untimed event survives with no hour.
	if stored[2].Hour != nil {
		t.Error("untimed event gained an hour")
	}
	// Default color applied.
	if stored[2].Color != "black" {
		t.Errorf("default color = %q, want black", stored[2].Color)
	}

	final, _ := pages.GetByID(context.Background(), page.ID)
	if final.Month == nil || *final.Month != 9 || final.Year == nil || *final.Year != 2026 {
		t.Errorf("month/year = %v/%v, want 9/2026", final.Month, final.Year)
	}
	if len(final.Notes) != 1 {
		t.Errorf("notes = %v", final.Notes)
	}
}

func TestExtractionErrorBecomesFailed(t *testing.T) {
	pages := newFakePageRepo()
	events := newFakeEventRepo()
	response := `{"month": "March", "events": "not-a-list"}`
	ext := &stubExtractor{
		err: errors.New("schema validation failed: events must be an array"),
		raw: []byte(response),
	}
	job := NewJob(pages, events, ext, time.Second, nil)

	page, err := job.Submit(context.Background(), "/images/bad.jpg")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got := waitTerminal(t, pages, page.ID); got != string(constants.PageStatusFailed) {
		t.Fatalf("terminal status = %q, want failed", got)
	}

	final, _ := pages.GetByID(context.Background(), page.ID)
	if final.Month != nil || final.Year != nil {
		t.Error("failed page must leave month/year null")
	}
	var payload map[string]any
	if err := json.Unmarshal(final.RawResult, &payload); err != nil {
		t.Fatalf("raw_result not JSON: %v", err)
	}
	if payload["error"] != "schema validation failed: events must be an array" {
		t.Errorf("raw_result error = %v", payload["error"])
	}
	if payload["raw"] != response {
		t.Errorf("raw_result raw = %v, want the rejected response text", payload["raw"])
	}
}

func TestUnrecognizedCalendarBecomesFailed(t *testing.T) {
	pages := newFakePageRepo()
	events := newFakeEventRepo()
	ext := &stubExtractor{
		res: vision.Extraction{SuccessfullyParsed: false},
		raw: []byte(`{"successfully_parsed":false}`),
	}
	job := NewJob(pages, events, ext, time.Second, nil)

	page, _ := job.Submit(context.Background(), "/images/cat.jpg")
	if got := waitTerminal(t, pages, page.ID); got != string(constants.PageStatusFailed) {
		t.Fatalf("terminal status = %q, want failed", got)
	}
}

func TestPersistenceErrorBecomesFailed(t *testing.T) {
	pages := newFakePageRepo()
	events := newFakeEventRepo()
	events.failure = errors.New("storage unavailable")
	ext := &stubExtractor{
		res: vision.Extraction{
			SuccessfullyParsed: true,
			Month:              intp(9),
			Year:               intp(2026),
			Events:             []vision.ExtractedEvent{{Day: 1, Title: "x", OriginalText: "x"}},
		},
		raw: []byte(`{}`),
	}
	job := NewJob(pages, events, ext, time.Second, nil)

	page, _ := job.Submit(context.Background(), "/images/sept.jpg")
	if got := waitTerminal(t, pages, page.ID); got != string(constants.PageStatusFailed) {
		t.Fatalf("terminal status = %q, want failed", got)
	}
}

func TestOutOfRangeDaySkippedNotFatal(t *testing.T) {
	pages := newFakePageRepo()
	events := newFakeEventRepo()
	ext := &stubExtractor{
		res: vision.Extraction{
			SuccessfullyParsed: true,
			Month:              intp(2), // 2026-02 has 28 days
			Year:               intp(2026),
			Events: []vision.ExtractedEvent{
				{Day: 14, Title: "Valentines", OriginalText: "Valentines"},
				{Day: 30, Title: "Ghost", OriginalText: "Ghost"},
				{Day: 28, Title: "Month End", OriginalText: "Month End"},
			},
		},
		raw: []byte(`{}`),
	}
	job := NewJob(pages, events, ext, time.Second, nil)

	page, _ := job.Submit(context.Background(), "/images/feb.jpg")
	if got := waitTerminal(t, pages, page.ID); got != string(constants.PageStatusSuccess) {
		t.Fatalf("terminal status = %q, want success", got)
	}

	stored, _ := events.ListForPage(context.Background(), page.ID)
	if len(stored) != 2 {
		t.Fatalf("stored %d events, want 2 (bad day skipped)", len(stored))
	}
	for _, e := range stored {
		if e.Title == "Ghost" {
			t.Error("out-of-range event was persisted")
		}
	}
}
