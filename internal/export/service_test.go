package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/adeola-m/calendar-tracker/internal/entity"
	"github.com/adeola-m/calendar-tracker/internal/repository"
)

type fakeEventRepo struct {
	events []*entity.CalendarEvent
}

func (f *fakeEventRepo) ReplaceForPage(context.Context, uuid.UUID, []*entity.CalendarEvent) error {
	return nil
}

func (f *fakeEventRepo) ListForPage(context.Context, uuid.UUID) ([]*entity.CalendarEvent, error) {
	return nil, nil
}

func (f *fakeEventRepo) ListForDay(context.Context, int, int, int) ([]*entity.CalendarEvent, error) {
	return nil, nil
}

func (f *fakeEventRepo) ListForMonths(context.Context, []repository.YearMonth) ([]*entity.CalendarEvent, error) {
	return f.events, nil
}

func (f *fakeEventRepo) ListForDates(context.Context, []time.Time) ([]*entity.CalendarEvent, error) {
	return nil, nil
}

func (f *fakeEventRepo) MonthHasEvents(context.Context, int, int) (bool, error) {
	return len(f.events) > 0, nil
}

func intp(v int) *int       { return &v }
func strp(s string) *string { return &s }

func TestExportMonthRowsInCanonicalOrder(t *testing.T) {
	// Storage hands back extraction order within a day; the sheet must
	// show the normalized time order instead.
	repo := &fakeEventRepo{events: []*entity.CalendarEvent{
		{Year: 2026, Month: 3, Day: 5, Hour: intp(6), AmPm: strp("pm"), Title: "Bingo Night", Color: "black"},
		{Year: 2026, Month: 3, Day: 5, Hour: intp(9), Minute: intp(30), AmPm: strp("am"), Title: "Morning Stretch", Color: "black"},
		{Year: 2026, Month: 3, Day: 2, AllDay: true, Title: "Spirit Week", Color: "red"},
	}}
	svc := NewService(repo, nil)

	xlsx, err := svc.ExportMonthXLSX(context.Background(), 2026, 3)
	if err != nil {
		t.Fatalf("ExportMonthXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(xlsx))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("March")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want header + 3", len(rows))
	}
	if rows[0][0] != "Day" || rows[0][1] != "Time" {
		t.Fatalf("unexpected header row: %v", rows[0])
	}

	type rowCheck struct{ day, display, title string }
	want := []rowCheck{
		{"2026-03-02", "All Day", "Spirit Week"},
		{"2026-03-05", "9:30 AM", "Morning Stretch"},
		{"2026-03-05", "6:00 PM", "Bingo Night"},
	}
	for i, w := range want {
		row := rows[i+1]
		if row[0] != w.day || row[1] != w.display || row[2] != w.title {
			t.Fatalf("row %d = %v, want %v", i+1, row, w)
		}
	}
}

func TestExportMonthRejectsBadMonth(t *testing.T) {
	svc := NewService(&fakeEventRepo{}, nil)
	if _, err := svc.ExportMonthXLSX(context.Background(), 2026, 13); err == nil {
		t.Fatal("expected error for month 13")
	}
}
