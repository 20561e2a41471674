package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	_ "modernc.org/sqlite"

	"github.com/adeola-m/calendar-tracker/gen/ent"
	"github.com/adeola-m/calendar-tracker/internal/common"
	"github.com/adeola-m/calendar-tracker/internal/entity"
)

// setupTestClient creates an ent client over an in-memory SQLite database.
func setupTestClient(t *testing.T) *ent.Client {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func successfulPage(t *testing.T, pages CalendarPageRepository, year, month int) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	page, err := pages.Create(ctx, "/photos/calendar.jpg")
	if err != nil {
		t.Fatalf("create page: %v", err)
	}
	if err := pages.FinishSuccess(ctx, page.ID, month, year, nil, []byte(`{"successfully_parsed":true}`)); err != nil {
		t.Fatalf("finish page: %v", err)
	}
	return page.ID
}

func TestReplaceForPageSecondBatchWins(t *testing.T) {
	client := setupTestClient(t)
	logger := slog.Default()
	pages := NewCalendarPageRepository(client, logger)
	events := NewCalendarEventRepository(client, logger)
	ctx := context.Background()

	pageID := successfulPage(t, pages, 2026, 3)

	first := []*entity.CalendarEvent{
		{Day: 3, Title: "Bingo", OriginalText: "3 Bingo", Color: "black"},
		{Day: 5, Title: "Movie Night", OriginalText: "5 Movie Night", Color: "red"},
		{Day: 9, Title: "Potluck", OriginalText: "9 Potluck", Color: "black"},
	}
	if err := events.ReplaceForPage(ctx, pageID, first); err != nil {
		t.Fatalf("first replace: %v", err)
	}

	second := []*entity.CalendarEvent{
		{Day: 4, Title: "Bingo (corrected)", OriginalText: "4 Bingo", Color: "black"},
		{Day: 5, Title: "Movie Night", OriginalText: "5 Movie Night", Color: "red"},
	}
	if err := events.ReplaceForPage(ctx, pageID, second); err != nil {
		t.Fatalf("second replace: %v", err)
	}

	got, err := events.ListForPage(ctx, pageID)
	if err != nil {
		t.Fatalf("list for page: %v", err)
	}
	if len(got) != len(second) {
		t.Fatalf("got %d events after second replace, want %d", len(got), len(second))
	}
	for i, ev := range got {
		if ev.Title != second[i].Title || ev.Day != second[i].Day {
			t.Fatalf("event %d = (%d, %q), want (%d, %q)", i, ev.Day, ev.Title, second[i].Day, second[i].Title)
		}
		if ev.Position != i {
			t.Fatalf("event %d position = %d, want %d", i, ev.Position, i)
		}
	}
}

func TestReplaceForPageEmptyBatchClears(t *testing.T) {
	client := setupTestClient(t)
	logger := slog.Default()
	pages := NewCalendarPageRepository(client, logger)
	events := NewCalendarEventRepository(client, logger)
	ctx := context.Background()

	pageID := successfulPage(t, pages, 2026, 3)
	if err := events.ReplaceForPage(ctx, pageID, []*entity.CalendarEvent{
		{Day: 1, Title: "Kickoff", OriginalText: "1 Kickoff", Color: "black"},
	}); err != nil {
		t.Fatalf("seed replace: %v", err)
	}

	if err := events.ReplaceForPage(ctx, pageID, nil); err != nil {
		t.Fatalf("empty replace: %v", err)
	}
	got, err := events.ListForPage(ctx, pageID)
	if err != nil {
		t.Fatalf("list for page: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d events after empty replace, want 0", len(got))
	}
}

func TestListForDayOnlySuccessfulPages(t *testing.T) {
	client := setupTestClient(t)
	logger := slog.Default()
	pages := NewCalendarPageRepository(client, logger)
	events := NewCalendarEventRepository(client, logger)
	ctx := context.Background()

	goodID := successfulPage(t, pages, 2026, 3)
	if err := events.ReplaceForPage(ctx, goodID, []*entity.CalendarEvent{
		{Day: 10, Title: "Lunch", OriginalText: "10 Lunch", Color: "black"},
		{Day: 11, Title: "Dinner", OriginalText: "11 Dinner", Color: "black"},
	}); err != nil {
		t.Fatalf("replace good: %v", err)
	}

	// A page of the same month that never reached success. Its events must
	// stay invisible to day queries.
	staleRow, err := client.CalendarPage.Create().
		SetImagePath("/photos/stale.jpg").
		SetStatus("failed").
		SetMonth(3).
		SetYear(2026).
		Save(ctx)
	if err != nil {
		t.Fatalf("create stale page: %v", err)
	}
	if err := events.ReplaceForPage(ctx, staleRow.ID, []*entity.CalendarEvent{
		{Day: 10, Title: "Ghost", OriginalText: "10 Ghost", Color: "black"},
	}); err != nil {
		t.Fatalf("replace stale: %v", err)
	}

	got, err := events.ListForDay(ctx, 2026, 3, 10)
	if err != nil {
		t.Fatalf("list for day: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Lunch" {
		t.Fatalf("day query returned %d events (%v), want just Lunch", len(got), got)
	}

	has, err := events.MonthHasEvents(ctx, 2026, 3)
	if err != nil {
		t.Fatalf("month has events: %v", err)
	}
	if !has {
		t.Fatal("MonthHasEvents(2026, 3) = false, want true")
	}
	has, err = events.MonthHasEvents(ctx, 2026, 4)
	if err != nil {
		t.Fatalf("month has events: %v", err)
	}
	if has {
		t.Fatal("MonthHasEvents(2026, 4) = true, want false")
	}
}

func TestListForMonthsAndDates(t *testing.T) {
	client := setupTestClient(t)
	logger := slog.Default()
	pages := NewCalendarPageRepository(client, logger)
	events := NewCalendarEventRepository(client, logger)
	ctx := context.Background()

	marchID := successfulPage(t, pages, 2026, 3)
	aprilID := successfulPage(t, pages, 2026, 4)
	if err := events.ReplaceForPage(ctx, marchID, []*entity.CalendarEvent{
		{Day: 30, Title: "March Closing", OriginalText: "30 March Closing", Color: "black"},
	}); err != nil {
		t.Fatalf("replace march: %v", err)
	}
	if err := events.ReplaceForPage(ctx, aprilID, []*entity.CalendarEvent{
		{Day: 1, Title: "April Opening", OriginalText: "1 April Opening", Color: "black"},
		{Day: 20, Title: "Mid April", OriginalText: "20 Mid April", Color: "black"},
	}); err != nil {
		t.Fatalf("replace april: %v", err)
	}

	byMonths, err := events.ListForMonths(ctx, []YearMonth{{Year: 2026, Month: 3}, {Year: 2026, Month: 4}})
	if err != nil {
		t.Fatalf("list for months: %v", err)
	}
	if len(byMonths) != 3 {
		t.Fatalf("got %d events for both months, want 3", len(byMonths))
	}
	// Every event resolves its month/year from the owning page.
	for _, ev := range byMonths {
		wantMonth := 4
		if ev.Title == "March Closing" {
			wantMonth = 3
		}
		if ev.Year != 2026 || ev.Month != wantMonth {
			t.Fatalf("event %q = %d-%02d, want 2026-%02d", ev.Title, ev.Year, ev.Month, wantMonth)
		}
	}

	// The week spanning the month boundary picks up one event per side.
	week := WeekDates(date(2026, 3, 29))
	byDates, err := events.ListForDates(ctx, week)
	if err != nil {
		t.Fatalf("list for dates: %v", err)
	}
	if len(byDates) != 2 {
		t.Fatalf("got %d events for boundary week, want 2", len(byDates))
	}
	titles := map[string]bool{}
	for _, ev := range byDates {
		titles[ev.Title] = true
	}
	if !titles["March Closing"] || !titles["April Opening"] {
		t.Fatalf("boundary week events = %v, want March Closing and April Opening", titles)
	}
}

func TestGetByIDUnknownPage(t *testing.T) {
	client := setupTestClient(t)
	pages := NewCalendarPageRepository(client, slog.Default())

	_, err := pages.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("err = %v, want wrapped ErrNotFound", err)
	}
}

func TestListForMonthsWildcards(t *testing.T) {
	client := setupTestClient(t)
	logger := slog.Default()
	pages := NewCalendarPageRepository(client, logger)
	events := NewCalendarEventRepository(client, logger)
	ctx := context.Background()

	lastYearID := successfulPage(t, pages, 2025, 3)
	thisYearID := successfulPage(t, pages, 2026, 3)
	aprilID := successfulPage(t, pages, 2026, 4)
	for _, seed := range []struct {
		id    uuid.UUID
		title string
	}{
		{lastYearID, "March 2025"},
		{thisYearID, "March 2026"},
		{aprilID, "April 2026"},
	} {
		if err := events.ReplaceForPage(ctx, seed.id, []*entity.CalendarEvent{
			{Day: 1, Title: seed.title, OriginalText: seed.title, Color: "black"},
		}); err != nil {
			t.Fatalf("seed %s: %v", seed.title, err)
		}
	}

	// Month without a year matches every year.
	byMonth, err := events.ListForMonths(ctx, []YearMonth{{Month: 3}})
	if err != nil {
		t.Fatalf("list by month: %v", err)
	}
	if len(byMonth) != 2 {
		t.Fatalf("got %d events for month 3 across years, want 2", len(byMonth))
	}

	// Year without a month matches every month of that year.
	byYear, err := events.ListForMonths(ctx, []YearMonth{{Year: 2026}})
	if err != nil {
		t.Fatalf("list by year: %v", err)
	}
	if len(byYear) != 2 {
		t.Fatalf("got %d events for year 2026, want 2", len(byYear))
	}
}
