package server

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	calendarpb "github.com/adeola-m/calendar-tracker/gen/proto/calendar/v1"
	"github.com/adeola-m/calendar-tracker/internal/common"
	"github.com/adeola-m/calendar-tracker/internal/entity"
	"github.com/adeola-m/calendar-tracker/internal/repository"
)

type fakePageRepo struct {
	pages map[uuid.UUID]*entity.CalendarPage
}

func (f *fakePageRepo) Create(context.Context, string) (*entity.CalendarPage, error) {
	return nil, nil
}

func (f *fakePageRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.CalendarPage, error) {
	p, ok := f.pages[id]
	if !ok {
		return nil, common.WrapError(common.ErrNotFound, "calendar_page "+id.String())
	}
	return p, nil
}

func (f *fakePageRepo) MarkProcessing(context.Context, uuid.UUID) error { return nil }
func (f *fakePageRepo) FinishSuccess(context.Context, uuid.UUID, int, int, []string, json.RawMessage) error {
	return nil
}
func (f *fakePageRepo) FinishFailure(context.Context, uuid.UUID, json.RawMessage) error { return nil }
func (f *fakePageRepo) MonthHasPages(context.Context, int, int) (bool, error)           { return false, nil }

type fakeEventRepo struct {
	events []*entity.CalendarEvent

	monthsArg []repository.YearMonth
	datesArg  []time.Time
}

func (f *fakeEventRepo) ReplaceForPage(context.Context, uuid.UUID, []*entity.CalendarEvent) error {
	return nil
}

func (f *fakeEventRepo) ListForPage(context.Context, uuid.UUID) ([]*entity.CalendarEvent, error) {
	return f.events, nil
}

func (f *fakeEventRepo) ListForDay(context.Context, int, int, int) ([]*entity.CalendarEvent, error) {
	return f.events, nil
}

func (f *fakeEventRepo) ListForMonths(_ context.Context, months []repository.YearMonth) ([]*entity.CalendarEvent, error) {
	f.monthsArg = months
	return f.events, nil
}

func (f *fakeEventRepo) ListForDates(_ context.Context, dates []time.Time) ([]*entity.CalendarEvent, error) {
	f.datesArg = dates
	return f.events, nil
}

func (f *fakeEventRepo) MonthHasEvents(context.Context, int, int) (bool, error) {
	return len(f.events) > 0, nil
}

func newTestService(pages *fakePageRepo, events *fakeEventRepo) *CalendarService {
	return NewCalendarService(nil, pages, events, nil, nil)
}

func intp(v int) *int       { return &v }
func strp(s string) *string { return &s }

func TestListEventsRangeOrdersAcrossMonths(t *testing.T) {
	// Repository order within a range query is by day, which interleaves
	// months; the response must come back in calendar order with each
	// event carrying its resolved month and year.
	events := &fakeEventRepo{events: []*entity.CalendarEvent{
		{Year: 2026, Month: 2, Day: 1, AllDay: true, Title: "feb-first"},
		{Year: 2026, Month: 1, Day: 29, Hour: intp(6), AmPm: strp("pm"), Title: "jan-evening"},
		{Year: 2026, Month: 1, Day: 29, Hour: intp(9), AmPm: strp("am"), Title: "jan-morning"},
		{Year: 2026, Month: 2, Day: 4, Title: "feb-untimed"},
	}}
	svc := newTestService(&fakePageRepo{}, events)

	resp, err := svc.ListEvents(context.Background(), &calendarpb.ListEventsRequest{
		StartDate: "2026-01-29",
		EndDate:   "2026-02-04",
	})
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}

	want := []string{"jan-morning", "jan-evening", "feb-first", "feb-untimed"}
	if len(resp.Events) != len(want) {
		t.Fatalf("got %d events, want %d", len(resp.Events), len(want))
	}
	for i, w := range want {
		if resp.Events[i].Title != w {
			t.Fatalf("order[%d] = %q, want %q", i, resp.Events[i].Title, w)
		}
	}
	first := resp.Events[0]
	if first.Month != 1 || first.Year != 2026 {
		t.Fatalf("event month/year = %d/%d, want 1/2026", first.Month, first.Year)
	}
	if len(events.monthsArg) != 2 {
		t.Fatalf("range expanded to %d months, want 2", len(events.monthsArg))
	}
}

func TestListEventsMonthWithoutYear(t *testing.T) {
	events := &fakeEventRepo{}
	svc := newTestService(&fakePageRepo{}, events)

	if _, err := svc.ListEvents(context.Background(), &calendarpb.ListEventsRequest{Month: 3}); err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events.monthsArg) != 1 || events.monthsArg[0] != (repository.YearMonth{Month: 3}) {
		t.Fatalf("months filter = %v, want just month 3 across years", events.monthsArg)
	}
}

func TestListEventsYearOnly(t *testing.T) {
	events := &fakeEventRepo{}
	svc := newTestService(&fakePageRepo{}, events)

	if _, err := svc.ListEvents(context.Background(), &calendarpb.ListEventsRequest{Year: 2026}); err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events.monthsArg) != 1 || events.monthsArg[0] != (repository.YearMonth{Year: 2026}) {
		t.Fatalf("months filter = %v, want just year 2026", events.monthsArg)
	}
}

func TestListEventsWeekImpossibleStartIsEmpty(t *testing.T) {
	events := &fakeEventRepo{events: []*entity.CalendarEvent{{Title: "never"}}}
	svc := newTestService(&fakePageRepo{}, events)

	resp, err := svc.ListEvents(context.Background(), &calendarpb.ListEventsRequest{
		Year: 2026, Month: 2, Day: 30, Scope: "week",
	})
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(resp.Events) != 0 {
		t.Fatalf("got %d events for an impossible date, want 0", len(resp.Events))
	}
	if events.datesArg != nil {
		t.Fatal("repository must not be queried for an impossible start date")
	}
}

func TestListEventsNoFilterRejected(t *testing.T) {
	svc := newTestService(&fakePageRepo{}, &fakeEventRepo{})

	_, err := svc.ListEvents(context.Background(), &calendarpb.ListEventsRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestGetPageNotFound(t *testing.T) {
	svc := newTestService(&fakePageRepo{pages: map[uuid.UUID]*entity.CalendarPage{}}, &fakeEventRepo{})

	_, err := svc.GetPage(context.Background(), &calendarpb.GetPageRequest{PageId: uuid.New().String()})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("code = %v, want NotFound", status.Code(err))
	}
}
