package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/adeola-m/calendar-tracker/constants"
	"github.com/adeola-m/calendar-tracker/gen/ent"
	"github.com/adeola-m/calendar-tracker/gen/ent/calendarevent"
	"github.com/adeola-m/calendar-tracker/gen/ent/calendarpage"
	"github.com/adeola-m/calendar-tracker/gen/ent/predicate"
	"github.com/adeola-m/calendar-tracker/internal/entity"
	"github.com/adeola-m/calendar-tracker/internal/utils"
)

type CalendarEventRepository interface {
	// ReplaceForPage deletes every event owned by pageID and inserts the
	// batch in one transaction. Readers never observe a partial batch.
	ReplaceForPage(ctx context.Context, pageID uuid.UUID, events []*entity.CalendarEvent) error
	ListForPage(ctx context.Context, pageID uuid.UUID) ([]*entity.CalendarEvent, error)
	ListForDay(ctx context.Context, year, month, day int) ([]*entity.CalendarEvent, error)
	ListForMonths(ctx context.Context, months []YearMonth) ([]*entity.CalendarEvent, error)
	ListForDates(ctx context.Context, dates []time.Time) ([]*entity.CalendarEvent, error)
	MonthHasEvents(ctx context.Context, year, month int) (bool, error)
}

type calendarEventRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewCalendarEventRepository(entc *ent.Client, logger *slog.Logger) CalendarEventRepository {
	return &calendarEventRepo{ent: entc, logger: logger}
}

func (r *calendarEventRepo) ReplaceForPage(ctx context.Context, pageID uuid.UUID, events []*entity.CalendarEvent) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		r.logger.Error("calendar_event replace: begin tx failed", "page_id", pageID, "error", err)
		return err
	}

	if _, err := tx.CalendarEvent.Delete().
		Where(calendarevent.PageID(pageID)).
		Exec(ctx); err != nil {
		r.logger.Error("calendar_event replace: delete failed", "page_id", pageID, "error", err)
		return rollback(tx, err)
	}

	if len(events) > 0 {
		bulk := make([]*ent.CalendarEventCreate, len(events))
		for i, e := range events {
			create := tx.CalendarEvent.Create().
				SetPageID(pageID).
				SetDay(e.Day).
				SetAllDay(e.AllDay).
				SetTitle(e.Title).
				SetOriginalText(e.OriginalText).
				SetFeatured(e.Featured).
				SetPosition(i).
				SetNillableHour(e.Hour).
				SetNillableMinute(e.Minute).
				SetNillableAmPm(e.AmPm)
			if e.Color != "" {
				create = create.SetColor(e.Color)
			}
			bulk[i] = create
		}
		if _, err := tx.CalendarEvent.CreateBulk(bulk...).Save(ctx); err != nil {
			r.logger.Error("calendar_event replace: insert failed", "page_id", pageID, "count", len(events), "error", err)
			return rollback(tx, err)
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("calendar_event replace: commit failed", "page_id", pageID, "error", err)
		return err
	}
	r.logger.Info("calendar_event batch replaced", "page_id", pageID, "count", len(events))
	return nil
}

func (r *calendarEventRepo) ListForPage(ctx context.Context, pageID uuid.UUID) ([]*entity.CalendarEvent, error) {
	rows, err := r.ent.CalendarEvent.Query().
		Where(calendarevent.PageID(pageID)).
		WithPage().
		Order(calendarevent.ByDay(), calendarevent.ByPosition()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list events for page", "page_id", pageID, "error", err)
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *calendarEventRepo) ListForDay(ctx context.Context, year, month, day int) ([]*entity.CalendarEvent, error) {
	rows, err := r.ent.CalendarEvent.Query().
		Where(
			calendarevent.Day(day),
			calendarevent.HasPageWith(successfulMonth(year, month)...),
		).
		WithPage().
		Order(calendarevent.ByPosition()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list events for day", "year", year, "month", month, "day", day, "error", err)
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *calendarEventRepo) ListForMonths(ctx context.Context, months []YearMonth) ([]*entity.CalendarEvent, error) {
	if len(months) == 0 {
		return nil, nil
	}
	preds := make([]predicate.CalendarPage, 0, len(months))
	for _, ym := range months {
		preds = append(preds, calendarpage.And(successfulMonth(ym.Year, ym.Month)...))
	}
	rows, err := r.ent.CalendarEvent.Query().
		Where(calendarevent.HasPageWith(calendarpage.Or(preds...))).
		WithPage().
		Order(calendarevent.ByDay(), calendarevent.ByPosition()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list events for months", "months", len(months), "error", err)
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *calendarEventRepo) ListForDates(ctx context.Context, dates []time.Time) ([]*entity.CalendarEvent, error) {
	if len(dates) == 0 {
		return nil, nil
	}
	preds := make([]predicate.CalendarEvent, 0, len(dates))
	for _, d := range dates {
		preds = append(preds, calendarevent.And(
			calendarevent.Day(d.Day()),
			calendarevent.HasPageWith(successfulMonth(d.Year(), int(d.Month()))...),
		))
	}
	rows, err := r.ent.CalendarEvent.Query().
		Where(calendarevent.Or(preds...)).
		WithPage().
		Order(calendarevent.ByDay(), calendarevent.ByPosition()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list events for dates", "dates", len(dates), "error", err)
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *calendarEventRepo) MonthHasEvents(ctx context.Context, year, month int) (bool, error) {
	return r.ent.CalendarEvent.Query().
		Where(calendarevent.HasPageWith(successfulMonth(year, month)...)).
		Exist(ctx)
}

// successfulMonth matches successfully extracted pages. A zero year or
// month is a wildcard, so callers can filter by month across years or by
// year across months.
func successfulMonth(year, month int) []predicate.CalendarPage {
	preds := []predicate.CalendarPage{
		calendarpage.Status(string(constants.PageStatusSuccess)),
	}
	if year != 0 {
		preds = append(preds, calendarpage.Year(year))
	}
	if month != 0 {
		preds = append(preds, calendarpage.Month(month))
	}
	return preds
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return rerr
	}
	return err
}

func toEntities(rows []*ent.CalendarEvent) []*entity.CalendarEvent {
	out := make([]*entity.CalendarEvent, len(rows))
	for i, row := range rows {
		out[i] = utils.ToCalendarEvent(row)
	}
	return out
}
