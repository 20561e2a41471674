package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/adeola-m/calendar-tracker/constants"
	"github.com/adeola-m/calendar-tracker/gen/ent"
	"github.com/adeola-m/calendar-tracker/gen/ent/calendarpage"
	"github.com/adeola-m/calendar-tracker/internal/common"
	"github.com/adeola-m/calendar-tracker/internal/entity"
	"github.com/adeola-m/calendar-tracker/internal/utils"
)

type CalendarPageRepository interface {
	Create(ctx context.Context, imagePath string) (*entity.CalendarPage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CalendarPage, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	FinishSuccess(ctx context.Context, id uuid.UUID, month, year int, notes []string, raw json.RawMessage) error
	FinishFailure(ctx context.Context, id uuid.UUID, raw json.RawMessage) error
	MonthHasPages(ctx context.Context, year, month int) (bool, error)
}

type calendarPageRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewCalendarPageRepository(entc *ent.Client, logger *slog.Logger) CalendarPageRepository {
	return &calendarPageRepo{ent: entc, logger: logger}
}

func (r *calendarPageRepo) Create(ctx context.Context, imagePath string) (*entity.CalendarPage, error) {
	row, err := r.ent.CalendarPage.
		Create().
		SetImagePath(imagePath).
		SetStatus(string(constants.PageStatusPending)).
		Save(ctx)
	if err != nil {
		r.logger.Error("calendar_page create failed", "image_path", imagePath, "error", err)
		return nil, err
	}
	r.logger.Info("calendar_page created", "page_id", row.ID, "image_path", imagePath)
	return utils.ToCalendarPage(row), nil
}

func (r *calendarPageRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.CalendarPage, error) {
	row, err := r.ent.CalendarPage.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.WrapError(common.ErrNotFound, "calendar_page "+id.String())
	}
	if err != nil {
		return nil, err
	}
	return utils.ToCalendarPage(row), nil
}

// MarkProcessing is a single-field status flip so concurrent updates to
// other columns are never clobbered.
func (r *calendarPageRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	err := r.ent.CalendarPage.
		UpdateOneID(id).
		SetStatus(string(constants.PageStatusProcessing)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("calendar_page mark processing failed", "page_id", id, "error", err)
		return err
	}
	return nil
}

func (r *calendarPageRepo) FinishSuccess(ctx context.Context, id uuid.UUID, month, year int, notes []string, raw json.RawMessage) error {
	err := r.ent.CalendarPage.
		UpdateOneID(id).
		SetStatus(string(constants.PageStatusSuccess)).
		SetMonth(month).
		SetYear(year).
		SetNotes(notes).
		SetRawResult(raw).
		Exec(ctx)
	if err != nil {
		r.logger.Error("calendar_page finish(success) failed", "page_id", id, "error", err)
		return err
	}
	r.logger.Info("calendar_page finished (success)", "page_id", id, "month", month, "year", year)
	return nil
}

// FinishFailure leaves month/year untouched; the cause lives in raw.
func (r *calendarPageRepo) FinishFailure(ctx context.Context, id uuid.UUID, raw json.RawMessage) error {
	err := r.ent.CalendarPage.
		UpdateOneID(id).
		SetStatus(string(constants.PageStatusFailed)).
		SetRawResult(raw).
		Exec(ctx)
	if err != nil {
		r.logger.Error("calendar_page finish(failed) failed", "page_id", id, "error", err)
		return err
	}
	r.logger.Warn("calendar_page finished (failed)", "page_id", id)
	return nil
}

func (r *calendarPageRepo) MonthHasPages(ctx context.Context, year, month int) (bool, error) {
	return r.ent.CalendarPage.Query().
		Where(
			calendarpage.Year(year),
			calendarpage.Month(month),
			calendarpage.Status(string(constants.PageStatusSuccess)),
		).
		Exist(ctx)
}

// PageStatusCounts groups pages by status. Used by the dbhealth command.
func PageStatusCounts(ctx context.Context, entc *ent.Client) (map[string]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := entc.CalendarPage.Query().
		GroupBy(calendarpage.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}
