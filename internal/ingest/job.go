// Package ingest drives a submitted calendar image through extraction:
// pending -> processing synchronously at creation, then a detached
// goroutine runs the extraction and lands the page on success or failed.
// Nothing that happens in the background unit ever reaches the caller
// that created the record.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/adeola-m/calendar-tracker/constants"
	"github.com/adeola-m/calendar-tracker/internal/entity"
	"github.com/adeola-m/calendar-tracker/internal/repository"
	"github.com/adeola-m/calendar-tracker/internal/vision"
)

type Job struct {
	pages     repository.CalendarPageRepository
	events    repository.CalendarEventRepository
	extractor vision.Extractor
	timeout   time.Duration
	logger    *slog.Logger
}

func NewJob(
	pages repository.CalendarPageRepository,
	events repository.CalendarEventRepository,
	extractor vision.Extractor,
	timeout time.Duration,
	logger *slog.Logger,
) *Job {
	if timeout <= 0 {
		timeout = 3 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Job{
		pages:     pages,
		events:    events,
		extractor: extractor,
		timeout:   timeout,
		logger:    logger,
	}
}

// Submit durably creates the page in pending, flips it to processing
// before returning, and dispatches the extraction in the background. By
// the time Submit returns, no reader can observe pending for this page.
func (j *Job) Submit(ctx context.Context, imagePath string) (*entity.CalendarPage, error) {
	page, err := j.pages.Create(ctx, imagePath)
	if err != nil {
		return nil, err
	}
	if err := j.pages.MarkProcessing(ctx, page.ID); err != nil {
		return nil, err
	}
	page.Status = string(constants.PageStatusProcessing)

	go j.run(page.ID, imagePath)

	return page, nil
}

// run is the asynchronous unit. Every failure, including panics, is
// converted into the failed transition at this boundary.
func (j *Job) run(pageID uuid.UUID, imagePath string) {
	defer func() {
		if r := recover(); r != nil {
			j.logger.Error("ingest.job.panic", "page_id", pageID, "panic", r)
			j.fail(pageID, fmt.Sprintf("panic: %v", r), nil)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	res, raw, err := j.extractor.ExtractCalendar(ctx, imagePath)
	if err != nil {
		j.logger.Error("ingest.job.extract_failed", "page_id", pageID, "error", err)
		j.fail(pageID, err.Error(), raw)
		return
	}

	if err := j.complete(ctx, pageID, res, raw); err != nil {
		j.logger.Error("ingest.job.complete_failed", "page_id", pageID, "error", err)
		j.fail(pageID, err.Error(), raw)
	}
}

func (j *Job) complete(ctx context.Context, pageID uuid.UUID, res vision.Extraction, raw []byte) error {
	if !res.SuccessfullyParsed {
		return fmt.Errorf("extraction did not recognize a calendar")
	}
	if res.Month == nil || res.Year == nil {
		return fmt.Errorf("extraction missing month/year")
	}
	month, year := *res.Month, *res.Year

	// Out-of-range days are a per-event problem; the offending event is
	// skipped and flagged, never the whole batch.
	maxDay := repository.DaysInMonth(year, month)
	events := make([]*entity.CalendarEvent, 0, len(res.Events))
	for _, ev := range res.Events {
		if ev.Day < 1 || ev.Day > maxDay {
			j.logger.Warn("ingest.job.event_day_out_of_range",
				"page_id", pageID, "day", ev.Day, "month", month, "year", year,
				"title", ev.Title,
			)
			continue
		}
		color := ev.Color
		if color == "" {
			color = "black"
		}
		events = append(events, &entity.CalendarEvent{
			PageID:       pageID,
			Day:          ev.Day,
			Hour:         ev.Hour,
			Minute:       ev.Minute,
			AmPm:         ev.AmPm,
			AllDay:       ev.AllDay,
			Title:        ev.Title,
			OriginalText: ev.OriginalText,
			Color:        color,
			Featured:     ev.Featured,
			Position:     len(events),
		})
	}

	if err := j.events.ReplaceForPage(ctx, pageID, events); err != nil {
		return fmt.Errorf("replace events: %w", err)
	}

	if err := j.pages.FinishSuccess(ctx, pageID, month, year, res.Notes, raw); err != nil {
		return fmt.Errorf("finish success: %w", err)
	}

	j.logger.Info("ingest.job.success",
		"page_id", pageID, "month", month, "year", year,
		"events", len(events), "skipped", len(res.Events)-len(events),
	)
	return nil
}

func (j *Job) fail(pageID uuid.UUID, message string, raw []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := j.pages.FinishFailure(ctx, pageID, vision.ErrorPayload(message, raw)); err != nil {
		j.logger.Error("ingest.job.finish_failure_failed", "page_id", pageID, "error", err)
	}
}
