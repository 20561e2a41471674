package server

import (
	"context"
	"errors"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	calendarpb "github.com/adeola-m/calendar-tracker/gen/proto/calendar/v1"
	"github.com/adeola-m/calendar-tracker/internal/common"
	"github.com/adeola-m/calendar-tracker/internal/entity"
	"github.com/adeola-m/calendar-tracker/internal/eventtime"
	"github.com/adeola-m/calendar-tracker/internal/export"
	"github.com/adeola-m/calendar-tracker/internal/ingest"
	"github.com/adeola-m/calendar-tracker/internal/repository"
	"github.com/adeola-m/calendar-tracker/internal/utils"
)

type CalendarService struct {
	calendarpb.UnimplementedCalendarServiceServer
	job       *ingest.Job
	pageRepo  repository.CalendarPageRepository
	eventRepo repository.CalendarEventRepository
	exporter  *export.Service
	logger    *slog.Logger
}

func NewCalendarService(
	job *ingest.Job,
	pageRepo repository.CalendarPageRepository,
	eventRepo repository.CalendarEventRepository,
	exporter *export.Service,
	logger *slog.Logger,
) *CalendarService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CalendarService{
		job:       job,
		pageRepo:  pageRepo,
		eventRepo: eventRepo,
		exporter:  exporter,
		logger:    logger,
	}
}

// SubmitPage implements calendarpb.CalendarServiceServer
func (s *CalendarService) SubmitPage(ctx context.Context, req *calendarpb.SubmitPageRequest) (*calendarpb.SubmitPageResponse, error) {
	path := strings.TrimSpace(req.GetImagePath())
	if path == "" {
		s.logger.Error("submit page request missing image_path")
		return nil, common.InvalidArgumentError("image_path is required")
	}

	s.logger.Info("starting page submit", "image_path", path)
	page, err := s.job.Submit(ctx, path)
	if err != nil {
		s.logger.Error("page submit failed", "image_path", path, "error", err)
		return nil, common.InternalErrorf("submit page: %v", err)
	}
	s.logger.Info("page submitted", "page_id", page.ID, "status", page.Status)

	return &calendarpb.SubmitPageResponse{Page: utils.ToPBPage(page)}, nil
}

func (s *CalendarService) GetPage(ctx context.Context, req *calendarpb.GetPageRequest) (*calendarpb.GetPageResponse, error) {
	pid := strings.TrimSpace(req.GetPageId())
	if pid == "" {
		s.logger.Error("get page request missing page_id")
		return nil, common.InvalidArgumentError("page_id is required")
	}
	pageID, err := uuid.Parse(pid)
	if err != nil {
		s.logger.Error("invalid page_id format for get page", "page_id", pid, "error", err)
		return nil, common.InvalidArgumentError("page_id must be a UUID")
	}

	page, err := s.pageRepo.GetByID(ctx, pageID)
	if errors.Is(err, common.ErrNotFound) {
		s.logger.Warn("page not found", "page_id", pageID)
		return nil, common.NotFoundErrorf("page %s not found", pageID)
	}
	if err != nil {
		s.logger.Error("failed to load page", "page_id", pageID, "error", err)
		return nil, common.InternalErrorf("get page: %v", err)
	}

	events, err := s.eventRepo.ListForPage(ctx, pageID)
	if err != nil {
		s.logger.Error("failed to list page events", "page_id", pageID, "error", err)
		return nil, common.InternalErrorf("list events: %v", err)
	}

	return &calendarpb.GetPageResponse{
		Page:   utils.ToPBPage(page),
		Events: toPBEvents(events),
	}, nil
}

// ListEvents resolves the filters in precedence order: a parseable
// start/end range wins, then scope=week, then month (optionally with day
// and year), then year alone. A month without a year matches that month
// across all years; week scope defaults a missing year to the current
// one. Unparseable range values are ignored rather than rejected.
func (s *CalendarService) ListEvents(ctx context.Context, req *calendarpb.ListEventsRequest) (*calendarpb.ListEventsResponse, error) {
	year := int(req.GetYear())
	month := int(req.GetMonth())
	day := int(req.GetDay())

	if start, end, ok := parseRange(req.GetStartDate(), req.GetEndDate()); ok {
		months := repository.MonthsOverlapping(start, end)
		s.logger.Info("listing events by range", "start", start.Format("2006-01-02"), "end", end.Format("2006-01-02"), "months", len(months))
		events, err := s.eventRepo.ListForMonths(ctx, months)
		if err != nil {
			s.logger.Error("failed to list events by range", "error", err)
			return nil, common.InternalErrorf("list events: %v", err)
		}
		return eventsResponse(events), nil
	}

	if month != 0 && (month < 1 || month > 12) {
		return nil, common.InvalidArgumentError("month must be between 1 and 12")
	}

	if strings.EqualFold(strings.TrimSpace(req.GetScope()), "week") && month != 0 && day != 0 {
		weekYear := year
		if weekYear == 0 {
			weekYear = time.Now().Year()
		}
		// An impossible start date yields an empty result, not an error.
		if day < 1 || day > repository.DaysInMonth(weekYear, month) {
			s.logger.Warn("week scope start date out of range", "year", weekYear, "month", month, "day", day)
			return &calendarpb.ListEventsResponse{}, nil
		}
		dates := repository.WeekDates(timeDate(weekYear, month, day))
		s.logger.Info("listing events by week", "year", weekYear, "month", month, "day", day)
		events, err := s.eventRepo.ListForDates(ctx, dates)
		if err != nil {
			s.logger.Error("failed to list events by week", "error", err)
			return nil, common.InternalErrorf("list events: %v", err)
		}
		return eventsResponse(events), nil
	}

	if month != 0 {
		if day != 0 {
			s.logger.Info("listing events by day", "year", year, "month", month, "day", day)
			events, err := s.eventRepo.ListForDay(ctx, year, month, day)
			if err != nil {
				s.logger.Error("failed to list events by day", "error", err)
				return nil, common.InternalErrorf("list events: %v", err)
			}
			return eventsResponse(events), nil
		}
		s.logger.Info("listing events by month", "year", year, "month", month)
		events, err := s.eventRepo.ListForMonths(ctx, []repository.YearMonth{{Year: year, Month: month}})
		if err != nil {
			s.logger.Error("failed to list events by month", "error", err)
			return nil, common.InternalErrorf("list events: %v", err)
		}
		return eventsResponse(events), nil
	}

	if year != 0 {
		s.logger.Info("listing events by year", "year", year)
		events, err := s.eventRepo.ListForMonths(ctx, []repository.YearMonth{{Year: year}})
		if err != nil {
			s.logger.Error("failed to list events by year", "error", err)
			return nil, common.InternalErrorf("list events: %v", err)
		}
		return eventsResponse(events), nil
	}

	s.logger.Error("list events request without any filter")
	return nil, common.InvalidArgumentError("at least one of year, month, or start/end is required")
}

func (s *CalendarService) ExportMonth(ctx context.Context, req *calendarpb.ExportMonthRequest) (*calendarpb.ExportMonthResponse, error) {
	year := int(req.GetYear())
	month := int(req.GetMonth())
	if year == 0 || month < 1 || month > 12 {
		return nil, common.InvalidArgumentError("year and month (1-12) are required")
	}

	xlsx, err := s.exporter.ExportMonthXLSX(ctx, year, month)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "year", year, "month", month, "err", err)
		return nil, common.InternalErrorf("export month: %v", err)
	}
	return &calendarpb.ExportMonthResponse{Xlsx: xlsx}, nil
}

// parseRange returns the inclusive range when both bounds parse and are
// ordered. Anything else reports !ok so the caller falls back to the
// remaining filters.
func parseRange(startRaw, endRaw string) (start, end time.Time, ok bool) {
	sd := strings.TrimSpace(startRaw)
	ed := strings.TrimSpace(endRaw)
	if sd == "" || ed == "" {
		return start, end, false
	}
	start, err := utils.ParseYMD(sd)
	if err != nil {
		return start, end, false
	}
	end, err = utils.ParseYMD(ed)
	if err != nil || end.Before(start) {
		return start, end, false
	}
	return start, end, true
}

func timeDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func eventsResponse(events []*entity.CalendarEvent) *calendarpb.ListEventsResponse {
	eventtime.SortChronological(events)
	return &calendarpb.ListEventsResponse{Events: toPBEvents(events)}
}

func toPBEvents(events []*entity.CalendarEvent) []*calendarpb.CalendarEvent {
	out := make([]*calendarpb.CalendarEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, utils.ToPBEvent(ev))
	}
	return out
}
