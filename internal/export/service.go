package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/adeola-m/calendar-tracker/internal/eventtime"
	"github.com/adeola-m/calendar-tracker/internal/repository"
)

// Service is a tiny façade over the event repository that produces XLSX
// bytes for month exports.
type Service struct {
	events repository.CalendarEventRepository
	logger *slog.Logger
}

func NewService(events repository.CalendarEventRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{events: events, logger: logger}
}

// ExportMonthXLSX returns an XLSX workbook (as bytes) with every event of
// the given month, ordered by day then normalized time.
func (s *Service) ExportMonthXLSX(ctx context.Context, year, month int) ([]byte, error) {
	start := time.Now()

	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month out of range: %d", month)
	}

	events, err := s.events.ListForMonths(ctx, []repository.YearMonth{{Year: year, Month: month}})
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	eventtime.SortChronological(events)

	f := excelize.NewFile()
	sheet := time.Month(month).String()
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	defaultSheet := "Sheet1"
	if sheet != defaultSheet {
		_ = f.DeleteSheet(defaultSheet)
	}

	headers := []string{"Day", "Time", "Title", "Color", "Featured", "Original Text"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, ev := range events {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, fmt.Sprintf("%04d-%02d-%02d", year, month, ev.Day))
		write(2, eventtime.Display(ev.Hour, ev.Minute, ev.AmPm, ev.AllDay))
		write(3, ev.Title)
		write(4, ev.Color)
		write(5, ev.Featured)
		write(6, ev.OriginalText)

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 12)
	_ = f.SetColWidth(sheet, "C", "C", 36)
	_ = f.SetColWidth(sheet, "D", "E", 10)
	_ = f.SetColWidth(sheet, "F", "F", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"year", year,
		"month", month,
		"rows", len(events),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
