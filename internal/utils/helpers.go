package utils

import (
	"time"

	"github.com/adeola-m/calendar-tracker/gen/ent"
	calendarpb "github.com/adeola-m/calendar-tracker/gen/proto/calendar/v1"
	"github.com/adeola-m/calendar-tracker/internal/entity"
)

func ToCalendarPage(p *ent.CalendarPage) *entity.CalendarPage {
	return &entity.CalendarPage{
		ID:        p.ID,
		ImagePath: p.ImagePath,
		Status:    p.Status,
		Month:     p.Month,
		Year:      p.Year,
		Notes:     p.Notes,
		RawResult: p.RawResult,
		CreatedAt: p.CreatedAt,
	}
}

func ToCalendarEvent(e *ent.CalendarEvent) *entity.CalendarEvent {
	out := &entity.CalendarEvent{
		ID:           e.ID,
		PageID:       e.PageID,
		Day:          e.Day,
		Hour:         e.Hour,
		Minute:       e.Minute,
		AmPm:         e.AmPm,
		AllDay:       e.AllDay,
		Title:        e.Title,
		OriginalText: e.OriginalText,
		Color:        e.Color,
		Featured:     e.Featured,
		Position:     e.Position,
	}
	if page := e.Edges.Page; page != nil {
		if page.Month != nil {
			out.Month = *page.Month
		}
		if page.Year != nil {
			out.Year = *page.Year
		}
	}
	return out
}

func ToPBPage(p *entity.CalendarPage) *calendarpb.CalendarPage {
	pb := &calendarpb.CalendarPage{
		Id:        p.ID.String(),
		ImagePath: p.ImagePath,
		Status:    p.Status,
		Notes:     p.Notes,
		RawResult: string(p.RawResult),
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
	}
	if p.Month != nil {
		pb.Month = int32(*p.Month)
	}
	if p.Year != nil {
		pb.Year = int32(*p.Year)
	}
	return pb
}

func ToPBEvent(e *entity.CalendarEvent) *calendarpb.CalendarEvent {
	pb := &calendarpb.CalendarEvent{
		Id:           e.ID.String(),
		PageId:       e.PageID.String(),
		Month:        int32(e.Month),
		Year:         int32(e.Year),
		Day:          int32(e.Day),
		AllDay:       e.AllDay,
		Title:        e.Title,
		OriginalText: e.OriginalText,
		Color:        e.Color,
		Featured:     e.Featured,
	}
	if e.Hour != nil {
		pb.Hour = int32(*e.Hour)
		pb.HasTime = true
	}
	if e.Minute != nil {
		pb.Minute = int32(*e.Minute)
	}
	if e.AmPm != nil {
		pb.AmPm = *e.AmPm
	}
	return pb
}

// ParseYMD parses a YYYY-MM-DD date.
func ParseYMD(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
