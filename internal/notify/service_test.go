package notify

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/adeola-m/calendar-tracker/internal/clock"
	"github.com/adeola-m/calendar-tracker/internal/common"
	"github.com/adeola-m/calendar-tracker/internal/entity"
	"github.com/adeola-m/calendar-tracker/internal/repository"
	"github.com/adeola-m/calendar-tracker/internal/twilio"
)

type fakeEventReader struct {
	byDay      map[string][]*entity.CalendarEvent
	monthsWith map[string]bool
}

func dayKey(y, m, d int) string { return fmt.Sprintf("%04d-%02d-%02d", y, m, d) }
func monthKey(y, m int) string  { return fmt.Sprintf("%04d-%02d", y, m) }

func (f *fakeEventReader) ReplaceForPage(context.Context, uuid.UUID, []*entity.CalendarEvent) error {
	return nil
}

func (f *fakeEventReader) ListForPage(context.Context, uuid.UUID) ([]*entity.CalendarEvent, error) {
	return nil, nil
}

func (f *fakeEventReader) ListForDay(_ context.Context, year, month, day int) ([]*entity.CalendarEvent, error) {
	return f.byDay[dayKey(year, month, day)], nil
}

func (f *fakeEventReader) ListForMonths(context.Context, []repository.YearMonth) ([]*entity.CalendarEvent, error) {
	return nil, nil
}

func (f *fakeEventReader) ListForDates(context.Context, []time.Time) ([]*entity.CalendarEvent, error) {
	return nil, nil
}

func (f *fakeEventReader) MonthHasEvents(_ context.Context, year, month int) (bool, error) {
	return f.monthsWith[monthKey(year, month)], nil
}

type fakeConversations struct {
	conversation twilio.Conversation
	participants []twilio.Participant

	added    []string
	sentBody string
	sends    int
}

func (f *fakeConversations) FindOrCreateConversation(_ context.Context, uniqueName, friendlyName string) (*twilio.Conversation, error) {
	if f.conversation.SID == "" {
		f.conversation = twilio.Conversation{SID: "CH123", UniqueName: uniqueName, FriendlyName: friendlyName}
	}
	return &f.conversation, nil
}

func (f *fakeConversations) ListParticipants(context.Context, string) ([]twilio.Participant, error) {
	return f.participants, nil
}

func (f *fakeConversations) AddParticipant(_ context.Context, _ string, address, _ string) error {
	f.added = append(f.added, address)
	p := twilio.Participant{}
	p.MessagingBinding.Address = address
	f.participants = append(f.participants, p)
	return nil
}

func (f *fakeConversations) SendMessage(_ context.Context, _ string, body string) (*twilio.Message, error) {
	f.sends++
	f.sentBody = body
	return &twilio.Message{SID: fmt.Sprintf("IM%03d", f.sends), Body: body}, nil
}

func testConfig(participants ...string) *common.Config {
	return &common.Config{
		Twilio: common.TwilioConfig{
			ProxyNumber:      "+18885550000",
			ConversationName: "family_calendar_events",
			FriendlyName:     "Family Calendar",
			Participants:     participants,
		},
		Notify: common.NotifyConfig{
			ContactName:   "Adeola",
			ContactNumber: "+13125551234",
		},
	}
}

func mustClock(t *testing.T, fakeDate string) *clock.Clock {
	t.Helper()
	c, err := clock.New("UTC", fakeDate)
	if err != nil {
		t.Fatalf("clock.New: %v", err)
	}
	return c
}

func TestSendNextDayEventsDelivers(t *testing.T) {
	hour := 9
	minute := 30
	am := "am"
	repo := &fakeEventReader{
		byDay: map[string][]*entity.CalendarEvent{
			dayKey(2026, 3, 10): {
				{Hour: &hour, Minute: &minute, AmPm: &am, Title: "Morning Stretch"},
			},
		},
		monthsWith: map[string]bool{monthKey(2026, 3): true, monthKey(2026, 4): true},
	}
	conv := &fakeConversations{}
	svc := NewService(repo, conv, mustClock(t, "2026-03-09"), testConfig("312-555-9876"), nil)

	sid, err := svc.SendNextDayEvents(context.Background())
	if err != nil {
		t.Fatalf("SendNextDayEvents: %v", err)
	}
	if sid == "" {
		t.Fatal("expected a message SID")
	}
	if conv.sends != 1 {
		t.Fatalf("sends = %d, want 1", conv.sends)
	}
	if !strings.Contains(conv.sentBody, "9:30 AM - Morning Stretch") {
		t.Fatalf("sent body missing event line:\n%s", conv.sentBody)
	}
	if !strings.Contains(conv.sentBody, "Tuesday, March 10, 2026") {
		t.Fatalf("sent body missing tomorrow's date:\n%s", conv.sentBody)
	}
	if len(conv.added) != 1 || conv.added[0] != "+13125559876" {
		t.Fatalf("added participants = %v, want [+13125559876]", conv.added)
	}
}

func TestSendNextDayEventsSkipsEmptyDay(t *testing.T) {
	repo := &fakeEventReader{
		byDay:      map[string][]*entity.CalendarEvent{},
		monthsWith: map[string]bool{monthKey(2026, 3): true},
	}
	conv := &fakeConversations{}
	svc := NewService(repo, conv, mustClock(t, "2026-03-09"), testConfig("3125559876"), nil)

	sid, err := svc.SendNextDayEvents(context.Background())
	if err != nil {
		t.Fatalf("SendNextDayEvents: %v", err)
	}
	if sid != "" {
		t.Fatalf("sid = %q, want empty on a day with no events", sid)
	}
	if conv.sends != 0 {
		t.Fatalf("sends = %d, want 0", conv.sends)
	}
}

func TestSendNextDayEventsParticipantDedupe(t *testing.T) {
	repo := &fakeEventReader{
		byDay: map[string][]*entity.CalendarEvent{
			dayKey(2026, 3, 10): {{Title: "Lunch"}},
		},
		monthsWith: map[string]bool{monthKey(2026, 3): true, monthKey(2026, 4): true},
	}
	conv := &fakeConversations{}
	existing := twilio.Participant{}
	existing.MessagingBinding.Address = "+13125559876"
	conv.participants = []twilio.Participant{existing}

	// Same number in a different format plus one new number.
	svc := NewService(repo, conv, mustClock(t, "2026-03-09"), testConfig("(312) 555-9876", "7735550000"), nil)

	if _, err := svc.SendNextDayEvents(context.Background()); err != nil {
		t.Fatalf("SendNextDayEvents: %v", err)
	}
	if len(conv.added) != 1 || conv.added[0] != "+17735550000" {
		t.Fatalf("added participants = %v, want only [+17735550000]", conv.added)
	}
}

func TestSendNextDayEventsMonthRollover(t *testing.T) {
	repo := &fakeEventReader{
		byDay: map[string][]*entity.CalendarEvent{
			dayKey(2026, 3, 31): {{Title: "Closing Day", AllDay: true}},
		},
		monthsWith: map[string]bool{monthKey(2026, 3): true},
	}
	conv := &fakeConversations{}
	svc := NewService(repo, conv, mustClock(t, "2026-03-30"), testConfig("3125559876"), nil)

	if _, err := svc.SendNextDayEvents(context.Background()); err != nil {
		t.Fatalf("SendNextDayEvents: %v", err)
	}
	if !strings.Contains(conv.sentBody, "The month is almost over!") {
		t.Fatalf("expected next-month reminder in body:\n%s", conv.sentBody)
	}
	if !strings.Contains(conv.sentBody, "calendar for April") {
		t.Fatalf("reminder should name April:\n%s", conv.sentBody)
	}
}
