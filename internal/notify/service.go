package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/adeola-m/calendar-tracker/internal/clock"
	"github.com/adeola-m/calendar-tracker/internal/common"
	"github.com/adeola-m/calendar-tracker/internal/repository"
	"github.com/adeola-m/calendar-tracker/internal/twilio"
)

// Service assembles the next-day summary and sends it through the
// conversation channel.
type Service struct {
	events        repository.CalendarEventRepository
	conversations twilio.ConversationsAPI
	clk           *clock.Clock
	cfg           *common.Config
	logger        *slog.Logger
}

func NewService(
	events repository.CalendarEventRepository,
	conversations twilio.ConversationsAPI,
	clk *clock.Clock,
	cfg *common.Config,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		events:        events,
		conversations: conversations,
		clk:           clk,
		cfg:           cfg,
		logger:        logger,
	}
}

// SendNextDayEvents builds tomorrow's summary and delivers it. Returns the
// message SID, or an empty SID when there is nothing to send.
func (s *Service) SendNextDayEvents(ctx context.Context) (string, error) {
	tomorrow := s.clk.Now().AddDate(0, 0, 1)
	year, month, day := tomorrow.Year(), int(tomorrow.Month()), tomorrow.Day()

	events, err := s.events.ListForDay(ctx, year, month, day)
	if err != nil {
		return "", fmt.Errorf("list events for %04d-%02d-%02d: %w", year, month, day, err)
	}
	if len(events) == 0 {
		s.logger.Info("notify.skip", "reason", "no events", "year", year, "month", month, "day", day)
		return "", nil
	}

	monthHasEvents, err := s.events.MonthHasEvents(ctx, year, month)
	if err != nil {
		return "", fmt.Errorf("check month %04d-%02d: %w", year, month, err)
	}
	next := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, tomorrow.Location()).AddDate(0, 1, 0)
	nextMonthHasEvents, err := s.events.MonthHasEvents(ctx, next.Year(), int(next.Month()))
	if err != nil {
		return "", fmt.Errorf("check month %04d-%02d: %w", next.Year(), int(next.Month()), err)
	}

	body := BuildDailyMessage(TextConfig{
		ContactName:     s.cfg.Notify.ContactName,
		ContactNumber:   s.cfg.Notify.ContactNumber,
		ScheduleBaseURL: s.cfg.Notify.ScheduleBaseURL,
	}, tomorrow, "tomorrow", events, monthHasEvents, nextMonthHasEvents)

	conv, err := s.conversations.FindOrCreateConversation(ctx, s.cfg.Twilio.ConversationName, s.cfg.Twilio.FriendlyName)
	if err != nil {
		return "", fmt.Errorf("find or create conversation: %w", err)
	}

	if err := s.ensureParticipants(ctx, conv.SID); err != nil {
		return "", err
	}

	msg, err := s.conversations.SendMessage(ctx, conv.SID, body)
	if err != nil {
		return "", fmt.Errorf("send message: %w", err)
	}
	s.logger.Info("notify.sent",
		"conversation_sid", conv.SID,
		"message_sid", msg.SID,
		"events", len(events),
		"year", year, "month", month, "day", day)
	return msg.SID, nil
}

// ensureParticipants adds every configured number missing from the
// conversation. Numbers are normalized before comparison so formatting
// differences do not produce duplicates.
func (s *Service) ensureParticipants(ctx context.Context, conversationSID string) error {
	existing, err := s.conversations.ListParticipants(ctx, conversationSID)
	if err != nil {
		return fmt.Errorf("list participants: %w", err)
	}
	present := make(map[string]bool, len(existing))
	for _, p := range existing {
		if addr, err := twilio.NormalizePhone(p.MessagingBinding.Address); err == nil {
			present[addr] = true
		}
	}

	for _, raw := range s.cfg.Twilio.Participants {
		number, err := twilio.NormalizePhone(raw)
		if err != nil {
			s.logger.Warn("notify.participant.invalid", "number", raw, "error", err)
			continue
		}
		if present[number] {
			continue
		}
		if err := s.conversations.AddParticipant(ctx, conversationSID, number, s.cfg.Twilio.ProxyNumber); err != nil {
			return fmt.Errorf("add participant %s: %w", number, err)
		}
		present[number] = true
		s.logger.Info("notify.participant.added", "conversation_sid", conversationSID, "number", number)
	}
	return nil
}
