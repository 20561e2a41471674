// One-shot dispatcher: builds tomorrow's event summary and sends it to the
// family conversation. Run it from cron once per evening.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adeola-m/calendar-tracker/internal/clock"
	"github.com/adeola-m/calendar-tracker/internal/common"
	"github.com/adeola-m/calendar-tracker/internal/notify"
	repo "github.com/adeola-m/calendar-tracker/internal/repository"
	"github.com/adeola-m/calendar-tracker/internal/twilio"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("missing DB_URL environment variable")
		os.Exit(1)
	}
	if err := cfg.ValidateNotify(); err != nil {
		logger.Error("invalid notify configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbConfig := repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}
	entc, pool, err := repo.Open(ctx, dbConfig, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	clk, err := clock.New(cfg.Notify.Timezone, cfg.Notify.FakeDate)
	if err != nil {
		logger.Error("invalid timezone", "timezone", cfg.Notify.Timezone, "error", err)
		os.Exit(1)
	}

	conversations, err := twilio.NewClient(twilio.Config{
		AccountSID: cfg.Twilio.AccountSID,
		AuthToken:  cfg.Twilio.AuthToken,
		Timeout:    cfg.Twilio.Timeout,
	}, logger)
	if err != nil {
		logger.Error("failed to build twilio client", "error", err)
		os.Exit(1)
	}

	eventsRepo := repo.NewCalendarEventRepository(entc, logger)
	service := notify.NewService(eventsRepo, conversations, clk, cfg, logger)

	sendCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	sid, err := service.SendNextDayEvents(sendCtx)
	if err != nil {
		logger.Error("daily dispatch failed", "error", err)
		os.Exit(1)
	}
	if sid == "" {
		logger.Info("daily dispatch skipped, nothing to send")
		return
	}
	logger.Info("daily dispatch sent", "message_sid", sid)
}
