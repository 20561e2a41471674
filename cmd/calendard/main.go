package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	calendarpb "github.com/adeola-m/calendar-tracker/gen/proto/calendar/v1"
	"github.com/adeola-m/calendar-tracker/internal/common"
	"github.com/adeola-m/calendar-tracker/internal/export"
	"github.com/adeola-m/calendar-tracker/internal/ingest"
	repo "github.com/adeola-m/calendar-tracker/internal/repository"
	svc "github.com/adeola-m/calendar-tracker/internal/server"
	"github.com/adeola-m/calendar-tracker/internal/vision/gemini"
)

func main() {
	// Structured logger that outputs messages with variables but no time/level
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
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
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

	// Ping DB to ensure connectivity
	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	pagesRepo := repo.NewCalendarPageRepository(entc, logger)
	eventsRepo := repo.NewCalendarEventRepository(entc, logger)

	extractor := gemini.NewClient(gemini.Config{
		APIKey:  cfg.Vision.APIKey,
		Model:   cfg.Vision.Model,
		BaseURL: cfg.Vision.BaseURL,
		Timeout: cfg.Vision.Timeout,
	}, logger)

	job := ingest.NewJob(pagesRepo, eventsRepo, extractor, cfg.Vision.Timeout, logger)
	exporter := export.NewService(eventsRepo, logger)

	calendarService := svc.NewCalendarService(job, pagesRepo, eventsRepo, exporter, logger)
	calendarpb.RegisterCalendarServiceServer(grpcServer, calendarService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("calendar-tracker listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
