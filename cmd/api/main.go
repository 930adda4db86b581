package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"home-pa-scheduler/config"
	"home-pa-scheduler/internal/httpserver"
	"home-pa-scheduler/internal/middleware"
	scheduleHTTP "home-pa-scheduler/internal/schedule/delivery/http"
	"home-pa-scheduler/internal/schedule/usecase"
	"home-pa-scheduler/pkg/enrich"
	"home-pa-scheduler/pkg/gcalendar"
	"home-pa-scheduler/pkg/log"
)

// @title       Home PA Scheduler API
// @description Deterministic suggestion-to-schedule engine: scores pending tasks and places the most valuable subset into free-time gaps.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Home PA Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Scheduler timezone: %s", cfg.Scheduler.Timezone)

	// 3. Enrichment client (optional)
	var enricher enrich.IEnricher
	if cfg.Enrichment.Enabled {
		client, enrichErr := enrich.New(cfg.Enrichment.URL, cfg.Enrichment.APIKey)
		if enrichErr != nil {
			logger.Warnf(ctx, "Enrichment not available (optional): %v", enrichErr)
		} else {
			enricher = client
			logger.Infof(ctx, "Enrichment service configured at %s", cfg.Enrichment.URL)
		}
	} else {
		logger.Info(ctx, "Enrichment disabled, using heuristic defaults")
	}

	// 4. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. Schedule UseCase
	var calendarSource usecase.CalendarSource
	if calendarClient != nil {
		calendarSource = calendarClient
	}
	scheduleUC, err := usecase.New(logger, enricher, calendarSource, usecase.Config{
		Timezone:         cfg.Scheduler.Timezone,
		PermutationLimit: cfg.Scheduler.PermutationLimit,
		EnrichTimeout:    cfg.Scheduler.EnrichTimeout,
		CalendarID:       cfg.GoogleCalendar.CalendarID,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to build schedule usecase: %v", err)
	}

	// 6. HTTP delivery + server
	scheduleHandler := scheduleHTTP.New(logger, scheduleUC)
	mw := middleware.New(logger, cfg.RateLimit)

	srv, err := httpserver.New(httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ScheduleHandler: scheduleHandler,
		Middleware:      mw,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to build HTTP server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf(ctx, "HTTP server stopped: %v", err)
	}

	logger.Info(ctx, "Shutdown complete")
}
