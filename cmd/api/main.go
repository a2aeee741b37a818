package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"branchboard/config"
	_ "branchboard/docs" // Swagger docs
	"branchboard/internal/httpserver"
	"branchboard/internal/model"
	"branchboard/internal/planner"
	plannerJob "branchboard/internal/planner/delivery/job"
	"branchboard/internal/planner/repository/sqlite"
	plannerUC "branchboard/internal/planner/usecase"
	scheduleUC "branchboard/internal/schedule/usecase"
	"branchboard/pkg/datemath"
	"branchboard/pkg/gcalendar"
	"branchboard/pkg/log"
)

// @title       Branchboard API
// @description Task scheduling engine: orders, packs and validates branch tasks into a work calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Branchboard...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.Open(ctx, sqlite.Config{Path: cfg.Storage.Path, BusyTimeout: cfg.Storage.BusyTimeout})
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Database: %s", cfg.Storage.Path)

	repo := sqlite.New(db, logger)

	// 4. Google Calendar export (optional)
	var exporter planner.CalendarExporter
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, gErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.CalendarID)
		if gErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gErr)
		} else {
			exporter = calendarClient
			logger.Infof(ctx, "Google Calendar export enabled for %s", cfg.GoogleCalendar.CalendarID)
		}
	}

	// 5. Use-cases
	// No Optimizer is configured; the heuristics order every run.
	scheduler := scheduleUC.New(logger, nil)

	sc := cfg.Scheduler
	uc, err := plannerUC.New(logger, repo, scheduler, exporter, plannerUC.Config{
		Defaults: model.WorkCalendar{
			WorkHoursPerDay: sc.WorkHoursPerDay,
			WorkDaysPerWeek: sc.WorkDaysPerWeek,
			StartOfDay:      sc.StartOfDay,
			EndOfDay:        sc.EndOfDay,
			ExcludeWeekends: sc.ExcludeWeekends,
			BreakDuration:   sc.BreakDuration,
			Timezone:        sc.Timezone,
		},
		CacheSize: sc.CacheSize,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize planner: ", err)
		return
	}

	dateParser, err := datemath.NewParser(sc.Timezone)
	if err != nil {
		logger.Error(ctx, "Invalid scheduler timezone: ", err)
		return
	}

	// 6. Auto-reschedule job (optional)
	if sc.AutoRescheduleCron != "" {
		job, jErr := plannerJob.New(logger, uc, plannerJob.Config{Spec: sc.AutoRescheduleCron, Timezone: sc.Timezone})
		if jErr != nil {
			logger.Error(ctx, "Failed to initialize reschedule job: ", jErr)
			return
		}
		job.Start()
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			job.Stop(stopCtx)
		}()
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		DB:                 db,
		PlannerUC:          uc,
		DateParser:         dateParser,
		OptimizeRatePerMin: sc.OptimizeRatePerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
