// scripts/gcal-prune/main.go
//
// Removes Google Calendar events of tasks that were completed, cancelled or
// deleted since they were exported. Uses the same config.yaml as the API.
//
// Usage:
//   go run scripts/gcal-prune/main.go [-days 60] [-dry-run]

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"branchboard/config"
	"branchboard/internal/planner/repository/sqlite"
	"branchboard/pkg/gcalendar"
	pkgLog "branchboard/pkg/log"
)

func main() {
	days := flag.Int("days", 60, "Look-ahead window in days")
	dryRun := flag.Bool("dry-run", false, "Only print what would be deleted")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.GoogleCalendar.CredentialsPath == "" {
		log.Fatal("google_calendar.credentials_path is not configured")
	}

	ctx := context.Background()

	db, err := sqlite.Open(ctx, sqlite.Config{Path: cfg.Storage.Path, BusyTimeout: cfg.Storage.BusyTimeout})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()
	repo := sqlite.New(db, pkgLog.NewNop())

	client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.CalendarID)
	if err != nil {
		log.Fatalf("Failed to create calendar client: %v", err)
	}

	now := time.Now()
	events, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{
		TimeMin: now.AddDate(0, 0, -1),
		TimeMax: now.AddDate(0, 0, *days),
	})
	if err != nil {
		log.Fatalf("Failed to list events: %v", err)
	}

	pruned := 0
	for _, ev := range events {
		task, err := repo.GetTask(ctx, ev.TaskID)
		if err != nil {
			log.Fatalf("Failed to load task %s: %v", ev.TaskID, err)
		}
		if task.ID != "" && task.Status.IsSchedulable() {
			continue
		}

		fmt.Printf("%s  %s  %s\n", ev.StartTime.Format("2006-01-02 15:04"), ev.TaskID, ev.Summary)
		if *dryRun {
			continue
		}
		if err := client.DeleteEvent(ctx, ev.TaskID); err != nil {
			log.Fatalf("Failed to delete event: %v", err)
		}
		pruned++
	}

	fmt.Printf("Checked %d events, pruned %d\n", len(events), pruned)
}
