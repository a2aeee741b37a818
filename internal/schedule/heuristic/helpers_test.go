package heuristic_test

import (
	"time"

	"branchboard/internal/model"
)

// monday is 2024-05-06 08:00 UTC, an hour before the default start of day.
var monday = time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC)

func ptr(t time.Time) *time.Time { return &t }

func ids(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func entryIDs(entries []model.ScheduleEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.TaskID
	}
	return out
}

func utcCalendar() model.WorkCalendar {
	return model.DefaultWorkCalendar()
}
