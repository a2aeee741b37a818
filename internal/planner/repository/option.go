package repository

import (
	"time"

	"branchboard/internal/model"
)

// ListTasksOptions filters ListTasks. Empty Statuses means all.
type ListTasksOptions struct {
	Statuses []model.Status
}

// UpsertTaskOptions holds the full task row to insert or replace.
type UpsertTaskOptions struct {
	Task model.Task
}

// SaveScheduleOptions is the schedule write-back for one task.
type SaveScheduleOptions struct {
	TaskID         string
	ScheduledDate  time.Time
	ScheduledStart time.Time
	ScheduledEnd   time.Time
}
