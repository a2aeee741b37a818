package planner

import (
	"context"
	"time"

	"branchboard/internal/model"
	"branchboard/internal/schedule"
	"branchboard/pkg/gcalendar"
)

// UseCase schedules stored tasks and keeps the current schedule.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Optimize(ctx context.Context, input OptimizeInput) (ScheduleOutput, error)
	Reschedule(ctx context.Context, taskID string) (ScheduleOutput, error)
	CurrentSchedule(ctx context.Context) (ScheduleOutput, error)
	DailySchedule(ctx context.Context, date time.Time) ([]model.ScheduleEntry, error)
	Workload(ctx context.Context) ([]schedule.DayLoad, error)
	TasksNeedingReschedule(ctx context.Context, now time.Time) ([]model.Task, error)

	Settings(ctx context.Context) (model.WorkCalendar, error)
	UpdateSettings(ctx context.Context, cal model.WorkCalendar) (model.WorkCalendar, error)

	UpsertTask(ctx context.Context, input UpsertTaskInput) (model.Task, error)
	ListTasks(ctx context.Context) ([]model.Task, error)
	SetCurrentBranch(ctx context.Context, nodeID string, current bool) error
}

// CalendarExporter publishes schedule entries to an external calendar.
type CalendarExporter interface {
	PutEvent(ctx context.Context, req gcalendar.PutEventRequest) (gcalendar.Event, error)
}
