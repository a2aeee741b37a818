package schedule

import (
	"context"
	"time"

	"branchboard/internal/model"
)

// UseCase is the scheduler facade.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// OptimizeSchedule orders, packs and validates the eligible tasks of input.Tasks.
	// The only error it returns is ErrInvalidCalendar; policy failures degrade
	// to WSPT and are reported on the Result.
	OptimizeSchedule(ctx context.Context, input OptimizeInput) (Result, error)

	// RescheduleTask re-runs dependency scheduling for a task and its direct dependents.
	RescheduleTask(ctx context.Context, input RescheduleInput) (Result, error)

	// GetScheduleAnalysis computes statistics and advisory recommendations.
	GetScheduleAnalysis(ctx context.Context, input AnalysisInput) Analysis

	// DailySchedule returns the entries starting on date, sorted by start time.
	DailySchedule(entries []model.ScheduleEntry, date time.Time, loc *time.Location) []model.ScheduleEntry

	// WorkloadDistribution groups entries by start date, in date order.
	WorkloadDistribution(entries []model.ScheduleEntry, loc *time.Location) []DayLoad
}

// Optimizer is an optional, heavier ordering engine for library callers; the
// API server runs without one. Its output must keep in-set dependencies in
// order. When it fails the facade falls back to WSPT.
type Optimizer interface {
	Order(ctx context.Context, tasks []model.Task, method Method) ([]model.Task, error)
}
