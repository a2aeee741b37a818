package planner

import (
	"time"

	"branchboard/internal/model"
	"branchboard/internal/schedule"
)

// --- UseCase Inputs ---

// OptimizeInput controls a stored-task scheduling run.
type OptimizeInput struct {
	Method schedule.Method
}

// UpsertTaskInput creates a task when ID is empty, otherwise replaces it.
type UpsertTaskInput struct {
	ID             string
	Title          string
	Priority       model.Priority
	EstimatedHours float64
	Deadline       *time.Time
	DependsOn      []string
	Status         model.Status
	SourceNodeID   string
}

// --- UseCase Outputs ---

// ScheduleOutput is a schedule together with its analysis and the calendar it was packed with.
type ScheduleOutput struct {
	Result   schedule.Result
	Analysis schedule.Analysis
	Calendar model.WorkCalendar

	// Exported is the number of entries published to the external calendar.
	Exported int
	// GeneratedAt is the reference instant the schedule was packed at.
	GeneratedAt time.Time
}
