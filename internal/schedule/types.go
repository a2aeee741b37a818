package schedule

import (
	"strings"
	"time"

	"branchboard/internal/model"
)

// Method names an ordering strategy.
type Method string

const (
	MethodAuto         Method = "auto"
	MethodEDD          Method = "edd"
	MethodWSPT         Method = "wspt"
	MethodDependencies Method = "dependencies"
)

// ParseMethod maps a user-supplied name to a Method. Unknown names map to MethodAuto.
func ParseMethod(s string) Method {
	switch m := Method(strings.ToLower(strings.TrimSpace(s))); m {
	case MethodEDD, MethodWSPT, MethodDependencies:
		return m
	default:
		return MethodAuto
	}
}

// --- UseCase Inputs ---

// OptimizeInput is the input for a full scheduling run.
type OptimizeInput struct {
	Tasks    []model.Task
	Method   Method
	Calendar model.WorkCalendar
	Now      time.Time // reference instant; zero means the use-case clock

	// UseOptimizer allows the Optimizer passed to usecase.New to take over
	// large task sets. It has no effect when none was passed.
	UseOptimizer bool
}

// RescheduleInput is the input for an incremental reschedule after one task changed.
type RescheduleInput struct {
	TaskID   string
	Tasks    []model.Task
	Calendar model.WorkCalendar
	Now      time.Time

	UseOptimizer bool
}

// AnalysisInput is the input for schedule analysis.
type AnalysisInput struct {
	Entries  []model.ScheduleEntry
	Tasks    []model.Task
	Calendar model.WorkCalendar
}

// --- UseCase Outputs ---

// Result is a produced schedule plus the diagnostics of the run that made it.
type Result struct {
	RunID         string
	Requested     Method
	Applied       Method
	Entries       []model.ScheduleEntry
	EligibleCount int

	// Blocked lists eligible tasks left out because they sit on or behind a
	// dependency cycle.
	Blocked []string

	// Fallback is set when the selected policy failed and WSPT was used instead.
	Fallback       bool
	FallbackReason string
}

// Unscheduled is the number of eligible tasks that received no entry.
func (r Result) Unscheduled() int {
	n := r.EligibleCount - len(r.Entries)
	if n < 0 {
		return 0
	}
	return n
}

// Analysis is aggregate statistics and advice over a produced schedule.
type Analysis struct {
	TotalTasks          int
	ScheduledTasks      int
	Unscheduled         int
	TotalEstimatedHours float64
	WorkingDays         int
	DeadlineViolations  int
	Recommendations     []string
}

// DayLoad is the workload placed on one calendar date.
type DayLoad struct {
	Date    time.Time
	Hours   float64
	Tasks   int
	Entries []model.ScheduleEntry
}
