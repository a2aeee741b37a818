package usecase

import (
	"context"
	"time"

	"branchboard/internal/model"
	"branchboard/internal/schedule"
	"branchboard/pkg/datemath"
)

const (
	recDeadlineViolations = "Consider extending deadlines or reducing task scope for overdue items"
	recHeavyWorkload      = "Heavy workload detected - consider prioritizing or delegating tasks"
	recBreakDown          = "Consider breaking down larger tasks for better manageability"

	heavyWorkloadDays = 7
	maxAvgTasksPerDay = 5
)

// GetScheduleAnalysis computes statistics and advisory recommendations.
func (uc *implUseCase) GetScheduleAnalysis(ctx context.Context, input schedule.AnalysisInput) schedule.Analysis {
	cal := input.Calendar.WithDefaults()
	loc, err := cal.Location()
	if err != nil {
		uc.l.Warnf(ctx, "uc.GetScheduleAnalysis location: %v, using UTC", err)
		loc = time.UTC
	}

	a := schedule.Analysis{
		TotalTasks:      len(input.Tasks),
		ScheduledTasks:  len(input.Entries),
		Recommendations: []string{},
	}

	days := make(map[time.Time]struct{})
	for _, e := range input.Entries {
		a.TotalEstimatedHours += e.Duration
		days[datemath.DateOf(e.StartTime, loc)] = struct{}{}
		if e.HasIssue(model.IssueDeadlineViolation) {
			a.DeadlineViolations++
		}
	}
	a.WorkingDays = len(days)

	scheduled := make(map[string]struct{}, len(input.Entries))
	for _, e := range input.Entries {
		scheduled[e.TaskID] = struct{}{}
	}
	for _, t := range model.EligibleTasks(input.Tasks) {
		if _, ok := scheduled[t.ID]; !ok {
			a.Unscheduled++
		}
	}

	if a.DeadlineViolations > 0 {
		a.Recommendations = append(a.Recommendations, recDeadlineViolations)
	}
	if a.TotalEstimatedHours > cal.WorkHoursPerDay*heavyWorkloadDays {
		a.Recommendations = append(a.Recommendations, recHeavyWorkload)
	}
	if a.WorkingDays > 0 && float64(a.TotalTasks)/float64(a.WorkingDays) > maxAvgTasksPerDay {
		a.Recommendations = append(a.Recommendations, recBreakDown)
	}
	return a
}
