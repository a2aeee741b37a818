package heuristic

import (
	"time"

	"branchboard/internal/model"
)

// TooFarHorizon is how far past the reference instant an entry may start
// before it is flagged as scheduled_too_far.
const TooFarHorizon = 30 * 24 * time.Hour

// Validate returns a copy of entries annotated with deadline and horizon
// issues. Timing and order are never changed.
func Validate(entries []model.ScheduleEntry, now time.Time) []model.ScheduleEntry {
	horizon := now.Add(TooFarHorizon)

	out := make([]model.ScheduleEntry, len(entries))
	for i, e := range entries {
		issues := make([]model.Issue, 0, 2)
		if e.Task.HasDeadline() && e.EndTime.After(*e.Task.Deadline) {
			issues = append(issues, model.IssueDeadlineViolation)
		}
		if e.StartTime.After(horizon) {
			issues = append(issues, model.IssueScheduledTooFar)
		}
		e.Issues = issues
		e.IsValid = len(issues) == 0
		out[i] = e
	}
	return out
}
