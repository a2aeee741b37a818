package model

import "time"

// Issue tags a problem found on a schedule entry.
type Issue string

const (
	IssueDeadlineViolation Issue = "deadline_violation"
	IssueScheduledTooFar   Issue = "scheduled_too_far"
)

// ScheduleEntry is one task placed into a concrete [StartTime, EndTime) slot.
type ScheduleEntry struct {
	TaskID        string
	Task          Task // snapshot taken at scheduling time
	StartTime     time.Time
	EndTime       time.Time
	Duration      float64   // hours
	ScheduledDate time.Time // midnight of StartTime in the calendar location
	Issues        []Issue
	IsValid       bool
}

// HasIssue reports whether the entry carries the given issue.
func (e ScheduleEntry) HasIssue(issue Issue) bool {
	for _, i := range e.Issues {
		if i == issue {
			return true
		}
	}
	return false
}
