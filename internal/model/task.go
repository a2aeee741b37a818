package model

import "time"

// Priority is the user-assigned importance of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Weight maps a priority to its scheduling weight. Unknown priorities weigh
// the same as low.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// IsSchedulable reports whether a task in this status may be placed on the calendar.
func (s Status) IsSchedulable() bool {
	return s == StatusPending || s == StatusInProgress
}

// DefaultEstimatedHours is used when a task carries no usable estimate.
const DefaultEstimatedHours = 1.0

// Task is a unit of work attached to a branch node.
type Task struct {
	ID             string
	Title          string
	Priority       Priority
	EstimatedHours float64
	Deadline       *time.Time
	DependsOn      []string
	Status         Status
	SourceNodeID   string // branch node the task was created from; empty = always active

	// Write-back of the last persisted schedule.
	ScheduledDate  *time.Time
	ScheduledStart *time.Time
	ScheduledEnd   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveHours returns the estimate used for scheduling, never zero or negative.
func (t Task) EffectiveHours() float64 {
	if t.EstimatedHours > 0 {
		return t.EstimatedHours
	}
	return DefaultEstimatedHours
}

// HasDeadline reports whether the task has a deadline.
func (t Task) HasDeadline() bool {
	return t.Deadline != nil && !t.Deadline.IsZero()
}

// IsScheduled reports whether a schedule has been written back to the task.
func (t Task) IsScheduled() bool {
	return t.ScheduledDate != nil && !t.ScheduledDate.IsZero()
}

// EligibleTasks returns the tasks whose status allows scheduling, in input order.
func EligibleTasks(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status.IsSchedulable() {
			out = append(out, t)
		}
	}
	return out
}
