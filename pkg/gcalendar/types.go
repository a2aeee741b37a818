package gcalendar

import "time"

const (
	DefaultCalendarID = "primary"

	// TaskIDProperty is the private extended property that links an event to a task.
	TaskIDProperty = "branchboard_task_id"
)

// PutEventRequest describes the event for one scheduled task.
type PutEventRequest struct {
	TaskID      string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Europe/Berlin"
}

// Event is a simplified Google Calendar event.
type Event struct {
	ID        string
	TaskID    string
	Summary   string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
}

// ListEventsRequest selects task events overlapping [TimeMin, TimeMax).
type ListEventsRequest struct {
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
