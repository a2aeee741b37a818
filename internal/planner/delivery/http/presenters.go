package http

import (
	"strings"
	"time"

	"branchboard/internal/model"
	"branchboard/internal/planner"
	"branchboard/internal/schedule"
	"branchboard/pkg/response"
)

// --- Request DTOs ---

type optimizeReq struct {
	Method string `json:"method" binding:"omitempty,oneof=auto edd wspt dependencies"`
}

func (r optimizeReq) toInput() planner.OptimizeInput {
	return planner.OptimizeInput{
		Method: schedule.ParseMethod(r.Method),
	}
}

// ---

type dailyReq struct {
	Date string `form:"date"`
}

// ---

type upsertTaskReq struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"           binding:"required,max=500"`
	Priority       string   `json:"priority"        binding:"omitempty,oneof=high medium low"`
	EstimatedHours float64  `json:"estimated_hours" binding:"gte=0"`
	Deadline       string   `json:"deadline"`
	DependsOn      []string `json:"depends_on"`
	Status         string   `json:"status"          binding:"omitempty,oneof=pending in_progress completed cancelled"`
	SourceNodeID   string   `json:"source_node_id"`

	deadline *time.Time
}

func (r upsertTaskReq) toInput() planner.UpsertTaskInput {
	return planner.UpsertTaskInput{
		ID:             strings.TrimSpace(r.ID),
		Title:          r.Title,
		Priority:       model.Priority(r.Priority),
		EstimatedHours: r.EstimatedHours,
		Deadline:       r.deadline,
		DependsOn:      r.DependsOn,
		Status:         model.Status(r.Status),
		SourceNodeID:   r.SourceNodeID,
	}
}

// ---

type calendarReq struct {
	WorkHoursPerDay float64 `json:"work_hours_per_day" binding:"gte=0,lte=24"`
	WorkDaysPerWeek int     `json:"work_days_per_week" binding:"gte=0,lte=7"`
	StartOfDay      string  `json:"start_of_day"`
	EndOfDay        string  `json:"end_of_day"`
	ExcludeWeekends *bool   `json:"exclude_weekends"`
	BreakDuration   float64 `json:"break_duration"     binding:"gte=0"`
	Timezone        string  `json:"timezone"`
}

func (r calendarReq) toInput() model.WorkCalendar {
	cal := model.WorkCalendar{
		WorkHoursPerDay: r.WorkHoursPerDay,
		WorkDaysPerWeek: r.WorkDaysPerWeek,
		StartOfDay:      r.StartOfDay,
		EndOfDay:        r.EndOfDay,
		ExcludeWeekends: true,
		BreakDuration:   r.BreakDuration,
		Timezone:        r.Timezone,
	}
	if r.ExcludeWeekends != nil {
		cal.ExcludeWeekends = *r.ExcludeWeekends
	}
	return cal
}

// ---

type branchReq struct {
	Current bool `json:"current"`
}

// --- Response DTOs ---

type taskResp struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Priority       string     `json:"priority"`
	EstimatedHours float64    `json:"estimated_hours"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	DependsOn      []string   `json:"depends_on"`
	Status         string     `json:"status"`
	SourceNodeID   string     `json:"source_node_id,omitempty"`
	ScheduledStart *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time `json:"scheduled_end,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	deps := t.DependsOn
	if deps == nil {
		deps = []string{}
	}
	return taskResp{
		ID:             t.ID,
		Title:          t.Title,
		Priority:       string(t.Priority),
		EstimatedHours: t.EstimatedHours,
		Deadline:       t.Deadline,
		DependsOn:      deps,
		Status:         string(t.Status),
		SourceNodeID:   t.SourceNodeID,
		ScheduledStart: t.ScheduledStart,
		ScheduledEnd:   t.ScheduledEnd,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func newTaskListResp(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type entryResp struct {
	TaskID        string       `json:"task_id"`
	Title         string       `json:"title"`
	Priority      string       `json:"priority"`
	StartTime     time.Time    `json:"start_time"`
	EndTime       time.Time    `json:"end_time"`
	Duration      float64      `json:"duration"`
	ScheduledDate response.Day `json:"scheduled_date" swaggertype:"string"`
	Issues        []string     `json:"issues"`
	IsValid       bool         `json:"is_valid"`
}

func newEntryResp(e model.ScheduleEntry) entryResp {
	issues := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		issues[i] = string(is)
	}
	return entryResp{
		TaskID:        e.TaskID,
		Title:         e.Task.Title,
		Priority:      string(e.Task.Priority),
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		Duration:      e.Duration,
		ScheduledDate: response.Day(e.ScheduledDate),
		Issues:        issues,
		IsValid:       e.IsValid,
	}
}

func newEntryListResp(entries []model.ScheduleEntry) []entryResp {
	out := make([]entryResp, len(entries))
	for i, e := range entries {
		out[i] = newEntryResp(e)
	}
	return out
}

type analysisResp struct {
	TotalTasks          int      `json:"total_tasks"`
	ScheduledTasks      int      `json:"scheduled_tasks"`
	Unscheduled         int      `json:"unscheduled"`
	TotalEstimatedHours float64  `json:"total_estimated_hours"`
	WorkingDays         int      `json:"working_days"`
	DeadlineViolations  int      `json:"deadline_violations"`
	Recommendations     []string `json:"recommendations"`
}

type scheduleResp struct {
	RunID          string       `json:"run_id,omitempty"`
	Requested      string       `json:"requested_method"`
	Applied        string       `json:"applied_method"`
	Fallback       bool         `json:"fallback"`
	FallbackReason string       `json:"fallback_reason,omitempty"`
	EligibleCount  int          `json:"eligible_count"`
	Unscheduled    int          `json:"unscheduled"`
	Blocked        []string     `json:"blocked"`
	Exported       int          `json:"exported"`
	GeneratedAt    time.Time    `json:"generated_at"`
	Entries        []entryResp  `json:"entries"`
	Analysis       analysisResp `json:"analysis"`
}

func (h *handler) newScheduleResp(out planner.ScheduleOutput) scheduleResp {
	res := out.Result
	blocked := res.Blocked
	if blocked == nil {
		blocked = []string{}
	}
	a := out.Analysis
	recs := a.Recommendations
	if recs == nil {
		recs = []string{}
	}
	return scheduleResp{
		RunID:          res.RunID,
		Requested:      string(res.Requested),
		Applied:        string(res.Applied),
		Fallback:       res.Fallback,
		FallbackReason: res.FallbackReason,
		EligibleCount:  res.EligibleCount,
		Unscheduled:    res.Unscheduled(),
		Blocked:        blocked,
		Exported:       out.Exported,
		GeneratedAt:    out.GeneratedAt,
		Entries:        newEntryListResp(res.Entries),
		Analysis: analysisResp{
			TotalTasks:          a.TotalTasks,
			ScheduledTasks:      a.ScheduledTasks,
			Unscheduled:         a.Unscheduled,
			TotalEstimatedHours: a.TotalEstimatedHours,
			WorkingDays:         a.WorkingDays,
			DeadlineViolations:  a.DeadlineViolations,
			Recommendations:     recs,
		},
	}
}

type dayLoadResp struct {
	Date    response.Day `json:"date" swaggertype:"string"`
	Hours   float64      `json:"hours"`
	Tasks   int          `json:"tasks"`
	Entries []entryResp  `json:"entries"`
}

func newWorkloadResp(days []schedule.DayLoad) []dayLoadResp {
	out := make([]dayLoadResp, len(days))
	for i, d := range days {
		out[i] = dayLoadResp{
			Date:    response.Day(d.Date),
			Hours:   d.Hours,
			Tasks:   d.Tasks,
			Entries: newEntryListResp(d.Entries),
		}
	}
	return out
}

type calendarResp struct {
	WorkHoursPerDay float64 `json:"work_hours_per_day"`
	WorkDaysPerWeek int     `json:"work_days_per_week"`
	StartOfDay      string  `json:"start_of_day"`
	EndOfDay        string  `json:"end_of_day"`
	ExcludeWeekends bool    `json:"exclude_weekends"`
	BreakDuration   float64 `json:"break_duration"`
	Timezone        string  `json:"timezone"`
}

func newCalendarResp(c model.WorkCalendar) calendarResp {
	return calendarResp{
		WorkHoursPerDay: c.WorkHoursPerDay,
		WorkDaysPerWeek: c.WorkDaysPerWeek,
		StartOfDay:      c.StartOfDay,
		EndOfDay:        c.EndOfDay,
		ExcludeWeekends: c.ExcludeWeekends,
		BreakDuration:   c.BreakDuration,
		Timezone:        c.Timezone,
	}
}
