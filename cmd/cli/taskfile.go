package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"branchboard/internal/model"
	"branchboard/pkg/datemath"
)

// taskFile is the YAML document read by the CLI.
type taskFile struct {
	Calendar calendarDoc `yaml:"calendar"`
	Tasks    []taskDoc   `yaml:"tasks"`
}

type calendarDoc struct {
	WorkHoursPerDay float64 `yaml:"work_hours_per_day"`
	WorkDaysPerWeek int     `yaml:"work_days_per_week"`
	StartOfDay      string  `yaml:"start_of_day"`
	EndOfDay        string  `yaml:"end_of_day"`
	ExcludeWeekends *bool   `yaml:"exclude_weekends"`
	BreakDuration   float64 `yaml:"break_duration"`
	Timezone        string  `yaml:"timezone"`
}

type taskDoc struct {
	ID             string   `yaml:"id"`
	Title          string   `yaml:"title"`
	Priority       string   `yaml:"priority"`
	EstimatedHours float64  `yaml:"estimated_hours"`
	Deadline       string   `yaml:"deadline"`
	DependsOn      []string `yaml:"depends_on"`
	Status         string   `yaml:"status"`
}

func (c calendarDoc) toModel() model.WorkCalendar {
	cal := model.WorkCalendar{
		WorkHoursPerDay: c.WorkHoursPerDay,
		WorkDaysPerWeek: c.WorkDaysPerWeek,
		StartOfDay:      c.StartOfDay,
		EndOfDay:        c.EndOfDay,
		ExcludeWeekends: true,
		BreakDuration:   c.BreakDuration,
		Timezone:        c.Timezone,
	}
	if c.ExcludeWeekends != nil {
		cal.ExcludeWeekends = *c.ExcludeWeekends
	}
	return cal.WithDefaults()
}

// loadTaskFile reads path and converts it to model values.
// Date-only deadlines mean the end of that day in the calendar's timezone.
func loadTaskFile(path string, now time.Time) ([]model.Task, model.WorkCalendar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WorkCalendar{}, fmt.Errorf("read task file: %w", err)
	}
	return parseTaskFile(data, now)
}

func parseTaskFile(data []byte, now time.Time) ([]model.Task, model.WorkCalendar, error) {
	var doc taskFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, model.WorkCalendar{}, fmt.Errorf("parse task file: %w", err)
	}

	cal := doc.Calendar.toModel()
	if err := cal.Validate(); err != nil {
		return nil, model.WorkCalendar{}, err
	}
	tz := cal.Timezone
	if tz == "" {
		tz = "UTC"
	}
	parser, err := datemath.NewParser(tz)
	if err != nil {
		return nil, model.WorkCalendar{}, err
	}

	tasks := make([]model.Task, 0, len(doc.Tasks))
	seen := make(map[string]bool, len(doc.Tasks))
	for i, td := range doc.Tasks {
		id := strings.TrimSpace(td.ID)
		if id == "" {
			id = fmt.Sprintf("task-%d", i+1)
		}
		if seen[id] {
			return nil, model.WorkCalendar{}, fmt.Errorf("task %q: duplicate id", id)
		}
		seen[id] = true

		t := model.Task{
			ID:             id,
			Title:          td.Title,
			Priority:       model.Priority(strings.ToLower(td.Priority)),
			EstimatedHours: td.EstimatedHours,
			DependsOn:      td.DependsOn,
			Status:         model.Status(strings.ToLower(td.Status)),
		}
		if t.Priority == "" {
			t.Priority = model.PriorityMedium
		}
		if t.Status == "" {
			t.Status = model.StatusPending
		}

		if dl := strings.TrimSpace(td.Deadline); dl != "" {
			deadline, err := parseDeadline(parser, dl, now)
			if err != nil {
				return nil, model.WorkCalendar{}, fmt.Errorf("task %q: %w", id, err)
			}
			t.Deadline = &deadline
		}
		tasks = append(tasks, t)
	}

	return tasks, cal, nil
}

func parseDeadline(p *datemath.Parser, s string, now time.Time) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	day, err := p.ParseDate(s, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("deadline %q: %w", s, err)
	}
	return p.EndOfDay(day), nil
}
