package model

import (
	"errors"
	"fmt"
	"time"

	"branchboard/pkg/datemath"
)

// ErrInvalidCalendar is returned when a WorkCalendar cannot be used for packing.
var ErrInvalidCalendar = errors.New("invalid work calendar")

// WorkCalendar describes when work may be scheduled.
type WorkCalendar struct {
	WorkHoursPerDay float64
	WorkDaysPerWeek int
	StartOfDay      string // HH:MM, local to Timezone
	EndOfDay        string // HH:MM, local to Timezone
	ExcludeWeekends bool
	BreakDuration   float64 // hours; informational, the packer uses a fixed break
	Timezone        string  // IANA name, empty = UTC
}

// Calendar defaults applied when the settings store has no value.
const (
	DefaultWorkHoursPerDay = 8.0
	DefaultWorkDaysPerWeek = 5
	DefaultStartOfDay      = "09:00"
	DefaultEndOfDay        = "18:00"
	DefaultBreakDuration   = 1.0
	DefaultTimezone        = "UTC"
)

// DefaultWorkCalendar returns the calendar used when nothing is configured.
func DefaultWorkCalendar() WorkCalendar {
	return WorkCalendar{
		WorkHoursPerDay: DefaultWorkHoursPerDay,
		WorkDaysPerWeek: DefaultWorkDaysPerWeek,
		StartOfDay:      DefaultStartOfDay,
		EndOfDay:        DefaultEndOfDay,
		ExcludeWeekends: true,
		BreakDuration:   DefaultBreakDuration,
		Timezone:        DefaultTimezone,
	}
}

// WithDefaults fills zero-valued fields from DefaultWorkCalendar.
// ExcludeWeekends is a plain bool and is kept as given.
func (c WorkCalendar) WithDefaults() WorkCalendar {
	d := DefaultWorkCalendar()
	if c.WorkHoursPerDay == 0 {
		c.WorkHoursPerDay = d.WorkHoursPerDay
	}
	if c.WorkDaysPerWeek == 0 {
		c.WorkDaysPerWeek = d.WorkDaysPerWeek
	}
	if c.StartOfDay == "" {
		c.StartOfDay = d.StartOfDay
	}
	if c.EndOfDay == "" {
		c.EndOfDay = d.EndOfDay
	}
	if c.BreakDuration == 0 {
		c.BreakDuration = d.BreakDuration
	}
	if c.Timezone == "" {
		c.Timezone = d.Timezone
	}
	return c
}

// Validate checks that the calendar can be used for packing.
func (c WorkCalendar) Validate() error {
	if c.WorkHoursPerDay <= 0 {
		return fmt.Errorf("%w: work hours per day must be positive, got %v", ErrInvalidCalendar, c.WorkHoursPerDay)
	}
	if c.WorkDaysPerWeek < 0 || c.WorkDaysPerWeek > 7 {
		return fmt.Errorf("%w: work days per week must be within 0..7, got %d", ErrInvalidCalendar, c.WorkDaysPerWeek)
	}
	if _, err := datemath.ParseClock(c.StartOfDay); err != nil {
		return fmt.Errorf("%w: start of day: %v", ErrInvalidCalendar, err)
	}
	if _, err := datemath.ParseClock(c.EndOfDay); err != nil {
		return fmt.Errorf("%w: end of day: %v", ErrInvalidCalendar, err)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone. Empty means UTC.
func (c WorkCalendar) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidCalendar, c.Timezone, err)
	}
	return loc, nil
}

// DayStart returns the parsed StartOfDay clock.
func (c WorkCalendar) DayStart() (datemath.Clock, error) {
	clk, err := datemath.ParseClock(c.StartOfDay)
	if err != nil {
		return datemath.Clock{}, fmt.Errorf("%w: start of day: %v", ErrInvalidCalendar, err)
	}
	return clk, nil
}
