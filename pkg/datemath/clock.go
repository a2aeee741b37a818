package datemath

import (
	"fmt"
	"strconv"
	"time"
)

// ParseClock parses "HH:MM" (24h).
func ParseClock(s string) (Clock, error) {
	m := reClock.FindStringSubmatch(s)
	if len(m) != 3 {
		return Clock{}, fmt.Errorf("invalid clock %q: want HH:MM", s)
	}
	hh, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	if hh > 23 || mm > 59 {
		return Clock{}, fmt.Errorf("invalid clock %q: out of range", s)
	}
	return Clock{Hour: hh, Minute: mm}, nil
}

// String renders the clock as HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Hours returns the clock as fractional hours since midnight.
func (c Clock) Hours() float64 {
	return float64(c.Hour) + float64(c.Minute)/60
}

// At returns the instant on t's calendar date (in loc) at this clock time.
func (c Clock) At(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), c.Hour, c.Minute, 0, 0, loc)
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// NextWorkday returns the first calendar date strictly after t, skipping
// weekends when skipWeekends is set. The clock part of t is kept.
func NextWorkday(t time.Time, skipWeekends bool) time.Time {
	next := t.AddDate(0, 0, 1)
	for skipWeekends && IsWeekend(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Workday returns t itself when it is an eligible day, otherwise the next one.
func Workday(t time.Time, skipWeekends bool) time.Time {
	for skipWeekends && IsWeekend(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// DateOf returns midnight of t's calendar date in loc.
func DateOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// SameDate reports whether a and b fall on the same calendar date in loc.
func SameDate(a, b time.Time, loc *time.Location) bool {
	return DateOf(a, loc).Equal(DateOf(b, loc))
}
