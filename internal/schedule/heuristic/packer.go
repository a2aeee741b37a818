package heuristic

import (
	"time"

	"branchboard/internal/model"
	"branchboard/pkg/datemath"
)

// BreakHours is the pause inserted after a task of MinHoursBeforeBreak or more
// when the day still has room. It does not follow WorkCalendar.BreakDuration.
const (
	BreakHours          = 0.25
	MinHoursBeforeBreak = 2.0
)

// Pack assigns consecutive slots to ordered tasks, first-fit in order.
//
// Packing starts at StartOfDay today when now has not passed it and today is a
// working day, otherwise at StartOfDay of the next working day. A task that does
// not fit the hours left today moves whole to the next working day; tasks are
// never split.
func Pack(ordered []model.Task, cal model.WorkCalendar, now time.Time) ([]model.ScheduleEntry, error) {
	if err := cal.Validate(); err != nil {
		return nil, err
	}
	loc, _ := cal.Location()
	dayStart, _ := cal.DayStart()

	cursor := firstSlot(now.In(loc), dayStart, loc, cal.ExcludeWeekends)
	available := cal.WorkHoursPerDay

	entries := make([]model.ScheduleEntry, 0, len(ordered))
	for _, t := range ordered {
		hours := t.EffectiveHours()

		if hours > available {
			cursor = dayStart.At(datemath.NextWorkday(cursor, cal.ExcludeWeekends), loc)
			available = cal.WorkHoursPerDay
		}

		start := cursor
		end := start.Add(hoursToDuration(hours))
		entries = append(entries, model.ScheduleEntry{
			TaskID:        t.ID,
			Task:          t,
			StartTime:     start,
			EndTime:       end,
			Duration:      hours,
			ScheduledDate: datemath.DateOf(start, loc),
		})

		cursor = end
		available -= hours

		if available > 0 && hours >= MinHoursBeforeBreak {
			cursor = cursor.Add(hoursToDuration(BreakHours))
			available -= BreakHours
		}
	}
	return entries, nil
}

func firstSlot(now time.Time, dayStart datemath.Clock, loc *time.Location, skipWeekends bool) time.Time {
	today := dayStart.At(now, loc)
	if !now.After(today) && !(skipWeekends && datemath.IsWeekend(today)) {
		return today
	}
	return dayStart.At(datemath.NextWorkday(today, skipWeekends), loc)
}

func hoursToDuration(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
