package usecase

import (
	"sort"
	"time"

	"branchboard/internal/model"
	"branchboard/internal/schedule"
	"branchboard/pkg/datemath"
)

func (uc *implUseCase) DailySchedule(entries []model.ScheduleEntry, date time.Time, loc *time.Location) []model.ScheduleEntry {
	if loc == nil {
		loc = time.UTC
	}
	out := make([]model.ScheduleEntry, 0)
	for _, e := range entries {
		if datemath.SameDate(e.StartTime, date, loc) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}

func (uc *implUseCase) WorkloadDistribution(entries []model.ScheduleEntry, loc *time.Location) []schedule.DayLoad {
	if loc == nil {
		loc = time.UTC
	}
	byDate := make(map[time.Time]int)
	out := make([]schedule.DayLoad, 0)
	for _, e := range entries {
		d := datemath.DateOf(e.StartTime, loc)
		i, ok := byDate[d]
		if !ok {
			i = len(out)
			byDate[d] = i
			out = append(out, schedule.DayLoad{Date: d})
		}
		out[i].Hours += e.Duration
		out[i].Tasks++
		out[i].Entries = append(out[i].Entries, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
