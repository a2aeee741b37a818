package usecase

import (
	"context"
	"sort"
	"time"

	"branchboard/internal/model"
	"branchboard/internal/planner"
	"branchboard/internal/schedule"
	"branchboard/internal/schedule/heuristic"
)

// CurrentSchedule returns the cached schedule, or rebuilds it from the
// schedule fields stored on the tasks.
func (uc *implUseCase) CurrentSchedule(ctx context.Context) (planner.ScheduleOutput, error) {
	if out, ok := uc.cache.Get(currentKey); ok {
		return out, nil
	}

	cal, err := uc.Settings(ctx)
	if err != nil {
		return planner.ScheduleOutput{}, err
	}
	tasks, err := uc.activeTasks(ctx)
	if err != nil {
		return planner.ScheduleOutput{}, err
	}

	now := uc.clock()
	entries := storedEntries(tasks)
	if len(entries) == 0 {
		return planner.ScheduleOutput{}, planner.ErrNoSchedule
	}
	entries = heuristic.Validate(entries, now)

	res := schedule.Result{
		Requested:     schedule.MethodAuto,
		Applied:       schedule.MethodAuto,
		Entries:       entries,
		EligibleCount: len(model.EligibleTasks(tasks)),
	}
	out := planner.ScheduleOutput{
		Result: res,
		Analysis: uc.scheduler.GetScheduleAnalysis(ctx, schedule.AnalysisInput{
			Entries:  entries,
			Tasks:    model.EligibleTasks(tasks),
			Calendar: cal,
		}),
		Calendar:    cal,
		GeneratedAt: now,
	}
	uc.cache.Add(currentKey, out)
	return out, nil
}

// DailySchedule returns the current schedule's entries starting on date.
func (uc *implUseCase) DailySchedule(ctx context.Context, date time.Time) ([]model.ScheduleEntry, error) {
	out, err := uc.CurrentSchedule(ctx)
	if err != nil {
		return nil, err
	}
	loc, _ := out.Calendar.Location()
	return uc.scheduler.DailySchedule(out.Result.Entries, date, loc), nil
}

// Workload returns the current schedule grouped by day.
func (uc *implUseCase) Workload(ctx context.Context) ([]schedule.DayLoad, error) {
	out, err := uc.CurrentSchedule(ctx)
	if err != nil {
		return nil, err
	}
	loc, _ := out.Calendar.Location()
	return uc.scheduler.WorkloadDistribution(out.Result.Entries, loc), nil
}

// storedEntries rebuilds entries from eligible tasks that carry a stored slot.
func storedEntries(tasks []model.Task) []model.ScheduleEntry {
	entries := make([]model.ScheduleEntry, 0)
	for _, t := range model.EligibleTasks(tasks) {
		if !t.IsScheduled() || t.ScheduledStart == nil || t.ScheduledEnd == nil {
			continue
		}
		entries = append(entries, model.ScheduleEntry{
			TaskID:        t.ID,
			Task:          t,
			StartTime:     *t.ScheduledStart,
			EndTime:       *t.ScheduledEnd,
			Duration:      t.ScheduledEnd.Sub(*t.ScheduledStart).Hours(),
			ScheduledDate: *t.ScheduledDate,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartTime.Before(entries[j].StartTime)
	})
	return entries
}
