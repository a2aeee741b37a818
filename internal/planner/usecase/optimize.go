package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"branchboard/internal/model"
	"branchboard/internal/planner"
	"branchboard/internal/planner/repository"
	"branchboard/internal/schedule"
	"branchboard/internal/schedule/heuristic"
	"branchboard/pkg/gcalendar"
	pkgLog "branchboard/pkg/log"
)

// Optimize schedules the active tasks of the current branch and stores the result.
func (uc *implUseCase) Optimize(ctx context.Context, input planner.OptimizeInput) (planner.ScheduleOutput, error) {
	cal, err := uc.Settings(ctx)
	if err != nil {
		return planner.ScheduleOutput{}, err
	}

	tasks, err := uc.activeTasks(ctx)
	if err != nil {
		return planner.ScheduleOutput{}, err
	}

	now := uc.clock()
	res, err := uc.scheduler.OptimizeSchedule(ctx, schedule.OptimizeInput{
		Tasks:    tasks,
		Method:   input.Method,
		Calendar: cal,
		Now:      now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Optimize schedule: %v", err)
		return planner.ScheduleOutput{}, err
	}
	ctx = context.WithValue(ctx, pkgLog.RunIDKey, res.RunID)

	return uc.commit(ctx, res, tasks, cal, now)
}

// Reschedule re-plans taskID and its direct dependents, then re-packs them
// with the rest of the stored schedule.
func (uc *implUseCase) Reschedule(ctx context.Context, taskID string) (planner.ScheduleOutput, error) {
	t, err := uc.repo.GetTask(ctx, taskID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reschedule get task: %v", err)
		return planner.ScheduleOutput{}, err
	}
	if t.ID == "" {
		return planner.ScheduleOutput{}, planner.ErrTaskNotFound
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
	res, err := uc.scheduler.RescheduleTask(ctx, schedule.RescheduleInput{
		TaskID:   taskID,
		Tasks:    tasks,
		Calendar: cal,
		Now:      now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reschedule schedule: %v", err)
		return planner.ScheduleOutput{}, err
	}
	ctx = context.WithValue(ctx, pkgLog.RunIDKey, res.RunID)

	res, err = mergeStored(res, tasks, cal, now)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reschedule merge: %v", err)
		return planner.ScheduleOutput{}, err
	}

	return uc.commit(ctx, res, tasks, cal, now)
}

// mergeStored re-packs a partial reschedule together with the eligible tasks
// that still hold a stored slot, so the saved schedule has no overlaps.
// Rescheduled tasks keep their new order ahead of the stored ones, which keep
// their stored start order. Dependencies still win over both.
func mergeStored(res schedule.Result, tasks []model.Task, cal model.WorkCalendar, now time.Time) (schedule.Result, error) {
	eligible := model.EligibleTasks(tasks)

	placed := make(map[string]bool, len(res.Entries)+len(res.Blocked))
	for _, e := range res.Entries {
		placed[e.TaskID] = true
	}
	for _, id := range res.Blocked {
		placed[id] = true
	}

	var kept []model.Task
	for _, e := range storedEntries(eligible) {
		if !placed[e.TaskID] {
			kept = append(kept, e.Task)
		}
	}
	if len(kept) == 0 {
		return res, nil
	}

	seq := make([]model.Task, 0, len(res.Entries)+len(kept))
	for _, e := range res.Entries {
		seq = append(seq, e.Task)
	}
	seq = append(seq, kept...)

	ordered, blocked := heuristic.OrderPreserving(seq)
	entries, err := heuristic.Pack(ordered, cal, now)
	if err != nil {
		return schedule.Result{}, err
	}

	res.Entries = heuristic.Validate(entries, now)
	res.EligibleCount = len(eligible)
	for _, t := range blocked {
		res.Blocked = append(res.Blocked, t.ID)
	}
	return res, nil
}

// commit analyses, persists, caches and exports a produced schedule.
func (uc *implUseCase) commit(ctx context.Context, res schedule.Result, tasks []model.Task, cal model.WorkCalendar, now time.Time) (planner.ScheduleOutput, error) {
	if res.Fallback {
		uc.l.Warnf(ctx, "uc.commit: schedule produced by fallback: %s", res.FallbackReason)
	}

	out := planner.ScheduleOutput{
		Result: res,
		Analysis: uc.scheduler.GetScheduleAnalysis(ctx, schedule.AnalysisInput{
			Entries:  res.Entries,
			Tasks:    model.EligibleTasks(tasks),
			Calendar: cal,
		}),
		Calendar:    cal,
		GeneratedAt: now,
	}

	if err := uc.repo.SaveSchedule(ctx, toSaveOptions(res.Entries)); err != nil {
		uc.l.Errorf(ctx, "uc.commit save schedule: %v", err)
		return planner.ScheduleOutput{}, fmt.Errorf("save schedule: %w", err)
	}

	out.Exported = uc.export(ctx, res.Entries, cal)
	uc.cache.Add(currentKey, out)

	uc.l.Infof(ctx, "uc.commit: scheduled=%d unscheduled=%d exported=%d", len(res.Entries), res.Unscheduled(), out.Exported)
	return out, nil
}

// export publishes entries to the external calendar. Failures are logged and skipped.
func (uc *implUseCase) export(ctx context.Context, entries []model.ScheduleEntry, cal model.WorkCalendar) int {
	if uc.exporter == nil {
		return 0
	}

	n := 0
	for _, e := range entries {
		_, err := uc.exporter.PutEvent(ctx, gcalendar.PutEventRequest{
			TaskID:      e.TaskID,
			Summary:     e.Task.Title,
			Description: describeEntry(e),
			StartTime:   e.StartTime,
			EndTime:     e.EndTime,
			Timezone:    cal.Timezone,
		})
		if err != nil {
			uc.l.Warnf(ctx, "uc.export task=%s (non-fatal): %v", e.TaskID, err)
			continue
		}
		n++
	}
	return n
}

func describeEntry(e model.ScheduleEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Priority: %s\nEstimated: %gh", e.Task.Priority, e.Duration)
	if e.Task.HasDeadline() {
		fmt.Fprintf(&b, "\nDeadline: %s", e.Task.Deadline.Format(time.RFC3339))
	}
	for _, issue := range e.Issues {
		fmt.Fprintf(&b, "\nWarning: %s", issue)
	}
	return b.String()
}

func toSaveOptions(entries []model.ScheduleEntry) []repository.SaveScheduleOptions {
	opts := make([]repository.SaveScheduleOptions, len(entries))
	for i, e := range entries {
		opts[i] = repository.SaveScheduleOptions{
			TaskID:         e.TaskID,
			ScheduledDate:  e.ScheduledDate,
			ScheduledStart: e.StartTime,
			ScheduledEnd:   e.EndTime,
		}
	}
	return opts
}
