package usecase

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"branchboard/internal/model"
	"branchboard/internal/schedule"
	"branchboard/internal/schedule/heuristic"
)

// RescheduleTask re-runs dependency scheduling for the changed task and its
// direct dependents. When nothing eligible is affected it runs a full auto
// schedule instead. A failed policy falls back to WSPT over every eligible task.
func (uc *implUseCase) RescheduleTask(ctx context.Context, input schedule.RescheduleInput) (schedule.Result, error) {
	if err := input.Calendar.Validate(); err != nil {
		uc.l.Errorf(ctx, "uc.RescheduleTask validate calendar: %v", err)
		return schedule.Result{}, err
	}

	affected := model.EligibleTasks(affectedTasks(input.Tasks, input.TaskID))
	if len(affected) == 0 {
		uc.l.Infof(ctx, "uc.RescheduleTask: nothing affected by task=%s, running full schedule", input.TaskID)
		return uc.OptimizeSchedule(ctx, schedule.OptimizeInput{
			Tasks:        input.Tasks,
			Method:       schedule.MethodAuto,
			Calendar:     input.Calendar,
			Now:          input.Now,
			UseOptimizer: input.UseOptimizer,
		})
	}

	now := uc.now(input.Now)
	res := schedule.Result{
		RunID:         uuid.NewString(),
		Requested:     schedule.MethodDependencies,
		EligibleCount: len(affected),
		Entries:       []model.ScheduleEntry{},
	}

	ordered, applied, blocked, err := uc.order(ctx, affected, schedule.MethodDependencies, input.UseOptimizer)
	if err != nil {
		uc.l.Warnf(ctx, "uc.RescheduleTask order task=%s: %v, falling back to wspt", input.TaskID, err)
		eligible := model.EligibleTasks(input.Tasks)
		res.EligibleCount = len(eligible)
		return uc.fallback(ctx, res, eligible, input.Calendar, now, err)
	}

	entries, err := heuristic.Pack(ordered, input.Calendar, now)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RescheduleTask pack: %v", err)
		return schedule.Result{}, err
	}

	res.Applied = applied
	res.Entries = heuristic.Validate(entries, now)
	res.Blocked = taskIDs(blocked)
	return res, nil
}

// affectedTasks returns the task with id plus every task that directly depends on it.
func affectedTasks(tasks []model.Task, id string) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.ID == id || slices.Contains(t.DependsOn, id) {
			out = append(out, t)
		}
	}
	return out
}
