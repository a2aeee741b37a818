package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"branchboard/internal/model"
	"branchboard/internal/schedule"
	"branchboard/internal/schedule/heuristic"
)

// OptimizeSchedule orders, packs and validates the eligible tasks.
func (uc *implUseCase) OptimizeSchedule(ctx context.Context, input schedule.OptimizeInput) (schedule.Result, error) {
	if err := input.Calendar.Validate(); err != nil {
		uc.l.Errorf(ctx, "uc.OptimizeSchedule validate calendar: %v", err)
		return schedule.Result{}, err
	}

	method := input.Method
	if method == "" {
		method = schedule.MethodAuto
	}
	now := uc.now(input.Now)
	eligible := model.EligibleTasks(input.Tasks)

	res := schedule.Result{
		RunID:         uuid.NewString(),
		Requested:     method,
		EligibleCount: len(eligible),
		Entries:       []model.ScheduleEntry{},
	}
	if len(eligible) == 0 {
		res.Applied = method
		return res, nil
	}

	ordered, applied, blocked, err := uc.order(ctx, eligible, method, input.UseOptimizer)
	if err != nil {
		uc.l.Warnf(ctx, "uc.OptimizeSchedule order run=%s: %v, falling back to wspt", res.RunID, err)
		return uc.fallback(ctx, res, eligible, input.Calendar, now, err)
	}

	entries, err := heuristic.Pack(ordered, input.Calendar, now)
	if err != nil {
		uc.l.Errorf(ctx, "uc.OptimizeSchedule pack: %v", err)
		return schedule.Result{}, err
	}

	res.Applied = applied
	res.Entries = heuristic.Validate(entries, now)
	res.Blocked = taskIDs(blocked)
	if len(res.Blocked) > 0 {
		uc.l.Warnf(ctx, "uc.OptimizeSchedule run=%s: %d task(s) excluded by dependency cycles: %v", res.RunID, len(res.Blocked), res.Blocked)
	}

	uc.l.Infof(ctx, "uc.OptimizeSchedule run=%s method=%s applied=%s entries=%d", res.RunID, method, applied, len(res.Entries))
	return res, nil
}

// order runs the selected policy, recovering from panics so the caller can fall back.
func (uc *implUseCase) order(ctx context.Context, tasks []model.Task, method schedule.Method, useOptimizer bool) (ordered []model.Task, applied schedule.Method, blocked []model.Task, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &schedule.PolicyError{Method: method, Err: fmt.Errorf("%w: %v", schedule.ErrPolicyPanicked, r)}
		}
	}()

	if useOptimizer && uc.optimizer != nil && len(tasks) > optimizerThreshold {
		resolved := method
		if resolved == schedule.MethodAuto {
			resolved = heuristic.SelectPolicy(tasks)
		}
		out, oerr := uc.optimizer.Order(ctx, tasks, resolved)
		if oerr != nil {
			return nil, resolved, nil, &schedule.PolicyError{Method: resolved, Err: fmt.Errorf("%w: %v", schedule.ErrOptimizerFailed, oerr)}
		}
		ordered, blocked = reconcile(tasks, out)
		if derr := heuristic.CheckDependencyOrder(ordered, tasks); derr != nil {
			return nil, resolved, nil, &schedule.PolicyError{Method: resolved, Err: fmt.Errorf("%w: %v", schedule.ErrOptimizerFailed, derr)}
		}
		return ordered, resolved, blocked, nil
	}

	ordered, applied, blocked = heuristic.Order(tasks, method)
	return ordered, applied, blocked, nil
}

// fallback schedules tasks with WSPT after the selected policy failed.
func (uc *implUseCase) fallback(ctx context.Context, res schedule.Result, tasks []model.Task, cal model.WorkCalendar, now time.Time, cause error) (schedule.Result, error) {
	entries, err := heuristic.Pack(heuristic.OrderByWSPT(tasks), cal, now)
	if err != nil {
		uc.l.Errorf(ctx, "uc.fallback pack: %v", err)
		return schedule.Result{}, err
	}

	res.Applied = schedule.MethodWSPT
	res.Entries = heuristic.Validate(entries, now)
	res.Blocked = nil
	res.Fallback = true
	res.FallbackReason = cause.Error()
	return res, nil
}
