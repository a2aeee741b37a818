package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"branchboard/internal/model"
	"branchboard/internal/planner"
	"branchboard/internal/planner/repository"
)

// UpsertTask validates and stores a task. An empty ID creates a new task.
func (uc *implUseCase) UpsertTask(ctx context.Context, input planner.UpsertTaskInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, planner.ErrInvalidTask
	}
	if input.EstimatedHours < 0 {
		return model.Task{}, planner.ErrInvalidTask
	}

	t := model.Task{
		ID:             input.ID,
		Title:          title,
		Priority:       input.Priority,
		EstimatedHours: input.EstimatedHours,
		Deadline:       input.Deadline,
		DependsOn:      input.DependsOn,
		Status:         input.Status,
		SourceNodeID:   input.SourceNodeID,
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	if t.Status == "" {
		t.Status = model.StatusPending
	}

	if t.ID == "" {
		t.ID = uuid.NewString()
	} else {
		existing, err := uc.repo.GetTask(ctx, t.ID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.UpsertTask get: %v", err)
			return model.Task{}, err
		}
		if existing.ID != "" {
			t.CreatedAt = existing.CreatedAt
			t.ScheduledDate, t.ScheduledStart, t.ScheduledEnd = existing.ScheduledDate, existing.ScheduledStart, existing.ScheduledEnd
		}
	}

	saved, err := uc.repo.UpsertTask(ctx, repository.UpsertTaskOptions{Task: t})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpsertTask save: %v", err)
		return model.Task{}, err
	}
	uc.cache.Purge()
	return saved, nil
}

func (uc *implUseCase) ListTasks(ctx context.Context) ([]model.Task, error) {
	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTasks: %v", err)
		return nil, err
	}
	return tasks, nil
}

func (uc *implUseCase) SetCurrentBranch(ctx context.Context, nodeID string, current bool) error {
	if strings.TrimSpace(nodeID) == "" {
		return planner.ErrInvalidTask
	}
	if err := uc.repo.SetCurrentBranch(ctx, nodeID, current); err != nil {
		uc.l.Errorf(ctx, "uc.SetCurrentBranch: %v", err)
		return err
	}
	uc.cache.Purge()
	return nil
}

// TasksNeedingReschedule returns pending tasks without a slot and unfinished
// tasks whose slot date is already past.
func (uc *implUseCase) TasksNeedingReschedule(ctx context.Context, now time.Time) ([]model.Task, error) {
	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.TasksNeedingReschedule: %v", err)
		return nil, err
	}

	out := make([]model.Task, 0)
	for _, t := range tasks {
		switch {
		case !t.IsScheduled() && t.Status == model.StatusPending:
			out = append(out, t)
		case t.IsScheduled() && t.ScheduledDate.Before(now) && t.Status != model.StatusCompleted:
			out = append(out, t)
		}
	}
	return out, nil
}

// activeTasks returns stored tasks whose source node is empty or on the current branch.
func (uc *implUseCase) activeTasks(ctx context.Context) ([]model.Task, error) {
	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.activeTasks list: %v", err)
		return nil, err
	}
	nodeIDs, err := uc.repo.CurrentBranchNodeIDs(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.activeTasks branches: %v", err)
		return nil, err
	}

	current := make(map[string]struct{}, len(nodeIDs))
	for _, id := range nodeIDs {
		current[id] = struct{}{}
	}

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.SourceNodeID == "" {
			out = append(out, t)
			continue
		}
		if _, ok := current[t.SourceNodeID]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}
