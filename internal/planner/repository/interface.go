package repository

import (
	"context"

	"branchboard/internal/model"
)

// Repository is the composed persistence surface of the planner.
type Repository interface {
	TaskRepository
	SettingsRepository
	BranchRepository
}

// TaskRepository stores tasks and their schedule write-back.
type TaskRepository interface {
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	// GetTask returns a zero-value Task (ID == "") when not found.
	GetTask(ctx context.Context, id string) (model.Task, error)
	UpsertTask(ctx context.Context, opt UpsertTaskOptions) (model.Task, error)
	SaveSchedule(ctx context.Context, opts []SaveScheduleOptions) error
}

// SettingsRepository is a string key/value store for scheduler settings.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
}

// BranchRepository tracks which branch nodes are on the current path.
type BranchRepository interface {
	CurrentBranchNodeIDs(ctx context.Context) ([]string, error)
	SetCurrentBranch(ctx context.Context, nodeID string, current bool) error
}
