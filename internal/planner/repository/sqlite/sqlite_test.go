package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"branchboard/internal/model"
	"branchboard/internal/planner/repository"
	"branchboard/internal/planner/repository/sqlite"
	"branchboard/pkg/log"
)

func newRepo(t *testing.T) repository.Repository {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, sqlite.Config{Path: filepath.Join(t.TempDir(), "data", "branchboard.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlite.New(db, log.NewNop())
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := sqlite.Open(context.Background(), sqlite.Config{Path: "  "})
	assert.Error(t, err)
}

func TestTasks(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	deadline := time.Date(2024, 5, 10, 17, 0, 0, 0, time.UTC)
	created, err := r.UpsertTask(ctx, repository.UpsertTaskOptions{Task: model.Task{
		ID:             "t1",
		Title:          "Write report",
		Priority:       model.PriorityHigh,
		EstimatedHours: 2.5,
		Deadline:       &deadline,
		DependsOn:      []string{"t0"},
		Status:         model.StatusPending,
		SourceNodeID:   "node-a",
	}})
	require.NoError(t, err)
	assert.Equal(t, "Write report", created.Title)
	assert.Equal(t, []string{"t0"}, created.DependsOn)
	require.NotNil(t, created.Deadline)
	assert.True(t, created.Deadline.Equal(deadline))
	assert.False(t, created.CreatedAt.IsZero())
	assert.Nil(t, created.ScheduledDate)

	_, err = r.UpsertTask(ctx, repository.UpsertTaskOptions{Task: model.Task{
		ID: "t2", Title: "Done already", Priority: model.PriorityLow, Status: model.StatusCompleted,
	}})
	require.NoError(t, err)

	created.Title = "Write final report"
	created.Status = model.StatusInProgress
	updated, err := r.UpsertTask(ctx, repository.UpsertTaskOptions{Task: created})
	require.NoError(t, err)
	assert.Equal(t, "Write final report", updated.Title)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))

	all, err := r.ListTasks(ctx, repository.ListTasksOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := r.ListTasks(ctx, repository.ListTasksOptions{Statuses: []model.Status{model.StatusPending, model.StatusInProgress}})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "t1", active[0].ID)

	missing, err := r.GetTask(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestSaveSchedule(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	_, err := r.UpsertTask(ctx, repository.UpsertTaskOptions{Task: model.Task{ID: "t1", Title: "a", Status: model.StatusPending}})
	require.NoError(t, err)

	start := time.Date(2024, 5, 7, 9, 0, 0, 0, time.UTC)
	err = r.SaveSchedule(ctx, []repository.SaveScheduleOptions{{
		TaskID:         "t1",
		ScheduledDate:  time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC),
		ScheduledStart: start,
		ScheduledEnd:   start.Add(time.Hour),
	}})
	require.NoError(t, err)

	got, err := r.GetTask(ctx, "t1")
	require.NoError(t, err)
	require.True(t, got.IsScheduled())
	assert.True(t, got.ScheduledStart.Equal(start))
	assert.True(t, got.ScheduledEnd.Equal(start.Add(time.Hour)))

	assert.NoError(t, r.SaveSchedule(ctx, nil))
}

func TestSettings(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	_, ok, err := r.GetSetting(ctx, "work_hours_per_day")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.SetSetting(ctx, "work_hours_per_day", "6"))
	require.NoError(t, r.SetSetting(ctx, "work_hours_per_day", "7.5"))

	v, ok, err := r.GetSetting(ctx, "work_hours_per_day")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "7.5", v)
}

func TestBranches(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	require.NoError(t, r.SetCurrentBranch(ctx, "b", true))
	require.NoError(t, r.SetCurrentBranch(ctx, "a", true))
	require.NoError(t, r.SetCurrentBranch(ctx, "c", false))

	ids, err := r.CurrentBranchNodeIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	require.NoError(t, r.SetCurrentBranch(ctx, "b", false))
	ids, err = r.CurrentBranchNodeIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids)
}
