package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"branchboard/internal/model"
	"branchboard/internal/planner"
	"branchboard/internal/planner/repository"
	"branchboard/internal/schedule"
	scheduleUC "branchboard/internal/schedule/usecase"
	"branchboard/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo is an in-memory repository.Repository.
type mockRepo struct {
	tasks     map[string]model.Task
	order     []string
	settings  map[string]string
	branches  map[string]bool
	listCalls int
	saved     []repository.SaveScheduleOptions
	failList  bool
}

func newMockRepo(tasks ...model.Task) *mockRepo {
	r := &mockRepo{tasks: map[string]model.Task{}, settings: map[string]string{}, branches: map[string]bool{}}
	for _, t := range tasks {
		r.tasks[t.ID] = t
		r.order = append(r.order, t.ID)
	}
	return r
}

func (r *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	r.listCalls++
	if r.failList {
		return nil, repository.ErrFailedToList
	}
	out := make([]model.Task, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.tasks[id])
	}
	return out, nil
}

func (r *mockRepo) GetTask(ctx context.Context, id string) (model.Task, error) {
	return r.tasks[id], nil
}

func (r *mockRepo) UpsertTask(ctx context.Context, opt repository.UpsertTaskOptions) (model.Task, error) {
	t := opt.Task
	if _, ok := r.tasks[t.ID]; !ok {
		r.order = append(r.order, t.ID)
	}
	r.tasks[t.ID] = t
	return t, nil
}

func (r *mockRepo) SaveSchedule(ctx context.Context, opts []repository.SaveScheduleOptions) error {
	r.saved = append(r.saved, opts...)
	for _, o := range opts {
		t := r.tasks[o.TaskID]
		d, s, e := o.ScheduledDate, o.ScheduledStart, o.ScheduledEnd
		t.ScheduledDate, t.ScheduledStart, t.ScheduledEnd = &d, &s, &e
		r.tasks[o.TaskID] = t
	}
	return nil
}

func (r *mockRepo) GetSetting(ctx context.Context, key string) (string, bool, error) {
	v, ok := r.settings[key]
	return v, ok, nil
}

func (r *mockRepo) SetSetting(ctx context.Context, key, value string) error {
	r.settings[key] = value
	return nil
}

func (r *mockRepo) CurrentBranchNodeIDs(ctx context.Context) ([]string, error) {
	var ids []string
	for id, cur := range r.branches {
		if cur {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *mockRepo) SetCurrentBranch(ctx context.Context, nodeID string, current bool) error {
	r.branches[nodeID] = current
	return nil
}

type mockExporter struct {
	failFor map[string]bool
	put     []string
}

func (m *mockExporter) PutEvent(ctx context.Context, req gcalendar.PutEventRequest) (gcalendar.Event, error) {
	if m.failFor[req.TaskID] {
		return gcalendar.Event{}, errors.New("calendar unavailable")
	}
	m.put = append(m.put, req.TaskID)
	return gcalendar.Event{ID: "ev-" + req.TaskID, TaskID: req.TaskID}, nil
}

// monday10 is 2024-05-06 10:00 UTC.
var monday10 = time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, repo *mockRepo, exp planner.CalendarExporter) *implUseCase {
	t.Helper()
	l := &mockLogger{}
	uc, err := New(l, repo, scheduleUC.New(l, nil), exp, Config{Defaults: model.DefaultWorkCalendar(), CacheSize: 4})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	impl := uc.(*implUseCase)
	impl.clock = func() time.Time { return monday10 }
	return impl
}

func task(id string, hours float64, node string) model.Task {
	return model.Task{
		ID:             id,
		Title:          "task " + id,
		Priority:       model.PriorityMedium,
		EstimatedHours: hours,
		Status:         model.StatusPending,
		SourceNodeID:   node,
	}
}

func ids(entries []model.ScheduleEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.TaskID
	}
	return out
}

func TestOptimize(t *testing.T) {
	done := task("done", 1, "")
	done.Status = model.StatusCompleted
	repo := newMockRepo(
		task("free", 2, ""),
		task("on-branch", 1, "node-a"),
		task("off-branch", 1, "node-b"),
		done,
	)
	repo.branches["node-a"] = true
	exp := &mockExporter{failFor: map[string]bool{"on-branch": true}}
	uc := newTestUseCase(t, repo, exp)

	out, err := uc.Optimize(context.Background(), planner.OptimizeInput{Method: schedule.MethodWSPT})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := ids(out.Result.Entries)
	if len(got) != 2 || got[0] != "on-branch" || got[1] != "free" {
		t.Fatalf("unexpected entries: %v", got)
	}
	if len(repo.saved) != 2 {
		t.Errorf("expected 2 saved slots, got %d", len(repo.saved))
	}
	if out.Exported != 1 || len(exp.put) != 1 || exp.put[0] != "free" {
		t.Errorf("expected only free exported, got %d %v", out.Exported, exp.put)
	}
	if out.Analysis.ScheduledTasks != 2 || out.Analysis.TotalTasks != 2 {
		t.Errorf("unexpected analysis: %+v", out.Analysis)
	}
	if !out.GeneratedAt.Equal(monday10) {
		t.Errorf("expected generated at %v, got %v", monday10, out.GeneratedAt)
	}

	calls := repo.listCalls
	cached, err := uc.CurrentSchedule(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cached.Result.RunID != out.Result.RunID {
		t.Error("expected cached schedule")
	}
	if repo.listCalls != calls {
		t.Error("cached schedule must not hit the repository")
	}
}

func TestOptimize_RepositoryError(t *testing.T) {
	repo := newMockRepo()
	repo.failList = true
	uc := newTestUseCase(t, repo, nil)

	if _, err := uc.Optimize(context.Background(), planner.OptimizeInput{}); !errors.Is(err, repository.ErrFailedToList) {
		t.Fatalf("expected list error, got %v", err)
	}
}

func TestReschedule(t *testing.T) {
	child := task("child", 1, "")
	child.DependsOn = []string{"root"}
	repo := newMockRepo(task("root", 2, ""), child, task("other", 1, ""))
	uc := newTestUseCase(t, repo, nil)

	out, err := uc.Reschedule(context.Background(), "root")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := ids(out.Result.Entries)
	if len(got) != 2 || got[0] != "root" || got[1] != "child" {
		t.Errorf("unexpected entries: %v", got)
	}

	if _, err := uc.Reschedule(context.Background(), "missing"); !errors.Is(err, planner.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestOptimize_AnalysisCountsEligibleOnly(t *testing.T) {
	tasks := []model.Task{task("open", 1, "")}
	for _, id := range []string{"d1", "d2", "d3", "d4", "d5", "d6"} {
		done := task(id, 1, "")
		done.Status = model.StatusCompleted
		tasks = append(tasks, done)
	}
	uc := newTestUseCase(t, newMockRepo(tasks...), nil)

	out, err := uc.Optimize(context.Background(), planner.OptimizeInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Analysis.TotalTasks != 1 || out.Analysis.ScheduledTasks != 1 {
		t.Errorf("unexpected analysis: %+v", out.Analysis)
	}
	for _, rec := range out.Analysis.Recommendations {
		if strings.Contains(rec, "breaking down") {
			t.Errorf("unexpected recommendation: %q", rec)
		}
	}
}

func TestReschedule_KeepsStoredSlotsDisjoint(t *testing.T) {
	child := task("child", 1, "")
	child.DependsOn = []string{"root"}
	repo := newMockRepo(task("other", 3, ""), task("root", 2, ""), child)
	uc := newTestUseCase(t, repo, nil)
	ctx := context.Background()

	if _, err := uc.Optimize(ctx, planner.OptimizeInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := uc.Reschedule(ctx, "root")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := ids(out.Result.Entries)
	if len(got) != 3 || got[0] != "root" || got[1] != "child" || got[2] != "other" {
		t.Errorf("unexpected entries: %v", got)
	}
	if out.Result.Unscheduled() != 0 {
		t.Errorf("expected nothing unscheduled, got %d", out.Result.Unscheduled())
	}

	uc.cache.Purge()
	stored, err := uc.CurrentSchedule(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries := stored.Result.Entries
	if len(entries) != 3 || stored.Result.Unscheduled() != 0 {
		t.Fatalf("expected 3 stored entries, got %v (unscheduled=%d)", ids(entries), stored.Result.Unscheduled())
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].StartTime.Before(entries[i-1].EndTime) {
			t.Errorf("%s overlaps %s", entries[i].TaskID, entries[i-1].TaskID)
		}
	}
}

func TestReschedule_DependencyOutsideSubset(t *testing.T) {
	leaf := task("leaf", 1, "")
	leaf.DependsOn = []string{"base"}
	repo := newMockRepo(task("base", 2, ""), leaf)
	uc := newTestUseCase(t, repo, nil)
	ctx := context.Background()

	if _, err := uc.Optimize(ctx, planner.OptimizeInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := uc.Reschedule(ctx, "leaf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := ids(out.Result.Entries)
	if len(got) != 2 || got[0] != "base" || got[1] != "leaf" {
		t.Errorf("dependency must stay first, got %v", got)
	}
}

func TestSettings(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUseCase(t, repo, nil)
	ctx := context.Background()

	cal, err := uc.Settings(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cal != model.DefaultWorkCalendar() {
		t.Errorf("expected defaults, got %+v", cal)
	}

	repo.settings[keyWorkHoursPerDay] = "6"
	repo.settings[keyExcludeWeekends] = "false"
	repo.settings[keyWorkDaysPerWeek] = "many"
	cal, err = uc.Settings(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cal.WorkHoursPerDay != 6 || cal.ExcludeWeekends || cal.WorkDaysPerWeek != model.DefaultWorkDaysPerWeek {
		t.Errorf("unexpected calendar: %+v", cal)
	}

	repo.settings[keyTimezone] = "Not/AZone"
	cal, err = uc.Settings(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cal.Timezone != model.DefaultTimezone {
		t.Errorf("invalid stored calendar must fall back to defaults, got %+v", cal)
	}
}

func TestUpdateSettings(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUseCase(t, repo, nil)
	ctx := context.Background()

	_, err := uc.UpdateSettings(ctx, model.WorkCalendar{WorkHoursPerDay: 6, StartOfDay: "8am"})
	if !errors.Is(err, planner.ErrInvalidCalendar) {
		t.Fatalf("expected ErrInvalidCalendar, got %v", err)
	}

	saved, err := uc.UpdateSettings(ctx, model.WorkCalendar{WorkHoursPerDay: 6, StartOfDay: "08:00", Timezone: "Europe/Berlin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.settings[keyWorkHoursPerDay] != "6" || repo.settings[keyStartOfDay] != "08:00" {
		t.Errorf("unexpected stored settings: %v", repo.settings)
	}

	loaded, err := uc.Settings(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded != saved {
		t.Errorf("expected %+v, got %+v", saved, loaded)
	}
}

func TestCurrentSchedule_FromStore(t *testing.T) {
	ctx := context.Background()

	empty := newTestUseCase(t, newMockRepo(task("a", 1, "")), nil)
	if _, err := empty.CurrentSchedule(ctx); !errors.Is(err, planner.ErrNoSchedule) {
		t.Fatalf("expected ErrNoSchedule, got %v", err)
	}

	start := time.Date(2024, 5, 7, 9, 0, 0, 0, time.UTC)
	date := time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)
	stored := task("a", 1.5, "")
	stored.ScheduledDate, stored.ScheduledStart, stored.ScheduledEnd = &date, &start, &end

	uc := newTestUseCase(t, newMockRepo(stored, task("b", 1, "")), nil)
	out, err := uc.CurrentSchedule(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Result.Entries) != 1 || out.Result.Entries[0].Duration != 1.5 {
		t.Fatalf("unexpected entries: %+v", out.Result.Entries)
	}
	if out.Result.Unscheduled() != 1 {
		t.Errorf("expected 1 unscheduled, got %d", out.Result.Unscheduled())
	}

	daily, err := uc.DailySchedule(ctx, date)
	if err != nil || len(daily) != 1 {
		t.Errorf("unexpected daily schedule: %v %v", daily, err)
	}
	load, err := uc.Workload(ctx)
	if err != nil || len(load) != 1 || load[0].Hours != 1.5 {
		t.Errorf("unexpected workload: %+v %v", load, err)
	}
}

func TestTasksNeedingReschedule(t *testing.T) {
	past := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	future := time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC)

	unscheduled := task("unscheduled", 1, "")
	stale := task("stale", 1, "")
	stale.Status = model.StatusInProgress
	stale.ScheduledDate = &past
	upcoming := task("upcoming", 1, "")
	upcoming.ScheduledDate = &future
	finished := task("finished", 1, "")
	finished.Status = model.StatusCompleted
	finished.ScheduledDate = &past
	idle := task("idle", 1, "")
	idle.Status = model.StatusInProgress

	uc := newTestUseCase(t, newMockRepo(unscheduled, stale, upcoming, finished, idle), nil)

	got, err := uc.TasksNeedingReschedule(context.Background(), monday10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "unscheduled" || got[1].ID != "stale" {
		t.Errorf("unexpected tasks: %+v", got)
	}
}

func TestUpsertTask(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUseCase(t, repo, nil)
	ctx := context.Background()

	if _, err := uc.UpsertTask(ctx, planner.UpsertTaskInput{Title: "  "}); !errors.Is(err, planner.ErrInvalidTask) {
		t.Errorf("expected ErrInvalidTask, got %v", err)
	}

	created, err := uc.UpsertTask(ctx, planner.UpsertTaskInput{Title: "Plan sprint", EstimatedHours: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" || created.Priority != model.PriorityMedium || created.Status != model.StatusPending {
		t.Errorf("unexpected defaults: %+v", created)
	}

	if err := uc.SetCurrentBranch(ctx, "node-a", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.branches["node-a"] {
		t.Error("expected node-a to be current")
	}
}
