package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"branchboard/internal/middleware"
	"branchboard/internal/model"
	"branchboard/internal/planner"
	"branchboard/internal/schedule"
	"branchboard/pkg/datemath"
	"branchboard/pkg/log"
)

type mockUseCase struct {
	optimizeIn  planner.OptimizeInput
	optimizeErr error
	upserted    planner.UpsertTaskInput
	dailyDate   time.Time
	branch      string
	current     bool
	settings    model.WorkCalendar
}

func (m *mockUseCase) Optimize(ctx context.Context, input planner.OptimizeInput) (planner.ScheduleOutput, error) {
	m.optimizeIn = input
	if m.optimizeErr != nil {
		return planner.ScheduleOutput{}, m.optimizeErr
	}
	return sampleOutput(), nil
}

func (m *mockUseCase) Reschedule(ctx context.Context, taskID string) (planner.ScheduleOutput, error) {
	if taskID != "t1" {
		return planner.ScheduleOutput{}, planner.ErrTaskNotFound
	}
	return sampleOutput(), nil
}

func (m *mockUseCase) CurrentSchedule(ctx context.Context) (planner.ScheduleOutput, error) {
	return planner.ScheduleOutput{}, planner.ErrNoSchedule
}

func (m *mockUseCase) DailySchedule(ctx context.Context, date time.Time) ([]model.ScheduleEntry, error) {
	m.dailyDate = date
	return sampleOutput().Result.Entries, nil
}

func (m *mockUseCase) Workload(ctx context.Context) ([]schedule.DayLoad, error) {
	return nil, errors.New("boom")
}

func (m *mockUseCase) TasksNeedingReschedule(ctx context.Context, now time.Time) ([]model.Task, error) {
	return []model.Task{{ID: "t1", Title: "stale", Status: model.StatusPending}}, nil
}

func (m *mockUseCase) Settings(ctx context.Context) (model.WorkCalendar, error) {
	return model.DefaultWorkCalendar(), nil
}

func (m *mockUseCase) UpdateSettings(ctx context.Context, cal model.WorkCalendar) (model.WorkCalendar, error) {
	if err := cal.WithDefaults().Validate(); err != nil {
		return model.WorkCalendar{}, err
	}
	m.settings = cal
	return cal.WithDefaults(), nil
}

func (m *mockUseCase) UpsertTask(ctx context.Context, input planner.UpsertTaskInput) (model.Task, error) {
	m.upserted = input
	return model.Task{ID: "new-id", Title: input.Title, Priority: input.Priority, Deadline: input.Deadline}, nil
}

func (m *mockUseCase) ListTasks(ctx context.Context) ([]model.Task, error) {
	return []model.Task{{ID: "t1", Title: "a"}}, nil
}

func (m *mockUseCase) SetCurrentBranch(ctx context.Context, nodeID string, current bool) error {
	m.branch, m.current = nodeID, current
	return nil
}

func sampleOutput() planner.ScheduleOutput {
	start := time.Date(2024, 5, 7, 9, 0, 0, 0, time.UTC)
	return planner.ScheduleOutput{
		Result: schedule.Result{
			RunID:         "run-1",
			Requested:     schedule.MethodAuto,
			Applied:       schedule.MethodEDD,
			EligibleCount: 2,
			Blocked:       []string{"t2"},
			Entries: []model.ScheduleEntry{{
				TaskID:        "t1",
				Task:          model.Task{ID: "t1", Title: "Write report", Priority: model.PriorityHigh},
				StartTime:     start,
				EndTime:       start.Add(2 * time.Hour),
				Duration:      2,
				ScheduledDate: time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC),
				Issues:        []model.Issue{model.IssueDeadlineViolation},
			}},
		},
		Analysis: schedule.Analysis{TotalTasks: 2, ScheduledTasks: 1, DeadlineViolations: 1},
	}
}

func setup(t *testing.T) (*gin.Engine, *mockUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatal(err)
	}
	uc := &mockUseCase{}
	h := New(log.NewNop(), uc, parser)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), h, middleware.New(log.NewNop(), middleware.Config{}))
	return r, uc
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (int, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return w.Code, env
}

func TestOptimize(t *testing.T) {
	r, uc := setup(t)

	code, env := do(t, r, http.MethodPost, "/api/v1/schedule/optimize", `{"method":"edd"}`)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", code, env.Message)
	}
	if uc.optimizeIn.Method != schedule.MethodEDD {
		t.Errorf("expected edd, got %s", uc.optimizeIn.Method)
	}

	var resp scheduleResp
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatal(err)
	}
	if resp.RunID != "run-1" || resp.Applied != "edd" || resp.Unscheduled != 1 {
		t.Errorf("unexpected response: %+v", resp)
	}
	if len(resp.Entries) != 1 || resp.Entries[0].ScheduledDate.String() != "2024-05-07" || resp.Entries[0].Issues[0] != "deadline_violation" {
		t.Errorf("unexpected entries: %+v", resp.Entries)
	}
}

func TestOptimize_OnlyMethodIsBound(t *testing.T) {
	r, uc := setup(t)

	code, env := do(t, r, http.MethodPost, "/api/v1/schedule/optimize", `{"method":"wspt","use_optimizer":true}`)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", code, env.Message)
	}
	if uc.optimizeIn != (planner.OptimizeInput{Method: schedule.MethodWSPT}) {
		t.Errorf("unexpected input: %+v", uc.optimizeIn)
	}
}

func TestOptimize_Errors(t *testing.T) {
	r, uc := setup(t)

	code, _ := do(t, r, http.MethodPost, "/api/v1/schedule/optimize", `{"method":"fastest"}`)
	if code != http.StatusBadRequest {
		t.Errorf("unknown method: expected 400, got %d", code)
	}

	code, _ = do(t, r, http.MethodPost, "/api/v1/schedule/optimize", "")
	if code != http.StatusOK || uc.optimizeIn.Method != schedule.MethodAuto {
		t.Errorf("empty body: expected 200 with auto, got %d %s", code, uc.optimizeIn.Method)
	}

	uc.optimizeErr = planner.ErrInvalidCalendar
	code, _ = do(t, r, http.MethodPost, "/api/v1/schedule/optimize", "")
	if code != http.StatusBadRequest {
		t.Errorf("invalid calendar: expected 400, got %d", code)
	}

	uc.optimizeErr = errors.New("disk full")
	code, env := do(t, r, http.MethodPost, "/api/v1/schedule/optimize", "")
	if code != http.StatusInternalServerError || strings.Contains(env.Message, "disk") {
		t.Errorf("internal error: expected hidden 500, got %d %q", code, env.Message)
	}
}

func TestReschedule(t *testing.T) {
	r, _ := setup(t)

	if code, _ := do(t, r, http.MethodPost, "/api/v1/schedule/tasks/t1/reschedule", ""); code != http.StatusOK {
		t.Errorf("expected 200, got %d", code)
	}
	if code, _ := do(t, r, http.MethodPost, "/api/v1/schedule/tasks/nope/reschedule", ""); code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
}

func TestScheduleViews(t *testing.T) {
	r, uc := setup(t)

	if code, _ := do(t, r, http.MethodGet, "/api/v1/schedule", ""); code != http.StatusNotFound {
		t.Errorf("current without schedule: expected 404, got %d", code)
	}

	code, _ := do(t, r, http.MethodGet, "/api/v1/schedule/daily?date=2024-05-07", "")
	if code != http.StatusOK {
		t.Fatalf("daily: expected 200, got %d", code)
	}
	if !uc.dailyDate.Equal(time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected daily date: %v", uc.dailyDate)
	}

	if code, _ := do(t, r, http.MethodGet, "/api/v1/schedule/daily?date=someday", ""); code != http.StatusBadRequest {
		t.Errorf("bad date: expected 400, got %d", code)
	}
	if code, _ := do(t, r, http.MethodGet, "/api/v1/schedule/workload", ""); code != http.StatusInternalServerError {
		t.Errorf("workload failure: expected 500, got %d", code)
	}
	if code, _ := do(t, r, http.MethodGet, "/api/v1/schedule/pending", ""); code != http.StatusOK {
		t.Errorf("pending: expected 200, got %d", code)
	}
}

func TestCalendarSettings(t *testing.T) {
	r, uc := setup(t)

	code, env := do(t, r, http.MethodGet, "/api/v1/settings/calendar", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var cal calendarResp
	if err := json.Unmarshal(env.Data, &cal); err != nil {
		t.Fatal(err)
	}
	if cal.StartOfDay != "09:00" || !cal.ExcludeWeekends {
		t.Errorf("unexpected calendar: %+v", cal)
	}

	code, _ = do(t, r, http.MethodPut, "/api/v1/settings/calendar", `{"work_hours_per_day": 6, "exclude_weekends": false}`)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if uc.settings.WorkHoursPerDay != 6 || uc.settings.ExcludeWeekends {
		t.Errorf("unexpected update: %+v", uc.settings)
	}

	if code, _ := do(t, r, http.MethodPut, "/api/v1/settings/calendar", `{"start_of_day": "late"}`); code != http.StatusBadRequest {
		t.Errorf("invalid calendar: expected 400, got %d", code)
	}
	if code, _ := do(t, r, http.MethodPut, "/api/v1/settings/calendar", `{"work_hours_per_day": 30}`); code != http.StatusBadRequest {
		t.Errorf("out of range hours: expected 400, got %d", code)
	}
}

func TestTasks(t *testing.T) {
	r, uc := setup(t)

	code, env := do(t, r, http.MethodPost, "/api/v1/tasks", `{"title":"Write report","priority":"high","estimated_hours":2,"deadline":"2024-05-10"}`)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", code, env.Message)
	}
	if uc.upserted.Deadline == nil || !uc.upserted.Deadline.Equal(time.Date(2024, 5, 10, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("expected end-of-day deadline, got %v", uc.upserted.Deadline)
	}
	if uc.upserted.Priority != model.PriorityHigh {
		t.Errorf("unexpected priority: %s", uc.upserted.Priority)
	}

	if code, _ := do(t, r, http.MethodPost, "/api/v1/tasks", `{"priority":"high"}`); code != http.StatusBadRequest {
		t.Errorf("missing title: expected 400, got %d", code)
	}
	if code, _ := do(t, r, http.MethodPost, "/api/v1/tasks", `{"title":"x","priority":"urgent"}`); code != http.StatusBadRequest {
		t.Errorf("bad priority: expected 400, got %d", code)
	}
	if code, _ := do(t, r, http.MethodPost, "/api/v1/tasks", `{"title":"x","deadline":"whenever"}`); code != http.StatusBadRequest {
		t.Errorf("bad deadline: expected 400, got %d", code)
	}

	code, env = do(t, r, http.MethodGet, "/api/v1/tasks", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var tasks []taskResp
	if err := json.Unmarshal(env.Data, &tasks); err != nil || len(tasks) != 1 {
		t.Errorf("unexpected tasks: %s (%v)", env.Data, err)
	}

	if code, _ := do(t, r, http.MethodPut, "/api/v1/branches/node-a", `{"current":true}`); code != http.StatusOK {
		t.Errorf("set branch: expected 200, got %d", code)
	}
	if uc.branch != "node-a" || !uc.current {
		t.Errorf("unexpected branch update: %s %v", uc.branch, uc.current)
	}
}
