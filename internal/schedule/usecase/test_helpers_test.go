package usecase_test

import (
	"context"
	"time"

	"branchboard/internal/model"
	"branchboard/internal/schedule"
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

// mockOptimizer returns a fixed order, an error, or panics.
type mockOptimizer struct {
	calls   int
	err     error
	panics  bool
	reverse bool
	drop    string
}

func (m *mockOptimizer) Order(ctx context.Context, tasks []model.Task, method schedule.Method) ([]model.Task, error) {
	m.calls++
	if m.panics {
		panic("solver exploded")
	}
	if m.err != nil {
		return nil, m.err
	}
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID == m.drop {
			continue
		}
		out = append(out, t)
	}
	if m.reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}

// tuesday10 is 2024-05-07 10:00 UTC, past the default start of day.
var tuesday10 = time.Date(2024, 5, 7, 10, 0, 0, 0, time.UTC)

func ptrTime(t time.Time) *time.Time { return &t }

func pending(id string, hours float64, p model.Priority, deps ...string) model.Task {
	return model.Task{
		ID:             id,
		Title:          "task " + id,
		Priority:       p,
		EstimatedHours: hours,
		Status:         model.StatusPending,
		DependsOn:      deps,
	}
}

func entryIDs(entries []model.ScheduleEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.TaskID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
