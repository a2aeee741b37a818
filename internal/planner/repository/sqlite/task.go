package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"branchboard/internal/model"
	repo "branchboard/internal/planner/repository"
)

const taskColumns = `id, title, priority, estimated_hours, deadline, depends_on, status, source_node_id,
	scheduled_date, scheduled_start, scheduled_end, created_at, updated_at`

// ListTasks returns tasks ordered by creation time.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	args := make([]any, 0, len(opt.Statuses))
	if len(opt.Statuses) > 0 {
		marks := make([]string, len(opt.Statuses))
		for i, s := range opt.Statuses {
			marks[i] = "?"
			args = append(args, string(s))
		}
		query += ` WHERE status IN (` + strings.Join(marks, ",") + `)`
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// GetTask returns a zero-value Task when id does not exist.
func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// UpsertTask inserts the task or replaces every column but created_at.
func (r *implRepository) UpsertTask(ctx context.Context, opt repo.UpsertTaskOptions) (model.Task, error) {
	t := opt.Task
	now := r.now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now

	deps, err := json.Marshal(nonNil(t.DependsOn))
	if err != nil {
		return model.Task{}, errors.Wrap(err, "encode depends_on")
	}

	const query = `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)
		ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, priority=excluded.priority, estimated_hours=excluded.estimated_hours,
			deadline=excluded.deadline, depends_on=excluded.depends_on, status=excluded.status,
			source_node_id=excluded.source_node_id, scheduled_date=excluded.scheduled_date,
			scheduled_start=excluded.scheduled_start, scheduled_end=excluded.scheduled_end,
			updated_at=excluded.updated_at`

	_, err = r.db.ExecContext(ctx, query,
		t.ID, t.Title, string(t.Priority), t.EstimatedHours, fmtTime(t.Deadline), string(deps),
		string(t.Status), t.SourceNodeID, fmtTime(t.ScheduledDate), fmtTime(t.ScheduledStart),
		fmtTime(t.ScheduledEnd), t.CreatedAt.Format(time.RFC3339Nano), t.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	stored, err := r.GetTask(ctx, t.ID)
	if err != nil {
		return model.Task{}, err
	}
	return stored, nil
}

// SaveSchedule writes the schedule fields of every listed task in one transaction.
func (r *implRepository) SaveSchedule(ctx context.Context, opts []repo.SaveScheduleOptions) error {
	if len(opts) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("SaveSchedule"), err)
		return repo.ErrFailedToUpdate
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`UPDATE tasks SET scheduled_date = ?, scheduled_start = ?, scheduled_end = ?, updated_at = ? WHERE id = ?`)
	if err != nil {
		r.l.Errorf(ctx, "%s prepare: %v", r.dsn("SaveSchedule"), err)
		return repo.ErrFailedToUpdate
	}
	defer stmt.Close()

	now := r.now().UTC().Format(time.RFC3339Nano)
	for _, o := range opts {
		if _, err := stmt.ExecContext(ctx,
			fmtTime(&o.ScheduledDate), fmtTime(&o.ScheduledStart), fmtTime(&o.ScheduledEnd), now, o.TaskID,
		); err != nil {
			r.l.Errorf(ctx, "%s task=%s: %v", r.dsn("SaveSchedule"), o.TaskID, err)
			return repo.ErrFailedToUpdate
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("SaveSchedule"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(s rowScanner) (model.Task, error) {
	var (
		t                      model.Task
		priority, status, deps string
		deadline               sql.NullString
		schedDate, start, end  sql.NullString
		createdAt, updatedAt   string
	)
	if err := s.Scan(&t.ID, &t.Title, &priority, &t.EstimatedHours, &deadline, &deps, &status,
		&t.SourceNodeID, &schedDate, &start, &end, &createdAt, &updatedAt); err != nil {
		return model.Task{}, err
	}
	t.Priority = model.Priority(priority)
	t.Status = model.Status(status)
	if err := json.Unmarshal([]byte(deps), &t.DependsOn); err != nil {
		return model.Task{}, errors.Wrapf(err, "decode depends_on of task %s", t.ID)
	}

	var err error
	if t.Deadline, err = parseTime(deadline); err != nil {
		return model.Task{}, err
	}
	if t.ScheduledDate, err = parseTime(schedDate); err != nil {
		return model.Task{}, err
	}
	if t.ScheduledStart, err = parseTime(start); err != nil {
		return model.Task{}, err
	}
	if t.ScheduledEnd, err = parseTime(end); err != nil {
		return model.Task{}, err
	}
	if t.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return model.Task{}, errors.Wrap(err, "parse created_at")
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return model.Task{}, errors.Wrap(err, "parse updated_at")
	}
	return t, nil
}

func fmtTime(t *time.Time) any {
	if t == nil || t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339Nano)
}

func parseTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s.String)
	if err != nil {
		return nil, errors.Wrapf(err, "parse time %q", s.String)
	}
	return &t, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
