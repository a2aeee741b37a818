package sqlite

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"

	repo "branchboard/internal/planner/repository"
)

func (r *implRepository) GetSetting(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s key=%s: %v", r.dsn("GetSetting"), key, err)
		return "", false, repo.ErrFailedToGet
	}
	return value, true, nil
}

func (r *implRepository) SetSetting(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings(key, value) VALUES(?,?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s key=%s: %v", r.dsn("SetSetting"), key, err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
