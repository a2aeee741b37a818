package sqlite

import (
	"context"

	repo "branchboard/internal/planner/repository"
)

// CurrentBranchNodeIDs returns the ids of nodes on the current branch path.
func (r *implRepository) CurrentBranchNodeIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM branch_nodes WHERE is_current = 1 ORDER BY id`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CurrentBranchNodeIDs"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("CurrentBranchNodeIDs"), err)
			return nil, repo.ErrFailedToList
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return ids, nil
}

func (r *implRepository) SetCurrentBranch(ctx context.Context, nodeID string, current bool) error {
	flag := 0
	if current {
		flag = 1
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO branch_nodes(id, is_current) VALUES(?,?)
		 ON CONFLICT(id) DO UPDATE SET is_current=excluded.is_current`,
		nodeID, flag,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s node=%s: %v", r.dsn("SetCurrentBranch"), nodeID, err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
