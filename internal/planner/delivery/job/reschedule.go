package job

import (
	"context"
	"fmt"
	"time"

	"branchboard/internal/planner"
	"branchboard/internal/schedule"
)

const runTimeout = 2 * time.Minute

func (j *Job) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if _, err := j.Run(ctx); err != nil {
		j.l.Errorf(ctx, "job.tick: %v", err)
	}
}

// Run re-plans the stored tasks when some of them need a new slot.
// It reports whether a new schedule was produced.
func (j *Job) Run(ctx context.Context) (bool, error) {
	stale, err := j.uc.TasksNeedingReschedule(ctx, j.clock())
	if err != nil {
		return false, fmt.Errorf("tasks needing reschedule: %w", err)
	}
	if len(stale) == 0 {
		j.l.Debugf(ctx, "job.Run: nothing to reschedule")
		return false, nil
	}

	out, err := j.uc.Optimize(ctx, planner.OptimizeInput{Method: schedule.MethodAuto})
	if err != nil {
		return false, fmt.Errorf("optimize: %w", err)
	}

	j.l.Infof(ctx, "job.Run: rescheduled %d stale tasks, %d entries (%s)",
		len(stale), len(out.Result.Entries), out.Result.Applied)
	return true, nil
}
