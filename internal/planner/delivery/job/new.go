package job

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"branchboard/internal/planner"
	pkgLog "branchboard/pkg/log"
)

// DefaultSpec runs the reschedule check at the top of every hour.
const DefaultSpec = "@hourly"

// Config controls the auto-reschedule job.
type Config struct {
	// Spec is a five-field cron expression or a descriptor such as "@every 30m".
	Spec     string
	Timezone string
}

// Job periodically re-plans the schedule when stored tasks lost their slot.
type Job struct {
	l     pkgLog.Logger
	uc    planner.UseCase
	cron  *cron.Cron
	spec  string
	clock func() time.Time
}

func New(l pkgLog.Logger, uc planner.UseCase, cfg Config) (*Job, error) {
	spec := cfg.Spec
	if spec == "" {
		spec = DefaultSpec
	}

	loc := time.UTC
	if cfg.Timezone != "" {
		var err error
		if loc, err = time.LoadLocation(cfg.Timezone); err != nil {
			return nil, fmt.Errorf("job.New: timezone %q: %w", cfg.Timezone, err)
		}
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(spec); err != nil {
		return nil, fmt.Errorf("job.New: cron spec %q: %w", spec, err)
	}

	logger := cronLogger{l: l}
	c := cron.New(
		cron.WithParser(parser),
		cron.WithLocation(loc),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	j := &Job{
		l:     l,
		uc:    uc,
		cron:  c,
		spec:  spec,
		clock: time.Now,
	}
	if _, err := j.cron.AddFunc(spec, j.tick); err != nil {
		return nil, fmt.Errorf("job.New: schedule: %w", err)
	}
	return j, nil
}

// Start runs the scheduler in its own goroutine.
func (j *Job) Start() {
	j.l.Infof(context.Background(), "job.Start: auto-reschedule on %q", j.spec)
	j.cron.Start()
}

// Stop prevents further runs and waits for a running one until ctx is done.
func (j *Job) Stop(ctx context.Context) {
	done := j.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		j.l.Warnf(ctx, "job.Stop: running reschedule did not finish: %v", ctx.Err())
	}
}
