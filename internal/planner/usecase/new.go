package usecase

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"branchboard/internal/model"
	"branchboard/internal/planner"
	"branchboard/internal/planner/repository"
	"branchboard/internal/schedule"
	pkgLog "branchboard/pkg/log"
)

// currentKey is the cache slot holding the last produced schedule.
const currentKey = "current"

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	scheduler schedule.UseCase
	exporter  planner.CalendarExporter
	cache     *lru.Cache[string, planner.ScheduleOutput]
	defaults  model.WorkCalendar
	clock     func() time.Time
}

// Config carries the values New needs beyond its collaborators.
type Config struct {
	// Defaults is used for every calendar setting missing from the settings store.
	Defaults  model.WorkCalendar
	CacheSize int
}

// New creates the planner UseCase. exporter may be nil to disable calendar export.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	scheduler schedule.UseCase,
	exporter planner.CalendarExporter,
	cfg Config,
) (planner.UseCase, error) {
	size := cfg.CacheSize
	if size <= 0 {
		size = 16
	}
	cache, err := lru.New[string, planner.ScheduleOutput](size)
	if err != nil {
		return nil, fmt.Errorf("planner: create schedule cache: %w", err)
	}

	return &implUseCase{
		l:         l,
		repo:      repo,
		scheduler: scheduler,
		exporter:  exporter,
		cache:     cache,
		defaults:  cfg.Defaults.WithDefaults(),
		clock:     time.Now,
	}, nil
}
