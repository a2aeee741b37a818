package usecase

import (
	"time"

	"branchboard/internal/schedule"
	pkgLog "branchboard/pkg/log"
)

// optimizerThreshold is the task count above which the optional Optimizer
// takes over ordering. Small sets are always ordered in-process.
const optimizerThreshold = 5

type implUseCase struct {
	l         pkgLog.Logger
	optimizer schedule.Optimizer
	clock     func() time.Time
}

// New creates the scheduler facade. optimizer may be nil.
func New(l pkgLog.Logger, optimizer schedule.Optimizer) schedule.UseCase {
	return &implUseCase{
		l:         l,
		optimizer: optimizer,
		clock:     time.Now,
	}
}

// now returns ref, or the use-case clock when ref is zero.
func (uc *implUseCase) now(ref time.Time) time.Time {
	if ref.IsZero() {
		return uc.clock()
	}
	return ref
}
