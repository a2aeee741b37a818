package schedule

import (
	"errors"
	"fmt"

	"branchboard/internal/model"
)

var (
	// ErrInvalidCalendar is fatal: no policy can pack without a usable calendar.
	ErrInvalidCalendar = model.ErrInvalidCalendar

	ErrOptimizerFailed = errors.New("optimizer failed")
	ErrPolicyPanicked  = errors.New("scheduling policy panicked")
)

// PolicyError reports that a scheduling method failed and a fallback was used.
type PolicyError struct {
	Method Method
	Err    error
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("scheduling method %s failed: %v", e.Method, e.Err)
}

func (e *PolicyError) Unwrap() error {
	return e.Err
}
