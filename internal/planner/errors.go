package planner

import (
	"errors"

	"branchboard/internal/schedule"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidTask     = errors.New("invalid task")
	ErrNoSchedule      = errors.New("no schedule available")
	ErrInvalidCalendar = schedule.ErrInvalidCalendar
)
