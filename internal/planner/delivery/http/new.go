package http

import (
	"branchboard/internal/planner"
	"branchboard/pkg/datemath"
	"branchboard/pkg/log"
)

type handler struct {
	l      log.Logger
	uc     planner.UseCase
	parser *datemath.Parser
}

// New creates the planner HTTP handler. parser resolves date query values and deadlines.
func New(l log.Logger, uc planner.UseCase, parser *datemath.Parser) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		parser: parser,
	}
}
