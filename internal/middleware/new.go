package middleware

import (
	"branchboard/pkg/log"
)

// Config holds middleware settings.
type Config struct {
	// OptimizeRatePerMin bounds scheduling runs per client per minute. Zero disables the limit.
	OptimizeRatePerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.OptimizeRatePerMin > 0 {
		mw.limiter = newRateLimiter(cfg.OptimizeRatePerMin)
	}
	return mw
}
