package middleware

import (
	"trip-planner/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the middleware set. perMin <= 0 disables rate limiting.
func New(l log.Logger, perMin int) Middleware {
	var limiter *rateLimiter
	if perMin > 0 {
		limiter = newRateLimiter(perMin)
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
