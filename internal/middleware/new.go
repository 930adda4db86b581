package middleware

import (
	"home-pa-scheduler/config"
	"home-pa-scheduler/pkg/log"
)

type Middleware struct {
	l           log.Logger
	rateLimit   config.RateLimitConfig
	rateLimiter *rateLimiter
}

func New(l log.Logger, rateLimit config.RateLimitConfig) Middleware {
	return Middleware{
		l:           l,
		rateLimit:   rateLimit,
		rateLimiter: newRateLimiter(rateLimit.RequestsPerMin),
	}
}
