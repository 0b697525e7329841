package middleware

import (
	"time"

	"portfolio-chatbot/internal/metrics"
	"portfolio-chatbot/internal/ratelimit"
	"portfolio-chatbot/pkg/log"
)

type Middleware struct {
	l           log.Logger
	limiter     *ratelimit.Limiter
	metrics     *metrics.Metrics
	corsOrigins []string
	now         func() time.Time
}

// New creates the middleware set. limiter may be nil to disable rate limiting.
func New(l log.Logger, limiter *ratelimit.Limiter, m *metrics.Metrics, corsOrigins []string) Middleware {
	return Middleware{
		l:           l,
		limiter:     limiter,
		metrics:     m,
		corsOrigins: corsOrigins,
		now:         time.Now,
	}
}
