package middleware

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-chatbot/pkg/response"
)

var errRateLimited = errors.New("rate limit exceeded, please slow down")

// RateLimit applies the per-client fixed window, keyed by client IP.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiter == nil {
			c.Next()
			return
		}

		d := mw.limiter.Allow(c.ClientIP(), mw.now())
		c.Header(HeaderRateLimitLimit, strconv.Itoa(d.Limit))
		c.Header(HeaderRateLimitRemaining, strconv.Itoa(d.Remaining))

		if !d.Allowed {
			mw.metrics.IncRateLimited(c.FullPath())
			mw.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: client %s limited for %ds", c.ClientIP(), d.RetryAfterSeconds())
			response.TooManyRequests(c, errRateLimited, d.RetryAfterSeconds())
			return
		}

		c.Next()
	}
}
