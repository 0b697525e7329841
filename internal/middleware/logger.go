package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-chatbot/pkg/log"
)

// RequestLogger tags the request context with a request id and logs one line per request.
func (mw Middleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" || len(requestID) > 64 {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), log.RequestIDKey, requestID))

		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		switch {
		case status >= 500:
			mw.l.Error(ctx, append([]any{"internal.middleware.RequestLogger: request failed"}, fields...)...)
		case status >= 400:
			mw.l.Warn(ctx, append([]any{"internal.middleware.RequestLogger: request rejected"}, fields...)...)
		default:
			mw.l.Info(ctx, append([]any{"internal.middleware.RequestLogger: request handled"}, fields...)...)
		}
	}
}
