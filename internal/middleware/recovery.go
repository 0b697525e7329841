package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"portfolio-chatbot/internal/chat"
	"portfolio-chatbot/internal/session"
)

// ChatRecovery turns a panic in a chat handler into a 200 reply with status "error"
// and a generic apology, so chat clients always get a well-formed answer.
func (mw Middleware) ChatRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := mw.now()
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			mw.l.Errorf(c.Request.Context(), "internal.middleware.ChatRecovery: panic: %v\n%s", rec, debug.Stack())
			mw.metrics.ObserveAsk(string(chat.StatusError), start)

			if c.Writer.Written() {
				c.Abort()
				return
			}
			// The session id is minted by the use case; a panic before that leaves none.
			sessionID := c.GetString(SessionIDKey)
			if sessionID == "" {
				sessionID = session.NewID()
			}
			c.AbortWithStatusJSON(http.StatusOK, gin.H{
				"reply":      chat.ApologyReply,
				"session_id": sessionID,
				"status":     string(chat.StatusError),
			})
		}()

		c.Next()
	}
}
