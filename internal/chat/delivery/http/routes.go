package http

import (
	"github.com/gin-gonic/gin"

	"portfolio-chatbot/internal/middleware"
)

// RegisterRoutes maps the chat endpoints. Chat routes are rate limited and recover
// panics into an apology reply; /sessions exists only when exposeSessions is set.
func RegisterRoutes(r gin.IRouter, h Handler, mw middleware.Middleware, exposeSessions bool) {
	chat := r.Group("", mw.ChatRecovery(), mw.RateLimit())
	{
		chat.POST("/ask", h.Ask)
		chat.POST("/ask/stream", h.AskStream)
	}

	r.POST("/clear", h.Clear)

	if exposeSessions {
		r.GET("/sessions", h.Sessions)
	}
}
