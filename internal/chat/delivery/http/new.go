package http

import (
	"github.com/gin-gonic/gin"

	"portfolio-chatbot/internal/chat"
	"portfolio-chatbot/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Ask(c *gin.Context)
	AskStream(c *gin.Context)
	Clear(c *gin.Context)
	Sessions(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
