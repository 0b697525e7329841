package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"portfolio-chatbot/internal/chat"
	"portfolio-chatbot/pkg/response"
)

// mapError writes the HTTP response for a use-case error.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errInvalidJSON),
		errors.Is(err, chat.ErrEmptyMessage),
		errors.Is(err, chat.ErrMessageTooLong),
		errors.Is(err, chat.ErrInvalidSessionID),
		errors.Is(err, chat.ErrMissingSessionID):
		response.BadRequest(c, err)
	case errors.Is(err, chat.ErrSessionNotFound):
		response.NotFound(c, err)
	default:
		h.l.Errorf(c.Request.Context(), "internal.chat.delivery.http.mapError: unmapped error: %v", err)
		response.InternalError(c, err)
	}
}
