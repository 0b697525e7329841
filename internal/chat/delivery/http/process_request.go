package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"portfolio-chatbot/internal/middleware"
)

var errInvalidJSON = errors.New("request body must be a JSON object")

// processAskReq binds the ask request body and records the client's session id for recovery.
func (h *handler) processAskReq(c *gin.Context) (askReq, error) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidJSON
	}
	c.Set(middleware.SessionIDKey, req.SessionID)
	return req, nil
}

// processClearReq binds the clear request body. An empty body is left to the use case,
// which reports the missing session id.
func (h *handler) processClearReq(c *gin.Context) (clearReq, error) {
	var req clearReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, errInvalidJSON
	}
	return req, nil
}
