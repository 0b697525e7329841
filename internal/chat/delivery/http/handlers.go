package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-chatbot/pkg/response"
)

// Ask godoc
// @Summary     Ask the portfolio assistant
// @Description Answers one message. When the hosted model is unavailable the reply comes from canned text and status is "fallback".
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body askReq true "Message and optional session id"
// @Success     200 {object} askResp
// @Failure     400 {object} response.ErrorResp "Empty message or invalid JSON"
// @Failure     429 {object} response.ErrorResp "Rate limit exceeded"
// @Router      /ask [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	out, err := h.uc.Ask(ctx, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, newAskResp(out))
}

// AskStream godoc
// @Summary     Ask with a streamed reply
// @Description Same input as /ask. Replies with server-sent events: "delta" events carrying text, then one "done" event with the /ask response body.
// @Tags        Chat
// @Accept      json
// @Produce     text/event-stream
// @Param       body body askReq true "Message and optional session id"
// @Success     200 {object} askResp "Final event payload"
// @Failure     400 {object} response.ErrorResp "Empty message or invalid JSON"
// @Failure     429 {object} response.ErrorResp "Rate limit exceeded"
// @Router      /ask/stream [POST]
func (h *handler) AskStream(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	started := false
	start := func() {
		if started {
			return
		}
		started = true
		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Header("X-Accel-Buffering", "no")
		c.Status(http.StatusOK)
	}

	out, err := h.uc.Stream(ctx, req.toInput(), func(delta string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		start()
		c.SSEvent("delta", deltaEvent{Content: delta})
		c.Writer.Flush()
		return nil
	})
	if err != nil {
		// Validation runs before the first delta, so headers are still unsent.
		h.mapError(c, err)
		return
	}

	start()
	c.SSEvent("done", newAskResp(out))
	c.Writer.Flush()
}

// Clear godoc
// @Summary     Clear a session
// @Description Empties the conversation history of an existing session.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body clearReq true "Session to clear"
// @Success     200 {object} clearResp
// @Failure     400 {object} response.ErrorResp "Missing session_id"
// @Failure     404 {object} response.ErrorResp "Unknown session"
// @Router      /clear [POST]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClearReq(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	if err := h.uc.Clear(ctx, req.SessionID); err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, clearResp{Status: "cleared", SessionID: req.SessionID})
}

// Sessions godoc
// @Summary     List sessions (debug)
// @Description Lists session ids with their turn counts. Only registered when debug.expose_sessions is enabled.
// @Tags        Debug
// @Produce     json
// @Success     200 {object} sessionsResp
// @Router      /sessions [GET]
func (h *handler) Sessions(c *gin.Context) {
	response.OK(c, newSessionsResp(h.uc.ListSessions(c.Request.Context())))
}
