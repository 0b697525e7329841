package httpserver

import (
	"context"

	chatHTTP "portfolio-chatbot/internal/chat/delivery/http"
)

// setupChatDomain registers /ask, /ask/stream, /clear and, when enabled, /sessions.
func (srv *HTTPServer) setupChatDomain(ctx context.Context) {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(srv.gin, h, srv.mw, srv.exposeSessions)

	srv.l.Infof(ctx, "Chat domain registered")
}
