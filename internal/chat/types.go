package chat

import "portfolio-chatbot/internal/model"

// AskInput is one user message. An empty SessionID starts a new session.
type AskInput struct {
	Message   string
	SessionID string
}

// AskOutput is the reply to one user message.
type AskOutput struct {
	Reply     string
	SessionID string
	Status    Status
	Model     string // empty unless Status is StatusSuccess
}

// ListSessionsOutput is the debug listing of stored sessions.
type ListSessionsOutput struct {
	Total    int
	Sessions []model.SessionSummary
}
