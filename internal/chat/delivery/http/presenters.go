package http

import (
	"time"

	"portfolio-chatbot/internal/chat"
)

// --- Request DTOs ---

type askReq struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

func (r askReq) toInput() chat.AskInput {
	return chat.AskInput{
		Message:   r.Message,
		SessionID: r.SessionID,
	}
}

// ---

type clearReq struct {
	SessionID string `json:"session_id"`
}

// --- Response DTOs ---

type askResp struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
}

func newAskResp(out chat.AskOutput) askResp {
	return askResp{
		Reply:     out.Reply,
		SessionID: out.SessionID,
		Status:    string(out.Status),
	}
}

type deltaEvent struct {
	Content string `json:"content"`
}

type clearResp struct {
	Status    string `json:"status"`
	SessionID string `json:"session_id"`
}

type sessionItem struct {
	SessionID string    `json:"session_id"`
	Turns     int       `json:"turns"`
	UpdatedAt time.Time `json:"updated_at"`
}

type sessionsResp struct {
	Total    int           `json:"total"`
	Sessions []sessionItem `json:"sessions"`
}

func newSessionsResp(out chat.ListSessionsOutput) sessionsResp {
	items := make([]sessionItem, len(out.Sessions))
	for i, s := range out.Sessions {
		items[i] = sessionItem{SessionID: s.ID, Turns: s.Turns, UpdatedAt: s.UpdatedAt}
	}
	return sessionsResp{Total: out.Total, Sessions: items}
}
