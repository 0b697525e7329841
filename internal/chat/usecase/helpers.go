package usecase

import (
	"strings"
	"unicode/utf8"

	"portfolio-chatbot/internal/chat"
	"portfolio-chatbot/internal/model"
	"portfolio-chatbot/internal/session"
	"portfolio-chatbot/pkg/llmprovider"
)

// validate normalizes the input and mints a session id when none was given.
func validate(input chat.AskInput) (message, sessionID string, err error) {
	message = strings.TrimSpace(input.Message)
	if message == "" {
		return "", "", chat.ErrEmptyMessage
	}
	if utf8.RuneCountInString(message) > chat.MaxMessageRunes {
		return "", "", chat.ErrMessageTooLong
	}

	sessionID = strings.TrimSpace(input.SessionID)
	if len(sessionID) > chat.MaxSessionIDLength || strings.ContainsAny(sessionID, " \t\r\n") {
		return "", "", chat.ErrInvalidSessionID
	}
	if sessionID == "" {
		sessionID = session.NewID()
	}
	return message, sessionID, nil
}

// buildRequest turns the trimmed history into a completion request.
func (uc *implUseCase) buildRequest(history []model.Turn) *llmprovider.Request {
	messages := make([]llmprovider.Message, 0, len(history))
	for _, t := range history {
		messages = append(messages, llmprovider.Message{Role: string(t.Role), Content: t.Content})
	}

	return &llmprovider.Request{
		SystemInstruction: uc.portfolio.SystemPrompt(),
		Messages:          messages,
		MaxTokens:         uc.cfg.MaxTokens,
		Temperature:       floatPtr(uc.cfg.Temperature),
		PresencePenalty:   floatPtr(uc.cfg.PresencePenalty),
		FrequencyPenalty:  floatPtr(uc.cfg.FrequencyPenalty),
	}
}

// fallbackReply answers from the portfolio record and counts the topic.
func (uc *implUseCase) fallbackReply(message string) string {
	p, _ := uc.portfolio.Get()
	reply, topic := uc.fallback.Reply(p, message)
	uc.metrics.IncFallbackTopic(string(topic))
	return reply
}

func floatPtr(f float64) *float64 {
	return &f
}
