package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"portfolio-chatbot/internal/chat"
	"portfolio-chatbot/internal/model"
	"portfolio-chatbot/pkg/openrouter"
)

// Ask answers one message. Only validation errors are returned.
func (uc *implUseCase) Ask(ctx context.Context, input chat.AskInput) (chat.AskOutput, error) {
	start := time.Now()

	message, sessionID, err := validate(input)
	if err != nil {
		return chat.AskOutput{}, err
	}

	sess := uc.store.Append(sessionID, model.Turn{Role: model.RoleUser, Content: message})

	out := chat.AskOutput{SessionID: sessionID, Status: chat.StatusFallback}
	if reply, modelName, ok := uc.generate(ctx, sess.Turns); ok {
		out.Reply, out.Model, out.Status = reply, modelName, chat.StatusSuccess
	} else {
		out.Reply = uc.fallbackReply(message)
	}

	uc.store.Append(sessionID, model.Turn{Role: model.RoleAssistant, Content: out.Reply})
	uc.afterTurn(ctx)

	uc.metrics.ObserveAsk(string(out.Status), start)
	uc.l.Infof(ctx, "internal.chat.usecase.Ask: session=%s status=%s turns=%d", sessionID, out.Status, len(sess.Turns)+1)
	return out, nil
}

// generate calls the hosted model. ok is false when the caller should fall back.
func (uc *implUseCase) generate(ctx context.Context, history []model.Turn) (reply, modelName string, ok bool) {
	if uc.llm == nil {
		return "", "", false
	}

	start := time.Now()
	resp, err := uc.llm.GenerateContent(ctx, uc.buildRequest(history))
	if err != nil {
		uc.metrics.ObserveLLM("error", start)
		uc.logGenerateError(ctx, "internal.chat.usecase.generate", err)
		return "", "", false
	}

	reply = strings.TrimSpace(resp.Content)
	if reply == "" {
		uc.metrics.ObserveLLM("error", start)
		uc.l.Warnf(ctx, "internal.chat.usecase.generate: empty reply from %s", resp.ModelName)
		return "", "", false
	}

	uc.metrics.ObserveLLM("success", start)
	modelName = resp.ModelName
	if modelName == "" {
		modelName = uc.llm.Model()
	}
	return reply, modelName, true
}

// logGenerateError keeps the expected no-credentials case out of the warning stream.
func (uc *implUseCase) logGenerateError(ctx context.Context, prefix string, err error) {
	if errors.Is(err, openrouter.ErrMissingCredentials) {
		uc.l.Debugf(ctx, "%s: no API key configured, using fallback", prefix)
		return
	}
	uc.l.Warnf(ctx, "%s: using fallback: %v", prefix, err)
}
