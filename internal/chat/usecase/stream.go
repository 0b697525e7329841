package usecase

import (
	"context"
	"strings"
	"time"

	"portfolio-chatbot/internal/chat"
	"portfolio-chatbot/internal/model"
)

// Stream relays model deltas through onDelta. When the model fails before producing anything,
// the fallback reply is relayed word by word instead.
func (uc *implUseCase) Stream(ctx context.Context, input chat.AskInput, onDelta func(delta string) error) (chat.AskOutput, error) {
	start := time.Now()

	message, sessionID, err := validate(input)
	if err != nil {
		return chat.AskOutput{}, err
	}

	sess := uc.store.Append(sessionID, model.Turn{Role: model.RoleUser, Content: message})
	out := chat.AskOutput{SessionID: sessionID, Status: chat.StatusFallback}

	var relayed strings.Builder
	if uc.llm != nil {
		llmStart := time.Now()
		modelName, err := uc.llm.Stream(ctx, uc.buildRequest(sess.Turns), func(delta string) error {
			relayed.WriteString(delta)
			return onDelta(delta)
		})

		text := strings.TrimSpace(relayed.String())
		switch {
		case err == nil && text != "":
			uc.metrics.ObserveLLM("success", llmStart)
			out.Status, out.Model = chat.StatusSuccess, modelName
		case text != "":
			// Interrupted mid-reply: what the client already received is the answer.
			uc.metrics.ObserveLLM("error", llmStart)
			uc.l.Warnf(ctx, "internal.chat.usecase.Stream: stream interrupted: %v", err)
			out.Status, out.Model = chat.StatusSuccess, modelName
		default:
			uc.metrics.ObserveLLM("error", llmStart)
			if err != nil {
				uc.logGenerateError(ctx, "internal.chat.usecase.Stream", err)
			}
		}
	}

	if out.Status == chat.StatusSuccess {
		out.Reply = strings.TrimSpace(relayed.String())
	} else {
		out.Reply = uc.fallbackReply(message)
		relayWords(out.Reply, onDelta)
	}

	uc.store.Append(sessionID, model.Turn{Role: model.RoleAssistant, Content: out.Reply})
	uc.afterTurn(ctx)

	uc.metrics.ObserveAsk(string(out.Status), start)
	uc.l.Infof(ctx, "internal.chat.usecase.Stream: session=%s status=%s", sessionID, out.Status)
	return out, nil
}

// relayWords emits text one word at a time, each followed by a space, stopping at the first error.
func relayWords(text string, onDelta func(string) error) {
	for _, w := range strings.Fields(text) {
		if err := onDelta(w + " "); err != nil {
			return
		}
	}
}
