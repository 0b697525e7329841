package usecase

import (
	"context"
	"errors"
	"strings"

	"portfolio-chatbot/internal/chat"
	"portfolio-chatbot/internal/session"
)

// Clear empties a session's history.
func (uc *implUseCase) Clear(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return chat.ErrMissingSessionID
	}

	if err := uc.store.Clear(sessionID); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return chat.ErrSessionNotFound
		}
		return err
	}

	uc.l.Infof(ctx, "internal.chat.usecase.Clear: cleared session %s", sessionID)
	return nil
}

// ListSessions returns per-session turn counts, most recently active first.
func (uc *implUseCase) ListSessions(ctx context.Context) chat.ListSessionsOutput {
	sessions := uc.store.List()
	return chat.ListSessionsOutput{Total: len(sessions), Sessions: sessions}
}

// CleanIdle drops sessions idle for longer than the configured TTL.
func (uc *implUseCase) CleanIdle(ctx context.Context) int {
	removed := uc.store.CleanIdle(uc.cfg.IdleTTL)
	if removed > 0 {
		uc.l.Infof(ctx, "internal.chat.usecase.CleanIdle: removed %d idle sessions", removed)
	}
	return removed
}
