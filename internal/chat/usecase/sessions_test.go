package usecase

import (
	"context"
	"errors"
	"testing"

	"portfolio-chatbot/internal/chat"
)

func TestClear(t *testing.T) {
	uc, store := newTestUseCase(nil, nil, 16, 0)
	ctx := context.Background()

	if err := uc.Clear(ctx, " "); !errors.Is(err, chat.ErrMissingSessionID) {
		t.Errorf("expected ErrMissingSessionID, got %v", err)
	}
	if err := uc.Clear(ctx, "unknown"); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}

	if _, err := uc.Ask(ctx, chat.AskInput{Message: "hi", SessionID: "s"}); err != nil {
		t.Fatal(err)
	}
	if err := uc.Clear(ctx, "s"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess, _ := store.Get("s"); len(sess.Turns) != 0 {
		t.Errorf("history should be empty after clear, got %d turns", len(sess.Turns))
	}
}

func TestListSessions(t *testing.T) {
	uc, _ := newTestUseCase(nil, nil, 16, 0)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "b"} {
		if _, err := uc.Ask(ctx, chat.AskInput{Message: "hi", SessionID: id}); err != nil {
			t.Fatal(err)
		}
	}

	out := uc.ListSessions(ctx)
	if out.Total != 2 {
		t.Fatalf("expected 2 sessions, got %d", out.Total)
	}
	counts := map[string]int{}
	for _, s := range out.Sessions {
		counts[s.ID] = s.Turns
	}
	if counts["a"] != 2 || counts["b"] != 4 {
		t.Errorf("unexpected turn counts %v", counts)
	}
}

func TestCleanIdleDisabledByDefault(t *testing.T) {
	uc, _ := newTestUseCase(nil, nil, 16, 0)
	if _, err := uc.Ask(context.Background(), chat.AskInput{Message: "hi"}); err != nil {
		t.Fatal(err)
	}
	if removed := uc.CleanIdle(context.Background()); removed != 0 {
		t.Errorf("zero idle ttl must keep sessions, removed %d", removed)
	}
}
