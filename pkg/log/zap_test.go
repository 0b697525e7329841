package log

import (
	"context"
	"testing"
)

func TestLogwRouting(t *testing.T) {
	var gotStructured, gotPlain bool
	structured := func(string, ...any) { gotStructured = true }
	plain := func(...any) { gotPlain = true }

	logw(structured, plain, []any{"LLM generation successful", "provider", "openrouter"})
	if !gotStructured || gotPlain {
		t.Fatalf("expected structured routing, got structured=%v plain=%v", gotStructured, gotPlain)
	}

	gotStructured, gotPlain = false, false
	logw(structured, plain, []any{"Failed to run server: ", "boom"})
	if gotStructured || !gotPlain {
		t.Fatalf("expected plain routing for even arg count, got structured=%v plain=%v", gotStructured, gotPlain)
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	l := Init(ZapConfig{Level: "not-a-level", Mode: "production", Encoding: "json"})
	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	l.Infof(ctx, "hello %s", "world")
	l.Info(ctx, "structured", "k", "v")

	NewNop().Warn(context.Background(), "discarded")
}
