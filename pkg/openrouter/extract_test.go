package openrouter

import (
	"errors"
	"testing"
)

func TestExtractReply(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantText     string
		wantStrategy string
	}{
		{"chat shape", `{"choices":[{"message":{"role":"assistant","content":" Hello! "}}]}`, "Hello!", "chat"},
		{"legacy completion", `{"choices":[{"text":"legacy"}]}`, "legacy", "completion"},
		{"stream chunk", `{"choices":[{"delta":{"content":"partial"}}]}`, "partial", "delta"},
		{"responses text", `{"output_text":"from responses"}`, "from responses", "responses_text"},
		{"responses output", `{"output":[{"content":[{"text":"nested"}]}]}`, "nested", "responses_output"},
		{"message content", `{"message":{"content":"plain message"}}`, "plain message", "message"},
		{"content blocks", `{"content":[{"type":"text","text":"block"}]}`, "block", "content_blocks"},
		{"blank chat falls through", `{"choices":[{"message":{"content":"  "},"text":"second"}]}`, "second", "completion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, strategy, err := ExtractReply([]byte(tt.body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if text != tt.wantText {
				t.Errorf("expected text %q, got %q", tt.wantText, text)
			}
			if strategy != tt.wantStrategy {
				t.Errorf("expected strategy %q, got %q", tt.wantStrategy, strategy)
			}
		})
	}
}

func TestExtractReplyFailures(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		_, _, err := ExtractReply([]byte(`not json`))
		if !errors.Is(err, ErrMalformedResponse) {
			t.Fatalf("expected ErrMalformedResponse, got %v", err)
		}
	})

	t.Run("no known shape", func(t *testing.T) {
		_, _, err := ExtractReply([]byte(`{"choices":[{"message":{"content":null}}]}`))
		if !errors.Is(err, ErrMalformedResponse) {
			t.Fatalf("expected ErrMalformedResponse, got %v", err)
		}
	})

	t.Run("error envelope", func(t *testing.T) {
		_, _, err := ExtractReply([]byte(`{"error":{"message":"quota exceeded","code":429}}`))
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != 429 || apiErr.Message != "quota exceeded" {
			t.Errorf("unexpected APIError: %+v", apiErr)
		}
		if !apiErr.Retryable() {
			t.Errorf("expected 429 to be retryable")
		}
	})
}
