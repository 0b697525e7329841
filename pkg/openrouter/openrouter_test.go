package openrouter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestGenerateContentMissingCredentials(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer ts.Close()

	c := New(Config{BaseURL: ts.URL})
	_, err := c.GenerateContent(context.Background(), &Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	if !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Errorf("expected no upstream call without credentials")
	}
}

func TestGenerateContentSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		if got := r.Header.Get("HTTP-Referer"); got != "https://example.dev" {
			t.Errorf("unexpected HTTP-Referer %q", got)
		}
		if got := r.Header.Get("X-Title"); got != "Example" {
			t.Errorf("unexpected X-Title %q", got)
		}

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "test/model" {
			t.Errorf("expected default model to be filled in, got %q", req.Model)
		}
		if req.MaxTokens != 100 {
			t.Errorf("expected max_tokens 100, got %d", req.MaxTokens)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != RoleSystem {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"model":"test/model","choices":[{"message":{"content":"Hi there"}}],"usage":{"prompt_tokens":12,"completion_tokens":3,"total_tokens":15}}`))
	}))
	defer ts.Close()

	c := New(Config{APIKey: "sk-test", BaseURL: ts.URL, Model: "test/model", SiteURL: "https://example.dev", SiteName: "Example"})
	resp, err := c.GenerateContent(context.Background(), &Request{
		Messages:  []Message{{Role: RoleSystem, Content: "sys"}, {Role: RoleUser, Content: "hi"}},
		MaxTokens: 100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "Hi there" {
		t.Errorf("unexpected content %q", resp.Content)
	}
	if resp.Strategy != "chat" {
		t.Errorf("unexpected strategy %q", resp.Strategy)
	}
	if resp.Usage.TotalTokens != 15 {
		t.Errorf("expected 15 total tokens, got %d", resp.Usage.TotalTokens)
	}
}

func TestGenerateContentHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"No auth credentials found","code":401}}`))
	}))
	defer ts.Close()

	c := New(Config{APIKey: "bad", BaseURL: ts.URL})
	_, err := c.GenerateContent(context.Background(), &Request{})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "No auth credentials found" {
		t.Errorf("unexpected message %q", apiErr.Message)
	}
	if apiErr.Retryable() {
		t.Errorf("401 must not be retryable")
	}
}

func TestGenerateContentMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	c := New(Config{APIKey: "sk", BaseURL: ts.URL})
	_, err := c.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestStreamRelaysDeltas(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Title"); got != "Example" {
			t.Errorf("unexpected X-Title %q", got)
		}
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		for _, word := range []string{"Hello", " world"} {
			fmt.Fprintf(w, "data: {\"id\":\"1\",\"object\":\"chat.completion.chunk\",\"choices\":[{\"index\":0,\"delta\":{\"content\":%q}}]}\n\n", word)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer ts.Close()

	c := New(Config{APIKey: "sk", BaseURL: ts.URL, SiteName: "Example"})
	var sb strings.Builder
	err := c.Stream(context.Background(), &Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}}, func(delta string) error {
		sb.WriteString(delta)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sb.String() != "Hello world" {
		t.Errorf("unexpected streamed text %q", sb.String())
	}
}

func TestStreamHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":{"message":"upstream down","type":"server_error"}}`))
	}))
	defer ts.Close()

	c := New(Config{APIKey: "sk", BaseURL: ts.URL})
	err := c.Stream(context.Background(), &Request{}, func(string) error { return nil })

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", apiErr.StatusCode)
	}
}
