package openrouter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// siteHeaderTransport adds the OpenRouter attribution headers to every request.
type siteHeaderTransport struct {
	base     http.RoundTripper
	siteURL  string
	siteName string
}

func (t *siteHeaderTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	if t.siteURL != "" {
		r.Header.Set("HTTP-Referer", t.siteURL)
	}
	if t.siteName != "" {
		r.Header.Set("X-Title", t.siteName)
	}
	return t.base.RoundTrip(r)
}

func (c *Client) streamClient() *openai.Client {
	cfg := openai.DefaultConfig(c.apiKey)
	cfg.BaseURL = c.baseURL
	// No client-level timeout: a whole stream is bounded by the caller's context.
	// Only the wait for response headers is capped here.
	base := http.DefaultTransport.(*http.Transport).Clone()
	base.ResponseHeaderTimeout = c.client.Timeout
	cfg.HTTPClient = &http.Client{
		Transport: &siteHeaderTransport{
			base:     base,
			siteURL:  c.siteURL,
			siteName: c.siteName,
		},
	}
	return openai.NewClientWithConfig(cfg)
}

// Stream runs a streaming completion and calls onDelta for every non-empty content chunk.
// Returning an error from onDelta aborts the stream with that error.
func (c *Client) Stream(ctx context.Context, req *Request, onDelta func(delta string) error) error {
	if c.apiKey == "" {
		return ErrMissingCredentials
	}
	if req.Model == "" {
		req.Model = c.model
	}

	stream, err := c.streamClient().CreateChatCompletionStream(ctx, toOpenAIRequest(req))
	if err != nil {
		return mapOpenAIError(err)
	}
	defer stream.Close()

	received := false
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return mapOpenAIError(err)
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		delta := chunk.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		received = true
		if err := onDelta(delta); err != nil {
			return err
		}
	}

	if !received {
		return fmt.Errorf("%w: stream ended without content", ErrMalformedResponse)
	}
	return nil
}

func toOpenAIRequest(req *Request) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	out := openai.ChatCompletionRequest{
		Model:     req.Model,
		Messages:  messages,
		MaxTokens: req.MaxTokens,
		Stream:    true,
	}
	if req.Temperature != nil {
		out.Temperature = float32(*req.Temperature)
	}
	if req.PresencePenalty != nil {
		out.PresencePenalty = float32(*req.PresencePenalty)
	}
	if req.FrequencyPenalty != nil {
		out.FrequencyPenalty = float32(*req.FrequencyPenalty)
	}
	return out
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &APIError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &APIError{StatusCode: reqErr.HTTPStatusCode, Message: reqErr.Error()}
	}
	return fmt.Errorf("stream failed: %w", err)
}
