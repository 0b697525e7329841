package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// Client implements IOpenRouter interface
type Client struct {
	apiKey   string
	model    string
	baseURL  string
	siteURL  string
	siteName string
	client   *http.Client
}

// New creates a new OpenRouter client.
// A missing API key is allowed; calls then fail with ErrMissingCredentials.
func New(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		apiKey:   strings.TrimSpace(cfg.APIKey),
		model:    cfg.Model,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		siteURL:  cfg.SiteURL,
		siteName: cfg.SiteName,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Model returns the model this client targets by default.
func (c *Client) Model() string {
	return c.model
}

// GenerateContent sends a request to the chat-completions endpoint
func (c *Client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if c.apiKey == "" {
		return nil, ErrMissingCredentials
	}

	// Set model if not specified
	if req.Model == "" {
		req.Model = c.model
	}
	req.Stream = false

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(httpReq.Header)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(respBody)}
	}

	content, strategy, err := ExtractReply(respBody)
	if err != nil {
		return nil, err
	}

	model := gjson.GetBytes(respBody, "model").String()
	if model == "" {
		model = req.Model
	}

	return &Response{
		Content:  content,
		Model:    model,
		Strategy: strategy,
		Usage:    extractUsage(respBody),
	}, nil
}

func (c *Client) setHeaders(h http.Header) {
	h.Set("Content-Type", "application/json")
	h.Set("Authorization", "Bearer "+c.apiKey)
	if c.siteURL != "" {
		h.Set("HTTP-Referer", c.siteURL)
	}
	if c.siteName != "" {
		h.Set("X-Title", c.siteName)
	}
}

// errorMessage prefers the API's error.message and falls back to the raw (truncated) body.
func errorMessage(body []byte) string {
	if msg := gjson.GetBytes(body, "error.message").String(); msg != "" {
		return msg
	}
	raw := strings.TrimSpace(string(body))
	if len(raw) > maxErrorBody {
		raw = raw[:maxErrorBody]
	}
	return raw
}
