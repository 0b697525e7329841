package openrouter

import "time"

// Config configures a Client.
type Config struct {
	APIKey   string
	BaseURL  string
	Model    string
	SiteURL  string
	SiteName string
	Timeout  time.Duration
}

// Message is a chat-completion message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the chat-completion request body.
type Request struct {
	Model            string    `json:"model"`
	Messages         []Message `json:"messages"`
	MaxTokens        int       `json:"max_tokens,omitempty"`
	Temperature      *float64  `json:"temperature,omitempty"`
	PresencePenalty  *float64  `json:"presence_penalty,omitempty"`
	FrequencyPenalty *float64  `json:"frequency_penalty,omitempty"`
	Stream           bool      `json:"stream,omitempty"`
}

// Usage tracks token consumption when the API reports it.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the normalized result of a completion call.
type Response struct {
	Content  string
	Model    string
	Strategy string // name of the extraction strategy that produced Content
	Usage    Usage
}
