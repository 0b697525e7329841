package llmprovider

import (
	"context"

	"portfolio-chatbot/pkg/openrouter"
)

// OpenRouterAdapter adapts pkg/openrouter to llmprovider.Provider interface.
// Each adapter pins one model; several adapters may share a client.
type OpenRouterAdapter struct {
	client openrouter.IOpenRouter
	model  string
}

// NewOpenRouterAdapter creates a new OpenRouter adapter for model.
// An empty model uses the client's default.
func NewOpenRouterAdapter(client openrouter.IOpenRouter, model string) *OpenRouterAdapter {
	if model == "" {
		model = client.Model()
	}
	return &OpenRouterAdapter{client: client, model: model}
}

// GenerateContent implements Provider interface
func (a *OpenRouterAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, a.toRequest(req))
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      resp.Content,
		ProviderName: a.Name(),
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Stream implements Provider interface
func (a *OpenRouterAdapter) Stream(ctx context.Context, req *Request, onDelta func(delta string) error) error {
	return a.client.Stream(ctx, a.toRequest(req), onDelta)
}

// Name returns provider name
func (a *OpenRouterAdapter) Name() string {
	return "openrouter"
}

// Model returns model name
func (a *OpenRouterAdapter) Model() string {
	return a.model
}

func (a *OpenRouterAdapter) toRequest(req *Request) *openrouter.Request {
	messages := make([]openrouter.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != "" {
		messages = append(messages, openrouter.Message{Role: openrouter.RoleSystem, Content: req.SystemInstruction})
	}
	for _, m := range req.Messages {
		messages = append(messages, openrouter.Message{Role: m.Role, Content: m.Content})
	}

	return &openrouter.Request{
		Model:            a.model,
		Messages:         messages,
		MaxTokens:        req.MaxTokens,
		Temperature:      req.Temperature,
		PresencePenalty:  req.PresencePenalty,
		FrequencyPenalty: req.FrequencyPenalty,
	}
}
