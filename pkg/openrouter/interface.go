package openrouter

import "context"

// IOpenRouter defines the interface for the chat-completion client
type IOpenRouter interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Stream(ctx context.Context, req *Request, onDelta func(delta string) error) error
	Model() string
}
