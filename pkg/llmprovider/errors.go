package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrProviderRateLimited indicates the local upstream call budget is exhausted
	ErrProviderRateLimited = errors.New("provider rate limited")

	// ErrStreamInterrupted indicates a stream failed after content was already relayed
	ErrStreamInterrupted = errors.New("stream interrupted")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Model    string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s (%s): %v", e.Provider, e.Model, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
