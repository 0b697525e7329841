package openrouter

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredentials is returned before any network call when no API key is set.
	ErrMissingCredentials = errors.New("openrouter: API key is not configured")

	// ErrMalformedResponse is returned when no extraction strategy finds reply text.
	ErrMalformedResponse = errors.New("openrouter: malformed response")
)

// APIError is a non-2xx response, or an error envelope inside a 2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openrouter: API error %d: %s", e.StatusCode, e.Message)
}

// Retryable reports whether repeating the same request may succeed.
func (e *APIError) Retryable() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500 || e.StatusCode == 0
}
