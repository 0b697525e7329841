package session

import "errors"

// Domain-specific errors for the session package.
var (
	ErrNotFound           = errors.New("session not found")
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
)
