package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyMessage     = errors.New("message is required")
	ErrMessageTooLong   = errors.New("message is too long")
	ErrInvalidSessionID = errors.New("session_id is invalid")
	ErrMissingSessionID = errors.New("session_id is required")
	ErrSessionNotFound  = errors.New("session not found")
)
