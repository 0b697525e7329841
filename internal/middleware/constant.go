package middleware

const (
	// SessionIDKey holds the client-supplied session id in the gin context, for recovery replies.
	SessionIDKey = "chat.session_id"

	HeaderRequestID          = "X-Request-ID"
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
)
