package response

const (
	// DefaultErrorMessage is returned for 5xx responses instead of the internal error text.
	DefaultErrorMessage = "Internal server error"

	// HeaderRetryAfter carries the rate-limit retry delay in seconds.
	HeaderRetryAfter = "Retry-After"
)
