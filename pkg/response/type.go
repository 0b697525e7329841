package response

// ErrorResp is the JSON body of every non-2xx response.
type ErrorResp struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retry_after,omitempty"`
}
