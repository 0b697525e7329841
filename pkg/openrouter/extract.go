package openrouter

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// extractStrategy locates reply text inside one known response shape.
type extractStrategy struct {
	Name string
	Path string
}

// extractStrategies is tried in order; the first non-blank string wins.
var extractStrategies = []extractStrategy{
	{Name: "chat", Path: "choices.0.message.content"},
	{Name: "completion", Path: "choices.0.text"},
	{Name: "delta", Path: "choices.0.delta.content"},
	{Name: "responses_text", Path: "output_text"},
	{Name: "responses_output", Path: "output.0.content.0.text"},
	{Name: "message", Path: "message.content"},
	{Name: "content_blocks", Path: "content.0.text"},
}

// ExtractReply pulls the reply text out of a completion response body.
// It returns the text and the name of the strategy that matched.
func ExtractReply(body []byte) (string, string, error) {
	if !gjson.ValidBytes(body) {
		return "", "", fmt.Errorf("%w: body is not valid JSON", ErrMalformedResponse)
	}

	root := gjson.ParseBytes(body)
	if errMsg := root.Get("error.message"); errMsg.Exists() && !root.Get("choices").Exists() {
		code := int(root.Get("error.code").Int())
		if code == 0 {
			code = 502
		}
		return "", "", &APIError{StatusCode: code, Message: errMsg.String()}
	}

	for _, s := range extractStrategies {
		res := root.Get(s.Path)
		if res.Type != gjson.String {
			continue
		}
		if text := strings.TrimSpace(res.String()); text != "" {
			return text, s.Name, nil
		}
	}

	return "", "", fmt.Errorf("%w: no reply text in %d bytes", ErrMalformedResponse, len(body))
}

// extractUsage reads token usage when present; missing fields stay zero.
func extractUsage(body []byte) Usage {
	u := gjson.GetBytes(body, "usage")
	return Usage{
		PromptTokens:     int(u.Get("prompt_tokens").Int()),
		CompletionTokens: int(u.Get("completion_tokens").Int()),
		TotalTokens:      int(u.Get("total_tokens").Int()),
	}
}
