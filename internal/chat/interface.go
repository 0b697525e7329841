package chat

import (
	"context"

	"portfolio-chatbot/pkg/llmprovider"
)

// UseCase handles chat turns and session housekeeping.
type UseCase interface {
	// Ask answers one message. External API failures are answered by the fallback generator,
	// so the only errors returned are input validation errors.
	Ask(ctx context.Context, input AskInput) (AskOutput, error)

	// Stream is Ask with the reply relayed through onDelta as it is produced.
	Stream(ctx context.Context, input AskInput, onDelta func(delta string) error) (AskOutput, error)

	// Clear empties a session's history.
	Clear(ctx context.Context, sessionID string) error

	// ListSessions returns per-session turn counts.
	ListSessions(ctx context.Context) ListSessionsOutput

	// Save writes the current sessions. It may run concurrently with chat turns.
	Save(ctx context.Context) error

	// Flush stops background saves, waits for in-flight ones and writes the current sessions.
	// Meant for shutdown; later calls only write the sessions.
	Flush(ctx context.Context) error

	// CleanIdle drops sessions idle for longer than the configured TTL.
	CleanIdle(ctx context.Context) int
}

// Generator is the completion backend; *llmprovider.Manager implements it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	Stream(ctx context.Context, req *llmprovider.Request, onDelta func(delta string) error) (string, error)
	Model() string
}
