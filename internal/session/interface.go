package session

import (
	"context"
	"time"

	"portfolio-chatbot/internal/model"
)

// Store holds chat histories keyed by session id.
// Every mutation leaves each session with at most the configured number of turns.
type Store interface {
	// Get returns a copy of the session.
	Get(id string) (model.Session, bool)

	// Append adds turns to the session, creating it if needed, then trims the oldest turns over the cap.
	Append(id string, turns ...model.Turn) model.Session

	// Clear empties the history of an existing session.
	Clear(id string) error

	// Delete removes the session entirely and reports whether it existed.
	Delete(id string) bool

	// List returns summaries ordered by most recent activity first.
	List() []model.SessionSummary

	// Snapshot copies every session for persistence.
	Snapshot() Snapshot

	// Restore replaces the stored sessions with those in snap and returns how many were loaded.
	Restore(snap Snapshot) (int, error)

	// Stats counts sessions and turns.
	Stats() Stats

	// CleanIdle drops sessions not updated within maxIdle and returns how many were removed.
	CleanIdle(maxIdle time.Duration) int
}

// Persister saves and loads snapshots to durable storage.
type Persister interface {
	Save(ctx context.Context, snap Snapshot) error
	Load(ctx context.Context) (Snapshot, error)
}
