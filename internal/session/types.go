package session

import (
	"time"

	"portfolio-chatbot/internal/model"
)

// Snapshot is the persisted form of the whole session map.
type Snapshot struct {
	Version  int                      `json:"version"`
	SavedAt  time.Time                `json:"saved_at"`
	Sessions map[string]model.Session `json:"sessions"`
}

// EmptySnapshot returns a current-version snapshot with no sessions.
func EmptySnapshot() Snapshot {
	return Snapshot{Version: SnapshotVersion, Sessions: map[string]model.Session{}}
}

// Stats is a point-in-time count of stored sessions and turns.
type Stats struct {
	Sessions int
	Turns    int
}
