package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"portfolio-chatbot/internal/model"
)

// MemoryStore is an in-process Store guarded by a RWMutex.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
	maxTurns int
	now      func() time.Time
}

// NewMemoryStore creates a MemoryStore that keeps at most maxTurns turns per session.
func NewMemoryStore(maxTurns int) *MemoryStore {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &MemoryStore{
		sessions: make(map[string]*model.Session),
		maxTurns: maxTurns,
		now:      time.Now,
	}
}

// NewID mints a new session id.
func NewID() string {
	return uuid.NewString()
}
