package portfolio

import (
	"sync"
	"time"

	"portfolio-chatbot/internal/model"
	pkgLog "portfolio-chatbot/pkg/log"
)

// Store holds the loaded portfolio. Safe for concurrent use.
type Store struct {
	l    pkgLog.Logger
	path string

	mu       sync.RWMutex
	record   model.Portfolio
	prompt   string
	loaded   bool
	loadedAt time.Time
}

// New creates a Store for the file at path. Call Reload to load it.
func New(l pkgLog.Logger, path string) *Store {
	return &Store{
		l:      l,
		path:   path,
		prompt: BuildSystemPrompt(model.Portfolio{}),
	}
}

// NewStatic creates a Store that serves p and has no backing file.
func NewStatic(l pkgLog.Logger, p model.Portfolio) *Store {
	s := New(l, "")
	s.set(p)
	return s
}
