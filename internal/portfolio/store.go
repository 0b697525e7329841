package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"portfolio-chatbot/internal/model"
)

// LoadFile reads and validates a portfolio JSON file.
func LoadFile(path string) (model.Portfolio, error) {
	if path == "" {
		return model.Portfolio{}, ErrNoPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.Portfolio{}, fmt.Errorf("read portfolio: %w", err)
	}

	var p model.Portfolio
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Portfolio{}, fmt.Errorf("decode portfolio %s: %w", path, err)
	}
	if strings.TrimSpace(p.Name) == "" {
		return model.Portfolio{}, ErrMissingName
	}
	return p, nil
}

// Reload re-reads the backing file. On failure the previous record is kept
// and the error is returned for the caller to report.
func (s *Store) Reload(ctx context.Context) error {
	p, err := LoadFile(s.path)
	if err != nil {
		return err
	}

	s.set(p)
	s.l.Infof(ctx, "internal.portfolio.Reload: loaded portfolio for %s from %s", p.Name, s.path)
	return nil
}

// Get returns the current record and whether one has been loaded.
func (s *Store) Get() (model.Portfolio, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record, s.loaded
}

// SystemPrompt returns the prompt built from the current record.
func (s *Store) SystemPrompt() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prompt
}

// Loaded reports whether a record has been loaded.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// LoadedAt returns when the current record was loaded.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) set(p model.Portfolio) {
	prompt := BuildSystemPrompt(p)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = p
	s.prompt = prompt
	s.loaded = true
	s.loadedAt = time.Now()
}
