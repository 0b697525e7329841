package session

import (
	"fmt"
	"sort"
	"time"

	"portfolio-chatbot/internal/model"
)

// MaxTurns returns the per-session cap.
func (s *MemoryStore) MaxTurns() int {
	return s.maxTurns
}

func (s *MemoryStore) Get(id string) (model.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return model.Session{}, false
	}
	return sess.Clone(), true
}

func (s *MemoryStore) Append(id string, turns ...model.Turn) model.Session {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = &model.Session{ID: id, Turns: []model.Turn{}, CreatedAt: now}
		s.sessions[id] = sess
	}

	for _, t := range turns {
		if t.Timestamp.IsZero() {
			t.Timestamp = now
		}
		sess.Turns = append(sess.Turns, t)
	}
	sess.Turns = trim(sess.Turns, s.maxTurns)
	sess.UpdatedAt = now

	return sess.Clone()
}

func (s *MemoryStore) Clear(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	sess.Turns = []model.Turn{}
	sess.UpdatedAt = s.now()
	return nil
}

func (s *MemoryStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

func (s *MemoryStore) List() []model.SessionSummary {
	s.mu.RLock()
	out := make([]model.SessionSummary, 0, len(s.sessions))
	for id, sess := range s.sessions {
		out = append(out, model.SessionSummary{ID: id, Turns: len(sess.Turns), UpdatedAt: sess.UpdatedAt})
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

func (s *MemoryStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Version:  SnapshotVersion,
		SavedAt:  s.now(),
		Sessions: make(map[string]model.Session, len(s.sessions)),
	}
	for id, sess := range s.sessions {
		snap.Sessions[id] = sess.Clone()
	}
	return snap
}

func (s *MemoryStore) Restore(snap Snapshot) (int, error) {
	if snap.Version > SnapshotVersion {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedVersion, snap.Version)
	}

	restored := make(map[string]*model.Session, len(snap.Sessions))
	for id, sess := range snap.Sessions {
		if id == "" {
			continue
		}
		c := sess.Clone()
		c.ID = id
		c.Turns = trim(c.Turns, s.maxTurns)
		restored[id] = &c
	}

	s.mu.Lock()
	s.sessions = restored
	s.mu.Unlock()

	return len(restored), nil
}

func (s *MemoryStore) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{Sessions: len(s.sessions)}
	for _, sess := range s.sessions {
		st.Turns += len(sess.Turns)
	}
	return st
}

func (s *MemoryStore) CleanIdle(maxIdle time.Duration) int {
	if maxIdle <= 0 {
		return 0
	}
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// trim keeps the last limit turns. The result never aliases the dropped prefix.
func trim(turns []model.Turn, limit int) []model.Turn {
	if len(turns) <= limit {
		return turns
	}
	kept := make([]model.Turn, limit)
	copy(kept, turns[len(turns)-limit:])
	return kept
}
