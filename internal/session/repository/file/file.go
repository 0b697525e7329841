// Package file persists session snapshots as a JSON document on local disk.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"portfolio-chatbot/internal/session"
)

// Persister writes snapshots atomically: a temp file in the same directory is renamed over the target.
type Persister struct {
	path string
}

// New creates a file Persister for path.
func New(path string) *Persister {
	return &Persister{path: path}
}

func (p *Persister) Save(ctx context.Context, snap session.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(p.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}

	if err := os.Rename(tmpName, p.path); err != nil {
		return fmt.Errorf("replace %s: %w", p.path, err)
	}
	return nil
}

// Load reads the snapshot. A missing file yields an empty snapshot.
func (p *Persister) Load(ctx context.Context) (session.Snapshot, error) {
	data, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return session.EmptySnapshot(), nil
	}
	if err != nil {
		return session.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}

	var snap session.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return session.Snapshot{}, fmt.Errorf("decode snapshot %s: %w", p.path, err)
	}
	if snap.Sessions == nil {
		snap.Sessions = session.EmptySnapshot().Sessions
	}
	return snap, nil
}

// String describes the backend for logs.
func (p *Persister) String() string {
	return "file:" + p.path
}
