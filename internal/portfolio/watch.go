package portfolio

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the portfolio whenever its file changes, until ctx is done.
// The parent directory is watched so that editors replacing the file via rename are seen.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return ErrNoPath
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	target := filepath.Clean(s.path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	go func() {
		defer w.Close()

		var debounce <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
					debounce = time.After(watchDebounce)
				}

			case <-debounce:
				debounce = nil
				if err := s.Reload(ctx); err != nil {
					s.l.Warnf(ctx, "internal.portfolio.Watch: keeping previous portfolio: %v", err)
				}

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				s.l.Warnf(ctx, "internal.portfolio.Watch: %v", err)
			}
		}
	}()

	s.l.Infof(ctx, "internal.portfolio.Watch: watching %s", target)
	return nil
}
