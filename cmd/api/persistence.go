package main

import (
	"context"
	"fmt"
	"time"

	"portfolio-chatbot/config"
	"portfolio-chatbot/internal/chat"
	"portfolio-chatbot/internal/session"
	filePersister "portfolio-chatbot/internal/session/repository/file"
	redisPersister "portfolio-chatbot/internal/session/repository/redis"
	"portfolio-chatbot/pkg/log"
)

// newPersister builds the configured snapshot backend and its cleanup func.
func newPersister(ctx context.Context, cfg config.PersistenceConfig) (session.Persister, func(), error) {
	switch cfg.Backend {
	case "file":
		return filePersister.New(cfg.Path), func() {}, nil

	case "redis":
		client, err := redisPersister.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		return redisPersister.New(client, cfg.Redis.Key, cfg.Redis.TTL), func() { client.Close() }, nil

	case "none":
		return session.NopPersister{}, func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown persistence backend %q", cfg.Backend)
}

// restoreSessions loads the last snapshot. Failures leave the store empty.
func restoreSessions(ctx context.Context, l log.Logger, store session.Store, p session.Persister) {
	snap, err := p.Load(ctx)
	if err != nil {
		l.Warnf(ctx, "Could not load saved sessions, starting empty: %v", err)
		return
	}

	n, err := store.Restore(snap)
	if err != nil {
		l.Warnf(ctx, "Could not restore saved sessions, starting empty: %v", err)
		return
	}
	l.Infof(ctx, "Restored %d sessions", n)
}

// runHousekeeping flushes sessions and drops idle ones until ctx is done.
// A zero interval disables that job.
func runHousekeeping(ctx context.Context, l log.Logger, uc chat.UseCase, flushEvery, cleanEvery time.Duration) {
	flush, stopFlush := newTicker(flushEvery)
	defer stopFlush()
	clean, stopClean := newTicker(cleanEvery)
	defer stopClean()

	for {
		select {
		case <-ctx.Done():
			return
		case <-flush:
			if err := uc.Save(ctx); err != nil {
				l.Warnf(ctx, "Periodic session flush failed: %v", err)
			}
		case <-clean:
			uc.CleanIdle(ctx)
		}
	}
}

// cleanupInterval checks for idle sessions a few times per TTL, at most once a minute.
func cleanupInterval(idleTTL time.Duration) time.Duration {
	if idleTTL <= 0 {
		return 0
	}
	if every := idleTTL / 4; every > time.Minute {
		return every
	}
	return time.Minute
}

// newTicker returns a nil channel, which never fires, when d is not positive.
func newTicker(d time.Duration) (<-chan time.Time, func()) {
	if d <= 0 {
		return nil, func() {}
	}
	t := time.NewTicker(d)
	return t.C, t.Stop
}
