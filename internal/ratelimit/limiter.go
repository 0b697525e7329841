package ratelimit

import "time"

// Allow counts one request for key at now.
// The window opens on the first request and resets once now - windowStart >= Window.
func (l *Limiter) Allow(key string, now time.Time) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records.Get(key)
	if !ok || now.Sub(rec.windowStart) >= l.cfg.Window {
		rec = &record{windowStart: now}
		l.records.Add(key, rec)
	}

	resetAt := rec.windowStart.Add(l.cfg.Window)
	if rec.count >= l.cfg.MaxRequests {
		return Decision{
			Allowed:    false,
			Limit:      l.cfg.MaxRequests,
			Remaining:  0,
			RetryAfter: resetAt.Sub(now),
			ResetAt:    resetAt,
		}
	}

	rec.count++
	return Decision{
		Allowed:   true,
		Limit:     l.cfg.MaxRequests,
		Remaining: l.cfg.MaxRequests - rec.count,
		ResetAt:   resetAt,
	}
}

// Reset forgets key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records.Remove(key)
}

// Clients returns the number of tracked clients.
func (l *Limiter) Clients() int {
	return l.records.Len()
}

// Config returns the effective configuration.
func (l *Limiter) Config() Config {
	return l.cfg
}
