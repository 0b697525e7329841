package ratelimit

import (
	"math"
	"time"
)

// Config controls the fixed window.
type Config struct {
	Window      time.Duration
	MaxRequests int
	MaxClients  int // bound on tracked clients; least recently seen are evicted first
}

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration // zero when allowed
	ResetAt    time.Time
}

// RetryAfterSeconds rounds RetryAfter up to whole seconds, never below 1.
func (d Decision) RetryAfterSeconds() int {
	secs := int(math.Ceil(d.RetryAfter.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}

// record is the per-client counter.
type record struct {
	count       int
	windowStart time.Time
}
