package ratelimit

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultWindow      = time.Minute
	defaultMaxRequests = 20
	defaultMaxClients  = 10000
)

// Limiter is a fixed-window counter per client key. Safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	cfg     Config
	records *expirable.LRU[string, *record]
}

// New creates a Limiter. Records expire one window after they were opened.
func New(cfg Config) *Limiter {
	if cfg.Window <= 0 {
		cfg.Window = defaultWindow
	}
	if cfg.MaxRequests <= 0 {
		cfg.MaxRequests = defaultMaxRequests
	}
	if cfg.MaxClients <= 0 {
		cfg.MaxClients = defaultMaxClients
	}

	return &Limiter{
		cfg:     cfg,
		records: expirable.NewLRU[string, *record](cfg.MaxClients, nil, cfg.Window),
	}
}
