// Package redis persists session snapshots under a single Redis key.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"portfolio-chatbot/internal/session"
)

// Client is the subset of the go-redis client the persister needs.
type Client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
}

// Persister stores the snapshot JSON at key with an optional TTL (0 keeps it forever).
type Persister struct {
	client Client
	key    string
	ttl    time.Duration
}

// New creates a Redis Persister.
func New(client Client, key string, ttl time.Duration) *Persister {
	return &Persister{client: client, key: key, ttl: ttl}
}

// NewClient builds a go-redis client and checks connectivity.
func NewClient(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	c := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := c.Ping(pingCtx).Err(); err != nil {
		c.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return c, nil
}

func (p *Persister) Save(ctx context.Context, snap session.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := p.client.Set(ctx, p.key, data, p.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", p.key, err)
	}
	return nil
}

// Load reads the snapshot. A missing key yields an empty snapshot.
func (p *Persister) Load(ctx context.Context) (session.Snapshot, error) {
	data, err := p.client.Get(ctx, p.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return session.EmptySnapshot(), nil
	}
	if err != nil {
		return session.Snapshot{}, fmt.Errorf("redis get %s: %w", p.key, err)
	}

	var snap session.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return session.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Sessions == nil {
		snap.Sessions = session.EmptySnapshot().Sessions
	}
	return snap, nil
}

// String describes the backend for logs.
func (p *Persister) String() string {
	return "redis:" + p.key
}
