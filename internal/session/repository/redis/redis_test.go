package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"portfolio-chatbot/internal/model"
	"portfolio-chatbot/internal/session"
)

// fakeClient keeps values in a map and records the last TTL.
type fakeClient struct {
	data    map[string]string
	lastTTL time.Duration
	setErr  error
	getErr  error
}

func newFakeClient() *fakeClient {
	return &fakeClient{data: map[string]string{}}
}

func (f *fakeClient) Get(ctx context.Context, key string) *goredis.StringCmd {
	if f.getErr != nil {
		return goredis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(v, nil)
}

func (f *fakeClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd {
	if f.setErr != nil {
		return goredis.NewStatusResult("", f.setErr)
	}
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.lastTTL = expiration
	return goredis.NewStatusResult("OK", nil)
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	p := New(client, "portfolio-chatbot:sessions", time.Hour)

	snap := session.EmptySnapshot()
	snap.Sessions["abc"] = model.Session{ID: "abc", Turns: []model.Turn{{Role: model.RoleUser, Content: "hi"}}}

	if err := p.Save(ctx, snap); err != nil {
		t.Fatalf("save: %v", err)
	}
	if client.lastTTL != time.Hour {
		t.Errorf("expected TTL 1h, got %v", client.lastTTL)
	}

	got, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Sessions["abc"].Turns) != 1 {
		t.Errorf("unexpected snapshot %+v", got)
	}
}

func TestLoadMissingKey(t *testing.T) {
	snap, err := New(newFakeClient(), "k", 0).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Sessions == nil || len(snap.Sessions) != 0 {
		t.Errorf("expected an empty snapshot, got %+v", snap)
	}
}

func TestErrorsPropagate(t *testing.T) {
	boom := errors.New("connection refused")
	client := newFakeClient()
	client.setErr = boom
	client.getErr = boom
	p := New(client, "k", 0)

	if err := p.Save(context.Background(), session.EmptySnapshot()); !errors.Is(err, boom) {
		t.Errorf("expected wrapped save error, got %v", err)
	}
	if _, err := p.Load(context.Background()); !errors.Is(err, boom) {
		t.Errorf("expected wrapped load error, got %v", err)
	}
}
