package usecase

import (
	"context"
	"errors"
	"sync"

	"portfolio-chatbot/internal/model"
	"portfolio-chatbot/internal/portfolio"
	"portfolio-chatbot/internal/session"
	"portfolio-chatbot/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock completion backend for testing
type mockGenerator struct {
	mu        sync.Mutex
	response  *llmprovider.Response
	err       error
	deltas    []string
	streamErr error
	calls     int
	lastReq   *llmprovider.Request
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastReq = req
	return m.response, m.err
}

func (m *mockGenerator) Stream(ctx context.Context, req *llmprovider.Request, onDelta func(string) error) (string, error) {
	m.mu.Lock()
	m.calls++
	m.lastReq = req
	deltas, streamErr := m.deltas, m.streamErr
	m.mu.Unlock()

	for _, d := range deltas {
		if err := onDelta(d); err != nil {
			return "", err
		}
	}
	return "mock-model", streamErr
}

func (m *mockGenerator) Model() string {
	return "mock-model"
}

func (m *mockGenerator) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Mock persister recording saved snapshots
type mockPersister struct {
	mu    sync.Mutex
	saves []session.Snapshot
	err   error
}

func (m *mockPersister) Save(ctx context.Context, snap session.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.saves = append(m.saves, snap)
	return nil
}

func (m *mockPersister) Load(ctx context.Context) (session.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.saves) == 0 {
		return session.EmptySnapshot(), nil
	}
	return m.saves[len(m.saves)-1], nil
}

func (m *mockPersister) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.saves)
}

var errUpstream = errors.New("upstream unavailable")

func testPortfolio() model.Portfolio {
	return model.Portfolio{
		Name:   "Ada Nguyen",
		Role:   "Backend Engineer",
		Skills: []model.SkillGroup{{Category: "Backend", Items: []string{"Go", "PostgreSQL"}}},
	}
}

// newTestUseCase wires a use case over an in-memory store with the given history cap.
// A nil llm leaves the use case without a backend, so every reply is a fallback.
func newTestUseCase(llm *mockGenerator, persister session.Persister, maxTurns int, everyN int) (*implUseCase, *session.MemoryStore) {
	store := session.NewMemoryStore(maxTurns)
	src := portfolio.NewStatic(&mockLogger{}, testPortfolio())

	uc := New(&mockLogger{}, nil, store, persister, src, nil, Config{
		MaxTokens:      500,
		Temperature:    0.7,
		EveryNMessages: everyN,
	})
	if llm != nil {
		uc.llm = llm
	}
	return uc, store
}
