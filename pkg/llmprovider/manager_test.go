package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio-chatbot/config"
	"portfolio-chatbot/pkg/openrouter"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name      string
	model     string
	errs      []error // returned in order; nil entries mean success
	response  *Response
	deltas    []string
	streamErr error // returned after deltas are relayed
	hang      bool  // block until ctx is done
	callCount int
}

func (m *mockProvider) next() error {
	m.callCount++
	if len(m.errs) == 0 {
		return nil
	}
	err := m.errs[0]
	m.errs = m.errs[1:]
	return err
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if err := m.next(); err != nil {
		return nil, err
	}
	if m.hang {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return m.response, nil
}

func (m *mockProvider) Stream(ctx context.Context, req *Request, onDelta func(string) error) error {
	if err := m.next(); err != nil {
		return err
	}
	if m.hang {
		<-ctx.Done()
		return ctx.Err()
	}
	for _, d := range m.deltas {
		if err := onDelta(d); err != nil {
			return err
		}
	}
	return m.streamErr
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func okResponse(text string) *Response {
	return &Response{
		Content:      text,
		ProviderName: "mock",
		Usage:        &Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	}
}

func testConfig() *Config {
	return &Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
		RetryDelay:      time.Millisecond,
	}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "p", response: okResponse("Hello from primary")}
	secondary := &mockProvider{name: "secondary", model: "s", response: okResponse("unused")}
	logger := &mockLogger{}

	m := NewManager([]Provider{primary, secondary}, testConfig(), logger)
	resp, err := m.GenerateContent(context.Background(), &Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "Hello from primary" {
		t.Errorf("unexpected content %q", resp.Content)
	}
	if secondary.callCount != 0 {
		t.Errorf("secondary should not be called, got %d calls", secondary.callCount)
	}
	if len(logger.infoMessages) != 1 || logger.infoMessages[0] != "LLM generation successful" {
		t.Errorf("unexpected info logs: %v", logger.infoMessages)
	}
}

func TestGenerateContent_FallbackToSecondary(t *testing.T) {
	primary := &mockProvider{name: "primary", errs: []error{errors.New("boom")}}
	secondary := &mockProvider{name: "secondary", response: okResponse("Hello from secondary")}
	logger := &mockLogger{}

	m := NewManager([]Provider{primary, secondary}, testConfig(), logger)
	resp, err := m.GenerateContent(context.Background(), &Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "Hello from secondary" {
		t.Errorf("unexpected content %q", resp.Content)
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("expected one failure log, got %v", logger.warnMessages)
	}
}

func TestGenerateContent_FallbackDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", errs: []error{errors.New("boom")}}
	secondary := &mockProvider{name: "secondary", response: okResponse("unused")}

	cfg := testConfig()
	cfg.FallbackEnabled = false
	m := NewManager([]Provider{primary, secondary}, cfg, &mockLogger{})

	_, err := m.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
	}
	if secondary.callCount != 0 {
		t.Errorf("secondary must not be called with fallback disabled")
	}
}

func TestGenerateContent_RetriesTransientErrors(t *testing.T) {
	flaky := &mockProvider{
		name:     "flaky",
		errs:     []error{errors.New("timeout"), &openrouter.APIError{StatusCode: 503}, nil},
		response: okResponse("third time lucky"),
	}

	cfg := testConfig()
	cfg.RetryAttempts = 3
	m := NewManager([]Provider{flaky}, cfg, &mockLogger{})

	resp, err := m.GenerateContent(context.Background(), &Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "third time lucky" {
		t.Errorf("unexpected content %q", resp.Content)
	}
	if flaky.callCount != 3 {
		t.Errorf("expected 3 attempts, got %d", flaky.callCount)
	}
}

func TestGenerateContent_DoesNotRetryClientErrors(t *testing.T) {
	p := &mockProvider{name: "p", errs: []error{&openrouter.APIError{StatusCode: 401}}}

	cfg := testConfig()
	cfg.RetryAttempts = 3
	m := NewManager([]Provider{p}, cfg, &mockLogger{})

	_, err := m.GenerateContent(context.Background(), &Request{})
	var apiErr *openrouter.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 401 {
		t.Fatalf("expected wrapped 401 APIError, got %v", err)
	}
	if p.callCount != 1 {
		t.Errorf("expected a single attempt, got %d", p.callCount)
	}
}

func TestGenerateContent_MissingCredentialsStopsChain(t *testing.T) {
	primary := &mockProvider{name: "primary", errs: []error{openrouter.ErrMissingCredentials}}
	secondary := &mockProvider{name: "secondary", response: okResponse("unused")}

	m := NewManager([]Provider{primary, secondary}, testConfig(), &mockLogger{})
	_, err := m.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, openrouter.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if secondary.callCount != 0 {
		t.Errorf("secondary must not be called without credentials")
	}
}

func TestGenerateContent_NoProviders(t *testing.T) {
	m := NewManager(nil, testConfig(), &mockLogger{})
	if _, err := m.GenerateContent(context.Background(), &Request{}); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestGenerateContent_UpstreamRateLimit(t *testing.T) {
	p := &mockProvider{name: "p", response: okResponse("ok")}

	cfg := testConfig()
	cfg.RequestsPerSec = 0.001
	cfg.Burst = 1
	m := NewManager([]Provider{p}, cfg, &mockLogger{})

	if _, err := m.GenerateContent(context.Background(), &Request{}); err != nil {
		t.Fatalf("first call should pass, got %v", err)
	}
	if _, err := m.GenerateContent(context.Background(), &Request{}); !errors.Is(err, ErrProviderRateLimited) {
		t.Fatalf("expected ErrProviderRateLimited, got %v", err)
	}
	if p.callCount != 1 {
		t.Errorf("expected provider to be called once, got %d", p.callCount)
	}
}

func TestStream_FallsBackBeforeFirstDelta(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "p", errs: []error{errors.New("connect refused")}}
	secondary := &mockProvider{name: "secondary", model: "s", deltas: []string{"Hel", "lo"}}

	m := NewManager([]Provider{primary, secondary}, testConfig(), &mockLogger{})

	var got string
	model, err := m.Stream(context.Background(), &Request{}, func(d string) error {
		got += d
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hello" || model != "s" {
		t.Errorf("unexpected stream result %q from %q", got, model)
	}
}

func TestStream_InterruptedAfterDelta(t *testing.T) {
	primary := &mockProvider{name: "primary", deltas: []string{"partial"}, streamErr: errors.New("reset by peer")}
	secondary := &mockProvider{name: "secondary", deltas: []string{"unused"}}

	cfg := testConfig()
	cfg.RetryAttempts = 3
	m := NewManager([]Provider{primary, secondary}, cfg, &mockLogger{})

	_, err := m.Stream(context.Background(), &Request{}, func(string) error { return nil })
	if !errors.Is(err, ErrStreamInterrupted) {
		t.Fatalf("expected ErrStreamInterrupted, got %v", err)
	}
	if primary.callCount != 1 {
		t.Errorf("interrupted stream must not be retried, got %d calls", primary.callCount)
	}
	if secondary.callCount != 0 {
		t.Errorf("secondary must not be called after content was relayed")
	}
}

func TestStream_BoundedByTotalTimeout(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "p", hang: true}
	secondary := &mockProvider{name: "secondary", model: "s", deltas: []string{"late"}}

	cfg := testConfig()
	cfg.MaxTotalTimeout = 100 * time.Millisecond
	m := NewManager([]Provider{primary, secondary}, cfg, &mockLogger{})

	start := time.Now()
	_, err := m.Stream(context.Background(), &Request{}, func(string) error { return nil })
	elapsed := time.Since(start)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if elapsed > time.Second {
		t.Errorf("stream should stop at the total timeout, took %v", elapsed)
	}
	if secondary.callCount != 0 {
		t.Errorf("no provider should be tried once the total timeout has passed")
	}
}

func TestGenerateContent_BoundedByTotalTimeout(t *testing.T) {
	p := &mockProvider{name: "primary", model: "p", hang: true}

	cfg := testConfig()
	cfg.MaxTotalTimeout = 100 * time.Millisecond
	m := NewManager([]Provider{p}, cfg, &mockLogger{})

	start := time.Now()
	_, err := m.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("generate should stop at the total timeout, took %v", elapsed)
	}
}

func TestInitializeProviders_SortsByPriority(t *testing.T) {
	providers, err := InitializeProviders(config.LLMConfig{
		Models: []config.ModelConfig{
			{Name: "second", Enabled: true, Priority: 2},
			{Name: "disabled", Enabled: false, Priority: 0},
			{Name: "first", Enabled: true, Priority: 1},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(providers))
	}
	if providers[0].Model() != "first" || providers[1].Model() != "second" {
		t.Errorf("unexpected order: %s, %s", providers[0].Model(), providers[1].Model())
	}

	if _, err := InitializeProviders(config.LLMConfig{}); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
	}
}
