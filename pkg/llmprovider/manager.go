package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"golang.org/x/time/rate"

	"portfolio-chatbot/pkg/log"
	"portfolio-chatbot/pkg/openrouter"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	limiter   *rate.Limiter
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // Global timeout for entire fallback chain
	RequestsPerSec  float64       // Upstream call budget; <= 0 means unlimited
	Burst           int
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	limit := rate.Inf
	if config.RequestsPerSec > 0 {
		limit = rate.Limit(config.RequestsPerSec)
	}
	burst := config.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Manager{
		providers: providers,
		config:    config,
		limiter:   rate.NewLimiter(limit, burst),
		logger:    logger,
	}
}

// Model returns the model of the highest-priority provider.
func (m *Manager) Model() string {
	if len(m.providers) == 0 {
		return ""
	}
	return m.providers[0].Model()
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if !m.limiter.Allow() {
		return nil, ErrProviderRateLimited
	}

	// Create context with global timeout for entire fallback chain
	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	// Iterate through providers in priority order
	for _, provider := range m.providers {
		// Check if context is already cancelled (timeout exceeded)
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("global timeout exceeded after trying %d provider(s): %w",
				len(m.providers), err)
		}

		var resp *Response
		err := m.withRetry(ctx, func() error {
			var genErr error
			resp, genErr = provider.GenerateContent(ctx, req)
			return genErr
		})
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Model: provider.Model(), Err: err}

		// If fallback is disabled, or nothing else can succeed, stop after this provider
		if !m.config.FallbackEnabled || errors.Is(err, openrouter.ErrMissingCredentials) {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// Stream relays deltas from the first provider that starts producing content.
// A provider that fails before emitting anything is retried/fallen back like GenerateContent;
// a failure after content has been relayed is returned as ErrStreamInterrupted.
func (m *Manager) Stream(ctx context.Context, req *Request, onDelta func(delta string) error) (string, error) {
	if len(m.providers) == 0 {
		return "", ErrNoProvidersConfigured
	}
	if !m.limiter.Allow() {
		return "", ErrProviderRateLimited
	}

	// The whole stream, fallbacks included, shares the chain timeout
	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for _, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("global timeout exceeded after trying %d provider(s): %w",
				len(m.providers), err)
		}

		emitted := false
		err := m.withRetry(ctx, func() error {
			err := provider.Stream(ctx, req, func(delta string) error {
				emitted = true
				return onDelta(delta)
			})
			if err != nil && emitted {
				return fmt.Errorf("%w: %w", ErrStreamInterrupted, err)
			}
			return err
		})
		if err == nil {
			m.logger.Info(ctx, "LLM stream completed", "provider", provider.Name(), "model", provider.Model())
			return provider.Model(), nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Model: provider.Model(), Err: err}
		if emitted || !m.config.FallbackEnabled || errors.Is(err, openrouter.ErrMissingCredentials) {
			break
		}
	}

	return "", fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// withRetry implements retry mechanism with linear backoff (attempt × RetryDelay)
func (m *Manager) withRetry(ctx context.Context, fn func() error) error {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := m.config.RetryDelay

	return retry.Do(fn,
		retry.Context(ctx),
		retry.Attempts(uint(attempts)),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
		retry.DelayType(func(n uint, _ error, _ *retry.Config) time.Duration {
			return time.Duration(n+1) * delay
		}),
	)
}

// isRetryable reports whether another attempt against the same provider may succeed.
func isRetryable(err error) bool {
	if errors.Is(err, openrouter.ErrMissingCredentials) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, ErrStreamInterrupted) {
		return false
	}
	var apiErr *openrouter.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}
	return true
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	inputTokens, outputTokens := 0, 0
	if resp.Usage != nil {
		inputTokens, outputTokens = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Info(ctx, "LLM generation successful",
		"provider", provider.Name(),
		"model", provider.Model(),
		"input_tokens", inputTokens,
		"output_tokens", outputTokens,
	)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}
