package usecase

import (
	"sync"
	"sync/atomic"
	"time"

	"portfolio-chatbot/internal/chat"
	"portfolio-chatbot/internal/metrics"
	"portfolio-chatbot/internal/portfolio"
	"portfolio-chatbot/internal/session"
	pkgLog "portfolio-chatbot/pkg/log"
)

// Config holds generation parameters and persistence cadence.
type Config struct {
	MaxTokens        int
	Temperature      float64
	PresencePenalty  float64
	FrequencyPenalty float64
	EveryNMessages   int           // persist after this many handled messages; 0 disables
	PersistTimeout   time.Duration // bound on one background save
	IdleTTL          time.Duration
}

type implUseCase struct {
	l         pkgLog.Logger
	llm       chat.Generator
	store     session.Store
	persister session.Persister
	portfolio portfolio.Source
	fallback  *chat.FallbackGenerator
	metrics   *metrics.Metrics
	cfg       Config

	handled   atomic.Int64
	persistMu sync.Mutex

	// asyncMu guards closed and every inflight.Add, so no Add races Flush's Wait.
	asyncMu  sync.Mutex
	closed   bool
	inflight sync.WaitGroup
}

// New creates a new chat UseCase instance.
// llm may be nil, in which case every reply comes from the fallback generator.
func New(
	l pkgLog.Logger,
	llm chat.Generator,
	store session.Store,
	persister session.Persister,
	source portfolio.Source,
	m *metrics.Metrics,
	cfg Config,
) *implUseCase {
	if persister == nil {
		persister = session.NopPersister{}
	}
	if cfg.PersistTimeout <= 0 {
		cfg.PersistTimeout = 30 * time.Second
	}

	return &implUseCase{
		l:         l,
		llm:       llm,
		store:     store,
		persister: persister,
		portfolio: source,
		fallback:  chat.NewFallbackGenerator(),
		metrics:   m,
		cfg:       cfg,
	}
}
