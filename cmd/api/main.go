package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-chatbot/config"
	_ "portfolio-chatbot/docs" // Swagger docs
	"portfolio-chatbot/internal/chat"
	chatUC "portfolio-chatbot/internal/chat/usecase"
	"portfolio-chatbot/internal/httpserver"
	"portfolio-chatbot/internal/metrics"
	"portfolio-chatbot/internal/middleware"
	"portfolio-chatbot/internal/portfolio"
	"portfolio-chatbot/internal/ratelimit"
	"portfolio-chatbot/internal/session"
	"portfolio-chatbot/pkg/llmprovider"
	"portfolio-chatbot/pkg/log"
)

// @title       Portfolio Chatbot API
// @description Portfolio assistant backed by a hosted chat-completion API, with keyword fallback replies.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Portfolio Chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Portfolio
	portfolioStore := portfolio.New(logger, cfg.Portfolio.Path)
	if err := portfolioStore.Reload(ctx); err != nil {
		logger.Warnf(ctx, "Portfolio not loaded (%v); replies will use generic text until it is", err)
	}
	if cfg.Portfolio.Watch {
		if err := portfolioStore.Watch(ctx); err != nil {
			logger.Warnf(ctx, "Portfolio watch disabled: %v", err)
		}
	}

	// 4. LLM providers
	var generator *llmprovider.Manager
	providers, err := llmprovider.InitializeProviders(cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "No LLM providers: %v", err)
	} else {
		generator = llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      cfg.LLM.RetryDelay,
			MaxTotalTimeout: cfg.LLM.MaxTotalTimeout,
			RequestsPerSec:  cfg.LLM.RequestsPerSec,
			Burst:           cfg.LLM.Burst,
		}, logger)
	}
	if !cfg.LLM.Configured() {
		logger.Warn(ctx, "OPENROUTER_API_KEY is not set: every reply will come from the fallback generator")
	}

	// 5. Sessions
	store := session.NewMemoryStore(cfg.History.MaxTurns)
	persister, closePersister, err := newPersister(ctx, cfg.Persistence)
	if err != nil {
		logger.Errorf(ctx, "Session persistence unavailable, continuing in memory only: %v", err)
		persister, closePersister = session.NopPersister{}, func() {}
	}
	defer closePersister()
	restoreSessions(ctx, logger, store, persister)

	// 6. Chat use case
	m := metrics.New()
	m.RegisterGauge("sessions", "Sessions held in memory", func() float64 { return float64(store.Stats().Sessions) })

	var gen chat.Generator
	if generator != nil {
		gen = generator
	}
	uc := chatUC.New(logger, gen, store, persister, portfolioStore, m, chatUC.Config{
		MaxTokens:        cfg.LLM.MaxTokens,
		Temperature:      cfg.LLM.Temperature,
		PresencePenalty:  cfg.LLM.PresencePenalty,
		FrequencyPenalty: cfg.LLM.FrequencyPenalty,
		EveryNMessages:   cfg.Persistence.EveryNMessages,
		IdleTTL:          cfg.History.IdleTTL,
	})

	// 7. HTTP Server
	limiter := ratelimit.New(ratelimit.Config{
		Window:      cfg.RateLimit.Window,
		MaxRequests: cfg.RateLimit.MaxRequests,
		MaxClients:  cfg.RateLimit.MaxClients,
	})

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		ChatUseCase:     uc,
		Sessions:        store,
		Portfolio:       portfolioStore,
		Middleware:      middleware.New(logger, limiter, m, cfg.HTTPServer.CORSOrigins),
		Metrics:         m,
		ExposeSessions:  cfg.Debug.ExposeSessions,
		APIConfigured:   cfg.LLM.Configured(),
		Model:           cfg.LLM.PrimaryModel(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Housekeeping: periodic flush and idle-session cleanup
	go runHousekeeping(ctx, logger, uc, cfg.Persistence.FlushInterval, cleanupInterval(cfg.History.IdleTTL))

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
	}

	// 10. Final flush
	flushCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := uc.Flush(flushCtx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf(flushCtx, "Final session flush failed: %v", err)
	} else {
		logger.Infof(flushCtx, "Sessions flushed (%d held)", store.Stats().Sessions)
	}

	logger.Info(flushCtx, "Server stopped gracefully")
}
