package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-chatbot/internal/chat"
	"portfolio-chatbot/internal/metrics"
	"portfolio-chatbot/internal/middleware"
	"portfolio-chatbot/internal/portfolio"
	"portfolio-chatbot/internal/session"
	"portfolio-chatbot/pkg/log"
)

// PortfolioStore is the portfolio access the server needs.
type PortfolioStore interface {
	portfolio.Source
	portfolio.Reloader
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	startedAt       time.Time

	// Chat domain
	chatUC         chat.UseCase
	sessions       session.Store
	portfolio      PortfolioStore
	mw             middleware.Middleware
	metrics        *metrics.Metrics
	exposeSessions bool

	// Reported by /health
	apiConfigured bool
	model         string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// Chat domain
	ChatUseCase    chat.UseCase
	Sessions       session.Store
	Portfolio      PortfolioStore
	Middleware     middleware.Middleware
	Metrics        *metrics.Metrics
	ExposeSessions bool

	APIConfigured bool
	Model         string
}

// New creates a new HTTPServer instance with all routes registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		startedAt:       time.Now(),
		chatUC:          cfg.ChatUseCase,
		sessions:        cfg.Sessions,
		portfolio:       cfg.Portfolio,
		mw:              cfg.Middleware,
		metrics:         cfg.Metrics,
		exposeSessions:  cfg.ExposeSessions,
		apiConfigured:   cfg.APIConfigured,
		model:           cfg.Model,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}
	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	if srv.sessions == nil {
		return errors.New("session store is required")
	}
	if srv.portfolio == nil {
		return errors.New("portfolio store is required")
	}
	return nil
}
