package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-chatbot/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "portfolio-chatbot"
)

type healthResp struct {
	Status          string `json:"status"`
	APIConfigured   bool   `json:"api_configured"`
	Model           string `json:"model"`
	Sessions        int    `json:"sessions"`
	Messages        int    `json:"messages"`
	PortfolioLoaded bool   `json:"portfolio_loaded"`
	UptimeSeconds   int64  `json:"uptime_seconds"`
	Version         string `json:"version"`
	Service         string `json:"service"`
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Liveness plus a configuration snapshot: API key presence, model, session and message counts, uptime.
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	stats := srv.sessions.Stats()
	_, loaded := srv.portfolio.Get()

	response.OK(c, healthResp{
		Status:          "healthy",
		APIConfigured:   srv.apiConfigured,
		Model:           srv.model,
		Sessions:        stats.Sessions,
		Messages:        stats.Turns,
		PortfolioLoaded: loaded,
		UptimeSeconds:   int64(time.Since(srv.startedAt).Seconds()),
		Version:         HealthVersion,
		Service:         ServiceName,
	})
}

// readyCheck reports ready once a portfolio is loaded.
// @Summary Readiness Check
// @Description Ready when the portfolio record is loaded
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.ErrorResp "Portfolio not loaded"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if _, loaded := srv.portfolio.Get(); !loaded {
		c.JSON(http.StatusServiceUnavailable, response.ErrorResp{Error: "portfolio not loaded"})
		return
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
