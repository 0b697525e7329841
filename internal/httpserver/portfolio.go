package httpserver

import (
	"github.com/gin-gonic/gin"

	"portfolio-chatbot/internal/portfolio"
	"portfolio-chatbot/pkg/response"
)

// getPortfolio dumps the loaded portfolio record.
// @Summary Portfolio record
// @Description Returns the portfolio data the assistant answers from
// @Tags Portfolio
// @Produce json
// @Success 200 {object} model.Portfolio
// @Failure 503 {object} response.ErrorResp "Portfolio not loaded"
// @Router /portfolio [get]
func (srv *HTTPServer) getPortfolio(c *gin.Context) {
	p, loaded := srv.portfolio.Get()
	if !loaded {
		response.ServiceUnavailable(c, portfolio.ErrNotLoaded)
		return
	}
	response.OK(c, p)
}

// reloadPortfolio re-reads the portfolio file. On failure the previous record stays active.
// @Summary Reload portfolio
// @Description Re-reads the portfolio file from disk
// @Tags Portfolio
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} response.ErrorResp "Reload failed; previous record kept"
// @Router /portfolio/reload [post]
func (srv *HTTPServer) reloadPortfolio(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.portfolio.Reload(ctx); err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.reloadPortfolio: %v", err)
		response.InternalError(c, err)
		return
	}

	p, _ := srv.portfolio.Get()
	response.OK(c, gin.H{"status": "reloaded", "name": p.Name})
}
