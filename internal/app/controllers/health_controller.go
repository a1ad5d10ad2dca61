package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/pkg/logger"
)

// HealthController reports whether the API and its store are reachable
type HealthController struct {
	driver string
	ping   func(ctx context.Context) error
}

// NewHealthController creates a new HealthController. A nil ping always reports healthy.
func NewHealthController(driver string, ping func(ctx context.Context) error) *HealthController {
	return &HealthController{driver: driver, ping: ping}
}

// Health answers 200 when the store responds to a ping and 503 otherwise
func (c *HealthController) Health(ctx *gin.Context) {
	resp := dto.HealthResponse{Status: "ok", Database: c.driver}

	if c.ping != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()
		if err := c.ping(pingCtx); err != nil {
			logger.Warn().Err(err).Str("driver", c.driver).Msg("Health check ping failed")
			resp.Status = "unavailable"
			ctx.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}

	ctx.JSON(http.StatusOK, resp)
}
