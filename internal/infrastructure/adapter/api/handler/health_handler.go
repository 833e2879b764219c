package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/i18n"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/api/middleware"
)

// Pinger is a dependency checked by the health endpoint
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports whether the datastore and session store are reachable
type HealthHandler struct {
	checks  map[string]Pinger
	timeout time.Duration
	logger  coreport.Logger
}

// NewHealthHandler creates a health handler over the named dependencies
func NewHealthHandler(checks map[string]Pinger, timeout time.Duration, logger coreport.Logger) *HealthHandler {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &HealthHandler{checks: checks, timeout: timeout, logger: logger}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	status := make(map[string]string, len(h.checks))
	healthy := true
	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			healthy = false
			status[name] = "down"
			h.logger.Warn("Health check failed", map[string]any{
				"dependency": name,
				"error":      err.Error(),
			})
			continue
		}
		status[name] = "up"
	}

	lang := middleware.Language(c)
	if !healthy {
		resp := dto.Fail(domainerr.CodeTransientStore, i18n.Message(lang, i18n.Unhealthy))
		resp.Data = status
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, dto.OK(i18n.Message(lang, i18n.Healthy), status))
}
