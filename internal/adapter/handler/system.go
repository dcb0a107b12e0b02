package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/interview-coach/internal/adapter/dto/common"
	"github.com/johnquangdev/interview-coach/pkg/config"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck probes one backing component
type HealthCheck func(ctx context.Context) error

// System serves liveness and configuration endpoints
type System struct {
	cfg    *config.Config
	checks map[string]HealthCheck
	logger *zap.Logger
}

// NewSystemHandler creates a system handler. A nil check marks the component as disabled.
func NewSystemHandler(cfg *config.Config, checks map[string]HealthCheck, logger *zap.Logger) *System {
	return &System{cfg: cfg, checks: checks, logger: logger}
}

// Health handles GET /health
// @Summary      Health check
// @Description  Reports liveness and the state of optional backing components
// @Tags         System
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Router       /health [get]
func (h *System) Health(c echo.Context) error {
	resp := common.HealthResponse{
		Status:      "ok",
		Environment: h.cfg.Server.Environment,
	}

	if len(h.checks) > 0 {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		defer cancel()

		names := make([]string, 0, len(h.checks))
		for name := range h.checks {
			names = append(names, name)
		}
		sort.Strings(names)

		resp.Components = make(map[string]string, len(names))
		for _, name := range names {
			check := h.checks[name]
			switch {
			case check == nil:
				resp.Components[name] = "disabled"
			default:
				if err := check(ctx); err != nil {
					resp.Components[name] = "unavailable"
					if h.logger != nil {
						h.logger.Warn("⚠️ Health check failed", zap.String("component", name), zap.Error(err))
					}
				} else {
					resp.Components[name] = "ok"
				}
			}
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// Config handles GET /config
// @Summary      Configuration snapshot
// @Description  Returns the active configuration without credentials
// @Tags         System
// @Produce      json
// @Success      200  {object}  config.Snapshot
// @Router       /config [get]
func (h *System) Config(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cfg.Snapshot())
}
