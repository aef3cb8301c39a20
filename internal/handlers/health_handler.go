package handlers

import (
	"context"
	"net/http"
	"time"

	"finance-dashboard/internal/apiclient"

	"github.com/labstack/echo/v4"
)

const healthProbeTimeout = 2 * time.Second

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	api apiclient.Client
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(api apiclient.Client) *HealthCheckHandler {
	return &HealthCheckHandler{api: api}
}

// HealthCheck reports process health plus upstream API reachability.
// An unreachable upstream degrades the report but does not fail it;
// the dashboard itself is still serving.
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthProbeTimeout)
	defer cancel()

	upstream := "reachable"
	if _, err := h.api.ListCategories(ctx); err != nil {
		upstream = "unreachable"
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":   "healthy",
		"upstream": upstream,
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}
