// ABOUTME: Health handler for the Huma API
// ABOUTME: Re-probes the cache per request and reports per-dependency results

package handlers

import (
	"context"
	"net/http"
	"time"

	"timetable-app-api/api/dto/responses"
	"timetable-app-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// healthProbeTimeout bounds the per-request cache ping.
const healthProbeTimeout = 5 * time.Second

// HealthHandler reports service and dependency health
type HealthHandler struct {
	cache   interfaces.Cache
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cache interfaces.Cache, version string) *HealthHandler {
	return &HealthHandler{
		cache:   cache,
		version: version,
	}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getHealth",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Service health",
		Description: "Probes the cache dependency and reports overall health",
		Tags:        []string{"Health"},
	}, h.GetHealth)
}

// GetHealthOutput defines the output for the GetHealth operation
type GetHealthOutput struct {
	Status int
	Body   responses.HealthResponse
}

// GetHealth handles health checks
func (h *HealthHandler) GetHealth(ctx context.Context, _ *struct{}) (*GetHealthOutput, error) {
	checks := make(map[string]string)
	status := "healthy"
	code := http.StatusOK

	probeCtx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()

	if err := h.cache.Ping(probeCtx); err != nil {
		checks["cache"] = err.Error()
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	} else {
		checks["cache"] = "ok"
	}

	return &GetHealthOutput{
		Status: code,
		Body: responses.HealthResponse{
			Status:    status,
			Version:   h.version,
			Checks:    checks,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}
