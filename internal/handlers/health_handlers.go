package handlers

import (
	"context"
	"net/http"
	"time"

	"stonestore/internal/assets"
	"stonestore/internal/caching"

	"github.com/labstack/echo/v4"
)

// Pinger is anything that can report its own reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlers handles liveness and readiness probes
type HealthHandlers struct {
	db    Pinger
	cache caching.CacheService
	media assets.MediaStore
}

func NewHealthHandlers(db Pinger, cache caching.CacheService, media assets.MediaStore) *HealthHandlers {
	return &HealthHandlers{db: db, cache: cache, media: media}
}

// ReadinessStatus reports each dependency as "healthy", "unhealthy" or "disabled".
type ReadinessStatus struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// Health is the plain liveness probe.
func (h *HealthHandlers) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Readiness pings the database and the optional cache and media store. Only
// the database is required; the others degrade the status.
func (h *HealthHandlers) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	status := &ReadinessStatus{
		Status:    "ready",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services:  make(map[string]string),
	}

	if h.db == nil || h.db.Ping(ctx) != nil {
		status.Services["database"] = "unhealthy"
		status.Status = "not_ready"
	} else {
		status.Services["database"] = "healthy"
	}

	status.Services["cache"] = check(ctx, h.cache)
	status.Services["storage"] = check(ctx, h.media)
	if status.Status == "ready" && (status.Services["cache"] == "unhealthy" || status.Services["storage"] == "unhealthy") {
		status.Status = "degraded"
	}

	code := http.StatusOK
	if status.Status == "not_ready" {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, status)
}

func check(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return "unhealthy"
	}
	return "healthy"
}
