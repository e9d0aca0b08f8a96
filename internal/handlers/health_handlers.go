package handlers

import (
	"context"
	"net/http"
	"time"

	"supplysight/internal/caching"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

// HealthHandlers handles health check and monitoring endpoints
type HealthHandlers struct {
	db       *pgxpool.Pool
	cacheSvc caching.CacheService
	started  time.Time
}

func NewHealthHandlers(db *pgxpool.Pool, cacheSvc caching.CacheService) *HealthHandlers {
	return &HealthHandlers{
		db:       db,
		cacheSvc: cacheSvc,
		started:  time.Now(),
	}
}

// HealthStatus represents the overall health status
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
	Uptime    string            `json:"uptime"`
}

// HealthCheck handles GET /health
func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	status := HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services:  map[string]string{},
		Uptime:    time.Since(h.started).String(),
	}

	if err := h.db.Ping(ctx); err != nil {
		status.Status = "degraded"
		status.Services["postgres"] = "unreachable"
	} else {
		status.Services["postgres"] = "ok"
	}

	if err := h.cacheSvc.Ping(ctx); err != nil {
		status.Status = "degraded"
		status.Services["redis"] = "unreachable"
	} else {
		status.Services["redis"] = "ok"
	}

	code := http.StatusOK
	if status.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, status)
}

// ReadinessCheck handles GET /health/ready. Ready means the database is
// reachable; the cache degrades gracefully so it does not gate readiness.
func (h *HealthHandlers) ReadinessCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
