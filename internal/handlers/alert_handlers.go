package handlers

import (
	"net/http"

	"supplysight/internal/jobs"
	"supplysight/internal/services"

	"github.com/labstack/echo/v4"
)

// AlertHandlers handles HTTP requests for stock alerts
type AlertHandlers struct {
	alertService services.AlertService
	alertJob     *jobs.PredictiveAlertService
}

func NewAlertHandlers(alertService services.AlertService, alertJob *jobs.PredictiveAlertService) *AlertHandlers {
	return &AlertHandlers{
		alertService: alertService,
		alertJob:     alertJob,
	}
}

// ListAlerts handles GET /alerts
func (h *AlertHandlers) ListAlerts(c echo.Context) error {
	limit, offset := parsePagination(c)
	unresolvedOnly := c.QueryParam("unresolved") == "true"

	alerts, err := h.alertService.List(c.Request().Context(), unresolvedOnly, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list alerts")
	}
	return c.JSON(http.StatusOK, alerts)
}

// ResolveAlert handles POST /alerts/:id/resolve
func (h *AlertHandlers) ResolveAlert(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}

	if err := h.alertService.Resolve(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Alert not found")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "resolved"})
}

// GenerateAlerts handles POST /alerts/generate
func (h *AlertHandlers) GenerateAlerts(c echo.Context) error {
	created, err := h.alertJob.GenerateAlerts(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Alert generation failed")
	}
	return c.JSON(http.StatusOK, map[string]int{"alerts_created": created})
}
