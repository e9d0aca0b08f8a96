package handlers

import (
	"errors"
	"net/http"
	"strings"

	"supplysight/internal/engine"
	"supplysight/internal/services"

	"github.com/labstack/echo/v4"
)

// ScenarioHandlers handles HTTP requests for what-if simulations
type ScenarioHandlers struct {
	scenarioService services.ScenarioService
}

func NewScenarioHandlers(scenarioService services.ScenarioService) *ScenarioHandlers {
	return &ScenarioHandlers{scenarioService: scenarioService}
}

// SimulateScenario handles POST /scenarios/simulate
func (h *ScenarioHandlers) SimulateScenario(c echo.Context) error {
	var req struct {
		Type       string         `json:"type"`
		Parameters map[string]any `json:"parameters"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if strings.TrimSpace(req.Type) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Scenario type is required")
	}

	result, err := h.scenarioService.Simulate(c.Request().Context(), req.Type, req.Parameters)
	if err != nil {
		if errors.Is(err, engine.ErrUnknownScenario) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Scenario simulation failed")
	}
	return c.JSON(http.StatusOK, result)
}
