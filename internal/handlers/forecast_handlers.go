package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"supplysight/internal/engine"
	"supplysight/internal/services"

	"github.com/labstack/echo/v4"
)

// ForecastHandlers handles HTTP requests for demand forecasts
type ForecastHandlers struct {
	forecastService services.ForecastService
}

func NewForecastHandlers(forecastService services.ForecastService) *ForecastHandlers {
	return &ForecastHandlers{forecastService: forecastService}
}

// GenerateForecasts handles POST /forecasts/generate
func (h *ForecastHandlers) GenerateForecasts(c echo.Context) error {
	ctx := c.Request().Context()

	// Optional product_id restricts the run to one product
	if productIDStr := c.QueryParam("product_id"); productIDStr != "" {
		productID, err := parseUUID(productIDStr)
		if err != nil {
			return err
		}
		forecasts, err := h.forecastService.GenerateForProduct(ctx, productID)
		if err != nil {
			if errors.Is(err, engine.ErrInvalidInput) {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "Forecast generation failed")
		}
		return c.JSON(http.StatusOK, forecasts)
	}

	forecasted, err := h.forecastService.GenerateAll(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Forecast generation failed")
	}
	return c.JSON(http.StatusOK, map[string]int{"products_forecasted": forecasted})
}

// ListForecasts handles GET /forecasts
func (h *ForecastHandlers) ListForecasts(c echo.Context) error {
	ctx := c.Request().Context()

	if productIDStr := c.QueryParam("product_id"); productIDStr != "" {
		productID, err := parseUUID(productIDStr)
		if err != nil {
			return err
		}
		limit := 0
		if v := c.QueryParam("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}
		forecasts, err := h.forecastService.ListByProduct(ctx, productID, limit)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list forecasts")
		}
		return c.JSON(http.StatusOK, forecasts)
	}

	limit, offset := parsePagination(c)
	forecasts, err := h.forecastService.ListUpcoming(ctx, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list forecasts")
	}
	return c.JSON(http.StatusOK, forecasts)
}

// LatestForecasts handles GET /forecasts/latest
func (h *ForecastHandlers) LatestForecasts(c echo.Context) error {
	forecasts, err := h.forecastService.LatestPerProduct(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list forecasts")
	}
	return c.JSON(http.StatusOK, forecasts)
}
