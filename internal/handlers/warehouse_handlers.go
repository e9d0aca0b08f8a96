package handlers

import (
	"net/http"
	"strings"

	"supplysight/internal/models"
	"supplysight/internal/services"

	"github.com/labstack/echo/v4"
)

// WarehouseHandlers handles HTTP requests for warehouses
type WarehouseHandlers struct {
	warehouseService services.WarehouseService
}

func NewWarehouseHandlers(warehouseService services.WarehouseService) *WarehouseHandlers {
	return &WarehouseHandlers{warehouseService: warehouseService}
}

type warehouseRequest struct {
	Name     string  `json:"name"`
	Location *string `json:"location"`
}

// CreateWarehouse handles POST /warehouses
func (h *WarehouseHandlers) CreateWarehouse(c echo.Context) error {
	var req warehouseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if strings.TrimSpace(req.Name) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Warehouse name is required")
	}

	warehouse := &models.Warehouse{
		Name:     req.Name,
		Location: req.Location,
	}
	if err := h.warehouseService.Create(c.Request().Context(), warehouse); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, warehouse)
}

// GetWarehouse handles GET /warehouses/:id
func (h *WarehouseHandlers) GetWarehouse(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}

	warehouse, err := h.warehouseService.GetByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Warehouse not found")
	}
	return c.JSON(http.StatusOK, warehouse)
}

// UpdateWarehouse handles PUT /warehouses/:id
func (h *WarehouseHandlers) UpdateWarehouse(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}

	var req warehouseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if strings.TrimSpace(req.Name) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Warehouse name is required")
	}

	warehouse, err := h.warehouseService.GetByID(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Warehouse not found")
	}

	warehouse.Name = req.Name
	warehouse.Location = req.Location

	if err := h.warehouseService.Update(ctx, warehouse); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update warehouse")
	}
	return c.JSON(http.StatusOK, warehouse)
}

// DeleteWarehouse handles DELETE /warehouses/:id
func (h *WarehouseHandlers) DeleteWarehouse(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}

	if err := h.warehouseService.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete warehouse")
	}
	return c.NoContent(http.StatusNoContent)
}

// ListWarehouses handles GET /warehouses
func (h *WarehouseHandlers) ListWarehouses(c echo.Context) error {
	limit, offset := parsePagination(c)

	warehouses, err := h.warehouseService.List(c.Request().Context(), limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list warehouses")
	}
	return c.JSON(http.StatusOK, warehouses)
}
