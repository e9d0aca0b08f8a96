package handlers

import (
	"net/http"
	"strconv"

	"supplysight/internal/models"
	"supplysight/internal/services"

	"github.com/labstack/echo/v4"
)

// InventoryHandlers handles HTTP requests for inventory snapshots
type InventoryHandlers struct {
	inventoryService services.InventoryService
}

func NewInventoryHandlers(inventoryService services.InventoryService) *InventoryHandlers {
	return &InventoryHandlers{inventoryService: inventoryService}
}

type inventoryRequest struct {
	WarehouseID      string `json:"warehouse_id"`
	ProductID        string `json:"product_id"`
	Quantity         int    `json:"quantity"`
	ReservedQuantity int    `json:"reserved_quantity"`
}

// CreateInventory handles POST /inventory
func (h *InventoryHandlers) CreateInventory(c echo.Context) error {
	var req inventoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	warehouseID, err := parseUUID(req.WarehouseID)
	if err != nil {
		return err
	}
	productID, err := parseUUID(req.ProductID)
	if err != nil {
		return err
	}

	inventory := &models.Inventory{
		WarehouseID:      warehouseID,
		ProductID:        productID,
		Quantity:         req.Quantity,
		ReservedQuantity: req.ReservedQuantity,
	}
	if err := h.inventoryService.Create(c.Request().Context(), inventory); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, inventory)
}

// GetInventory handles GET /inventory/:id
func (h *InventoryHandlers) GetInventory(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}

	inventory, err := h.inventoryService.GetByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Inventory record not found")
	}
	return c.JSON(http.StatusOK, inventory)
}

// UpdateInventory handles PUT /inventory/:id
func (h *InventoryHandlers) UpdateInventory(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}

	var req struct {
		Quantity         int `json:"quantity"`
		ReservedQuantity int `json:"reserved_quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	inventory, err := h.inventoryService.GetByID(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Inventory record not found")
	}

	inventory.Quantity = req.Quantity
	inventory.ReservedQuantity = req.ReservedQuantity

	if err := h.inventoryService.Update(ctx, inventory); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, inventory)
}

// DeleteInventory handles DELETE /inventory/:id
func (h *InventoryHandlers) DeleteInventory(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}

	if err := h.inventoryService.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete inventory record")
	}
	return c.NoContent(http.StatusNoContent)
}

// ListInventory handles GET /inventory
func (h *InventoryHandlers) ListInventory(c echo.Context) error {
	limit, offset := parsePagination(c)

	inventories, err := h.inventoryService.List(c.Request().Context(), limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list inventory")
	}
	return c.JSON(http.StatusOK, inventories)
}

// AdjustStock handles POST /inventory/adjust
func (h *InventoryHandlers) AdjustStock(c echo.Context) error {
	var req struct {
		WarehouseID    string `json:"warehouse_id"`
		ProductID      string `json:"product_id"`
		QuantityChange int    `json:"quantity_change"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	warehouseID, err := parseUUID(req.WarehouseID)
	if err != nil {
		return err
	}
	productID, err := parseUUID(req.ProductID)
	if err != nil {
		return err
	}

	if err := h.inventoryService.AdjustStock(c.Request().Context(), warehouseID, productID, req.QuantityChange); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "adjusted"})
}

// SearchInventory handles POST /inventory/search
func (h *InventoryHandlers) SearchInventory(c echo.Context) error {
	filter := &models.InventorySearchFilter{}
	if err := c.Bind(filter); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	inventories, err := h.inventoryService.AdvancedSearch(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, inventories)
}

// LowStock handles GET /inventory/low-stock
func (h *InventoryHandlers) LowStock(c echo.Context) error {
	threshold := 10
	if v := c.QueryParam("threshold"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid threshold")
		}
		threshold = n
	}

	inventories, err := h.inventoryService.LowStock(c.Request().Context(), threshold)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list low stock")
	}
	return c.JSON(http.StatusOK, inventories)
}
