package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"supplysight/internal/models"
	"supplysight/internal/services"

	"github.com/labstack/echo/v4"
)

// ProductHandlers handles HTTP requests for the product catalog
type ProductHandlers struct {
	productService services.ProductService
}

func NewProductHandlers(productService services.ProductService) *ProductHandlers {
	return &ProductHandlers{productService: productService}
}

type productRequest struct {
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	UnitCost     float64 `json:"unit_cost"`
	LeadTimeDays int     `json:"lead_time_days"`
	ReorderPoint int     `json:"reorder_point"`
	SafetyStock  int     `json:"safety_stock"`
}

func (r *productRequest) validate() error {
	if strings.TrimSpace(r.SKU) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Product SKU is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Product name is required")
	}
	if r.UnitCost < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Unit cost cannot be negative")
	}
	if r.ReorderPoint < 0 || r.SafetyStock < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Reorder point and safety stock cannot be negative")
	}
	if r.LeadTimeDays < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Lead time cannot be negative")
	}
	return nil
}

// CreateProduct handles POST /products
func (h *ProductHandlers) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := req.validate(); err != nil {
		return err
	}

	product := &models.Product{
		SKU:          req.SKU,
		Name:         req.Name,
		Category:     req.Category,
		UnitCost:     req.UnitCost,
		LeadTimeDays: req.LeadTimeDays,
		ReorderPoint: req.ReorderPoint,
		SafetyStock:  req.SafetyStock,
	}

	if err := h.productService.Create(ctx, product); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, product)
}

// GetProduct handles GET /products/:id
func (h *ProductHandlers) GetProduct(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}

	product, err := h.productService.GetByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Product not found")
	}
	return c.JSON(http.StatusOK, product)
}

// UpdateProduct handles PUT /products/:id
func (h *ProductHandlers) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := req.validate(); err != nil {
		return err
	}

	product, err := h.productService.GetByID(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Product not found")
	}

	product.SKU = req.SKU
	product.Name = req.Name
	product.Category = req.Category
	product.UnitCost = req.UnitCost
	product.LeadTimeDays = req.LeadTimeDays
	product.ReorderPoint = req.ReorderPoint
	product.SafetyStock = req.SafetyStock

	if err := h.productService.Update(ctx, product); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update product")
	}
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/:id
func (h *ProductHandlers) DeleteProduct(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}

	if err := h.productService.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete product")
	}
	return c.NoContent(http.StatusNoContent)
}

// SearchProducts handles GET /products/search
func (h *ProductHandlers) SearchProducts(c echo.Context) error {
	filter := &models.ProductSearchFilter{
		Query:     c.QueryParam("q"),
		SortBy:    c.QueryParam("sort_by"),
		SortOrder: c.QueryParam("sort_order"),
	}
	if v := c.QueryParam("category"); v != "" {
		filter.Category = &v
	}
	if v := c.QueryParam("min_unit_cost"); v != "" {
		cost, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid min_unit_cost")
		}
		filter.MinUnitCost = &cost
	}
	if v := c.QueryParam("max_unit_cost"); v != "" {
		cost, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid max_unit_cost")
		}
		filter.MaxUnitCost = &cost
	}
	filter.Limit, filter.Offset = parsePagination(c)

	products, err := h.productService.Search(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, products)
}

// ListProducts handles GET /products
func (h *ProductHandlers) ListProducts(c echo.Context) error {
	limit, offset := parsePagination(c)

	products, err := h.productService.List(c.Request().Context(), limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list products")
	}
	return c.JSON(http.StatusOK, products)
}
