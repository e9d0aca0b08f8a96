package handlers

import (
	"net/http"

	"supplysight/internal/services"

	"github.com/labstack/echo/v4"
)

// ReorderHandlers handles HTTP requests for reorder suggestions
type ReorderHandlers struct {
	reorderService services.ReorderService
}

func NewReorderHandlers(reorderService services.ReorderService) *ReorderHandlers {
	return &ReorderHandlers{reorderService: reorderService}
}

// ListSuggestions handles GET /reorder-suggestions
func (h *ReorderHandlers) ListSuggestions(c echo.Context) error {
	suggestions, err := h.reorderService.Suggestions(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to compute reorder suggestions")
	}
	return c.JSON(http.StatusOK, suggestions)
}
