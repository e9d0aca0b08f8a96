package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// parseUUID validates a path or query parameter as a UUID.
func parseUUID(idStr string) (uuid.UUID, error) {
	idStr = strings.TrimSpace(idStr)
	if idStr == "" {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid UUID format: empty string")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid UUID format")
	}
	return id, nil
}

// parsePagination reads limit/offset query parameters with defaults.
func parsePagination(c echo.Context) (limit, offset int) {
	limit = 50
	offset = 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
