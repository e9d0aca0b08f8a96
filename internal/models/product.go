package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductSearchFilter holds search and filter criteria for product queries
type ProductSearchFilter struct {
	Query       string   `json:"query,omitempty"`         // Full-text search across name, SKU, category
	Category    *string  `json:"category,omitempty"`      // Filter by category
	MinUnitCost *float64 `json:"min_unit_cost,omitempty"` // Minimum unit cost
	MaxUnitCost *float64 `json:"max_unit_cost,omitempty"` // Maximum unit cost
	SortBy      string   `json:"sort_by,omitempty"`       // Sort field: name, sku, unit_cost, created_at
	SortOrder   string   `json:"sort_order,omitempty"`    // Sort order: asc, desc
	Limit       int      `json:"limit,omitempty"`         // Page size (default: 50)
	Offset      int      `json:"offset,omitempty"`        // Page offset
}

// Product carries the reorder parameters the forecasting engine consumes.
// SafetyStock is the buffer below which stock is critical; ReorderPoint is the
// level at which a new order should be triggered. SafetyStock < ReorderPoint is
// the intended configuration but is not enforced here.
type Product struct {
	ID           uuid.UUID `json:"id" db:"id"`
	SKU          string    `json:"sku" db:"sku"`
	Name         string    `json:"name" db:"name"`
	Category     string    `json:"category" db:"category"`
	UnitCost     float64   `json:"unit_cost" db:"unit_cost"`
	LeadTimeDays int       `json:"lead_time_days" db:"lead_time_days"`
	ReorderPoint int       `json:"reorder_point" db:"reorder_point"`
	SafetyStock  int       `json:"safety_stock" db:"safety_stock"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
