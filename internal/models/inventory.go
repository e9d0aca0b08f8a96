package models

import (
	"time"

	"github.com/google/uuid"
)

// InventorySearchFilter holds search and filter criteria for inventory queries
type InventorySearchFilter struct {
	WarehouseID    *uuid.UUID `json:"warehouse_id,omitempty"`    // Warehouse filter
	ProductID      *uuid.UUID `json:"product_id,omitempty"`      // Product filter
	MinAvailable   *int       `json:"min_available,omitempty"`   // Minimum available quantity
	MaxAvailable   *int       `json:"max_available,omitempty"`   // Maximum available quantity
	StockThreshold *int       `json:"stock_threshold,omitempty"` // Available <= threshold (low stock queries)
	SortBy         string     `json:"sort_by,omitempty"`         // Sort field: available_quantity, last_updated
	SortOrder      string     `json:"sort_order,omitempty"`      // Sort order: asc, desc
	Limit          int        `json:"limit,omitempty"`           // Page size (default: 50)
	Offset         int        `json:"offset,omitempty"`          // Page offset
}

// Inventory is a point-in-time stock snapshot for one product in one warehouse.
// AvailableQuantity is expected to equal Quantity - ReservedQuantity; the engine
// reads it as-is and never validates or mutates it.
type Inventory struct {
	ID                uuid.UUID `json:"id" db:"id"`
	WarehouseID       uuid.UUID `json:"warehouse_id" db:"warehouse_id"`
	ProductID         uuid.UUID `json:"product_id" db:"product_id"`
	Quantity          int       `json:"quantity" db:"quantity"`
	ReservedQuantity  int       `json:"reserved_quantity" db:"reserved_quantity"`
	AvailableQuantity int       `json:"available_quantity" db:"available_quantity"`
	LastUpdated       time.Time `json:"last_updated" db:"last_updated"`
}
