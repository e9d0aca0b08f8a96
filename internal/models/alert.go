package models

import (
	"time"

	"github.com/google/uuid"
)

// Alert types raised by the predictive alert job.
const (
	AlertTypeCriticalStock = "critical_stock"
	AlertTypeLowStock      = "low_stock"
)

type Alert struct {
	ID                uuid.UUID `json:"id" db:"id"`
	Type              string    `json:"type" db:"type"`
	Severity          string    `json:"severity" db:"severity"`
	Title             string    `json:"title" db:"title"`
	Message           string    `json:"message" db:"message"`
	ActionRecommended string    `json:"action_recommended" db:"action_recommended"`
	ProductID         uuid.UUID `json:"product_id" db:"product_id"`
	SKU               string    `json:"sku" db:"sku"`
	IsResolved        bool      `json:"is_resolved" db:"is_resolved"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}
