package engine

import (
	"fmt"

	"supplysight/internal/models"
)

// StockStatus classifies an inventory snapshot against a product's thresholds.
type StockStatus string

const (
	StockCritical StockStatus = "critical"
	StockWarning  StockStatus = "warning"
	StockHealthy  StockStatus = "healthy"
)

// StockAnalysis is the outcome of classifying one inventory snapshot.
type StockAnalysis struct {
	Status         StockStatus `json:"status"`
	Message        string      `json:"message"`
	Recommendation string      `json:"recommendation"`
}

// AnalyzeStockLevel classifies a snapshot with a fixed decision table, first
// match wins. Critical (at or below safety stock) is checked before overstock,
// so a degenerate product with reorder point near zero resolves as critical.
func AnalyzeStockLevel(inv *models.Inventory, product *models.Product) StockAnalysis {
	available := inv.AvailableQuantity
	reorderPoint := product.ReorderPoint
	safetyStock := product.SafetyStock

	if available <= safetyStock {
		return StockAnalysis{
			Status:         StockCritical,
			Message:        fmt.Sprintf("Critical low stock: %d units (Safety: %d)", available, safetyStock),
			Recommendation: fmt.Sprintf("Expedite emergency order for %d units", reorderPoint*2),
		}
	}

	if available <= reorderPoint {
		return StockAnalysis{
			Status:         StockWarning,
			Message:        fmt.Sprintf("Below reorder point: %d units", available),
			Recommendation: fmt.Sprintf("Place regular order for %d units", reorderPoint),
		}
	}

	if available > reorderPoint*3 {
		return StockAnalysis{
			Status:         StockWarning,
			Message:        fmt.Sprintf("Overstock detected: %d units", available),
			Recommendation: "Consider redistribution or promotional pricing",
		}
	}

	return StockAnalysis{
		Status:         StockHealthy,
		Message:        fmt.Sprintf("Stock level optimal: %d units", available),
		Recommendation: "Continue monitoring",
	}
}
