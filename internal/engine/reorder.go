package engine

import (
	"fmt"
	"math"

	"supplysight/internal/models"

	"github.com/google/uuid"
)

// Urgency levels for reorder suggestions, derived from days of stock remaining.
const (
	UrgencyHigh   = "high"
	UrgencyMedium = "medium"
	UrgencyLow    = "low"
)

// Days-of-stock thresholds for urgency classification.
const (
	highUrgencyDays   = 7
	mediumUrgencyDays = 14
)

// ReorderSuggestion is an ephemeral advisory record, recomputed on every run
// and never persisted by the engine.
type ReorderSuggestion struct {
	Product           *models.Product `json:"product"`
	CurrentStock      int             `json:"current_stock"`
	ForecastedDemand  int             `json:"forecasted_demand"`
	SuggestedOrderQty int             `json:"suggested_order_qty"`
	Urgency           string          `json:"urgency"`
	Reasoning         string          `json:"reasoning"`
}

// ReorderSuggestions joins inventory, catalog, and prior forecasts into
// urgency-classified reorder suggestions. Missing inventory defaults to zero
// available stock; a missing forecast defaults demand and order quantity to
// the product's reorder point. Low-urgency products are dropped from the
// result. Output follows product input order; callers wanting priority order
// sort it themselves.
func ReorderSuggestions(inventories []*models.Inventory, products []*models.Product, forecasts []*models.DemandForecast) []ReorderSuggestion {
	invByProduct := make(map[uuid.UUID]*models.Inventory, len(inventories))
	for _, inv := range inventories {
		if _, seen := invByProduct[inv.ProductID]; !seen {
			invByProduct[inv.ProductID] = inv
		}
	}

	forecastByProduct := make(map[uuid.UUID]*models.DemandForecast, len(forecasts))
	for _, f := range forecasts {
		if _, seen := forecastByProduct[f.ProductID]; !seen {
			forecastByProduct[f.ProductID] = f
		}
	}

	suggestions := make([]ReorderSuggestion, 0, len(products))

	for _, product := range products {
		available := 0
		if inv, ok := invByProduct[product.ID]; ok {
			available = inv.AvailableQuantity
		}

		predicted := product.ReorderPoint
		suggested := product.ReorderPoint
		if f, ok := forecastByProduct[product.ID]; ok {
			predicted = f.PredictedDemand
			suggested = f.RecommendedOrderQty
		}

		// Zero forecast demand means the stock never runs out on paper, so
		// the product can never be urgent.
		daysOfStock := math.Inf(1)
		if predicted > 0 {
			daysOfStock = float64(available) / (float64(predicted) / float64(DefaultHorizonDays))
		}

		urgency := UrgencyLow
		switch {
		case daysOfStock < highUrgencyDays:
			urgency = UrgencyHigh
		case daysOfStock < mediumUrgencyDays:
			urgency = UrgencyMedium
		}

		if urgency == UrgencyLow {
			continue
		}

		reasoning := fmt.Sprintf("%d days of stock remaining.", int(math.Round(daysOfStock)))
		if urgency == UrgencyHigh {
			reasoning += " Immediate action required."
		}

		suggestions = append(suggestions, ReorderSuggestion{
			Product:           product,
			CurrentStock:      available,
			ForecastedDemand:  predicted,
			SuggestedOrderQty: suggested,
			Urgency:           urgency,
			Reasoning:         reasoning,
		})
	}

	return suggestions
}
