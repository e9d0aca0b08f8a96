package models

import (
	"time"

	"github.com/google/uuid"
)

// DemandForecast is one persisted forecast row: a product's predicted daily
// demand for a single future date. Generation runs write one row per product
// per day for the forecast horizon; rows are upserted on (product_id, forecast_date).
type DemandForecast struct {
	ID                  uuid.UUID `json:"id" db:"id"`
	ProductID           uuid.UUID `json:"product_id" db:"product_id"`
	ForecastDate        time.Time `json:"forecast_date" db:"forecast_date"`
	PredictedDemand     int       `json:"predicted_demand" db:"predicted_demand"`
	ConfidenceScore     int       `json:"confidence_score" db:"confidence_score"`
	RecommendedOrderQty int       `json:"recommended_order_qty" db:"recommended_order_qty"`
	SeasonalityFactor   float64   `json:"seasonality_factor" db:"seasonality_factor"`
	Reasoning           string    `json:"reasoning" db:"reasoning"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
}
