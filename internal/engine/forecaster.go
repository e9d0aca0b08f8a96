package engine

import (
	"fmt"
	"math"
	"strings"

	"supplysight/internal/models"

	"github.com/google/uuid"
)

// DefaultHorizonDays is the nominal forecast horizon.
const DefaultHorizonDays = 30

// Confidence score bounds and baseline. The score is a bounded heuristic proxy
// for forecast reliability, derived from historical variance.
const (
	confidenceBase = 85.0
	confidenceMin  = 60.0
	confidenceMax  = 95.0
)

// ForecastResult is the outcome of one forecast computation. Created fresh per
// call and never mutated afterwards.
type ForecastResult struct {
	ProductID           uuid.UUID `json:"product_id"`
	PredictedDemand     int       `json:"predicted_demand"`
	ConfidenceScore     int       `json:"confidence_score"`
	RecommendedOrderQty int       `json:"recommended_order_qty"`
	SeasonalityFactor   float64   `json:"seasonality_factor"`
	Reasoning           string    `json:"reasoning"`
}

// Forecast predicts demand daysAhead days out from a product's historical
// daily demand series. The series must be non-empty with a non-zero mean and
// long enough for the trend window; violations return ErrInvalidInput before
// any arithmetic runs.
func Forecast(product *models.Product, historical []float64, daysAhead int) (*ForecastResult, error) {
	if product == nil {
		return nil, fmt.Errorf("%w: product is required", ErrInvalidInput)
	}
	if len(historical) == 0 {
		return nil, fmt.Errorf("%w: historical series is empty", ErrInvalidInput)
	}
	if daysAhead <= 0 {
		daysAhead = DefaultHorizonDays
	}

	avgDemand := mean(historical)

	trend, err := Trend(historical)
	if err != nil {
		return nil, err
	}

	seasonality := Seasonality(daysAhead)

	// A strongly negative trend can push the projection below zero, which is
	// not meaningful demand.
	predicted := math.Round(avgDemand * (1 + trend) * seasonality)
	if predicted < 0 {
		predicted = 0
	}

	cv, err := CoefficientOfVariation(historical)
	if err != nil {
		return nil, err
	}

	confidence := confidenceBase - cv*10
	if confidence < confidenceMin {
		confidence = confidenceMin
	}
	if confidence > confidenceMax {
		confidence = confidenceMax
	}

	recommended := int(predicted) + product.SafetyStock
	if recommended < product.ReorderPoint {
		recommended = product.ReorderPoint
	}

	return &ForecastResult{
		ProductID:           product.ID,
		PredictedDemand:     int(predicted),
		ConfidenceScore:     int(math.Round(confidence)),
		RecommendedOrderQty: recommended,
		SeasonalityFactor:   seasonality,
		Reasoning:           buildReasoning(trend, seasonality, cv),
	}, nil
}

// buildReasoning assembles the rule-based narrative: a trend bucket, an
// optional seasonal note, and a variance bucket.
func buildReasoning(trend, seasonality, cv float64) string {
	var parts []string

	switch {
	case trend > 0.1:
		parts = append(parts, "Strong upward trend detected")
	case trend < -0.1:
		parts = append(parts, "Declining demand pattern")
	default:
		parts = append(parts, "Stable demand pattern")
	}

	if seasonality > 1.1 {
		parts = append(parts, "seasonal peak period")
	}

	if cv < 0.2 {
		parts = append(parts, "high prediction confidence")
	} else if cv > 0.4 {
		parts = append(parts, "moderate volatility in historical data")
	}

	return strings.Join(parts, ", ")
}
