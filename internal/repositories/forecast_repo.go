package repositories

import (
	"context"
	"time"

	"supplysight/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ForecastRepository interface {
	Upsert(ctx context.Context, forecast *models.DemandForecast) error
	ListUpcoming(ctx context.Context, from time.Time, limit, offset int) ([]*models.DemandForecast, error)
	ListByProduct(ctx context.Context, productID uuid.UUID, from time.Time, limit int) ([]*models.DemandForecast, error)
	LatestPerProduct(ctx context.Context, from time.Time) ([]*models.DemandForecast, error)
	DeleteByProduct(ctx context.Context, productID uuid.UUID) error
}

type forecastRepo struct {
	db DB
}

func NewForecastRepository(db DB) ForecastRepository {
	return &forecastRepo{db: db}
}

func (r *forecastRepo) Upsert(ctx context.Context, forecast *models.DemandForecast) error {
	query := `
		INSERT INTO demand_forecasts (id, product_id, forecast_date, predicted_demand, confidence_score, recommended_order_qty, seasonality_factor, reasoning, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (product_id, forecast_date) DO UPDATE SET
			predicted_demand = EXCLUDED.predicted_demand,
			confidence_score = EXCLUDED.confidence_score,
			recommended_order_qty = EXCLUDED.recommended_order_qty,
			seasonality_factor = EXCLUDED.seasonality_factor,
			reasoning = EXCLUDED.reasoning,
			created_at = NOW()
	`
	_, err := r.db.Exec(ctx, query, forecast.ID, forecast.ProductID, forecast.ForecastDate,
		forecast.PredictedDemand, forecast.ConfidenceScore, forecast.RecommendedOrderQty,
		forecast.SeasonalityFactor, forecast.Reasoning)
	return err
}

func (r *forecastRepo) ListUpcoming(ctx context.Context, from time.Time, limit, offset int) ([]*models.DemandForecast, error) {
	query := `
		SELECT id, product_id, forecast_date, predicted_demand, confidence_score, recommended_order_qty, seasonality_factor, reasoning, created_at
		FROM demand_forecasts
		WHERE forecast_date >= $1
		ORDER BY forecast_date ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, from, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanForecasts(rows)
}

func (r *forecastRepo) ListByProduct(ctx context.Context, productID uuid.UUID, from time.Time, limit int) ([]*models.DemandForecast, error) {
	query := `
		SELECT id, product_id, forecast_date, predicted_demand, confidence_score, recommended_order_qty, seasonality_factor, reasoning, created_at
		FROM demand_forecasts
		WHERE product_id = $1 AND forecast_date >= $2
		ORDER BY forecast_date ASC
		LIMIT $3
	`
	rows, err := r.db.Query(ctx, query, productID, from, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanForecasts(rows)
}

// LatestPerProduct returns the nearest upcoming forecast row for every
// product, one row per product.
func (r *forecastRepo) LatestPerProduct(ctx context.Context, from time.Time) ([]*models.DemandForecast, error) {
	query := `
		SELECT DISTINCT ON (product_id) id, product_id, forecast_date, predicted_demand, confidence_score, recommended_order_qty, seasonality_factor, reasoning, created_at
		FROM demand_forecasts
		WHERE forecast_date >= $1
		ORDER BY product_id, forecast_date ASC
	`
	rows, err := r.db.Query(ctx, query, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanForecasts(rows)
}

func (r *forecastRepo) DeleteByProduct(ctx context.Context, productID uuid.UUID) error {
	query := `DELETE FROM demand_forecasts WHERE product_id = $1`
	_, err := r.db.Exec(ctx, query, productID)
	return err
}

func scanForecasts(rows pgx.Rows) ([]*models.DemandForecast, error) {
	var forecasts []*models.DemandForecast
	for rows.Next() {
		forecast := &models.DemandForecast{}
		if err := rows.Scan(&forecast.ID, &forecast.ProductID, &forecast.ForecastDate,
			&forecast.PredictedDemand, &forecast.ConfidenceScore, &forecast.RecommendedOrderQty,
			&forecast.SeasonalityFactor, &forecast.Reasoning, &forecast.CreatedAt); err != nil {
			return nil, err
		}
		forecasts = append(forecasts, forecast)
	}
	return forecasts, nil
}
