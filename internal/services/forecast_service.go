package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"supplysight/internal/caching"
	"supplysight/internal/engine"
	"supplysight/internal/history"
	"supplysight/internal/models"
	"supplysight/internal/repositories"

	"github.com/google/uuid"
)

const (
	forecastCacheTTL  = 10 * time.Minute
	historyWindowDays = 30
	productPageSize   = 200
)

type ForecastService interface {
	GenerateAll(ctx context.Context) (int, error)
	GenerateForProduct(ctx context.Context, productID uuid.UUID) ([]*models.DemandForecast, error)
	ListUpcoming(ctx context.Context, limit, offset int) ([]*models.DemandForecast, error)
	ListByProduct(ctx context.Context, productID uuid.UUID, limit int) ([]*models.DemandForecast, error)
	LatestPerProduct(ctx context.Context) ([]*models.DemandForecast, error)
}

type forecastService struct {
	productRepo   repositories.ProductRepository
	forecastRepo  repositories.ForecastRepository
	historySource history.Source
	cacheService  caching.CacheService
}

func NewForecastService(productRepo repositories.ProductRepository, forecastRepo repositories.ForecastRepository, historySource history.Source, cacheService caching.CacheService) ForecastService {
	return &forecastService{
		productRepo:   productRepo,
		forecastRepo:  forecastRepo,
		historySource: historySource,
		cacheService:  cacheService,
	}
}

// GenerateAll refreshes forecasts for the whole catalog: one row per product
// per day over the forecast horizon. Products whose history cannot support a
// forecast are skipped with a log line rather than failing the run. Returns
// the number of products forecasted.
func (s *forecastService) GenerateAll(ctx context.Context) (int, error) {
	products, err := s.listAllProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("list products for forecasting: %w", err)
	}

	forecasted := 0
	for _, product := range products {
		if _, err := s.generate(ctx, product, false); err != nil {
			log.Printf("WARN: skipping forecast for product %s (%s): %v", product.SKU, product.ID, err)
			continue
		}
		forecasted++
	}

	if s.cacheService != nil {
		if err := s.cacheService.InvalidateForecasts(ctx); err != nil {
			log.Printf("WARN: forecast cache invalidation failed: %v", err)
		}
	}

	log.Printf("Forecast run complete: %d/%d products forecasted", forecasted, len(products))
	return forecasted, nil
}

func (s *forecastService) GenerateForProduct(ctx context.Context, productID uuid.UUID) ([]*models.DemandForecast, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}

	forecasts, err := s.generate(ctx, product, true)
	if err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		if err := s.cacheService.InvalidateForecasts(ctx); err != nil {
			log.Printf("WARN: forecast cache invalidation failed: %v", err)
		}
	}
	return forecasts, nil
}

// generate computes and upserts one forecast per day of the horizon for a
// single product. Day offsets feed the seasonality curve, so rows differ
// across the horizon even though they share one historical series.
func (s *forecastService) generate(ctx context.Context, product *models.Product, collect bool) ([]*models.DemandForecast, error) {
	historical, err := s.historySource.History(ctx, product.ID, historyWindowDays)
	if err != nil {
		return nil, fmt.Errorf("load demand history: %w", err)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	var forecasts []*models.DemandForecast
	if collect {
		forecasts = make([]*models.DemandForecast, 0, engine.DefaultHorizonDays)
	}

	for day := 1; day <= engine.DefaultHorizonDays; day++ {
		result, err := engine.Forecast(product, historical, day)
		if err != nil {
			return nil, err
		}

		forecast := &models.DemandForecast{
			ID:                  uuid.New(),
			ProductID:           product.ID,
			ForecastDate:        today.AddDate(0, 0, day),
			PredictedDemand:     result.PredictedDemand,
			ConfidenceScore:     result.ConfidenceScore,
			RecommendedOrderQty: result.RecommendedOrderQty,
			SeasonalityFactor:   result.SeasonalityFactor,
			Reasoning:           result.Reasoning,
		}
		if err := s.forecastRepo.Upsert(ctx, forecast); err != nil {
			return nil, fmt.Errorf("upsert forecast: %w", err)
		}
		if collect {
			forecasts = append(forecasts, forecast)
		}
	}

	return forecasts, nil
}

func (s *forecastService) ListUpcoming(ctx context.Context, limit, offset int) ([]*models.DemandForecast, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.forecastRepo.ListUpcoming(ctx, time.Now().UTC().Truncate(24*time.Hour), limit, offset)
}

func (s *forecastService) ListByProduct(ctx context.Context, productID uuid.UUID, limit int) ([]*models.DemandForecast, error) {
	if limit <= 0 {
		limit = engine.DefaultHorizonDays
	}
	return s.forecastRepo.ListByProduct(ctx, productID, time.Now().UTC().Truncate(24*time.Hour), limit)
}

func (s *forecastService) LatestPerProduct(ctx context.Context) ([]*models.DemandForecast, error) {
	// Try to get from cache first
	if s.cacheService != nil {
		cached, err := s.cacheService.GetLatestForecasts(ctx)
		if err != nil {
			log.Printf("WARN: forecast cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	forecasts, err := s.forecastRepo.LatestPerProduct(ctx, time.Now().UTC().Truncate(24*time.Hour))
	if err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		if err := s.cacheService.SetLatestForecasts(ctx, forecasts, forecastCacheTTL); err != nil {
			log.Printf("WARN: forecast cache write failed: %v", err)
		}
	}
	return forecasts, nil
}

func (s *forecastService) listAllProducts(ctx context.Context) ([]*models.Product, error) {
	var all []*models.Product
	for offset := 0; ; offset += productPageSize {
		page, err := s.productRepo.List(ctx, productPageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < productPageSize {
			return all, nil
		}
	}
}
