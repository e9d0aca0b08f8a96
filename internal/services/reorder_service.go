package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"supplysight/internal/engine"
	"supplysight/internal/history"
	"supplysight/internal/models"
	"supplysight/internal/repositories"

	"github.com/google/uuid"
)

const inventoryPageSize = 200

type ReorderService interface {
	Suggestions(ctx context.Context) ([]engine.ReorderSuggestion, error)
}

type reorderService struct {
	productRepo   repositories.ProductRepository
	inventoryRepo repositories.InventoryRepository
	forecastRepo  repositories.ForecastRepository
	historySource history.Source
}

func NewReorderService(productRepo repositories.ProductRepository, inventoryRepo repositories.InventoryRepository, forecastRepo repositories.ForecastRepository, historySource history.Source) ReorderService {
	return &reorderService{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		forecastRepo:  forecastRepo,
		historySource: historySource,
	}
}

// Suggestions joins the catalog, inventory snapshots, and the nearest stored
// forecast per product, then classifies reorder urgency. Products without a
// stored forecast get one computed on the fly from their demand history; when
// even that fails, the advisor falls back to reorder-point defaults.
func (s *reorderService) Suggestions(ctx context.Context) ([]engine.ReorderSuggestion, error) {
	products, err := s.listAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	inventories, err := s.listAllInventories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}

	forecasts, err := s.forecastRepo.LatestPerProduct(ctx, time.Now().UTC().Truncate(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("load forecasts: %w", err)
	}

	forecasts = s.fillMissingForecasts(ctx, products, forecasts)

	return engine.ReorderSuggestions(inventories, products, forecasts), nil
}

// fillMissingForecasts computes ephemeral forecasts for products with no
// stored row. These are advisory inputs only and are never persisted.
func (s *reorderService) fillMissingForecasts(ctx context.Context, products []*models.Product, forecasts []*models.DemandForecast) []*models.DemandForecast {
	covered := make(map[uuid.UUID]bool, len(forecasts))
	for _, f := range forecasts {
		covered[f.ProductID] = true
	}

	for _, product := range products {
		if covered[product.ID] {
			continue
		}

		historical, err := s.historySource.History(ctx, product.ID, historyWindowDays)
		if err != nil {
			log.Printf("WARN: no demand history for product %s: %v", product.SKU, err)
			continue
		}

		result, err := engine.Forecast(product, historical, engine.DefaultHorizonDays)
		if err != nil {
			log.Printf("WARN: on-the-fly forecast failed for product %s: %v", product.SKU, err)
			continue
		}

		forecasts = append(forecasts, &models.DemandForecast{
			ID:                  uuid.New(),
			ProductID:           product.ID,
			ForecastDate:        time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, engine.DefaultHorizonDays),
			PredictedDemand:     result.PredictedDemand,
			ConfidenceScore:     result.ConfidenceScore,
			RecommendedOrderQty: result.RecommendedOrderQty,
			SeasonalityFactor:   result.SeasonalityFactor,
			Reasoning:           result.Reasoning,
		})
	}

	return forecasts
}

func (s *reorderService) listAllProducts(ctx context.Context) ([]*models.Product, error) {
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

func (s *reorderService) listAllInventories(ctx context.Context) ([]*models.Inventory, error) {
	var all []*models.Inventory
	for offset := 0; ; offset += inventoryPageSize {
		page, err := s.inventoryRepo.List(ctx, inventoryPageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < inventoryPageSize {
			return all, nil
		}
	}
}
