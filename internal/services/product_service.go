package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"supplysight/internal/caching"
	"supplysight/internal/models"
	"supplysight/internal/repositories"

	"github.com/google/uuid"
)

const productCacheTTL = 10 * time.Minute

type ProductService interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetBySKU(ctx context.Context, sku string) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Product, error)
	Search(ctx context.Context, filter *models.ProductSearchFilter) ([]*models.Product, error)
}

type productService struct {
	productRepo  repositories.ProductRepository
	forecastRepo repositories.ForecastRepository
	cacheService caching.CacheService
}

func NewProductService(productRepo repositories.ProductRepository, forecastRepo repositories.ForecastRepository, cacheService caching.CacheService) ProductService {
	return &productService{
		productRepo:  productRepo,
		forecastRepo: forecastRepo,
		cacheService: cacheService,
	}
}

func (s *productService) Create(ctx context.Context, product *models.Product) error {
	if strings.TrimSpace(product.SKU) == "" {
		return errors.New("product sku is required")
	}
	if strings.TrimSpace(product.Name) == "" {
		return errors.New("product name is required")
	}
	if product.UnitCost < 0 {
		return errors.New("unit cost cannot be negative")
	}
	if product.ReorderPoint < 0 || product.SafetyStock < 0 {
		return errors.New("reorder point and safety stock cannot be negative")
	}

	// Check for SKU duplicates
	_, err := s.productRepo.GetBySKU(ctx, product.SKU)
	if err == nil {
		return fmt.Errorf("sku %s already exists for another product", product.SKU)
	}

	product.ID = uuid.New()
	return s.productRepo.Create(ctx, product)
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	// Try to get from cache first
	if s.cacheService != nil {
		cached, err := s.cacheService.GetProduct(ctx, id)
		if err != nil {
			log.Printf("WARN: product cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		if err := s.cacheService.SetProduct(ctx, product, productCacheTTL); err != nil {
			log.Printf("WARN: product cache write failed: %v", err)
		}
	}

	return product, nil
}

func (s *productService) GetBySKU(ctx context.Context, sku string) (*models.Product, error) {
	return s.productRepo.GetBySKU(ctx, sku)
}

func (s *productService) Update(ctx context.Context, product *models.Product) error {
	if product.ID == uuid.Nil {
		return errors.New("product id is required")
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return err
	}

	if s.cacheService != nil {
		if err := s.cacheService.DeleteProduct(ctx, product.ID); err != nil {
			log.Printf("WARN: product cache invalidation failed: %v", err)
		}
	}
	return nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	// Forecasts for a deleted product are stale by definition.
	if err := s.forecastRepo.DeleteByProduct(ctx, id); err != nil {
		return fmt.Errorf("delete product forecasts: %w", err)
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	if s.cacheService != nil {
		if err := s.cacheService.DeleteProduct(ctx, id); err != nil {
			log.Printf("WARN: product cache invalidation failed: %v", err)
		}
	}
	return nil
}

func (s *productService) List(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.productRepo.List(ctx, limit, offset)
}

func (s *productService) Search(ctx context.Context, filter *models.ProductSearchFilter) ([]*models.Product, error) {
	if filter == nil {
		filter = &models.ProductSearchFilter{}
	}
	if filter.MinUnitCost != nil && filter.MaxUnitCost != nil && *filter.MinUnitCost > *filter.MaxUnitCost {
		return nil, errors.New("min unit cost cannot exceed max unit cost")
	}
	return s.productRepo.AdvancedSearch(ctx, filter)
}
