package services

import (
	"context"
	"errors"
	"strings"

	"supplysight/internal/models"
	"supplysight/internal/repositories"

	"github.com/google/uuid"
)

type WarehouseService interface {
	Create(ctx context.Context, warehouse *models.Warehouse) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Warehouse, error)
	Update(ctx context.Context, warehouse *models.Warehouse) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Warehouse, error)
}

type warehouseService struct {
	warehouseRepo repositories.WarehouseRepository
}

func NewWarehouseService(warehouseRepo repositories.WarehouseRepository) WarehouseService {
	return &warehouseService{warehouseRepo: warehouseRepo}
}

func (s *warehouseService) Create(ctx context.Context, warehouse *models.Warehouse) error {
	if strings.TrimSpace(warehouse.Name) == "" {
		return errors.New("warehouse name is required")
	}
	warehouse.ID = uuid.New()
	return s.warehouseRepo.Create(ctx, warehouse)
}

func (s *warehouseService) GetByID(ctx context.Context, id uuid.UUID) (*models.Warehouse, error) {
	return s.warehouseRepo.GetByID(ctx, id)
}

func (s *warehouseService) Update(ctx context.Context, warehouse *models.Warehouse) error {
	if warehouse.ID == uuid.Nil {
		return errors.New("warehouse id is required")
	}
	return s.warehouseRepo.Update(ctx, warehouse)
}

func (s *warehouseService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.warehouseRepo.Delete(ctx, id)
}

func (s *warehouseService) List(ctx context.Context, limit, offset int) ([]*models.Warehouse, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.warehouseRepo.List(ctx, limit, offset)
}
