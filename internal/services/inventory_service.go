package services

import (
	"context"
	"errors"
	"fmt"

	"supplysight/internal/models"
	"supplysight/internal/repositories"

	"github.com/google/uuid"
)

type InventoryService interface {
	Create(ctx context.Context, inventory *models.Inventory) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Inventory, error)
	GetByWarehouseAndProduct(ctx context.Context, warehouseID, productID uuid.UUID) (*models.Inventory, error)
	Update(ctx context.Context, inventory *models.Inventory) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Inventory, error)
	AdjustStock(ctx context.Context, warehouseID, productID uuid.UUID, quantityChange int) error
	LowStock(ctx context.Context, threshold int) ([]*models.Inventory, error)
	AdvancedSearch(ctx context.Context, filter *models.InventorySearchFilter) ([]*models.Inventory, error)
}

type inventoryService struct {
	inventoryRepo repositories.InventoryRepository
	productRepo   repositories.ProductRepository
}

func NewInventoryService(inventoryRepo repositories.InventoryRepository, productRepo repositories.ProductRepository) InventoryService {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
	}
}

func (s *inventoryService) Create(ctx context.Context, inventory *models.Inventory) error {
	if inventory.Quantity < 0 || inventory.ReservedQuantity < 0 {
		return errors.New("quantities cannot be negative")
	}
	if inventory.ReservedQuantity > inventory.Quantity {
		return errors.New("reserved quantity cannot exceed total quantity")
	}

	if _, err := s.productRepo.GetByID(ctx, inventory.ProductID); err != nil {
		return fmt.Errorf("product not found: %w", err)
	}

	inventory.ID = uuid.New()
	inventory.AvailableQuantity = inventory.Quantity - inventory.ReservedQuantity
	return s.inventoryRepo.Create(ctx, inventory)
}

func (s *inventoryService) GetByID(ctx context.Context, id uuid.UUID) (*models.Inventory, error) {
	return s.inventoryRepo.GetByID(ctx, id)
}

func (s *inventoryService) GetByWarehouseAndProduct(ctx context.Context, warehouseID, productID uuid.UUID) (*models.Inventory, error) {
	return s.inventoryRepo.GetByWarehouseAndProduct(ctx, warehouseID, productID)
}

func (s *inventoryService) Update(ctx context.Context, inventory *models.Inventory) error {
	if inventory.ID == uuid.Nil {
		return errors.New("inventory id is required")
	}
	if inventory.ReservedQuantity > inventory.Quantity {
		return errors.New("reserved quantity cannot exceed total quantity")
	}
	inventory.AvailableQuantity = inventory.Quantity - inventory.ReservedQuantity
	return s.inventoryRepo.Update(ctx, inventory)
}

func (s *inventoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.inventoryRepo.Delete(ctx, id)
}

func (s *inventoryService) List(ctx context.Context, limit, offset int) ([]*models.Inventory, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.inventoryRepo.List(ctx, limit, offset)
}

func (s *inventoryService) AdjustStock(ctx context.Context, warehouseID, productID uuid.UUID, quantityChange int) error {
	inventory, err := s.inventoryRepo.GetByWarehouseAndProduct(ctx, warehouseID, productID)
	if err != nil {
		return fmt.Errorf("inventory record not found: %w", err)
	}

	newQuantity := inventory.Quantity + quantityChange
	if newQuantity < 0 {
		return fmt.Errorf("stock adjustment would result in negative quantity: %d", newQuantity)
	}

	inventory.Quantity = newQuantity
	inventory.AvailableQuantity = newQuantity - inventory.ReservedQuantity
	return s.inventoryRepo.Update(ctx, inventory)
}

func (s *inventoryService) LowStock(ctx context.Context, threshold int) ([]*models.Inventory, error) {
	if threshold < 0 {
		return nil, errors.New("threshold cannot be negative")
	}
	return s.inventoryRepo.LowStock(ctx, threshold)
}

func (s *inventoryService) AdvancedSearch(ctx context.Context, filter *models.InventorySearchFilter) ([]*models.Inventory, error) {
	if filter == nil {
		filter = &models.InventorySearchFilter{}
	}
	if filter.MinAvailable != nil && filter.MaxAvailable != nil && *filter.MinAvailable > *filter.MaxAvailable {
		return nil, errors.New("min available cannot exceed max available")
	}
	return s.inventoryRepo.AdvancedSearch(ctx, filter)
}
