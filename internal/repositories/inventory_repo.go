package repositories

import (
	"context"
	"fmt"

	"supplysight/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type InventoryRepository interface {
	Create(ctx context.Context, inventory *models.Inventory) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Inventory, error)
	GetByWarehouseAndProduct(ctx context.Context, warehouseID, productID uuid.UUID) (*models.Inventory, error)
	Update(ctx context.Context, inventory *models.Inventory) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Inventory, error)
	LowStock(ctx context.Context, threshold int) ([]*models.Inventory, error)
	AdvancedSearch(ctx context.Context, filter *models.InventorySearchFilter) ([]*models.Inventory, error)
}

type inventoryRepo struct {
	db DB
}

func NewInventoryRepository(db DB) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) Create(ctx context.Context, inventory *models.Inventory) error {
	query := `
		INSERT INTO inventory (id, warehouse_id, product_id, quantity, reserved_quantity, available_quantity, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (warehouse_id, product_id) DO UPDATE SET
			quantity = EXCLUDED.quantity,
			reserved_quantity = EXCLUDED.reserved_quantity,
			available_quantity = EXCLUDED.available_quantity,
			last_updated = NOW()
	`
	_, err := r.db.Exec(ctx, query, inventory.ID, inventory.WarehouseID, inventory.ProductID,
		inventory.Quantity, inventory.ReservedQuantity, inventory.AvailableQuantity)
	return err
}

func (r *inventoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Inventory, error) {
	inventory := &models.Inventory{}
	query := `
		SELECT id, warehouse_id, product_id, quantity, reserved_quantity, available_quantity, last_updated
		FROM inventory
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&inventory.ID, &inventory.WarehouseID, &inventory.ProductID,
		&inventory.Quantity, &inventory.ReservedQuantity, &inventory.AvailableQuantity, &inventory.LastUpdated)
	if err != nil {
		return nil, err
	}
	return inventory, nil
}

func (r *inventoryRepo) GetByWarehouseAndProduct(ctx context.Context, warehouseID, productID uuid.UUID) (*models.Inventory, error) {
	inventory := &models.Inventory{}
	query := `
		SELECT id, warehouse_id, product_id, quantity, reserved_quantity, available_quantity, last_updated
		FROM inventory
		WHERE warehouse_id = $1 AND product_id = $2
	`
	err := r.db.QueryRow(ctx, query, warehouseID, productID).Scan(&inventory.ID, &inventory.WarehouseID,
		&inventory.ProductID, &inventory.Quantity, &inventory.ReservedQuantity, &inventory.AvailableQuantity,
		&inventory.LastUpdated)
	if err != nil {
		return nil, err
	}
	return inventory, nil
}

func (r *inventoryRepo) Update(ctx context.Context, inventory *models.Inventory) error {
	query := `
		UPDATE inventory
		SET quantity = $1, reserved_quantity = $2, available_quantity = $3, last_updated = NOW()
		WHERE id = $4
	`
	_, err := r.db.Exec(ctx, query, inventory.Quantity, inventory.ReservedQuantity,
		inventory.AvailableQuantity, inventory.ID)
	return err
}

func (r *inventoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM inventory WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *inventoryRepo) List(ctx context.Context, limit, offset int) ([]*models.Inventory, error) {
	query := `
		SELECT id, warehouse_id, product_id, quantity, reserved_quantity, available_quantity, last_updated
		FROM inventory
		ORDER BY last_updated DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInventories(rows)
}

func scanInventories(rows pgx.Rows) ([]*models.Inventory, error) {
	var inventories []*models.Inventory
	for rows.Next() {
		inventory := &models.Inventory{}
		if err := rows.Scan(&inventory.ID, &inventory.WarehouseID, &inventory.ProductID,
			&inventory.Quantity, &inventory.ReservedQuantity, &inventory.AvailableQuantity,
			&inventory.LastUpdated); err != nil {
			return nil, err
		}
		inventories = append(inventories, inventory)
	}
	return inventories, nil
}

func (r *inventoryRepo) AdvancedSearch(ctx context.Context, filter *models.InventorySearchFilter) ([]*models.Inventory, error) {
	// Set defaults
	if filter.Limit == 0 {
		filter.Limit = 50
	}
	if filter.SortBy == "" {
		filter.SortBy = "last_updated"
	}
	if filter.SortOrder == "" {
		filter.SortOrder = "desc"
	}

	// Build query dynamically
	queryBase := `
		SELECT id, warehouse_id, product_id, quantity, reserved_quantity, available_quantity, last_updated
		FROM inventory
		WHERE 1 = 1
	`
	args := []interface{}{}
	conditionCount := 0

	if filter.WarehouseID != nil {
		conditionCount++
		queryBase += fmt.Sprintf(` AND warehouse_id = $%d`, conditionCount)
		args = append(args, *filter.WarehouseID)
	}
	if filter.ProductID != nil {
		conditionCount++
		queryBase += fmt.Sprintf(` AND product_id = $%d`, conditionCount)
		args = append(args, *filter.ProductID)
	}
	if filter.MinAvailable != nil {
		conditionCount++
		queryBase += fmt.Sprintf(` AND available_quantity >= $%d`, conditionCount)
		args = append(args, *filter.MinAvailable)
	}
	if filter.MaxAvailable != nil {
		conditionCount++
		queryBase += fmt.Sprintf(` AND available_quantity <= $%d`, conditionCount)
		args = append(args, *filter.MaxAvailable)
	}
	if filter.StockThreshold != nil {
		conditionCount++
		queryBase += fmt.Sprintf(` AND available_quantity <= $%d`, conditionCount)
		args = append(args, *filter.StockThreshold)
	}

	// Sort columns are validated against an allowlist, never interpolated raw.
	sortBy := map[string]string{
		"available_quantity": "available_quantity",
		"last_updated":       "last_updated",
	}[filter.SortBy]
	if sortBy == "" {
		sortBy = "last_updated"
	}
	sortOrder := "DESC"
	if filter.SortOrder == "asc" {
		sortOrder = "ASC"
	}
	queryBase += fmt.Sprintf(` ORDER BY %s %s LIMIT $%d OFFSET $%d`, sortBy, sortOrder, conditionCount+1, conditionCount+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, queryBase, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInventories(rows)
}

func (r *inventoryRepo) LowStock(ctx context.Context, threshold int) ([]*models.Inventory, error) {
	query := `
		SELECT id, warehouse_id, product_id, quantity, reserved_quantity, available_quantity, last_updated
		FROM inventory
		WHERE available_quantity <= $1
		ORDER BY available_quantity ASC
	`
	rows, err := r.db.Query(ctx, query, threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInventories(rows)
}
