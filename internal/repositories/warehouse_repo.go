package repositories

import (
	"context"

	"supplysight/internal/models"

	"github.com/google/uuid"
)

type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *models.Warehouse) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Warehouse, error)
	Update(ctx context.Context, warehouse *models.Warehouse) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Warehouse, error)
}

type warehouseRepo struct {
	db DB
}

func NewWarehouseRepository(db DB) WarehouseRepository {
	return &warehouseRepo{db: db}
}

func (r *warehouseRepo) Create(ctx context.Context, warehouse *models.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, name, location, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	_, err := r.db.Exec(ctx, query, warehouse.ID, warehouse.Name, warehouse.Location)
	return err
}

func (r *warehouseRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Warehouse, error) {
	warehouse := &models.Warehouse{}
	query := `SELECT id, name, location, created_at FROM warehouses WHERE id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(&warehouse.ID, &warehouse.Name, &warehouse.Location, &warehouse.CreatedAt)
	if err != nil {
		return nil, err
	}
	return warehouse, nil
}

func (r *warehouseRepo) Update(ctx context.Context, warehouse *models.Warehouse) error {
	query := `UPDATE warehouses SET name = $1, location = $2 WHERE id = $3`
	_, err := r.db.Exec(ctx, query, warehouse.Name, warehouse.Location, warehouse.ID)
	return err
}

func (r *warehouseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM warehouses WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *warehouseRepo) List(ctx context.Context, limit, offset int) ([]*models.Warehouse, error) {
	query := `SELECT id, name, location, created_at FROM warehouses ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var warehouses []*models.Warehouse
	for rows.Next() {
		warehouse := &models.Warehouse{}
		if err := rows.Scan(&warehouse.ID, &warehouse.Name, &warehouse.Location, &warehouse.CreatedAt); err != nil {
			return nil, err
		}
		warehouses = append(warehouses, warehouse)
	}
	return warehouses, nil
}
