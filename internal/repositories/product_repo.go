package repositories

import (
	"context"
	"fmt"

	"supplysight/internal/models"

	"github.com/google/uuid"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetBySKU(ctx context.Context, sku string) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Product, error)
	AdvancedSearch(ctx context.Context, filter *models.ProductSearchFilter) ([]*models.Product, error)
}

type productRepo struct {
	db DB
}

func NewProductRepository(db DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (id, sku, name, category, unit_cost, lead_time_days, reorder_point, safety_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, product.ID, product.SKU, product.Name, product.Category,
		product.UnitCost, product.LeadTimeDays, product.ReorderPoint, product.SafetyStock)
	return err
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product := &models.Product{}
	query := `
		SELECT id, sku, name, category, unit_cost, lead_time_days, reorder_point, safety_stock, created_at, updated_at
		FROM products
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&product.ID, &product.SKU, &product.Name, &product.Category,
		&product.UnitCost, &product.LeadTimeDays, &product.ReorderPoint, &product.SafetyStock,
		&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepo) GetBySKU(ctx context.Context, sku string) (*models.Product, error) {
	product := &models.Product{}
	query := `
		SELECT id, sku, name, category, unit_cost, lead_time_days, reorder_point, safety_stock, created_at, updated_at
		FROM products
		WHERE sku = $1
	`
	err := r.db.QueryRow(ctx, query, sku).Scan(&product.ID, &product.SKU, &product.Name, &product.Category,
		&product.UnitCost, &product.LeadTimeDays, &product.ReorderPoint, &product.SafetyStock,
		&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepo) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products
		SET sku = $1, name = $2, category = $3, unit_cost = $4, lead_time_days = $5, reorder_point = $6, safety_stock = $7, updated_at = NOW()
		WHERE id = $8
	`
	_, err := r.db.Exec(ctx, query, product.SKU, product.Name, product.Category, product.UnitCost,
		product.LeadTimeDays, product.ReorderPoint, product.SafetyStock, product.ID)
	return err
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM products WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *productRepo) AdvancedSearch(ctx context.Context, filter *models.ProductSearchFilter) ([]*models.Product, error) {
	// Set defaults
	if filter.Limit == 0 {
		filter.Limit = 50
	}
	if filter.SortBy == "" {
		filter.SortBy = "created_at"
	}
	if filter.SortOrder == "" {
		filter.SortOrder = "desc"
	}

	// Build query dynamically
	queryBase := `
		SELECT id, sku, name, category, unit_cost, lead_time_days, reorder_point, safety_stock, created_at, updated_at
		FROM products
		WHERE 1 = 1
	`
	args := []interface{}{}
	conditionCount := 0

	// Full-text search across name, SKU, and category
	if filter.Query != "" {
		conditionCount++
		queryBase += fmt.Sprintf(` AND (name ILIKE $%d OR sku ILIKE $%d OR category ILIKE $%d)`,
			conditionCount, conditionCount, conditionCount)
		args = append(args, "%"+filter.Query+"%")
	}

	if filter.Category != nil {
		conditionCount++
		queryBase += fmt.Sprintf(` AND category = $%d`, conditionCount)
		args = append(args, *filter.Category)
	}

	if filter.MinUnitCost != nil {
		conditionCount++
		queryBase += fmt.Sprintf(` AND unit_cost >= $%d`, conditionCount)
		args = append(args, *filter.MinUnitCost)
	}
	if filter.MaxUnitCost != nil {
		conditionCount++
		queryBase += fmt.Sprintf(` AND unit_cost <= $%d`, conditionCount)
		args = append(args, *filter.MaxUnitCost)
	}

	// Sort columns are validated against an allowlist, never interpolated raw.
	sortBy := map[string]string{
		"name":       "name",
		"sku":        "sku",
		"unit_cost":  "unit_cost",
		"created_at": "created_at",
	}[filter.SortBy]
	if sortBy == "" {
		sortBy = "created_at"
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

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(&product.ID, &product.SKU, &product.Name, &product.Category,
			&product.UnitCost, &product.LeadTimeDays, &product.ReorderPoint, &product.SafetyStock,
			&product.CreatedAt, &product.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

func (r *productRepo) List(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	query := `
		SELECT id, sku, name, category, unit_cost, lead_time_days, reorder_point, safety_stock, created_at, updated_at
		FROM products
		ORDER BY name
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(&product.ID, &product.SKU, &product.Name, &product.Category,
			&product.UnitCost, &product.LeadTimeDays, &product.ReorderPoint, &product.SafetyStock,
			&product.CreatedAt, &product.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}
