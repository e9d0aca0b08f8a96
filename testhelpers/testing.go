package testhelpers

import (
	"context"
	"os"
	"testing"

	"supplysight/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TestDB holds the database connection for integration tests
type TestDB struct {
	Pool    *pgxpool.Pool
	Cleanup func() error
}

// SetupTestDB creates a pooled connection for integration tests. Tests are
// skipped when TEST_DATABASE_URL is not set.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	return &TestDB{
		Pool: pool,
		Cleanup: func() error {
			pool.Close()
			return nil
		},
	}
}

// SeedProduct inserts a product row for testing and returns it.
func SeedProduct(t *testing.T, db *TestDB, sku string) *models.Product {
	t.Helper()

	product := &models.Product{
		ID:           uuid.New(),
		SKU:          sku,
		Name:         "Test Product " + sku,
		Category:     "test",
		UnitCost:     9.99,
		LeadTimeDays: 7,
		ReorderPoint: 50,
		SafetyStock:  20,
	}
	query := `
		INSERT INTO products (id, sku, name, category, unit_cost, lead_time_days, reorder_point, safety_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := db.Pool.Exec(context.Background(), query, product.ID, product.SKU, product.Name,
		product.Category, product.UnitCost, product.LeadTimeDays, product.ReorderPoint, product.SafetyStock)
	if err != nil {
		t.Fatalf("Failed to seed test product: %v", err)
	}

	t.Cleanup(func() {
		_, _ = db.Pool.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, product.ID)
	})

	return product
}

// SeedWarehouse inserts a warehouse row for testing and returns it.
func SeedWarehouse(t *testing.T, db *TestDB) *models.Warehouse {
	t.Helper()

	warehouse := &models.Warehouse{
		ID:   uuid.New(),
		Name: "Test Warehouse",
	}
	query := `INSERT INTO warehouses (id, name, location, created_at) VALUES ($1, $2, $3, NOW())`
	_, err := db.Pool.Exec(context.Background(), query, warehouse.ID, warehouse.Name, warehouse.Location)
	if err != nil {
		t.Fatalf("Failed to seed test warehouse: %v", err)
	}

	t.Cleanup(func() {
		_, _ = db.Pool.Exec(context.Background(), `DELETE FROM warehouses WHERE id = $1`, warehouse.ID)
	})

	return warehouse
}

// SeedInventory inserts an inventory row tying a product to a warehouse.
func SeedInventory(t *testing.T, db *TestDB, warehouseID, productID uuid.UUID, quantity int) *models.Inventory {
	t.Helper()

	inventory := &models.Inventory{
		ID:                uuid.New(),
		WarehouseID:       warehouseID,
		ProductID:         productID,
		Quantity:          quantity,
		AvailableQuantity: quantity,
	}
	query := `
		INSERT INTO inventory (id, warehouse_id, product_id, quantity, reserved_quantity, available_quantity, last_updated)
		VALUES ($1, $2, $3, $4, 0, $5, NOW())
	`
	_, err := db.Pool.Exec(context.Background(), query, inventory.ID, inventory.WarehouseID,
		inventory.ProductID, inventory.Quantity, inventory.AvailableQuantity)
	if err != nil {
		t.Fatalf("Failed to seed test inventory: %v", err)
	}

	t.Cleanup(func() {
		_, _ = db.Pool.Exec(context.Background(), `DELETE FROM inventory WHERE id = $1`, inventory.ID)
	})

	return inventory
}
