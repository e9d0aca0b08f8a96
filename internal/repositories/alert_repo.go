package repositories

import (
	"context"

	"supplysight/internal/models"

	"github.com/google/uuid"
)

type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	List(ctx context.Context, limit, offset int) ([]*models.Alert, error)
	ListUnresolved(ctx context.Context, limit, offset int) ([]*models.Alert, error)
	ExistsUnresolved(ctx context.Context, productID uuid.UUID, alertType string) (bool, error)
	Resolve(ctx context.Context, id uuid.UUID) error
}

type alertRepo struct {
	db DB
}

func NewAlertRepository(db DB) AlertRepository {
	return &alertRepo{db: db}
}

func (r *alertRepo) Create(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (id, type, severity, title, message, action_recommended, product_id, sku, is_resolved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	`
	_, err := r.db.Exec(ctx, query, alert.ID, alert.Type, alert.Severity, alert.Title,
		alert.Message, alert.ActionRecommended, alert.ProductID, alert.SKU, alert.IsResolved)
	return err
}

func (r *alertRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	alert := &models.Alert{}
	query := `
		SELECT id, type, severity, title, message, action_recommended, product_id, sku, is_resolved, created_at
		FROM alerts
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&alert.ID, &alert.Type, &alert.Severity, &alert.Title,
		&alert.Message, &alert.ActionRecommended, &alert.ProductID, &alert.SKU, &alert.IsResolved,
		&alert.CreatedAt)
	if err != nil {
		return nil, err
	}
	return alert, nil
}

func (r *alertRepo) List(ctx context.Context, limit, offset int) ([]*models.Alert, error) {
	query := `
		SELECT id, type, severity, title, message, action_recommended, product_id, sku, is_resolved, created_at
		FROM alerts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	return r.queryAlerts(ctx, query, limit, offset)
}

func (r *alertRepo) ListUnresolved(ctx context.Context, limit, offset int) ([]*models.Alert, error) {
	query := `
		SELECT id, type, severity, title, message, action_recommended, product_id, sku, is_resolved, created_at
		FROM alerts
		WHERE is_resolved = FALSE
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	return r.queryAlerts(ctx, query, limit, offset)
}

// ExistsUnresolved reports whether an open alert of the given type already
// covers the product. The predictive alert job uses it to avoid duplicates.
func (r *alertRepo) ExistsUnresolved(ctx context.Context, productID uuid.UUID, alertType string) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM alerts
			WHERE product_id = $1 AND type = $2 AND is_resolved = FALSE
		)
	`
	err := r.db.QueryRow(ctx, query, productID, alertType).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *alertRepo) Resolve(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE alerts SET is_resolved = TRUE WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *alertRepo) queryAlerts(ctx context.Context, query string, args ...any) ([]*models.Alert, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []*models.Alert
	for rows.Next() {
		alert := &models.Alert{}
		if err := rows.Scan(&alert.ID, &alert.Type, &alert.Severity, &alert.Title, &alert.Message,
			&alert.ActionRecommended, &alert.ProductID, &alert.SKU, &alert.IsResolved, &alert.CreatedAt); err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}
	return alerts, nil
}
