package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DemandHistoryRepository stores recorded daily demand per product. It backs
// the repository-based history source; the synthetic source exists for
// deployments that have not accumulated real sales data yet.
type DemandHistoryRepository interface {
	Record(ctx context.Context, productID uuid.UUID, day time.Time, quantity float64) error
	Series(ctx context.Context, productID uuid.UUID, days int) ([]float64, error)
}

type demandHistoryRepo struct {
	db DB
}

func NewDemandHistoryRepository(db DB) DemandHistoryRepository {
	return &demandHistoryRepo{db: db}
}

func (r *demandHistoryRepo) Record(ctx context.Context, productID uuid.UUID, day time.Time, quantity float64) error {
	query := `
		INSERT INTO demand_history (product_id, day, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (product_id, day) DO UPDATE SET quantity = EXCLUDED.quantity
	`
	_, err := r.db.Exec(ctx, query, productID, day, quantity)
	return err
}

// Series returns the trailing daily demand observations for a product, oldest
// first. Days without a recorded row are simply absent; callers validate
// series length before forecasting.
func (r *demandHistoryRepo) Series(ctx context.Context, productID uuid.UUID, days int) ([]float64, error) {
	query := `
		SELECT quantity
		FROM (
			SELECT day, quantity
			FROM demand_history
			WHERE product_id = $1
			ORDER BY day DESC
			LIMIT $2
		) recent
		ORDER BY day ASC
	`
	rows, err := r.db.Query(ctx, query, productID, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var series []float64
	for rows.Next() {
		var quantity float64
		if err := rows.Scan(&quantity); err != nil {
			return nil, err
		}
		series = append(series, quantity)
	}
	return series, nil
}
