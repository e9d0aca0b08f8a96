// Package history supplies historical daily demand series to the forecasting
// engine. The data source is an injected dependency so synthetic data can be
// swapped for recorded sales history without touching forecasting logic.
package history

import (
	"context"

	"github.com/google/uuid"
)

// Source returns a product's trailing daily demand observations, oldest first,
// most recent last. Implementations decide where the numbers come from.
type Source interface {
	History(ctx context.Context, productID uuid.UUID, days int) ([]float64, error)
}
