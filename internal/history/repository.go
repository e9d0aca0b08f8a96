package history

import (
	"context"

	"supplysight/internal/repositories"

	"github.com/google/uuid"
)

// RepositorySource reads recorded daily demand out of the demand_history
// table. Swap it in for SyntheticSource once real sales data is flowing.
type RepositorySource struct {
	repo repositories.DemandHistoryRepository
}

func NewRepositorySource(repo repositories.DemandHistoryRepository) *RepositorySource {
	return &RepositorySource{repo: repo}
}

func (s *RepositorySource) History(ctx context.Context, productID uuid.UUID, days int) ([]float64, error) {
	return s.repo.Series(ctx, productID, days)
}
