package services

import (
	"context"
	"errors"

	"supplysight/internal/models"
	"supplysight/internal/repositories"

	"github.com/google/uuid"
)

type AlertService interface {
	List(ctx context.Context, unresolvedOnly bool, limit, offset int) ([]*models.Alert, error)
	Resolve(ctx context.Context, id uuid.UUID) error
}

type alertService struct {
	alertRepo repositories.AlertRepository
}

func NewAlertService(alertRepo repositories.AlertRepository) AlertService {
	return &alertService{alertRepo: alertRepo}
}

func (s *alertService) List(ctx context.Context, unresolvedOnly bool, limit, offset int) ([]*models.Alert, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	if unresolvedOnly {
		return s.alertRepo.ListUnresolved(ctx, limit, offset)
	}
	return s.alertRepo.List(ctx, limit, offset)
}

func (s *alertService) Resolve(ctx context.Context, id uuid.UUID) error {
	if _, err := s.alertRepo.GetByID(ctx, id); err != nil {
		return errors.New("alert not found")
	}
	return s.alertRepo.Resolve(ctx, id)
}
