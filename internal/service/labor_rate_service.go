package service

import (
	"context"
	"errors"

	"github.com/sitelabor/backend/internal/model"
	"github.com/sitelabor/backend/internal/repository"
)

// LaborRateService manages the per-work-type rate table.
type LaborRateService interface {
	List(ctx context.Context) (map[string]model.LaborRate, error)
	// BulkUpsert writes every given rate except locked ones, which are
	// skipped and reported back by work type.
	BulkUpsert(ctx context.Context, rates []model.LaborRate) (skipped []string, err error)
	SetLocked(ctx context.Context, workType string, locked bool) error
}

type laborRateService struct {
	repo repository.LaborRateRepository
}

// NewLaborRateService creates a LaborRateService.
func NewLaborRateService(repo repository.LaborRateRepository) LaborRateService {
	return &laborRateService{repo: repo}
}

func (s *laborRateService) List(ctx context.Context) (map[string]model.LaborRate, error) {
	return s.repo.GetAll(ctx)
}

func (s *laborRateService) BulkUpsert(ctx context.Context, rates []model.LaborRate) ([]string, error) {
	var skipped []string
	for _, rate := range rates {
		if rate.WorkType == "" {
			return skipped, errors.New("work type is required")
		}
		if rate.Day < 0 || rate.Night < 0 || rate.Midnight < 0 {
			return skipped, errors.New("rates must be non-negative")
		}

		current, err := s.repo.Get(ctx, rate.WorkType)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return skipped, err
		}
		if err == nil && current.Locked {
			skipped = append(skipped, rate.WorkType)
			continue
		}

		rate.Locked = false
		if err := s.repo.Upsert(ctx, rate); err != nil {
			return skipped, err
		}
	}
	return skipped, nil
}

func (s *laborRateService) SetLocked(ctx context.Context, workType string, locked bool) error {
	return s.repo.SetLocked(ctx, workType, locked)
}
