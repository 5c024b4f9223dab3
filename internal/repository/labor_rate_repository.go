package repository

import (
	"context"

	"github.com/sitelabor/backend/internal/model"
)

// LaborRateRepository handles the per-work-type rate table.
type LaborRateRepository interface {
	GetAll(ctx context.Context) (map[string]model.LaborRate, error)
	Get(ctx context.Context, workType string) (model.LaborRate, error)
	Upsert(ctx context.Context, rate model.LaborRate) error
	SetLocked(ctx context.Context, workType string, locked bool) error
}
