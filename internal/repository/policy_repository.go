package repository

import (
	"context"

	"github.com/sitelabor/backend/internal/model"
)

// PolicyRepository persists the health_policy singleton row.
type PolicyRepository interface {
	Get(ctx context.Context) (model.HealthPolicy, error)
	Save(ctx context.Context, p model.HealthPolicy) error
}
