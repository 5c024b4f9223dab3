package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sitelabor/backend/internal/model"
)

type pgPolicyRepository struct {
	pool *pgxpool.Pool
}

// NewPgPolicyRepository returns a PostgreSQL-backed PolicyRepository. The
// policy lives in a single row with id = 1.
func NewPgPolicyRepository(pool *pgxpool.Pool) PolicyRepository {
	return &pgPolicyRepository{pool: pool}
}

func (r *pgPolicyRepository) Get(ctx context.Context) (model.HealthPolicy, error) {
	var p model.HealthPolicy
	err := r.pool.QueryRow(ctx, `
		SELECT cost_overrun_warn, cost_overrun_danger,
		       progress_warn_min, progress_danger_min,
		       workforce_window_days,
		       workforce_warn_drop, workforce_danger_drop,
		       workforce_warn_surge, workforce_danger_surge,
		       updated_at
		FROM health_policy
		WHERE id = 1
	`).Scan(
		&p.CostOverrunWarn, &p.CostOverrunDanger,
		&p.ProgressWarnMin, &p.ProgressDangerMin,
		&p.WorkforceWindowDays,
		&p.WorkforceWarnDrop, &p.WorkforceDangerDrop,
		&p.WorkforceWarnSurge, &p.WorkforceDangerSurge,
		&p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.HealthPolicy{}, ErrNotFound
	}
	return p, err
}

func (r *pgPolicyRepository) Save(ctx context.Context, p model.HealthPolicy) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO health_policy (
			id, cost_overrun_warn, cost_overrun_danger,
			progress_warn_min, progress_danger_min,
			workforce_window_days,
			workforce_warn_drop, workforce_danger_drop,
			workforce_warn_surge, workforce_danger_surge,
			updated_at
		) VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (id) DO UPDATE SET
			cost_overrun_warn = EXCLUDED.cost_overrun_warn,
			cost_overrun_danger = EXCLUDED.cost_overrun_danger,
			progress_warn_min = EXCLUDED.progress_warn_min,
			progress_danger_min = EXCLUDED.progress_danger_min,
			workforce_window_days = EXCLUDED.workforce_window_days,
			workforce_warn_drop = EXCLUDED.workforce_warn_drop,
			workforce_danger_drop = EXCLUDED.workforce_danger_drop,
			workforce_warn_surge = EXCLUDED.workforce_warn_surge,
			workforce_danger_surge = EXCLUDED.workforce_danger_surge,
			updated_at = NOW()
	`,
		p.CostOverrunWarn, p.CostOverrunDanger,
		p.ProgressWarnMin, p.ProgressDangerMin,
		p.WorkforceWindowDays,
		p.WorkforceWarnDrop, p.WorkforceDangerDrop,
		p.WorkforceWarnSurge, p.WorkforceDangerSurge,
	)
	return err
}
