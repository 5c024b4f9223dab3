package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sitelabor/backend/internal/model"
)

type pgLaborRateRepository struct {
	pool *pgxpool.Pool
}

// NewPgLaborRateRepository returns a PostgreSQL-backed LaborRateRepository.
func NewPgLaborRateRepository(pool *pgxpool.Pool) LaborRateRepository {
	return &pgLaborRateRepository{pool: pool}
}

func (r *pgLaborRateRepository) GetAll(ctx context.Context) (map[string]model.LaborRate, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT work_type, day_rate, night_rate, midnight_rate, locked, updated_at FROM labor_rates`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rates := map[string]model.LaborRate{}
	for rows.Next() {
		var rate model.LaborRate
		if err := rows.Scan(&rate.WorkType, &rate.Day, &rate.Night, &rate.Midnight, &rate.Locked, &rate.UpdatedAt); err != nil {
			return nil, err
		}
		rates[rate.WorkType] = rate
	}
	return rates, rows.Err()
}

func (r *pgLaborRateRepository) Get(ctx context.Context, workType string) (model.LaborRate, error) {
	var rate model.LaborRate
	err := r.pool.QueryRow(ctx,
		`SELECT work_type, day_rate, night_rate, midnight_rate, locked, updated_at
		 FROM labor_rates WHERE work_type = $1`,
		workType,
	).Scan(&rate.WorkType, &rate.Day, &rate.Night, &rate.Midnight, &rate.Locked, &rate.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.LaborRate{}, ErrNotFound
	}
	return rate, err
}

func (r *pgLaborRateRepository) Upsert(ctx context.Context, rate model.LaborRate) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO labor_rates (work_type, day_rate, night_rate, midnight_rate, locked, updated_at)
		 VALUES ($1, $2, $3, $4, $5, NOW())
		 ON CONFLICT (work_type) DO UPDATE SET
		   day_rate = EXCLUDED.day_rate,
		   night_rate = EXCLUDED.night_rate,
		   midnight_rate = EXCLUDED.midnight_rate,
		   locked = EXCLUDED.locked,
		   updated_at = NOW()`,
		rate.WorkType, rate.Day, rate.Night, rate.Midnight, rate.Locked)
	return err
}

func (r *pgLaborRateRepository) SetLocked(ctx context.Context, workType string, locked bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE labor_rates SET locked = $2, updated_at = NOW() WHERE work_type = $1`,
		workType, locked)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
