package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sitelabor/backend/internal/model"
)

const dateLayout = "2006-01-02"

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a PgProjectRepository.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

func (r *PgProjectRepository) GetByName(ctx context.Context, name string) (*model.Project, error) {
	var p model.Project
	err := r.pool.QueryRow(ctx,
		`SELECT name, status, created_at FROM projects WHERE name = $1`,
		name,
	).Scan(&p.Name, &p.Status, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := r.loadWorkTypes(ctx, &p); err != nil {
		return nil, err
	}
	if err := r.loadDailyData(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgProjectRepository) ListAll(ctx context.Context) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name, status, created_at FROM projects ORDER BY created_at, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	byName := map[string]*model.Project{}
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.Name, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Contracts = map[string]int{}
		p.Companies = map[string]string{}
		p.DailyData = map[string]map[string]*model.WorkEntry{}
		projects = append(projects, &p)
		byName[p.Name] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	wtRows, err := r.pool.Query(ctx,
		`SELECT project_name, work_type, company, contract_amount
		 FROM project_work_types ORDER BY project_name, sort_order`)
	if err != nil {
		return nil, err
	}
	defer wtRows.Close()
	for wtRows.Next() {
		var projectName, workType, company string
		var contract int
		if err := wtRows.Scan(&projectName, &workType, &company, &contract); err != nil {
			return nil, err
		}
		p, ok := byName[projectName]
		if !ok {
			continue
		}
		p.WorkTypes = append(p.WorkTypes, workType)
		p.Contracts[workType] = contract
		if company != "" {
			p.Companies[workType] = company
		}
	}
	if err := wtRows.Err(); err != nil {
		return nil, err
	}

	entryRows, err := r.pool.Query(ctx,
		`SELECT project_name, work_date, work_type, day_workers, night_workers, midnight_workers, progress
		 FROM work_entries`)
	if err != nil {
		return nil, err
	}
	defer entryRows.Close()
	for entryRows.Next() {
		projectName, date, workType, e, err := scanWorkEntry(entryRows)
		if err != nil {
			return nil, err
		}
		p, ok := byName[projectName]
		if !ok {
			continue
		}
		if p.DailyData[date] == nil {
			p.DailyData[date] = map[string]*model.WorkEntry{}
		}
		p.DailyData[date][workType] = e
	}
	return projects, entryRows.Err()
}

func (r *PgProjectRepository) Create(ctx context.Context, p *model.Project) error {
	if p.Status == "" {
		p.Status = model.ProjectActive
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO projects (name, status) VALUES ($1, $2) RETURNING created_at`,
		p.Name, p.Status,
	).Scan(&p.CreatedAt)
	if err != nil {
		return err
	}

	for i, wt := range p.WorkTypes {
		if _, err := r.pool.Exec(ctx,
			`INSERT INTO project_work_types (project_name, work_type, company, contract_amount, sort_order)
			 VALUES ($1, $2, $3, $4, $5)`,
			p.Name, wt, p.Companies[wt], p.Contracts[wt], i,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *PgProjectRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE name = $1`, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgProjectRepository) UpdateStatus(ctx context.Context, name, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE projects SET status = $2 WHERE name = $1`, name, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgProjectRepository) AddWorkType(ctx context.Context, projectName, workType, company string, contract int) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO project_work_types (project_name, work_type, company, contract_amount, sort_order)
		 VALUES ($1, $2, $3, $4,
		         (SELECT COALESCE(MAX(sort_order) + 1, 0) FROM project_work_types WHERE project_name = $1))
		 ON CONFLICT (project_name, work_type) DO NOTHING`,
		projectName, workType, company, contract)
	return err
}

func (r *PgProjectRepository) SaveDailyWork(ctx context.Context, projectName, date string, entries map[string]*model.WorkEntry) error {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return err
	}
	for workType, e := range entries {
		if _, err := r.pool.Exec(ctx,
			`INSERT INTO work_entries (project_name, work_date, work_type, day_workers, night_workers, midnight_workers, total_workers, progress)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (project_name, work_date, work_type) DO UPDATE SET
			   day_workers = EXCLUDED.day_workers,
			   night_workers = EXCLUDED.night_workers,
			   midnight_workers = EXCLUDED.midnight_workers,
			   total_workers = EXCLUDED.total_workers,
			   progress = EXCLUDED.progress`,
			projectName, day, workType, e.Day, e.Night, e.Midnight, e.Total, e.Progress,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *PgProjectRepository) loadWorkTypes(ctx context.Context, p *model.Project) error {
	rows, err := r.pool.Query(ctx,
		`SELECT work_type, company, contract_amount
		 FROM project_work_types WHERE project_name = $1 ORDER BY sort_order`,
		p.Name)
	if err != nil {
		return err
	}
	defer rows.Close()

	p.Contracts = map[string]int{}
	p.Companies = map[string]string{}
	for rows.Next() {
		var workType, company string
		var contract int
		if err := rows.Scan(&workType, &company, &contract); err != nil {
			return err
		}
		p.WorkTypes = append(p.WorkTypes, workType)
		p.Contracts[workType] = contract
		if company != "" {
			p.Companies[workType] = company
		}
	}
	return rows.Err()
}

func (r *PgProjectRepository) loadDailyData(ctx context.Context, p *model.Project) error {
	rows, err := r.pool.Query(ctx,
		`SELECT project_name, work_date, work_type, day_workers, night_workers, midnight_workers, progress
		 FROM work_entries WHERE project_name = $1`,
		p.Name)
	if err != nil {
		return err
	}
	defer rows.Close()

	p.DailyData = map[string]map[string]*model.WorkEntry{}
	for rows.Next() {
		_, date, workType, e, err := scanWorkEntry(rows)
		if err != nil {
			return err
		}
		if p.DailyData[date] == nil {
			p.DailyData[date] = map[string]*model.WorkEntry{}
		}
		p.DailyData[date][workType] = e
	}
	return rows.Err()
}

// scanWorkEntry reads one work_entries row. Total is recomputed from the
// shift counts on load so a stale stored value can never leak out.
func scanWorkEntry(rows pgx.Rows) (projectName, date, workType string, e *model.WorkEntry, err error) {
	var workDate time.Time
	var day, night, midnight int
	var progress *float64
	if err = rows.Scan(&projectName, &workDate, &workType, &day, &night, &midnight, &progress); err != nil {
		return "", "", "", nil, err
	}
	return projectName, workDate.Format(dateLayout), workType, model.NewWorkEntry(day, night, midnight, progress), nil
}
