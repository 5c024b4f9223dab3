package repository

import (
	"context"

	"github.com/sitelabor/backend/internal/model"
)

// DB is the minimal connection-liveness interface handlers depend on.
type DB interface {
	Ping(ctx context.Context) error
}

// ProjectRepository handles persistence for projects, their work type
// lists, and the daily attendance entries.
type ProjectRepository interface {
	// GetByName loads one project including its full daily history.
	GetByName(ctx context.Context, name string) (*model.Project, error)
	// ListAll loads every project including daily history; the health
	// engine needs a consistent in-memory snapshot per project.
	ListAll(ctx context.Context) ([]*model.Project, error)
	Create(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, name string) error
	UpdateStatus(ctx context.Context, name, status string) error
	// AddWorkType appends a work type with its company and contract; a
	// duplicate work type is a no-op.
	AddWorkType(ctx context.Context, projectName, workType, company string, contract int) error
	// SaveDailyWork upserts the entries for one date, overwriting any
	// previously submitted values for the same (date, work type).
	SaveDailyWork(ctx context.Context, projectName, date string, entries map[string]*model.WorkEntry) error
}
