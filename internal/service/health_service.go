package service

import (
	"context"

	"github.com/sitelabor/backend/internal/health"
	"github.com/sitelabor/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Minimal interfaces (only what HealthService needs)
// ---------------------------------------------------------------------------

type healthProjectRepo interface {
	GetByName(ctx context.Context, name string) (*model.Project, error)
	ListAll(ctx context.Context) ([]*model.Project, error)
}

type healthRateRepo interface {
	GetAll(ctx context.Context) (map[string]model.LaborRate, error)
}

type policySnapshotter interface {
	Snapshot() model.HealthPolicy
}

// ---------------------------------------------------------------------------
// HealthService
// ---------------------------------------------------------------------------

// HealthService runs the health engine over persisted records: it fetches
// projects and rates, takes a policy snapshot, and delegates to the pure
// computations in internal/health.
type HealthService interface {
	ProjectHealth(ctx context.Context, name string) (model.HealthResult, error)
	Dashboard(ctx context.Context) ([]health.DashboardRow, error)
	Report(ctx context.Context) (health.ReportSummary, error)
	Rollup(ctx context.Context, name string) ([]health.RollupRow, error)
	DailySummary(ctx context.Context, name, date string) ([]health.DailySummaryRow, error)
	ExportRows(ctx context.Context) ([]health.ExportRow, error)
}

type healthService struct {
	projects   healthProjectRepo
	rates      healthRateRepo
	policy     policySnapshotter
	classifier health.Classifier
}

// NewHealthService creates a HealthService using the given classifier.
func NewHealthService(projects healthProjectRepo, rates healthRateRepo, policy policySnapshotter, classifier health.Classifier) HealthService {
	return &healthService{projects: projects, rates: rates, policy: policy, classifier: classifier}
}

func (s *healthService) ProjectHealth(ctx context.Context, name string) (model.HealthResult, error) {
	p, err := s.projects.GetByName(ctx, name)
	if err != nil {
		return model.HealthResult{}, err
	}
	rates, err := s.rates.GetAll(ctx)
	if err != nil {
		return model.HealthResult{}, err
	}
	return s.classifier.Classify(p, rates, s.policy.Snapshot())
}

func (s *healthService) Dashboard(ctx context.Context) ([]health.DashboardRow, error) {
	projects, rates, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return health.Dashboard(projects, rates, s.policy.Snapshot(), s.classifier)
}

func (s *healthService) Report(ctx context.Context) (health.ReportSummary, error) {
	projects, rates, err := s.loadAll(ctx)
	if err != nil {
		return health.ReportSummary{}, err
	}
	return health.Report(projects, rates, s.policy.Snapshot(), s.classifier)
}

func (s *healthService) Rollup(ctx context.Context, name string) ([]health.RollupRow, error) {
	p, err := s.projects.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	rates, err := s.rates.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return health.WorkTypeRollup(p, rates), nil
}

func (s *healthService) DailySummary(ctx context.Context, name, date string) ([]health.DailySummaryRow, error) {
	p, err := s.projects.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return health.DailySummary(p, date), nil
}

func (s *healthService) ExportRows(ctx context.Context) ([]health.ExportRow, error) {
	projects, err := s.projects.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return health.ExportRows(projects), nil
}

func (s *healthService) loadAll(ctx context.Context) ([]*model.Project, map[string]model.LaborRate, error) {
	projects, err := s.projects.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	rates, err := s.rates.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	return projects, rates, nil
}
