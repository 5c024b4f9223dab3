package handler

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/sitelabor/backend/internal/health"
	"github.com/sitelabor/backend/internal/model"
	"github.com/sitelabor/backend/internal/service"
)

// ---------------------------------------------------------------------------
// Mock services
// ---------------------------------------------------------------------------

type mockHealthService struct {
	projectHealthFunc func(ctx context.Context, name string) (model.HealthResult, error)
	dashboardFunc     func(ctx context.Context) ([]health.DashboardRow, error)
	reportFunc        func(ctx context.Context) (health.ReportSummary, error)
	rollupFunc        func(ctx context.Context, name string) ([]health.RollupRow, error)
	dailySummaryFunc  func(ctx context.Context, name, date string) ([]health.DailySummaryRow, error)
	exportRowsFunc    func(ctx context.Context) ([]health.ExportRow, error)
}

func (m *mockHealthService) ProjectHealth(ctx context.Context, name string) (model.HealthResult, error) {
	return m.projectHealthFunc(ctx, name)
}
func (m *mockHealthService) Dashboard(ctx context.Context) ([]health.DashboardRow, error) {
	return m.dashboardFunc(ctx)
}
func (m *mockHealthService) Report(ctx context.Context) (health.ReportSummary, error) {
	return m.reportFunc(ctx)
}
func (m *mockHealthService) Rollup(ctx context.Context, name string) ([]health.RollupRow, error) {
	return m.rollupFunc(ctx, name)
}
func (m *mockHealthService) DailySummary(ctx context.Context, name, date string) ([]health.DailySummaryRow, error) {
	return m.dailySummaryFunc(ctx, name, date)
}
func (m *mockHealthService) ExportRows(ctx context.Context) ([]health.ExportRow, error) {
	return m.exportRowsFunc(ctx)
}

type mockProjectService struct {
	getFunc           func(ctx context.Context, name string) (*model.Project, error)
	listFunc          func(ctx context.Context) ([]*model.Project, error)
	createFunc        func(ctx context.Context, name string, workTypes []string, contracts map[string]int, companies map[string]string) (*model.Project, error)
	deleteFunc        func(ctx context.Context, name string) error
	updateStatusFunc  func(ctx context.Context, name, status string) error
	addWorkTypeFunc   func(ctx context.Context, projectName, workType, company string, contract int) error
	saveDailyWorkFunc func(ctx context.Context, user *model.User, projectName, date string, inputs map[string]service.DailyWorkInput) error
}

func (m *mockProjectService) Get(ctx context.Context, name string) (*model.Project, error) {
	return m.getFunc(ctx, name)
}
func (m *mockProjectService) List(ctx context.Context) ([]*model.Project, error) {
	return m.listFunc(ctx)
}
func (m *mockProjectService) Create(ctx context.Context, name string, workTypes []string, contracts map[string]int, companies map[string]string) (*model.Project, error) {
	return m.createFunc(ctx, name, workTypes, contracts, companies)
}
func (m *mockProjectService) Delete(ctx context.Context, name string) error {
	return m.deleteFunc(ctx, name)
}
func (m *mockProjectService) UpdateStatus(ctx context.Context, name, status string) error {
	return m.updateStatusFunc(ctx, name, status)
}
func (m *mockProjectService) AddWorkType(ctx context.Context, projectName, workType, company string, contract int) error {
	return m.addWorkTypeFunc(ctx, projectName, workType, company, contract)
}
func (m *mockProjectService) SaveDailyWork(ctx context.Context, user *model.User, projectName, date string, inputs map[string]service.DailyWorkInput) error {
	return m.saveDailyWorkFunc(ctx, user, projectName, date, inputs)
}

type mockUserService struct {
	getFunc           func(ctx context.Context, username string) (*model.User, error)
	listFunc          func(ctx context.Context) ([]*model.User, error)
	createFunc        func(ctx context.Context, username, role string) (*model.User, error)
	assignProjectFunc func(ctx context.Context, username, projectName string) error
}

func (m *mockUserService) Get(ctx context.Context, username string) (*model.User, error) {
	return m.getFunc(ctx, username)
}
func (m *mockUserService) List(ctx context.Context) ([]*model.User, error) {
	return m.listFunc(ctx)
}
func (m *mockUserService) Create(ctx context.Context, username, role string) (*model.User, error) {
	return m.createFunc(ctx, username, role)
}
func (m *mockUserService) AssignProject(ctx context.Context, username, projectName string) error {
	return m.assignProjectFunc(ctx, username, projectName)
}

type mockLaborRateService struct {
	listFunc       func(ctx context.Context) (map[string]model.LaborRate, error)
	bulkUpsertFunc func(ctx context.Context, rates []model.LaborRate) ([]string, error)
	setLockedFunc  func(ctx context.Context, workType string, locked bool) error
}

func (m *mockLaborRateService) List(ctx context.Context) (map[string]model.LaborRate, error) {
	return m.listFunc(ctx)
}
func (m *mockLaborRateService) BulkUpsert(ctx context.Context, rates []model.LaborRate) ([]string, error) {
	return m.bulkUpsertFunc(ctx, rates)
}
func (m *mockLaborRateService) SetLocked(ctx context.Context, workType string, locked bool) error {
	return m.setLockedFunc(ctx, workType, locked)
}

type mockPolicyService struct {
	snapshotFunc func() model.HealthPolicy
	updateFunc   func(ctx context.Context, patch model.HealthPolicyPatch) (model.HealthPolicy, error)
}

func (m *mockPolicyService) Snapshot() model.HealthPolicy {
	return m.snapshotFunc()
}
func (m *mockPolicyService) Update(ctx context.Context, patch model.HealthPolicyPatch) (model.HealthPolicy, error) {
	return m.updateFunc(ctx, patch)
}

// serve routes the request through a mux so {name} style path values resolve.
func serve(pattern string, h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, h)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	return w
}
