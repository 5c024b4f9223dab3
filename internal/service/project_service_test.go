package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sitelabor/backend/internal/model"
	"github.com/sitelabor/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock ProjectRepository
// ---------------------------------------------------------------------------

type mockProjectRepository struct {
	getByNameFunc     func(ctx context.Context, name string) (*model.Project, error)
	listAllFunc       func(ctx context.Context) ([]*model.Project, error)
	createFunc        func(ctx context.Context, p *model.Project) error
	deleteFunc        func(ctx context.Context, name string) error
	updateStatusFunc  func(ctx context.Context, name, status string) error
	addWorkTypeFunc   func(ctx context.Context, projectName, workType, company string, contract int) error
	saveDailyWorkFunc func(ctx context.Context, projectName, date string, entries map[string]*model.WorkEntry) error
}

func (m *mockProjectRepository) GetByName(ctx context.Context, name string) (*model.Project, error) {
	if m.getByNameFunc != nil {
		return m.getByNameFunc(ctx, name)
	}
	return nil, repository.ErrNotFound
}
func (m *mockProjectRepository) ListAll(ctx context.Context) ([]*model.Project, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx)
	}
	return nil, nil
}
func (m *mockProjectRepository) Create(ctx context.Context, p *model.Project) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, p)
	}
	return nil
}
func (m *mockProjectRepository) Delete(ctx context.Context, name string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, name)
	}
	return nil
}
func (m *mockProjectRepository) UpdateStatus(ctx context.Context, name, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, name, status)
	}
	return nil
}
func (m *mockProjectRepository) AddWorkType(ctx context.Context, projectName, workType, company string, contract int) error {
	if m.addWorkTypeFunc != nil {
		return m.addWorkTypeFunc(ctx, projectName, workType, company, contract)
	}
	return nil
}
func (m *mockProjectRepository) SaveDailyWork(ctx context.Context, projectName, date string, entries map[string]*model.WorkEntry) error {
	if m.saveDailyWorkFunc != nil {
		return m.saveDailyWorkFunc(ctx, projectName, date, entries)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestProjectService_Create_SeedsMissingRates(t *testing.T) {
	ctx := context.Background()
	var seeded []string
	rates := &mockLaborRateRepository{
		getFunc: func(_ context.Context, workType string) (model.LaborRate, error) {
			if workType == "도장공사" {
				return model.LaborRate{WorkType: "도장공사", Day: 120_000}, nil
			}
			return model.LaborRate{}, repository.ErrNotFound
		},
		upsertFunc: func(_ context.Context, rate model.LaborRate) error {
			seeded = append(seeded, rate.WorkType)
			return nil
		},
	}
	svc := NewProjectService(&mockProjectRepository{}, rates)

	p, err := svc.Create(ctx, "현대카드 인테리어공사", []string{"도장공사", "목공사"},
		map[string]int{"도장공사": 200_000}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != model.ProjectActive {
		t.Errorf("expected status active, got %q", p.Status)
	}
	// Only the work type without a rate on file gets a zero-rate seed.
	if len(seeded) != 1 || seeded[0] != "목공사" {
		t.Errorf("expected 목공사 seeded, got %v", seeded)
	}
}

func TestProjectService_Create_Validation(t *testing.T) {
	svc := NewProjectService(&mockProjectRepository{}, &mockLaborRateRepository{})

	if _, err := svc.Create(context.Background(), "", []string{"도장공사"}, nil, nil); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := svc.Create(context.Background(), "P", nil, nil, nil); err == nil {
		t.Error("expected error for no work types")
	}
}

func TestProjectService_SaveDailyWork_RecomputesTotals(t *testing.T) {
	ctx := context.Background()
	var saved map[string]*model.WorkEntry
	repo := &mockProjectRepository{
		saveDailyWorkFunc: func(_ context.Context, projectName, date string, entries map[string]*model.WorkEntry) error {
			if projectName != "P" || date != "2025-08-24" {
				t.Errorf("unexpected save target %q/%q", projectName, date)
			}
			saved = entries
			return nil
		},
	}
	svc := NewProjectService(repo, &mockLaborRateRepository{})

	progress := 35.5
	err := svc.SaveDailyWork(ctx, nil, "P", "2025-08-24", map[string]DailyWorkInput{
		"도장공사": {Day: 5, Night: 3, Midnight: 2, Progress: &progress},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := saved["도장공사"]
	if e == nil {
		t.Fatal("expected entry for 도장공사")
	}
	if e.Total != 10 {
		t.Errorf("expected total recomputed to 10, got %d", e.Total)
	}
	if e.Progress == nil || *e.Progress != 35.5 {
		t.Errorf("expected progress 35.5, got %v", e.Progress)
	}
}

func TestProjectService_SaveDailyWork_RejectsBadInput(t *testing.T) {
	svc := NewProjectService(&mockProjectRepository{}, &mockLaborRateRepository{})
	ctx := context.Background()

	err := svc.SaveDailyWork(ctx, nil, "P", "24-08-2025", map[string]DailyWorkInput{"도장공사": {Day: 1}})
	if err == nil {
		t.Error("expected error for malformed date")
	}

	err = svc.SaveDailyWork(ctx, nil, "P", "2025-08-24", map[string]DailyWorkInput{"도장공사": {Day: -1}})
	if err == nil {
		t.Error("expected error for negative headcount")
	}

	err = svc.SaveDailyWork(ctx, nil, "P", "2025-08-24", map[string]DailyWorkInput{})
	if err == nil {
		t.Error("expected error for empty submission")
	}
}

func TestProjectService_SaveDailyWork_ForbiddenForUnassignedUser(t *testing.T) {
	svc := NewProjectService(&mockProjectRepository{}, &mockLaborRateRepository{})
	user := &model.User{Username: "user1", Role: model.RoleUser, Projects: []string{"other"}}

	err := svc.SaveDailyWork(context.Background(), user, "P", "2025-08-24",
		map[string]DailyWorkInput{"도장공사": {Day: 1}})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestProjectService_SaveDailyWork_AdminBypassesAssignment(t *testing.T) {
	var savedCalled bool
	repo := &mockProjectRepository{
		saveDailyWorkFunc: func(context.Context, string, string, map[string]*model.WorkEntry) error {
			savedCalled = true
			return nil
		},
	}
	svc := NewProjectService(repo, &mockLaborRateRepository{})
	admin := &model.User{Username: "admin", Role: model.RoleAdmin}

	err := svc.SaveDailyWork(context.Background(), admin, "P", "2025-08-24",
		map[string]DailyWorkInput{"도장공사": {Day: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !savedCalled {
		t.Error("expected save to reach the repository")
	}
}

func TestProjectService_AddWorkType_SeedsRate(t *testing.T) {
	var added, seeded string
	repo := &mockProjectRepository{
		addWorkTypeFunc: func(_ context.Context, projectName, workType, company string, contract int) error {
			added = workType
			return nil
		},
	}
	rates := &mockLaborRateRepository{
		upsertFunc: func(_ context.Context, rate model.LaborRate) error {
			seeded = rate.WorkType
			return nil
		},
	}
	svc := NewProjectService(repo, rates)

	if err := svc.AddWorkType(context.Background(), "P", "철거", "대한철거", 100_000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added != "철거" || seeded != "철거" {
		t.Errorf("expected work type added and rate seeded, got added=%q seeded=%q", added, seeded)
	}
}

func TestProjectService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc := NewProjectService(&mockProjectRepository{}, &mockLaborRateRepository{})
	if err := svc.UpdateStatus(context.Background(), "P", "archived"); err == nil {
		t.Error("expected error for unknown status")
	}
	if err := svc.UpdateStatus(context.Background(), "P", model.ProjectCompleted); err != nil {
		t.Errorf("unexpected error for valid status: %v", err)
	}
}
