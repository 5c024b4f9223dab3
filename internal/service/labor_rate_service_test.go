package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sitelabor/backend/internal/model"
	"github.com/sitelabor/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock LaborRateRepository (shared by labor rate and project service tests)
// ---------------------------------------------------------------------------

type mockLaborRateRepository struct {
	getAllFunc    func(ctx context.Context) (map[string]model.LaborRate, error)
	getFunc       func(ctx context.Context, workType string) (model.LaborRate, error)
	upsertFunc    func(ctx context.Context, rate model.LaborRate) error
	setLockedFunc func(ctx context.Context, workType string, locked bool) error
}

func (m *mockLaborRateRepository) GetAll(ctx context.Context) (map[string]model.LaborRate, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return map[string]model.LaborRate{}, nil
}
func (m *mockLaborRateRepository) Get(ctx context.Context, workType string) (model.LaborRate, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, workType)
	}
	return model.LaborRate{}, repository.ErrNotFound
}
func (m *mockLaborRateRepository) Upsert(ctx context.Context, rate model.LaborRate) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, rate)
	}
	return nil
}
func (m *mockLaborRateRepository) SetLocked(ctx context.Context, workType string, locked bool) error {
	if m.setLockedFunc != nil {
		return m.setLockedFunc(ctx, workType, locked)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestLaborRateService_BulkUpsert_WritesUnlockedRates(t *testing.T) {
	ctx := context.Background()
	var written []model.LaborRate
	mock := &mockLaborRateRepository{
		upsertFunc: func(_ context.Context, rate model.LaborRate) error {
			written = append(written, rate)
			return nil
		},
	}
	svc := NewLaborRateService(mock)

	skipped, err := svc.BulkUpsert(ctx, []model.LaborRate{
		{WorkType: "도장공사", Day: 120_000, Night: 150_000, Midnight: 180_000},
		{WorkType: "목공사", Day: 130_000},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(skipped) != 0 {
		t.Errorf("expected nothing skipped, got %v", skipped)
	}
	if len(written) != 2 || written[0].WorkType != "도장공사" || written[0].Day != 120_000 {
		t.Errorf("unexpected writes: %+v", written)
	}
}

func TestLaborRateService_BulkUpsert_SkipsLockedRates(t *testing.T) {
	ctx := context.Background()
	var written []string
	mock := &mockLaborRateRepository{
		getFunc: func(_ context.Context, workType string) (model.LaborRate, error) {
			if workType == "타일" {
				return model.LaborRate{WorkType: "타일", Day: 140_000, Locked: true}, nil
			}
			return model.LaborRate{}, repository.ErrNotFound
		},
		upsertFunc: func(_ context.Context, rate model.LaborRate) error {
			written = append(written, rate.WorkType)
			return nil
		},
	}
	svc := NewLaborRateService(mock)

	skipped, err := svc.BulkUpsert(ctx, []model.LaborRate{
		{WorkType: "타일", Day: 999},
		{WorkType: "도장공사", Day: 120_000},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(skipped) != 1 || skipped[0] != "타일" {
		t.Errorf("expected 타일 skipped, got %v", skipped)
	}
	if len(written) != 1 || written[0] != "도장공사" {
		t.Errorf("expected only 도장공사 written, got %v", written)
	}
}

func TestLaborRateService_BulkUpsert_RejectsNegativeRate(t *testing.T) {
	svc := NewLaborRateService(&mockLaborRateRepository{})
	_, err := svc.BulkUpsert(context.Background(), []model.LaborRate{{WorkType: "도장공사", Day: -1}})
	if err == nil {
		t.Fatal("expected error for negative rate")
	}
}

func TestLaborRateService_BulkUpsert_PropagatesRepoError(t *testing.T) {
	mock := &mockLaborRateRepository{
		getFunc: func(context.Context, string) (model.LaborRate, error) {
			return model.LaborRate{}, errors.New("db error")
		},
	}
	svc := NewLaborRateService(mock)
	if _, err := svc.BulkUpsert(context.Background(), []model.LaborRate{{WorkType: "도장공사"}}); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestLaborRateService_SetLocked(t *testing.T) {
	var gotWT string
	var gotLocked bool
	mock := &mockLaborRateRepository{
		setLockedFunc: func(_ context.Context, workType string, locked bool) error {
			gotWT, gotLocked = workType, locked
			return nil
		},
	}
	svc := NewLaborRateService(mock)

	if err := svc.SetLocked(context.Background(), "타일", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotWT != "타일" || !gotLocked {
		t.Errorf("expected SetLocked(타일, true), got (%q, %v)", gotWT, gotLocked)
	}
}
