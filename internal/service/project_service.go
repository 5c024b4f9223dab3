package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sitelabor/backend/internal/model"
	"github.com/sitelabor/backend/internal/repository"
)

const dateLayout = "2006-01-02"

// DailyWorkInput is one work type's submission for a date. Total is never
// accepted from the client; it is recomputed from the shift counts.
type DailyWorkInput struct {
	Day      int      `json:"day"`
	Night    int      `json:"night"`
	Midnight int      `json:"midnight"`
	Progress *float64 `json:"progress,omitempty"`
}

// ProjectService owns project CRUD and the daily entry submission path.
type ProjectService interface {
	Get(ctx context.Context, name string) (*model.Project, error)
	List(ctx context.Context) ([]*model.Project, error)
	Create(ctx context.Context, name string, workTypes []string, contracts map[string]int, companies map[string]string) (*model.Project, error)
	Delete(ctx context.Context, name string) error
	UpdateStatus(ctx context.Context, name, status string) error
	AddWorkType(ctx context.Context, projectName, workType, company string, contract int) error
	SaveDailyWork(ctx context.Context, user *model.User, projectName, date string, inputs map[string]DailyWorkInput) error
}

var validStatuses = map[string]bool{
	model.ProjectActive:    true,
	model.ProjectCompleted: true,
}

// ProjectServiceImpl implements ProjectService.
type ProjectServiceImpl struct {
	repo  repository.ProjectRepository
	rates repository.LaborRateRepository
}

// NewProjectService creates a ProjectServiceImpl.
func NewProjectService(repo repository.ProjectRepository, rates repository.LaborRateRepository) ProjectService {
	return &ProjectServiceImpl{repo: repo, rates: rates}
}

func (s *ProjectServiceImpl) Get(ctx context.Context, name string) (*model.Project, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *ProjectServiceImpl) List(ctx context.Context) ([]*model.Project, error) {
	return s.repo.ListAll(ctx)
}

func (s *ProjectServiceImpl) Create(ctx context.Context, name string, workTypes []string, contracts map[string]int, companies map[string]string) (*model.Project, error) {
	if name == "" {
		return nil, errors.New("project name is required")
	}
	if len(workTypes) == 0 {
		return nil, errors.New("at least one work type is required")
	}
	p := &model.Project{
		Name:      name,
		WorkTypes: workTypes,
		Contracts: contracts,
		Companies: companies,
		Status:    model.ProjectActive,
	}
	if p.Contracts == nil {
		p.Contracts = map[string]int{}
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	// Seed a zero rate for any work type the rate table does not know yet,
	// so the rate admin screen lists it for pricing.
	for _, wt := range workTypes {
		if err := s.seedRate(ctx, wt); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (s *ProjectServiceImpl) Delete(ctx context.Context, name string) error {
	return s.repo.Delete(ctx, name)
}

func (s *ProjectServiceImpl) UpdateStatus(ctx context.Context, name, status string) error {
	if !validStatuses[status] {
		return fmt.Errorf("invalid status %q", status)
	}
	return s.repo.UpdateStatus(ctx, name, status)
}

func (s *ProjectServiceImpl) AddWorkType(ctx context.Context, projectName, workType, company string, contract int) error {
	if workType == "" {
		return errors.New("work type is required")
	}
	if err := s.repo.AddWorkType(ctx, projectName, workType, company, contract); err != nil {
		return err
	}
	return s.seedRate(ctx, workType)
}

func (s *ProjectServiceImpl) SaveDailyWork(ctx context.Context, user *model.User, projectName, date string, inputs map[string]DailyWorkInput) error {
	if user != nil && !user.CanAccess(projectName) {
		return ErrForbidden
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	if len(inputs) == 0 {
		return errors.New("no work entries submitted")
	}

	entries := make(map[string]*model.WorkEntry, len(inputs))
	for wt, in := range inputs {
		if in.Day < 0 || in.Night < 0 || in.Midnight < 0 {
			return fmt.Errorf("negative headcount for %q", wt)
		}
		entries[wt] = model.NewWorkEntry(in.Day, in.Night, in.Midnight, in.Progress)
	}
	return s.repo.SaveDailyWork(ctx, projectName, date, entries)
}

func (s *ProjectServiceImpl) seedRate(ctx context.Context, workType string) error {
	_, err := s.rates.Get(ctx, workType)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return s.rates.Upsert(ctx, model.LaborRate{WorkType: workType})
}
