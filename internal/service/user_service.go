package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sitelabor/backend/internal/model"
	"github.com/sitelabor/backend/internal/repository"
)

// UserService manages user records and their project assignments.
type UserService interface {
	Get(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Create(ctx context.Context, username, role string) (*model.User, error)
	AssignProject(ctx context.Context, username, projectName string) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Get(ctx context.Context, username string) (*model.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *userService) List(ctx context.Context) ([]*model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) Create(ctx context.Context, username, role string) (*model.User, error) {
	if username == "" {
		return nil, errors.New("username is required")
	}
	if role != model.RoleAdmin && role != model.RoleUser {
		return nil, fmt.Errorf("invalid role %q", role)
	}
	u := &model.User{Username: username, Role: role}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) AssignProject(ctx context.Context, username, projectName string) error {
	if _, err := s.repo.FindByUsername(ctx, username); err != nil {
		return err
	}
	return s.repo.AssignProject(ctx, username, projectName)
}
