package repository

import (
	"context"

	"github.com/sitelabor/backend/internal/model"
)

// UserRepository handles user records and project assignments.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Create(ctx context.Context, user *model.User) error
	AssignProject(ctx context.Context, username, projectName string) error
}
