package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sitelabor/backend/internal/model"
)

type pgUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgUserRepository returns a PostgreSQL-backed UserRepository.
func NewPgUserRepository(pool *pgxpool.Pool) UserRepository {
	return &pgUserRepository{pool: pool}
}

func (r *pgUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx,
		`SELECT username, role, created_at FROM users WHERE username = $1`,
		username,
	).Scan(&u.Username, &u.Role, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT project_name FROM user_projects WHERE username = $1 ORDER BY project_name`,
		username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		u.Projects = append(u.Projects, name)
	}
	return &u, rows.Err()
}

func (r *pgUserRepository) List(ctx context.Context) ([]*model.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT username, role, created_at FROM users ORDER BY username`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.Username, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

func (r *pgUserRepository) Create(ctx context.Context, user *model.User) error {
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO users (username, role) VALUES ($1, $2) RETURNING created_at`,
		user.Username, user.Role,
	).Scan(&user.CreatedAt)
}

func (r *pgUserRepository) AssignProject(ctx context.Context, username, projectName string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_projects (username, project_name) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		username, projectName)
	return err
}
