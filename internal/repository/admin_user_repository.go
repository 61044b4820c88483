package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	appErrors "github.com/unclebandit/sparkles-site/internal/errors"
	"github.com/unclebandit/sparkles-site/internal/model"
)

type AdminUserRepositoryInterface interface {
	GetByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	Create(ctx context.Context, u *model.AdminUser) error
}

type AdminUserRepository struct {
	DB *sql.DB
}

var _ AdminUserRepositoryInterface = (*AdminUserRepository)(nil)

func (r *AdminUserRepository) GetByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	query := `SELECT id, email, password_hash, role, created_at FROM admin_users WHERE email=$1`
	var u model.AdminUser
	err := r.DB.QueryRowContext(ctx, query, strings.ToLower(strings.TrimSpace(email))).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *AdminUserRepository) Create(ctx context.Context, u *model.AdminUser) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = model.RoleUser
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	query := `
        INSERT INTO admin_users (id, email, password_hash, role, created_at, updated_at)
        VALUES ($1, $2, $3, $4, NOW(), NOW())
        RETURNING created_at
    `
	err := r.DB.QueryRowContext(ctx, query, u.ID, u.Email, u.PasswordHash, u.Role).Scan(&u.CreatedAt)
	if isUniqueViolation(err) {
		return appErrors.NewValidation("email", errors.New("already registered"))
	}
	return err
}
