package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boardline/boardline-backend/internal/domain"
	"github.com/boardline/boardline-backend/internal/domain/entity"
)

type AdminUserRepo struct {
	pool *pgxpool.Pool
}

func NewAdminUserRepo(pool *pgxpool.Pool) *AdminUserRepo {
	return &AdminUserRepo{pool: pool}
}

func (r *AdminUserRepo) Create(ctx context.Context, admin *entity.AdminUser) error {
	query := `
		INSERT INTO admin_users (id, email, password_hash, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		admin.ID, admin.Email, admin.PasswordHash, admin.Name,
		admin.CreatedAt, admin.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting admin user: %w", err)
	}
	return nil
}

func (r *AdminUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	query := `
		SELECT id, email, password_hash, name, created_at, updated_at
		FROM admin_users
		WHERE id = $1
	`
	return scanAdminUser(r.pool.QueryRow(ctx, query, id))
}

func (r *AdminUserRepo) GetByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	query := `
		SELECT id, email, password_hash, name, created_at, updated_at
		FROM admin_users
		WHERE email = $1
	`
	return scanAdminUser(r.pool.QueryRow(ctx, query, email))
}

func scanAdminUser(row pgx.Row) (*entity.AdminUser, error) {
	var admin entity.AdminUser
	err := row.Scan(
		&admin.ID, &admin.Email, &admin.PasswordHash, &admin.Name,
		&admin.CreatedAt, &admin.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("scanning admin user: %w", err)
	}
	return &admin, nil
}
