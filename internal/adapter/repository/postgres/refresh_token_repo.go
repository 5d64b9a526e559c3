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

type RefreshTokenRepo struct {
	pool *pgxpool.Pool
}

func NewRefreshTokenRepo(pool *pgxpool.Pool) *RefreshTokenRepo {
	return &RefreshTokenRepo{pool: pool}
}

func (r *RefreshTokenRepo) Create(ctx context.Context, token *entity.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (id, admin_id, token, expires_at, revoked_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		token.ID, token.AdminID, token.Token, token.ExpiresAt, token.RevokedAt, token.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting refresh token: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepo) GetByToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	query := `
		SELECT id, admin_id, token, expires_at, revoked_at, created_at
		FROM refresh_tokens
		WHERE token = $1
	`
	var rt entity.RefreshToken
	err := r.pool.QueryRow(ctx, query, token).Scan(
		&rt.ID, &rt.AdminID, &rt.Token, &rt.ExpiresAt, &rt.RevokedAt, &rt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, fmt.Errorf("scanning refresh token: %w", err)
	}
	return &rt, nil
}

func (r *RefreshTokenRepo) Revoke(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE refresh_tokens SET revoked_at = NOW() WHERE id = $1 AND revoked_at IS NULL`
	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("revoking refresh token: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepo) RevokeByAdminID(ctx context.Context, adminID uuid.UUID) error {
	query := `UPDATE refresh_tokens SET revoked_at = NOW() WHERE admin_id = $1 AND revoked_at IS NULL`
	if _, err := r.pool.Exec(ctx, query, adminID); err != nil {
		return fmt.Errorf("revoking admin tokens: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepo) DeleteExpired(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at < NOW()`); err != nil {
		return fmt.Errorf("deleting expired tokens: %w", err)
	}
	return nil
}
