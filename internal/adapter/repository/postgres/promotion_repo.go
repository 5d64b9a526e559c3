package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boardline/boardline-backend/internal/domain"
	"github.com/boardline/boardline-backend/internal/domain/entity"
)

type PromotionRepo struct {
	pool *pgxpool.Pool
}

func NewPromotionRepo(pool *pgxpool.Pool) *PromotionRepo {
	return &PromotionRepo{pool: pool}
}

const promotionColumns = `
	id, title_en, title_bg, body_en, body_bg, link_url, image_url,
	starts_at, ends_at, enabled, created_at, updated_at
`

func (r *PromotionRepo) Create(ctx context.Context, promo *entity.Promotion) error {
	query := `
		INSERT INTO promotions (
			id, title_en, title_bg, body_en, body_bg, link_url, image_url,
			starts_at, ends_at, enabled, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.pool.Exec(ctx, query,
		promo.ID,
		promo.Title.EN, promo.Title.BG,
		promo.Body.EN, promo.Body.BG,
		promo.LinkURL, promo.ImageURL,
		promo.StartsAt, promo.EndsAt, promo.Enabled,
		promo.CreatedAt, promo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting promotion: %w", err)
	}
	return nil
}

func (r *PromotionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE id = $1`
	return scanPromotion(r.pool.QueryRow(ctx, query, id))
}

func (r *PromotionRepo) List(ctx context.Context) ([]entity.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions ORDER BY starts_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying promotions: %w", err)
	}
	defer rows.Close()
	return collectPromotions(rows)
}

func (r *PromotionRepo) ListActive(ctx context.Context, at time.Time) ([]entity.Promotion, error) {
	query := `
		SELECT ` + promotionColumns + `
		FROM promotions
		WHERE enabled AND starts_at <= $1 AND ends_at > $1
		ORDER BY starts_at DESC
	`
	rows, err := r.pool.Query(ctx, query, at)
	if err != nil {
		return nil, fmt.Errorf("querying active promotions: %w", err)
	}
	defer rows.Close()
	return collectPromotions(rows)
}

func (r *PromotionRepo) Update(ctx context.Context, promo *entity.Promotion) error {
	query := `
		UPDATE promotions
		SET title_en = $2, title_bg = $3, body_en = $4, body_bg = $5,
		    link_url = $6, image_url = $7, starts_at = $8, ends_at = $9,
		    enabled = $10, updated_at = $11
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		promo.ID,
		promo.Title.EN, promo.Title.BG,
		promo.Body.EN, promo.Body.BG,
		promo.LinkURL, promo.ImageURL,
		promo.StartsAt, promo.EndsAt, promo.Enabled, promo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating promotion: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPromotionNotFound
	}
	return nil
}

func (r *PromotionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting promotion: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPromotionNotFound
	}
	return nil
}

func collectPromotions(rows pgx.Rows) ([]entity.Promotion, error) {
	var promotions []entity.Promotion
	for rows.Next() {
		promo, err := scanPromotion(rows)
		if err != nil {
			return nil, err
		}
		promotions = append(promotions, *promo)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return promotions, nil
}

func scanPromotion(row pgx.Row) (*entity.Promotion, error) {
	var promo entity.Promotion
	err := row.Scan(
		&promo.ID,
		&promo.Title.EN, &promo.Title.BG,
		&promo.Body.EN, &promo.Body.BG,
		&promo.LinkURL, &promo.ImageURL,
		&promo.StartsAt, &promo.EndsAt, &promo.Enabled,
		&promo.CreatedAt, &promo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPromotionNotFound
		}
		return nil, fmt.Errorf("scanning promotion: %w", err)
	}
	return &promo, nil
}
