package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boardline/boardline-backend/internal/domain"
	"github.com/boardline/boardline-backend/internal/domain/entity"
	"github.com/boardline/boardline-backend/internal/domain/valueobject"
)

type ImageVariantRepo struct {
	pool *pgxpool.Pool
}

func NewImageVariantRepo(pool *pgxpool.Pool) *ImageVariantRepo {
	return &ImageVariantRepo{pool: pool}
}

// CreateBundle inserts every variant row of one bundle in a single
// transaction. Either the whole bundle lands or none of it does.
func (r *ImageVariantRepo) CreateBundle(ctx context.Context, variants []entity.ImageVariant) error {
	if len(variants) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO product_image_variants (
			id, bundle_id, product_id, size, storage_path, display_order, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, v := range variants {
		_, err := tx.Exec(ctx, query,
			v.ID, v.BundleID, v.ProductID, v.Size, v.StoragePath, v.DisplayOrder, v.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting variant %s: %w", v.Size, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing bundle: %w", err)
	}
	return nil
}

func (r *ImageVariantRepo) GetByProduct(ctx context.Context, productID uuid.UUID, size *valueobject.ImageSize) ([]entity.ImageVariant, error) {
	query := `
		SELECT id, bundle_id, product_id, size, storage_path, display_order, created_at
		FROM product_image_variants
		WHERE product_id = $1 AND ($2::text IS NULL OR size = $2)
		ORDER BY display_order, created_at
	`
	var sizeParam *string
	if size != nil {
		s := string(*size)
		sizeParam = &s
	}

	rows, err := r.pool.Query(ctx, query, productID, sizeParam)
	if err != nil {
		return nil, fmt.Errorf("querying variants: %w", err)
	}
	defer rows.Close()

	return scanVariants(rows)
}

func (r *ImageVariantRepo) MaxDisplayOrder(ctx context.Context, productID uuid.UUID) (int, error) {
	var max int
	query := `SELECT COALESCE(MAX(display_order), 0) FROM product_image_variants WHERE product_id = $1`
	if err := r.pool.QueryRow(ctx, query, productID).Scan(&max); err != nil {
		return 0, fmt.Errorf("querying max display order: %w", err)
	}
	return max, nil
}

// DeleteByBundle removes every row of a bundle and reports the storage
// paths that backed them so the caller can clean up the object store.
func (r *ImageVariantRepo) DeleteByBundle(ctx context.Context, bundleID uuid.UUID) ([]string, error) {
	query := `
		DELETE FROM product_image_variants
		WHERE bundle_id = $1
		RETURNING storage_path
	`
	rows, err := r.pool.Query(ctx, query, bundleID)
	if err != nil {
		return nil, fmt.Errorf("deleting bundle: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("scanning storage path: %w", err)
		}
		paths = append(paths, path)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		return nil, domain.ErrBundleNotFound
	}
	return paths, nil
}

func (r *ImageVariantRepo) UpdateDisplayOrder(ctx context.Context, bundleID uuid.UUID, displayOrder int) error {
	query := `
		UPDATE product_image_variants
		SET display_order = $2
		WHERE bundle_id = $1
	`
	result, err := r.pool.Exec(ctx, query, bundleID, displayOrder)
	if err != nil {
		return fmt.Errorf("updating display order: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrBundleNotFound
	}
	return nil
}

// ListPage walks the whole table in id order for reconciliation sweeps.
func (r *ImageVariantRepo) ListPage(ctx context.Context, afterID uuid.UUID, limit int) ([]entity.ImageVariant, error) {
	query := `
		SELECT id, bundle_id, product_id, size, storage_path, display_order, created_at
		FROM product_image_variants
		WHERE id > $1
		ORDER BY id
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying variant page: %w", err)
	}
	defer rows.Close()

	return scanVariants(rows)
}

func (r *ImageVariantRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM product_image_variants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting variant: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrBundleNotFound
	}
	return nil
}

func scanVariants(rows pgx.Rows) ([]entity.ImageVariant, error) {
	var variants []entity.ImageVariant
	for rows.Next() {
		var v entity.ImageVariant
		err := rows.Scan(&v.ID, &v.BundleID, &v.ProductID, &v.Size, &v.StoragePath, &v.DisplayOrder, &v.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning variant: %w", err)
		}
		variants = append(variants, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return variants, nil
}
