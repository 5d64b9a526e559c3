package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boardline/boardline-backend/internal/adapter/repository"
	"github.com/boardline/boardline-backend/internal/domain"
	"github.com/boardline/boardline-backend/internal/domain/entity"
	"github.com/boardline/boardline-backend/internal/pkg/pagination"
)

type ProductRepo struct {
	pool *pgxpool.Pool
}

func NewProductRepo(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

const productColumns = `
	id, slug, name_en, name_bg, description_en, description_bg,
	brand, category, price_cents, currency, cover_url, active,
	created_at, updated_at
`

func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (
			id, slug, name_en, name_bg, description_en, description_bg,
			brand, category, price_cents, currency, cover_url, active,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.pool.Exec(ctx, query,
		product.ID, product.Slug,
		product.Name.EN, product.Name.BG,
		product.Description.EN, product.Description.BG,
		product.Brand, product.Category, product.PriceCents, product.Currency,
		product.CoverURL, product.Active,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *ProductRepo) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE slug = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, slug))
}

func (r *ProductRepo) List(ctx context.Context, params repository.ProductListParams) ([]entity.Product, *pagination.Info, error) {
	where := `WHERE ($1 = '' OR category = $1) AND ($2 = '' OR brand = $2) AND ($3 OR active)`

	var total int
	countQuery := `SELECT COUNT(*) FROM products ` + where
	if err := r.pool.QueryRow(ctx, countQuery, params.Category, params.Brand, params.IncludeInactive).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting products: %w", err)
	}

	query := `
		SELECT ` + productColumns + `
		FROM products ` + where + `
		ORDER BY created_at DESC
		LIMIT $4 OFFSET $5
	`
	rows, err := r.pool.Query(ctx, query,
		params.Category, params.Brand, params.IncludeInactive,
		params.Pagination.Limit(), params.Pagination.Offset(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, nil, err
		}
		products = append(products, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return products, pagination.NewInfo(params.Pagination.Page, params.Pagination.PerPage, total), nil
}

func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name_en = $2, name_bg = $3, description_en = $4, description_bg = $5,
		    brand = $6, category = $7, price_cents = $8, active = $9, updated_at = $10
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name.EN, product.Name.BG,
		product.Description.EN, product.Description.BG,
		product.Brand, product.Category, product.PriceCents, product.Active,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepo) SetCoverURL(ctx context.Context, id uuid.UUID, coverURL *string) error {
	query := `UPDATE products SET cover_url = $2, updated_at = NOW() WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id, coverURL)
	if err != nil {
		return fmt.Errorf("updating cover url: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM products WHERE slug = $1)`
	if err := r.pool.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking slug: %w", err)
	}
	return exists, nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var product entity.Product
	err := row.Scan(
		&product.ID, &product.Slug,
		&product.Name.EN, &product.Name.BG,
		&product.Description.EN, &product.Description.BG,
		&product.Brand, &product.Category, &product.PriceCents, &product.Currency,
		&product.CoverURL, &product.Active,
		&product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning product: %w", err)
	}
	return &product, nil
}
