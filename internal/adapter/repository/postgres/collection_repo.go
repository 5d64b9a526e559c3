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

type CollectionRepo struct {
	pool *pgxpool.Pool
}

func NewCollectionRepo(pool *pgxpool.Pool) *CollectionRepo {
	return &CollectionRepo{pool: pool}
}

const collectionColumns = `
	id, slug, title_en, title_bg, description_en, description_bg,
	position, visible, created_at, updated_at
`

func (r *CollectionRepo) Create(ctx context.Context, collection *entity.Collection) error {
	query := `
		INSERT INTO collections (
			id, slug, title_en, title_bg, description_en, description_bg,
			position, visible, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		collection.ID, collection.Slug,
		collection.Title.EN, collection.Title.BG,
		collection.Description.EN, collection.Description.BG,
		collection.Position, collection.Visible,
		collection.CreatedAt, collection.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting collection: %w", err)
	}
	return nil
}

func (r *CollectionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Collection, error) {
	query := `SELECT ` + collectionColumns + ` FROM collections WHERE id = $1`
	return scanCollection(r.pool.QueryRow(ctx, query, id))
}

func (r *CollectionRepo) GetBySlug(ctx context.Context, slug string) (*entity.Collection, error) {
	query := `SELECT ` + collectionColumns + ` FROM collections WHERE slug = $1`
	return scanCollection(r.pool.QueryRow(ctx, query, slug))
}

func (r *CollectionRepo) List(ctx context.Context, includeHidden bool) ([]entity.Collection, error) {
	query := `
		SELECT ` + collectionColumns + `
		FROM collections
		WHERE $1 OR visible
		ORDER BY position, created_at
	`
	rows, err := r.pool.Query(ctx, query, includeHidden)
	if err != nil {
		return nil, fmt.Errorf("querying collections: %w", err)
	}
	defer rows.Close()

	var collections []entity.Collection
	for rows.Next() {
		collection, err := scanCollection(rows)
		if err != nil {
			return nil, err
		}
		collections = append(collections, *collection)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return collections, nil
}

func (r *CollectionRepo) Update(ctx context.Context, collection *entity.Collection) error {
	query := `
		UPDATE collections
		SET title_en = $2, title_bg = $3, description_en = $4, description_bg = $5,
		    position = $6, visible = $7, updated_at = $8
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		collection.ID,
		collection.Title.EN, collection.Title.BG,
		collection.Description.EN, collection.Description.BG,
		collection.Position, collection.Visible, collection.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating collection: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrCollectionNotFound
	}
	return nil
}

func (r *CollectionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM collections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting collection: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrCollectionNotFound
	}
	return nil
}

func (r *CollectionRepo) AddProduct(ctx context.Context, collectionID, productID uuid.UUID) error {
	query := `
		INSERT INTO collection_products (collection_id, product_id, added_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (collection_id, product_id) DO NOTHING
	`
	if _, err := r.pool.Exec(ctx, query, collectionID, productID); err != nil {
		return fmt.Errorf("adding collection member: %w", err)
	}
	return nil
}

func (r *CollectionRepo) RemoveProduct(ctx context.Context, collectionID, productID uuid.UUID) error {
	query := `DELETE FROM collection_products WHERE collection_id = $1 AND product_id = $2`
	if _, err := r.pool.Exec(ctx, query, collectionID, productID); err != nil {
		return fmt.Errorf("removing collection member: %w", err)
	}
	return nil
}

func (r *CollectionRepo) ListProductIDs(ctx context.Context, collectionID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT product_id
		FROM collection_products
		WHERE collection_id = $1
		ORDER BY added_at
	`
	rows, err := r.pool.Query(ctx, query, collectionID)
	if err != nil {
		return nil, fmt.Errorf("querying collection members: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning member id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func scanCollection(row pgx.Row) (*entity.Collection, error) {
	var collection entity.Collection
	err := row.Scan(
		&collection.ID, &collection.Slug,
		&collection.Title.EN, &collection.Title.BG,
		&collection.Description.EN, &collection.Description.BG,
		&collection.Position, &collection.Visible,
		&collection.CreatedAt, &collection.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCollectionNotFound
		}
		return nil, fmt.Errorf("scanning collection: %w", err)
	}
	return &collection, nil
}
