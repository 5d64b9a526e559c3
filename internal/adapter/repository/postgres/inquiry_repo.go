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

type InquiryRepo struct {
	pool *pgxpool.Pool
}

func NewInquiryRepo(pool *pgxpool.Pool) *InquiryRepo {
	return &InquiryRepo{pool: pool}
}

// Create persists the inquiry header and its items in one transaction.
func (r *InquiryRepo) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	headerQuery := `
		INSERT INTO inquiries (
			id, customer_name, customer_email, customer_phone, message,
			language, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = tx.Exec(ctx, headerQuery,
		inquiry.ID, inquiry.CustomerName, inquiry.CustomerEmail, inquiry.CustomerPhone,
		inquiry.Message, inquiry.Language, inquiry.Status,
		inquiry.CreatedAt, inquiry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting inquiry: %w", err)
	}

	itemQuery := `
		INSERT INTO inquiry_items (id, inquiry_id, product_id, quantity, note)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, item := range inquiry.Items {
		if _, err := tx.Exec(ctx, itemQuery, item.ID, inquiry.ID, item.ProductID, item.Quantity, item.Note); err != nil {
			return fmt.Errorf("inserting inquiry item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing inquiry: %w", err)
	}
	return nil
}

func (r *InquiryRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error) {
	query := `
		SELECT id, customer_name, customer_email, customer_phone, message,
		       language, status, created_at, updated_at
		FROM inquiries
		WHERE id = $1
	`
	inquiry, err := scanInquiry(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}
	inquiry.Items = items
	return inquiry, nil
}

func (r *InquiryRepo) List(ctx context.Context, params repository.InquiryListParams) ([]entity.Inquiry, *pagination.Info, error) {
	var statusParam *string
	if params.Status != nil {
		s := string(*params.Status)
		statusParam = &s
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM inquiries WHERE $1::text IS NULL OR status = $1`
	if err := r.pool.QueryRow(ctx, countQuery, statusParam).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting inquiries: %w", err)
	}

	query := `
		SELECT id, customer_name, customer_email, customer_phone, message,
		       language, status, created_at, updated_at
		FROM inquiries
		WHERE $1::text IS NULL OR status = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, statusParam, params.Pagination.Limit(), params.Pagination.Offset())
	if err != nil {
		return nil, nil, fmt.Errorf("querying inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []entity.Inquiry
	for rows.Next() {
		inquiry, err := scanInquiry(rows)
		if err != nil {
			return nil, nil, err
		}
		inquiries = append(inquiries, *inquiry)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	for i := range inquiries {
		items, err := r.loadItems(ctx, inquiries[i].ID)
		if err != nil {
			return nil, nil, err
		}
		inquiries[i].Items = items
	}

	return inquiries, pagination.NewInfo(params.Pagination.Page, params.Pagination.PerPage, total), nil
}

func (r *InquiryRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InquiryStatus) error {
	query := `UPDATE inquiries SET status = $2, updated_at = NOW() WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("updating inquiry status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrInquiryNotFound
	}
	return nil
}

func (r *InquiryRepo) loadItems(ctx context.Context, inquiryID uuid.UUID) ([]entity.InquiryItem, error) {
	query := `
		SELECT id, inquiry_id, product_id, quantity, note
		FROM inquiry_items
		WHERE inquiry_id = $1
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, inquiryID)
	if err != nil {
		return nil, fmt.Errorf("querying inquiry items: %w", err)
	}
	defer rows.Close()

	var items []entity.InquiryItem
	for rows.Next() {
		var item entity.InquiryItem
		if err := rows.Scan(&item.ID, &item.InquiryID, &item.ProductID, &item.Quantity, &item.Note); err != nil {
			return nil, fmt.Errorf("scanning inquiry item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanInquiry(row pgx.Row) (*entity.Inquiry, error) {
	var inquiry entity.Inquiry
	err := row.Scan(
		&inquiry.ID, &inquiry.CustomerName, &inquiry.CustomerEmail, &inquiry.CustomerPhone,
		&inquiry.Message, &inquiry.Language, &inquiry.Status,
		&inquiry.CreatedAt, &inquiry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("scanning inquiry: %w", err)
	}
	return &inquiry, nil
}
