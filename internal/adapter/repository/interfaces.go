package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/boardline/boardline-backend/internal/domain/entity"
	"github.com/boardline/boardline-backend/internal/domain/valueobject"
	"github.com/boardline/boardline-backend/internal/pkg/pagination"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	List(ctx context.Context, params ProductListParams) ([]entity.Product, *pagination.Info, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetCoverURL(ctx context.Context, id uuid.UUID, coverURL *string) error
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}

type ProductListParams struct {
	Pagination      pagination.Params
	Category        string
	Brand           string
	IncludeInactive bool
}

type ImageVariantRepository interface {
	// CreateBundle inserts every variant row of one bundle as a single
	// transaction. Either all rows land or none do.
	CreateBundle(ctx context.Context, variants []entity.ImageVariant) error
	GetByProduct(ctx context.Context, productID uuid.UUID, size *valueobject.ImageSize) ([]entity.ImageVariant, error)
	MaxDisplayOrder(ctx context.Context, productID uuid.UUID) (int, error)
	// DeleteByBundle removes all rows of a bundle and returns the storage
	// paths they referenced so the caller can clean up the objects.
	DeleteByBundle(ctx context.Context, bundleID uuid.UUID) ([]string, error)
	UpdateDisplayOrder(ctx context.Context, bundleID uuid.UUID, displayOrder int) error
	ListPage(ctx context.Context, afterID uuid.UUID, limit int) ([]entity.ImageVariant, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type CollectionRepository interface {
	Create(ctx context.Context, collection *entity.Collection) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Collection, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Collection, error)
	List(ctx context.Context, includeHidden bool) ([]entity.Collection, error)
	Update(ctx context.Context, collection *entity.Collection) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddProduct(ctx context.Context, collectionID, productID uuid.UUID) error
	RemoveProduct(ctx context.Context, collectionID, productID uuid.UUID) error
	ListProductIDs(ctx context.Context, collectionID uuid.UUID) ([]uuid.UUID, error)
}

type PromotionRepository interface {
	Create(ctx context.Context, promotion *entity.Promotion) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Promotion, error)
	List(ctx context.Context) ([]entity.Promotion, error)
	ListActive(ctx context.Context, at time.Time) ([]entity.Promotion, error)
	Update(ctx context.Context, promotion *entity.Promotion) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error)
	List(ctx context.Context, params InquiryListParams) ([]entity.Inquiry, *pagination.Info, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InquiryStatus) error
}

type InquiryListParams struct {
	Pagination pagination.Params
	Status     *entity.InquiryStatus
}

type AdminUserRepository interface {
	Create(ctx context.Context, admin *entity.AdminUser) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*entity.AdminUser, error)
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.RefreshToken) error
	GetByToken(ctx context.Context, token string) (*entity.RefreshToken, error)
	Revoke(ctx context.Context, id uuid.UUID) error
	RevokeByAdminID(ctx context.Context, adminID uuid.UUID) error
	DeleteExpired(ctx context.Context) error
}
