package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/boardline/boardline-backend/internal/domain/entity"
	"github.com/boardline/boardline-backend/internal/pkg/pagination"
	"github.com/boardline/boardline-backend/internal/usecase/auth"
	"github.com/boardline/boardline-backend/internal/usecase/catalog"
	"github.com/boardline/boardline-backend/internal/usecase/inquiry"
	"github.com/boardline/boardline-backend/internal/usecase/media"
	"github.com/boardline/boardline-backend/internal/usecase/promotion"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type AuthService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.TokenPair, *entity.AdminUser, error)
	Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error)
	Logout(ctx context.Context, adminID uuid.UUID) error
}

type CatalogService interface {
	CreateProduct(ctx context.Context, input catalog.ProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error)
	ListProducts(ctx context.Context, input catalog.ListProductsInput) ([]entity.Product, *pagination.Info, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input catalog.ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	CreateCollection(ctx context.Context, input catalog.CollectionInput) (*entity.Collection, error)
	GetCollectionBySlug(ctx context.Context, slug string) (*entity.Collection, error)
	ListCollections(ctx context.Context, includeHidden bool) ([]entity.Collection, error)
	UpdateCollection(ctx context.Context, id uuid.UUID, input catalog.CollectionInput) (*entity.Collection, error)
	DeleteCollection(ctx context.Context, id uuid.UUID) error
	AddProductToCollection(ctx context.Context, collectionID, productID uuid.UUID) error
	RemoveProductFromCollection(ctx context.Context, collectionID, productID uuid.UUID) error
	CollectionProducts(ctx context.Context, collectionID uuid.UUID) ([]entity.Product, error)
}

type MediaService interface {
	Upload(ctx context.Context, input media.UploadInput) (*entity.ImageBundle, error)
	ListBundles(ctx context.Context, input media.ListInput) ([]entity.ImageBundle, error)
	DeleteBundle(ctx context.Context, bundleID uuid.UUID) error
	Reorder(ctx context.Context, productID uuid.UUID, orders []media.BundleOrder) error
}

type PromotionService interface {
	Create(ctx context.Context, input promotion.Input) (*entity.Promotion, error)
	List(ctx context.Context) ([]entity.Promotion, error)
	ListActive(ctx context.Context) ([]entity.Promotion, error)
	Update(ctx context.Context, id uuid.UUID, input promotion.Input) (*entity.Promotion, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type InquiryService interface {
	Submit(ctx context.Context, input inquiry.SubmitInput) (*entity.Inquiry, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error)
	List(ctx context.Context, input inquiry.ListInput) ([]entity.Inquiry, *pagination.Info, error)
	SetStatus(ctx context.Context, id uuid.UUID, status entity.InquiryStatus) (*entity.Inquiry, error)
}
