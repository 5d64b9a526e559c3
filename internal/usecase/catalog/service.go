package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/boardline/boardline-backend/internal/adapter/repository"
	"github.com/boardline/boardline-backend/internal/domain"
	"github.com/boardline/boardline-backend/internal/domain/entity"
	"github.com/boardline/boardline-backend/internal/domain/valueobject"
	"github.com/boardline/boardline-backend/internal/pkg/pagination"
)

// Service covers the storefront catalog: products, collections and the
// membership between them. Public single-product reads go through redis
// with a bounded TTL; admin writes invalidate the affected keys.
type Service struct {
	productRepo    repository.ProductRepository
	collectionRepo repository.CollectionRepository
	cache          *redis.Client
	cacheTTL       time.Duration
	logger         *zap.Logger
}

func NewService(
	productRepo repository.ProductRepository,
	collectionRepo repository.CollectionRepository,
	cache *redis.Client,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *Service {
	return &Service{
		productRepo:    productRepo,
		collectionRepo: collectionRepo,
		cache:          cache,
		cacheTTL:       cacheTTL,
		logger:         logger,
	}
}

type ProductInput struct {
	Slug        string
	Name        valueobject.LocalizedText
	Description valueobject.LocalizedText
	Brand       string
	Category    string
	PriceCents  int64
	Currency    string
	Active      bool
}

func (s *Service) CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error) {
	taken, err := s.productRepo.ExistsBySlug(ctx, input.Slug)
	if err != nil {
		return nil, fmt.Errorf("checking slug: %w", err)
	}
	if taken {
		return nil, domain.ErrProductSlugTaken
	}

	product := entity.NewProduct(input.Slug, input.Name, input.Description, input.Brand, input.Category, input.PriceCents, input.Currency)
	product.Active = input.Active

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}

	return product, nil
}

func (s *Service) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// GetProductBySlug is the public storefront read; hits redis first.
func (s *Service) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	key := productCacheKey(slug)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key).Bytes()
		if err == nil {
			var product entity.Product
			if err := json.Unmarshal(cached, &product); err == nil {
				return &product, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("product cache read failed", zap.String("slug", slug), zap.Error(err))
		}
	}

	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(product); err == nil {
			if err := s.cache.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("product cache write failed", zap.String("slug", slug), zap.Error(err))
			}
		}
	}

	return product, nil
}

type ListProductsInput struct {
	Page            int
	PerPage         int
	Category        string
	Brand           string
	IncludeInactive bool
}

func (s *Service) ListProducts(ctx context.Context, input ListProductsInput) ([]entity.Product, *pagination.Info, error) {
	params := repository.ProductListParams{
		Pagination:      pagination.NewParams(input.Page, input.PerPage),
		Category:        input.Category,
		Brand:           input.Brand,
		IncludeInactive: input.IncludeInactive,
	}

	products, pageInfo, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, nil, fmt.Errorf("listing products: %w", err)
	}

	return products, pageInfo, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Update(input.Name, input.Description, input.Brand, input.Category, input.PriceCents, input.Active)

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("updating product: %w", err)
	}

	s.invalidateProduct(ctx, product.Slug)
	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	s.invalidateProduct(ctx, product.Slug)
	return nil
}

type CollectionInput struct {
	Slug        string
	Title       valueobject.LocalizedText
	Description valueobject.LocalizedText
	Position    int
	Visible     bool
}

func (s *Service) CreateCollection(ctx context.Context, input CollectionInput) (*entity.Collection, error) {
	existing, err := s.collectionRepo.GetBySlug(ctx, input.Slug)
	if err != nil && !errors.Is(err, domain.ErrCollectionNotFound) {
		return nil, fmt.Errorf("checking collection slug: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrCollectionSlugTaken
	}

	collection := entity.NewCollection(input.Slug, input.Title, input.Description, input.Position)
	collection.Visible = input.Visible

	if err := s.collectionRepo.Create(ctx, collection); err != nil {
		return nil, fmt.Errorf("creating collection: %w", err)
	}

	return collection, nil
}

func (s *Service) GetCollectionBySlug(ctx context.Context, slug string) (*entity.Collection, error) {
	return s.collectionRepo.GetBySlug(ctx, slug)
}

func (s *Service) ListCollections(ctx context.Context, includeHidden bool) ([]entity.Collection, error) {
	collections, err := s.collectionRepo.List(ctx, includeHidden)
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}
	return collections, nil
}

func (s *Service) UpdateCollection(ctx context.Context, id uuid.UUID, input CollectionInput) (*entity.Collection, error) {
	collection, err := s.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	collection.Update(input.Title, input.Description, input.Position, input.Visible)

	if err := s.collectionRepo.Update(ctx, collection); err != nil {
		return nil, fmt.Errorf("updating collection: %w", err)
	}

	return collection, nil
}

func (s *Service) DeleteCollection(ctx context.Context, id uuid.UUID) error {
	return s.collectionRepo.Delete(ctx, id)
}

func (s *Service) AddProductToCollection(ctx context.Context, collectionID, productID uuid.UUID) error {
	if _, err := s.collectionRepo.GetByID(ctx, collectionID); err != nil {
		return err
	}
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return err
	}
	return s.collectionRepo.AddProduct(ctx, collectionID, productID)
}

func (s *Service) RemoveProductFromCollection(ctx context.Context, collectionID, productID uuid.UUID) error {
	return s.collectionRepo.RemoveProduct(ctx, collectionID, productID)
}

// CollectionProducts loads the member products of a collection in the
// stored membership order.
func (s *Service) CollectionProducts(ctx context.Context, collectionID uuid.UUID) ([]entity.Product, error) {
	ids, err := s.collectionRepo.ListProductIDs(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("listing collection members: %w", err)
	}

	products := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		product, err := s.productRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				continue
			}
			return nil, err
		}
		products = append(products, *product)
	}

	return products, nil
}

func (s *Service) invalidateProduct(ctx context.Context, slug string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, productCacheKey(slug)).Err(); err != nil {
		s.logger.Warn("product cache invalidation failed", zap.String("slug", slug), zap.Error(err))
	}
}

func productCacheKey(slug string) string {
	return "catalog:product:" + slug
}
