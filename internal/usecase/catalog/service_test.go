package catalog_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/boardline/boardline-backend/internal/adapter/repository"
	"github.com/boardline/boardline-backend/internal/domain"
	"github.com/boardline/boardline-backend/internal/domain/entity"
	"github.com/boardline/boardline-backend/internal/domain/valueobject"
	"github.com/boardline/boardline-backend/internal/mocks"
	"github.com/boardline/boardline-backend/internal/pkg/pagination"
	"github.com/boardline/boardline-backend/internal/usecase/catalog"
)

type catalogMocks struct {
	productRepo    *mocks.MockProductRepository
	collectionRepo *mocks.MockCollectionRepository
}

func newCatalogService(t *testing.T) (*catalog.Service, catalogMocks) {
	ctrl := gomock.NewController(t)
	m := catalogMocks{
		productRepo:    mocks.NewMockProductRepository(ctrl),
		collectionRepo: mocks.NewMockCollectionRepository(ctrl),
	}
	svc := catalog.NewService(m.productRepo, m.collectionRepo, nil, 0, zap.NewNop())
	return svc, m
}

func productInput(slug string) catalog.ProductInput {
	return catalog.ProductInput{
		Slug:       slug,
		Name:       valueobject.LocalizedText{EN: "Freeride Board", BG: "Фрийрайд дъска"},
		Brand:      "Nitro",
		Category:   "snowboards",
		PriceCents: 45900,
		Currency:   "BGN",
		Active:     true,
	}
}

func TestService_CreateProduct(t *testing.T) {
	t.Run("creates a product with a free slug", func(t *testing.T) {
		svc, m := newCatalogService(t)

		ctx := context.Background()
		m.productRepo.EXPECT().ExistsBySlug(ctx, "freeride-board").Return(false, nil)
		m.productRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		product, err := svc.CreateProduct(ctx, productInput("freeride-board"))

		require.NoError(t, err)
		assert.Equal(t, "freeride-board", product.Slug)
		assert.Equal(t, int64(45900), product.PriceCents)
		assert.True(t, product.Active)
	})

	t.Run("rejects a taken slug", func(t *testing.T) {
		svc, m := newCatalogService(t)

		ctx := context.Background()
		m.productRepo.EXPECT().ExistsBySlug(ctx, "freeride-board").Return(true, nil)

		product, err := svc.CreateProduct(ctx, productInput("freeride-board"))

		assert.Nil(t, product)
		assert.ErrorIs(t, err, domain.ErrProductSlugTaken)
	})
}

func TestService_GetProductBySlug(t *testing.T) {
	t.Run("reads straight from the repository when no cache is configured", func(t *testing.T) {
		svc, m := newCatalogService(t)

		ctx := context.Background()
		want := &entity.Product{ID: uuid.New(), Slug: "freeride-board"}
		m.productRepo.EXPECT().GetBySlug(ctx, "freeride-board").Return(want, nil)

		product, err := svc.GetProductBySlug(ctx, "freeride-board")

		require.NoError(t, err)
		assert.Equal(t, want, product)
	})

	t.Run("propagates not found", func(t *testing.T) {
		svc, m := newCatalogService(t)

		ctx := context.Background()
		m.productRepo.EXPECT().GetBySlug(ctx, "missing").Return(nil, domain.ErrProductNotFound)

		product, err := svc.GetProductBySlug(ctx, "missing")

		assert.Nil(t, product)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestService_ListProducts(t *testing.T) {
	t.Run("forwards filters and normalized pagination", func(t *testing.T) {
		svc, m := newCatalogService(t)

		ctx := context.Background()
		want := repository.ProductListParams{
			Pagination: pagination.NewParams(2, 10),
			Category:   "snowboards",
			Brand:      "Nitro",
		}
		products := []entity.Product{{ID: uuid.New()}}
		info := pagination.NewInfo(2, 10, 11)

		m.productRepo.EXPECT().List(ctx, want).Return(products, info, nil)

		got, pageInfo, err := svc.ListProducts(ctx, catalog.ListProductsInput{
			Page:     2,
			PerPage:  10,
			Category: "snowboards",
			Brand:    "Nitro",
		})

		require.NoError(t, err)
		assert.Equal(t, products, got)
		assert.Equal(t, info, pageInfo)
	})
}

func TestService_UpdateProduct(t *testing.T) {
	t.Run("applies the input to the stored product", func(t *testing.T) {
		svc, m := newCatalogService(t)

		ctx := context.Background()
		id := uuid.New()
		stored := &entity.Product{ID: id, Slug: "freeride-board", PriceCents: 45900, Active: true}

		m.productRepo.EXPECT().GetByID(ctx, id).Return(stored, nil)
		m.productRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		input := productInput("freeride-board")
		input.PriceCents = 39900
		input.Active = false

		product, err := svc.UpdateProduct(ctx, id, input)

		require.NoError(t, err)
		assert.Equal(t, int64(39900), product.PriceCents)
		assert.False(t, product.Active)
	})

	t.Run("propagates not found", func(t *testing.T) {
		svc, m := newCatalogService(t)

		ctx := context.Background()
		id := uuid.New()
		m.productRepo.EXPECT().GetByID(ctx, id).Return(nil, domain.ErrProductNotFound)

		product, err := svc.UpdateProduct(ctx, id, productInput("freeride-board"))

		assert.Nil(t, product)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestService_Collections(t *testing.T) {
	t.Run("rejects a taken collection slug", func(t *testing.T) {
		svc, m := newCatalogService(t)

		ctx := context.Background()
		m.collectionRepo.EXPECT().GetBySlug(ctx, "winter").Return(&entity.Collection{ID: uuid.New(), Slug: "winter"}, nil)

		collection, err := svc.CreateCollection(ctx, catalog.CollectionInput{Slug: "winter"})

		assert.Nil(t, collection)
		assert.ErrorIs(t, err, domain.ErrCollectionSlugTaken)
	})

	t.Run("creates a collection when the slug is free", func(t *testing.T) {
		svc, m := newCatalogService(t)

		ctx := context.Background()
		m.collectionRepo.EXPECT().GetBySlug(ctx, "winter").Return(nil, domain.ErrCollectionNotFound)
		m.collectionRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		collection, err := svc.CreateCollection(ctx, catalog.CollectionInput{
			Slug:     "winter",
			Title:    valueobject.LocalizedText{EN: "Winter", BG: "Зима"},
			Position: 1,
			Visible:  true,
		})

		require.NoError(t, err)
		assert.Equal(t, "winter", collection.Slug)
		assert.True(t, collection.Visible)
	})

	t.Run("checks both sides before adding a member", func(t *testing.T) {
		svc, m := newCatalogService(t)

		ctx := context.Background()
		collectionID := uuid.New()
		productID := uuid.New()

		m.collectionRepo.EXPECT().GetByID(ctx, collectionID).Return(&entity.Collection{ID: collectionID}, nil)
		m.productRepo.EXPECT().GetByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
		m.collectionRepo.EXPECT().AddProduct(ctx, collectionID, productID).Return(nil)

		require.NoError(t, svc.AddProductToCollection(ctx, collectionID, productID))
	})
}

func TestService_CollectionProducts(t *testing.T) {
	t.Run("skips members whose product has since been deleted", func(t *testing.T) {
		svc, m := newCatalogService(t)

		ctx := context.Background()
		collectionID := uuid.New()
		keptID := uuid.New()
		goneID := uuid.New()

		m.collectionRepo.EXPECT().ListProductIDs(ctx, collectionID).Return([]uuid.UUID{goneID, keptID}, nil)
		m.productRepo.EXPECT().GetByID(ctx, goneID).Return(nil, domain.ErrProductNotFound)
		m.productRepo.EXPECT().GetByID(ctx, keptID).Return(&entity.Product{ID: keptID}, nil)

		products, err := svc.CollectionProducts(ctx, collectionID)

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, keptID, products[0].ID)
	})
}
