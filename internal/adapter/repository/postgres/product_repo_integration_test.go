package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardline/boardline-backend/internal/adapter/repository"
	"github.com/boardline/boardline-backend/internal/adapter/repository/postgres"
	"github.com/boardline/boardline-backend/internal/domain"
	"github.com/boardline/boardline-backend/internal/domain/entity"
	"github.com/boardline/boardline-backend/internal/domain/valueobject"
	"github.com/boardline/boardline-backend/internal/pkg/pagination"
)

func createTestProduct(t *testing.T, db *TestDB, slug string) *entity.Product {
	t.Helper()
	repo := postgres.NewProductRepo(db.Pool)

	product := entity.NewProduct(
		slug,
		valueobject.NewLocalizedText("Freeride Board", "Фрийрайд дъска"),
		valueobject.NewLocalizedText("All-mountain deck", ""),
		"Nitro",
		"snowboards",
		45900,
		"BGN",
	)
	require.NoError(t, repo.Create(context.Background(), product))
	return product
}

func TestIntegrationProductRepo_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewProductRepo(db.Pool)
	ctx := context.Background()

	t.Run("creates product successfully", func(t *testing.T) {
		db.Truncate(t, "products")
		product := createTestProduct(t, db, "freeride-board")

		found, err := repo.GetByID(ctx, product.ID)

		require.NoError(t, err)
		assert.Equal(t, "freeride-board", found.Slug)
		assert.Equal(t, "Freeride Board", found.Name.EN)
		assert.Equal(t, "Фрийрайд дъска", found.Name.BG)
		assert.Equal(t, int64(45900), found.PriceCents)
		assert.Equal(t, "BGN", found.Currency)
		assert.True(t, found.Active)
	})
}

func TestIntegrationProductRepo_GetBySlug(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewProductRepo(db.Pool)
	ctx := context.Background()

	t.Run("returns product by slug", func(t *testing.T) {
		db.Truncate(t, "products")
		product := createTestProduct(t, db, "freeride-board")

		found, err := repo.GetBySlug(ctx, "freeride-board")

		require.NoError(t, err)
		assert.Equal(t, product.ID, found.ID)
	})

	t.Run("returns not found error", func(t *testing.T) {
		db.Truncate(t, "products")

		found, err := repo.GetBySlug(ctx, "missing")

		assert.Nil(t, found)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestIntegrationProductRepo_List(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewProductRepo(db.Pool)
	ctx := context.Background()

	t.Run("filters by category and brand", func(t *testing.T) {
		db.Truncate(t, "products")
		createTestProduct(t, db, "board-one")
		createTestProduct(t, db, "board-two")

		other := entity.NewProduct("wax-kit", valueobject.NewLocalizedText("Wax Kit", ""), valueobject.LocalizedText{}, "Dakine", "accessories", 2900, "BGN")
		require.NoError(t, repo.Create(ctx, other))

		products, info, err := repo.List(ctx, repository.ProductListParams{
			Pagination: pagination.NewParams(1, 24),
			Category:   "snowboards",
		})

		require.NoError(t, err)
		assert.Len(t, products, 2)
		assert.Equal(t, 2, info.TotalItems)

		products, _, err = repo.List(ctx, repository.ProductListParams{
			Pagination: pagination.NewParams(1, 24),
			Brand:      "Dakine",
		})

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "wax-kit", products[0].Slug)
	})

	t.Run("hides inactive products unless asked", func(t *testing.T) {
		db.Truncate(t, "products")
		product := createTestProduct(t, db, "retired-board")
		product.Active = false
		require.NoError(t, repo.Update(ctx, product))

		products, _, err := repo.List(ctx, repository.ProductListParams{
			Pagination: pagination.NewParams(1, 24),
		})
		require.NoError(t, err)
		assert.Empty(t, products)

		products, _, err = repo.List(ctx, repository.ProductListParams{
			Pagination:      pagination.NewParams(1, 24),
			IncludeInactive: true,
		})
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("paginates results", func(t *testing.T) {
		db.Truncate(t, "products")
		createTestProduct(t, db, "board-one")
		createTestProduct(t, db, "board-two")
		createTestProduct(t, db, "board-three")

		products, info, err := repo.List(ctx, repository.ProductListParams{
			Pagination: pagination.NewParams(2, 2),
		})

		require.NoError(t, err)
		assert.Len(t, products, 1)
		assert.Equal(t, 3, info.TotalItems)
		assert.Equal(t, 2, info.TotalPages)
		assert.True(t, info.HasPrev)
		assert.False(t, info.HasNext)
	})
}

func TestIntegrationProductRepo_Update(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewProductRepo(db.Pool)
	ctx := context.Background()

	t.Run("updates product fields", func(t *testing.T) {
		db.Truncate(t, "products")
		product := createTestProduct(t, db, "freeride-board")

		product.Update(
			valueobject.NewLocalizedText("Freeride Board 2", "Фрийрайд дъска 2"),
			product.Description,
			"Burton",
			product.Category,
			39900,
			false,
		)
		require.NoError(t, repo.Update(ctx, product))

		found, err := repo.GetByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "Freeride Board 2", found.Name.EN)
		assert.Equal(t, "Burton", found.Brand)
		assert.Equal(t, int64(39900), found.PriceCents)
		assert.False(t, found.Active)
	})

	t.Run("returns not found for an unknown product", func(t *testing.T) {
		db.Truncate(t, "products")

		ghost := entity.NewProduct("ghost", valueobject.NewLocalizedText("Ghost", ""), valueobject.LocalizedText{}, "", "", 100, "BGN")
		err := repo.Update(ctx, ghost)

		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestIntegrationProductRepo_SetCoverURL(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewProductRepo(db.Pool)
	ctx := context.Background()

	t.Run("sets and clears the cover", func(t *testing.T) {
		db.Truncate(t, "products")
		product := createTestProduct(t, db, "freeride-board")

		cover := "https://cdn.example.com/cover.jpg"
		require.NoError(t, repo.SetCoverURL(ctx, product.ID, &cover))

		found, err := repo.GetByID(ctx, product.ID)
		require.NoError(t, err)
		require.NotNil(t, found.CoverURL)
		assert.Equal(t, cover, *found.CoverURL)

		require.NoError(t, repo.SetCoverURL(ctx, product.ID, nil))

		found, err = repo.GetByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Nil(t, found.CoverURL)
	})
}

func TestIntegrationProductRepo_ExistsBySlug(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewProductRepo(db.Pool)
	ctx := context.Background()

	t.Run("reports slug usage", func(t *testing.T) {
		db.Truncate(t, "products")
		createTestProduct(t, db, "freeride-board")

		taken, err := repo.ExistsBySlug(ctx, "freeride-board")
		require.NoError(t, err)
		assert.True(t, taken)

		taken, err = repo.ExistsBySlug(ctx, "free-slug")
		require.NoError(t, err)
		assert.False(t, taken)
	})
}

func TestIntegrationProductRepo_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewProductRepo(db.Pool)
	ctx := context.Background()

	t.Run("deletes the product", func(t *testing.T) {
		db.Truncate(t, "products")
		product := createTestProduct(t, db, "freeride-board")

		require.NoError(t, repo.Delete(ctx, product.ID))

		found, err := repo.GetByID(ctx, product.ID)
		assert.Nil(t, found)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("returns not found for an unknown product", func(t *testing.T) {
		db.Truncate(t, "products")

		err := repo.Delete(ctx, uuid.New())

		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}
