package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/boardline/boardline-backend/internal/adapter/handler"
	"github.com/boardline/boardline-backend/internal/domain"
	"github.com/boardline/boardline-backend/internal/domain/entity"
	"github.com/boardline/boardline-backend/internal/domain/valueobject"
	"github.com/boardline/boardline-backend/internal/mocks"
	"github.com/boardline/boardline-backend/internal/pkg/pagination"
	"github.com/boardline/boardline-backend/internal/usecase/catalog"
)

func TestProductHandler_Create(t *testing.T) {
	t.Run("creates product successfully", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalogSvc := mocks.NewMockCatalogService(ctrl)
		h := handler.NewProductHandler(catalogSvc)

		router := setupRouter()
		router.POST("/admin/products", h.Create)

		product := &entity.Product{
			ID:         uuid.New(),
			Slug:       "freeride-board",
			Name:       valueobject.LocalizedText{EN: "Freeride Board", BG: "Фрийрайд дъска"},
			Brand:      "Nitro",
			Category:   "snowboards",
			PriceCents: 45900,
			Currency:   "BGN",
			Active:     true,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}

		catalogSvc.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, input catalog.ProductInput) (*entity.Product, error) {
				assert.Equal(t, "freeride-board", input.Slug)
				assert.Equal(t, "BGN", input.Currency, "currency defaults when omitted")
				assert.True(t, input.Active, "active defaults when omitted")
				return product, nil
			})

		body := `{"slug":"freeride-board","name":{"en":"Freeride Board","bg":"Фрийрайд дъска"},"description":{"en":"All-mountain"},"brand":"Nitro","category":"snowboards","price_cents":45900}`
		req := httptest.NewRequest(http.MethodPost, "/admin/products", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]any
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "freeride-board", resp["slug"])
		assert.Equal(t, "Freeride Board", resp["name"].(map[string]any)["en"])
	})

	t.Run("returns conflict for a taken slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalogSvc := mocks.NewMockCatalogService(ctrl)
		h := handler.NewProductHandler(catalogSvc)

		router := setupRouter()
		router.POST("/admin/products", h.Create)

		catalogSvc.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(nil, domain.ErrProductSlugTaken)

		body := `{"slug":"freeride-board","name":{"en":"Freeride Board"},"description":{"en":"x"},"price_cents":45900}`
		req := httptest.NewRequest(http.MethodPost, "/admin/products", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("returns validation error when the english name is missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalogSvc := mocks.NewMockCatalogService(ctrl)
		h := handler.NewProductHandler(catalogSvc)

		router := setupRouter()
		router.POST("/admin/products", h.Create)

		body := `{"slug":"freeride-board","name":{"bg":"Дъска"},"description":{"en":"x"},"price_cents":45900}`
		req := httptest.NewRequest(http.MethodPost, "/admin/products", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandler_GetBySlug(t *testing.T) {
	t.Run("returns the product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalogSvc := mocks.NewMockCatalogService(ctrl)
		h := handler.NewProductHandler(catalogSvc)

		router := setupRouter()
		router.GET("/products/:slug", h.GetBySlug)

		product := &entity.Product{ID: uuid.New(), Slug: "freeride-board", Currency: "BGN", Active: true}
		catalogSvc.EXPECT().GetProductBySlug(gomock.Any(), "freeride-board").Return(product, nil)

		req := httptest.NewRequest(http.MethodGet, "/products/freeride-board", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("returns not found for an unknown slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalogSvc := mocks.NewMockCatalogService(ctrl)
		h := handler.NewProductHandler(catalogSvc)

		router := setupRouter()
		router.GET("/products/:slug", h.GetBySlug)

		catalogSvc.EXPECT().GetProductBySlug(gomock.Any(), "missing").Return(nil, domain.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodGet, "/products/missing", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProductHandler_List(t *testing.T) {
	t.Run("lists products with filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalogSvc := mocks.NewMockCatalogService(ctrl)
		h := handler.NewProductHandler(catalogSvc)

		router := setupRouter()
		router.GET("/products", h.List)

		products := []entity.Product{{ID: uuid.New(), Slug: "a"}, {ID: uuid.New(), Slug: "b"}}
		info := pagination.NewInfo(1, 24, 2)

		catalogSvc.EXPECT().ListProducts(gomock.Any(), catalog.ListProductsInput{
			Category: "snowboards",
			Brand:    "Nitro",
		}).Return(products, info, nil)

		req := httptest.NewRequest(http.MethodGet, "/products?category=snowboards&brand=Nitro", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Len(t, resp["products"], 2)
		assert.Equal(t, float64(2), resp["pagination"].(map[string]any)["total_items"])
	})

	t.Run("includes inactive products only when the route flags it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalogSvc := mocks.NewMockCatalogService(ctrl)
		h := handler.NewProductHandler(catalogSvc)

		router := setupRouter()
		router.GET("/admin/products", func(c *gin.Context) {
			c.Set("include_inactive", true)
			h.List(c)
		})

		catalogSvc.EXPECT().ListProducts(gomock.Any(), catalog.ListProductsInput{
			IncludeInactive: true,
		}).Return(nil, pagination.NewInfo(1, 24, 0), nil)

		req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestProductHandler_Update(t *testing.T) {
	t.Run("updates the product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalogSvc := mocks.NewMockCatalogService(ctrl)
		h := handler.NewProductHandler(catalogSvc)

		router := setupRouter()
		router.PUT("/admin/products/:id", h.Update)

		productID := uuid.New()
		updated := &entity.Product{ID: productID, Slug: "freeride-board", PriceCents: 39900}

		catalogSvc.EXPECT().UpdateProduct(gomock.Any(), productID, gomock.Any()).DoAndReturn(
			func(_ any, _ uuid.UUID, input catalog.ProductInput) (*entity.Product, error) {
				assert.Equal(t, int64(39900), input.PriceCents)
				assert.False(t, input.Active)
				return updated, nil
			})

		body := `{"name":{"en":"Freeride Board"},"description":{"en":"x"},"price_cents":39900,"active":false}`
		req := httptest.NewRequest(http.MethodPut, "/admin/products/"+productID.String(), bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("returns error for an invalid ID", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalogSvc := mocks.NewMockCatalogService(ctrl)
		h := handler.NewProductHandler(catalogSvc)

		router := setupRouter()
		router.PUT("/admin/products/:id", h.Update)

		body := `{"name":{"en":"Freeride Board"},"description":{"en":"x"},"price_cents":39900}`
		req := httptest.NewRequest(http.MethodPut, "/admin/products/not-a-uuid", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandler_Delete(t *testing.T) {
	t.Run("deletes the product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalogSvc := mocks.NewMockCatalogService(ctrl)
		h := handler.NewProductHandler(catalogSvc)

		router := setupRouter()
		router.DELETE("/admin/products/:id", h.Delete)

		productID := uuid.New()
		catalogSvc.EXPECT().DeleteProduct(gomock.Any(), productID).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/admin/products/"+productID.String(), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("returns not found for an unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalogSvc := mocks.NewMockCatalogService(ctrl)
		h := handler.NewProductHandler(catalogSvc)

		router := setupRouter()
		router.DELETE("/admin/products/:id", h.Delete)

		productID := uuid.New()
		catalogSvc.EXPECT().DeleteProduct(gomock.Any(), productID).Return(domain.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/admin/products/"+productID.String(), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
