package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/boardline/boardline-backend/internal/adapter/handler/dto/request"
	"github.com/boardline/boardline-backend/internal/adapter/handler/dto/response"
	"github.com/boardline/boardline-backend/internal/domain"
	"github.com/boardline/boardline-backend/internal/domain/valueobject"
	"github.com/boardline/boardline-backend/internal/pkg/httputil"
	"github.com/boardline/boardline-backend/internal/usecase/catalog"
)

type ProductHandler struct {
	catalogSvc CatalogService
}

func NewProductHandler(catalogSvc CatalogService) *ProductHandler {
	return &ProductHandler{catalogSvc: catalogSvc}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "BGN"
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	product, err := h.catalogSvc.CreateProduct(c.Request.Context(), catalog.ProductInput{
		Slug:        req.Slug,
		Name:        valueobject.LocalizedText{EN: req.Name.EN, BG: req.Name.BG},
		Description: valueobject.LocalizedText{EN: req.Description.EN, BG: req.Description.BG},
		Brand:       req.Brand,
		Category:    req.Category,
		PriceCents:  req.PriceCents,
		Currency:    currency,
		Active:      active,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductSlugTaken) {
			httputil.ErrorWithCode(c, http.StatusConflict, "SLUG_TAKEN", "product slug already in use")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.Created(c, response.ProductFromEntity(product))
}

// GetBySlug is the public storefront product page read.
func (h *ProductHandler) GetBySlug(c *gin.Context) {
	product, err := h.catalogSvc.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "product not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.ProductFromEntity(product))
}

func (h *ProductHandler) Get(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid product id")
		return
	}

	product, err := h.catalogSvc.GetProduct(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "product not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.ProductFromEntity(product))
}

func (h *ProductHandler) List(c *gin.Context) {
	var req request.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	// The public listing never surfaces inactive products; the admin
	// listing is a separate route that sets this flag.
	includeInactive := c.GetBool("include_inactive")

	products, pageInfo, err := h.catalogSvc.ListProducts(c.Request.Context(), catalog.ListProductsInput{
		Page:            req.Page,
		PerPage:         req.PerPage,
		Category:        req.Category,
		Brand:           req.Brand,
		IncludeInactive: includeInactive,
	})
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.ProductsListResponse{
		Products:   response.ProductsFromEntities(products),
		Pagination: response.PaginationFromInfo(pageInfo),
	})
}

func (h *ProductHandler) Update(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid product id")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	product, err := h.catalogSvc.UpdateProduct(c.Request.Context(), productID, catalog.ProductInput{
		Name:        valueobject.LocalizedText{EN: req.Name.EN, BG: req.Name.BG},
		Description: valueobject.LocalizedText{EN: req.Description.EN, BG: req.Description.BG},
		Brand:       req.Brand,
		Category:    req.Category,
		PriceCents:  req.PriceCents,
		Active:      active,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "product not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.ProductFromEntity(product))
}

func (h *ProductHandler) Delete(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid product id")
		return
	}

	if err := h.catalogSvc.DeleteProduct(c.Request.Context(), productID); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "product not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.NoContent(c)
}
