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

type CollectionHandler struct {
	catalogSvc CatalogService
}

func NewCollectionHandler(catalogSvc CatalogService) *CollectionHandler {
	return &CollectionHandler{catalogSvc: catalogSvc}
}

func (h *CollectionHandler) Create(c *gin.Context) {
	var req request.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}

	collection, err := h.catalogSvc.CreateCollection(c.Request.Context(), catalog.CollectionInput{
		Slug:        req.Slug,
		Title:       valueobject.LocalizedText{EN: req.Title.EN, BG: req.Title.BG},
		Description: valueobject.LocalizedText{EN: req.Description.EN, BG: req.Description.BG},
		Position:    req.Position,
		Visible:     visible,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCollectionSlugTaken) {
			httputil.ErrorWithCode(c, http.StatusConflict, "SLUG_TAKEN", "collection slug already in use")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.Created(c, response.CollectionFromEntity(collection))
}

func (h *CollectionHandler) GetBySlug(c *gin.Context) {
	collection, err := h.catalogSvc.GetCollectionBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrCollectionNotFound) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "collection not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.CollectionFromEntity(collection))
}

func (h *CollectionHandler) List(c *gin.Context) {
	includeHidden := c.GetBool("include_hidden")

	collections, err := h.catalogSvc.ListCollections(c.Request.Context(), includeHidden)
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.CollectionsListResponse{
		Collections: response.CollectionsFromEntities(collections),
	})
}

func (h *CollectionHandler) Update(c *gin.Context) {
	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid collection id")
		return
	}

	var req request.UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}

	collection, err := h.catalogSvc.UpdateCollection(c.Request.Context(), collectionID, catalog.CollectionInput{
		Title:       valueobject.LocalizedText{EN: req.Title.EN, BG: req.Title.BG},
		Description: valueobject.LocalizedText{EN: req.Description.EN, BG: req.Description.BG},
		Position:    req.Position,
		Visible:     visible,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCollectionNotFound) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "collection not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.CollectionFromEntity(collection))
}

func (h *CollectionHandler) Delete(c *gin.Context) {
	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid collection id")
		return
	}

	if err := h.catalogSvc.DeleteCollection(c.Request.Context(), collectionID); err != nil {
		if errors.Is(err, domain.ErrCollectionNotFound) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "collection not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.NoContent(c)
}

func (h *CollectionHandler) AddProduct(c *gin.Context) {
	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid collection id")
		return
	}

	var req request.CollectionMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}
	productID, _ := uuid.Parse(req.ProductID)

	if err := h.catalogSvc.AddProductToCollection(c.Request.Context(), collectionID, productID); err != nil {
		switch {
		case errors.Is(err, domain.ErrCollectionNotFound):
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "collection not found")
		case errors.Is(err, domain.ErrProductNotFound):
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "product not found")
		default:
			httputil.InternalError(c)
		}
		return
	}

	httputil.NoContent(c)
}

func (h *CollectionHandler) RemoveProduct(c *gin.Context) {
	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid collection id")
		return
	}

	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid product id")
		return
	}

	if err := h.catalogSvc.RemoveProductFromCollection(c.Request.Context(), collectionID, productID); err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.NoContent(c)
}

// Products lists the member products of a collection for the storefront
// collection page.
func (h *CollectionHandler) Products(c *gin.Context) {
	collection, err := h.catalogSvc.GetCollectionBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrCollectionNotFound) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "collection not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	products, err := h.catalogSvc.CollectionProducts(c.Request.Context(), collection.ID)
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.ProductsListResponse{
		Products: response.ProductsFromEntities(products),
	})
}
