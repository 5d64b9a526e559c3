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
	"github.com/boardline/boardline-backend/internal/usecase/promotion"
)

type PromotionHandler struct {
	promotionSvc PromotionService
}

func NewPromotionHandler(promotionSvc PromotionService) *PromotionHandler {
	return &PromotionHandler{promotionSvc: promotionSvc}
}

func (h *PromotionHandler) Create(c *gin.Context) {
	var req request.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	promo, err := h.promotionSvc.Create(c.Request.Context(), promotionInputFromRequest(req))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_WINDOW", err.Error())
		return
	}

	httputil.Created(c, response.PromotionFromEntity(promo))
}

func (h *PromotionHandler) List(c *gin.Context) {
	promotions, err := h.promotionSvc.List(c.Request.Context())
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.PromotionsListResponse{
		Promotions: response.PromotionsFromEntities(promotions),
	})
}

// ListActive serves the storefront popup: only enabled promotions whose
// window covers the current time.
func (h *PromotionHandler) ListActive(c *gin.Context) {
	promotions, err := h.promotionSvc.ListActive(c.Request.Context())
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.PromotionsListResponse{
		Promotions: response.PromotionsFromEntities(promotions),
	})
}

func (h *PromotionHandler) Update(c *gin.Context) {
	promotionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid promotion id")
		return
	}

	var req request.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	promo, err := h.promotionSvc.Update(c.Request.Context(), promotionID, promotionInputFromRequest(req))
	if err != nil {
		if errors.Is(err, domain.ErrPromotionNotFound) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "promotion not found")
			return
		}
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_WINDOW", err.Error())
		return
	}

	httputil.OK(c, response.PromotionFromEntity(promo))
}

func (h *PromotionHandler) Delete(c *gin.Context) {
	promotionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid promotion id")
		return
	}

	if err := h.promotionSvc.Delete(c.Request.Context(), promotionID); err != nil {
		if errors.Is(err, domain.ErrPromotionNotFound) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "promotion not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.NoContent(c)
}

func promotionInputFromRequest(req request.PromotionRequest) promotion.Input {
	return promotion.Input{
		Title:    valueobject.LocalizedText{EN: req.Title.EN, BG: req.Title.BG},
		Body:     valueobject.LocalizedText{EN: req.Body.EN, BG: req.Body.BG},
		LinkURL:  req.LinkURL,
		ImageURL: req.ImageURL,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		Enabled:  req.Enabled,
	}
}
