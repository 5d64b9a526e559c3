package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/boardline/boardline-backend/internal/adapter/handler/dto/request"
	"github.com/boardline/boardline-backend/internal/adapter/handler/dto/response"
	"github.com/boardline/boardline-backend/internal/domain"
	"github.com/boardline/boardline-backend/internal/domain/entity"
	"github.com/boardline/boardline-backend/internal/pkg/httputil"
	"github.com/boardline/boardline-backend/internal/usecase/inquiry"
)

type InquiryHandler struct {
	inquirySvc InquiryService
}

func NewInquiryHandler(inquirySvc InquiryService) *InquiryHandler {
	return &InquiryHandler{inquirySvc: inquirySvc}
}

// Submit is the public endpoint: customers send their inquiry cart with
// contact details instead of checking out.
func (h *InquiryHandler) Submit(c *gin.Context) {
	var req request.SubmitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	items := make([]inquiry.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid product id")
			return
		}
		items = append(items, inquiry.ItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
			Note:      item.Note,
		})
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	inq, err := h.inquirySvc.Submit(c.Request.Context(), inquiry.SubmitInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Message:       req.Message,
		Language:      language,
		Items:         items,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			httputil.ErrorWithCode(c, http.StatusBadRequest, "UNKNOWN_PRODUCT", "inquiry references an unknown product")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.Created(c, response.InquiryFromEntity(inq))
}

func (h *InquiryHandler) Get(c *gin.Context) {
	inquiryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid inquiry id")
		return
	}

	inq, err := h.inquirySvc.Get(c.Request.Context(), inquiryID)
	if err != nil {
		if errors.Is(err, domain.ErrInquiryNotFound) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "inquiry not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.InquiryFromEntity(inq))
}

func (h *InquiryHandler) List(c *gin.Context) {
	var req request.ListInquiriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	var status *entity.InquiryStatus
	if req.Status != "" {
		s := entity.InquiryStatus(req.Status)
		status = &s
	}

	inquiries, pageInfo, err := h.inquirySvc.List(c.Request.Context(), inquiry.ListInput{
		Page:    req.Page,
		PerPage: req.PerPage,
		Status:  status,
	})
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.InquiriesListResponse{
		Inquiries:  response.InquiriesFromEntities(inquiries),
		Pagination: response.PaginationFromInfo(pageInfo),
	})
}

func (h *InquiryHandler) UpdateStatus(c *gin.Context) {
	inquiryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid inquiry id")
		return
	}

	var req request.UpdateInquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	inq, err := h.inquirySvc.SetStatus(c.Request.Context(), inquiryID, entity.InquiryStatus(req.Status))
	if err != nil {
		if errors.Is(err, domain.ErrInquiryNotFound) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "inquiry not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.InquiryFromEntity(inq))
}
