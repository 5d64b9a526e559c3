package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/boardline/boardline-backend/internal/adapter/handler"
	"github.com/boardline/boardline-backend/internal/domain"
	"github.com/boardline/boardline-backend/internal/domain/entity"
	"github.com/boardline/boardline-backend/internal/mocks"
	"github.com/boardline/boardline-backend/internal/pkg/pagination"
	"github.com/boardline/boardline-backend/internal/usecase/inquiry"
)

func TestInquiryHandler_Submit(t *testing.T) {
	t.Run("submits an inquiry cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inquirySvc := mocks.NewMockInquiryService(ctrl)
		h := handler.NewInquiryHandler(inquirySvc)

		router := setupRouter()
		router.POST("/inquiries", h.Submit)

		productID := uuid.New()
		inq := &entity.Inquiry{
			ID:            uuid.New(),
			CustomerName:  "Ivan Petrov",
			CustomerEmail: "ivan@example.com",
			Language:      "bg",
			Status:        entity.InquiryStatusNew,
			Items: []entity.InquiryItem{
				{ID: uuid.New(), ProductID: productID, Quantity: 2},
			},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		inquirySvc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, input inquiry.SubmitInput) (*entity.Inquiry, error) {
				assert.Equal(t, "Ivan Petrov", input.CustomerName)
				assert.Equal(t, "bg", input.Language)
				require.Len(t, input.Items, 1)
				assert.Equal(t, productID, input.Items[0].ProductID)
				return inq, nil
			})

		body := fmt.Sprintf(`{"customer_name":"Ivan Petrov","customer_email":"ivan@example.com","language":"bg","items":[{"product_id":%q,"quantity":2}]}`, productID.String())
		req := httptest.NewRequest(http.MethodPost, "/inquiries", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]any
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "new", resp["status"])
		assert.Len(t, resp["items"], 1)
	})

	t.Run("defaults the language to english", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inquirySvc := mocks.NewMockInquiryService(ctrl)
		h := handler.NewInquiryHandler(inquirySvc)

		router := setupRouter()
		router.POST("/inquiries", h.Submit)

		productID := uuid.New()

		inquirySvc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, input inquiry.SubmitInput) (*entity.Inquiry, error) {
				assert.Equal(t, "en", input.Language)
				return &entity.Inquiry{ID: uuid.New(), Status: entity.InquiryStatusNew}, nil
			})

		body := fmt.Sprintf(`{"customer_name":"Ivan","customer_email":"ivan@example.com","items":[{"product_id":%q}]}`, productID.String())
		req := httptest.NewRequest(http.MethodPost, "/inquiries", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("rejects an empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inquirySvc := mocks.NewMockInquiryService(ctrl)
		h := handler.NewInquiryHandler(inquirySvc)

		router := setupRouter()
		router.POST("/inquiries", h.Submit)

		body := `{"customer_name":"Ivan","customer_email":"ivan@example.com","items":[]}`
		req := httptest.NewRequest(http.MethodPost, "/inquiries", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns bad request for an unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inquirySvc := mocks.NewMockInquiryService(ctrl)
		h := handler.NewInquiryHandler(inquirySvc)

		router := setupRouter()
		router.POST("/inquiries", h.Submit)

		inquirySvc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, domain.ErrProductNotFound)

		body := fmt.Sprintf(`{"customer_name":"Ivan","customer_email":"ivan@example.com","items":[{"product_id":%q}]}`, uuid.NewString())
		req := httptest.NewRequest(http.MethodPost, "/inquiries", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestInquiryHandler_List(t *testing.T) {
	t.Run("filters by status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inquirySvc := mocks.NewMockInquiryService(ctrl)
		h := handler.NewInquiryHandler(inquirySvc)

		router := setupRouter()
		router.GET("/admin/inquiries", h.List)

		inquirySvc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, input inquiry.ListInput) ([]entity.Inquiry, *pagination.Info, error) {
				require.NotNil(t, input.Status)
				assert.Equal(t, entity.InquiryStatusNew, *input.Status)
				return nil, pagination.NewInfo(1, 24, 0), nil
			})

		req := httptest.NewRequest(http.MethodGet, "/admin/inquiries?status=new", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects an unknown status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inquirySvc := mocks.NewMockInquiryService(ctrl)
		h := handler.NewInquiryHandler(inquirySvc)

		router := setupRouter()
		router.GET("/admin/inquiries", h.List)

		req := httptest.NewRequest(http.MethodGet, "/admin/inquiries?status=archived", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestInquiryHandler_UpdateStatus(t *testing.T) {
	t.Run("updates the inquiry status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inquirySvc := mocks.NewMockInquiryService(ctrl)
		h := handler.NewInquiryHandler(inquirySvc)

		router := setupRouter()
		router.PUT("/admin/inquiries/:id/status", h.UpdateStatus)

		inquiryID := uuid.New()
		inq := &entity.Inquiry{ID: inquiryID, Status: entity.InquiryStatusHandled}

		inquirySvc.EXPECT().SetStatus(gomock.Any(), inquiryID, entity.InquiryStatusHandled).Return(inq, nil)

		body := `{"status":"handled"}`
		req := httptest.NewRequest(http.MethodPut, "/admin/inquiries/"+inquiryID.String()+"/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "handled", resp["status"])
	})

	t.Run("returns not found for an unknown inquiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inquirySvc := mocks.NewMockInquiryService(ctrl)
		h := handler.NewInquiryHandler(inquirySvc)

		router := setupRouter()
		router.PUT("/admin/inquiries/:id/status", h.UpdateStatus)

		inquiryID := uuid.New()
		inquirySvc.EXPECT().SetStatus(gomock.Any(), inquiryID, entity.InquiryStatusClosed).Return(nil, domain.ErrInquiryNotFound)

		body := `{"status":"closed"}`
		req := httptest.NewRequest(http.MethodPut, "/admin/inquiries/"+inquiryID.String()+"/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
