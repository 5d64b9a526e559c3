package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/boardline/boardline-backend/internal/domain/entity"
)

type InquiryItemResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Note      string    `json:"note,omitempty"`
}

type InquiryResponse struct {
	ID            uuid.UUID             `json:"id"`
	CustomerName  string                `json:"customer_name"`
	CustomerEmail string                `json:"customer_email"`
	CustomerPhone string                `json:"customer_phone,omitempty"`
	Message       string                `json:"message,omitempty"`
	Language      string                `json:"language"`
	Status        string                `json:"status"`
	Items         []InquiryItemResponse `json:"items"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

type InquiriesListResponse struct {
	Inquiries  []InquiryResponse  `json:"inquiries"`
	Pagination PaginationResponse `json:"pagination"`
}

func InquiryFromEntity(i *entity.Inquiry) InquiryResponse {
	items := make([]InquiryItemResponse, 0, len(i.Items))
	for _, item := range i.Items {
		items = append(items, InquiryItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Note:      item.Note,
		})
	}
	return InquiryResponse{
		ID:            i.ID,
		CustomerName:  i.CustomerName,
		CustomerEmail: i.CustomerEmail,
		CustomerPhone: i.CustomerPhone,
		Message:       i.Message,
		Language:      i.Language,
		Status:        string(i.Status),
		Items:         items,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func InquiriesFromEntities(inquiries []entity.Inquiry) []InquiryResponse {
	result := make([]InquiryResponse, 0, len(inquiries))
	for i := range inquiries {
		result = append(result, InquiryFromEntity(&inquiries[i]))
	}
	return result
}
