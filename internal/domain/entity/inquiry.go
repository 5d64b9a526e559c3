package entity

import (
	"time"

	"github.com/google/uuid"
)

type InquiryStatus string

const (
	InquiryStatusNew     InquiryStatus = "new"
	InquiryStatusHandled InquiryStatus = "handled"
	InquiryStatusClosed  InquiryStatus = "closed"
)

// Inquiry is a submitted inquiry cart: the storefront has no payment
// step, customers send their cart with contact details instead.
type Inquiry struct {
	ID            uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Message       string
	Language      string
	Status        InquiryStatus
	Items         []InquiryItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type InquiryItem struct {
	ID        uuid.UUID
	InquiryID uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Note      string
}

func NewInquiry(name, email, phone, message, language string) *Inquiry {
	now := time.Now().UTC()
	return &Inquiry{
		ID:            uuid.New(),
		CustomerName:  name,
		CustomerEmail: email,
		CustomerPhone: phone,
		Message:       message,
		Language:      language,
		Status:        InquiryStatusNew,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (i *Inquiry) AddItem(productID uuid.UUID, quantity int, note string) {
	i.Items = append(i.Items, InquiryItem{
		ID:        uuid.New(),
		InquiryID: i.ID,
		ProductID: productID,
		Quantity:  quantity,
		Note:      note,
	})
}

func (i *Inquiry) SetStatus(status InquiryStatus) {
	i.Status = status
	i.UpdatedAt = time.Now().UTC()
}
