package request

type InquiryItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
	Note      string `json:"note" binding:"max=500"`
}

type SubmitInquiryRequest struct {
	CustomerName  string               `json:"customer_name" binding:"required,max=255"`
	CustomerEmail string               `json:"customer_email" binding:"required,email"`
	CustomerPhone string               `json:"customer_phone" binding:"max=32"`
	Message       string               `json:"message" binding:"max=2000"`
	Language      string               `json:"language" binding:"omitempty,oneof=en bg"`
	Items         []InquiryItemRequest `json:"items" binding:"required,min=1,dive"`
}

type ListInquiriesRequest struct {
	Page    int    `form:"page" binding:"omitempty,min=1"`
	PerPage int    `form:"per_page" binding:"omitempty,min=1,max=100"`
	Status  string `form:"status" binding:"omitempty,oneof=new handled closed"`
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new handled closed"`
}
