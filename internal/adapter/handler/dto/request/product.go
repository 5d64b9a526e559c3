package request

type LocalizedTextRequest struct {
	EN string `json:"en" binding:"required"`
	BG string `json:"bg"`
}

type CreateProductRequest struct {
	Slug        string               `json:"slug" binding:"required,max=255"`
	Name        LocalizedTextRequest `json:"name" binding:"required"`
	Description LocalizedTextRequest `json:"description"`
	Brand       string               `json:"brand" binding:"max=255"`
	Category    string               `json:"category" binding:"max=255"`
	PriceCents  int64                `json:"price_cents" binding:"min=0"`
	Currency    string               `json:"currency" binding:"omitempty,len=3"`
	Active      *bool                `json:"active"`
}

type UpdateProductRequest struct {
	Name        LocalizedTextRequest `json:"name" binding:"required"`
	Description LocalizedTextRequest `json:"description"`
	Brand       string               `json:"brand" binding:"max=255"`
	Category    string               `json:"category" binding:"max=255"`
	PriceCents  int64                `json:"price_cents" binding:"min=0"`
	Active      *bool                `json:"active"`
}

type ListProductsRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PerPage  int    `form:"per_page" binding:"omitempty,min=1,max=100"`
	Category string `form:"category"`
	Brand    string `form:"brand"`
}
