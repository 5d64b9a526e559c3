package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/boardline/boardline-backend/internal/domain/entity"
)

type ProductResponse struct {
	ID          uuid.UUID             `json:"id"`
	Slug        string                `json:"slug"`
	Name        LocalizedTextResponse `json:"name"`
	Description LocalizedTextResponse `json:"description"`
	Brand       string                `json:"brand,omitempty"`
	Category    string                `json:"category,omitempty"`
	PriceCents  int64                 `json:"price_cents"`
	Currency    string                `json:"currency"`
	CoverURL    *string               `json:"cover_url,omitempty"`
	Active      bool                  `json:"active"`
	Bundles     []BundleResponse      `json:"bundles,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

type ProductsListResponse struct {
	Products   []ProductResponse  `json:"products"`
	Pagination PaginationResponse `json:"pagination"`
}

func ProductFromEntity(p *entity.Product) ProductResponse {
	resp := ProductResponse{
		ID:          p.ID,
		Slug:        p.Slug,
		Name:        LocalizedTextFromValue(p.Name),
		Description: LocalizedTextFromValue(p.Description),
		Brand:       p.Brand,
		Category:    p.Category,
		PriceCents:  p.PriceCents,
		Currency:    p.Currency,
		CoverURL:    p.CoverURL,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if len(p.Bundles) > 0 {
		resp.Bundles = BundlesFromEntities(p.Bundles)
	}
	return resp
}

func ProductsFromEntities(products []entity.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, ProductFromEntity(&products[i]))
	}
	return result
}
