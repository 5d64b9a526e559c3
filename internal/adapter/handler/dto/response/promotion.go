package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/boardline/boardline-backend/internal/domain/entity"
)

type PromotionResponse struct {
	ID        uuid.UUID             `json:"id"`
	Title     LocalizedTextResponse `json:"title"`
	Body      LocalizedTextResponse `json:"body"`
	LinkURL   string                `json:"link_url,omitempty"`
	ImageURL  *string               `json:"image_url,omitempty"`
	StartsAt  time.Time             `json:"starts_at"`
	EndsAt    time.Time             `json:"ends_at"`
	Enabled   bool                  `json:"enabled"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

type PromotionsListResponse struct {
	Promotions []PromotionResponse `json:"promotions"`
}

func PromotionFromEntity(p *entity.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:        p.ID,
		Title:     LocalizedTextFromValue(p.Title),
		Body:      LocalizedTextFromValue(p.Body),
		LinkURL:   p.LinkURL,
		ImageURL:  p.ImageURL,
		StartsAt:  p.StartsAt,
		EndsAt:    p.EndsAt,
		Enabled:   p.Enabled,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func PromotionsFromEntities(promotions []entity.Promotion) []PromotionResponse {
	result := make([]PromotionResponse, 0, len(promotions))
	for i := range promotions {
		result = append(result, PromotionFromEntity(&promotions[i]))
	}
	return result
}
