package request

import "time"

type PromotionRequest struct {
	Title    LocalizedTextRequest `json:"title" binding:"required"`
	Body     LocalizedTextRequest `json:"body"`
	LinkURL  string               `json:"link_url" binding:"omitempty,url"`
	ImageURL *string              `json:"image_url" binding:"omitempty,url"`
	StartsAt time.Time            `json:"starts_at" binding:"required"`
	EndsAt   time.Time            `json:"ends_at" binding:"required"`
	Enabled  bool                 `json:"enabled"`
}
