package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/boardline/boardline-backend/internal/domain/entity"
)

type CollectionResponse struct {
	ID          uuid.UUID             `json:"id"`
	Slug        string                `json:"slug"`
	Title       LocalizedTextResponse `json:"title"`
	Description LocalizedTextResponse `json:"description"`
	Position    int                   `json:"position"`
	Visible     bool                  `json:"visible"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

type CollectionsListResponse struct {
	Collections []CollectionResponse `json:"collections"`
}

func CollectionFromEntity(c *entity.Collection) CollectionResponse {
	return CollectionResponse{
		ID:          c.ID,
		Slug:        c.Slug,
		Title:       LocalizedTextFromValue(c.Title),
		Description: LocalizedTextFromValue(c.Description),
		Position:    c.Position,
		Visible:     c.Visible,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func CollectionsFromEntities(collections []entity.Collection) []CollectionResponse {
	result := make([]CollectionResponse, 0, len(collections))
	for i := range collections {
		result = append(result, CollectionFromEntity(&collections[i]))
	}
	return result
}
