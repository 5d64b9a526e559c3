package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/boardline/boardline-backend/internal/domain/valueobject"
)

type Collection struct {
	ID          uuid.UUID
	Slug        string
	Title       valueobject.LocalizedText
	Description valueobject.LocalizedText
	Position    int
	Visible     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewCollection(slug string, title, description valueobject.LocalizedText, position int) *Collection {
	now := time.Now().UTC()
	return &Collection{
		ID:          uuid.New(),
		Slug:        slug,
		Title:       title,
		Description: description,
		Position:    position,
		Visible:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (c *Collection) Update(title, description valueobject.LocalizedText, position int, visible bool) {
	c.Title = title
	c.Description = description
	c.Position = position
	c.Visible = visible
	c.UpdatedAt = time.Now().UTC()
}
