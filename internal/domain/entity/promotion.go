package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/boardline/boardline-backend/internal/domain/valueobject"
)

type Promotion struct {
	ID        uuid.UUID
	Title     valueobject.LocalizedText
	Body      valueobject.LocalizedText
	LinkURL   string
	ImageURL  *string
	StartsAt  time.Time
	EndsAt    time.Time
	Enabled   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewPromotion(title, body valueobject.LocalizedText, linkURL string, startsAt, endsAt time.Time) *Promotion {
	now := time.Now().UTC()
	return &Promotion{
		ID:        uuid.New(),
		Title:     title,
		Body:      body,
		LinkURL:   linkURL,
		StartsAt:  startsAt,
		EndsAt:    endsAt,
		Enabled:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (p *Promotion) ActiveAt(t time.Time) bool {
	return p.Enabled && !t.Before(p.StartsAt) && t.Before(p.EndsAt)
}
