package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/boardline/boardline-backend/internal/domain/valueobject"
)

type Product struct {
	ID          uuid.UUID
	Slug        string
	Name        valueobject.LocalizedText
	Description valueobject.LocalizedText
	Brand       string
	Category    string
	PriceCents  int64
	Currency    string
	CoverURL    *string
	Active      bool
	Bundles     []ImageBundle
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewProduct(slug string, name, description valueobject.LocalizedText, brand, category string, priceCents int64, currency string) *Product {
	now := time.Now().UTC()
	return &Product{
		ID:          uuid.New(),
		Slug:        slug,
		Name:        name,
		Description: description,
		Brand:       brand,
		Category:    category,
		PriceCents:  priceCents,
		Currency:    currency,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (p *Product) Update(name, description valueobject.LocalizedText, brand, category string, priceCents int64, active bool) {
	p.Name = name
	p.Description = description
	p.Brand = brand
	p.Category = category
	p.PriceCents = priceCents
	p.Active = active
	p.UpdatedAt = time.Now().UTC()
}
