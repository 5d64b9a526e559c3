package promotion

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/boardline/boardline-backend/internal/adapter/repository"
	"github.com/boardline/boardline-backend/internal/domain/entity"
	"github.com/boardline/boardline-backend/internal/domain/valueobject"
)

type Service struct {
	promotionRepo repository.PromotionRepository
}

func NewService(promotionRepo repository.PromotionRepository) *Service {
	return &Service{promotionRepo: promotionRepo}
}

type Input struct {
	Title    valueobject.LocalizedText
	Body     valueobject.LocalizedText
	LinkURL  string
	ImageURL *string
	StartsAt time.Time
	EndsAt   time.Time
	Enabled  bool
}

func (s *Service) Create(ctx context.Context, input Input) (*entity.Promotion, error) {
	if !input.EndsAt.After(input.StartsAt) {
		return nil, fmt.Errorf("promotion window must end after it starts")
	}

	promo := entity.NewPromotion(input.Title, input.Body, input.LinkURL, input.StartsAt, input.EndsAt)
	promo.ImageURL = input.ImageURL
	promo.Enabled = input.Enabled

	if err := s.promotionRepo.Create(ctx, promo); err != nil {
		return nil, fmt.Errorf("creating promotion: %w", err)
	}

	return promo, nil
}

func (s *Service) List(ctx context.Context) ([]entity.Promotion, error) {
	return s.promotionRepo.List(ctx)
}

// ListActive powers the storefront promotion popup.
func (s *Service) ListActive(ctx context.Context) ([]entity.Promotion, error) {
	return s.promotionRepo.ListActive(ctx, time.Now().UTC())
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, input Input) (*entity.Promotion, error) {
	if !input.EndsAt.After(input.StartsAt) {
		return nil, fmt.Errorf("promotion window must end after it starts")
	}

	promo, err := s.promotionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	promo.Title = input.Title
	promo.Body = input.Body
	promo.LinkURL = input.LinkURL
	promo.ImageURL = input.ImageURL
	promo.StartsAt = input.StartsAt
	promo.EndsAt = input.EndsAt
	promo.Enabled = input.Enabled
	promo.UpdatedAt = time.Now().UTC()

	if err := s.promotionRepo.Update(ctx, promo); err != nil {
		return nil, fmt.Errorf("updating promotion: %w", err)
	}

	return promo, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.promotionRepo.Delete(ctx, id)
}
