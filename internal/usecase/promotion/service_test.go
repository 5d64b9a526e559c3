package promotion_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/boardline/boardline-backend/internal/domain"
	"github.com/boardline/boardline-backend/internal/domain/entity"
	"github.com/boardline/boardline-backend/internal/domain/valueobject"
	"github.com/boardline/boardline-backend/internal/mocks"
	"github.com/boardline/boardline-backend/internal/usecase/promotion"
)

func newPromotionService(t *testing.T) (*promotion.Service, *mocks.MockPromotionRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPromotionRepository(ctrl)
	return promotion.NewService(repo), repo
}

func promotionInput() promotion.Input {
	now := time.Now().UTC()
	return promotion.Input{
		Title:    valueobject.LocalizedText{EN: "Season opening", BG: "Откриване на сезона"},
		Body:     valueobject.LocalizedText{EN: "20% off all boards"},
		LinkURL:  "/collections/winter",
		StartsAt: now,
		EndsAt:   now.Add(72 * time.Hour),
		Enabled:  true,
	}
}

func TestService_Create(t *testing.T) {
	t.Run("creates a promotion with a valid window", func(t *testing.T) {
		svc, repo := newPromotionService(t)

		ctx := context.Background()
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		promo, err := svc.Create(ctx, promotionInput())

		require.NoError(t, err)
		assert.True(t, promo.Enabled)
		assert.Equal(t, "Season opening", promo.Title.EN)
	})

	t.Run("rejects a window that ends before it starts", func(t *testing.T) {
		svc, _ := newPromotionService(t)

		input := promotionInput()
		input.EndsAt = input.StartsAt.Add(-time.Hour)

		promo, err := svc.Create(context.Background(), input)

		assert.Nil(t, promo)
		assert.Error(t, err)
	})

	t.Run("rejects a zero-length window", func(t *testing.T) {
		svc, _ := newPromotionService(t)

		input := promotionInput()
		input.EndsAt = input.StartsAt

		promo, err := svc.Create(context.Background(), input)

		assert.Nil(t, promo)
		assert.Error(t, err)
	})
}

func TestService_Update(t *testing.T) {
	t.Run("overwrites the stored promotion", func(t *testing.T) {
		svc, repo := newPromotionService(t)

		ctx := context.Background()
		id := uuid.New()
		stored := &entity.Promotion{ID: id, Enabled: true}

		repo.EXPECT().GetByID(ctx, id).Return(stored, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		input := promotionInput()
		input.Enabled = false

		promo, err := svc.Update(ctx, id, input)

		require.NoError(t, err)
		assert.False(t, promo.Enabled)
		assert.Equal(t, input.Title, promo.Title)
	})

	t.Run("propagates not found", func(t *testing.T) {
		svc, repo := newPromotionService(t)

		ctx := context.Background()
		id := uuid.New()
		repo.EXPECT().GetByID(ctx, id).Return(nil, domain.ErrPromotionNotFound)

		promo, err := svc.Update(ctx, id, promotionInput())

		assert.Nil(t, promo)
		assert.ErrorIs(t, err, domain.ErrPromotionNotFound)
	})
}

func TestService_ListActive(t *testing.T) {
	t.Run("queries with the current time", func(t *testing.T) {
		svc, repo := newPromotionService(t)

		ctx := context.Background()
		want := []entity.Promotion{{ID: uuid.New()}}

		repo.EXPECT().ListActive(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, at time.Time) ([]entity.Promotion, error) {
				assert.WithinDuration(t, time.Now().UTC(), at, time.Minute)
				return want, nil
			})

		promos, err := svc.ListActive(ctx)

		require.NoError(t, err)
		assert.Equal(t, want, promos)
	})
}
