package reconcile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/boardline/boardline-backend/internal/adapter/repository"
	"github.com/boardline/boardline-backend/internal/adapter/storage"
)

// Service is the offline maintenance pass for storage/DB drift: variant
// rows whose underlying object disappeared are removed. It never runs on
// the request path.
type Service struct {
	variantRepo repository.ImageVariantRepository
	storage     storage.ObjectStorage
	pageSize    int
	logger      *zap.Logger
}

func NewService(variantRepo repository.ImageVariantRepository, objectStorage storage.ObjectStorage, pageSize int, logger *zap.Logger) *Service {
	if pageSize <= 0 {
		pageSize = 200
	}
	return &Service{
		variantRepo: variantRepo,
		storage:     objectStorage,
		pageSize:    pageSize,
		logger:      logger,
	}
}

type Report struct {
	Scanned int
	Missing int
	Removed int
}

// Run pages through every variant row, heads the backing object and
// deletes rows whose object is gone. Existence-check failures skip the
// row rather than delete it; only a confirmed miss removes data.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	report := &Report{}
	after := uuid.Nil

	for {
		rows, err := s.variantRepo.ListPage(ctx, after, s.pageSize)
		if err != nil {
			return report, fmt.Errorf("listing variants: %w", err)
		}
		if len(rows) == 0 {
			return report, nil
		}

		for _, row := range rows {
			report.Scanned++

			exists, err := s.storage.Exists(ctx, row.StoragePath)
			if err != nil {
				s.logger.Warn("existence check failed, skipping row",
					zap.String("variant_id", row.ID.String()),
					zap.String("path", row.StoragePath),
					zap.Error(err),
				)
				continue
			}
			if exists {
				continue
			}

			report.Missing++
			if err := s.variantRepo.DeleteByID(ctx, row.ID); err != nil {
				s.logger.Error("failed to remove orphaned variant row",
					zap.String("variant_id", row.ID.String()),
					zap.Error(err),
				)
				continue
			}
			report.Removed++
			s.logger.Info("removed orphaned variant row",
				zap.String("variant_id", row.ID.String()),
				zap.String("bundle_id", row.BundleID.String()),
				zap.String("path", row.StoragePath),
			)
		}

		after = rows[len(rows)-1].ID
	}
}
