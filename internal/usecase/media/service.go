package media

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/boardline/boardline-backend/internal/adapter/repository"
	"github.com/boardline/boardline-backend/internal/adapter/storage"
	"github.com/boardline/boardline-backend/internal/domain"
	"github.com/boardline/boardline-backend/internal/domain/entity"
	"github.com/boardline/boardline-backend/internal/domain/valueobject"
)

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)

// Service owns the product-image pipeline: assembling uploaded images
// into multi-size bundles, reading them back in display order, and
// deleting or reordering whole bundles.
type Service struct {
	variantRepo repository.ImageVariantRepository
	productRepo repository.ProductRepository
	storage     storage.ObjectStorage
	deriver     storage.VariantDeriver
	specs       []valueobject.VariantSpec
	namespace   string
	logger      *zap.Logger
}

func NewService(
	variantRepo repository.ImageVariantRepository,
	productRepo repository.ProductRepository,
	objectStorage storage.ObjectStorage,
	deriver storage.VariantDeriver,
	specs []valueobject.VariantSpec,
	namespace string,
	logger *zap.Logger,
) *Service {
	return &Service{
		variantRepo: variantRepo,
		productRepo: productRepo,
		storage:     objectStorage,
		deriver:     deriver,
		specs:       specs,
		namespace:   namespace,
		logger:      logger,
	}
}

type UploadInput struct {
	ProductID    uuid.UUID
	File         io.Reader
	Filename     string
	Crop         *valueobject.CropRect
	DisplayOrder *int
}

// Upload derives all configured renditions from one source image, writes
// them to object storage and records the bundle. Storage writes happen
// before any DB row exists; a failed write is retried once and then the
// whole bundle is abandoned with best-effort cleanup of siblings already
// written.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*entity.ImageBundle, error) {
	if _, err := s.productRepo.GetByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	src, err := io.ReadAll(input.File)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	derived, err := s.deriver.Derive(src, input.Crop, s.specs)
	if err != nil {
		return nil, fmt.Errorf("deriving variants: %w", err)
	}

	bundleID := uuid.New()
	name := sanitizeFileName(input.Filename)
	if name == "" {
		name = bundleID.String() + ".jpg"
	}
	ts := time.Now().UnixMilli()

	written := make(map[valueobject.ImageSize]string, len(derived))
	for _, variant := range derived {
		key := fmt.Sprintf("%s/%s/%s/%s/%d-%s", s.namespace, input.ProductID, bundleID, variant.Size, ts, name)
		if err := s.putWithRetry(ctx, key, variant.Data); err != nil {
			s.rollbackObjects(ctx, written)
			return nil, fmt.Errorf("writing %s variant: %w", variant.Size, err)
		}
		written[variant.Size] = key
	}

	displayOrder, err := s.nextDisplayOrder(ctx, input.ProductID, input.DisplayOrder)
	if err != nil {
		s.rollbackObjects(ctx, written)
		return nil, err
	}

	createdAt := time.Now().UTC()
	variants := make([]entity.ImageVariant, 0, len(written))
	for _, variant := range derived {
		v := entity.NewImageVariant(bundleID, input.ProductID, variant.Size, written[variant.Size], displayOrder)
		v.CreatedAt = createdAt
		variants = append(variants, *v)
	}

	if err := s.variantRepo.CreateBundle(ctx, variants); err != nil {
		s.rollbackObjects(ctx, written)
		return nil, fmt.Errorf("recording bundle: %w", err)
	}

	bundle := &entity.ImageBundle{
		BundleID:     bundleID,
		ProductID:    input.ProductID,
		DisplayOrder: displayOrder,
		CreatedAt:    createdAt,
		URLs:         s.resolveVariantURLs(ctx, variants),
	}

	// The first bundle doubles as the product cover.
	if displayOrder == 1 {
		if err := s.productRepo.SetCoverURL(ctx, input.ProductID, bundle.RepresentativeURL()); err != nil {
			s.logger.Warn("failed to update product cover image",
				zap.String("product_id", input.ProductID.String()),
				zap.Error(err),
			)
		}
	}

	return bundle, nil
}

type ListInput struct {
	ProductID        uuid.UUID
	Size             *valueobject.ImageSize
	DisplayReadyOnly bool
}

// ListBundles regroups persisted variant rows into ordered bundles.
// Resolution failures null out the affected variant but never drop
// sibling variants or other bundles; bundles without a single resolved
// URL are kept unless the caller asked for display-ready bundles only.
func (s *Service) ListBundles(ctx context.Context, input ListInput) ([]entity.ImageBundle, error) {
	if _, err := s.productRepo.GetByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	rows, err := s.variantRepo.GetByProduct(ctx, input.ProductID, input.Size)
	if err != nil {
		return nil, fmt.Errorf("loading variants: %w", err)
	}

	groups := make(map[uuid.UUID]*entity.ImageBundle)
	for _, row := range rows {
		bundle, ok := groups[row.BundleID]
		if !ok {
			bundle = &entity.ImageBundle{
				BundleID:     row.BundleID,
				ProductID:    row.ProductID,
				DisplayOrder: row.DisplayOrder,
				CreatedAt:    row.CreatedAt,
				URLs:         make(map[valueobject.ImageSize]*entity.VariantRef),
			}
			groups[row.BundleID] = bundle
		}

		// Defensive against per-row drift: the bundle takes the lowest
		// order and the earliest creation time seen across its rows.
		if row.DisplayOrder < bundle.DisplayOrder {
			bundle.DisplayOrder = row.DisplayOrder
		}
		if !row.CreatedAt.IsZero() && (bundle.CreatedAt.IsZero() || row.CreatedAt.Before(bundle.CreatedAt)) {
			bundle.CreatedAt = row.CreatedAt
		}

		bundle.URLs[row.Size] = s.resolveRef(ctx, row.StoragePath)
	}

	bundles := make([]entity.ImageBundle, 0, len(groups))
	for _, bundle := range groups {
		if input.DisplayReadyOnly && !bundle.HasResolvedURL() {
			continue
		}
		bundles = append(bundles, *bundle)
	}

	sort.Slice(bundles, func(i, j int) bool {
		if bundles[i].DisplayOrder != bundles[j].DisplayOrder {
			return bundles[i].DisplayOrder < bundles[j].DisplayOrder
		}
		return bundles[i].CreatedAt.Before(bundles[j].CreatedAt)
	})

	return bundles, nil
}

// DeleteBundle removes the bundle's rows first, then attempts to delete
// each storage object. The DB is the source of truth, so storage cleanup
// failures are logged and swallowed.
func (s *Service) DeleteBundle(ctx context.Context, bundleID uuid.UUID) error {
	paths, err := s.variantRepo.DeleteByBundle(ctx, bundleID)
	if err != nil {
		return err
	}

	for _, path := range paths {
		if err := s.storage.Delete(ctx, path); err != nil {
			s.logger.Warn("failed to delete storage object",
				zap.String("bundle_id", bundleID.String()),
				zap.String("path", path),
				zap.Error(err),
			)
		}
	}

	return nil
}

type BundleOrder struct {
	BundleID     uuid.UUID
	DisplayOrder int
}

// Reorder bulk-updates display orders for a product's bundles. Values
// need not be contiguous or unique; read-side ties break on creation
// time. Every referenced bundle must belong to the product, otherwise
// nothing is updated.
func (s *Service) Reorder(ctx context.Context, productID uuid.UUID, orders []BundleOrder) error {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return err
	}

	rows, err := s.variantRepo.GetByProduct(ctx, productID, nil)
	if err != nil {
		return fmt.Errorf("loading bundles: %w", err)
	}
	owned := make(map[uuid.UUID]struct{}, len(rows))
	for _, row := range rows {
		owned[row.BundleID] = struct{}{}
	}
	for _, order := range orders {
		if _, ok := owned[order.BundleID]; !ok {
			return fmt.Errorf("bundle %s does not belong to product %s: %w", order.BundleID, productID, domain.ErrBundleNotFound)
		}
	}

	for _, order := range orders {
		if err := s.variantRepo.UpdateDisplayOrder(ctx, order.BundleID, order.DisplayOrder); err != nil {
			return fmt.Errorf("updating order for bundle %s: %w", order.BundleID, err)
		}
	}

	return nil
}

func (s *Service) nextDisplayOrder(ctx context.Context, productID uuid.UUID, explicit *int) (int, error) {
	if explicit != nil && *explicit > 0 {
		return *explicit, nil
	}
	maxOrder, err := s.variantRepo.MaxDisplayOrder(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("computing display order: %w", err)
	}
	return maxOrder + 1, nil
}

func (s *Service) putWithRetry(ctx context.Context, key string, data []byte) error {
	if err := s.storage.Put(ctx, key, data, "image/jpeg"); err != nil {
		s.logger.Warn("storage write failed, retrying once",
			zap.String("key", key),
			zap.Error(err),
		)
		return s.storage.Put(ctx, key, data, "image/jpeg")
	}
	return nil
}

func (s *Service) rollbackObjects(ctx context.Context, written map[valueobject.ImageSize]string) {
	for size, key := range written {
		if err := s.storage.Delete(ctx, key); err != nil {
			s.logger.Warn("failed to roll back storage object",
				zap.String("size", string(size)),
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}
}

func (s *Service) resolveVariantURLs(ctx context.Context, variants []entity.ImageVariant) map[valueobject.ImageSize]*entity.VariantRef {
	urls := make(map[valueobject.ImageSize]*entity.VariantRef, len(variants))
	for _, v := range variants {
		urls[v.Size] = s.resolveRef(ctx, v.StoragePath)
	}
	return urls
}

func (s *Service) resolveRef(ctx context.Context, path string) *entity.VariantRef {
	url, err := s.storage.Resolve(ctx, path)
	if err != nil {
		s.logger.Warn("failed to resolve storage path",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil
	}
	return &entity.VariantRef{URL: url, Path: path}
}

func sanitizeFileName(name string) string {
	return unsafeFileChars.ReplaceAllString(name, "")
}
