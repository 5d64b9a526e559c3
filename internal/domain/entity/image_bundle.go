package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/boardline/boardline-backend/internal/domain/valueobject"
)

// ImageVariant is one persisted rendition of an uploaded product photo.
// Rows sharing a BundleID were derived from the same source upload and
// carry the bundle's display order denormalized onto each row.
type ImageVariant struct {
	ID           uuid.UUID
	BundleID     uuid.UUID
	ProductID    uuid.UUID
	Size         valueobject.ImageSize
	StoragePath  string
	DisplayOrder int
	CreatedAt    time.Time
}

func NewImageVariant(bundleID, productID uuid.UUID, size valueobject.ImageSize, storagePath string, displayOrder int) *ImageVariant {
	return &ImageVariant{
		ID:           uuid.New(),
		BundleID:     bundleID,
		ProductID:    productID,
		Size:         size,
		StoragePath:  storagePath,
		DisplayOrder: displayOrder,
		CreatedAt:    time.Now().UTC(),
	}
}

// VariantRef is a resolved variant inside a read-side bundle.
type VariantRef struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// ImageBundle is the read-side grouping of one upload event: every size
// derived from a single source image, keyed by size name. A size maps to
// nil when its URL could not be resolved.
type ImageBundle struct {
	BundleID     uuid.UUID
	ProductID    uuid.UUID
	DisplayOrder int
	CreatedAt    time.Time
	URLs         map[valueobject.ImageSize]*VariantRef
}

// RepresentativeURL picks one URL to stand in for the whole bundle,
// following the stable size preference, then any remaining resolvable
// size in spec order.
func (b *ImageBundle) RepresentativeURL() *string {
	for _, size := range valueobject.RepresentativeOrder {
		if ref := b.URLs[size]; ref != nil {
			return &ref.URL
		}
	}
	// Deployments with extra sizes: fall back deterministically, not by
	// map iteration order.
	var names []string
	for size := range b.URLs {
		names = append(names, string(size))
	}
	sort.Strings(names)
	for _, name := range names {
		if ref := b.URLs[valueobject.ImageSize(name)]; ref != nil {
			return &ref.URL
		}
	}
	return nil
}

// HasResolvedURL reports whether at least one variant resolved.
func (b *ImageBundle) HasResolvedURL() bool {
	for _, ref := range b.URLs {
		if ref != nil {
			return true
		}
	}
	return false
}
