package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/boardline/boardline-backend/internal/domain/entity"
)

// BundleResponse mirrors the read-side bundle: every size key is always
// present, mapped to null when the variant URL could not be resolved.
type BundleResponse struct {
	BundleID     uuid.UUID                     `json:"bundle_id"`
	ProductID    uuid.UUID                     `json:"product_id"`
	DisplayOrder int                           `json:"display_order"`
	CreatedAt    time.Time                     `json:"created_at"`
	URLs         map[string]*entity.VariantRef `json:"urls"`
}

type BundlesListResponse struct {
	Bundles []BundleResponse `json:"bundles"`
}

func BundleFromEntity(b *entity.ImageBundle) BundleResponse {
	urls := make(map[string]*entity.VariantRef, len(b.URLs))
	for size, ref := range b.URLs {
		urls[string(size)] = ref
	}
	return BundleResponse{
		BundleID:     b.BundleID,
		ProductID:    b.ProductID,
		DisplayOrder: b.DisplayOrder,
		CreatedAt:    b.CreatedAt,
		URLs:         urls,
	}
}

func BundlesFromEntities(bundles []entity.ImageBundle) []BundleResponse {
	result := make([]BundleResponse, 0, len(bundles))
	for i := range bundles {
		result = append(result, BundleFromEntity(&bundles[i]))
	}
	return result
}
