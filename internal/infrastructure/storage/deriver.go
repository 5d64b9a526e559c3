package storage

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/boardline/boardline-backend/internal/domain"
	"github.com/boardline/boardline-backend/internal/domain/valueobject"
)

// VariantDeriverImpl turns one source image into the configured set of
// JPEG renditions. Every rendition is derived from the same working image
// so quality loss never compounds across sizes.
type VariantDeriverImpl struct {
	logger *zap.Logger
}

func NewVariantDeriver(logger *zap.Logger) *VariantDeriverImpl {
	return &VariantDeriverImpl{logger: logger}
}

func (d *VariantDeriverImpl) Derive(src []byte, crop *valueobject.CropRect, specs []valueobject.VariantSpec) ([]valueobject.DerivedVariant, error) {
	img, err := imaging.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidImage, err)
	}

	working := img
	if crop != nil {
		bounds := img.Bounds()
		if crop.FitsWithin(bounds.Dx(), bounds.Dy()) {
			working = imaging.Crop(img, image.Rect(
				crop.Left,
				crop.Top,
				crop.Left+crop.Width,
				crop.Top+crop.Height,
			))
		} else {
			// Bad crop rectangles are non-fatal: continue from the
			// uncropped source.
			d.logger.Warn("crop rectangle outside source bounds, using uncropped source",
				zap.Int("src_width", bounds.Dx()),
				zap.Int("src_height", bounds.Dy()),
				zap.Int("crop_left", crop.Left),
				zap.Int("crop_top", crop.Top),
				zap.Int("crop_width", crop.Width),
				zap.Int("crop_height", crop.Height),
			)
		}
	}

	variants := make([]valueobject.DerivedVariant, 0, len(specs))
	for _, spec := range specs {
		resized, err := applyRule(working, spec.Rule)
		if err != nil {
			return nil, err
		}

		var buf bytes.Buffer
		if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(spec.Quality)); err != nil {
			return nil, fmt.Errorf("encoding %s variant: %w", spec.Size, err)
		}

		variants = append(variants, valueobject.DerivedVariant{
			Size: spec.Size,
			Data: buf.Bytes(),
		})
	}

	return variants, nil
}

func applyRule(img image.Image, rule valueobject.ResizeRule) (image.Image, error) {
	switch r := rule.(type) {
	case valueobject.FitInside:
		return imaging.Fit(img, r.MaxWidth, r.MaxHeight, imaging.Lanczos), nil
	case valueobject.FixedHeight:
		return imaging.Resize(img, 0, r.Height, imaging.Lanczos), nil
	case valueobject.FixedWidth:
		return imaging.Resize(img, r.Width, 0, imaging.Lanczos), nil
	default:
		return nil, fmt.Errorf("unsupported resize rule %T", rule)
	}
}
