package valueobject

// ImageSize names one derived rendition of an uploaded product photo.
type ImageSize string

const (
	SizeThumb ImageSize = "thumb"
	SizeSmall ImageSize = "small"
	SizeBig   ImageSize = "big"
)

// RepresentativeOrder is the stable preference used when a single URL has
// to stand in for a whole bundle (list thumbnails, cover images).
var RepresentativeOrder = []ImageSize{SizeSmall, SizeThumb, SizeBig}

// ResizeRule is the closed set of resize semantics a variant spec may use.
// Every variant is derived from the same (optionally cropped) source, never
// from another variant.
type ResizeRule interface {
	isResizeRule()
}

// FitInside bounds both axes while preserving aspect ratio.
type FitInside struct {
	MaxWidth  int
	MaxHeight int
}

// FixedHeight pins the height and lets the width follow the aspect ratio.
type FixedHeight struct {
	Height int
}

// FixedWidth pins the width and lets the height follow the aspect ratio.
type FixedWidth struct {
	Width int
}

func (FitInside) isResizeRule()   {}
func (FixedHeight) isResizeRule() {}
func (FixedWidth) isResizeRule()  {}

// VariantSpec describes one rendition to derive from a source image.
type VariantSpec struct {
	Size    ImageSize
	Rule    ResizeRule
	Quality int
}

// DerivedVariant is one encoded output of the deriver.
type DerivedVariant struct {
	Size ImageSize
	Data []byte
}

// DefaultVariantSpecs mirrors the storefront's deployed rendition set.
func DefaultVariantSpecs() []VariantSpec {
	return []VariantSpec{
		{Size: SizeThumb, Rule: FixedHeight{Height: 200}, Quality: 80},
		{Size: SizeSmall, Rule: FixedHeight{Height: 300}, Quality: 80},
		{Size: SizeBig, Rule: FitInside{MaxWidth: 900, MaxHeight: 900}, Quality: 85},
	}
}
