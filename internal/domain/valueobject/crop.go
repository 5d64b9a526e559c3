package valueobject

// CropRect is a crop rectangle in source-pixel coordinates.
type CropRect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

func NewCropRect(left, top, width, height int) CropRect {
	return CropRect{Left: left, Top: top, Width: width, Height: height}
}

// FitsWithin reports whether the rectangle lies fully inside a source
// image of the given dimensions.
func (c CropRect) FitsWithin(srcWidth, srcHeight int) bool {
	if c.Width <= 0 || c.Height <= 0 {
		return false
	}
	if c.Left < 0 || c.Top < 0 {
		return false
	}
	return c.Left+c.Width <= srcWidth && c.Top+c.Height <= srcHeight
}
