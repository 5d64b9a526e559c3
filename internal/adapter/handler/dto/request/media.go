package request

type ListBundlesRequest struct {
	Size             string `form:"size" binding:"omitempty,oneof=thumb small big"`
	DisplayReadyOnly bool   `form:"display_ready"`
}

type BundleOrderRequest struct {
	BundleID     string `json:"bundle_id" binding:"required,uuid"`
	DisplayOrder int    `json:"display_order" binding:"required,min=1"`
}

type ReorderBundlesRequest struct {
	Orders []BundleOrderRequest `json:"orders" binding:"required,min=1,dive"`
}
