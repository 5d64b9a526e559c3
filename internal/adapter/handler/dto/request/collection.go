package request

type CreateCollectionRequest struct {
	Slug        string               `json:"slug" binding:"required,max=255"`
	Title       LocalizedTextRequest `json:"title" binding:"required"`
	Description LocalizedTextRequest `json:"description"`
	Position    int                  `json:"position" binding:"min=0"`
	Visible     *bool                `json:"visible"`
}

type UpdateCollectionRequest struct {
	Title       LocalizedTextRequest `json:"title" binding:"required"`
	Description LocalizedTextRequest `json:"description"`
	Position    int                  `json:"position" binding:"min=0"`
	Visible     *bool                `json:"visible"`
}

type CollectionMemberRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
}
