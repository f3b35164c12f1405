package dto

// ReorderRequest carries an explicit ID ordering. The position of each ID in
// the slice becomes its new order value.
type ReorderRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}
