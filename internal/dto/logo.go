package dto

// LogoSize holds display dimensions in pixels
type LogoSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type CreateLogoRequest struct {
	Name         string    `json:"name" binding:"required"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl" binding:"required"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Category     string    `json:"category" binding:"omitempty,oneof=main footer favicon admin"`
	Size         *LogoSize `json:"size"`
	AltText      string    `json:"altText"`
	Tags         []string  `json:"tags"`
	IsActive     *bool     `json:"isActive"`
	IsDefault    *bool     `json:"isDefault"`
}

type UpdateLogoRequest struct {
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	ImageURL     *string    `json:"imageUrl"`
	ThumbnailURL *string    `json:"thumbnailUrl"`
	Category     *string    `json:"category" binding:"omitempty,oneof=main footer favicon admin"`
	Size         *LogoSize  `json:"size"`
	AltText      *string    `json:"altText"`
	Tags         *[]string  `json:"tags"`
	IsActive     *bool      `json:"isActive"`
	IsDefault    *bool      `json:"isDefault"`
}
