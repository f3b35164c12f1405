package dto

type CreateServiceCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Order       *int   `json:"order"`
	IsActive    *bool  `json:"isActive"`
	IsDefault   *bool  `json:"isDefault"`
}

type UpdateServiceCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
	IsDefault   *bool   `json:"isDefault"`
}
